package jwt

import (
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// Service verifies access tokens issued by the platform auth service and
// exposes the jwtauth handle the router middleware needs. Token issuance
// lives outside this service; AccessToken exists for wiring tests and
// local tooling.
type Service interface {
	JWTAuth() *jwtauth.JWTAuth
	AccessToken(userID, email, companyID string, ttl time.Duration) (string, error)
}

type JWTService struct {
	tokenAuth *jwtauth.JWTAuth
}

func NewJWTService(secretKey string) Service {
	return &JWTService{
		tokenAuth: jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) AccessToken(userID, email, companyID string, ttl time.Duration) (string, error) {
	claims := map[string]interface{}{
		"user_id":    userID,
		"email":      email,
		"company_id": companyID,
		"type":       "access",
		"exp":        time.Now().Add(ttl).Unix(),
	}
	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, err
}
