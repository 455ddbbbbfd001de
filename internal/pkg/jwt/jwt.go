package jwt

import (
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// Service verifies access tokens issued by the identity service. Tokens are
// signed with a shared HS256 secret; this service never issues them.
type Service interface {
	JWTAuth() *jwtauth.JWTAuth
	ErpIDFromClaims(claims map[string]interface{}) (int64, bool)
}

type JWTService struct {
	secretKey string
	tokenAuth *jwtauth.JWTAuth
}

func NewJWTService(secretKey string) Service {
	return &JWTService{
		secretKey: secretKey,
		tokenAuth: jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

// ErpIDFromClaims extracts the caller's erp_id claim. JSON numbers decode as
// float64 in the claim map.
func (j *JWTService) ErpIDFromClaims(claims map[string]interface{}) (int64, bool) {
	switch v := claims["erp_id"].(type) {
	case float64:
		return int64(v), true
	case int64:
		return v, true
	default:
		return 0, false
	}
}
