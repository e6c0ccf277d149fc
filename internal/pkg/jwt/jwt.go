package jwt

import (
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// Service issues and verifies the access tokens this API trusts. The
// identity provider that authenticates users lives elsewhere; both sides
// share the signing secret.
type Service interface {
	GenerateAccessToken(employeeID string, companyID string, role string) (token string, expiresAt int64, err error)
	ValidateAccessToken(tokenString string) (employeeID string, companyID string, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	secretKey                 string
	accessTokenExpirationTime string
	tokenAuth                 *jwtauth.JWTAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime string) Service {
	return &JWTService{
		secretKey:                 secretKey,
		accessTokenExpirationTime: accessTokenExpirationTime,
		tokenAuth:                 jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateAccessToken(employeeID string, companyID string, role string) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.accessTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	claims := map[string]interface{}{
		"employee_id": employeeID,
		"company_id":  companyID,
		"role":        role,
		"type":        "access",
		"exp":         expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

func (j *JWTService) ValidateAccessToken(tokenString string) (employeeID string, companyID string, err error) {
	token, err := j.tokenAuth.Decode(tokenString)
	if err != nil {
		return "", "", err
	}

	tokenType, ok := token.Get("type")
	if !ok || tokenType != "access" {
		return "", "", jwt.ErrInvalidJWT()
	}

	employeeVal, ok := token.Get("employee_id")
	if !ok {
		return "", "", jwt.ErrInvalidJWT()
	}
	employeeID, ok = employeeVal.(string)
	if !ok {
		return "", "", jwt.ErrInvalidJWT()
	}

	companyVal, ok := token.Get("company_id")
	if !ok {
		return "", "", jwt.ErrInvalidJWT()
	}
	companyID, ok = companyVal.(string)
	if !ok {
		return "", "", jwt.ErrInvalidJWT()
	}

	return employeeID, companyID, nil
}
