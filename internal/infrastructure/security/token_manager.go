package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/rafabene/hyperlocal-backend/internal/domain/ports"
)

const issuer = "hyperlocal-backend"

// claims inclui os claims registrados mais email e role do usuário
type claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Role  string `json:"role"`
}

// JWTTokenManager emite e valida tokens HS256
type JWTTokenManager struct {
	secret    []byte
	expiresIn time.Duration
	now       func() time.Time
}

// NewJWTTokenManager cria um TokenManager com o segredo e a validade informados
func NewJWTTokenManager(secret string, expiresIn time.Duration) (*JWTTokenManager, error) {
	if secret == "" {
		return nil, errors.New("jwt: empty secret")
	}
	return &JWTTokenManager{
		secret:    []byte(secret),
		expiresIn: expiresIn,
		now:       time.Now,
	}, nil
}

var _ ports.TokenManager = (*JWTTokenManager)(nil)

func (m *JWTTokenManager) Issue(userID, email, role string) (string, error) {
	now := m.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expiresIn)),
		},
		Email: email,
		Role:  role,
	})
	return token.SignedString(m.secret)
}

func (m *JWTTokenManager) Parse(tokenString string) (*ports.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return nil, err
	}

	c, ok := token.Claims.(*claims)
	if !ok || !token.Valid || c.Subject == "" {
		return nil, errors.New("jwt: invalid claims")
	}

	result := &ports.TokenClaims{
		UserID: c.Subject,
		Email:  c.Email,
		Role:   c.Role,
	}
	if c.ExpiresAt != nil {
		result.ExpiresAt = c.ExpiresAt.Time
	}
	return result, nil
}
