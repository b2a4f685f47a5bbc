package ports

import "time"

// PasswordHasher gera e verifica hashes de senha
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
}

// TokenClaims são os dados carregados no access token
type TokenClaims struct {
	UserID    string
	Email     string
	Role      string
	ExpiresAt time.Time
}

// TokenManager emite e valida access tokens (bearer)
type TokenManager interface {
	Issue(userID, email, role string) (string, error)
	Parse(token string) (*TokenClaims, error)
}
