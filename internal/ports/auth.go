package ports

import "github.com/jsamuelsen11/todo-service/internal/domain"

// TokenIssuer signs bearer tokens for a verified identity.
type TokenIssuer interface {
	Issue(caller domain.Caller) (string, error)
}

// TokenVerifier turns a bearer token back into the identity it was issued
// for. Any failure (bad signature, expiry, malformed claims) is reported as
// an error wrapping domain.ErrUnauthorized.
type TokenVerifier interface {
	Verify(token string) (domain.Caller, error)
}

// PasswordHasher hashes and checks account passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Compare returns nil when password matches hash.
	Compare(hash, password string) error
}
