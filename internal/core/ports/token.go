package ports

import "time"

// TokenCodec issues and verifies the opaque bearer tokens handed out at
// login. Verify returns the user id the token was minted for.
type TokenCodec interface {
	Issue(userID uint64, ttl time.Duration) (string, error)
	Verify(token string) (uint64, error)
}
