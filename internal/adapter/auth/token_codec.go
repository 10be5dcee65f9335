package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/goer/asana-clone/internal/core/ports"
)

var (
	errMalformedToken = errors.New("malformed token")
	errBadSignature   = errors.New("bad token signature")
	errExpiredToken   = errors.New("expired token")
)

// HMACTokenCodec mints signed bearer tokens of the form
// base64url(userID:expiry).base64url(signature). The signature covers the
// raw payload with HMAC-SHA256 under a shared secret.
type HMACTokenCodec struct {
	secret []byte
}

var _ ports.TokenCodec = (*HMACTokenCodec)(nil)

func NewHMACTokenCodec(secret string) *HMACTokenCodec {
	return &HMACTokenCodec{secret: []byte(secret)}
}

func (c *HMACTokenCodec) Issue(userID uint64, ttl time.Duration) (string, error) {
	expiry := time.Now().Add(ttl).Unix()
	payload := fmt.Sprintf("%d:%d", userID, expiry)
	return base64.RawURLEncoding.EncodeToString([]byte(payload)) + "." + c.sign(payload), nil
}

func (c *HMACTokenCodec) Verify(token string) (uint64, error) {
	encoded, signature, found := strings.Cut(token, ".")
	if !found {
		return 0, errMalformedToken
	}

	raw, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return 0, errMalformedToken
	}
	payload := string(raw)

	if !hmac.Equal([]byte(c.sign(payload)), []byte(signature)) {
		return 0, errBadSignature
	}

	idPart, expiryPart, found := strings.Cut(payload, ":")
	if !found {
		return 0, errMalformedToken
	}

	expiry, err := strconv.ParseInt(expiryPart, 10, 64)
	if err != nil {
		return 0, errMalformedToken
	}
	if time.Now().Unix() > expiry {
		return 0, errExpiredToken
	}

	userID, err := strconv.ParseUint(idPart, 10, 64)
	if err != nil {
		return 0, errMalformedToken
	}
	return userID, nil
}

func (c *HMACTokenCodec) sign(payload string) string {
	mac := hmac.New(sha256.New, c.secret)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
