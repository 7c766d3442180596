// Package token issues and verifies the signed bearer tokens handed out at
// login. Tokens are HS256 JWTs: header, claims and signature as unpadded
// URL-safe base64 segments joined by dots. Every claim set carries an "exp"
// (seconds since the epoch) and tokens past it are rejected.
package token

import (
	"errors"
	"maps"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// UserIDClaim is the claim that carries the authenticated user's id.
const UserIDClaim = "user_id"

// ErrInvalidToken is returned for every verification failure. Callers can
// not tell a malformed token from a forged or expired one.
var ErrInvalidToken = errors.New("invalid token")

// Codec signs and verifies tokens with a single shared secret.
type Codec struct {
	secret []byte
	now    func() time.Time
}

// Option configures a Codec.
type Option func(*Codec)

// WithClock replaces the wall clock used for "exp", mainly in tests.
func WithClock(now func() time.Time) Option {
	return func(c *Codec) { c.now = now }
}

// NewCodec returns a Codec that signs with secret.
func NewCodec(secret string, opts ...Option) (*Codec, error) {
	if secret == "" {
		return nil, errors.New("token: empty signing secret")
	}
	c := &Codec{secret: []byte(secret), now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Issue signs claims with an "exp" of now+ttl. ttl counts whole seconds and
// is truncated toward zero, so anything shorter than a second in either
// direction expires at the end of the current second. A caller-supplied "exp"
// is overwritten. A ttl of -1s or less yields a token that is already expired.
//
// Claims travel as JSON: Verify returns numbers as float64 and nested
// objects as map[string]any, so only string claims compare equal to what was
// issued.
func (c *Codec) Issue(claims map[string]any, ttl time.Duration) (string, error) {
	mc := jwt.MapClaims{}
	maps.Copy(mc, claims)
	mc["exp"] = c.now().Unix() + int64(ttl/time.Second)

	return jwt.NewWithClaims(jwt.SigningMethodHS256, mc).SignedString(c.secret)
}

// Verify checks the structure, signature and expiry of tokenString and
// returns its claims. A token whose "exp" equals the current second is still
// valid.
func (c *Codec) Verify(tokenString string) (map[string]any, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (interface{}, error) { return c.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
		// jwt rejects exp == now; one second of leeway accepts the whole
		// expiry second.
		jwt.WithLeeway(time.Second),
	)
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// UserID extracts the user id claim.
func UserID(claims map[string]any) (string, bool) {
	id, ok := claims[UserIDClaim].(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}
