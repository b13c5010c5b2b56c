package googleauth

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	SpreadsheetsScope = "https://www.googleapis.com/auth/spreadsheets"
	DefaultTokenURL   = "https://oauth2.googleapis.com/token"

	_assertionLifetime = time.Hour
)

var ErrInvalidPrivateKey = errors.New("invalid service account private key")

// AssertionClaims are the claims of a service-account JWT bearer assertion.
type AssertionClaims struct {
	Issuer   string
	Scope    string
	Audience string
	IssuedAt time.Time
}

// NewAssertionClaims asks for spreadsheet access on behalf of a service account.
func NewAssertionClaims(serviceAccountEmail string, issuedAt time.Time) AssertionClaims {
	return AssertionClaims{
		Issuer:   serviceAccountEmail,
		Scope:    SpreadsheetsScope,
		Audience: DefaultTokenURL,
		IssuedAt: issuedAt,
	}
}

func (c AssertionClaims) mapClaims() jwt.MapClaims {
	iat := c.IssuedAt.Unix()
	return jwt.MapClaims{
		"iss":   c.Issuer,
		"scope": c.Scope,
		"aud":   c.Audience,
		"iat":   iat,
		"exp":   iat + int64(_assertionLifetime/time.Second),
	}
}

// ParsePrivateKey accepts a PKCS#1 or PKCS#8 PEM block. Literal "\n"
// sequences, as stored by most environment variable UIs, become newlines.
func ParsePrivateKey(raw string) (*rsa.PrivateKey, error) {
	pem := strings.ReplaceAll(raw, `\n`, "\n")
	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(pem))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPrivateKey, err)
	}
	return key, nil
}

// SignAssertion returns header.claims.signature, RS256 over the first two
// base64url segments. It has no side effects.
func SignAssertion(key *rsa.PrivateKey, claims AssertionClaims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims.mapClaims())
	signed, err := token.SignedString(key)
	if err != nil {
		return "", fmt.Errorf("signing assertion: %w", err)
	}
	return signed, nil
}
