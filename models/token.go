package models

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrEmptyTokenSubject is returned for a token that names no user.
var ErrEmptyTokenSubject = errors.New("token has empty subject")

// Token is a signed access token issued at login. The server reads the
// caller of a sync round from UserID, which mirrors the "sub" claim.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS form sent as "Authorization: Bearer".
	SignedString string `json:"-"`

	UserID int64 `json:"-"`
}

// SubjectUserID parses the "sub" claim as a user id.
func (t *Token) SubjectUserID() (int64, error) {
	subject, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}
	if subject == "" {
		return 0, ErrEmptyTokenSubject
	}

	userID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// Expiry is the "exp" claim, or the zero time when the token never expires.
func (t *Token) Expiry() time.Time {
	if t.ExpiresAt == nil {
		return time.Time{}
	}
	return t.ExpiresAt.Time
}

func (t *Token) String() string {
	return t.SignedString
}
