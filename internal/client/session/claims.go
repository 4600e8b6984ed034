package session

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/dmitrijs2005/bookapp/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// ErrOpaqueToken means the access token is not a JWT and carries no
// readable claims.
var ErrOpaqueToken = errors.New("access token is not a JWT")

// Claims is what the status screen shows about the current access token.
// It is decoded without signature verification and is never used to decide
// whether the user is logged in.
type Claims struct {
	Subject   string
	UserID    string
	ExpiresAt time.Time
}

// Expired reports whether the token's exp claim is in the past relative to
// now. Tokens without exp never expire here.
func (c Claims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && now.After(c.ExpiresAt)
}

// Claims decodes the current access token. It returns common.ErrTokenMissing
// when anonymous and ErrOpaqueToken when the token cannot be parsed.
func (s *Session) Claims(ctx context.Context) (Claims, error) {
	access, ok, err := s.AccessToken(ctx)
	if err != nil {
		return Claims{}, err
	}
	if !ok {
		return Claims{}, common.ErrTokenMissing
	}
	return ParseClaims(access)
}

// ParseClaims reads sub, exp and user_id from a JWT without verifying it.
func ParseClaims(token string) (Claims, error) {
	mc := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, mc); err != nil {
		return Claims{}, ErrOpaqueToken
	}

	var c Claims
	c.Subject, _ = mc.GetSubject()
	if exp, err := mc.GetExpirationTime(); err == nil && exp != nil {
		c.ExpiresAt = exp.Time
	}
	switch v := mc["user_id"].(type) {
	case string:
		c.UserID = v
	case float64:
		c.UserID = strconv.FormatInt(int64(v), 10)
	}
	return c, nil
}
