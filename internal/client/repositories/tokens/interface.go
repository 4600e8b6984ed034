package tokens

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/bookapp/internal/common"
)

// ErrUnknownKind is returned for a Kind other than Access or Refresh.
var ErrUnknownKind = errors.New("unknown token kind")

// Kind selects one of the two stored tokens.
type Kind string

const (
	Access  Kind = "access"
	Refresh Kind = "refresh"
)

// Key returns the storage key of k.
func (k Kind) Key() (string, error) {
	switch k {
	case Access:
		return common.AccessTokenKey, nil
	case Refresh:
		return common.RefreshTokenKey, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, string(k))
	}
}

// Repository is the token store contract. Get reports ok=false when the
// token is absent; an empty stored value counts as absent.
type Repository interface {
	Get(ctx context.Context, kind Kind) (value string, ok bool, err error)
	Set(ctx context.Context, kind Kind, value string) error
	// SetPair stores both tokens atomically.
	SetPair(ctx context.Context, access, refresh string) error
	Delete(ctx context.Context, kind Kind) error
	Clear(ctx context.Context) error
}
