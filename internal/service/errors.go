package service

import (
	"errors"
	"fmt"
	"unicode"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Closed set of externally visible error kinds. Handlers map these to HTTP
// statuses; everything else is an internal error.
var (
	// ErrValidation marks malformed input: invalid id format, disallowed
	// search characters, unknown collection names.
	ErrValidation = errors.New("validation error")

	// ErrDuplicateKey is a unique-constraint violation at the store.
	ErrDuplicateKey = errors.New("the element already exists in database")

	// ErrNotFound means the referenced entity is absent.
	ErrNotFound = errors.New("the element not found in database")

	// ErrInternal is the fail-safe default for unclassified store failures.
	// Full detail goes to the logs; clients only see a generic message.
	ErrInternal = errors.New("unexpected error, please check server logs")
)

// classifyStoreErr is the single point where store failures become one of
// the error kinds above. GORM's error translation provides the discriminant;
// anything unrecognized funnels to ErrInternal — never silent success.
func classifyStoreErr(err error) error {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		log.Error().Err(err).Msg("duplicate key")
		return ErrDuplicateKey
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	default:
		log.Error().Err(err).Msg("unclassified store error")
		return ErrInternal
	}
}

func validationErr(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrValidation}, args...)...)
}

// capitalize upper-cases the first rune, matching the write normalization
// applied to every category and product name.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
