package protocol

import (
	"errors"

	"github.com/vovakirdan/wanderer/internal/survival"
)

const (
	// Protocol/transport validation.
	ErrProtoBadRequest = "E_PROTO_BAD_REQUEST"
	ErrProtoVersion    = "E_PROTO_VERSION"

	// Action outcomes.
	ErrNoResource   = "E_NO_RESOURCE"
	ErrOutOfRange   = "E_OUT_OF_RANGE"
	ErrNeedsAxe     = "E_NEEDS_AXE"
	ErrInsufficient = "E_INSUFFICIENT"
	ErrAlreadyOwned = "E_ALREADY_OWNED"
	ErrInternal     = "E_INTERNAL"
)

var knownCodes = map[string]struct{}{
	ErrProtoBadRequest: {},
	ErrProtoVersion:    {},
	ErrNoResource:      {},
	ErrOutOfRange:      {},
	ErrNeedsAxe:        {},
	ErrInsufficient:    {},
	ErrAlreadyOwned:    {},
	ErrInternal:        {},
}

func IsKnownCode(code string) bool {
	if code == "" {
		return true
	}
	_, ok := knownCodes[code]
	return ok
}

// CodeFor maps an action error to its wire code. A nil error has no code.
func CodeFor(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, survival.ErrNoResource):
		return ErrNoResource
	case errors.Is(err, survival.ErrOutOfRange):
		return ErrOutOfRange
	case errors.Is(err, survival.ErrNeedsAxe):
		return ErrNeedsAxe
	case errors.Is(err, survival.ErrInsufficient):
		return ErrInsufficient
	case errors.Is(err, survival.ErrAlreadyOwned):
		return ErrAlreadyOwned
	default:
		return ErrInternal
	}
}
