// Package credcodec reversibly transforms account credentials to and from
// their stored representation using one process-wide secret. It is an
// obfuscation layer, not a security boundary: anything collision-free and
// reversible satisfies the contract, and callers stay oblivious to the
// scheme behind the Codec interface.
package credcodec

import "github.com/mcnielat/bankapp/internal/apperr"

// Codec encodes a plain credential for storage and decodes it back.
// Implementations must be side-effect-free and safe for concurrent use,
// and must guarantee Decode(Encode(x)) == x for every non-empty x.
type Codec interface {
	Encode(plain string) (string, error)
	Decode(stored string) (string, error)
}

var (
	errEmptyInput = apperr.Validation("Input cannot be empty")
	errMalformed  = apperr.Validation("Malformed stored credential")
)
