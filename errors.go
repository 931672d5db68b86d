package deckbuilder

import (
	"errors"

	"github.com/tsawler/deckbuilder/render"
)

// IOError reports a failure to create or write a file. Use errors.As to
// recover the operation and path.
type IOError = render.IOError

// ErrInvalidDeck is returned when the built document breaks the deck's
// layout or styling rules. The wrapping error lists every issue.
var ErrInvalidDeck = errors.New("invalid deck")
