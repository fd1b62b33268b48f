package merger

import (
	"errors"
	"fmt"
)

// ErrEmptySession is returned by Merge when no valid cue was ever
// added across all sources.
var ErrEmptySession = errors.New("session contains no cues")

// DecodeError reports input bytes inconsistent with the encoding the
// caller declared for a source file.
type DecodeError struct {
	Path     string
	Encoding string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding %s as %s: %v", e.Path, e.Encoding, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
