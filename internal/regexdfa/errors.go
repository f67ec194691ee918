// SPDX-License-Identifier: MIT
// errors.go - sentinel errors for regex parsing/compilation.
package regexdfa

import (
	"errors"
	"fmt"
)

// ErrMalformedRegex is the MalformedRegex error kind spec.md §7 assigns to
// the regex front-end: unbalanced parens or a dangling operator. An empty
// pattern or alternative is not an error; it denotes the empty string.
var ErrMalformedRegex = errors.New("regexdfa: malformed regex")

func parseErrorf(format string, args ...any) error {
	return &wrapped{msg: fmt.Sprintf(format, args...), err: ErrMalformedRegex}
}

type wrapped struct {
	msg string
	err error
}

func (w *wrapped) Error() string { return w.msg }
func (w *wrapped) Unwrap() error { return w.err }
