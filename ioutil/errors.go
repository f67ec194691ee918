// SPDX-License-Identifier: MIT
// errors.go - sentinel errors for the ioutil package.
package ioutil

import "errors"

var (
	// ErrUnknownGraph indicates a CSV edge-list row that does not parse as
	// (src, label, dst).
	ErrUnknownGraph = errors.New("ioutil: malformed graph data")

	// ErrNilGraph indicates a nil *core.Graph argument.
	ErrNilGraph = errors.New("ioutil: nil graph")
)
