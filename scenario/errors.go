// SPDX-License-Identifier: MIT

package scenario

import "errors"

var (
	// ErrDecode indicates the document is not valid YAML for a Scenario.
	ErrDecode = errors.New("scenario: cannot decode document")

	// ErrInvalid indicates a decoded scenario violates a field constraint.
	ErrInvalid = errors.New("scenario: invalid scenario")
)
