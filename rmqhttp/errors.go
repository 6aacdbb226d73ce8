// SPDX-License-Identifier: GPL-3.0-only

package rmqhttp

import "fmt"

// InvalidURLError reports a URL string that does not parse as an absolute
// URL with a host.
type InvalidURLError struct {
	URL string
	Err error
}

func (e *InvalidURLError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid management API URL %q: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("invalid management API URL %q", e.URL)
}

func (e *InvalidURLError) Unwrap() error { return e.Err }

// MissingFieldError reports a required client parameter that was never set.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s is required; it must not be empty", e.Field)
}
