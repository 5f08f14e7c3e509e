/*
Copyright 2026 the Foody QA Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package foody

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedMethod is raised when a request uses a verb the service doesn't expose.
	ErrUnsupportedMethod = errors.New("unsupported method")

	// ErrMissingField is raised when a decoded response lacks an expected field.
	ErrMissingField = errors.New("missing field")
)

// DecodeError is returned when a response body cannot be decoded into
// the requested shape.
type DecodeError struct {
	// Target is the Go type that decoding was attempted into.
	Target string
	// Body is the raw response body.
	Body []byte
	// Err is the underlying JSON error.
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding %s: %v, body: %q", e.Target, e.Err, truncate(e.Body, 256))
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}

	return string(b[:n]) + "..."
}
