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
	"encoding/json"
	"fmt"
)

// Decode unmarshals a single JSON object.  Unknown fields are ignored and
// missing ones are left at their zero value, so callers should use the
// optional field accessors to check presence.  Any syntax or type error,
// including an empty body, is returned as a *DecodeError.
func Decode[T any](body []byte) (T, error) {
	var out T

	if err := json.Unmarshal(body, &out); err != nil {
		return out, &DecodeError{
			Target: fmt.Sprintf("%T", out),
			Body:   body,
			Err:    err,
		}
	}

	return out, nil
}

// DecodeList unmarshals a JSON array.
func DecodeList[T any](body []byte) ([]T, error) {
	return Decode[[]T](body)
}
