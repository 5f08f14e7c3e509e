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

// Food is the request body for food creation.
type Food struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// PatchOp is a JSON patch operation kind.
type PatchOp string

const (
	PatchOpReplace PatchOp = "replace"
	PatchOpAdd     PatchOp = "add"
	PatchOpRemove  PatchOp = "remove"
)

// PatchOperation is a single edit instruction.
type PatchOperation struct {
	Path  string  `json:"path"`
	Op    PatchOp `json:"op"`
	Value string  `json:"value"`
}

// Patch is an ordered sequence of edit instructions, applied in order.
type Patch []PatchOperation

// Replace returns a patch operation that replaces the value at path.
func Replace(path, value string) PatchOperation {
	return PatchOperation{
		Path:  path,
		Op:    PatchOpReplace,
		Value: value,
	}
}

// APIResponse is the body returned by create, edit and delete.  Creation
// carries a food ID, edit and delete carry a message, so both are optional.
type APIResponse struct {
	FoodID *string `json:"foodId,omitempty"`
	Msg    *string `json:"msg,omitempty"`
}

// RequireFoodID returns the food ID, or ErrMissingField if it is absent or empty.
func (r *APIResponse) RequireFoodID() (string, error) {
	if r.FoodID == nil || *r.FoodID == "" {
		return "", fmt.Errorf("%w: foodId", ErrMissingField)
	}

	return *r.FoodID, nil
}

// RequireMsg returns the message, or ErrMissingField if it is absent.
func (r *APIResponse) RequireMsg() (string, error) {
	if r.Msg == nil {
		return "", fmt.Errorf("%w: msg", ErrMissingField)
	}

	return *r.Msg, nil
}

// FoodSummary is a single element of the food listing.  The identifier may
// arrive as foodId or id, as a string or a number, so both are kept raw.
type FoodSummary struct {
	FoodID      json.RawMessage `json:"foodId,omitempty"`
	ID          json.RawMessage `json:"id,omitempty"`
	Name        *string         `json:"name,omitempty"`
	Description *string         `json:"description,omitempty"`
}

// Identifier returns foodId, falling back to id, or "" if neither is set.
func (f *FoodSummary) Identifier() string {
	if id := rawIdentifier(f.FoodID); id != "" {
		return id
	}

	return rawIdentifier(f.ID)
}

// rawIdentifier unquotes a JSON string, other scalars keep their literal text.
func rawIdentifier(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	return string(raw)
}

// LoginRequest is the authentication request body.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is the authentication response body.
type LoginResponse struct {
	AccessToken *string `json:"accessToken,omitempty"`
}
