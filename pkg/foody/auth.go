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
	"context"
	"fmt"
	"net/http"
)

// Login exchanges credentials for an access token.  The request is never
// authenticated, whatever token the client holds.  A response without an
// accessToken yields an empty token and no error; callers must treat that
// as an authentication failure.
func (c *APIClient) Login(ctx context.Context, username, password string) (string, error) {
	request := LoginRequest{
		Username: username,
		Password: password,
	}

	resp, err := c.execute(ctx, http.MethodPost, c.endpoints.Authenticate(), request, false)
	if err != nil {
		return "", fmt.Errorf("authenticating: %w", err)
	}

	login, err := Decode[LoginResponse](resp.Body)
	if err != nil {
		return "", fmt.Errorf("authenticating (status %d): %w", resp.StatusCode, err)
	}

	if login.AccessToken == nil {
		return "", nil
	}

	return *login.AccessToken, nil
}
