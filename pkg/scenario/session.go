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

package scenario

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"

	"github.com/softuni-qa/foody/pkg/foody"
)

// Credentials identify the account scenarios run as.
type Credentials struct {
	Username string
	Password string
}

// Session is the authenticated client shared by a scenario chain.
type Session struct {
	BaseURL string
	Token   string
	Client  *foody.APIClient
}

// Setup logs in and builds the authenticated client, it must complete
// before the first scenario runs.  A login that yields no token is not an
// error: the session carries on unauthenticated and protected calls will
// be rejected by the service.
func Setup(ctx context.Context, baseURL string, credentials Credentials, options ...foody.Option) (*Session, error) {
	log := logr.FromContextOrDiscard(ctx)

	client := foody.NewAPIClient(baseURL, options...)

	token, err := client.Login(ctx, credentials.Username, credentials.Password)
	if err != nil {
		client.Close()

		return nil, fmt.Errorf("setting up session for %s: %w", baseURL, err)
	}

	if token == "" {
		log.Info("authentication returned no access token, requests will be unauthenticated", "baseURL", baseURL, "username", credentials.Username)
	}

	client.SetAuthToken(token)

	log.V(1).Info("session established", "baseURL", baseURL, "username", credentials.Username)

	return &Session{
		BaseURL: client.BaseURL(),
		Token:   token,
		Client:  client,
	}, nil
}

// Close releases the client's connections.
func (s *Session) Close() {
	s.Client.Close()
}
