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
//nolint:revive,testpackage // dot imports and package naming standard for Ginkgo
package suites

import (
	"net/http"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/softuni-qa/foody/pkg/foody"
	"github.com/softuni-qa/foody/pkg/foodytest"
	"github.com/softuni-qa/foody/test/api"
)

// newClient returns a client for the session's target that doesn't share its token.
func newClient(options ...foody.Option) *foody.APIClient {
	client := foody.NewAPIClient(session.BaseURL, options...)
	DeferCleanup(client.Close)

	return client
}

var _ = Describe("Security and Authentication", func() {
	Context("When accessing API with different authentication states", func() {
		Describe("Given invalid authentication", func() {
			It("should reject requests with missing authentication", func() {
				// Given: No authentication token provided
				// When: I make any food API request
				// Then: The request should be rejected with 401 Unauthorized
				client := newClient()

				resp, err := client.CreateFood(ctx, api.NewFoodPayload().Build())
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(Equal(http.StatusUnauthorized))

				resp, err = client.ListFoods(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(Equal(http.StatusUnauthorized))
			})

			It("should reject requests with invalid tokens", func() {
				// Given: A malformed authentication token
				// When: I make any food API request
				// Then: The request should be rejected with 401 Unauthorized
				client := newClient(foody.WithAuthToken("not.a.token"))

				resp, err := client.ListFoods(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(Equal(http.StatusUnauthorized))
			})

			It("should reject requests with expired tokens", func() {
				// Given: A token that expired a minute ago
				// When: I make any food API request
				// Then: The request should be rejected with 401 Unauthorized
				server := foodytest.NewServer(foodytest.WithTokenLifetime(-time.Minute))
				DeferCleanup(server.Close)

				token, err := server.IssueToken(foodytest.Username)
				Expect(err).NotTo(HaveOccurred())

				client := foody.NewAPIClient(server.URL, foody.WithAuthToken(token))
				DeferCleanup(client.Close)

				resp, err := client.ListFoods(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(Equal(http.StatusUnauthorized))
			})
		})

		Describe("Given invalid credentials", func() {
			It("should not issue an access token", func() {
				// Given: A known user with the wrong password
				// When: I log in
				// Then: No access token is returned
				if !cfg.UseFake() {
					Skip("rejected login responses are only known for the in-process service")
				}

				token, err := newClient().Login(ctx, foodytest.Username, "not-"+foodytest.Password)
				Expect(err).NotTo(HaveOccurred())
				Expect(token).To(BeEmpty())
			})
		})

		Describe("Given valid credentials", func() {
			It("should issue a fresh access token", func() {
				// Given: The suite's credentials
				// When: I log in again with a client holding no token
				// Then: A non-empty access token is returned
				username, password := cfg.Username, cfg.Password
				if cfg.UseFake() {
					username, password = foodytest.Username, foodytest.Password
				}

				token, err := newClient().Login(ctx, username, password)
				Expect(err).NotTo(HaveOccurred())
				Expect(token).NotTo(BeEmpty())
			})
		})
	})

	Context("When submitting malicious input", func() {
		Describe("Given security testing", func() {
			It("should store SQL injection payloads verbatim", func() {
				// Given: A name containing SQL injection payloads
				// When: I create the food
				// Then: The food is created and listed with the name unchanged
				name := "'; DROP TABLE Foods; --"

				foodID := api.CreateFoodWithCleanup(ctx, session, api.NewFoodPayload().WithName(name).Build())

				for _, f := range api.ListFoods(ctx, session) {
					if f.Identifier() == foodID {
						Expect(f.Name).To(HaveValue(Equal(name)))
					}
				}
			})

			It("should handle path traversal attempts", func() {
				// Given: A food ID containing path traversal sequences
				// When: I attempt to delete it
				// Then: Nothing is deleted
				foodID := api.CreateFoodWithCleanup(ctx, session, api.NewFoodPayload().Build())

				resp, err := session.Client.DeleteFood(ctx, "../All")
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).NotTo(Equal(http.StatusOK))

				api.VerifyFoodPresence(api.ListFoods(ctx, session), foodID)
			})
		})
	})
})
