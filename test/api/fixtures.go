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

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package api

import (
	"context"
	"net/http"

	"github.com/go-logr/logr"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/softuni-qa/foody/pkg/config"
	"github.com/softuni-qa/foody/pkg/contract"
	"github.com/softuni-qa/foody/pkg/foody"
	"github.com/softuni-qa/foody/pkg/foodytest"
	"github.com/softuni-qa/foody/pkg/scenario"
)

// NewSession logs in and builds the shared client.  Teardown is scheduled
// with DeferCleanup, so when called from BeforeSuite or BeforeAll it runs
// exactly once after every spec in scope, pass or fail.  With no remote
// target configured an in-process service is started instead.
func NewSession(ctx context.Context, cfg *config.Config) *scenario.Session {
	baseURL := cfg.BaseURL
	credentials := scenario.Credentials{
		Username: cfg.Username,
		Password: cfg.Password,
	}

	if cfg.UseFake() {
		server := foodytest.NewServer()
		DeferCleanup(server.Close)

		baseURL = server.URL
		credentials = scenario.Credentials{
			Username: foodytest.Username,
			Password: foodytest.Password,
		}

		GinkgoWriter.Printf("FOODY_BASE_URL not set, using in-process Foody service at %s\n", baseURL)
	}

	session, err := scenario.Setup(logr.NewContext(ctx, GinkgoLogr), baseURL, credentials, cfg.ClientOptions(GinkgoLogr)...)
	Expect(err).NotTo(HaveOccurred(), "session setup against %s failed", baseURL)

	if session.Token == "" {
		GinkgoWriter.Printf("Warning: login as %s returned no access token, authenticated requests will be rejected\n", credentials.Username)
	}

	DeferCleanup(func() {
		GinkgoWriter.Printf("Closing session for %s\n", session.BaseURL)
		session.Close()
	})

	return session
}

// NewContractValidator returns the response validator for the session's
// target, or nil if contract validation is turned off.
func NewContractValidator(cfg *config.Config, session *scenario.Session) scenario.ResponseValidator {
	if !cfg.ValidateContract {
		return nil
	}

	validator, err := contract.New(session.BaseURL)
	Expect(err).NotTo(HaveOccurred())

	return validator
}

// RunScenario executes one step of a chain and fails the current spec if
// any of its expectations is not met.
func RunScenario(ctx context.Context, session *scenario.Session, fixture *scenario.Fixture, s scenario.Scenario, validator scenario.ResponseValidator) *foody.Response {
	resp, err := scenario.Execute(ctx, session, fixture, s, validator)

	if resp != nil {
		GinkgoWriter.Printf("[%d] %s status=%d duration=%s traceID=%s\n", s.Order, s.Name, resp.StatusCode, resp.Duration, resp.TraceID)
	}

	Expect(err).NotTo(HaveOccurred(), "scenario %d failed", s.Order)

	return resp
}

// CreateFoodWithCleanup creates a food and schedules its deletion.
func CreateFoodWithCleanup(ctx context.Context, session *scenario.Session, food foody.Food) string {
	resp, err := session.Client.CreateFood(ctx, food)
	Expect(err).NotTo(HaveOccurred())
	Expect(resp.StatusCode).To(Equal(http.StatusCreated), "body: %s", resp.String())

	decoded, err := foody.Decode[foody.APIResponse](resp.Body)
	Expect(err).NotTo(HaveOccurred())

	foodID, err := decoded.RequireFoodID()
	Expect(err).NotTo(HaveOccurred())

	GinkgoWriter.Printf("Created food with ID: %s\n", foodID)

	// Runs whether the spec passes or fails, a spec that deleted the food
	// itself just gets a warning.
	DeferCleanup(func() {
		resp, err := session.Client.DeleteFood(ctx, foodID)

		switch {
		case err != nil:
			GinkgoWriter.Printf("Warning: Failed to delete food %s: %v\n", foodID, err)
		case resp.StatusCode != http.StatusOK:
			GinkgoWriter.Printf("Warning: Delete of food %s returned %d\n", foodID, resp.StatusCode)
		default:
			GinkgoWriter.Printf("Successfully deleted food: %s\n", foodID)
		}
	})

	return foodID
}

// ListFoods lists every food and fails the spec if the listing isn't a valid array.
func ListFoods(ctx context.Context, session *scenario.Session) []foody.FoodSummary {
	resp, err := session.Client.ListFoods(ctx)
	Expect(err).NotTo(HaveOccurred())
	Expect(resp.StatusCode).To(Equal(http.StatusOK), "body: %s", resp.String())

	foods, err := foody.DecodeList[foody.FoodSummary](resp.Body)
	Expect(err).NotTo(HaveOccurred())

	return foods
}

// VerifyFoodPresence verifies that a food is present in the listing.
func VerifyFoodPresence(foods []foody.FoodSummary, foodID string) {
	Expect(extractFoodIDs(foods)).To(ContainElement(foodID), "Expected food ID %s to be present in the list", foodID)
}

// VerifyFoodAbsence verifies that a food is not present in the listing.
func VerifyFoodAbsence(foods []foody.FoodSummary, foodID string) {
	ids := extractFoodIDs(foods)

	if len(foods) != 0 {
		Expect(ids).NotTo(BeEmpty(), "Listed foods carry no identifier")
	}

	Expect(ids).NotTo(ContainElement(foodID), "Expected food ID %s to be absent from the list", foodID)
}

// extractFoodIDs extracts the identifiers of listed foods that carry one.
func extractFoodIDs(foods []foody.FoodSummary) []string {
	ids := make([]string, 0, len(foods))

	for _, f := range foods {
		if id := f.Identifier(); id != "" {
			ids = append(ids, id)
		}
	}

	return ids
}

// ExpectMessage decodes a message response and checks its content exactly.
func ExpectMessage(resp *foody.Response, msg string) {
	decoded, err := foody.Decode[foody.APIResponse](resp.Body)
	Expect(err).NotTo(HaveOccurred())
	Expect(decoded.Msg).NotTo(BeNil(), "response has no msg: %s", resp.String())
	Expect(*decoded.Msg).To(Equal(msg))
}

// ExpectBodyContains checks the raw body for a fragment, whatever its format.
func ExpectBodyContains(resp *foody.Response, substr string) {
	Expect(resp.String()).To(ContainSubstring(substr), "status %d, trace ID %s", resp.StatusCode, resp.TraceID)
}
