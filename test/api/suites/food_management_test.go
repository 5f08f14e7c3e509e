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

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/softuni-qa/foody/pkg/foody"
	"github.com/softuni-qa/foody/pkg/scenario"
	"github.com/softuni-qa/foody/test/api"
)

var _ = Describe("Food Management", func() {
	Context("When creating a food", func() {
		Describe("Given a valid payload", func() {
			It("should return a food ID that appears in the listing", func() {
				// Given: A payload with a name and description
				// When: I create the food
				// Then: A food ID is returned
				// And: The food is listed
				foodID := api.CreateFoodWithCleanup(ctx, session, api.NewFoodPayload().Build())

				api.VerifyFoodPresence(api.ListFoods(ctx, session), foodID)
			})

			It("should return distinct IDs for identical payloads", func() {
				payload := api.NewFoodPayload().Build()

				first := api.CreateFoodWithCleanup(ctx, session, payload)
				second := api.CreateFoodWithCleanup(ctx, session, payload)

				Expect(first).NotTo(Equal(second))
			})
		})

		Describe("Given a payload missing a required field", func() {
			DescribeTable("should reject the request with 400 Bad Request",
				func(payload foody.Food) {
					resp, err := session.Client.CreateFood(ctx, payload)
					Expect(err).NotTo(HaveOccurred())
					Expect(resp.StatusCode).To(Equal(http.StatusBadRequest), "body: %s", resp.String())
				},
				Entry("missing name", api.NewFoodPayload().WithName("").Build()),
				Entry("missing description", api.NewFoodPayload().WithDescription("").Build()),
				Entry("missing both", api.NewFoodPayload().WithName("").WithDescription("").Build()),
			)
		})
	})

	Context("When editing a food", func() {
		Describe("Given the food exists", func() {
			It("should apply every replace operation", func() {
				// Given: An existing food
				// When: I replace its name and description
				// Then: The edit succeeds with the edited message
				// And: The listing shows the new values
				foodID := api.CreateFoodWithCleanup(ctx, session, api.NewFoodPayload().Build())

				patch := api.NewPatch().
					Replace(scenario.NamePath, scenario.EditedName).
					Replace("/description", "Edited description").
					Build()

				resp, err := session.Client.EditFood(ctx, foodID, patch)
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(Equal(http.StatusOK), "body: %s", resp.String())
				api.ExpectMessage(resp, scenario.MsgEdited)

				var found *foody.FoodSummary

				for _, f := range api.ListFoods(ctx, session) {
					if f.Identifier() == foodID {
						found = &f
					}
				}

				Expect(found).NotTo(BeNil())
				Expect(found.Name).To(HaveValue(Equal(scenario.EditedName)))
				Expect(found.Description).To(HaveValue(Equal("Edited description")))
			})
		})

		Describe("Given the food does not exist", func() {
			It("should return 404 Not Found with the no food message", func() {
				patch := api.NewPatch().Replace(scenario.NamePath, scenario.MissingFoodName).Build()

				resp, err := session.Client.EditFood(ctx, scenario.MissingFoodID, patch)
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(Equal(http.StatusNotFound), "body: %s", resp.String())
				api.ExpectBodyContains(resp, scenario.MsgFoodNotFound)
			})
		})
	})

	Context("When deleting a food", func() {
		Describe("Given the food exists", func() {
			It("should remove it from the listing", func() {
				foodID := api.CreateFoodWithCleanup(ctx, session, api.NewFoodPayload().Build())

				resp, err := session.Client.DeleteFood(ctx, foodID)
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(Equal(http.StatusOK), "body: %s", resp.String())
				api.ExpectMessage(resp, scenario.MsgDeleted)

				api.VerifyFoodAbsence(api.ListFoods(ctx, session), foodID)
			})
		})

		Describe("Given idempotent operations", func() {
			It("should reject a second delete of the same food", func() {
				// Given: A food that has already been deleted
				// When: I delete it again
				// Then: The request is rejected with the unable to delete message
				foodID := api.CreateFoodWithCleanup(ctx, session, api.NewFoodPayload().Build())

				resp, err := session.Client.DeleteFood(ctx, foodID)
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(Equal(http.StatusOK))

				resp, err = session.Client.DeleteFood(ctx, foodID)
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(Equal(http.StatusBadRequest), "body: %s", resp.String())
				api.ExpectBodyContains(resp, scenario.MsgUnableToDelete)
			})
		})
	})
})
