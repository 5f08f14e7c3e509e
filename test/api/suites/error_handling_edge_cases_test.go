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
	"context"
	"net/http"
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/softuni-qa/foody/pkg/foody"
	"github.com/softuni-qa/foody/pkg/scenario"
	"github.com/softuni-qa/foody/test/api"
)

var _ = Describe("Error Handling and Edge Cases", func() {
	Context("When encountering transport failures", func() {
		Describe("Given network and infrastructure issues", func() {
			It("should surface request timeouts as errors", func() {
				// Given: A client whose timeout cannot be met
				// When: I list foods
				// Then: An error is returned instead of a response
				client := newClient(foody.WithTimeout(time.Nanosecond), foody.WithAuthToken(session.Token))

				resp, err := client.ListFoods(ctx)
				Expect(err).To(HaveOccurred())
				Expect(resp).To(BeNil())
			})

			It("should surface cancellation as errors", func() {
				cancelled, cancel := context.WithCancel(ctx)
				cancel()

				_, err := session.Client.ListFoods(cancelled)
				Expect(err).To(MatchError(context.Canceled))
			})
		})
	})

	Context("When the service wraps its messages", func() {
		Describe("Given a negative path body that isn't a bare message", func() {
			It("should match the message as a fragment of the body", func() {
				// Given: Bodies that carry the message inside other text or fields
				// When: I check them for the message
				// Then: Each one matches
				bodies := []string{
					`{"msg":"No food revues..."}`,
					`{"title":"Not Found","msg":"No food revues...","status":404}`,
					`No food revues... for id 12345`,
				}

				for _, body := range bodies {
					api.ExpectBodyContains(&foody.Response{StatusCode: http.StatusNotFound, Body: []byte(body)}, scenario.MsgFoodNotFound)
				}
			})
		})
	})

	Context("When encountering unexpected system states", func() {
		Describe("Given unusual timing conditions", func() {
			It("should handle operations on deleted resources", func() {
				// Given: A food that has been deleted
				// When: I attempt to edit it
				// Then: The request is rejected with the no food message
				foodID := api.CreateFoodWithCleanup(ctx, session, api.NewFoodPayload().Build())

				resp, err := session.Client.DeleteFood(ctx, foodID)
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(Equal(http.StatusOK))

				patch := api.NewPatch().Replace(scenario.NamePath, scenario.EditedName).Build()

				resp, err = session.Client.EditFood(ctx, foodID, patch)
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(Equal(http.StatusNotFound))
				api.ExpectBodyContains(resp, scenario.MsgFoodNotFound)
			})

			It("should handle simultaneous creates", func() {
				// Given: Several create requests in flight at once
				// When: They all complete
				// Then: Every food has its own ID
				const workers = 5

				var (
					wg   sync.WaitGroup
					lock sync.Mutex
					ids  []string
				)

				for range workers {
					wg.Add(1)

					go func() {
						defer GinkgoRecover()
						defer wg.Done()

						resp, err := session.Client.CreateFood(ctx, api.NewFoodPayload().Build())
						Expect(err).NotTo(HaveOccurred())
						Expect(resp.StatusCode).To(Equal(http.StatusCreated))

						decoded, err := foody.Decode[foody.APIResponse](resp.Body)
						Expect(err).NotTo(HaveOccurred())

						foodID, err := decoded.RequireFoodID()
						Expect(err).NotTo(HaveOccurred())

						lock.Lock()
						ids = append(ids, foodID)
						lock.Unlock()
					}()
				}

				wg.Wait()

				DeferCleanup(func() {
					for _, id := range ids {
						_, _ = session.Client.DeleteFood(ctx, id)
					}
				})

				Expect(ids).To(HaveLen(workers))

				seen := map[string]struct{}{}
				for _, id := range ids {
					seen[id] = struct{}{}
				}

				Expect(seen).To(HaveLen(workers))
			})
		})
	})
})
