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
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/softuni-qa/foody/pkg/foodytest"
	"github.com/softuni-qa/foody/pkg/scenario"
	"github.com/softuni-qa/foody/test/api"
)

var _ = Describe("Food Lifecycle", Ordered, ContinueOnFailure, func() {
	var fixture *scenario.Fixture

	BeforeAll(func() {
		fixture = &scenario.Fixture{}
	})

	for _, s := range scenario.Foody() {
		It(s.Name, func() {
			api.RunScenario(ctx, session, fixture, s, validator)
		})
	}

	It("should have handed the created food along the chain", func() {
		Expect(fixture.FoodID).NotTo(BeEmpty())
	})
})

var _ = Describe("Scenario Runner", func() {
	Context("When running the whole chain in one go", func() {
		It("should report every scenario as passed", func() {
			// Given: A fresh fixture
			// When: The chain is run end to end
			// Then: Every scenario should report its own outcome, in order
			runner := scenario.NewRunner(scenario.Foody())
			runner.Contract = validator

			report, err := runner.Run(ctx, session, &scenario.Fixture{})
			Expect(err).NotTo(HaveOccurred())
			Expect(report.Outcomes).To(HaveLen(len(scenario.Foody())))

			for _, outcome := range report.Outcomes {
				Expect(outcome.Err).NotTo(HaveOccurred(), "scenario %d", outcome.Order)
			}

			Expect(report.Failed()).To(BeZero())
		})
	})

	Context("When the session is not authenticated", func() {
		It("should still run every scenario and report each failure", func() {
			// Given: A session whose login was rejected
			// When: The chain is run
			// Then: No scenario is skipped, each one fails on its own
			if !cfg.UseFake() {
				Skip("rejected login responses are only known for the in-process service")
			}

			anonymous, err := scenario.Setup(ctx, session.BaseURL, scenario.Credentials{
				Username: foodytest.Username,
				Password: "not-" + foodytest.Password,
			})
			Expect(err).NotTo(HaveOccurred())
			DeferCleanup(anonymous.Close)

			Expect(anonymous.Token).To(BeEmpty())

			report, err := scenario.NewRunner(scenario.Foody()).Run(ctx, anonymous, &scenario.Fixture{})
			Expect(err).NotTo(HaveOccurred())
			Expect(report.Outcomes).To(HaveLen(len(scenario.Foody())))
			Expect(report.Failed()).To(Equal(len(report.Outcomes)))

			Expect(report.Outcomes[1].Err).To(MatchError(scenario.ErrFixtureNotSet))
		})
	})
})
