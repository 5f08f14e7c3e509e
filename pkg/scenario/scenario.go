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

// Package scenario drives ordered, dependent API scenarios against the
// Foody service.  State produced by one scenario and consumed by a later
// one travels in an explicit Fixture rather than package globals, and the
// order is the order of the slice handed to the Runner.
package scenario

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/softuni-qa/foody/pkg/foody"
)

var (
	// ErrFixtureNotSet is raised by a scenario that depends on state an
	// earlier scenario failed to produce.
	ErrFixtureNotSet = errors.New("fixture food ID not set")

	// ErrOutOfOrder is raised when scenario orders are not strictly increasing.
	ErrOutOfOrder = errors.New("scenarios out of order")
)

// Fixture is the state shared along a scenario chain.
type Fixture struct {
	// FoodID is set by the create scenario and read by edit and delete.
	FoodID string
}

// RequireFoodID returns the created food ID, or ErrFixtureNotSet.
func (f *Fixture) RequireFoodID() (string, error) {
	if f.FoodID == "" {
		return "", ErrFixtureNotSet
	}

	return f.FoodID, nil
}

// Func executes one scenario.  It returns the response it made its
// assertions on, which may be nil if it never reached the service.
type Func func(ctx context.Context, client *foody.APIClient, fixture *Fixture) (*foody.Response, error)

// Scenario is one step of an ordered chain.
type Scenario struct {
	// Order is the declared position, orders must strictly increase.
	Order int
	// Name describes the step and its expected outcome.
	Name string
	// Run performs the step.
	Run Func
}

// AssertionError describes an expectation the service didn't meet.
type AssertionError struct {
	What     string
	Expected any
	Actual   any
	TraceID  string
}

func (e *AssertionError) Error() string {
	msg := fmt.Sprintf("%s: expected %v, got %v", e.What, e.Expected, e.Actual)

	if e.TraceID != "" {
		msg += fmt.Sprintf(" (trace ID: %s)", e.TraceID)
	}

	return msg
}

func expectStatus(resp *foody.Response, status int) error {
	if resp.StatusCode != status {
		return &AssertionError{
			What:     "status code",
			Expected: status,
			Actual:   fmt.Sprintf("%d, body: %s", resp.StatusCode, resp.String()),
			TraceID:  resp.TraceID,
		}
	}

	return nil
}

func expectMsg(resp *foody.Response, msg string) error {
	decoded, err := foody.Decode[foody.APIResponse](resp.Body)
	if err != nil {
		return err
	}

	actual, err := decoded.RequireMsg()
	if err != nil {
		return err
	}

	if actual != msg {
		return &AssertionError{
			What:     "message",
			Expected: msg,
			Actual:   actual,
			TraceID:  resp.TraceID,
		}
	}

	return nil
}

func expectBodyContains(resp *foody.Response, substr string) error {
	if !strings.Contains(resp.String(), substr) {
		return &AssertionError{
			What:     "body containing",
			Expected: fmt.Sprintf("%q", substr),
			Actual:   resp.String(),
			TraceID:  resp.TraceID,
		}
	}

	return nil
}

// Validate checks that orders are strictly increasing.
func Validate(scenarios []Scenario) error {
	for i := 1; i < len(scenarios); i++ {
		if scenarios[i].Order <= scenarios[i-1].Order {
			return fmt.Errorf("%w: %q (%d) follows %q (%d)", ErrOutOfOrder, scenarios[i].Name, scenarios[i].Order, scenarios[i-1].Name, scenarios[i-1].Order)
		}
	}

	return nil
}
