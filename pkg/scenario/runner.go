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
	"time"

	"github.com/go-logr/logr"

	"github.com/softuni-qa/foody/pkg/foody"
)

// ResponseValidator checks a response against a contract.
type ResponseValidator interface {
	ValidateResponse(ctx context.Context, resp *foody.Response) error
}

// Outcome is the result of a single scenario.
type Outcome struct {
	Order    int
	Name     string
	Response *foody.Response
	Err      error
	Duration time.Duration
}

// Passed is true if every assertion held.
func (o *Outcome) Passed() bool {
	return o.Err == nil
}

// Report is the result of a run, one outcome per executed scenario.
type Report struct {
	Outcomes []Outcome
	Started  time.Time
	Duration time.Duration
}

// Failed returns the number of failed scenarios.
func (r *Report) Failed() int {
	var failed int

	for i := range r.Outcomes {
		if !r.Outcomes[i].Passed() {
			failed++
		}
	}

	return failed
}

// OutcomeSummary is the serializable form of an Outcome.
type OutcomeSummary struct {
	Order    int    `json:"order" yaml:"order"`
	Name     string `json:"name" yaml:"name"`
	Passed   bool   `json:"passed" yaml:"passed"`
	Status   int    `json:"status,omitempty" yaml:"status,omitempty"`
	TraceID  string `json:"traceId,omitempty" yaml:"traceId,omitempty"`
	Error    string `json:"error,omitempty" yaml:"error,omitempty"`
	Duration string `json:"duration" yaml:"duration"`
}

// Summary is the serializable form of a Report.
type Summary struct {
	Started  time.Time        `json:"started" yaml:"started"`
	Duration string           `json:"duration" yaml:"duration"`
	Passed   int              `json:"passed" yaml:"passed"`
	Failed   int              `json:"failed" yaml:"failed"`
	Outcomes []OutcomeSummary `json:"outcomes" yaml:"outcomes"`
}

// Summary converts the report for output.
func (r *Report) Summary() *Summary {
	failed := r.Failed()

	out := &Summary{
		Started:  r.Started,
		Duration: r.Duration.String(),
		Passed:   len(r.Outcomes) - failed,
		Failed:   failed,
		Outcomes: make([]OutcomeSummary, len(r.Outcomes)),
	}

	for i := range r.Outcomes {
		o := &r.Outcomes[i]

		s := OutcomeSummary{
			Order:    o.Order,
			Name:     o.Name,
			Passed:   o.Passed(),
			Duration: o.Duration.String(),
		}

		if o.Response != nil {
			s.Status = o.Response.StatusCode
			s.TraceID = o.Response.TraceID
		}

		if o.Err != nil {
			s.Error = o.Err.Error()
		}

		out.Outcomes[i] = s
	}

	return out
}

// Runner executes a scenario chain one step at a time.
type Runner struct {
	// Scenarios in execution order.
	Scenarios []Scenario
	// Contract, if set, validates every response a passing scenario made.
	Contract ResponseValidator
	// Filter, if set, selects which scenarios run.  Skipped scenarios have
	// no outcome.
	Filter func(Scenario) bool
}

// NewRunner returns a runner for the given chain.
func NewRunner(scenarios []Scenario) *Runner {
	return &Runner{
		Scenarios: scenarios,
	}
}

// Run executes the chain in order.  A failing scenario never stops the
// chain, later scenarios still run and report their own outcome.  An error
// is only returned if the chain itself is malformed.
func (r *Runner) Run(ctx context.Context, session *Session, fixture *Fixture) (*Report, error) {
	if err := Validate(r.Scenarios); err != nil {
		return nil, err
	}

	log := logr.FromContextOrDiscard(ctx)

	report := &Report{
		Started: time.Now(),
	}

	for _, s := range r.Scenarios {
		if r.Filter != nil && !r.Filter(s) {
			log.V(1).Info("skipping scenario", "order", s.Order, "name", s.Name)
			continue
		}

		outcome := r.run(ctx, session, fixture, s)

		if outcome.Passed() {
			log.Info("scenario passed", "order", s.Order, "name", s.Name, "duration", outcome.Duration)
		} else {
			log.Error(outcome.Err, "scenario failed", "order", s.Order, "name", s.Name, "duration", outcome.Duration)
		}

		report.Outcomes = append(report.Outcomes, outcome)
	}

	report.Duration = time.Since(report.Started)

	return report, nil
}

// Execute runs a single scenario, including contract validation, outside of a Runner.
func Execute(ctx context.Context, session *Session, fixture *Fixture, s Scenario, contract ResponseValidator) (*foody.Response, error) {
	resp, err := s.Run(ctx, session.Client, fixture)
	if err != nil {
		return resp, err
	}

	if contract != nil && resp != nil {
		if err := contract.ValidateResponse(ctx, resp); err != nil {
			return resp, fmt.Errorf("checking contract: %w", err)
		}
	}

	return resp, nil
}

func (r *Runner) run(ctx context.Context, session *Session, fixture *Fixture, s Scenario) Outcome {
	start := time.Now()

	resp, err := Execute(ctx, session, fixture, s, r.Contract)

	return Outcome{
		Order:    s.Order,
		Name:     s.Name,
		Response: resp,
		Err:      err,
		Duration: time.Since(start),
	}
}
