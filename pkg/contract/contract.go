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

// Package contract checks Foody responses against the service's OpenAPI
// description.
package contract

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"

	"github.com/softuni-qa/foody/pkg/foody"
)

var (
	// ErrNoRoute is raised when a response came from a path the contract doesn't describe.
	ErrNoRoute = errors.New("no matching route")

	// ErrViolation is raised when a response doesn't conform to the contract.
	ErrViolation = errors.New("contract violation")
)

//go:embed foody.yaml
var document []byte

// Document returns the embedded OpenAPI description.
func Document() []byte {
	return document
}

// Validator validates responses for a single service root.
type Validator struct {
	doc    *openapi3.T
	router routers.Router
}

// New returns a validator for the embedded contract served at baseURL.
func New(baseURL string) (*Validator, error) {
	return NewFromData(document, baseURL)
}

// NewFromData returns a validator for an arbitrary OpenAPI document served at baseURL.
func NewFromData(data []byte, baseURL string) (*Validator, error) {
	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("loading contract: %w", err)
	}

	// Routes are matched on the full URL, so bind the document to the target.
	doc.Servers = openapi3.Servers{
		{
			URL: strings.TrimSuffix(baseURL, "/"),
		},
	}

	if err := doc.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("invalid contract: %w", err)
	}

	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("creating contract router: %w", err)
	}

	return &Validator{
		doc:    doc,
		router: router,
	}, nil
}

// ValidateResponse checks the status code and, for statuses that declare
// one, the body of a response.
func (v *Validator) ValidateResponse(ctx context.Context, resp *foody.Response) error {
	req, err := http.NewRequestWithContext(ctx, resp.Method, resp.URL, nil)
	if err != nil {
		return fmt.Errorf("creating route request: %w", err)
	}

	route, pathParams, err := v.router.FindRoute(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %w", ErrNoRoute, resp.Method, resp.URL, err)
	}

	input := &openapi3filter.ResponseValidationInput{
		RequestValidationInput: &openapi3filter.RequestValidationInput{
			Request:    req,
			PathParams: pathParams,
			Route:      route,
		},
		Status: resp.StatusCode,
		Header: resp.Header,
		Options: &openapi3filter.Options{
			MultiError:            true,
			IncludeResponseStatus: true,
		},
	}

	input.SetBodyBytes(resp.Body)

	if err := openapi3filter.ValidateResponse(ctx, input); err != nil {
		return fmt.Errorf("%w: %s %s status %d (trace ID: %s): %w", ErrViolation, resp.Method, route.Path, resp.StatusCode, resp.TraceID, err)
	}

	return nil
}
