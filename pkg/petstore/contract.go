/*
Copyright 2026 the Petstore API Tests Authors.

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

package petstore

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
)

//go:embed openapi/petstore.yaml
var petstoreSchema []byte

var (
	// ErrUndocumentedRoute is returned when a response is checked against a
	// route or method that the document does not describe.
	ErrUndocumentedRoute = errors.New("route not documented")

	// ErrContractViolation wraps every schema mismatch.
	ErrContractViolation = errors.New("response violates contract")
)

// ContractValidator checks responses against the embedded OpenAPI document.
// The client is written independently of the document so a drift in either
// shows up as a failure here.
type ContractValidator struct {
	spec *openapi3.T
}

// NewContractValidator loads and validates the embedded document.
func NewContractValidator(ctx context.Context) (*ContractValidator, error) {
	loader := openapi3.NewLoader()

	spec, err := loader.LoadFromData(petstoreSchema)
	if err != nil {
		return nil, fmt.Errorf("loading openapi document: %w", err)
	}

	if err := spec.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validating openapi document: %w", err)
	}

	return &ContractValidator{
		spec: spec,
	}, nil
}

// Spec exposes the parsed document.
func (v *ContractValidator) Spec() *openapi3.T {
	return v.spec
}

func (v *ContractValidator) route(method, path string) (*routers.Route, error) {
	pathItem := v.spec.Paths.Find(path)
	if pathItem == nil {
		return nil, fmt.Errorf("%w: %s", ErrUndocumentedRoute, path)
	}

	operation := pathItem.GetOperation(method)
	if operation == nil {
		return nil, fmt.Errorf("%w: %s %s", ErrUndocumentedRoute, method, path)
	}

	return &routers.Route{
		Spec:      v.spec,
		Path:      path,
		PathItem:  pathItem,
		Method:    method,
		Operation: operation,
	}, nil
}

// Validate checks status, headers and body of r against the operation its
// route and method name. Statuses the operation does not document pass.
func (v *ContractValidator) Validate(ctx context.Context, r *Response) error {
	route, err := v.route(r.Method, r.Route)
	if err != nil {
		return err
	}

	u, err := url.Parse(r.URL)
	if err != nil {
		return fmt.Errorf("parsing response url: %w", err)
	}

	request := &http.Request{
		Method: r.Method,
		URL:    u,
		Header: http.Header{},
	}

	header := r.Header
	if header == nil {
		header = http.Header{}
	}

	input := &openapi3filter.ResponseValidationInput{
		RequestValidationInput: &openapi3filter.RequestValidationInput{
			Request: request,
			Route:   route,
		},
		Status: r.StatusCode,
		Header: header,
		Options: &openapi3filter.Options{
			MultiError: true,
		},
	}

	input.SetBodyBytes(bytes.Clone(r.Body))

	if err := openapi3filter.ValidateResponse(ctx, input); err != nil {
		return fmt.Errorf("%w: %s %s -> %d (trace ID: %s): %w", ErrContractViolation, r.Method, r.Route, r.StatusCode, r.TraceID, err)
	}

	return nil
}

// Documents reports whether the document describes method on route.
func (v *ContractValidator) Documents(method, route string) bool {
	_, err := v.route(method, route)

	return err == nil
}
