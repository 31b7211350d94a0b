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

package waiter

import (
	"context"
	"fmt"
	"reflect"

	"github.com/go-logr/logr"
)

// Observation is anything a probe returns that carries an HTTP status.
type Observation interface {
	Status() int
}

// Probe performs one attempt. It is pre-bound by the caller to the client and
// identifier it needs, the waiter only invokes it.
type Probe[R Observation] func(ctx context.Context) (R, error)

// isNil catches a probe handing back a nil pointer with a nil error, which
// would otherwise panic on Status.
func isNil(o Observation) bool {
	if o == nil {
		return true
	}

	v := reflect.ValueOf(o)

	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	default:
		return false
	}
}

// Wait calls probe until the observed status is one of expected, sleeping
// policy.Delay between attempts. It returns the first matching observation.
// When the budget is spent it returns a *PollTimeoutError.
func Wait[R Observation](ctx context.Context, resource string, probe Probe[R], expected Expectation, policy Policy, opts ...Option) (R, error) {
	var zero R

	if err := policy.Validate(); err != nil {
		return zero, err
	}

	if expected.Empty() {
		return zero, fmt.Errorf("%w: no expected status for %s", ErrInvalidPolicy, resource)
	}

	o := newOptions(opts)

	log := logr.FromContextOrDiscard(ctx).WithValues("resource", resource, "expected", expected.String())

	var (
		last    Observation
		lastErr error
	)

	for attempt := 1; attempt <= policy.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return zero, fmt.Errorf("waiting for %s: %w", resource, err)
		}

		observed, err := probe(ctx)
		if err == nil && isNil(observed) {
			err = ErrNoResult
		}

		if err != nil {
			lastErr = err

			log.Info("probe failed", "attempt", attempt, "maxAttempts", policy.MaxAttempts, "error", err.Error())
		} else {
			last = observed
			lastErr = nil

			log.Info("observed status", "attempt", attempt, "maxAttempts", policy.MaxAttempts, "status", observed.Status())

			if expected.Matches(observed.Status()) {
				return observed, nil
			}
		}

		if attempt < policy.MaxAttempts {
			if err := o.pause(ctx, policy.Delay); err != nil {
				return zero, fmt.Errorf("waiting for %s: %w", resource, err)
			}
		}
	}

	log.Info("retry budget exhausted", "attempts", policy.MaxAttempts)

	return zero, &PollTimeoutError{
		Resource:  resource,
		Operation: OperationWait,
		Expected:  expected,
		Attempts:  policy.MaxAttempts,
		Last:      last,
		LastErr:   lastErr,
	}
}
