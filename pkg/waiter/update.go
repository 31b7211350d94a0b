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
	"net/http"

	"github.com/go-logr/logr"
)

// RetryUpdate re-invokes a mutating call while the backend answers 404 because
// the resource it targets has not propagated yet. A 200 is returned straight
// away. Any other status is terminal and returned with a nil error so the
// caller can assert on it.
func RetryUpdate[R Observation](ctx context.Context, resource string, update Probe[R], policy Policy, opts ...Option) (R, error) {
	var zero R

	if err := policy.Validate(); err != nil {
		return zero, err
	}

	o := newOptions(opts)

	log := logr.FromContextOrDiscard(ctx).WithValues("resource", resource, "operation", OperationUpdate)

	var (
		last    Observation
		lastErr error
	)

	for attempt := 1; attempt <= policy.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return zero, fmt.Errorf("updating %s: %w", resource, err)
		}

		observed, err := update(ctx)
		if err == nil && isNil(observed) {
			err = ErrNoResult
		}

		if err != nil {
			lastErr = err

			log.Info("update failed", "attempt", attempt, "maxAttempts", policy.MaxAttempts, "error", err.Error())
		} else {
			last = observed
			lastErr = nil

			log.Info("update returned", "attempt", attempt, "maxAttempts", policy.MaxAttempts, "status", observed.Status())

			if observed.Status() != http.StatusNotFound {
				return observed, nil
			}
		}

		if attempt < policy.MaxAttempts {
			if err := o.pause(ctx, policy.Delay); err != nil {
				return zero, fmt.Errorf("updating %s: %w", resource, err)
			}
		}
	}

	log.Info("retry budget exhausted", "attempts", policy.MaxAttempts)

	return zero, &PollTimeoutError{
		Resource:  resource,
		Operation: OperationUpdate,
		Expected:  Status(http.StatusOK),
		Attempts:  policy.MaxAttempts,
		Last:      last,
		LastErr:   lastErr,
	}
}
