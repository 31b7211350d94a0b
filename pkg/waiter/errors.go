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
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrBudgetExhausted is matched by every [*PollTimeoutError].
	ErrBudgetExhausted = errors.New("retry budget exhausted")

	// ErrInvalidPolicy is returned before any probe call when the policy
	// or expectation cannot drive a wait.
	ErrInvalidPolicy = errors.New("invalid poll policy")

	// ErrNoResult is recorded when a probe returns neither a result nor an
	// error. It is transient like any other probe error.
	ErrNoResult = errors.New("probe returned no result")
)

// Operation names carried by a [*PollTimeoutError].
const (
	OperationWait   = "wait"
	OperationUpdate = "update"
)

// PollTimeoutError reports that a waiter ran out of attempts.
type PollTimeoutError struct {
	// Resource identifies what was being waited on, e.g. "pet 42".
	Resource string
	// Operation is OperationWait or OperationUpdate.
	Operation string
	// Expected is the condition that was never met.
	Expected Expectation
	// Attempts is the number of probe calls made.
	Attempts int
	// Last is the most recent successful observation, nil if every
	// attempt failed.
	Last Observation
	// LastErr is the probe error of the final attempt, if it failed.
	LastErr error
}

func (e *PollTimeoutError) Error() string {
	var b strings.Builder

	switch e.Operation {
	case OperationUpdate:
		fmt.Fprintf(&b, "%s: update not accepted after %d attempts, expected status %s", e.Resource, e.Attempts, e.Expected)
	default:
		fmt.Fprintf(&b, "%s: not in expected state after %d attempts, expected status %s", e.Resource, e.Attempts, e.Expected)
	}

	if e.Last != nil {
		fmt.Fprintf(&b, ", last status %d", e.Last.Status())

		if s, ok := e.Last.(fmt.Stringer); ok {
			fmt.Fprintf(&b, " (%s)", s)
		}
	}

	if e.LastErr != nil {
		fmt.Fprintf(&b, ", last error: %v", e.LastErr)
	}

	return b.String()
}

func (e *PollTimeoutError) Unwrap() []error {
	if e.LastErr != nil {
		return []error{ErrBudgetExhausted, e.LastErr}
	}

	return []error{ErrBudgetExhausted}
}
