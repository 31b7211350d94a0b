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
	"time"

	"k8s.io/utils/clock"
)

//nolint:gochecknoglobals
var (
	// DefaultPolicy is the read-back budget used for pets.
	DefaultPolicy = Policy{MaxAttempts: 20, Delay: 3 * time.Second}

	// DefaultUpdatePolicy is the budget for retrying a mutating call.
	DefaultUpdatePolicy = Policy{MaxAttempts: 5, Delay: 2 * time.Second}
)

// Policy bounds a wait by number of attempts.
type Policy struct {
	// MaxAttempts is the number of probe calls before giving up.
	MaxAttempts int
	// Delay is slept between two consecutive attempts.
	Delay time.Duration
}

// Validate checks the policy can drive at least one attempt.
func (p Policy) Validate() error {
	if p.MaxAttempts < 1 {
		return fmt.Errorf("%w: max attempts must be at least 1, got %d", ErrInvalidPolicy, p.MaxAttempts)
	}

	if p.Delay < 0 {
		return fmt.Errorf("%w: delay must not be negative, got %s", ErrInvalidPolicy, p.Delay)
	}

	return nil
}

// Budget is the longest a wait under this policy sleeps, ignoring probe latency.
func (p Policy) Budget() time.Duration {
	if p.MaxAttempts < 1 {
		return 0
	}

	return time.Duration(p.MaxAttempts-1) * p.Delay
}

func (p Policy) String() string {
	return fmt.Sprintf("%d attempts every %s", p.MaxAttempts, p.Delay)
}

type options struct {
	clock clock.Clock
}

// Option customises a single wait.
type Option func(*options)

// WithClock replaces the wall clock used for sleeping between attempts.
func WithClock(c clock.Clock) Option {
	return func(o *options) {
		o.clock = c
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		clock: clock.RealClock{},
	}

	for _, opt := range opts {
		opt(o)
	}

	return o
}

// pause waits d on the configured clock. It returns the context error as soon
// as ctx is done.
func (o *options) pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-o.clock.After(d):
		return nil
	}
}
