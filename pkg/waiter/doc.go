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

// Package waiter turns a single "fire a request, look at the status" probe into
// a bounded wait for an eventually consistent backend to reach an observable
// state.
//
// # Waiters
//
// [Wait] re-runs a read-only probe until the observed HTTP status is one of an
// [Expectation], for example "200 once a freshly created pet is visible" or
// "either 200 or 404 while a delete propagates".
//
// [RetryUpdate] re-runs the mutating call itself while the backend answers 404,
// which is what the demo pet store does when an update races the create that
// preceded it. Any status other than 200 or 404 is terminal and handed back to
// the caller untouched.
//
// # Probe errors
//
// Both waiters treat an error returned by the probe (connection reset, read
// timeout, undecodable body) as transient: it is recorded as the last
// observation and consumes one attempt. Only cancellation of the caller's
// context stops a wait early.
//
// # Exhaustion
//
// When the attempt budget runs out the waiters return a [*PollTimeoutError]
// naming the resource, the expected condition, the number of attempts and the
// last thing observed. It matches [ErrBudgetExhausted] with errors.Is.
package waiter
