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

// Package api provides the Ginkgo side of the pet store integration tests:
// payload builders, assertion helpers and fixtures that schedule cleanup.
//
// # Eventual Consistency
//
// The public store is eventually consistent: a pet that was just created can
// answer 404 for a while, and an update can race the create before it.
// WaitForPet, WaitForOrder and UpdateWithRetry wrap the pkg/waiter loops with
// the budgets from petstore.Config, and ExpectSettled decides whether a spent
// budget fails the spec or marks it inconclusive.
//
// The client, models and contract validator live in pkg/petstore so that
// binaries can use them without linking the test framework.
package api
