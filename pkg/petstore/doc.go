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

// Package petstore is a client for the pet store demo API.
//
// # Separate Client Implementation
//
// APIClient is hand written rather than generated from the OpenAPI document in
// openapi/petstore.yaml. The document is used only by ContractValidator, so a
// change on either side that the other does not follow shows up as a failing
// contract check instead of silently regenerating away.
//
// The client never judges a status code. Every call returns the raw
// [Response], which satisfies the waiter's Observation interface, so the same
// call can be an assertion target, a polling probe, or a retried update.
//
// # Features
//
//   - W3C trace context propagation for request correlation
//   - Request and response logging through the logger carried in the context
//   - Client-side rate limiting for the shared public instance
//   - Poll budgets per call site, overridable from a YAML file
//
// Configuration comes from environment variables and an optional .env file,
// see [LoadConfig].
package petstore
