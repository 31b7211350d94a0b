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
	"encoding/json"
	"fmt"
	"net/http"
)

// Response is the raw outcome of one request. The client never judges the
// status, that is left to the waiter or the assertion that follows.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte

	// Method and URL are what was sent.
	Method string
	URL    string
	// Route is the templated path, e.g. /pet/{petId}, used for contract lookups.
	Route string
	// TraceID is the W3C trace ID sent in the traceparent header.
	TraceID string
}

// Status implements waiter.Observation.
func (r *Response) Status() int {
	return r.StatusCode
}

// Decode unmarshals the JSON body into v.
func (r *Response) Decode(v any) error {
	if len(r.Body) == 0 {
		return fmt.Errorf("%w: %s %s returned %d with an empty body", ErrEmptyBody, r.Method, r.Route, r.StatusCode)
	}

	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("decoding %s %s response: %w", r.Method, r.Route, err)
	}

	return nil
}

const maxBodyInString = 256

func (r *Response) String() string {
	body := string(r.Body)
	if len(body) > maxBodyInString {
		body = body[:maxBodyInString] + "..."
	}

	return fmt.Sprintf("%s %s -> %d body=%q trace=%s", r.Method, r.URL, r.StatusCode, body, r.TraceID)
}
