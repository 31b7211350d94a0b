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
	"strconv"
	"strings"

	"k8s.io/apimachinery/pkg/util/sets"
)

// Expectation is the set of HTTP status codes that end a wait.
// A single code is just a set with one member.
type Expectation struct {
	codes sets.Set[int]
}

// Status returns an expectation satisfied by any of the given codes.
func Status(codes ...int) Expectation {
	return Expectation{
		codes: sets.New(codes...),
	}
}

// Matches reports whether status is one of the expected codes.
func (e Expectation) Matches(status int) bool {
	return e.codes.Has(status)
}

// Codes returns the expected codes in ascending order.
func (e Expectation) Codes() []int {
	return sets.List(e.codes)
}

// Empty is true when no status could ever satisfy the expectation.
func (e Expectation) Empty() bool {
	return e.codes.Len() == 0
}

func (e Expectation) String() string {
	codes := e.Codes()

	switch len(codes) {
	case 0:
		return "<none>"
	case 1:
		return strconv.Itoa(codes[0])
	}

	parts := make([]string, len(codes))
	for i, code := range codes {
		parts[i] = strconv.Itoa(code)
	}

	return "one of [" + strings.Join(parts, ", ") + "]"
}
