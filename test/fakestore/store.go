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

// Package fakestore is an in-process stand-in for the public pet store. It
// serves the pet and store routes under /v2 with the same bodies and status
// codes, and reproduces the behaviour the suites have to tolerate: a write is
// only seen by later requests after a configurable number of accesses, and
// arbitrary requests can be made to fail.
package fakestore

import (
	"net/http"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/KovalIllia/petstore-api-tests/pkg/petstore"
)

// BasePath is where the API is mounted, matching the public instance.
const BasePath = "/v2"

// Options allows behaviour to be defined by the caller.
type Options struct {
	// Lag is the number of accesses of an id that still see the previous
	// state after a write to it. Zero makes every write visible at once.
	Lag int
}

// Store is an http.Handler serving the fake pet store.
type Store struct {
	router *chi.Mux
	pets   *table[petstore.Pet]
	orders *table[petstore.Order]

	lock         sync.Mutex
	failures     int
	failureCode  int
	requestCount map[string]int
}

// New creates an empty store.
func New(options Options) *Store {
	s := &Store{
		pets:         newTable[petstore.Pet](options.Lag),
		orders:       newTable[petstore.Order](options.Lag),
		requestCount: map[string]int{},
	}

	h := &Handler{
		pets:   s.pets,
		orders: s.orders,
	}

	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.NoCache)

	router.Route(BasePath, func(r chi.Router) {
		r.Post(petstore.RoutePet, h.AddPet)
		r.Put(petstore.RoutePet, h.UpdatePet)
		r.Get(petstore.RoutePetsByStatus, h.FindPetsByStatus)
		r.Get(petstore.RoutePetByID, h.GetPet)
		r.Post(petstore.RoutePetByID, h.UpdatePetWithForm)
		r.Delete(petstore.RoutePetByID, h.DeletePet)
		r.Post(petstore.RoutePetUploadImage, h.UploadPetImage)
		r.Get(petstore.RouteStoreInventory, h.GetInventory)
		r.Post(petstore.RouteStoreOrder, h.PlaceOrder)
		r.Get(petstore.RouteStoreOrderByID, h.GetOrder)
		r.Delete(petstore.RouteStoreOrderByID, h.DeleteOrder)
	})

	s.router = router

	return s
}

func requestKey(method, route string) string {
	return method + " " + route
}

func (s *Store) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	route := strings.TrimPrefix(s.router.Find(chi.NewRouteContext(), r.Method, r.URL.Path), BasePath)
	if route == "" {
		route = r.URL.Path
	}

	if status, fail := s.record(requestKey(r.Method, route)); fail {
		writeError(w, status, http.StatusText(status))
		return
	}

	s.router.ServeHTTP(w, r)
}

// record counts the request and reports whether it must fail.
func (s *Store) record(key string) (int, bool) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.requestCount[key]++

	if s.failures == 0 {
		return 0, false
	}

	s.failures--

	return s.failureCode, true
}

// FailNext makes the next n requests, whatever their route, answer with status.
func (s *Store) FailNext(n, status int) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.failures = n
	s.failureCode = status
}

// Requests returns how many requests were made to method on route, where
// route is a template like /pet/{petId}.
func (s *Store) Requests(method, route string) int {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.requestCount[requestKey(method, route)]
}

// SetLag changes the lag of writes made from now on.
func (s *Store) SetLag(lag int) {
	s.pets.setLag(lag)
	s.orders.setLag(lag)
}
