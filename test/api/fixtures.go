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

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/KovalIllia/petstore-api-tests/pkg/petstore"
	"github.com/KovalIllia/petstore-api-tests/pkg/waiter"
)

// ExpectStatus fails the spec unless r carries the given status.
func ExpectStatus(r *petstore.Response, status int) {
	GinkgoHelper()

	Expect(r).NotTo(BeNil())
	Expect(r.StatusCode).To(Equal(status), "unexpected status: %s", r)
}

// ExpectContract validates r against the OpenAPI document when a validator is
// configured. Undocumented routes are ignored.
func ExpectContract(ctx context.Context, validator *petstore.ContractValidator, r *petstore.Response) {
	GinkgoHelper()

	if validator == nil || !validator.Documents(r.Method, r.Route) {
		return
	}

	Expect(validator.Validate(ctx, r)).To(Succeed())
}

// ExpectSettled turns the outcome of a wait into an assertion. A spent retry
// budget fails the spec, unless the configuration tolerates an unstable
// backend, in which case the spec is skipped as inconclusive.
func ExpectSettled(config *petstore.Config, r *petstore.Response, err error) *petstore.Response {
	GinkgoHelper()

	if err != nil && config.TolerateUnstable && errors.Is(err, waiter.ErrBudgetExhausted) {
		Skip("inconclusive, backend never settled: " + err.Error())
	}

	Expect(err).NotTo(HaveOccurred())

	return r
}

// DecodePet decodes a pet body, failing the spec if it is not one.
func DecodePet(r *petstore.Response) petstore.Pet {
	GinkgoHelper()

	var pet petstore.Pet

	Expect(r.Decode(&pet)).To(Succeed(), "decoding pet from %s", r)

	return pet
}

// DecodeOrder decodes an order body, failing the spec if it is not one.
func DecodeOrder(r *petstore.Response) petstore.Order {
	GinkgoHelper()

	var order petstore.Order

	Expect(r.Decode(&order)).To(Succeed(), "decoding order from %s", r)

	return order
}

// DecodeAPIResponse decodes the acknowledgement body of forms, uploads and deletes.
func DecodeAPIResponse(r *petstore.Response) petstore.APIResponse {
	GinkgoHelper()

	var ack petstore.APIResponse

	Expect(r.Decode(&ack)).To(Succeed(), "decoding api response from %s", r)

	return ack
}

// WaitForPet polls GET /pet/{petId} until the status is one of codes.
func WaitForPet(ctx context.Context, client petstore.PetService, config *petstore.Config, petID int64, codes ...int) (*petstore.Response, error) {
	probe := func(ctx context.Context) (*petstore.Response, error) {
		return client.GetPet(ctx, petID)
	}

	return waiter.Wait(ctx, fmt.Sprintf("pet %d", petID), probe, waiter.Status(codes...), config.Policies.Pet)
}

// WaitForOrder polls GET /store/order/{orderId} until the status is one of codes.
func WaitForOrder(ctx context.Context, client petstore.StoreService, config *petstore.Config, orderID int64, codes ...int) (*petstore.Response, error) {
	probe := func(ctx context.Context) (*petstore.Response, error) {
		return client.GetOrder(ctx, orderID)
	}

	return waiter.Wait(ctx, fmt.Sprintf("order %d", orderID), probe, waiter.Status(codes...), config.Policies.Order)
}

// UpdateWithRetry re-issues update while the store has not yet seen the
// resource it targets.
func UpdateWithRetry(ctx context.Context, config *petstore.Config, resource string, update waiter.Probe[*petstore.Response]) (*petstore.Response, error) {
	return waiter.RetryUpdate(ctx, resource, update, config.Policies.Update)
}

// CreatePetWithCleanup adds a pet, checks it was accepted, and schedules its
// deletion whatever the outcome of the spec. It returns the creation response
// and the id the store assigned.
func CreatePetWithCleanup(ctx context.Context, client petstore.PetService, pet petstore.Pet) (*petstore.Response, int64) {
	GinkgoHelper()

	r, err := client.AddPet(ctx, pet)
	Expect(err).NotTo(HaveOccurred())
	ExpectStatus(r, http.StatusOK)

	created := DecodePet(r)
	Expect(created.ID).NotTo(BeNil(), "created pet has no id: %s", r)

	petID := *created.ID

	GinkgoWriter.Printf("Created pet with ID: %d\n", petID)

	// Schedule cleanup - this runs whether the test passes or fails so we don't need to clean up manually
	DeferCleanup(func() {
		GinkgoWriter.Printf("Cleaning up pet: %d\n", petID)

		r, err := client.DeletePet(ctx, petID)

		switch {
		case err != nil:
			GinkgoWriter.Printf("Warning: Failed to delete pet %d: %v\n", petID, err)
		case r.StatusCode == http.StatusOK, r.StatusCode == http.StatusNotFound:
			GinkgoWriter.Printf("Successfully deleted pet: %d\n", petID)
		default:
			GinkgoWriter.Printf("Warning: Failed to delete pet %d: %s\n", petID, r)
		}
	})

	return r, petID
}

// PlaceOrderWithCleanup places an order, checks it was accepted, and schedules
// its deletion.
func PlaceOrderWithCleanup(ctx context.Context, client petstore.StoreService, order petstore.Order) (*petstore.Response, int64) {
	GinkgoHelper()

	r, err := client.PlaceOrder(ctx, order)
	Expect(err).NotTo(HaveOccurred())
	ExpectStatus(r, http.StatusOK)

	placed := DecodeOrder(r)
	Expect(placed.ID).NotTo(BeNil(), "placed order has no id: %s", r)

	orderID := *placed.ID

	GinkgoWriter.Printf("Placed order with ID: %d\n", orderID)

	DeferCleanup(func() {
		GinkgoWriter.Printf("Cleaning up order: %d\n", orderID)

		r, err := client.DeleteOrder(ctx, orderID)

		switch {
		case err != nil:
			GinkgoWriter.Printf("Warning: Failed to delete order %d: %v\n", orderID, err)
		case r.StatusCode == http.StatusOK, r.StatusCode == http.StatusNotFound:
			GinkgoWriter.Printf("Successfully deleted order: %d\n", orderID)
		default:
			GinkgoWriter.Printf("Warning: Failed to delete order %d: %s\n", orderID, r)
		}
	})

	return r, orderID
}
