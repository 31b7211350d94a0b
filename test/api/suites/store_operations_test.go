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

//nolint:testpackage,revive // test package in suites is standard for these tests
package suites

import (
	"context"
	"fmt"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/KovalIllia/petstore-api-tests/pkg/petstore"
	"github.com/KovalIllia/petstore-api-tests/test/api"
)

var _ = Describe("Store Operations", func() {
	Context("When placing an order", func() {
		It("should echo the order", func() {
			order := api.NewOrderPayload().Build()

			r, orderID := api.PlaceOrderWithCleanup(ctx, client, order)
			api.ExpectContract(ctx, validator, r)

			placed := api.DecodeOrder(r)
			Expect(orderID).To(Equal(*order.ID), "Wrong order ID in response: %s", r)
			Expect(placed.PetID).To(HaveValue(Equal(*order.PetID)), "Wrong pet ID in response: %s", r)
			Expect(placed.Quantity).To(HaveValue(Equal(*order.Quantity)))
			Expect(placed.ShipDate).NotTo(BeNil(), "Missing shipDate in response")
			Expect(placed.Status).To(HaveValue(Equal(petstore.OrderStatusPlaced)))
			Expect(placed.Complete).NotTo(BeNil(), "Missing complete in response")
		})
	})

	Context("When finding an order by id", func() {
		It("should return the order once it is visible", FlakeAttempts(3), func() {
			order := api.NewOrderPayload().Build()
			_, orderID := api.PlaceOrderWithCleanup(ctx, client, order)

			r, err := api.WaitForOrder(ctx, client, config, orderID, http.StatusOK)
			api.ExpectSettled(config, r, err)
			api.ExpectContract(ctx, validator, r)

			found := api.DecodeOrder(r)
			Expect(found.ID).To(HaveValue(Equal(orderID)))
			Expect(found.PetID).To(HaveValue(Equal(*order.PetID)))
		})
	})

	Context("When reading the inventory", func() {
		It("should count available pets", func() {
			r, err := client.GetInventory(ctx)
			Expect(err).NotTo(HaveOccurred())
			api.ExpectStatus(r, http.StatusOK)
			api.ExpectContract(ctx, validator, r)

			var inventory petstore.Inventory

			Expect(r.Decode(&inventory)).To(Succeed())
			Expect(inventory).NotTo(BeEmpty(), "Empty inventory")
			Expect(inventory).To(HaveKey(string(petstore.PetStatusAvailable)))
			Expect(inventory[string(petstore.PetStatusAvailable)]).To(BeNumerically(">=", 0))
		})
	})

	Context("When deleting an order", func() {
		It("should eventually stop finding it", FlakeAttempts(3), func() {
			_, orderID := api.PlaceOrderWithCleanup(ctx, client, api.NewOrderPayload().Build())

			// Still propagating or already visible, either is fine before the delete.
			_, err := api.WaitForOrder(ctx, client, config, orderID, http.StatusOK, http.StatusNotFound)
			api.ExpectSettled(config, nil, err)

			r, err := api.UpdateWithRetry(ctx, config, fmt.Sprintf("order %d", orderID), func(ctx context.Context) (*petstore.Response, error) {
				return client.DeleteOrder(ctx, orderID)
			})
			api.ExpectSettled(config, r, err)
			api.ExpectStatus(r, http.StatusOK)
			api.ExpectContract(ctx, validator, r)

			_, err = api.WaitForOrder(ctx, client, config, orderID, http.StatusNotFound)
			api.ExpectSettled(config, nil, err)

			r, err = client.GetOrder(ctx, orderID)
			Expect(err).NotTo(HaveOccurred())
			Expect(r.StatusCode).To(Equal(http.StatusNotFound), "Order with id %d was not deleted", orderID)
		})
	})

	Context("When the backend keeps failing", func() {
		BeforeEach(func() {
			if store == nil {
				Skip("failure injection needs the in-process store")
			}
		})

		It("should give up on an order that never appears", func() {
			store.FailNext(config.Policies.Order.MaxAttempts, http.StatusServiceUnavailable)

			_, err := api.WaitForOrder(ctx, client, config, api.GenerateID(), http.StatusOK)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("last status 503"))
			Expect(store.Requests(http.MethodGet, petstore.RouteStoreOrderByID)).To(Equal(config.Policies.Order.MaxAttempts))
		})
	})
})
