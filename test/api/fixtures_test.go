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
package api_test

import (
	"context"
	"errors"
	"net/http"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/KovalIllia/petstore-api-tests/pkg/petstore"
	"github.com/KovalIllia/petstore-api-tests/pkg/petstore/mock"
	"github.com/KovalIllia/petstore-api-tests/pkg/waiter"
	"github.com/KovalIllia/petstore-api-tests/test/api"
)

func status(code int) *petstore.Response {
	return &petstore.Response{StatusCode: code, Method: http.MethodGet, Route: petstore.RoutePetByID}
}

var _ = Describe("Fixtures", func() {
	var (
		ctx    context.Context
		config *petstore.Config
		pets   *mock.MockPetService
		orders *mock.MockStoreService
	)

	BeforeEach(func() {
		ctx = context.Background()

		config = testConfig()
		config.Policies = petstore.PollPolicies{
			Pet:    waiter.Policy{MaxAttempts: 5, Delay: time.Millisecond},
			Order:  waiter.Policy{MaxAttempts: 5, Delay: time.Millisecond},
			Update: waiter.Policy{MaxAttempts: 5, Delay: time.Millisecond},
		}

		c := gomock.NewController(GinkgoT())
		pets = mock.NewMockPetService(c)
		orders = mock.NewMockStoreService(c)
	})

	Describe("WaitForPet", func() {
		It("should poll until the pet is visible", func() {
			gomock.InOrder(
				pets.EXPECT().GetPet(gomock.Any(), int64(3)).Return(status(http.StatusNotFound), nil).Times(2),
				pets.EXPECT().GetPet(gomock.Any(), int64(3)).Return(status(http.StatusOK), nil),
			)

			r, err := api.WaitForPet(ctx, pets, config, 3, http.StatusOK)
			Expect(err).NotTo(HaveOccurred())
			Expect(r.StatusCode).To(Equal(http.StatusOK))
		})

		It("should give up after the pet budget", func() {
			pets.EXPECT().GetPet(gomock.Any(), int64(3)).Return(status(http.StatusNotFound), nil).Times(5)

			_, err := api.WaitForPet(ctx, pets, config, 3, http.StatusOK)
			Expect(err).To(MatchError(waiter.ErrBudgetExhausted))
			Expect(err.Error()).To(ContainSubstring("pet 3"))
		})

		It("should ride out transport errors", func() {
			gomock.InOrder(
				pets.EXPECT().GetPet(gomock.Any(), int64(3)).Return(nil, errors.New("connection reset")),
				pets.EXPECT().GetPet(gomock.Any(), int64(3)).Return(status(http.StatusNotFound), nil),
			)

			r, err := api.WaitForPet(ctx, pets, config, 3, http.StatusNotFound)
			Expect(err).NotTo(HaveOccurred())
			Expect(r.StatusCode).To(Equal(http.StatusNotFound))
		})
	})

	Describe("WaitForOrder", func() {
		It("should accept any of several statuses", func() {
			orders.EXPECT().GetOrder(gomock.Any(), int64(8)).Return(status(http.StatusNotFound), nil)

			r, err := api.WaitForOrder(ctx, orders, config, 8, http.StatusOK, http.StatusNotFound)
			Expect(err).NotTo(HaveOccurred())
			Expect(r.StatusCode).To(Equal(http.StatusNotFound))
		})
	})

	Describe("UpdateWithRetry", func() {
		It("should re-issue the update while it is not found", func() {
			gomock.InOrder(
				pets.EXPECT().UpdatePetWithForm(gomock.Any(), int64(4), "Lopik", petstore.PetStatusSold).Return(status(http.StatusNotFound), nil).Times(2),
				pets.EXPECT().UpdatePetWithForm(gomock.Any(), int64(4), "Lopik", petstore.PetStatusSold).Return(status(http.StatusOK), nil),
			)

			update := func(ctx context.Context) (*petstore.Response, error) {
				return pets.UpdatePetWithForm(ctx, 4, "Lopik", petstore.PetStatusSold)
			}

			r, err := api.UpdateWithRetry(ctx, config, "pet 4", update)
			Expect(err).NotTo(HaveOccurred())
			Expect(r.StatusCode).To(Equal(http.StatusOK))
		})

		It("should hand back a terminal status", func() {
			pets.EXPECT().UpdatePet(gomock.Any(), gomock.Any()).Return(status(http.StatusInternalServerError), nil)

			update := func(ctx context.Context) (*petstore.Response, error) {
				return pets.UpdatePet(ctx, api.NewPetPayload().Build())
			}

			r, err := api.UpdateWithRetry(ctx, config, "pet 4", update)
			Expect(err).NotTo(HaveOccurred())
			Expect(r.StatusCode).To(Equal(http.StatusInternalServerError))
		})
	})

	Describe("CreatePetWithCleanup", func() {
		It("should create the pet and schedule its deletion", func() {
			pet := api.NewPetPayload().Build()

			pets.EXPECT().AddPet(gomock.Any(), pet).Return(&petstore.Response{
				StatusCode: http.StatusOK,
				Body:       []byte(`{"id":11,"name":"` + pet.Name + `","photoUrls":[]}`),
				Method:     http.MethodPost,
				Route:      petstore.RoutePet,
			}, nil)

			// Runs when this spec's cleanup does.
			pets.EXPECT().DeletePet(gomock.Any(), int64(11)).Return(status(http.StatusOK), nil)

			r, petID := api.CreatePetWithCleanup(ctx, pets, pet)
			Expect(petID).To(Equal(int64(11)))
			Expect(api.DecodePet(r).Name).To(Equal(pet.Name))
		})
	})

	Describe("PlaceOrderWithCleanup", func() {
		It("should place the order and schedule its deletion", func() {
			order := api.NewOrderPayload().WithID(21).Build()

			orders.EXPECT().PlaceOrder(gomock.Any(), order).Return(&petstore.Response{
				StatusCode: http.StatusOK,
				Body:       []byte(`{"id":21,"petId":5,"quantity":3,"status":"placed","complete":false}`),
				Method:     http.MethodPost,
				Route:      petstore.RouteStoreOrder,
			}, nil)

			orders.EXPECT().DeleteOrder(gomock.Any(), int64(21)).Return(nil, errors.New("connection refused"))

			r, orderID := api.PlaceOrderWithCleanup(ctx, orders, order)
			Expect(orderID).To(Equal(int64(21)))
			Expect(*api.DecodeOrder(r).Quantity).To(Equal(int32(3)))
		})
	})
})
