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
	"strconv"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"k8s.io/utils/ptr"

	"github.com/KovalIllia/petstore-api-tests/pkg/petstore"
	"github.com/KovalIllia/petstore-api-tests/test/api"
)

var _ = Describe("Pet Operations", func() {
	Context("When adding a pet", func() {
		It("should echo every field of the payload", func() {
			pet := api.NewPetPayload().WithName("Rex").WithStatus(petstore.PetStatusAvailable).Build()

			r, petID := api.CreatePetWithCleanup(ctx, client, pet)
			api.ExpectContract(ctx, validator, r)

			created := api.DecodePet(r)
			Expect(petID).To(BeNumerically(">", 0), "Pet id should be numeric and assigned")
			Expect(created.Name).NotTo(BeEmpty(), "Pet name should not be empty")
			Expect(created.Name).To(Equal(pet.Name))
			Expect(created.Status).To(HaveValue(Equal(*pet.Status)))
			Expect(created.Category).NotTo(BeNil(), "Missing category in response")
			Expect(created.Category.Name).To(Equal(pet.Category.Name))
			Expect(created.PhotoURLs).To(Equal(pet.PhotoURLs))
			Expect(created.Tags).To(HaveLen(len(pet.Tags)))
		})
	})

	Context("When updating a pet", func() {
		It("should replace name and status", FlakeAttempts(3), func() {
			r, petID := api.CreatePetWithCleanup(ctx, client, api.NewPetPayload().Build())

			update := api.DecodePet(r)
			update.Name = "Alfredicus"
			update.Status = ptr.To(petstore.PetStatusSold)

			r, err := api.UpdateWithRetry(ctx, config, fmt.Sprintf("pet %d", petID), func(ctx context.Context) (*petstore.Response, error) {
				return client.UpdatePet(ctx, update)
			})
			api.ExpectSettled(config, r, err)
			api.ExpectStatus(r, http.StatusOK)
			api.ExpectContract(ctx, validator, r)

			updated := api.DecodePet(r)
			Expect(updated.Name).To(Equal("Alfredicus"))
			Expect(updated.Status).To(HaveValue(Equal(petstore.PetStatusSold)))
		})
	})

	Context("When finding pets by status", func() {
		It("should list pets that all carry a status", func() {
			_, petID := api.CreatePetWithCleanup(ctx, client, api.NewPetPayload().WithStatus(petstore.PetStatusAvailable).Build())
			_, err := api.WaitForPet(ctx, client, config, petID, http.StatusOK)
			api.ExpectSettled(config, nil, err)

			r, err := client.FindPetsByStatus(ctx, petstore.PetStatusAvailable)
			Expect(err).NotTo(HaveOccurred())
			api.ExpectStatus(r, http.StatusOK)
			api.ExpectContract(ctx, validator, r)

			var pets []petstore.Pet

			Expect(r.Decode(&pets)).To(Succeed())
			Expect(pets).NotTo(BeEmpty(), "Empty list of pets")

			for _, pet := range pets {
				Expect(pet.Status).NotTo(BeNil(), "Missing status in pet %q", pet.Name)
			}
		})
	})

	Context("When finding a pet by id", func() {
		It("should return the created pet once it is visible", FlakeAttempts(3), func() {
			pet := api.NewPetPayload().Build()
			_, petID := api.CreatePetWithCleanup(ctx, client, pet)

			r, err := api.WaitForPet(ctx, client, config, petID, http.StatusOK)
			api.ExpectSettled(config, r, err)
			api.ExpectContract(ctx, validator, r)

			found := api.DecodePet(r)
			Expect(found.ID).To(HaveValue(Equal(petID)))
			Expect(found.Name).To(Equal(pet.Name))
			GinkgoWriter.Printf("Sent ID: %d, received ID: %d\n", *pet.ID, *found.ID)
		})

		It("should not find a pet that was never created", func() {
			r, err := client.GetPet(ctx, api.GenerateID())
			Expect(err).NotTo(HaveOccurred())
			api.ExpectStatus(r, http.StatusNotFound)
			api.ExpectContract(ctx, validator, r)
		})
	})

	Context("When updating a pet with form data", func() {
		It("should rename the pet and change its status", FlakeAttempts(3), func() {
			_, petID := api.CreatePetWithCleanup(ctx, client, api.NewPetPayload().Build())
			_, err := api.WaitForPet(ctx, client, config, petID, http.StatusOK)
			api.ExpectSettled(config, nil, err)

			r, err := api.UpdateWithRetry(ctx, config, fmt.Sprintf("pet %d", petID), func(ctx context.Context) (*petstore.Response, error) {
				return client.UpdatePetWithForm(ctx, petID, "Lopik", petstore.PetStatusSold)
			})
			api.ExpectSettled(config, r, err)
			api.ExpectStatus(r, http.StatusOK)
			api.ExpectContract(ctx, validator, r)

			ack := api.DecodeAPIResponse(r)
			Expect(ack.Message).To(ContainSubstring(strconv.FormatInt(petID, 10)), "Wrong pet ID in response message")

			_, err = api.WaitForPet(ctx, client, config, petID, http.StatusOK)
			api.ExpectSettled(config, nil, err)

			// The store may keep serving the old fields for a while after the write.
			Eventually(func(g Gomega) {
				r, err := client.GetPet(ctx, petID)
				g.Expect(err).NotTo(HaveOccurred())
				g.Expect(r.StatusCode).To(Equal(http.StatusOK))

				var pet petstore.Pet

				g.Expect(r.Decode(&pet)).To(Succeed())
				g.Expect(pet.Name).To(Equal("Lopik"))
				g.Expect(pet.Status).To(HaveValue(Equal(petstore.PetStatusSold)))
			}).WithTimeout(config.Policies.Pet.Budget() + config.RequestTimeout).WithPolling(config.Policies.Pet.Delay).Should(Succeed())
		})
	})

	Context("When deleting a pet", func() {
		It("should eventually stop finding it", FlakeAttempts(3), func() {
			_, petID := api.CreatePetWithCleanup(ctx, client, api.NewPetPayload().Build())
			_, err := api.WaitForPet(ctx, client, config, petID, http.StatusOK)
			api.ExpectSettled(config, nil, err)

			r, err := api.UpdateWithRetry(ctx, config, fmt.Sprintf("pet %d", petID), func(ctx context.Context) (*petstore.Response, error) {
				return client.DeletePet(ctx, petID)
			})
			api.ExpectSettled(config, r, err)
			api.ExpectStatus(r, http.StatusOK)
			api.ExpectContract(ctx, validator, r)

			_, err = api.WaitForPet(ctx, client, config, petID, http.StatusNotFound)
			api.ExpectSettled(config, nil, err)

			r, err = client.GetPet(ctx, petID)
			Expect(err).NotTo(HaveOccurred())
			Expect(r.StatusCode).To(Equal(http.StatusNotFound), "Pet with id %d was not deleted", petID)
		})
	})

	Context("When uploading a pet image", func() {
		It("should acknowledge the upload and keep the photo URLs", FlakeAttempts(3), func() {
			_, petID := api.CreatePetWithCleanup(ctx, client, api.NewPetPayload().Build())
			_, err := api.WaitForPet(ctx, client, config, petID, http.StatusOK)
			api.ExpectSettled(config, nil, err)

			image := "\x89PNG\r\n\x1a\n" + strings.Repeat("\x00", 64)

			r, err := api.UpdateWithRetry(ctx, config, fmt.Sprintf("pet %d", petID), func(ctx context.Context) (*petstore.Response, error) {
				return client.UploadPetImage(ctx, petID, "test_dog.png", strings.NewReader(image), api.GenerateTestID())
			})
			api.ExpectSettled(config, r, err)
			api.ExpectStatus(r, http.StatusOK)
			api.ExpectContract(ctx, validator, r)

			var raw map[string]any

			Expect(r.Decode(&raw)).To(Succeed())

			for _, key := range []string{"code", "type", "message"} {
				Expect(raw).To(HaveKey(key), "Missing %s in upload response", key)
			}

			r, err = api.WaitForPet(ctx, client, config, petID, http.StatusOK)
			api.ExpectSettled(config, r, err)
			Expect(api.DecodePet(r).PhotoURLs).NotTo(BeEmpty(), "photoUrls is empty after image upload")
		})
	})
})

