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
package petstore_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	"github.com/go-logr/logr"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/KovalIllia/petstore-api-tests/pkg/petstore"
	"github.com/KovalIllia/petstore-api-tests/test/api"
	"github.com/KovalIllia/petstore-api-tests/test/fakestore"
)

const traceParentPattern = `^00-[0-9a-f]{32}-[0-9a-f]{16}-01$`

func testConfig() *petstore.Config {
	return &petstore.Config{
		RequestTimeout:   5 * time.Second,
		TestTimeout:      time.Minute,
		Policies:         petstore.DefaultPollPolicies(),
		ValidateContract: true,
	}
}

var _ = Describe("APIClient", func() {
	var (
		ctx    context.Context
		store  *fakestore.Store
		client *petstore.APIClient
	)

	BeforeEach(func() {
		ctx = logr.NewContext(context.Background(), GinkgoLogr)
		store = fakestore.New(fakestore.Options{})

		server := httptest.NewServer(store)
		DeferCleanup(server.Close)

		client = petstore.NewAPIClientForURL(testConfig(), server.URL+fakestore.BasePath+"/")
	})

	It("should trim the trailing slash from the base URL", func() {
		Expect(client.BaseURL()).NotTo(HaveSuffix("/"))
	})

	It("should return the raw response without judging the status", func() {
		r, err := client.GetPet(ctx, 424242)
		Expect(err).NotTo(HaveOccurred())
		Expect(r.Status()).To(Equal(http.StatusNotFound))
		Expect(r.Route).To(Equal(petstore.RoutePetByID))
		Expect(r.Method).To(Equal(http.MethodGet))
		Expect(r.URL).To(HaveSuffix("/v2/pet/424242"))
		Expect(r.TraceID).To(MatchRegexp(`^[0-9a-f]{32}$`))

		ack := api.DecodeAPIResponse(r)
		Expect(ack.Message).To(Equal("Pet not found"))
	})

	It("should round trip a pet", func() {
		pet := api.NewPetPayload().WithName("Rex").WithTags("good", "boy").Build()

		r, err := client.AddPet(ctx, pet)
		Expect(err).NotTo(HaveOccurred())
		api.ExpectStatus(r, http.StatusOK)

		created := api.DecodePet(r)
		Expect(created.Name).To(Equal("Rex"))
		Expect(*created.ID).To(Equal(*pet.ID))
		Expect(created.Tags).To(HaveLen(2))
		Expect(*created.Status).To(Equal(petstore.PetStatusAvailable))
	})

	It("should report transport failures as errors", func() {
		broken := petstore.NewAPIClientForURL(testConfig(), "http://127.0.0.1:1/v2")

		_, err := broken.GetPet(ctx, 1)
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("trace ID"))
	})

	It("should fail with a cancelled context", func() {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := client.GetInventory(cancelled)
		Expect(err).To(MatchError(context.Canceled))
	})

	Context("with a recording server", func() {
		var (
			lock     sync.Mutex
			requests []*http.Request
			recorder *petstore.APIClient
		)

		BeforeEach(func() {
			requests = nil

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				lock.Lock()
				defer lock.Unlock()

				_ = r.ParseMultipartForm(1 << 20)

				requests = append(requests, r)

				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"code":200,"type":"unknown","message":"ok"}`))
			}))
			DeferCleanup(server.Close)

			recorder = petstore.NewAPIClientForURL(testConfig(), server.URL+"/v2")
		})

		It("should send a W3C traceparent header", func() {
			_, err := recorder.GetInventory(ctx)
			Expect(err).NotTo(HaveOccurred())

			Expect(requests).To(HaveLen(1))
			Expect(requests[0].Header.Get("Traceparent")).To(MatchRegexp(traceParentPattern))
			Expect(requests[0].Header.Get("Tracestate")).To(Equal("test-automation=ginkgo"))
		})

		It("should send form updates url encoded", func() {
			_, err := recorder.UpdatePetWithForm(ctx, 12, "Lopik", petstore.PetStatusSold)
			Expect(err).NotTo(HaveOccurred())

			Expect(requests).To(HaveLen(1))
			Expect(requests[0].Method).To(Equal(http.MethodPost))
			Expect(requests[0].URL.Path).To(Equal("/v2/pet/12"))
			Expect(requests[0].Header.Get("Content-Type")).To(Equal("application/x-www-form-urlencoded"))
			Expect(requests[0].PostForm.Get("name")).To(Equal("Lopik"))
			Expect(requests[0].PostForm.Get("status")).To(Equal("sold"))
		})

		It("should send exploded status queries", func() {
			_, err := recorder.FindPetsByStatus(ctx, petstore.PetStatusAvailable, petstore.PetStatusSold)
			Expect(err).NotTo(HaveOccurred())

			Expect(requests).To(HaveLen(1))
			Expect(requests[0].URL.Query()["status"]).To(Equal([]string{"available", "sold"}))
		})

		It("should upload images as multipart forms", func() {
			_, err := recorder.UploadPetImage(ctx, 5, "dog.png", strings.NewReader("png"), "side")
			Expect(err).NotTo(HaveOccurred())

			Expect(requests).To(HaveLen(1))
			Expect(requests[0].URL.Path).To(Equal("/v2/pet/5/uploadImage"))
			Expect(requests[0].MultipartForm).NotTo(BeNil())
			Expect(requests[0].MultipartForm.Value["additionalMetadata"]).To(Equal([]string{"side"}))
			Expect(requests[0].MultipartForm.File["file"]).To(HaveLen(1))
			Expect(requests[0].MultipartForm.File["file"][0].Filename).To(Equal("dog.png"))
		})
	})
})

var _ = Describe("Endpoints", func() {
	endpoints := petstore.NewEndpoints()

	It("should expand path parameters", func() {
		path, err := endpoints.Pet(42)
		Expect(err).NotTo(HaveOccurred())
		Expect(path).To(Equal("/pet/42"))

		path, err = endpoints.PetImage(42)
		Expect(err).NotTo(HaveOccurred())
		Expect(path).To(Equal("/pet/42/uploadImage"))

		path, err = endpoints.Order(7)
		Expect(err).NotTo(HaveOccurred())
		Expect(path).To(Equal("/store/order/7"))
	})

	It("should leave the query off without statuses", func() {
		path, err := endpoints.PetsByStatus()
		Expect(err).NotTo(HaveOccurred())
		Expect(path).To(Equal(petstore.RoutePetsByStatus))
	})
})
