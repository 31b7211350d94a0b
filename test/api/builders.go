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

package api

import (
	"fmt"
	"time"

	"k8s.io/apimachinery/pkg/util/rand"
	"k8s.io/utils/ptr"

	"github.com/KovalIllia/petstore-api-tests/pkg/petstore"
)

const (
	minGeneratedID = 1_000_000
	maxGeneratedID = 1_000_000_000
)

// GenerateID returns a random positive id unlikely to clash with other users
// of a shared store.
func GenerateID() int64 {
	return rand.Int63nRange(minGeneratedID, maxGeneratedID)
}

func generateRandomName(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, rand.String(6))
}

func GenerateTestID() string {
	return generateRandomName("test")
}

// PetPayloadBuilder builds pet payloads for testing.
type PetPayloadBuilder struct {
	pet petstore.Pet
}

// NewPetPayload creates a pet builder with a unique name and id, a category,
// one tag and one photo URL.
func NewPetPayload() *PetPayloadBuilder {
	name := generateRandomName("pet")

	return &PetPayloadBuilder{
		pet: petstore.Pet{
			ID: ptr.To(GenerateID()),
			Category: &petstore.Category{
				ID:   ptr.To[int64](1),
				Name: ptr.To("dogs"),
			},
			Name:      name,
			PhotoURLs: []string{"https://example.com/photos/" + name + ".png"},
			Tags: []petstore.Tag{
				{ID: ptr.To[int64](1), Name: ptr.To("test-automation")},
			},
			Status: ptr.To(petstore.PetStatusAvailable),
		},
	}
}

// WithID sets the pet ID, zero leaves it to the server.
func (b *PetPayloadBuilder) WithID(id int64) *PetPayloadBuilder {
	if id == 0 {
		b.pet.ID = nil
	} else {
		b.pet.ID = ptr.To(id)
	}

	return b
}

func (b *PetPayloadBuilder) WithName(name string) *PetPayloadBuilder {
	b.pet.Name = name
	return b
}

func (b *PetPayloadBuilder) WithStatus(status petstore.PetStatus) *PetPayloadBuilder {
	b.pet.Status = ptr.To(status)
	return b
}

func (b *PetPayloadBuilder) WithCategory(name string) *PetPayloadBuilder {
	b.pet.Category = &petstore.Category{
		ID:   ptr.To(GenerateID()),
		Name: ptr.To(name),
	}

	return b
}

func (b *PetPayloadBuilder) WithPhotoURLs(urls ...string) *PetPayloadBuilder {
	b.pet.PhotoURLs = urls
	return b
}

func (b *PetPayloadBuilder) WithTags(names ...string) *PetPayloadBuilder {
	b.pet.Tags = make([]petstore.Tag, len(names))

	for i, name := range names {
		b.pet.Tags[i] = petstore.Tag{ID: ptr.To(int64(i + 1)), Name: ptr.To(name)}
	}

	return b
}

// Build returns a copy of the pet so the builder can be reused.
func (b *PetPayloadBuilder) Build() petstore.Pet {
	pet := b.pet
	pet.PhotoURLs = append([]string(nil), b.pet.PhotoURLs...)
	pet.Tags = append([]petstore.Tag(nil), b.pet.Tags...)

	return pet
}

// OrderPayloadBuilder builds order payloads for testing.
type OrderPayloadBuilder struct {
	order petstore.Order
}

// NewOrderPayload creates a placed, incomplete order for three of a random pet.
func NewOrderPayload() *OrderPayloadBuilder {
	return &OrderPayloadBuilder{
		order: petstore.Order{
			ID:       ptr.To(GenerateID()),
			PetID:    ptr.To(GenerateID()),
			Quantity: ptr.To[int32](3),
			ShipDate: ptr.To(time.Now().UTC().Format("2006-01-02T15:04:05.000Z")),
			Status:   ptr.To(petstore.OrderStatusPlaced),
			Complete: ptr.To(false),
		},
	}
}

// WithID sets the order ID, zero leaves it to the server.
func (b *OrderPayloadBuilder) WithID(id int64) *OrderPayloadBuilder {
	if id == 0 {
		b.order.ID = nil
	} else {
		b.order.ID = ptr.To(id)
	}

	return b
}

func (b *OrderPayloadBuilder) WithPetID(id int64) *OrderPayloadBuilder {
	b.order.PetID = ptr.To(id)
	return b
}

func (b *OrderPayloadBuilder) WithQuantity(quantity int32) *OrderPayloadBuilder {
	b.order.Quantity = ptr.To(quantity)
	return b
}

func (b *OrderPayloadBuilder) WithStatus(status petstore.OrderStatus) *OrderPayloadBuilder {
	b.order.Status = ptr.To(status)
	return b
}

func (b *OrderPayloadBuilder) WithComplete(complete bool) *OrderPayloadBuilder {
	b.order.Complete = ptr.To(complete)
	return b
}

// Build returns the completed order payload.
func (b *OrderPayloadBuilder) Build() petstore.Order {
	return b.order
}
