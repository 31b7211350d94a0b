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

// PetStatus is the lifecycle state of a pet in the store.
type PetStatus string

const (
	PetStatusAvailable PetStatus = "available"
	PetStatusPending   PetStatus = "pending"
	PetStatusSold      PetStatus = "sold"
)

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

const (
	OrderStatusPlaced    OrderStatus = "placed"
	OrderStatusApproved  OrderStatus = "approved"
	OrderStatusDelivered OrderStatus = "delivered"
)

type Category struct {
	ID   *int64  `json:"id,omitempty"`
	Name *string `json:"name,omitempty"`
}

type Tag struct {
	ID   *int64  `json:"id,omitempty"`
	Name *string `json:"name,omitempty"`
}

// Pet is the body of the /pet routes.
type Pet struct {
	ID        *int64     `json:"id,omitempty"`
	Category  *Category  `json:"category,omitempty"`
	Name      string     `json:"name"`
	PhotoURLs []string   `json:"photoUrls"`
	Tags      []Tag      `json:"tags,omitempty"`
	Status    *PetStatus `json:"status,omitempty"`
}

// Order is the body of the /store/order routes.
type Order struct {
	ID       *int64       `json:"id,omitempty"`
	PetID    *int64       `json:"petId,omitempty"`
	Quantity *int32       `json:"quantity,omitempty"`
	ShipDate *string      `json:"shipDate,omitempty"`
	Status   *OrderStatus `json:"status,omitempty"`
	Complete *bool        `json:"complete,omitempty"`
}

// APIResponse is what the store returns for form updates, uploads, deletes
// and errors.
type APIResponse struct {
	Code    int32  `json:"code"`
	Type    string `json:"type,omitempty"`
	Message string `json:"message,omitempty"`
}

// Inventory maps a pet status to the number of pets in it.
type Inventory map[string]int32
