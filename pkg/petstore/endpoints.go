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
	"fmt"
	"strings"

	"github.com/oapi-codegen/runtime"
)

// Route templates as they appear in the OpenAPI document, relative to the /v2
// base path.
const (
	RoutePet            = "/pet"
	RoutePetByID        = "/pet/{petId}"
	RoutePetsByStatus   = "/pet/findByStatus"
	RoutePetUploadImage = "/pet/{petId}/uploadImage"
	RouteStoreInventory = "/store/inventory"
	RouteStoreOrder     = "/store/order"
	RouteStoreOrderByID = "/store/order/{orderId}"
)

// Endpoints renders concrete request paths from the route templates.
type Endpoints struct{}

// NewEndpoints creates a new Endpoints instance.
func NewEndpoints() *Endpoints {
	return &Endpoints{}
}

// pathParam renders a simple-style path parameter, escaped for use in a URL path.
func pathParam(name string, value any) (string, error) {
	s, err := runtime.StyleParamWithLocation("simple", false, name, runtime.ParamLocationPath, value)
	if err != nil {
		return "", fmt.Errorf("styling path parameter %s: %w", name, err)
	}

	return s, nil
}

func expand(route, name string, value any) (string, error) {
	s, err := pathParam(name, value)
	if err != nil {
		return "", err
	}

	return strings.Replace(route, "{"+name+"}", s, 1), nil
}

// Pet endpoints.
func (e *Endpoints) Pets() string {
	return RoutePet
}

func (e *Endpoints) Pet(petID int64) (string, error) {
	return expand(RoutePetByID, "petId", petID)
}

func (e *Endpoints) PetImage(petID int64) (string, error) {
	return expand(RoutePetUploadImage, "petId", petID)
}

// PetsByStatus renders the exploded form query, e.g.
// /pet/findByStatus?status=available&status=sold.
func (e *Endpoints) PetsByStatus(statuses ...PetStatus) (string, error) {
	if len(statuses) == 0 {
		return RoutePetsByStatus, nil
	}

	values := make([]string, len(statuses))
	for i, s := range statuses {
		values[i] = string(s)
	}

	query, err := runtime.StyleParamWithLocation("form", true, "status", runtime.ParamLocationQuery, values)
	if err != nil {
		return "", fmt.Errorf("styling status query: %w", err)
	}

	return RoutePetsByStatus + "?" + query, nil
}

// Store endpoints.
func (e *Endpoints) Inventory() string {
	return RouteStoreInventory
}

func (e *Endpoints) Orders() string {
	return RouteStoreOrder
}

func (e *Endpoints) Order(orderID int64) (string, error) {
	return expand(RouteStoreOrderByID, "orderId", orderID)
}
