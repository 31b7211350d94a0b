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

//nolint:revive
package fakestore

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
	"k8s.io/utils/ptr"

	"github.com/KovalIllia/petstore-api-tests/pkg/petstore"
)

const maxUploadSize = 10 << 20

// Handler implements the routes over the pet and order tables.
type Handler struct {
	pets   *table[petstore.Pet]
	orders *table[petstore.Order]
}

func writeJSONResponse(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_, _ = w.Write(body)
}

// writeError writes the store's error envelope.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSONResponse(w, status, petstore.APIResponse{
		Code:    int32(status),
		Type:    "error",
		Message: message,
	})
}

// writeAck writes the acknowledgement the store returns for forms, uploads
// and deletes, carrying the id as its message.
func writeAck(w http.ResponseWriter, id int64) {
	writeJSONResponse(w, http.StatusOK, petstore.APIResponse{
		Code:    http.StatusOK,
		Type:    "unknown",
		Message: strconv.FormatInt(id, 10),
	})
}

func bindID(r *http.Request, name string) (int64, error) {
	var id int64

	options := runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Required:      true,
	}

	if err := runtime.BindStyledParameterWithOptions("simple", name, chi.URLParam(r, name), &id, options); err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, err)
	}

	return id, nil
}

func decodeBody(r *http.Request, v any) error {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}

	return json.Unmarshal(data, v)
}

func (h *Handler) AddPet(w http.ResponseWriter, r *http.Request) {
	var pet petstore.Pet

	if err := decodeBody(r, &pet); err != nil {
		writeError(w, http.StatusMethodNotAllowed, "Invalid input")
		return
	}

	if pet.ID == nil || *pet.ID == 0 {
		pet.ID = ptr.To(h.pets.allocateID())
	}

	if pet.PhotoURLs == nil {
		pet.PhotoURLs = []string{}
	}

	h.pets.create(*pet.ID, pet)

	writeJSONResponse(w, http.StatusOK, pet)
}

func (h *Handler) UpdatePet(w http.ResponseWriter, r *http.Request) {
	var pet petstore.Pet

	if err := decodeBody(r, &pet); err != nil || pet.ID == nil {
		writeError(w, http.StatusBadRequest, "Invalid ID supplied")
		return
	}

	if pet.PhotoURLs == nil {
		pet.PhotoURLs = []string{}
	}

	if _, ok := h.pets.update(*pet.ID, func(p *petstore.Pet) { *p = pet }); !ok {
		writeError(w, http.StatusNotFound, "Pet not found")
		return
	}

	writeJSONResponse(w, http.StatusOK, pet)
}

func (h *Handler) FindPetsByStatus(w http.ResponseWriter, r *http.Request) {
	var statuses []petstore.PetStatus

	if err := runtime.BindQueryParameter("form", true, true, "status", r.URL.Query(), &statuses); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid status value")
		return
	}

	result := []petstore.Pet{}

	for _, pet := range h.pets.visible() {
		for _, status := range statuses {
			if pet.Status != nil && *pet.Status == status {
				result = append(result, pet)
				break
			}
		}
	}

	writeJSONResponse(w, http.StatusOK, result)
}

func (h *Handler) GetPet(w http.ResponseWriter, r *http.Request) {
	id, err := bindID(r, "petId")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	pet, ok := h.pets.get(id)
	if !ok {
		writeError(w, http.StatusNotFound, "Pet not found")
		return
	}

	writeJSONResponse(w, http.StatusOK, pet)
}

func (h *Handler) UpdatePetWithForm(w http.ResponseWriter, r *http.Request) {
	id, err := bindID(r, "petId")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusMethodNotAllowed, "Invalid input")
		return
	}

	name := r.PostForm.Get("name")
	status := r.PostForm.Get("status")

	mutate := func(p *petstore.Pet) {
		if name != "" {
			p.Name = name
		}

		if status != "" {
			p.Status = ptr.To(petstore.PetStatus(status))
		}
	}

	if _, ok := h.pets.update(id, mutate); !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	writeAck(w, id)
}

func (h *Handler) DeletePet(w http.ResponseWriter, r *http.Request) {
	id, err := bindID(r, "petId")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if !h.pets.remove(id) {
		// The public store answers a missing pet with an empty 404.
		w.WriteHeader(http.StatusNotFound)
		return
	}

	writeAck(w, id)
}

func (h *Handler) UploadPetImage(w http.ResponseWriter, r *http.Request) {
	id, err := bindID(r, "petId")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Missing file")
		return
	}

	defer file.Close()

	if _, ok := h.pets.get(id); !ok {
		writeError(w, http.StatusNotFound, "Pet not found")
		return
	}

	message := fmt.Sprintf("File uploaded to ./%s, %d bytes", header.Filename, header.Size)
	if metadata := r.FormValue("additionalMetadata"); metadata != "" {
		message = "additionalMetadata: " + metadata + "\n" + message
	}

	writeJSONResponse(w, http.StatusOK, petstore.APIResponse{
		Code:    http.StatusOK,
		Type:    "unknown",
		Message: message,
	})
}

func (h *Handler) GetInventory(w http.ResponseWriter, r *http.Request) {
	inventory := petstore.Inventory{
		string(petstore.PetStatusAvailable): 0,
		string(petstore.PetStatusPending):   0,
		string(petstore.PetStatusSold):      0,
	}

	for _, pet := range h.pets.visible() {
		if pet.Status != nil {
			inventory[string(*pet.Status)]++
		}
	}

	writeJSONResponse(w, http.StatusOK, inventory)
}

func (h *Handler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var order petstore.Order

	if err := decodeBody(r, &order); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid Order")
		return
	}

	if order.ID == nil || *order.ID == 0 {
		order.ID = ptr.To(h.orders.allocateID())
	}

	if order.Complete == nil {
		order.Complete = ptr.To(false)
	}

	h.orders.create(*order.ID, order)

	writeJSONResponse(w, http.StatusOK, order)
}

func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := bindID(r, "orderId")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	order, ok := h.orders.get(id)
	if !ok {
		writeError(w, http.StatusNotFound, "Order not found")
		return
	}

	writeJSONResponse(w, http.StatusOK, order)
}

func (h *Handler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, err := bindID(r, "orderId")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if !h.orders.remove(id) {
		writeError(w, http.StatusNotFound, "Order Not Found")
		return
	}

	writeAck(w, id)
}
