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
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-logr/logr"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// ErrEmptyBody is returned when decoding a response that has no body.
var ErrEmptyBody = errors.New("empty response body")

const (
	contentTypeJSON = "application/json"
	contentTypeForm = "application/x-www-form-urlencoded"
)

// PetService is the pet half of the store API.
type PetService interface {
	AddPet(ctx context.Context, pet Pet) (*Response, error)
	UpdatePet(ctx context.Context, pet Pet) (*Response, error)
	FindPetsByStatus(ctx context.Context, statuses ...PetStatus) (*Response, error)
	GetPet(ctx context.Context, petID int64) (*Response, error)
	UpdatePetWithForm(ctx context.Context, petID int64, name string, status PetStatus) (*Response, error)
	DeletePet(ctx context.Context, petID int64) (*Response, error)
	UploadPetImage(ctx context.Context, petID int64, fileName string, content io.Reader, additionalMetadata string) (*Response, error)
}

// StoreService is the order half of the store API.
type StoreService interface {
	GetInventory(ctx context.Context) (*Response, error)
	PlaceOrder(ctx context.Context, order Order) (*Response, error)
	GetOrder(ctx context.Context, orderID int64) (*Response, error)
	DeleteOrder(ctx context.Context, orderID int64) (*Response, error)
}

//go:generate go tool mockgen -source=client.go -destination=mock/interfaces.go -package=mock

// APIClient talks to the pet store. Every method returns the raw response,
// an error means the request could not be made or read at all.
type APIClient struct {
	baseURL   string
	client    *http.Client
	limiter   *rate.Limiter
	config    *Config
	endpoints *Endpoints
}

var (
	_ PetService   = (*APIClient)(nil)
	_ StoreService = (*APIClient)(nil)
)

func NewAPIClient(baseURL string) (*APIClient, error) {
	config, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	if baseURL == "" {
		baseURL = config.BaseURL
	}

	return newAPIClientWithConfig(config, baseURL), nil
}

func NewAPIClientWithConfig(config *Config) *APIClient {
	return newAPIClientWithConfig(config, config.BaseURL)
}

// NewAPIClientForURL uses config for everything but the base URL, which is
// how the suites point a client at an in-process fake store.
func NewAPIClientForURL(config *Config, baseURL string) *APIClient {
	return newAPIClientWithConfig(config, baseURL)
}

// common constructor logic.
func newAPIClientWithConfig(config *Config, baseURL string) *APIClient {
	limit := rate.Inf
	if config.RequestsPerSecond > 0 {
		limit = rate.Limit(config.RequestsPerSecond)
	}

	return &APIClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client: &http.Client{
			Timeout: config.RequestTimeout,
		},
		limiter:   rate.NewLimiter(limit, 1),
		config:    config,
		endpoints: NewEndpoints(),
	}
}

// BaseURL is where requests are sent, without a trailing slash.
func (c *APIClient) BaseURL() string {
	return c.baseURL
}

// newTraceParent creates a W3C traceparent header value and returns it with
// its trace ID. A fresh trace per request lets a failure be found in the
// server logs.
func newTraceParent() (string, string) {
	trace := uuid.New()
	span := uuid.New()

	traceID := hex.EncodeToString(trace[:])

	return fmt.Sprintf("00-%s-%s-01", traceID, hex.EncodeToString(span[:8])), traceID
}

//nolint:cyclop
func (c *APIClient) doRequest(ctx context.Context, method, route, path string, body []byte, contentType string) (*Response, error) {
	fullURL := c.baseURL + path

	log := logr.FromContextOrDiscard(ctx).WithValues("method", method, "path", path)

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("waiting for rate limiter: %w", err)
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	// Add W3C Trace Context headers
	traceParent, traceID := newTraceParent()
	req.Header.Set("Traceparent", traceParent)
	req.Header.Set("Tracestate", "test-automation=ginkgo")
	req.Header.Set("Accept", contentTypeJSON)

	if body != nil {
		req.Header.Set("Content-Type", contentType)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	duration := time.Since(start)

	if err != nil {
		log.Error(err, "http request failed", "duration", duration, "traceID", traceID)
		return nil, fmt.Errorf("%s %s failed (trace ID: %s): %w", method, path, traceID, err)
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error(err, "reading response body", "status", resp.StatusCode, "duration", duration, "traceID", traceID)
		return nil, fmt.Errorf("reading %s %s response body (trace ID: %s): %w", method, path, traceID, err)
	}

	if c.config.LogRequests || c.config.DebugLogging {
		log.Info("request", "status", resp.StatusCode, "duration", duration, "traceparent", traceParent)
	}

	if (c.config.LogResponses || c.config.DebugLogging) && len(respBody) > 0 {
		log.Info("response body", "status", resp.StatusCode, "body", string(respBody))
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       respBody,
		Method:     method,
		URL:        fullURL,
		Route:      route,
		TraceID:    traceID,
	}, nil
}

func (c *APIClient) doJSON(ctx context.Context, method, route, path string, v any) (*Response, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshaling request body: %w", err)
	}

	return c.doRequest(ctx, method, route, path, body, contentTypeJSON)
}

// AddPet creates a pet.
func (c *APIClient) AddPet(ctx context.Context, pet Pet) (*Response, error) {
	return c.doJSON(ctx, http.MethodPost, RoutePet, c.endpoints.Pets(), pet)
}

// UpdatePet replaces an existing pet.
func (c *APIClient) UpdatePet(ctx context.Context, pet Pet) (*Response, error) {
	return c.doJSON(ctx, http.MethodPut, RoutePet, c.endpoints.Pets(), pet)
}

func (c *APIClient) FindPetsByStatus(ctx context.Context, statuses ...PetStatus) (*Response, error) {
	path, err := c.endpoints.PetsByStatus(statuses...)
	if err != nil {
		return nil, err
	}

	return c.doRequest(ctx, http.MethodGet, RoutePetsByStatus, path, nil, "")
}

// GetPet is the probe the suites poll for pet visibility.
func (c *APIClient) GetPet(ctx context.Context, petID int64) (*Response, error) {
	path, err := c.endpoints.Pet(petID)
	if err != nil {
		return nil, err
	}

	return c.doRequest(ctx, http.MethodGet, RoutePetByID, path, nil, "")
}

// UpdatePetWithForm changes name and status with a form post. Empty values
// are left out of the form.
func (c *APIClient) UpdatePetWithForm(ctx context.Context, petID int64, name string, status PetStatus) (*Response, error) {
	path, err := c.endpoints.Pet(petID)
	if err != nil {
		return nil, err
	}

	form := url.Values{}

	if name != "" {
		form.Set("name", name)
	}

	if status != "" {
		form.Set("status", string(status))
	}

	return c.doRequest(ctx, http.MethodPost, RoutePetByID, path, []byte(form.Encode()), contentTypeForm)
}

func (c *APIClient) DeletePet(ctx context.Context, petID int64) (*Response, error) {
	path, err := c.endpoints.Pet(petID)
	if err != nil {
		return nil, err
	}

	return c.doRequest(ctx, http.MethodDelete, RoutePetByID, path, nil, "")
}

// UploadPetImage posts a multipart form with a "file" part and an optional
// "additionalMetadata" field.
func (c *APIClient) UploadPetImage(ctx context.Context, petID int64, fileName string, content io.Reader, additionalMetadata string) (*Response, error) {
	path, err := c.endpoints.PetImage(petID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer

	writer := multipart.NewWriter(&buf)

	if additionalMetadata != "" {
		if err := writer.WriteField("additionalMetadata", additionalMetadata); err != nil {
			return nil, fmt.Errorf("writing metadata field: %w", err)
		}
	}

	part, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		return nil, fmt.Errorf("creating file part: %w", err)
	}

	if _, err := io.Copy(part, content); err != nil {
		return nil, fmt.Errorf("copying %s into form: %w", fileName, err)
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("closing multipart form: %w", err)
	}

	return c.doRequest(ctx, http.MethodPost, RoutePetUploadImage, path, buf.Bytes(), writer.FormDataContentType())
}

func (c *APIClient) GetInventory(ctx context.Context) (*Response, error) {
	return c.doRequest(ctx, http.MethodGet, RouteStoreInventory, c.endpoints.Inventory(), nil, "")
}

func (c *APIClient) PlaceOrder(ctx context.Context, order Order) (*Response, error) {
	return c.doJSON(ctx, http.MethodPost, RouteStoreOrder, c.endpoints.Orders(), order)
}

// GetOrder is the probe the suites poll for order visibility.
func (c *APIClient) GetOrder(ctx context.Context, orderID int64) (*Response, error) {
	path, err := c.endpoints.Order(orderID)
	if err != nil {
		return nil, err
	}

	return c.doRequest(ctx, http.MethodGet, RouteStoreOrderByID, path, nil, "")
}

func (c *APIClient) DeleteOrder(ctx context.Context, orderID int64) (*Response, error) {
	path, err := c.endpoints.Order(orderID)
	if err != nil {
		return nil, err
	}

	return c.doRequest(ctx, http.MethodDelete, RouteStoreOrderByID, path, nil, "")
}
