package backend_client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"listing-portal/internal/contextkeys"
	"listing-portal/internal/contracts"
	"listing-portal/internal/core/domain"
	"listing-portal/internal/core/port"
	"net/http"
	"strconv"
	"strings"
)

// ListingBackendClient - клиент REST API backend-а объявлений.
type ListingBackendClient struct {
	baseURL    string // Например, "http://localhost:8080"
	httpClient *http.Client
}

func NewListingBackendClient(baseURL string, httpClient *http.Client) *ListingBackendClient {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &ListingBackendClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// doRequest выполняет запрос с X-Trace-ID и, если передан токен, с Authorization: Bearer.
// Любой не-2xx ответ превращается в *domain.BackendError.
func (c *ListingBackendClient) doRequest(ctx context.Context, method, path, token string, payload any, out any) error {
	var body io.Reader
	if payload != nil {
		reqBody, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		body = bytes.NewReader(reqBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if traceID := contextkeys.TraceIDFromContext(ctx); traceID != "" {
		req.Header.Set("X-Trace-ID", traceID)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return readBackendError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}
	return nil
}

func readBackendError(resp *http.Response) error {
	raw, _ := io.ReadAll(resp.Body)
	backendErr := &domain.BackendError{
		StatusCode: resp.StatusCode,
		Body:       strings.TrimSpace(string(raw)),
	}
	var parsed errorResponse
	if json.Unmarshal(raw, &parsed) == nil {
		backendErr.Message = parsed.Message
	}
	return backendErr
}

func (c *ListingBackendClient) logger(ctx context.Context, method string) port.LoggerPort {
	return contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "ListingBackendClient",
		"method":    method,
	})
}

func (c *ListingBackendClient) GetPendingListings(ctx context.Context, session *domain.Session) ([]domain.Property, error) {
	var items []propertyResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/admin/listings/pending", session.Token, nil, &items); err != nil {
		c.logger(ctx, "GetPendingListings").Error("Failed to load pending listings", err, nil)
		return nil, err
	}
	return toDomainProperties(items), nil
}

func (c *ListingBackendClient) ApproveListing(ctx context.Context, session *domain.Session, id int64, message string) error {
	path := "/api/admin/listings/" + strconv.FormatInt(id, 10) + "/approve"
	if err := c.doRequest(ctx, http.MethodPut, path, session.Token, moderationRequest{Message: message}, nil); err != nil {
		c.logger(ctx, "ApproveListing").Error("Approve request failed", err, port.Fields{"listing_id": id})
		return err
	}
	return nil
}

func (c *ListingBackendClient) RejectListing(ctx context.Context, session *domain.Session, id int64, reason string) error {
	path := "/api/admin/listings/" + strconv.FormatInt(id, 10) + "/reject"
	if err := c.doRequest(ctx, http.MethodPut, path, session.Token, moderationRequest{Message: reason}, nil); err != nil {
		c.logger(ctx, "RejectListing").Error("Reject request failed", err, port.Fields{"listing_id": id})
		return err
	}
	return nil
}

func (c *ListingBackendClient) GetMyListings(ctx context.Context, session *domain.Session) ([]domain.Property, error) {
	var items []propertyResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/properties/my-listings", session.Token, nil, &items); err != nil {
		c.logger(ctx, "GetMyListings").Error("Failed to load my listings", err, nil)
		return nil, err
	}
	return toDomainProperties(items), nil
}

// CreateProperty проверяет тело по контракту CreatePropertyRequest и только потом отправляет его.
func (c *ListingBackendClient) CreateProperty(ctx context.Context, session *domain.Session, property *domain.NewProperty) (*domain.Property, error) {
	clientLogger := c.logger(ctx, "CreateProperty")

	request := toCreatePropertyRequest(property)
	if err := contracts.Validate(contracts.CreatePropertyRequestV1, request); err != nil {
		clientLogger.Error("Payload does not match contract", err, nil)
		return nil, fmt.Errorf("invalid property payload: %w", err)
	}

	var created propertyResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/properties", session.Token, request, &created); err != nil {
		// Некоторые версии backend-а отвечают 201 без тела.
		if errors.Is(err, io.EOF) {
			clientLogger.Info("Property created, backend returned no body", nil)
			return nil, nil
		}
		clientLogger.Error("Create property request failed", err, nil)
		return nil, err
	}

	result := created.toDomain()
	clientLogger.Info("Property created", port.Fields{"property_id": result.ID})
	return &result, nil
}

func (c *ListingBackendClient) GetAgent(ctx context.Context, session *domain.Session, agentID int64) (*domain.Agent, error) {
	var agent agentResponse
	path := "/api/agents/" + strconv.FormatInt(agentID, 10)
	if err := c.doRequest(ctx, http.MethodGet, path, session.Token, nil, &agent); err != nil {
		return nil, err
	}
	result := agent.toDomain()
	return &result, nil
}

// ListAgents сначала идет в /api/agents с токеном, при ошибке - в публичный /api/agents/public без авторизации.
func (c *ListingBackendClient) ListAgents(ctx context.Context, session *domain.Session) ([]domain.Agent, error) {
	clientLogger := c.logger(ctx, "ListAgents")

	var items []agentResponse
	err := c.doRequest(ctx, http.MethodGet, "/api/agents", session.Token, nil, &items)
	if err != nil {
		clientLogger.Warn("Authorized agents list failed, falling back to public endpoint", port.Fields{"error": err.Error()})
		items = nil
		if err := c.doRequest(ctx, http.MethodGet, "/api/agents/public", "", nil, &items); err != nil {
			clientLogger.Error("Failed to load agents", err, nil)
			return nil, fmt.Errorf("failed to load agents: %w", err)
		}
	}

	agents := make([]domain.Agent, len(items))
	for i, item := range items {
		agents[i] = item.toDomain()
	}
	return agents, nil
}
