package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-crud-api/internal/logger"
	"github.com/MKhiriev/go-crud-api/models"
)

const defaultTimeout = 15 * time.Second

// ClientConfig configures [NewHTTPClient].
type ClientConfig struct {
	// BaseURL is the server address; "host:port" is treated as http.
	BaseURL string
	// APIToken is sent as "Authorization: Bearer <APIToken>".
	APIToken string
	// Timeout bounds every request. Zero means 15 seconds.
	Timeout time.Duration
}

type httpClient struct {
	client *resty.Client

	logger *logger.Logger
}

// NewHTTPClient returns a resty-backed [APIClient].
func NewHTTPClient(cfg ClientConfig, logger *logger.Logger) (APIClient, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetAuthToken(cfg.APIToken).
		SetHeader("Accept", "application/json")

	return &httpClient{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errEmptyBaseURL
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (c *httpClient) Health(ctx context.Context) (models.HealthStatus, error) {
	var status models.HealthStatus
	err := c.do(ctx, http.MethodGet, "/api/health", nil, &status)
	return status, err
}

func (c *httpClient) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := c.do(ctx, http.MethodGet, "/api/users", nil, &users)
	return users, err
}

func (c *httpClient) GetUser(ctx context.Context, id int64) (models.User, error) {
	var user models.User
	err := c.do(ctx, http.MethodGet, userPath(id), nil, &user)
	return user, err
}

func (c *httpClient) CreateUser(ctx context.Context, req models.CreateUserRequest) (models.User, error) {
	var user models.User
	err := c.do(ctx, http.MethodPost, "/api/users", req, &user)
	return user, err
}

func (c *httpClient) UpdateUser(ctx context.Context, id int64, patch models.UserPatch) (models.User, error) {
	var user models.User
	err := c.do(ctx, http.MethodPut, userPath(id), patch, &user)
	return user, err
}

func (c *httpClient) DeleteUser(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, userPath(id), nil, nil)
}

func (c *httpClient) ListUserItems(ctx context.Context, id int64) ([]models.Item, error) {
	var items []models.Item
	err := c.do(ctx, http.MethodGet, userPath(id)+"/items", nil, &items)
	return items, err
}

func (c *httpClient) ListItems(ctx context.Context) ([]models.Item, error) {
	var items []models.Item
	err := c.do(ctx, http.MethodGet, "/api/items", nil, &items)
	return items, err
}

func (c *httpClient) GetItem(ctx context.Context, id int64) (models.Item, error) {
	var item models.Item
	err := c.do(ctx, http.MethodGet, itemPath(id), nil, &item)
	return item, err
}

func (c *httpClient) CreateItem(ctx context.Context, req models.CreateItemRequest) (models.Item, error) {
	var item models.Item
	err := c.do(ctx, http.MethodPost, "/api/items", req, &item)
	return item, err
}

func (c *httpClient) UpdateItem(ctx context.Context, id int64, patch models.ItemPatch) (models.Item, error) {
	var item models.Item
	err := c.do(ctx, http.MethodPut, itemPath(id), patch, &item)
	return item, err
}

func (c *httpClient) DeleteItem(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, itemPath(id), nil, nil)
}

func (c *httpClient) IssueToken(ctx context.Context, username, password string) (models.AccessToken, error) {
	var token models.AccessToken
	err := c.do(ctx, http.MethodPost, "/api/auth/token", models.TokenRequest{
		Username: models.Some(username),
		Password: models.Some(password),
	}, &token)
	return token, err
}

func (c *httpClient) VerifyToken(ctx context.Context, token string) (models.TokenVerification, error) {
	var verification models.TokenVerification
	err := c.do(ctx, http.MethodPost, "/api/auth/verify", models.VerifyTokenRequest{Token: models.Some(token)}, &verification)
	return verification, err
}

// do sends one request. body is encoded as JSON when non-nil; result, when
// non-nil, receives the decoded 2xx response.
func (c *httpClient) do(ctx context.Context, method, path string, body, result any) error {
	req := c.client.R().SetContext(ctx)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}
	if result != nil {
		req.SetResult(result)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s request: %w", method, path, err)
	}

	if err = mapHTTPError(resp); err != nil {
		logger.FromContext(logger.WithFallback(ctx, c.logger)).Debug().
			Err(err).
			Str("method", method).
			Str("path", path).
			Msg("api request failed")
		return err
	}

	return nil
}

func userPath(id int64) string {
	return "/api/users/" + strconv.FormatInt(id, 10)
}

func itemPath(id int64) string {
	return "/api/items/" + strconv.FormatInt(id, 10)
}
