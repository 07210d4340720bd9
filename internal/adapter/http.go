package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-store-locator/internal/logger"
	"github.com/MKhiriev/go-store-locator/internal/utils"
	"github.com/MKhiriev/go-store-locator/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP implementation of [ServerAdapter].
// address may omit the scheme, in which case http is assumed.
//
// Returns an error if address is empty or cannot be parsed as a URL.
func NewHTTPServerAdapter(address string, timeout time.Duration, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, timeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
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

// SignIn implements [ServerAdapter]. It POSTs the credentials to
// /api/auth/sign-in; the session cookie lands in the client's jar.
func (h *httpServerAdapter) SignIn(ctx context.Context, email, password string) (*models.Account, error) {
	var result models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.SignInRequest{Email: email, Password: password}).
		SetResult(&result).
		Post("/api/auth/sign-in")
	if err != nil {
		return nil, fmt.Errorf("sign-in request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if !result.Success || result.User == nil {
		return nil, fmt.Errorf("%w: sign-in returned no user", ErrUnexpectedResponse)
	}

	h.logger.Debug().Str("account_id", result.User.ID).Msg("signed in")
	return result.User, nil
}

// SignOut implements [ServerAdapter].
func (h *httpServerAdapter) SignOut(ctx context.Context) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Post("/api/auth/sign-out")
	if err != nil {
		return fmt.Errorf("sign-out request: %w", err)
	}

	return mapHTTPError(resp)
}

// GetSession implements [ServerAdapter].
func (h *httpServerAdapter) GetSession(ctx context.Context) (*models.Account, error) {
	var result models.SessionResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&result).
		Get("/api/auth/get-session")
	if err != nil {
		return nil, fmt.Errorf("get-session request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return result.User, nil
}

// ListLocations implements [ServerAdapter].
func (h *httpServerAdapter) ListLocations(ctx context.Context, filter models.LocationFilter) ([]models.Location, error) {
	req := h.client.R().SetContext(ctx)
	if filter.Active != nil {
		req.SetQueryParam("active", strconv.FormatBool(*filter.Active))
	}
	if filter.DistrictID != nil {
		req.SetQueryParam("districtId", *filter.DistrictID)
	}
	if filter.State != nil {
		req.SetQueryParam("state", *filter.State)
	}

	resp, err := req.Get("/api/locations")
	if err != nil {
		return nil, fmt.Errorf("list locations request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var envelope struct {
		Success bool              `json:"success"`
		Data    []models.Location `json:"data"`
	}
	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		return nil, fmt.Errorf("decode locations response: %w", err)
	}

	return envelope.Data, nil
}

// Health implements [ServerAdapter].
func (h *httpServerAdapter) Health(ctx context.Context) (models.HealthResponse, error) {
	var result models.HealthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&result).
		Get("/health")
	if err != nil {
		return result, fmt.Errorf("health request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return result, err
	}

	return result, nil
}
