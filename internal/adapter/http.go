package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/bpl-web-backend/internal/config"
	"github.com/MKhiriev/bpl-web-backend/internal/logger"
	"github.com/MKhiriev/bpl-web-backend/internal/utils"
	"github.com/MKhiriev/bpl-web-backend/models"
	"github.com/goccy/go-json"
)

const userPath = "/auth/v1/user"

type goTrueIdentityProvider struct {
	client *utils.HTTPClient
	apiKey string

	logger *logger.Logger
}

// goTrueUser is the subset of the GoTrue user object the backend reads.
type goTrueUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// NewGoTrueIdentityProvider constructs an [IdentityProvider] that calls
// GET {SupabaseURL}/auth/v1/user for every token. Returns an error if
// authCfg.SupabaseURL is empty or is not a valid URL.
func NewGoTrueIdentityProvider(authCfg config.Auth, logger *logger.Logger) (IdentityProvider, error) {
	baseURL, err := normalizeBaseURL(authCfg.SupabaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid supabase url: %w", err)
	}

	return &goTrueIdentityProvider{
		client: utils.NewHTTPClient(baseURL, authCfg.RequestTimeout),
		apiKey: authCfg.SupabaseKey,
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
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

// GetUser implements [IdentityProvider].
func (g *goTrueIdentityProvider) GetUser(ctx context.Context, accessToken string) (models.Identity, error) {
	req := g.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetAuthToken(accessToken)
	if g.apiKey != "" {
		req.SetHeader("apikey", g.apiKey)
	}

	resp, err := req.Get(userPath)
	if err != nil {
		return models.Identity{}, fmt.Errorf("%w: get user request: %w", ErrProviderFailure, err)
	}
	if err = mapHTTPError(resp); err != nil {
		g.logger.Debug().Err(err).Str("func", "*goTrueIdentityProvider.GetUser").Int("status", resp.StatusCode()).Msg("token rejected by identity provider")
		return models.Identity{}, err
	}

	var user goTrueUser
	if err = json.Unmarshal(resp.Body(), &user); err != nil {
		return models.Identity{}, fmt.Errorf("%w: decode user response: %w", ErrProviderFailure, err)
	}
	if user.ID == "" {
		return models.Identity{}, ErrNoUser
	}

	return models.Identity{ID: user.ID, Email: user.Email, Role: user.Role}, nil
}
