// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/bpl-web-backend/internal/config"
	"github.com/MKhiriev/bpl-web-backend/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProvider(t *testing.T, serverURL string) *goTrueIdentityProvider {
	t.Helper()
	authCfg := config.Auth{SupabaseURL: serverURL, SupabaseKey: "anon-key", RequestTimeout: time.Second}

	p, err := NewGoTrueIdentityProvider(authCfg, logger.Nop())
	require.NoError(t, err)
	return p.(*goTrueIdentityProvider)
}

func TestGetUser_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/auth/v1/user", r.URL.Path)
		assert.Equal(t, "Bearer good-token", r.Header.Get("Authorization"))
		assert.Equal(t, "anon-key", r.Header.Get("apikey"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"0b6f3e1c-4a57-4d0e-9d1f-1b2c3d4e5f60","email":"alice@example.com","role":"authenticated","aud":"authenticated"}`))
	}))
	defer srv.Close()

	p := newTestProvider(t, srv.URL)
	identity, err := p.GetUser(context.Background(), "good-token")

	require.NoError(t, err)
	assert.Equal(t, "0b6f3e1c-4a57-4d0e-9d1f-1b2c3d4e5f60", identity.ID)
	assert.Equal(t, "alice@example.com", identity.Email)
	assert.Equal(t, "authenticated", identity.Role)
}

func TestGetUser_Unauthorized(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			_, _ = w.Write([]byte(`{"msg":"invalid JWT"}`))
		}))

		p := newTestProvider(t, srv.URL)
		_, err := p.GetUser(context.Background(), "bad-token")
		srv.Close()

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnauthorized)
	}
}

func TestGetUser_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	p := newTestProvider(t, srv.URL)
	_, err := p.GetUser(context.Background(), "token")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrProviderFailure)
}

func TestGetUser_UnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	p := newTestProvider(t, srv.URL)
	_, err := p.GetUser(context.Background(), "token")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnexpectedStatus)
	assert.Contains(t, err.Error(), "Not Found")
}

func TestGetUser_NoUserID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"email":"alice@example.com"}`))
	}))
	defer srv.Close()

	p := newTestProvider(t, srv.URL)
	_, err := p.GetUser(context.Background(), "token")

	assert.ErrorIs(t, err, ErrNoUser)
}

func TestGetUser_InvalidBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	p := newTestProvider(t, srv.URL)
	_, err := p.GetUser(context.Background(), "token")

	assert.ErrorIs(t, err, ErrProviderFailure)
}

func TestGetUser_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"u1"}`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := newTestProvider(t, srv.URL)
	_, err := p.GetUser(ctx, "token")

	assert.ErrorIs(t, err, ErrProviderFailure)
}

func TestNewGoTrueIdentityProvider_InvalidURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{name: "empty", url: ""},
		{name: "spaces", url: "   "},
		{name: "no host", url: "http://"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGoTrueIdentityProvider(config.Auth{SupabaseURL: tt.url}, logger.Nop())
			assert.Error(t, err)
		})
	}
}

func TestNormalizeBaseURL(t *testing.T) {
	got, err := normalizeBaseURL("xyz.supabase.co/")
	require.NoError(t, err)
	assert.Equal(t, "https://xyz.supabase.co", got)

	got, err = normalizeBaseURL("http://localhost:54321")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:54321", got)
}
