package identity

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/parrishadam/thebridgeworld-sub002/internal/apperr"
)

func TestHTTPProvider_Lookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/users/lookup", r.URL.Path)
		assert.Equal(t, "Bearer service-key", r.Header.Get("Authorization"))

		var req lookupRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.ElementsMatch(t, []string{"id-1", "id-2"}, req.IDs)

		// id-2 has no live record
		json.NewEncoder(w).Encode(lookupResponse{Users: []Record{
			{ID: "id-1", Name: "Ada Reader", Email: "ada@example.com"},
		}})
	}))
	defer srv.Close()

	p := NewHTTPProvider(srv.URL, "service-key")
	records, err := p.Lookup(context.Background(), []string{"id-1", "id-2"})

	assert.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, "Ada Reader", records["id-1"].Name)
	_, ok := records["id-2"]
	assert.False(t, ok)
}

func TestHTTPProvider_Lookup_EmptyIDs(t *testing.T) {
	p := NewHTTPProvider("http://unused", "")
	records, err := p.Lookup(context.Background(), nil)
	assert.NoError(t, err)
	assert.Empty(t, records)
}

func TestHTTPProvider_Lookup_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	p := NewHTTPProvider(srv.URL, "")
	_, err := p.Lookup(context.Background(), []string{"id-1"})
	assert.ErrorIs(t, err, apperr.ErrUpstream)
}

func TestHTTPProvider_SendPasswordReset(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	p := NewHTTPProvider(srv.URL, "")
	err := p.SendPasswordReset(context.Background(), "id-9")

	assert.NoError(t, err)
	assert.Equal(t, "/admin/users/id-9/password-reset", gotPath)
}

func TestHTTPProvider_SendPasswordReset_Unreachable(t *testing.T) {
	p := NewHTTPProvider("http://127.0.0.1:1", "")
	err := p.SendPasswordReset(context.Background(), "id-9")
	assert.ErrorIs(t, err, apperr.ErrUpstream)
}
