// Package identity is the narrow surface of the external identity
// provider the CMS depends on: a directory lookup for admin views and
// a best-effort password-reset trigger. Session issuance and token
// mechanics stay inside the provider.
package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/parrishadam/thebridgeworld-sub002/internal/apperr"
)

// Record is the provider's directory entry for one identity.
type Record struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url"`
}

// Provider exposes the provider operations used by the CMS.
type Provider interface {
	// Lookup fetches directory records for the given identity ids.
	// Ids with no live record are simply absent from the result;
	// callers degrade those rows rather than failing.
	Lookup(ctx context.Context, ids []string) (map[string]Record, error)

	// SendPasswordReset asks the provider to start its out-of-band
	// reset flow. Success means the provider accepted the request,
	// not that any email was delivered.
	SendPasswordReset(ctx context.Context, identityID string) error
}

// HTTPProvider talks to the provider's admin REST API with a service
// API key.
type HTTPProvider struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewHTTPProvider builds a provider client for the given base URL.
func NewHTTPProvider(baseURL, apiKey string) *HTTPProvider {
	return &HTTPProvider{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type lookupRequest struct {
	IDs []string `json:"ids"`
}

type lookupResponse struct {
	Users []Record `json:"users"`
}

// Lookup implements Provider.
func (p *HTTPProvider) Lookup(ctx context.Context, ids []string) (map[string]Record, error) {
	if len(ids) == 0 {
		return map[string]Record{}, nil
	}

	payload, err := json.Marshal(lookupRequest{IDs: ids})
	if err != nil {
		return nil, fmt.Errorf("marshal lookup request: %w", err)
	}

	var out lookupResponse
	if err := p.post(ctx, "/admin/users/lookup", payload, &out); err != nil {
		return nil, err
	}

	records := make(map[string]Record, len(out.Users))
	for _, rec := range out.Users {
		records[rec.ID] = rec
	}
	return records, nil
}

// SendPasswordReset implements Provider.
func (p *HTTPProvider) SendPasswordReset(ctx context.Context, identityID string) error {
	path := "/admin/users/" + url.PathEscape(identityID) + "/password-reset"
	return p.post(ctx, path, nil, nil)
}

func (p *HTTPProvider) post(ctx context.Context, path string, body []byte, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build provider request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if p.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+p.apiKey)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return apperr.Upstreamf("identity provider unreachable: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apperr.Upstreamf("identity provider returned status %d", resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return apperr.Upstreamf("decode provider response: %v", err)
		}
	}
	return nil
}
