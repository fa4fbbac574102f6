package entitlement

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/parrishadam/thebridgeworld-sub002/internal/apperr"
	"github.com/parrishadam/thebridgeworld-sub002/internal/auth"
	"github.com/parrishadam/thebridgeworld-sub002/internal/cache"
	"github.com/parrishadam/thebridgeworld-sub002/internal/model"
	"github.com/parrishadam/thebridgeworld-sub002/internal/repository"
)

const profileCacheTTL = 5 * time.Minute

// ProfileCacheKey is the cache key for one resolved profile. Writers
// that mutate a profile must invalidate it through this key.
func ProfileCacheKey(identityID string) string {
	return "profile:" + identityID
}

// Resolver maps an identity token's subject onto a persisted profile,
// creating one with tier free and all role flags false on first sight.
type Resolver struct {
	profiles repository.ProfileRepository
	cache    *cache.Client
}

// NewResolver builds a Resolver over the profile store and cache.
func NewResolver(profiles repository.ProfileRepository, cache *cache.Client) *Resolver {
	return &Resolver{profiles: profiles, cache: cache}
}

// Resolve returns the profile for the claims' subject. Claims without
// an identity deny as unauthenticated. First-time resolutions seed the
// name and email hints from the token; a concurrent first resolution
// for the same identity converges on one row.
func (r *Resolver) Resolve(ctx context.Context, claims *auth.IdentityClaims) (*model.Profile, error) {
	if claims == nil || claims.Subject == "" {
		return nil, apperr.ErrUnauthenticated
	}

	key := ProfileCacheKey(claims.Subject)
	if data, _ := r.cache.Get(ctx, key); data != nil {
		var cached model.Profile
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	first, last := splitName(claims.Name)
	seed := &model.Profile{
		ID:        claims.Subject,
		FirstName: first,
		LastName:  last,
		Email:     claims.Email,
		Tier:      model.TierFree,
	}

	profile, err := r.profiles.GetOrCreate(ctx, seed)
	if err != nil {
		return nil, fmt.Errorf("resolve profile %s: %w", claims.Subject, err)
	}

	if payload, err := json.Marshal(profile); err == nil {
		_ = r.cache.Set(ctx, key, payload, profileCacheTTL)
	}
	return profile, nil
}

func splitName(full string) (first, last string) {
	full = strings.TrimSpace(full)
	if full == "" {
		return "", ""
	}
	parts := strings.SplitN(full, " ", 2)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}
