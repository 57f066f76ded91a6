package availability

import (
	"context"
	"fmt"

	"viavela/utils"

	"github.com/go-redis/redis/v8"
)

// Cached availability is keyed by a per-provider version counter. Every
// schedule or blocked-date mutation bumps the counter, so entries computed
// from superseded state can never be served, regardless of in-flight request
// ordering. Old entries age out via TTL.

func versionKey(providerID string) string {
	return utils.AvailabilityCachePrefix + "ver:" + providerID
}

func gridKey(providerID, version string, year, month int) string {
	return fmt.Sprintf("%sgrid:%s:%s:%04d-%02d", utils.AvailabilityCachePrefix, providerID, version, year, month)
}

// BumpVersion invalidates all cached availability for a provider.
func BumpVersion(ctx context.Context, client *redis.Client, providerID string) error {
	if client == nil {
		return nil
	}
	return client.Incr(ctx, versionKey(providerID)).Err()
}

// currentVersion returns the provider's cache version, "0" when unset or on
// any cache error (callers then just recompute).
func currentVersion(ctx context.Context, client *redis.Client, providerID string) string {
	v, err := client.Get(ctx, versionKey(providerID)).Result()
	if err != nil {
		return "0"
	}
	return v
}
