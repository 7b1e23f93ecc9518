package store

import "context"

// Storage keys shared by the state slices. Values are JSON blobs; the
// consumer owns serialization.
const (
	KeyUserToken      = "user_token"
	KeyUserData       = "user_data"
	KeySavedJobs      = "saved_jobs"
	KeyRecentlyViewed = "recently_viewed"
	KeySearchHistory  = "search_history"
	KeyAppSettings    = "app_settings"
)

// Store is string-keyed blob storage. Get returns (nil, nil) for a
// missing key; absence is never an error.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, keys ...string) error
}
