package storage

// Storage keys. All record families share one flat string-keyed namespace.
const (
	ActivitiesKey     = "association_activities"
	UserKey           = "association_user"
	AuthTokenKey      = "association_auth_token"
	PageContentPrefix = "association_page_content_"
)

// PageContentKey builds the storage key for a page document.
func PageContentKey(pageKey string) string {
	return PageContentPrefix + pageKey
}

// Store is the durable key-value port every record family goes through.
// Implementations must be safe for concurrent use and must never alias the
// byte slices they hand out.
type Store interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Delete(key string)
	Has(key string) bool
	Keys() []string
	Snapshot() map[string][]byte
	Restore(entries map[string][]byte)
}
