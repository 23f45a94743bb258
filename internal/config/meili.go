package config

// MeiliConfig holds connection settings for the Meilisearch instance that
// serves hotel full-text search.  Search is optional: when Host is empty the
// search endpoint reports itself unavailable instead of failing startup.
type MeiliConfig struct {
	Host      string // e.g. http://localhost:7700
	APIKey    string // master or search key; empty for unsecured dev instances
	IndexName string // index holding hotel documents
}

// LoadMeiliConfig reads Meilisearch settings from the environment.
func LoadMeiliConfig() MeiliConfig {
	return MeiliConfig{
		Host:      getenv("MEILI_HOST", ""),
		APIKey:    getenv("MEILI_API_KEY", ""),
		IndexName: getenv("MEILI_HOTELS_INDEX", "hotels"),
	}
}
