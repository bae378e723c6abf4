package config

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port           int      `yaml:"port" validate:"gte=0"`
	UIDir          string   `yaml:"uiDir"`
	AllowedOrigins []string `yaml:"allowedOrigins"`
}

// DatasetConfig locates the bus route dataset. Exactly one of Path or URL
// is expected; TimeoutMS only applies to URL fetches.
type DatasetConfig struct {
	Path      string `yaml:"path"`
	URL       string `yaml:"url" validate:"omitempty,url"`
	TimeoutMS int    `yaml:"timeoutMS" validate:"gte=0"`
}

// AliasEntry maps an informal phrase to a stop name
type AliasEntry struct {
	Phrase string `yaml:"phrase" validate:"required"`
	Stop   string `yaml:"stop" validate:"required"`
}

// NormalizerConfig tunes location normalization
type NormalizerConfig struct {
	FuzzyThreshold float64      `yaml:"fuzzyThreshold" validate:"gte=0,lte=1"`
	Aliases        []AliasEntry `yaml:"aliases" validate:"dive"`
}

// AliasMap flattens the alias entries into the map the normalizer takes.
// Configured entries extend or override the built-in alias table.
func (n NormalizerConfig) AliasMap() map[string]string {
	if len(n.Aliases) == 0 {
		return nil
	}
	out := make(map[string]string, len(n.Aliases))
	for _, a := range n.Aliases {
		out[a.Phrase] = a.Stop
	}
	return out
}

// ExtractorConfig contains the model-backed intent extractor configuration
type ExtractorConfig struct {
	Enabled       bool   `yaml:"enabled"`
	Model         string `yaml:"model"`
	BaseURL       string `yaml:"baseURL" validate:"omitempty,url"`
	APIKeyEnv     string `yaml:"apiKeyEnv"`
	TimeoutMS     int    `yaml:"timeoutMS" validate:"gte=0"`
	RatePerMinute int    `yaml:"ratePerMinute" validate:"gte=0"`
	Burst         int    `yaml:"burst" validate:"gte=0"`
}

// CacheConfig bounds the chat reply cache
type CacheConfig struct {
	TTLSeconds     int `yaml:"ttlSeconds" validate:"gte=0"`
	CleanupSeconds int `yaml:"cleanupSeconds" validate:"gte=0"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server     ServerConfig     `yaml:"server"`
	Dataset    DatasetConfig    `yaml:"dataset"`
	Normalizer NormalizerConfig `yaml:"normalizer"`
	Extractor  ExtractorConfig  `yaml:"extractor"`
	Cache      CacheConfig      `yaml:"cache"`
}
