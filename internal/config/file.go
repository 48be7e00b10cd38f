package config

// File represents the structure of the .ollamascan configuration file.
// Every field is optional; the file only overrides defaults, and CLI
// flags override the file.
type File struct {
	// Host overrides the catalog base URL (e.g. for a mirror).
	Host string `yaml:"host,omitempty"`

	// Manager overrides the local model manager's API address.
	Manager string `yaml:"manager,omitempty"`

	// Language overrides the message catalog ("en" or "es").
	Language string `yaml:"language,omitempty"`

	// Limit overrides the maximum number of models a search processes.
	Limit int `yaml:"limit,omitempty"`

	// Concurrency overrides the number of parallel detail fetches.
	Concurrency int `yaml:"concurrency,omitempty"`

	// TagContextLines overrides the line window used when recovering a
	// tag's parameter count and size from its detail page.
	TagContextLines int `yaml:"tagContextLines,omitempty"`

	// UserAgent overrides the User-Agent header.
	UserAgent string `yaml:"userAgent,omitempty"`

	// Headers are custom HTTP headers to include in catalog requests.
	// Useful when the catalog sits behind an authenticating proxy.
	Headers map[string]string `yaml:"headers,omitempty"`
}

// ApplyTo merges the file's values into the given configuration.
// Only fields the file actually sets are copied, so defaults survive an
// empty or partial file and CLI flags applied afterwards win.
func (f *File) ApplyTo(cfg *Config) {
	if f.Host != "" {
		cfg.Host = f.Host
	}
	if f.Manager != "" {
		cfg.ManagerAddress = f.Manager
	}
	if f.Language != "" {
		cfg.Language = f.Language
	}
	if f.Limit != 0 {
		cfg.Limit = f.Limit
	}
	if f.Concurrency != 0 {
		cfg.Concurrency = f.Concurrency
	}
	if f.TagContextLines != 0 {
		cfg.TagContextLines = f.TagContextLines
	}
	if f.UserAgent != "" {
		cfg.UserAgent = f.UserAgent
	}
	if len(f.Headers) > 0 {
		if cfg.Headers == nil {
			cfg.Headers = make(map[string]string)
		}
		for k, v := range f.Headers {
			cfg.Headers[k] = v
		}
	}
}
