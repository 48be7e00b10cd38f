// Package config provides configuration structures and utilities for
// ollamascan. It defines the options for catalog access, search behavior,
// model manager delegation, and output preferences, along with loading
// overrides from the .ollamascan YAML file.
package config
