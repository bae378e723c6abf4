// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// Every knob has a default, so a minimal file only needs to point at the
// route dataset.
package config
