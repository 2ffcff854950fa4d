// Package config loads the personal server's configuration from
// environment variables, command-line flags, and an optional JSON file,
// merged in that priority order with built-in defaults at the bottom.
package config
