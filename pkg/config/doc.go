// Package config loads configuration structs from environment variables
// using `env` struct tags, with optional .env file support for local
// development. See Load for usage.
package config
