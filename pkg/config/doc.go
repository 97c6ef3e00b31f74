// Package config loads configuration structs from environment variables,
// with an optional .env bootstrap for local development.
package config
