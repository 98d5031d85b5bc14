// Package config loads the video-blog server configuration.
//
// Values are collected from command-line flags, environment variables
// (optionally seeded from a .env file), a JSON file and built-in defaults,
// merged with mergo so that the first non-zero value wins in that order, and
// validated before use. The entry point is [GetStructuredConfig].
package config
