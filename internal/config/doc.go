// Package config defines the application's configuration structure and the
// logic to load it from files and environment variables. Configuration is
// loaded once at startup and passed explicitly into constructors; business
// logic never reads ambient environment state.
package config
