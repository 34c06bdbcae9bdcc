// Package config defines the application configuration and loads it
// from defaults, an optional cardforge.yaml file, and CARDFORGE_
// environment variables, with environment taking precedence over the
// file. Loaded configuration is validated before use.
package config
