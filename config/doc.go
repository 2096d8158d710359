// Package config loads pipeline settings.
//
// Sources, lowest priority first:
//
//  1. Defaults (Default)
//  2. A YAML file (optional)
//  3. MCODE_* environment variables
//
// The merged result is validated with struct tags before use.
package config
