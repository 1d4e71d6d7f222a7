// Package config handles client configuration loading and validation.
//
// Configuration is loaded from efa.yml (or config.yml) and validated using
// struct tags. Several EFA servers may be listed under endpoints and picked by
// name with SelectEndpoint.
package config
