// Package config loads runtime configuration for the EterBox CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON or YAML file selected via -c or -config.
//  3. Command-line flags (see parseFlags).
//  4. ETERBOX_SERVER from the environment.
//
// Supported flags
//
//	-a string   address:port of the backend gRPC endpoint
//	-db string  path of the local SQLite database
//	-t int      inactivity timeout (seconds)
//	-w int      inactivity warning lead time (seconds)
//
// # File schema
//
// Durations use timex.Duration, so values can be strings like "15m" or
// integer nanoseconds:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "inactivity_timeout": "15m",
//	  "inactivity_warning": "60s"
//	}
package config
