// Package client contains the CLI's transport to the EterBox server.
//
// GRPCClient wraps the eterbox.v1.Vault API, attaches the session token to
// every call through a unary interceptor and maps gRPC status codes to the
// sentinel errors in errors.go, so callers match them with errors.Is.
//
// InitDatabase opens the local SQLite database and applies the embedded
// goose migrations.
package client
