// Package common contains shared constants and sentinel errors used across
// EterBox components.
package common

// AuthorizationHeaderName is the gRPC metadata key carrying the session token
// in the form "Bearer <token>".
const AuthorizationHeaderName = "authorization"

// BearerPrefix precedes the session token in AuthorizationHeaderName.
const BearerPrefix = "Bearer "
