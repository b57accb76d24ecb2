// Package proto holds the eterbox.v1 wire contract generated from
// eterbox.proto: the messages plus the AuthService, VaultService and
// AdminService stubs.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative eterbox.proto
