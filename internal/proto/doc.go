// Package proto holds the gRPC service definition shared by the client
// engine and the reference server. The Go bindings are generated with
// protoc and are not edited by hand.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative shopkeeper.proto
