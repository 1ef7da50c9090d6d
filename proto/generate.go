// Package proto contains the ToolService gRPC definition. The Go
// bindings are generated next to this file and are not committed.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative toolservice.proto
