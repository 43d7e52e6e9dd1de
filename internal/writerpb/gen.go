// Package writerpb contains the generated wire types for the writer socket.
// Regenerate after editing writer.proto; field numbers must never change.
package writerpb

//go:generate protoc --go_out=. --go_opt=paths=source_relative writer.proto
