// Package combatv1 holds the generated gRPC bindings for the combat
// service. Run go generate to regenerate after editing combat.proto.
package combatv1

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative combat.proto
