// Package pb holds the generated board wire types shared by the match
// handler and clients.
package pb

//go:generate protoc --go_out=. --go_opt=paths=source_relative board.proto
