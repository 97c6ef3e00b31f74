// Package network implements the social network registry: the directory of
// users by name, sign-up validation, and login/logout delegation.
//
// A Network is a plain value created with New — tests and embedding
// applications inject it wherever needed. For programs that want the classic
// one-network-per-process discipline, Init provides an explicit construct-once
// instance with a configurable policy for repeated initialization.
package network
