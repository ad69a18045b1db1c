// Package main provides the entry point for the setstore command line tool.
// It manages object-scoped settings for a modular application platform:
// modules declare setting descriptors at startup and runtime code reads and
// writes per-object values, persisted with gorm and cached in an in-memory
// region with identity-tag invalidation.
package main
