// Package generator wires the loader → analyzer → renderer pipeline into a
// single entry point, providing dependency injection friendly helpers for
// consumers that want custom analyzers, registries, or renderer sets.
package generator
