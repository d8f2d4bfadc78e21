// Package filesystem provides filesystem implementations for gamebox.
//
// This package defines the FS interface the package model is written
// against, along with the standard OS implementation and an afero-backed
// implementation used by tests.
package filesystem
