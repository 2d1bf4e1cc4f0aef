// Package types defines the shared value types of filesort: file entries,
// classification results, move outcomes and session results, plus the FS
// interface all filesystem access goes through.
//
// The package is dependency-free so that every other package can import it
// without cycles.
package types
