// Package rules implements filesort's classification engine: an ordered
// rule list matched against filenames, first match wins.
//
// Two rule kinds exist. Extension rules match on exact, case-insensitive
// equality with the file's extension (the substring from the final dot).
// Prefix rules match when either the filename stem or the full filename
// starts with one of the patterns, case-insensitively; checking both guards
// against patterns written with or without an extension.
package rules
