// Package core drives an organize session: enumerate the source directory,
// classify each file, move it, and accumulate per-category counts and
// errors for the final report.
//
// Sessions are single-threaded and strictly sequential. Files are processed
// in sorted name order so runs are reproducible across platforms.
package core
