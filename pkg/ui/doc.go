// Package ui renders session results for humans (terminal report) and for
// machines (JSON, YAML and XML export). It is pure formatting: no
// filesystem access happens here except in WriteReport, which writes the
// already-rendered export.
package ui
