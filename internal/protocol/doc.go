// Package protocol owns the fixed-width wire contract.
//
// Ownership boundary:
// - field kinds and their pad/parse rules (field)
// - ordered named layouts and offsets (schema)
// - message records and whole-buffer parse/write (record)
// - stream framing of consecutive records (frame)
// - named schema sets loaded from definition files (catalog)
//
// This package holds the shared error taxonomy only.
package protocol
