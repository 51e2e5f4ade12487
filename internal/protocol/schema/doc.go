// Package schema composes named field kinds into an immutable message layout.
//
// A schema is defined once. Definition validates every kind, rejects empty and
// duplicate names, and computes the offset table and total length. Lookups
// never reorder fields: declaration order is the wire order.
//
// Typed access goes through Key values resolved with Lookup when the schema
// is declared, so an unknown name or a wrong Go type fails at that point
// rather than on every access.
package schema
