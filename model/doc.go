// Package model defines the content-tree snapshot types consumed by the
// navigation resolver.
//
// All types here are read-only snapshots supplied per render by the
// enclosing content system. The resolver never mutates them; it only builds
// derived, transient values (the flattened reading order and the optional
// previous/next references).
//
// # Identity
//
// Entities are identified by their Path. Equality anywhere in this module
// means path equality, never deep comparison of content.
//
// # Ordering
//
// Sections and pages carry a numeric Order attribute in [Attrs]. Sibling
// ordering is ascending by Order; ties keep the provider's original slice
// order (stable sort).
package model
