// Package tree provides an in-memory content-tree store implementing the
// resolver's SectionLoader.
//
// The store holds the read-only per-render snapshot the content system
// hands to the build pipeline. Sections are keyed by normalized path;
// looking up a path that was never added returns nil, which the resolver
// treats as an absent reference.
//
// A snapshot can be built programmatically with [New] and [Store.Add], or
// decoded from its JSON serialization with [Load].
package tree
