// Package tracklist owns the canonical artist → songs database and the
// canonicalizer that folds extracted spellings onto it.
//
// A Database preserves insertion order for both artists and songs; nothing
// is ever alphabetized. Keys are compared case-sensitively for identity but
// resolved by similarity for lookup, so "bon lver" canonicalizes to the
// stored "Bon Iver" key.
//
// Persistence sits behind the Store interface. SQLiteStore is the primary
// backend, JSONStore writes a locked JSON document, and FallbackStore pairs
// the two so a failing primary never blocks a scan. Catalog serializes
// admin edits, persists each one, and hands scans an immutable Snapshot.
package tracklist
