/*
Package guid allocates globally unique asset identifiers.

An ID is the pair of the creator address and a creation number. Creation
numbers are handed out by an Authority from per-creator counters that only
ever grow, so no two Create calls can return equal IDs for the lifetime of
the backing store.
*/
package guid
