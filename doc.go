// Package sulid implements SULID, a 128-bit lexicographically sortable
// unique identifier that combines the ULID text format with
// Snowflake-style worker identity.
//
// # Format
//
// A SULID is 128 bits, canonically rendered as a 26 character Crockford
// Base32 string (the ULID alphabet, via github.com/oklog/ulid/v2).
// Two field layouts exist, high bits first:
//
//	V1: | 48-bit timestamp | 70-bit random | 5-bit data center | 5-bit machine |
//	V2: | 48-bit timestamp | 70-bit random |       10-bit worker id           |
//
// The timestamp is milliseconds since the Unix epoch. V2's worker id
// occupies the same 10 low bits that V1 splits into data center and
// machine, so both families sort identically and every projection is
// defined on every value.
//
// # Ordering
//
// Byte-wise (and therefore text) comparison preserves chronological order,
// with ties broken by the random bits and then the identity suffix.
// Values built in the same millisecond by the same generator differ in
// their random field with overwhelming probability; uniqueness is
// probabilistic, not coordinated.
//
// # Masking vs. strict mode
//
// By default the parts constructors silently mask any field to its
// declared width. Builds with the sulid_debug tag instead panic on
// out-of-range parts. Generator construction validates identity fields in
// both modes.
package sulid
