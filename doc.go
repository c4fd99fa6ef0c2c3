// Package urn provides parsing, validation, normalization and comparison of
// Uniform Resource Names (URNs) according to RFC 8141.
//
// # Overview
//
// A URN names a resource persistently and location-independently:
//
//	urn:example:weather?+res?=op=map#rivers
//	└┬┘ └──┬──┘ └──┬──┘└──────┬───────────┘
//	scheme NID    NSS       RQF trailer
//
// The [URN] type gives structured access to all components. The scheme and
// namespace identifier (NID) are case-insensitive on input and stored
// lowercase; the namespace specific string (NSS) keeps its case except for
// percent-encoded triplets, whose hex digits are normalized to uppercase. The
// optional [RQF] trailer carries the r-component ("?+"), q-component ("?=")
// and f-component ("#") of RFC 8141 Section 2.3.
//
// # Parsing and construction
//
//	u, err := urn.Parse("urn:ietf:rfc:2141")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	u.NID()          // "ietf"
//	u.Elements()     // ["rfc", "2141"]
//	u.AssignedName() // "urn:ietf:rfc:2141"
//
// [New] builds a URN from discrete components with the same validation;
// the scheme defaults to "urn" when empty. Construction is all-or-nothing:
// the first violated rule yields one of the package's sentinel errors
// (matchable with [errors.Is]) and no partial value.
//
// # Equivalence
//
// [URN.Equal] implements URN-equivalence (RFC 8141 Section 3.2): two URNs are
// equivalent when their assigned names match after normalization. The RQF
// trailer is ignored, percent-encoded triplets are compared without decoding
// and the NSS is otherwise case-sensitive, so "urn:example:a%2cz" equals
// "URN:EXAMPLE:a%2Cz" but neither equals "urn:example:a,z". [URN.Hash] is
// consistent with Equal.
//
// # Serialization
//
// URN implements [encoding.TextMarshaler] and [encoding.TextUnmarshaler]:
// a JSON string field decodes into a URN by parsing and encodes as the
// textual reconstruction.
//
// # Scope
//
// The package performs no URN resolution, applies no namespace-specific
// equivalence rules beyond the generic ones of RFC 8141 and does not check
// that a NID is registered with IANA.
//
// # Thread safety
//
// URN and RQF values are immutable after construction and safe for concurrent
// readers without synchronization.
package urn
