// SPDX-License-Identifier: MPL-2.0

// Package directory implements the staff directory: an immutable mapping from
// a staff member's name to their favourite astronomical object and office
// number.
//
// The directory is built once, either from the embedded roster or from a
// roster file, and is read-only afterwards. Name matching ignores letter case
// and redundant whitespace; see Lookup for the exact policy.
package directory
