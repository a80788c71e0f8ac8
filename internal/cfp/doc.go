// Package cfp provides types for conference call-for-papers records.
//
// The cfp package defines the structured metadata extracted from a WikiCFP
// detail page, the flattened record persisted for relevant conferences, and
// the "N/A" sentinel used for fields the page does not carry.
package cfp
