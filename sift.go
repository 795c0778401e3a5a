// Package sift provides best-effort extraction of structured business
// information (company name, description, founders, product details) from
// startup marketing websites, given only a domain name. It is a heuristic
// tool over unstructured third-party HTML: extraction degrades silently to
// absent fields for pages that don't match its assumed structural idioms.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, prose/, http/).
package sift
