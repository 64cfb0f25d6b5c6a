// Package xwrap learns page wrappers from labeled examples.
// Given a few pages and the literal values to extract from each, it finds
// the XPath expression per field that recovers those values most reliably
// and most precisely, and applies learned wrappers to new pages of the same
// template.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, htmlquery/, rod/, sqlite/).
package xwrap
