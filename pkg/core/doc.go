// Package core defines the shared language of the periodic system.
//
// This package contains:
//   - Domain entities (Element, Group, ElementRow)
//   - Well-known field names of the element dataset
//   - Typed errors shared by the query and export engines
//
// The Golden Rule: pkg/core imports ONLY stdlib.
// All other packages depend on core, not the reverse.
package core
