// Package model defines the core data structures used throughout ollamascan.
//
// This package contains the following main types:
//   - TagRecord: One model variant extracted from a catalog detail page
//   - ResultSet: The ordered collection of records produced by a search
//   - ModelRef: A parsed "model[:tag]" reference for manager operations
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. Multiple packages (catalog, manager, report) need to use these
// types, so centralizing them prevents import cycles.
//
// The models are designed to be serializable to JSON for report output.
package model
