// Package domain defines the core business entities for casedex.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - CaseDocument: A document as known to the case-management source
//   - BlobSearchResult: What blob storage currently holds under a name
//   - EvaluationResult: The reconciliation decision for one document
//   - AnalyzeResult: The recognised-text payload returned by OCR
//   - SearchLine: One indexed line of recognised text
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
