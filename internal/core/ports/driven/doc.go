// Package driven defines interfaces for external capabilities the core
// depends on (blob storage, the OCR engine, the search index, the
// case-management source). These are the "driven" ports in hexagonal
// architecture terminology - the application drives them.
//
// Implementations live in internal/adapters/driven.
package driven
