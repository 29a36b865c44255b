// Package services implements the driving port interfaces.
// Services contain the core business logic - reconciliation decisions,
// the OCR extraction state machine, search projection and indexing -
// and orchestrate calls to driven ports (adapters).
package services
