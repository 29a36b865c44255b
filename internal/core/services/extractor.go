package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/caselight/casedex/internal/core/domain"
	"github.com/caselight/casedex/internal/core/ports/driven"
	"github.com/caselight/casedex/internal/core/ports/driving"
	"github.com/caselight/casedex/internal/logger"
)

// Ensure Extractor implements the interface.
var _ driving.TextExtractor = (*Extractor)(nil)

// ExtractorConfig bounds the poll loop.
type ExtractorConfig struct {
	// PollInterval is the spacing between result polls.
	PollInterval time.Duration

	// MaxPollAttempts caps how many polls may run before the extraction
	// is abandoned as timed out.
	MaxPollAttempts int
}

// DefaultExtractorConfig returns the poll bounds used when none are
// configured: five minutes of polling at two-second spacing.
func DefaultExtractorConfig() ExtractorConfig {
	return ExtractorConfig{
		PollInterval:    2 * time.Second,
		MaxPollAttempts: 150,
	}
}

// Extractor is the OCR extraction state machine. Given a blob name it
// obtains an access link, submits it to the OCR engine and polls until a
// terminal state. Every failure along the way - link issuance, submission,
// operation-id parsing, polling - surfaces as a *domain.OcrError, so
// callers have exactly one failure shape to branch on.
type Extractor struct {
	links  driving.AccessLinkIssuer
	engine driven.OcrEngine
	config ExtractorConfig
}

// NewExtractor creates an extractor. Zero config fields fall back to
// DefaultExtractorConfig values.
func NewExtractor(links driving.AccessLinkIssuer, engine driven.OcrEngine, config ExtractorConfig) *Extractor {
	defaults := DefaultExtractorConfig()
	if config.PollInterval <= 0 {
		config.PollInterval = defaults.PollInterval
	}
	if config.MaxPollAttempts <= 0 {
		config.MaxPollAttempts = defaults.MaxPollAttempts
	}
	return &Extractor{links: links, engine: engine, config: config}
}

// Extract runs the full state machine for one blob:
// submitted -> {notStarted, running} -> {succeeded, failed}.
func (e *Extractor) Extract(ctx context.Context, blobName string) (*domain.AnalyzeResult, error) {
	url, err := e.links.GenerateLink(ctx, blobName)
	if err != nil {
		return nil, domain.NewOcrError(domain.OcrStageLink, err)
	}

	location, err := e.engine.SubmitRead(ctx, url)
	if err != nil {
		return nil, domain.NewOcrError(domain.OcrStageSubmit, err)
	}

	operationID, err := ParseOperationID(location)
	if err != nil {
		return nil, domain.NewOcrError(domain.OcrStageSubmit, err)
	}

	logger.Debug("Submitted read for %s, operation %s", blobName, operationID)
	return e.poll(ctx, operationID)
}

// poll waits for a terminal status. A rate limiter with burst 1 paces the
// calls: the first poll runs immediately, subsequent polls wait out the
// configured interval.
func (e *Extractor) poll(ctx context.Context, operationID string) (*domain.AnalyzeResult, error) {
	limiter := rate.NewLimiter(rate.Every(e.config.PollInterval), 1)

	for attempt := 1; attempt <= e.config.MaxPollAttempts; attempt++ {
		if err := limiter.Wait(ctx); err != nil {
			return nil, domain.NewOcrError(domain.OcrStagePoll, err)
		}

		result, err := e.engine.GetReadResult(ctx, operationID)
		if err != nil {
			return nil, domain.NewOcrError(domain.OcrStagePoll, err)
		}

		logger.Debug("Read %s poll %d: %s", operationID, attempt, result.Status)

		switch result.Status {
		case domain.OperationSucceeded:
			return result.AnalyzeResult, nil
		case domain.OperationNotStarted, domain.OperationRunning:
			continue
		default:
			return nil, &domain.OcrError{
				Stage:   domain.OcrStageStatus,
				Message: fmt.Sprintf("read operation %s ended with status %q", operationID, result.Status),
			}
		}
	}

	return nil, &domain.OcrError{
		Stage:   domain.OcrStageTimeout,
		Message: fmt.Sprintf("operation %s: no terminal status after %d polls", operationID, e.config.MaxPollAttempts),
	}
}

// ParseOperationID extracts the operation id from an Operation-Location
// URL. The id is the final path segment; the format is validated rather
// than assumed, so a malformed location fails fast instead of yielding a
// garbage id.
func ParseOperationID(location string) (string, error) {
	trimmed := strings.TrimSuffix(strings.TrimSpace(location), "/")
	idx := strings.LastIndex(trimmed, "/")
	if idx < 0 || idx == len(trimmed)-1 {
		return "", fmt.Errorf("%w: %q", domain.ErrMalformedOperationLocation, location)
	}
	return trimmed[idx+1:], nil
}
