// Package readapi implements driven.OcrEngine against an asynchronous
// read/analyze HTTP service: submission returns an Operation-Location
// header, and results are polled as JSON until a terminal status.
package readapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/caselight/casedex/internal/core/domain"
	"github.com/caselight/casedex/internal/core/ports/driven"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// analyzePath and resultPath are the read API routes relative to the
// configured endpoint.
const (
	analyzePath = "/vision/v3.2/read/analyze"
	resultPath  = "/vision/v3.2/read/analyzeResults/"
)

// Ensure Client implements the interface.
var _ driven.OcrEngine = (*Client)(nil)

// Client calls the read API. It is safe for concurrent use.
type Client struct {
	endpoint   string
	key        string
	httpClient *http.Client
}

// NewClient creates a read API client for the given endpoint and
// subscription key.
func NewClient(endpoint, key string) *Client {
	return &Client{
		endpoint:   strings.TrimSuffix(endpoint, "/"),
		key:        key,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// readRequest is the submission body.
type readRequest struct {
	URLSource string `json:"urlSource"`
}

// readResultResponse is the poll response.
type readResultResponse struct {
	Status        string         `json:"status"`
	AnalyzeResult *analyzeResult `json:"analyzeResult"`
}

type analyzeResult struct {
	ReadResults []readResult `json:"readResults"`
}

type readResult struct {
	Page   int       `json:"page"`
	Height float64   `json:"height"`
	Width  float64   `json:"width"`
	Unit   string    `json:"unit"`
	Lines  []apiLine `json:"lines"`
}

type apiLine struct {
	Text        string     `json:"text"`
	Language    string     `json:"language"`
	BoundingBox []float64  `json:"boundingBox"`
	Words       []apiWord  `json:"words"`
	Appearance  appearance `json:"appearance"`
}

type apiWord struct {
	Text        string    `json:"text"`
	BoundingBox []float64 `json:"boundingBox"`
	Confidence  float64   `json:"confidence"`
}

type appearance struct {
	Style style `json:"style"`
}

type style struct {
	Name string `json:"name"`
}

// SubmitRead submits the document behind url for recognition and returns
// the Operation-Location header identifying the job.
func (c *Client) SubmitRead(ctx context.Context, url string) (string, error) {
	body, err := json.Marshal(readRequest{URLSource: url})
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+analyzePath, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Ocp-Apim-Subscription-Key", c.key)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("submit read: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusAccepted {
		return "", fmt.Errorf("submit read: unexpected status %s: %s", resp.Status, readBodyPrefix(resp.Body))
	}

	location := resp.Header.Get("Operation-Location")
	if location == "" {
		return "", errors.New("submit read: missing Operation-Location header")
	}
	return location, nil
}

// GetReadResult polls the read job identified by operationID.
func (c *Client) GetReadResult(ctx context.Context, operationID string) (*domain.ReadResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+resultPath+operationID, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Ocp-Apim-Subscription-Key", c.key)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get read result: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("get read result: unexpected status %s: %s", resp.Status, readBodyPrefix(resp.Body))
	}

	var payload readResultResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode read result: %w", err)
	}

	return toDomain(&payload), nil
}

// toDomain maps the wire shape onto the domain model.
func toDomain(payload *readResultResponse) *domain.ReadResult {
	result := &domain.ReadResult{Status: domain.OperationStatus(payload.Status)}
	if payload.AnalyzeResult == nil {
		return result
	}

	analysis := &domain.AnalyzeResult{Pages: make([]domain.Page, 0, len(payload.AnalyzeResult.ReadResults))}
	for _, rr := range payload.AnalyzeResult.ReadResults {
		page := domain.Page{
			Number: rr.Page,
			Height: rr.Height,
			Width:  rr.Width,
			Unit:   rr.Unit,
			Lines:  make([]domain.Line, 0, len(rr.Lines)),
		}
		for _, ln := range rr.Lines {
			line := domain.Line{
				Text:        ln.Text,
				Language:    ln.Language,
				BoundingBox: ln.BoundingBox,
				Appearance:  ln.Appearance.Style.Name,
				Words:       make([]domain.Word, 0, len(ln.Words)),
			}
			for _, w := range ln.Words {
				line.Words = append(line.Words, domain.Word{
					Text:        w.Text,
					BoundingBox: w.BoundingBox,
					Confidence:  w.Confidence,
				})
			}
			page.Lines = append(page.Lines, line)
		}
		analysis.Pages = append(analysis.Pages, page)
	}
	result.AnalyzeResult = analysis
	return result
}

// readBodyPrefix returns up to 512 bytes of a response body for error
// messages.
func readBodyPrefix(r io.Reader) string {
	data, _ := io.ReadAll(io.LimitReader(r, 512))
	return strings.TrimSpace(string(data))
}
