package domain

// OperationStatus is the reported state of an asynchronous OCR read job.
type OperationStatus string

const (
	// OperationNotStarted means the job is queued but not yet picked up.
	OperationNotStarted OperationStatus = "notStarted"

	// OperationRunning means the job is in progress.
	OperationRunning OperationStatus = "running"

	// OperationSucceeded means recognition completed and results are available.
	OperationSucceeded OperationStatus = "succeeded"

	// OperationFailed means the engine reported a permanent failure.
	OperationFailed OperationStatus = "failed"
)

// Terminal reports whether further polling can no longer change the status.
func (s OperationStatus) Terminal() bool {
	return s != OperationNotStarted && s != OperationRunning
}

// ReadResult is one poll response from the OCR engine.
type ReadResult struct {
	// Status is the job state at poll time.
	Status OperationStatus

	// AnalyzeResult holds the recognition payload once Status is succeeded.
	AnalyzeResult *AnalyzeResult
}

// AnalyzeResult is the full recognised-text payload for one document.
// It is owned by the OCR engine; the pipeline only reads it.
type AnalyzeResult struct {
	// Pages in document order.
	Pages []Page
}

// Page is one page of OCR output with its lines in reading order.
type Page struct {
	// Number is the 1-based page number.
	Number int

	// Height and Width are the page dimensions in Unit.
	Height float64
	Width  float64

	// Unit is the dimension unit (pixel, inch).
	Unit string

	// Lines in reading order.
	Lines []Line
}

// Line is one recognised line of text.
type Line struct {
	// Text is the recognised content.
	Text string

	// Language is the detected language code, if any.
	Language string

	// BoundingBox is the polygon enclosing the line, as alternating
	// x,y coordinates.
	BoundingBox []float64

	// Words is the word-level detail.
	Words []Word

	// Appearance describes the recognised style (handwriting, print).
	Appearance string
}

// Word is word-level recognition detail within a line.
type Word struct {
	// Text is the recognised word.
	Text string

	// BoundingBox is the enclosing polygon, as alternating x,y coordinates.
	BoundingBox []float64

	// Confidence is the recognition confidence in [0,1].
	Confidence float64
}
