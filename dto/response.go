package dto

import "errors"

// Custom errors
var (
	// ErrMissingColumn marks an imported table that violates the input
	// contract (Date/Description/Amount/Type must all be present). This
	// is a hard failure, unlike an extraction that simply finds nothing.
	ErrMissingColumn = errors.New("missing required column")

	ErrUnsupportedFile = errors.New("unsupported file type")
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// ExtractResponse is returned by the receipt and text endpoints.
// Found is false when nothing could be extracted; the caller should
// show a "please send clearer input" message, not an error.
type ExtractResponse struct {
	Found        bool                `json:"found"`
	Records      []TransactionRecord `json:"records,omitempty"`
	Summary      *FinanceSummary     `json:"summary,omitempty"`
	SummaryText  string              `json:"summary_text,omitempty"`
	Message      string              `json:"message,omitempty"`
	ProcessedAt  string              `json:"processed_at"`
}

// SummaryResponse is returned by the import and summary endpoints.
type SummaryResponse struct {
	Summary     FinanceSummary `json:"summary"`
	SummaryText string         `json:"summary_text,omitempty"`
	RecordCount int            `json:"record_count"`
	ProcessedAt string         `json:"processed_at"`
}
