package dto

import "errors"

// TextTransactionRequest carries a single free-form transaction text,
// e.g. "خرید نان 45,000 ریال 1402/06/15".
type TextTransactionRequest struct {
	Text string `json:"text" binding:"required"`
	Lang string `json:"lang,omitempty"`
}

// Validate performs basic validation on the request
func (r *TextTransactionRequest) Validate() error {
	if r.Text == "" {
		return errors.New("text is required")
	}
	return nil
}

// SummaryRequest carries already-built records to be summarized.
type SummaryRequest struct {
	Records []TransactionRecord `json:"records"`
	Lang    string              `json:"lang,omitempty"`
}
