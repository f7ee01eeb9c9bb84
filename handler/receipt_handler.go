package handler

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bEhNaM-aLFa/AI-Finance-Bot/dto"
	"github.com/bEhNaM-aLFa/AI-Finance-Bot/i18n"
	"github.com/bEhNaM-aLFa/AI-Finance-Bot/service"
)

// ReceiptHandler handles receipt image and PDF uploads
type ReceiptHandler struct {
	receiptService *service.ReceiptService
	financeService *service.FinanceService
	defaultLang    string
}

func NewReceiptHandler(
	receiptService *service.ReceiptService,
	financeService *service.FinanceService,
	defaultLang string,
) *ReceiptHandler {
	return &ReceiptHandler{
		receiptService: receiptService,
		financeService: financeService,
		defaultLang:    defaultLang,
	}
}

// Extract handles the POST /receipt/extract endpoint
func (h *ReceiptHandler) Extract(c *gin.Context) {
	log.Println("Received receipt extraction request")

	lang := i18n.Pick(c.PostForm("lang"), h.defaultLang)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "A receipt file is required", err)
		return
	}

	records, err := h.receiptService.ExtractRecords(fileHeader)
	if err != nil {
		h.sendError(c, http.StatusInternalServerError, i18n.T("error_photo", lang), err)
		return
	}

	// Nothing recognizable on the receipt. The user should retry with
	// a clearer picture, this is not a processing error.
	if len(records) == 0 {
		c.JSON(http.StatusOK, dto.ExtractResponse{
			Found:       false,
			Message:     i18n.T("no_transactions_from_image", lang),
			ProcessedAt: time.Now().Format(time.RFC3339),
		})
		return
	}

	records = h.financeService.Categorize(records)
	summary := h.financeService.Summarize(records)

	log.Printf("Extracted %d records from receipt", len(records))
	c.JSON(http.StatusOK, dto.ExtractResponse{
		Found:       true,
		Records:     records,
		Summary:     &summary,
		SummaryText: i18n.FormatSummary(summary, lang, i18n.SourceImage),
		ProcessedAt: time.Now().Format(time.RFC3339),
	})
}

// sendError sends a structured error response
func (h *ReceiptHandler) sendError(c *gin.Context, statusCode int, message string, err error) {
	if err != nil {
		log.Printf("Error: %s - %v", message, err)
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:   "RECEIPT_EXTRACTION_FAILED",
		Message: message,
		Code:    statusCode,
	})
}
