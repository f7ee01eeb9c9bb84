package handler

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bEhNaM-aLFa/AI-Finance-Bot/dto"
	"github.com/bEhNaM-aLFa/AI-Finance-Bot/i18n"
	"github.com/bEhNaM-aLFa/AI-Finance-Bot/service"
	"github.com/bEhNaM-aLFa/AI-Finance-Bot/utils"
)

// TransactionHandler handles free-form transaction texts
type TransactionHandler struct {
	financeService *service.FinanceService
	defaultLang    string
}

func NewTransactionHandler(financeService *service.FinanceService, defaultLang string) *TransactionHandler {
	return &TransactionHandler{
		financeService: financeService,
		defaultLang:    defaultLang,
	}
}

// ParseText handles the POST /transaction/text endpoint
func (h *TransactionHandler) ParseText(c *gin.Context) {
	var request dto.TextTransactionRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.sendError(c, http.StatusBadRequest, "text is required", err)
		return
	}

	lang := i18n.Pick(request.Lang, h.defaultLang)

	record, ok := utils.ParseTextTransaction(request.Text, time.Now())
	if !ok {
		c.JSON(http.StatusOK, dto.ExtractResponse{
			Found:       false,
			Message:     i18n.T("text_parse_failed", lang),
			ProcessedAt: time.Now().Format(time.RFC3339),
		})
		return
	}

	records := []dto.TransactionRecord{record}
	summary := h.financeService.Summarize(records)

	c.JSON(http.StatusOK, dto.ExtractResponse{
		Found:       true,
		Records:     records,
		Summary:     &summary,
		SummaryText: i18n.FormatSummary(summary, lang, i18n.SourceText),
		ProcessedAt: time.Now().Format(time.RFC3339),
	})
}

// sendError sends a structured error response
func (h *TransactionHandler) sendError(c *gin.Context, statusCode int, message string, err error) {
	if err != nil {
		log.Printf("Error: %s - %v", message, err)
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:   "TEXT_PARSE_FAILED",
		Message: message,
		Code:    statusCode,
	})
}
