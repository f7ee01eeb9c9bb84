package handler

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bEhNaM-aLFa/AI-Finance-Bot/dto"
	"github.com/bEhNaM-aLFa/AI-Finance-Bot/i18n"
	"github.com/bEhNaM-aLFa/AI-Finance-Bot/service"
)

// FinanceHandler handles spreadsheet imports and direct summary requests
type FinanceHandler struct {
	importService  *service.ImportService
	financeService *service.FinanceService
	defaultLang    string
}

func NewFinanceHandler(
	importService *service.ImportService,
	financeService *service.FinanceService,
	defaultLang string,
) *FinanceHandler {
	return &FinanceHandler{
		importService:  importService,
		financeService: financeService,
		defaultLang:    defaultLang,
	}
}

// Import handles the POST /finance/import endpoint
func (h *FinanceHandler) Import(c *gin.Context) {
	log.Println("Received finance import request")

	lang := i18n.Pick(c.PostForm("lang"), h.defaultLang)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "A CSV or Excel file is required", err)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.sendError(c, http.StatusInternalServerError, i18n.T("error_file", lang), err)
		return
	}
	defer file.Close()

	records, err := h.importService.ReadTable(fileHeader.Filename, file, time.Now())
	if err != nil {
		// A broken input contract is the caller's fault, everything
		// else is ours.
		status := http.StatusInternalServerError
		if errors.Is(err, dto.ErrMissingColumn) || errors.Is(err, dto.ErrUnsupportedFile) {
			status = http.StatusBadRequest
		}
		h.sendError(c, status, err.Error(), err)
		return
	}

	records = h.financeService.Categorize(records)
	summary := h.financeService.Summarize(records)

	log.Printf("Imported %d records from %s", len(records), fileHeader.Filename)
	c.JSON(http.StatusOK, dto.SummaryResponse{
		Summary:     summary,
		SummaryText: i18n.FormatSummary(summary, lang, i18n.SourceExcel),
		RecordCount: len(records),
		ProcessedAt: time.Now().Format(time.RFC3339),
	})
}

// Summarize handles the POST /finance/summary endpoint
func (h *FinanceHandler) Summarize(c *gin.Context) {
	var request dto.SummaryRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.sendError(c, http.StatusBadRequest, "Invalid records payload", err)
		return
	}

	lang := i18n.Pick(request.Lang, h.defaultLang)

	records := h.financeService.Categorize(request.Records)
	summary := h.financeService.Summarize(records)

	c.JSON(http.StatusOK, dto.SummaryResponse{
		Summary:     summary,
		SummaryText: i18n.FormatSummary(summary, lang, ""),
		RecordCount: len(records),
		ProcessedAt: time.Now().Format(time.RFC3339),
	})
}

// sendError sends a structured error response
func (h *FinanceHandler) sendError(c *gin.Context, statusCode int, message string, err error) {
	if err != nil {
		log.Printf("Error: %s - %v", message, err)
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:   "FINANCE_PROCESSING_FAILED",
		Message: message,
		Code:    statusCode,
	})
}
