package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/bEhNaM-aLFa/AI-Finance-Bot/client"
	"github.com/bEhNaM-aLFa/AI-Finance-Bot/config"
	"github.com/bEhNaM-aLFa/AI-Finance-Bot/handler"
	"github.com/bEhNaM-aLFa/AI-Finance-Bot/service"
)

func main() {
	// Initialize configuration
	cfg := config.LoadConfig()

	// Initialize OCR and QR clients
	tesseractClient := client.NewTesseractClient(cfg.TesseractDataPath, cfg.OCRLanguages)
	defer tesseractClient.Close()
	qrClient := client.NewQRClient()

	// Initialize PDF processor
	pdfProcessor := service.NewPDFProcessor()

	// Initialize service layer
	receiptService := service.NewReceiptService(tesseractClient, qrClient, pdfProcessor)
	importService := service.NewImportService()
	financeService := service.NewFinanceService()

	// Initialize handler layer
	receiptHandler := handler.NewReceiptHandler(receiptService, financeService, cfg.DefaultLang)
	transactionHandler := handler.NewTransactionHandler(financeService, cfg.DefaultLang)
	financeHandler := handler.NewFinanceHandler(importService, financeService, cfg.DefaultLang)

	// Setup Gin router
	router := gin.Default()

	// Configure max multipart memory
	router.MaxMultipartMemory = cfg.MaxFileSize

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "AI Finance Bot",
		})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		receipt := api.Group("/receipt")
		{
			receipt.POST("/extract", receiptHandler.Extract)
		}
		transaction := api.Group("/transaction")
		{
			transaction.POST("/text", transactionHandler.ParseText)
		}
		finance := api.Group("/finance")
		{
			finance.POST("/import", financeHandler.Import)
			finance.POST("/summary", financeHandler.Summarize)
		}
	}

	// Start server
	log.Printf("Starting AI Finance Bot service on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
