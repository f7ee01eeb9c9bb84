package config

import "os"

type Config struct {
	ServerPort        string
	TesseractDataPath string
	OCRLanguages      string
	DefaultLang       string
	MaxFileSize       int64
}

func LoadConfig() *Config {
	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080"
	}

	tesseractDataPath := os.Getenv("TESSDATA_PREFIX")
	if tesseractDataPath == "" {
		tesseractDataPath = "/usr/share/tesseract-ocr/5/tessdata"
	}

	// Persian receipts with Latin digits mixed in.
	ocrLanguages := os.Getenv("OCR_LANGUAGES")
	if ocrLanguages == "" {
		ocrLanguages = "fas+eng"
	}

	defaultLang := os.Getenv("DEFAULT_LANG")
	if defaultLang == "" {
		defaultLang = "fa"
	}

	return &Config{
		ServerPort:        serverPort,
		TesseractDataPath: tesseractDataPath,
		OCRLanguages:      ocrLanguages,
		DefaultLang:       defaultLang,
		MaxFileSize:       10 * 1024 * 1024, // 10 MB
	}
}
