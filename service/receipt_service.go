package service

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"log"
	"mime/multipart"
	"strings"

	_ "image/jpeg"
	_ "image/png"

	"github.com/bEhNaM-aLFa/AI-Finance-Bot/client"
	"github.com/bEhNaM-aLFa/AI-Finance-Bot/dto"
	"github.com/bEhNaM-aLFa/AI-Finance-Bot/utils"
)

// Below this mean word confidence the OCR result is logged as barely
// readable. Extraction still runs, the parser tolerates noise.
const lowConfidenceThreshold = 60.0

// A PDF with less embedded text than this is treated as a scan and
// pushed through image OCR instead.
const minPDFTextLength = 20

// ReceiptService turns uploaded receipt images and PDF statements into
// transaction records.
type ReceiptService struct {
	tesseractClient *client.TesseractClient
	qrClient        *client.QRClient
	pdfProcessor    PDFProcessor
}

func NewReceiptService(
	tesseractClient *client.TesseractClient,
	qrClient *client.QRClient,
	pdfProcessor PDFProcessor,
) *ReceiptService {
	return &ReceiptService{
		tesseractClient: tesseractClient,
		qrClient:        qrClient,
		pdfProcessor:    pdfProcessor,
	}
}

// ExtractRecords OCRs the upload and runs the two-pass receipt parser.
// An empty result means nothing recognizable was found; that is not an
// error, callers should ask the user for a clearer picture.
func (s *ReceiptService) ExtractRecords(fileHeader *multipart.FileHeader) ([]dto.TransactionRecord, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", fileHeader.Filename, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", fileHeader.Filename, err)
	}

	var text string
	if strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".pdf") {
		text, err = s.textFromPDF(data)
	} else {
		text, err = s.textFromImage(data)
	}
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	return utils.ParseReceiptText(text), nil
}

// textFromImage OCRs a receipt photo and appends the payload of any QR
// code on it. QR decoding is best effort.
func (s *ReceiptService) textFromImage(data []byte) (string, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	text, conf, err := s.tesseractClient.ExtractTextAndQuality(img)
	if err != nil {
		return "", fmt.Errorf("image OCR failed: %w", err)
	}
	if conf > 0 && conf < lowConfidenceThreshold {
		log.Printf("Low OCR confidence %.1f, receipt may be barely readable", conf)
	}

	if qrText, qrErr := s.qrClient.DecodeText(img); qrErr == nil && qrText != "" {
		text = text + "\n" + qrText
	}

	return text, nil
}

// textFromPDF prefers the embedded text layer and falls back to OCR
// over the page images when the PDF is a scan.
func (s *ReceiptService) textFromPDF(data []byte) (string, error) {
	text, err := s.pdfProcessor.ExtractText(data)
	if err != nil {
		log.Printf("PDF text extraction failed: %v", err)
	}
	if len(strings.TrimSpace(text)) >= minPDFTextLength {
		return text, nil
	}

	images, err := s.pdfProcessor.ExtractImages(data)
	if err != nil {
		return "", fmt.Errorf("failed to extract images from scanned PDF: %w", err)
	}

	var combined strings.Builder
	for _, img := range images {
		pageText, conf, ocrErr := s.tesseractClient.ExtractTextAndQuality(img)
		if ocrErr != nil {
			log.Printf("OCR failed for a PDF page: %v", ocrErr)
			continue
		}
		if conf > 0 && conf < lowConfidenceThreshold {
			log.Printf("Low OCR confidence %.1f on a PDF page", conf)
		}
		combined.WriteString(pageText)
		combined.WriteString("\n")
	}

	return combined.String(), nil
}
