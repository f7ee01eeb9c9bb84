package client

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"log"
	"mime/multipart"
	"os"
	"strings"

	_ "image/jpeg"

	"github.com/otiai10/gosseract/v2"
	xdraw "golang.org/x/image/draw"
)

// TesseractClient runs Tesseract OCR over receipt photos. Receipts are
// Persian with Latin digits mixed in, so the default language set is
// "fas+eng".
type TesseractClient struct {
	dataPath  string
	languages []string
}

func NewTesseractClient(dataPath, languages string) *TesseractClient {
	return &TesseractClient{
		dataPath:  dataPath,
		languages: strings.Split(languages, "+"),
	}
}

// ExtractTextFromFile runs OCR over an uploaded image file.
func (tc *TesseractClient) ExtractTextFromFile(fileHeader *multipart.FileHeader) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	return tc.ExtractTextFromImage(img)
}

// ExtractTextFromImage preprocesses the image and runs OCR on it.
func (tc *TesseractClient) ExtractTextFromImage(img image.Image) (string, error) {
	prepared := preprocess(img)

	tempFile, err := saveTempPNG(prepared)
	if err != nil {
		return "", err
	}
	defer os.Remove(tempFile)

	text, err := tc.extractText(tempFile)
	if err != nil {
		return "", fmt.Errorf("OCR extraction failed: %w", err)
	}
	return text, nil
}

// ExtractTextAndQuality additionally reports the mean word confidence,
// used to warn about barely readable photos.
func (tc *TesseractClient) ExtractTextAndQuality(img image.Image) (string, float64, error) {
	prepared := preprocess(img)

	tempFile, err := saveTempPNG(prepared)
	if err != nil {
		return "", 0, err
	}
	defer os.Remove(tempFile)

	client := gosseract.NewClient()
	defer client.Close()

	if err := tc.configure(client, tempFile); err != nil {
		return "", 0, err
	}

	text, err := client.Text()
	if err != nil {
		return "", 0, fmt.Errorf("failed to extract text: %w", err)
	}

	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return text, 0, nil
	}

	var totalConf float64
	for _, box := range boxes {
		totalConf += box.Confidence
	}
	avgConf := 0.0
	if len(boxes) > 0 {
		avgConf = totalConf / float64(len(boxes))
	}
	return text, avgConf, nil
}

func (tc *TesseractClient) extractText(filePath string) (string, error) {
	client := gosseract.NewClient()
	defer client.Close()

	if err := tc.configure(client, filePath); err != nil {
		return "", err
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("failed to extract text: %w", err)
	}
	return text, nil
}

func (tc *TesseractClient) configure(client *gosseract.Client, filePath string) error {
	if tc.dataPath != "" {
		client.SetTessdataPrefix(tc.dataPath)
	}

	if err := client.SetLanguage(tc.languages...); err != nil {
		return fmt.Errorf("failed to set language: %w", err)
	}

	// PSM 6: assume a single uniform block of text, works best on
	// receipt layouts.
	if err := client.SetPageSegMode(gosseract.PSM_SINGLE_BLOCK); err != nil {
		return fmt.Errorf("failed to set page segmentation mode: %w", err)
	}

	if err := client.SetImage(filePath); err != nil {
		return fmt.Errorf("failed to set image: %w", err)
	}
	return nil
}

// Close performs cleanup
func (tc *TesseractClient) Close() {
	log.Println("Tesseract client closed")
}

// preprocess prepares a receipt photo for OCR: grayscale, 2x upscale
// and a linear contrast stretch. Phone photos of receipts are small
// and washed out, Tesseract does noticeably better after this.
func preprocess(src image.Image) *image.Gray {
	bounds := src.Bounds()

	gray := image.NewGray(bounds)
	draw.Draw(gray, bounds, src, bounds.Min, draw.Src)

	scaled := image.NewGray(image.Rect(0, 0, bounds.Dx()*2, bounds.Dy()*2))
	xdraw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), gray, bounds, xdraw.Src, nil)

	return autocontrast(scaled)
}

// autocontrast stretches the luminance histogram to the full range.
func autocontrast(img *image.Gray) *image.Gray {
	lo, hi := uint8(255), uint8(0)
	for _, px := range img.Pix {
		if px < lo {
			lo = px
		}
		if px > hi {
			hi = px
		}
	}
	if hi <= lo {
		return img
	}

	scale := 255.0 / float64(hi-lo)
	for i, px := range img.Pix {
		img.Pix[i] = uint8(float64(px-lo)*scale + 0.5)
	}
	return img
}

func saveTempPNG(img image.Image) (string, error) {
	tempFile, err := os.CreateTemp("", "ocr-*.png")
	if err != nil {
		return "", fmt.Errorf("failed to create temp image file: %w", err)
	}
	defer tempFile.Close()

	if err := png.Encode(tempFile, img); err != nil {
		os.Remove(tempFile.Name())
		return "", fmt.Errorf("failed to encode image to PNG: %w", err)
	}
	return tempFile.Name(), nil
}
