package client

import (
	"fmt"
	"image"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
)

// QRClient decodes the QR code many Iranian bank receipts print next
// to the reference number. The decoded payload is plain text (tracking
// code, amount, date) and is fed through the same parser as the OCR
// output.
type QRClient struct{}

func NewQRClient() *QRClient {
	return &QRClient{}
}

// DecodeText returns the text payload of the first QR code found in
// the image.
func (qc *QRClient) DecodeText(img image.Image) (string, error) {
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", fmt.Errorf("failed to create binary bitmap: %w", err)
	}

	result, err := qrcode.NewQRCodeReader().Decode(bmp, nil)
	if err != nil {
		return "", fmt.Errorf("failed to decode QR code: %w", err)
	}

	return result.GetText(), nil
}
