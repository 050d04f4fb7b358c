// Package qrcode renders product identity payloads as QR images.
package qrcode

import (
	"encoding/base64"
	"encoding/json"

	qr "github.com/skip2/go-qrcode"
)

const imageSize = 300

// Payload is the product identity encoded into the QR image.
type Payload struct {
	ID       string  `json:"id"`
	SKU      string  `json:"sku"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	URL      string  `json:"url"`
}

// EncodePNG renders the payload as a PNG byte slice.
func EncodePNG(payload Payload) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return qr.Encode(string(data), qr.Medium, imageSize)
}

// EncodeDataURL renders the payload as a base64 PNG data URL, the format the
// frontend embeds directly in an <img> tag.
func EncodeDataURL(payload Payload) (string, error) {
	png, err := EncodePNG(payload)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
