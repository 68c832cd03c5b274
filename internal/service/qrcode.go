package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// QREncoder renders deep links as PNG QR codes so a desktop visitor can
// scan the handoff with their phone.
type QREncoder struct {
	Size int
}

func NewQREncoder() *QREncoder {
	return &QREncoder{Size: 256}
}

func (q *QREncoder) Generate(link string) ([]byte, error) {
	png, err := qrcode.Encode(link, qrcode.Medium, q.Size)
	if err != nil {
		return nil, fmt.Errorf("encode qr code: %w", err)
	}
	return png, nil
}
