package utils

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// ReservationQRContent is the text encoded in a reservation ticket.
func ReservationQRContent(reservationId, eventSlug, seatNumber string) string {
	return fmt.Sprintf("reservation:%s;event:%s;seat:%s", reservationId, eventSlug, seatNumber)
}

// GenerateQRCode returns a PNG of content, size pixels square.
func GenerateQRCode(content string, size int) ([]byte, error) {
	return qrcode.Encode(content, qrcode.Medium, size)
}
