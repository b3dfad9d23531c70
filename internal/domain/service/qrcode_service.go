package service

import (
	"github.com/google/uuid"
)

// QRCodeService renders QR codes shown on order receipts
type QRCodeService interface {
	// GenerateOrderQR returns a PNG encoding the order reference
	GenerateOrderQR(orderID uuid.UUID) ([]byte, error)
}
