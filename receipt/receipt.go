package receipt

import (
	"context"

	"finaura/api/models"
)

// Scanner turns a receipt image into a structured record.
type Scanner interface {
	Scan(ctx context.Context, image []byte, filename string) (*models.ReceiptRecord, error)
}

// Stub ignores the image and always reports the same pizza receipt.
type Stub struct{}

func (Stub) Scan(_ context.Context, _ []byte, _ string) (*models.ReceiptRecord, error) {
	return &models.ReceiptRecord{
		Merchant:        "Domino's Pizza",
		Date:            "2025-12-25",
		Total:           450.00,
		Items:           []string{"Farmhouse Pizza", "Coke Zero"},
		Category:        "Food",
		DetectedEmotion: "Hungry",
	}, nil
}
