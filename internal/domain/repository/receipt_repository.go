package repository

import (
	"github.com/xyspace-git/GeekYard-RAPP/internal/domain/entity"
)

// ReceiptRepository defines the interface for receipt data operations
type ReceiptRepository interface {
	// LoadAll returns the full ordered collection. An absent or corrupt
	// backing file yields an empty collection, not an error.
	LoadAll() ([]entity.Receipt, error)
	// SaveAll rewrites the full collection, overwriting prior content.
	SaveAll(receipts []entity.Receipt) error
	// FindByNumber returns the receipt with the given number, or nil when
	// no receipt matches.
	FindByNumber(receiptNo string) (*entity.Receipt, error)
	// Search filters by case-insensitive substring match on the customer
	// name or exact substring match on the receipt number, preserving
	// the stored order.
	Search(query string) ([]entity.Receipt, error)
	Create(receipt *entity.Receipt) error
	Update(receiptNo string, payload *entity.ReceiptPayload) (*entity.Receipt, error)
	Delete(receiptNo string) error
}

// SequenceRepository defines the interface for the receipt number counter
type SequenceRepository interface {
	// Next returns the persisted counter value, or 1 when the backing
	// file is absent or unparseable.
	Next() int
	// Set persists the counter value, overwriting prior content.
	Set(n int) error
}
