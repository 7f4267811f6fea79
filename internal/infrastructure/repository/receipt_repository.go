package repository

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/xyspace-git/GeekYard-RAPP/internal/domain/entity"
	domainRepo "github.com/xyspace-git/GeekYard-RAPP/internal/domain/repository"
	"github.com/xyspace-git/GeekYard-RAPP/pkg/apperror"
)

type receiptRepository struct {
	path string
}

// NewReceiptRepository creates a receipt repository backed by a single
// JSON file. Every mutation rewrites the whole file; there is no locking,
// per the single-writer deployment assumption.
func NewReceiptRepository(path string) domainRepo.ReceiptRepository {
	return &receiptRepository{path: path}
}

func (r *receiptRepository) LoadAll() ([]entity.Receipt, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return []entity.Receipt{}, nil
	}

	var receipts []entity.Receipt
	if err := json.Unmarshal(data, &receipts); err != nil {
		// Corrupt file falls back to an empty collection
		return []entity.Receipt{}, nil
	}
	return receipts, nil
}

func (r *receiptRepository) SaveAll(receipts []entity.Receipt) error {
	data, err := json.MarshalIndent(receipts, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(r.path, data, 0644)
}

func (r *receiptRepository) FindByNumber(receiptNo string) (*entity.Receipt, error) {
	receipts, err := r.LoadAll()
	if err != nil {
		return nil, err
	}
	for i := range receipts {
		if receipts[i].ReceiptNo == receiptNo {
			return &receipts[i], nil
		}
	}
	return nil, nil
}

func (r *receiptRepository) Search(query string) ([]entity.Receipt, error) {
	receipts, err := r.LoadAll()
	if err != nil {
		return nil, err
	}
	if query == "" {
		return receipts, nil
	}

	lowered := strings.ToLower(query)
	matched := make([]entity.Receipt, 0, len(receipts))
	for _, receipt := range receipts {
		// Customer names match case-insensitively, receipt numbers
		// match on the exact substring.
		if strings.Contains(strings.ToLower(receipt.CustomerName), lowered) ||
			strings.Contains(receipt.ReceiptNo, query) {
			matched = append(matched, receipt)
		}
	}
	return matched, nil
}

func (r *receiptRepository) Create(receipt *entity.Receipt) error {
	receipts, err := r.LoadAll()
	if err != nil {
		return err
	}
	receipts = append(receipts, *receipt)
	return r.SaveAll(receipts)
}

func (r *receiptRepository) Update(receiptNo string, payload *entity.ReceiptPayload) (*entity.Receipt, error) {
	receipts, err := r.LoadAll()
	if err != nil {
		return nil, err
	}

	for i := range receipts {
		if receipts[i].ReceiptNo != receiptNo {
			continue
		}
		payload.Apply(&receipts[i])
		if err := r.SaveAll(receipts); err != nil {
			return nil, err
		}
		return &receipts[i], nil
	}
	return nil, apperror.NewNotFoundError("Receipt")
}

func (r *receiptRepository) Delete(receiptNo string) error {
	receipts, err := r.LoadAll()
	if err != nil {
		return err
	}

	kept := make([]entity.Receipt, 0, len(receipts))
	for _, receipt := range receipts {
		if receipt.ReceiptNo != receiptNo {
			kept = append(kept, receipt)
		}
	}
	if len(kept) == len(receipts) {
		return apperror.NewNotFoundError("Receipt")
	}
	return r.SaveAll(kept)
}
