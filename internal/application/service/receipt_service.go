package service

import (
	"fmt"
	"sort"
	"time"

	"github.com/xyspace-git/GeekYard-RAPP/internal/config"
	"github.com/xyspace-git/GeekYard-RAPP/internal/domain/entity"
	"github.com/xyspace-git/GeekYard-RAPP/internal/domain/repository"
	"github.com/xyspace-git/GeekYard-RAPP/pkg/apperror"
)

// receiptDateFormat renders dates like "07 August, 2026".
const receiptDateFormat = "02 January, 2006"

// ReceiptService handles receipt-related operations
type ReceiptService struct {
	receiptRepo  repository.ReceiptRepository
	sequenceRepo repository.SequenceRepository
	issuer       config.IssuerConfig
	now          func() time.Time
}

// NewReceiptService creates a new receipt service
func NewReceiptService(receiptRepo repository.ReceiptRepository, sequenceRepo repository.SequenceRepository, issuer config.IssuerConfig) *ReceiptService {
	return &ReceiptService{
		receiptRepo:  receiptRepo,
		sequenceRepo: sequenceRepo,
		issuer:       issuer,
		now:          time.Now,
	}
}

// Create processes the submitted form, assembles a new receipt under the
// next sequential number and persists it. The counter is advanced only
// after the store append succeeds; the two writes are not atomic together,
// which is accepted under the single-writer assumption. Numbers are never
// reused, even after a delete.
func (s *ReceiptService) Create(in *ReceiptInput) (*entity.Receipt, error) {
	n := s.sequenceRepo.Next()
	payload := ProcessForm(in)

	receipt := &entity.Receipt{
		ReceiptNo: fmt.Sprintf("%06d", n),
		Date:      s.now().Format(receiptDateFormat),
		FromName:  s.issuer.Name,
		FromExtra: s.issuer.Extra,
		FromEmail: s.issuer.Email,
		Currency:  s.issuer.Currency,
	}
	payload.Apply(receipt)

	if err := s.receiptRepo.Create(receipt); err != nil {
		return nil, err
	}
	if err := s.sequenceRepo.Set(n + 1); err != nil {
		return nil, err
	}
	return receipt, nil
}

// Get retrieves a receipt by number
func (s *ReceiptService) Get(receiptNo string) (*entity.Receipt, error) {
	receipt, err := s.receiptRepo.FindByNumber(receiptNo)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, apperror.NewNotFoundError("Receipt")
	}
	return receipt, nil
}

// List returns receipts matching the optional query, most recent first.
// Receipt numbers are zero-padded to a fixed width, so the lexicographic
// descending sort is equivalent to numeric descending.
func (s *ReceiptService) List(query string) ([]entity.Receipt, error) {
	receipts, err := s.receiptRepo.Search(query)
	if err != nil {
		return nil, err
	}
	sort.Slice(receipts, func(i, j int) bool {
		return receipts[i].ReceiptNo > receipts[j].ReceiptNo
	})
	return receipts, nil
}

// Update reprocesses the submitted form and merges the result onto the
// stored receipt. The receipt number and creation date are never part of
// the payload and survive every update.
func (s *ReceiptService) Update(receiptNo string, in *ReceiptInput) (*entity.Receipt, error) {
	payload := ProcessForm(in)
	return s.receiptRepo.Update(receiptNo, payload)
}

// Delete removes a receipt by number
func (s *ReceiptService) Delete(receiptNo string) error {
	return s.receiptRepo.Delete(receiptNo)
}
