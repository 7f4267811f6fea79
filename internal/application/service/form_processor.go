package service

import (
	"strconv"
	"strings"

	"github.com/xyspace-git/GeekYard-RAPP/internal/domain/entity"
	"github.com/xyspace-git/GeekYard-RAPP/internal/domain/enum"
	"github.com/xyspace-git/GeekYard-RAPP/pkg/money"
)

// ReceiptInput carries the raw submitted receipt fields. The five item
// slices are parallel arrays in submission order; rows that fail to parse
// are dropped rather than failing the whole submission.
type ReceiptInput struct {
	CustomerName  string
	CustomerEmail string
	PaymentMethod string
	Note          string

	ItemTypes      []string
	ItemDescs      []string
	ItemHours      []string
	ItemQuantities []string
	ItemPrices     []string
}

// ProcessForm converts the raw input into a receipt payload with computed,
// formatted line items and a running total. It is a pure function: rows
// with unparseable numbers or missing required fields contribute nothing.
func ProcessForm(in *ReceiptInput) *entity.ReceiptPayload {
	payload := &entity.ReceiptPayload{
		CustomerName:  in.CustomerName,
		CustomerEmail: in.CustomerEmail,
		PaymentMethod: in.PaymentMethod,
		Note:          in.Note,
		LineItems:     []entity.LineItem{},
	}

	var total float64
	for i := range in.ItemDescs {
		item, amount, ok := parseLineItem(in, i)
		if !ok {
			continue
		}
		payload.LineItems = append(payload.LineItems, *item)
		total += amount
	}
	payload.Total = money.Format(total)
	return payload
}

// parseLineItem validates one row of the parallel arrays. A service row
// needs parseable hours, an item row a parseable quantity; both need a
// parseable price. Anything else drops the row.
func parseLineItem(in *ReceiptInput, i int) (*entity.LineItem, float64, bool) {
	price, err := strconv.ParseFloat(strings.TrimSpace(at(in.ItemPrices, i)), 64)
	if err != nil {
		return nil, 0, false
	}

	kind := enum.LineItemKind(at(in.ItemTypes, i))
	if !kind.IsValid() {
		return nil, 0, false
	}
	switch {
	case kind == enum.KindService && at(in.ItemHours, i) != "":
		hours, err := strconv.ParseFloat(strings.TrimSpace(at(in.ItemHours, i)), 64)
		if err != nil {
			return nil, 0, false
		}
		amount := hours * price
		return &entity.LineItem{
			Description: at(in.ItemDescs, i),
			Hours:       &hours,
			UnitValue:   hours,
			Price:       money.Format(price),
			Amount:      money.Format(amount),
		}, amount, true

	case kind == enum.KindItem && at(in.ItemQuantities, i) != "":
		quantity, err := strconv.Atoi(strings.TrimSpace(at(in.ItemQuantities, i)))
		if err != nil {
			return nil, 0, false
		}
		amount := float64(quantity) * price
		return &entity.LineItem{
			Description: at(in.ItemDescs, i),
			Quantity:    &quantity,
			UnitValue:   float64(quantity),
			Price:       money.Format(price),
			Amount:      money.Format(amount),
		}, amount, true
	}
	return nil, 0, false
}

// at indexes a parallel array that may be shorter than the description list
func at(values []string, i int) string {
	if i < len(values) {
		return values[i]
	}
	return ""
}
