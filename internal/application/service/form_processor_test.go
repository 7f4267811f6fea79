package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessFormServiceRow(t *testing.T) {
	in := &ReceiptInput{
		CustomerName:   "Alice Smith",
		CustomerEmail:  "alice@example.com",
		PaymentMethod:  "UPI",
		Note:           "thanks",
		ItemTypes:      []string{"service"},
		ItemDescs:      []string{"Network setup"},
		ItemHours:      []string{"2.5"},
		ItemQuantities: []string{""},
		ItemPrices:     []string{"1000"},
	}

	payload := ProcessForm(in)

	require.Len(t, payload.LineItems, 1)
	item := payload.LineItems[0]
	assert.Equal(t, "Network setup", item.Description)
	require.NotNil(t, item.Hours)
	assert.Equal(t, 2.5, *item.Hours)
	assert.Nil(t, item.Quantity)
	assert.Equal(t, 2.5, item.UnitValue)
	assert.Equal(t, "1,000.00", item.Price)
	assert.Equal(t, "2,500.00", item.Amount)
	assert.Equal(t, "2,500.00", payload.Total)
	assert.Equal(t, "Alice Smith", payload.CustomerName)
}

func TestProcessFormItemRow(t *testing.T) {
	in := &ReceiptInput{
		ItemTypes:      []string{"item"},
		ItemDescs:      []string{"Ethernet cable"},
		ItemHours:      []string{""},
		ItemQuantities: []string{"3"},
		ItemPrices:     []string{"250.50"},
	}

	payload := ProcessForm(in)

	require.Len(t, payload.LineItems, 1)
	item := payload.LineItems[0]
	require.NotNil(t, item.Quantity)
	assert.Equal(t, 3, *item.Quantity)
	assert.Nil(t, item.Hours)
	assert.Equal(t, 3.0, item.UnitValue)
	assert.Equal(t, "751.50", item.Amount)
	assert.Equal(t, "751.50", payload.Total)
}

func TestProcessFormDropsInvalidRows(t *testing.T) {
	tests := []struct {
		name string
		in   *ReceiptInput
	}{
		{
			name: "unparseable price",
			in: &ReceiptInput{
				ItemTypes:      []string{"service"},
				ItemDescs:      []string{"Consulting"},
				ItemHours:      []string{"2"},
				ItemQuantities: []string{""},
				ItemPrices:     []string{"abc"},
			},
		},
		{
			name: "service row with empty hours",
			in: &ReceiptInput{
				ItemTypes:      []string{"service"},
				ItemDescs:      []string{"Consulting"},
				ItemHours:      []string{""},
				ItemQuantities: []string{"2"},
				ItemPrices:     []string{"100"},
			},
		},
		{
			name: "item row with unparseable quantity",
			in: &ReceiptInput{
				ItemTypes:      []string{"item"},
				ItemDescs:      []string{"Cable"},
				ItemHours:      []string{""},
				ItemQuantities: []string{"two"},
				ItemPrices:     []string{"100"},
			},
		},
		{
			name: "unknown type",
			in: &ReceiptInput{
				ItemTypes:      []string{"subscription"},
				ItemDescs:      []string{"Hosting"},
				ItemHours:      []string{"1"},
				ItemQuantities: []string{"1"},
				ItemPrices:     []string{"100"},
			},
		},
		{
			name: "parallel arrays shorter than descriptions",
			in: &ReceiptInput{
				ItemTypes:  []string{"service"},
				ItemDescs:  []string{"First", "Orphan"},
				ItemHours:  []string{"1"},
				ItemPrices: []string{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := ProcessForm(tt.in)
			assert.Empty(t, payload.LineItems)
			assert.Equal(t, "0.00", payload.Total)
		})
	}
}

func TestProcessFormMixedRowsTotal(t *testing.T) {
	in := &ReceiptInput{
		ItemTypes:      []string{"service", "item", "service"},
		ItemDescs:      []string{"Setup", "Cable", "Bad row"},
		ItemHours:      []string{"2", "", "1"},
		ItemQuantities: []string{"", "4", ""},
		ItemPrices:     []string{"500", "100", "oops"},
	}

	payload := ProcessForm(in)

	// 2*500 + 4*100; the third row is dropped silently
	require.Len(t, payload.LineItems, 2)
	assert.Equal(t, "1,400.00", payload.Total)
	assert.Equal(t, "Setup", payload.LineItems[0].Description)
	assert.Equal(t, "Cable", payload.LineItems[1].Description)
}

func TestProcessFormEmptySubmission(t *testing.T) {
	payload := ProcessForm(&ReceiptInput{})

	assert.Empty(t, payload.LineItems)
	assert.Equal(t, "0.00", payload.Total)
}
