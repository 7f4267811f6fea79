package request

// ReceiptForm binds the receipt submission from either an HTML form post
// or a JSON body. The item fields are parallel arrays produced by the
// dynamic line-item rows on the form; their lengths are not guaranteed
// to agree.
type ReceiptForm struct {
	CustomerName  string `form:"customer_name" json:"customer_name"`
	CustomerEmail string `form:"customer_email" json:"customer_email"`
	PaymentMethod string `form:"payment_method" json:"payment_method"`
	Note          string `form:"custom_note" json:"note"`

	ItemTypes      []string `form:"item_type" json:"item_types"`
	ItemDescs      []string `form:"item_desc" json:"item_descs"`
	ItemHours      []string `form:"item_hours" json:"item_hours"`
	ItemQuantities []string `form:"item_quantity" json:"item_quantities"`
	ItemPrices     []string `form:"item_price" json:"item_prices"`
}
