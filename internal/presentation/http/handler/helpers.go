package handler

import (
	"github.com/xyspace-git/GeekYard-RAPP/internal/application/service"
	"github.com/xyspace-git/GeekYard-RAPP/internal/presentation/http/dto/request"
)

// toReceiptInput maps the bound form/JSON fields onto the service input
func toReceiptInput(req *request.ReceiptForm) *service.ReceiptInput {
	return &service.ReceiptInput{
		CustomerName:   req.CustomerName,
		CustomerEmail:  req.CustomerEmail,
		PaymentMethod:  req.PaymentMethod,
		Note:           req.Note,
		ItemTypes:      req.ItemTypes,
		ItemDescs:      req.ItemDescs,
		ItemHours:      req.ItemHours,
		ItemQuantities: req.ItemQuantities,
		ItemPrices:     req.ItemPrices,
	}
}
