package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/xyspace-git/GeekYard-RAPP/internal/application/service"
	"github.com/xyspace-git/GeekYard-RAPP/internal/presentation/http/dto/request"
	"github.com/xyspace-git/GeekYard-RAPP/internal/presentation/http/dto/response"
)

// ReceiptHandler handles receipt-related HTTP requests on the JSON API
type ReceiptHandler struct {
	receiptService *service.ReceiptService
}

// NewReceiptHandler creates a new receipt handler
func NewReceiptHandler(receiptService *service.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{receiptService: receiptService}
}

// List handles listing receipts with an optional search query
func (h *ReceiptHandler) List(c *gin.Context) {
	receipts, err := h.receiptService.List(c.Query("query"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Receipts retrieved successfully", receipts)
}

// Get handles getting a single receipt
func (h *ReceiptHandler) Get(c *gin.Context) {
	receipt, err := h.receiptService.Get(c.Param("number"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Receipt retrieved successfully", receipt)
}

// Create handles creating a receipt
func (h *ReceiptHandler) Create(c *gin.Context) {
	var req request.ReceiptForm
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	receipt, err := h.receiptService.Create(toReceiptInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Receipt created successfully", receipt)
}

// Update handles updating a receipt
func (h *ReceiptHandler) Update(c *gin.Context) {
	var req request.ReceiptForm
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	receipt, err := h.receiptService.Update(c.Param("number"), toReceiptInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Receipt updated successfully", receipt)
}

// Delete handles deleting a receipt
func (h *ReceiptHandler) Delete(c *gin.Context) {
	if err := h.receiptService.Delete(c.Param("number")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
