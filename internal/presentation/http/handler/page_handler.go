package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xyspace-git/GeekYard-RAPP/internal/application/service"
	"github.com/xyspace-git/GeekYard-RAPP/internal/presentation/http/dto/request"
	"github.com/xyspace-git/GeekYard-RAPP/pkg/apperror"
)

// PageHandler serves the HTML pages. Templates only render the receipt
// data they are handed; all computation happens in the service layer.
type PageHandler struct {
	receiptService *service.ReceiptService
}

// NewPageHandler creates a new page handler
func NewPageHandler(receiptService *service.ReceiptService) *PageHandler {
	return &PageHandler{receiptService: receiptService}
}

// Home renders the main menu page
func (h *PageHandler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", nil)
}

// New renders the blank receipt form
func (h *PageHandler) New(c *gin.Context) {
	c.HTML(http.StatusOK, "receipt_form.html", nil)
}

// List renders all saved receipts, with optional search
func (h *PageHandler) List(c *gin.Context) {
	query := c.Query("query")
	receipts, err := h.receiptService.List(query)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Message": err.Error()})
		return
	}
	c.HTML(http.StatusOK, "receipt_list.html", gin.H{
		"Receipts": receipts,
		"Query":    query,
	})
}

// View renders a single receipt
func (h *PageHandler) View(c *gin.Context) {
	receipt, err := h.receiptService.Get(c.Param("number"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.HTML(http.StatusOK, "receipt.html", gin.H{"Receipt": receipt})
}

// Create processes the submitted form, saves the receipt and redirects to
// its view page
func (h *PageHandler) Create(c *gin.Context) {
	var req request.ReceiptForm
	if err := c.ShouldBind(&req); err != nil {
		c.HTML(http.StatusBadRequest, "error.html", gin.H{"Message": "Invalid form submission"})
		return
	}

	receipt, err := h.receiptService.Create(toReceiptInput(&req))
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/receipts/"+receipt.ReceiptNo)
}

// Edit renders the edit form pre-filled with the stored receipt
func (h *PageHandler) Edit(c *gin.Context) {
	receipt, err := h.receiptService.Get(c.Param("number"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.HTML(http.StatusOK, "edit_receipt.html", gin.H{"Receipt": receipt})
}

// Update processes the edit form and redirects to the receipt list
func (h *PageHandler) Update(c *gin.Context) {
	var req request.ReceiptForm
	if err := c.ShouldBind(&req); err != nil {
		c.HTML(http.StatusBadRequest, "error.html", gin.H{"Message": "Invalid form submission"})
		return
	}

	if _, err := h.receiptService.Update(c.Param("number"), toReceiptInput(&req)); err != nil {
		h.renderError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/receipts")
}

// Delete removes a receipt and redirects to the receipt list
func (h *PageHandler) Delete(c *gin.Context) {
	if err := h.receiptService.Delete(c.Param("number")); err != nil {
		h.renderError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/receipts")
}

func (h *PageHandler) renderError(c *gin.Context, err error) {
	appErr := apperror.GetAppError(err)
	if appErr.Code == http.StatusNotFound {
		c.HTML(http.StatusNotFound, "not_found.html", nil)
		return
	}
	c.HTML(appErr.Code, "error.html", gin.H{"Message": appErr.Message})
}
