package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"

	"wokane-be/internal/repository"
	"wokane-be/internal/service"
)

type QRCodeController struct {
	expenseService service.ExpenseService
	baseURL        string
}

func NewQRCodeController(expenseService service.ExpenseService, baseURL string) *QRCodeController {
	return &QRCodeController{
		expenseService: expenseService,
		baseURL:        baseURL,
	}
}

// GenerateQRCode handles GET /expenses/:id/qrcode - generates a QR code
// pointing at the expense's stored receipt so it can be pulled up on another
// device.
func (qc *QRCodeController) GenerateQRCode(c *gin.Context) {
	expense, err := qc.expenseService.FindByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Expense not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to find expense",
		})
		return
	}

	if expense.ReceiptImage == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Expense has no receipt",
		})
		return
	}

	receiptURL := qc.baseURL + *expense.ReceiptImage

	// 256x256 pixels, medium error recovery
	qrCode, err := qrcode.New(receiptURL, qrcode.Medium)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate QR code",
		})
		return
	}

	pngData, err := qrCode.PNG(256)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate QR code image",
		})
		return
	}

	c.Header("Content-Disposition", "inline; filename=qrcode.png")
	c.Data(http.StatusOK, "image/png", pngData)
}
