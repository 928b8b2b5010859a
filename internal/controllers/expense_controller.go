package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"wokane-be/internal/models"
	"wokane-be/internal/repository"
	"wokane-be/internal/service"
	"wokane-be/internal/uploads"
)

type ExpenseController struct {
	expenseService service.ExpenseService
	receipts       *uploads.Store
}

func NewExpenseController(expenseService service.ExpenseService, receipts *uploads.Store) *ExpenseController {
	return &ExpenseController{
		expenseService: expenseService,
		receipts:       receipts,
	}
}

// CreateExpense handles POST /expenses
func (ec *ExpenseController) CreateExpense(c *gin.Context) {
	var req models.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	if fieldErrs := req.Validate(); len(fieldErrs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Validation failed",
			"details": fieldErrs,
		})
		return
	}

	expense, err := ec.expenseService.Create(&req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to create expense",
		})
		return
	}

	c.JSON(http.StatusCreated, expense)
}

// GetExpenses handles GET /expenses
func (ec *ExpenseController) GetExpenses(c *gin.Context) {
	expenses, err := ec.expenseService.FindAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to list expenses",
		})
		return
	}

	c.JSON(http.StatusOK, expenses)
}

// GetExpense handles GET /expenses/:id
func (ec *ExpenseController) GetExpense(c *gin.Context) {
	expense, err := ec.expenseService.FindByID(c.Param("id"))
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

	c.JSON(http.StatusOK, expense)
}

// DeleteExpense handles DELETE /expenses/:id
func (ec *ExpenseController) DeleteExpense(c *gin.Context) {
	if err := ec.expenseService.Delete(c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Expense not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to delete expense",
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// GetReceipt handles GET /expenses/uploads/:filename - serves a previously
// stored receipt image
func (ec *ExpenseController) GetReceipt(c *gin.Context) {
	path, err := ec.receipts.Path(c.Param("filename"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Receipt not found",
		})
		return
	}

	c.File(path)
}
