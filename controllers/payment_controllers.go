package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/bill-printing-app/services"
	"github.com/yeremiapane/bill-printing-app/utils"
)

type PaymentController struct {
	Orders *services.OrderService
}

func NewPaymentController(orders *services.OrderService) *PaymentController {
	return &PaymentController{Orders: orders}
}

type paymentRequest struct {
	Method    string   `json:"method" binding:"omitempty,oneof=cash card upi wallet split other"`
	Amount    *float64 `json:"amount" binding:"required,min=0"`
	Reference *string  `json:"reference"`
}

// AddPayment -> append a payment to the order; totals and status are untouched
func (pc *PaymentController) AddPayment(c *gin.Context) {
	var req paymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	err := pc.Orders.AddPayment(c.Request.Context(), c.Param("order_id"), services.PaymentInput{
		Method:    req.Method,
		Amount:    *req.Amount,
		Reference: req.Reference,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Payment recorded", gin.H{"ok": true})
}
