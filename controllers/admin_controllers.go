package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/bill-printing-app/services"
	"github.com/yeremiapane/bill-printing-app/utils"
)

type AdminController struct {
	Orders *services.OrderService
}

func NewAdminController(orders *services.OrderService) *AdminController {
	return &AdminController{Orders: orders}
}

// GetSalesReport -> revenue and order count. The date window is accepted as sent.
func (ac *AdminController) GetSalesReport(c *gin.Context) {
	var filter services.ReportFilter
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&filter); err != nil {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
	}

	report, err := ac.Orders.SalesReport(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Sales report", report)
}
