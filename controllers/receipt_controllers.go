package controllers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/bill-printing-app/receipt"
	"github.com/yeremiapane/bill-printing-app/services"
	"github.com/yeremiapane/bill-printing-app/utils"
)

type ReceiptController struct {
	Orders     *services.OrderService
	Restaurant receipt.RestaurantInfo
}

func NewReceiptController(orders *services.OrderService, info receipt.RestaurantInfo) *ReceiptController {
	return &ReceiptController{Orders: orders, Restaurant: info}
}

// GetBillPDF -> printable bill for the stored snapshot
func (rc *ReceiptController) GetBillPDF(c *gin.Context) {
	order, err := rc.Orders.GetBill(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := receipt.RenderBill(&buf, order, rc.Restaurant); err != nil {
		respondServiceError(c, fmt.Errorf("failed to render bill: %w", err))
		return
	}

	utils.InfoLogger.Printf("Bill PDF generated for order %s (%d bytes)", order.ID, buf.Len())

	c.Header("Content-Disposition", fmt.Sprintf(`inline; filename="bill-%s.pdf"`, order.ID))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
