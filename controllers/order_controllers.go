package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/bill-printing-app/services"
	"github.com/yeremiapane/bill-printing-app/utils"
)

type OrderController struct {
	Orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{Orders: orders}
}

type orderLineRequest struct {
	MenuItemID string  `json:"menu_item_id" binding:"required"`
	Quantity   int     `json:"quantity" binding:"required,min=1"`
	Notes      *string `json:"notes"`
}

type createOrderRequest struct {
	TableNo    *string            `json:"table_no"`
	CustomerID *string            `json:"customer_id"`
	Items      []orderLineRequest `json:"items" binding:"required,dive"`
	Discount   float64            `json:"discount"`
	Notes      *string            `json:"notes"`
}

// CreateOrder -> price the cart and store it as a pending order
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	lines := make([]services.LineRequest, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, services.LineRequest{
			MenuItemID: item.MenuItemID,
			Quantity:   item.Quantity,
			Notes:      item.Notes,
		})
	}

	result, err := oc.Orders.CreateOrder(c.Request.Context(), services.CreateOrderInput{
		TableNo:    req.TableNo,
		CustomerID: req.CustomerID,
		Items:      lines,
		Discount:   req.Discount,
		Notes:      req.Notes,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Order created", result)
}

// ListOrders -> all orders, or those whose status equals ?status= exactly
func (oc *OrderController) ListOrders(c *gin.Context) {
	orders, err := oc.Orders.ListOrders(c.Request.Context(), c.Query("status"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

// UpdateOrderStatus -> overwrite the status, any value may follow any other
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required,oneof=pending preparing ready served cancelled"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := oc.Orders.UpdateStatus(c.Request.Context(), c.Param("order_id"), req.Status); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order status updated", gin.H{"ok": true})
}

// GetOrderBill -> stored snapshot, never recomputed
func (oc *OrderController) GetOrderBill(c *gin.Context) {
	order, err := oc.Orders.GetBill(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order bill", order)
}
