package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/bill-printing-app/models"
	"github.com/yeremiapane/bill-printing-app/utils"
	"gorm.io/gorm"
)

type InventoryController struct {
	DB *gorm.DB
}

func NewInventoryController(db *gorm.DB) *InventoryController {
	return &InventoryController{DB: db}
}

type createInventoryRequest struct {
	SKU               string   `json:"sku" binding:"required"`
	Name              string   `json:"name" binding:"required"`
	Quantity          *float64 `json:"quantity" binding:"required,min=0"`
	Unit              string   `json:"unit"`
	LowStockThreshold float64  `json:"low_stock_threshold" binding:"min=0"`
}

// GetAllInventory -> ?low_stock=true keeps only items at or under their threshold
func (ic *InventoryController) GetAllInventory(c *gin.Context) {
	var items []models.InventoryItem
	if err := ic.DB.WithContext(c.Request.Context()).Order("sku asc").Find(&items).Error; err != nil {
		respondServiceError(c, err)
		return
	}

	if c.Query("low_stock") == "true" {
		low := make([]models.InventoryItem, 0, len(items))
		for _, item := range items {
			if item.IsLowStock() {
				low = append(low, item)
			}
		}
		items = low
	}
	utils.RespondJSON(c, http.StatusOK, "List of inventory items", items)
}

func (ic *InventoryController) CreateInventoryItem(c *gin.Context) {
	var req createInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item := models.InventoryItem{
		SKU:               req.SKU,
		Name:              req.Name,
		Quantity:          *req.Quantity,
		Unit:              req.Unit,
		LowStockThreshold: req.LowStockThreshold,
	}
	if item.Unit == "" {
		item.Unit = "unit"
	}

	if err := ic.DB.WithContext(c.Request.Context()).Create(&item).Error; err != nil {
		respondServiceError(c, err)
		return
	}

	utils.InfoLogger.Printf("Inventory item created: %s (%s)", item.SKU, item.ID)
	utils.RespondJSON(c, http.StatusCreated, "Inventory item created", gin.H{"id": item.ID})
}
