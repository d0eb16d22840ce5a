package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/bill-printing-app/models"
	"github.com/yeremiapane/bill-printing-app/utils"
	"gorm.io/gorm"
)

type MenuController struct {
	DB *gorm.DB
}

func NewMenuController(db *gorm.DB) *MenuController {
	return &MenuController{DB: db}
}

type createMenuItemRequest struct {
	Name        string   `json:"name" binding:"required"`
	Category    string   `json:"category" binding:"required"`
	Price       *float64 `json:"price" binding:"required,min=0"`
	Description *string  `json:"description"`
	IsAvailable *bool    `json:"is_available"`
	GSTRate     *float64 `json:"gst_rate" binding:"omitempty,min=0,max=0.28"`
}

// GetAllMenus
func (mc *MenuController) GetAllMenus(c *gin.Context) {
	var items []models.MenuItem
	query := mc.DB.WithContext(c.Request.Context()).Order("category asc, name asc")
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if err := query.Find(&items).Error; err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of menu items", items)
}

// CreateMenu
func (mc *MenuController) CreateMenu(c *gin.Context) {
	var req createMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item := models.MenuItem{
		Name:        req.Name,
		Category:    req.Category,
		Price:       *req.Price,
		Description: req.Description,
		IsAvailable: true,
		GSTRate:     models.DefaultGSTRate,
	}
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}
	if req.GSTRate != nil {
		item.GSTRate = *req.GSTRate
	}

	if err := mc.DB.WithContext(c.Request.Context()).Create(&item).Error; err != nil {
		respondServiceError(c, err)
		return
	}

	utils.InfoLogger.Printf("Menu item created: %s (%s)", item.Name, item.ID)
	utils.RespondJSON(c, http.StatusCreated, "Menu item created", gin.H{"id": item.ID})
}
