package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/bill-printing-app/models"
	"github.com/yeremiapane/bill-printing-app/utils"
	"gorm.io/gorm"
)

type CustomerController struct {
	DB *gorm.DB
}

func NewCustomerController(db *gorm.DB) *CustomerController {
	return &CustomerController{DB: db}
}

// GetAllCustomers
func (cc *CustomerController) GetAllCustomers(c *gin.Context) {
	var customers []models.Customer
	if err := cc.DB.WithContext(c.Request.Context()).Order("name asc").Find(&customers).Error; err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of customers", customers)
}

// CreateCustomer
func (cc *CustomerController) CreateCustomer(c *gin.Context) {
	var req struct {
		Name          string  `json:"name" binding:"required"`
		Phone         *string `json:"phone"`
		Email         *string `json:"email" binding:"omitempty,email"`
		LoyaltyPoints int     `json:"loyalty_points" binding:"min=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	customer := models.Customer{
		Name:          req.Name,
		Phone:         req.Phone,
		Email:         req.Email,
		LoyaltyPoints: req.LoyaltyPoints,
	}
	if err := cc.DB.WithContext(c.Request.Context()).Create(&customer).Error; err != nil {
		respondServiceError(c, err)
		return
	}

	utils.InfoLogger.Printf("New customer created (ID=%s)", customer.ID)
	utils.RespondJSON(c, http.StatusCreated, "Customer created", gin.H{"id": customer.ID})
}
