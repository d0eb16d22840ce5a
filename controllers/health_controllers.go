package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/bill-printing-app/database"
	"gorm.io/gorm"
)

const banner = "Bill Printing App backend is running"

type HealthController struct {
	DB *gorm.DB
}

func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{DB: db}
}

func (hc *HealthController) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": banner})
}

// TestDatabase always answers 200; a broken database shows up in the body.
func (hc *HealthController) TestDatabase(c *gin.Context) {
	c.JSON(http.StatusOK, database.CheckHealth(c.Request.Context(), hc.DB))
}
