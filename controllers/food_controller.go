package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

// GET /foods
func ListFoods(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"foods": services.Advisor().Catalog().Foods()})
}

// GET /foods/search?q=idly
func SearchFood(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter q is required"})
		return
	}

	fact, ok := services.Advisor().Catalog().Resolve(q)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "food not found"})
		return
	}
	c.JSON(http.StatusOK, fact)
}
