package Controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Landing responses for the checkout redirect URLs.

func CheckoutSuccess(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Payment completed"})
}

func CheckoutCancel(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Payment cancelled"})
}
