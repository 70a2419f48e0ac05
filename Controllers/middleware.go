package Controllers

import (
	"MediBook/Models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// getScopedDB returns the request-scoped session set by the middleware,
// falling back to the shared handle when none was set.
func getScopedDB(c *gin.Context) *gorm.DB {
	db, exists := c.Get("db")
	if !exists {
		return Models.DB
	}
	scoped, ok := db.(*gorm.DB)
	if !ok {
		return Models.DB
	}
	return scoped
}
