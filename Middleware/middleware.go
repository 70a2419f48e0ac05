package Middleware

import (
	"MediBook/Models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ScopedSession gives every request its own database session, bound to
// the request context and released with it.
func ScopedSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := Models.DB.Session(&gorm.Session{NewDB: true}).WithContext(c.Request.Context())
		c.Set("db", session)
		c.Next()
	}
}
