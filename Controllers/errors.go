package Controllers

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	// Report violations under the json field name instead of the Go one.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "" || name == "-" {
				return field.Name
			}
			return name
		})
	}
}

func validationMessage(violation validator.FieldError) string {
	switch violation.Tag() {
	case "required":
		return "field is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters", violation.Param())
	case "len":
		return fmt.Sprintf("must be exactly %s characters", violation.Param())
	case "email":
		return "must be a valid email address"
	case "datetime":
		return fmt.Sprintf("must match the format %s", violation.Param())
	}
	return fmt.Sprintf("failed the %s constraint", violation.Tag())
}

// respondBindingError turns a binding failure into a 422 with one detail
// string per violated constraint.
func respondBindingError(c *gin.Context, err error) {
	var violations validator.ValidationErrors
	if errors.As(err, &violations) {
		detail := make([]string, 0, len(violations))
		for _, violation := range violations {
			detail = append(detail, fmt.Sprintf("%s: %s", violation.Field(), validationMessage(violation)))
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": detail})
		return
	}
	c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": []string{err.Error()}})
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}
