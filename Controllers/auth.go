package Controllers

import (
	"net/http"

	"MediBook/Models"

	"github.com/gin-gonic/gin"
)

type RegisterInput struct {
	Name     string `json:"name" form:"name" binding:"required,min=5"`
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required,min=8"`
}

type LoginInput struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required,min=8"`
}

func Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBind(&input); err != nil {
		respondBindingError(c, err)
		return
	}

	db := getScopedDB(c)

	existing, err := Models.GetUserByEmail(db, input.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if existing != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered. Try logging in"})
		return
	}

	user := Models.User{Name: input.Name, Email: input.Email}
	if _, err := user.SaveUser(db, input.Password); err != nil {
		// The unique column catches creates racing past the check above.
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered. Try logging in"})
		return
	}

	user.PrepareGive()
	c.JSON(http.StatusCreated, user)
}

func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBind(&input); err != nil {
		respondBindingError(c, err)
		return
	}

	db := getScopedDB(c)

	user, err := Models.LoginCheck(db, input.Email, input.Password)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid email or password"})
		return
	}

	user.PrepareGive()
	c.JSON(http.StatusOK, gin.H{"message": "Login Successful", "user": user})
}

func FetchUsers(c *gin.Context) {
	db := getScopedDB(c)

	users, err := Models.GetUsers(db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, users)
}

// Form surface: same checks, redirect on success.

func RegisterForm(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBind(&input); err != nil {
		respondBindingError(c, err)
		return
	}

	db := getScopedDB(c)

	existing, err := Models.GetUserByEmail(db, input.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if existing != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered. Try logging in"})
		return
	}

	user := Models.User{Name: input.Name, Email: input.Email}
	if _, err := user.SaveUser(db, input.Password); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered. Try logging in"})
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}

func LoginForm(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBind(&input); err != nil {
		respondBindingError(c, err)
		return
	}

	db := getScopedDB(c)

	if _, err := Models.LoginCheck(db, input.Email, input.Password); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid email or password"})
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}
