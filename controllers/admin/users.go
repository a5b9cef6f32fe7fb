package admincontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rainielmontanez/FSSPOS/models"
	"github.com/rainielmontanez/FSSPOS/users"
)

type userInput struct {
	Name     string `json:"name" binding:"required"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required"`
}

// POST /admin/users
func CreateUser(userStore *users.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input userInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.Role != models.RoleAdmin && input.Role != models.RoleEmployee {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Role must be admin or employee"})
			return
		}
		u, err := userStore.Create(input.Name, input.Username, input.Password, input.Role)
		if err != nil {
			if errors.Is(err, users.ErrDuplicateUsername) {
				c.JSON(http.StatusConflict, gin.H{"error": "Username already taken"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
			return
		}
		c.JSON(http.StatusCreated, u)
	}
}

// GET /admin/users
func ListUsers(userStore *users.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := userStore.List()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}
