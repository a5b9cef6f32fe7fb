package admincontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rainielmontanez/FSSPOS/models"
	"github.com/rainielmontanez/FSSPOS/store"
)

// GetSettings returns the store branding block; defaults apply until an
// admin writes one.
// GET /settings, GET /admin/settings
func GetSettings(db store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		settings := models.DefaultSettings()
		err := db.Read(store.KeySettings, &settings)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load settings"})
			return
		}
		c.JSON(http.StatusOK, settings)
	}
}

// PUT /admin/settings
func UpdateSettings(db store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.Settings
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.StoreName == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Store name is required"})
			return
		}
		if err := db.Write(store.KeySettings, input); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save settings"})
			return
		}
		c.JSON(http.StatusOK, input)
	}
}
