package admincontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rainielmontanez/FSSPOS/catalog"
	"github.com/rainielmontanez/FSSPOS/models"
)

type productInput struct {
	Name     string  `json:"name" binding:"required"`
	Category string  `json:"category" binding:"required"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
	Barcode  string  `json:"barcode"`
	ImageURL string  `json:"image_url"`
}

func (in productInput) validate() string {
	if in.Price < 0 {
		return "Price must not be negative"
	}
	if in.Stock < 0 {
		return "Stock must not be negative"
	}
	return ""
}

// POST /admin/products
func CreateProduct(cat *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input productInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if msg := input.validate(); msg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return
		}
		p, err := cat.Create(models.Product{
			Name:     input.Name,
			Category: input.Category,
			Price:    input.Price,
			Stock:    input.Stock,
			Barcode:  input.Barcode,
			ImageURL: input.ImageURL,
		})
		if err != nil {
			if errors.Is(err, catalog.ErrDuplicateBarcode) {
				c.JSON(http.StatusConflict, gin.H{"error": "Barcode already assigned"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		c.JSON(http.StatusCreated, p)
	}
}

// PUT /admin/products/:id
func UpdateProduct(cat *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}
		var input productInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if msg := input.validate(); msg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return
		}
		p := models.Product{
			ID:       id,
			Name:     input.Name,
			Category: input.Category,
			Price:    input.Price,
			Stock:    input.Stock,
			Barcode:  input.Barcode,
			ImageURL: input.ImageURL,
		}
		if err := cat.Update(p); err != nil {
			switch {
			case errors.Is(err, catalog.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			case errors.Is(err, catalog.ErrDuplicateBarcode):
				c.JSON(http.StatusConflict, gin.H{"error": "Barcode already assigned"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			}
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// DELETE /admin/products/:id
func DeleteProduct(cat *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}
		if err := cat.Delete(id); err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
	}
}
