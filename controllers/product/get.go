package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rainielmontanez/FSSPOS/catalog"
)

// ListProducts returns the catalog filtered by search term and category.
// Query params: search (name substring, case-insensitive), category (exact,
// defaults to the "all" sentinel).
// GET /products?search=&category=
func ListProducts(cat *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		search := c.Query("search")
		category := c.DefaultQuery("category", catalog.CategoryAll)
		c.JSON(http.StatusOK, cat.Filter(search, category))
	}
}

// GET /products/categories
func ListCategories(cat *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, cat.Categories())
	}
}

// GetProductByID returns a single product.
// URL param: /products/:id
func GetProductByID(cat *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}
		p, ok := cat.ByID(id)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// GetProductByBarcode resolves an exact barcode to a product.
// GET /products/barcode/:code
func GetProductByBarcode(cat *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		code := c.Param("code")
		p, ok := cat.FindByBarcode(code)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "No product for barcode " + code})
			return
		}
		c.JSON(http.StatusOK, p)
	}
}
