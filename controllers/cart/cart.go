package cartcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rainielmontanez/FSSPOS/cart"
	"github.com/rainielmontanez/FSSPOS/catalog"
)

type addItemInput struct {
	ProductID int64 `json:"product_id" binding:"required"`
}

type updateItemInput struct {
	Quantity int `json:"quantity"`
}

func terminalUser(c *gin.Context) (int64, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return 0, false
	}
	return v.(int64), true
}

// GET /cart
func GetCart(carts *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := terminalUser(c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, carts.View(userID))
	}
}

// AddItem adds one unit of the product, merging into an existing line.
// POST /cart/items
func AddItem(carts *cart.Store, cat *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := terminalUser(c)
		if !ok {
			return
		}
		var input addItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		product, found := cat.ByID(input.ProductID)
		if !found {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			return
		}
		carts.AddItem(userID, product)
		c.JSON(http.StatusOK, carts.View(userID))
	}
}

// UpdateItem sets a line's quantity exactly; zero or below removes the line.
// An unknown product id leaves the cart unchanged.
// PUT /cart/items/:product_id
func UpdateItem(carts *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := terminalUser(c)
		if !ok {
			return
		}
		productID, err := strconv.ParseInt(c.Param("product_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}
		var input updateItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		carts.UpdateQuantity(userID, productID, input.Quantity)
		c.JSON(http.StatusOK, carts.View(userID))
	}
}

// DELETE /cart/items/:product_id
func RemoveItem(carts *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := terminalUser(c)
		if !ok {
			return
		}
		productID, err := strconv.ParseInt(c.Param("product_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}
		carts.RemoveItem(userID, productID)
		c.JSON(http.StatusOK, carts.View(userID))
	}
}

// DELETE /cart
func ClearCart(carts *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := terminalUser(c)
		if !ok {
			return
		}
		carts.Clear(userID)
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
