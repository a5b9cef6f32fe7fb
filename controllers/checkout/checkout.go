package checkoutcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rainielmontanez/FSSPOS/checkout"
	eventscontroller "github.com/rainielmontanez/FSSPOS/controllers/events"
)

// Complete hands the cart to the checkout workflow; on success the cart has
// been cleared and the sale recorded.
// POST /checkout
func Complete(svc *checkout.Service, events *eventscontroller.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(int64)
		name, _ := c.Get("user_name")
		cashierName, _ := name.(string)

		sale, err := svc.Complete(userID, cashierName)
		if err != nil {
			if errors.Is(err, checkout.ErrEmptyCart) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Checkout failed"})
			return
		}

		events.Broadcast("sale_completed", sale)
		c.JSON(http.StatusCreated, sale)
	}
}

// ListSales returns all recorded sales.
// GET /admin/sales
func ListSales(svc *checkout.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		sales := svc.Sales()
		c.JSON(http.StatusOK, gin.H{"sales": sales, "count": len(sales)})
	}
}
