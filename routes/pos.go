package routes

import (
	"github.com/gin-gonic/gin"

	admincontroller "github.com/rainielmontanez/FSSPOS/controllers/admin"
	cartcontroller "github.com/rainielmontanez/FSSPOS/controllers/cart"
	checkoutcontroller "github.com/rainielmontanez/FSSPOS/controllers/checkout"
	productcontroller "github.com/rainielmontanez/FSSPOS/controllers/product"
	"github.com/rainielmontanez/FSSPOS/middleware"
)

// SetupPOSRoutes registers the till endpoints used by both roles.
// Requires JWT middleware.
func SetupPOSRoutes(r *gin.Engine, deps Deps) {
	pos := r.Group("/")
	pos.Use(middleware.ValidateToken)
	{
		// ──────────────── Catalog browsing ────────────────
		pos.GET("/products", productcontroller.ListProducts(deps.Catalog))
		pos.GET("/products/categories", productcontroller.ListCategories(deps.Catalog))
		pos.GET("/products/barcode/:code", productcontroller.GetProductByBarcode(deps.Catalog))
		pos.GET("/products/:id", productcontroller.GetProductByID(deps.Catalog))

		// ──────────────── Cart ────────────────
		pos.GET("/cart", cartcontroller.GetCart(deps.Carts))
		pos.POST("/cart/items", cartcontroller.AddItem(deps.Carts, deps.Catalog))
		pos.PUT("/cart/items/:product_id", cartcontroller.UpdateItem(deps.Carts))
		pos.DELETE("/cart/items/:product_id", cartcontroller.RemoveItem(deps.Carts))
		pos.DELETE("/cart", cartcontroller.ClearCart(deps.Carts))

		// ──────────────── Barcode scanning ────────────────
		pos.POST("/scan", deps.Scan.SubmitCode)
		pos.POST("/scan/camera/start", deps.Scan.StartCamera)
		pos.POST("/scan/camera/stop", deps.Scan.StopCamera)
		pos.GET("/scan/notices", deps.Scan.Notices)
		pos.GET("/scan/devices", deps.Scan.Devices)

		// ──────────────── Checkout ────────────────
		pos.POST("/checkout", checkoutcontroller.Complete(deps.Checkout, deps.Events))

		// ──────────────── Branding ────────────────
		pos.GET("/settings", admincontroller.GetSettings(deps.DB))
	}

	// Event stream for connected till screens
	r.GET("/events/ws", deps.Events.Handle)
}
