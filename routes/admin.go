package routes

import (
	"github.com/gin-gonic/gin"

	admincontroller "github.com/rainielmontanez/FSSPOS/controllers/admin"
	checkoutcontroller "github.com/rainielmontanez/FSSPOS/controllers/checkout"
	productcontroller "github.com/rainielmontanez/FSSPOS/controllers/product"
	"github.com/rainielmontanez/FSSPOS/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires the admin
// role and the API key header.
func SetupAdminRoutes(r *gin.Engine, deps Deps) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey, middleware.ValidateToken, middleware.RequireAdmin)
	{
		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", admincontroller.CreateProduct(deps.Catalog))
			productAdmin.PUT("/:id", admincontroller.UpdateProduct(deps.Catalog))
			productAdmin.DELETE("/:id", admincontroller.DeleteProduct(deps.Catalog))
			productAdmin.POST("/import", productcontroller.ImportProductsFromExcel(deps.Catalog))
			productAdmin.GET("/export", productcontroller.ExportProductsToExcel(deps.Catalog))
		}

		// ─────────── User Management ───────────
		adminGroup.GET("/users", admincontroller.ListUsers(deps.Users))
		adminGroup.POST("/users", admincontroller.CreateUser(deps.Users))

		// ─────────── Sales ───────────
		adminGroup.GET("/sales", checkoutcontroller.ListSales(deps.Checkout))

		// ─────────── Settings ───────────
		adminGroup.GET("/settings", admincontroller.GetSettings(deps.DB))
		adminGroup.PUT("/settings", admincontroller.UpdateSettings(deps.DB))
	}
}
