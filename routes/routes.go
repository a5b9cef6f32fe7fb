package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/rainielmontanez/FSSPOS/cart"
	"github.com/rainielmontanez/FSSPOS/catalog"
	"github.com/rainielmontanez/FSSPOS/checkout"
	eventscontroller "github.com/rainielmontanez/FSSPOS/controllers/events"
	scancontroller "github.com/rainielmontanez/FSSPOS/controllers/scan"
	"github.com/rainielmontanez/FSSPOS/store"
	"github.com/rainielmontanez/FSSPOS/users"
)

// Deps carries everything the route handlers need. It is passed explicitly;
// nothing here lives in package-level state.
type Deps struct {
	DB       store.Store
	Catalog  *catalog.Store
	Carts    *cart.Store
	Checkout *checkout.Service
	Users    *users.Store
	Scan     *scancontroller.Hub
	Events   *eventscontroller.Hub
}

// SetupRoutes is the single entry-point that wires up Auth, POS, and Admin
// route groups.
func SetupRoutes(r *gin.Engine, deps Deps) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, deps)

	// POS terminal routes (JWT-protected, any role)
	SetupPOSRoutes(r, deps)

	// Admin routes (JWT + admin role + API key)
	SetupAdminRoutes(r, deps)
}
