package main

import (
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/rainielmontanez/FSSPOS/cart"
	"github.com/rainielmontanez/FSSPOS/catalog"
	"github.com/rainielmontanez/FSSPOS/checkout"
	eventscontroller "github.com/rainielmontanez/FSSPOS/controllers/events"
	scancontroller "github.com/rainielmontanez/FSSPOS/controllers/scan"
	"github.com/rainielmontanez/FSSPOS/routes"
	"github.com/rainielmontanez/FSSPOS/scanner"
	"github.com/rainielmontanez/FSSPOS/store"
	"github.com/rainielmontanez/FSSPOS/users"
)

func main() {
	// Load environment variables
	_ = godotenv.Load()

	initLogger()
	defer func() { _ = zap.L().Sync() }()

	// Open the local key-value store
	dbPath := os.Getenv("POS_DB_PATH")
	if dbPath == "" {
		dbPath = "fsspos.db"
	}
	db, err := store.OpenBolt(dbPath)
	if err != nil {
		zap.S().Fatalf("failed to open store %s: %v", dbPath, err)
	}
	defer db.Close()

	// Seed the initial admin account on first boot
	userStore := users.New(db)
	seedPassword := os.Getenv("SEED_ADMIN_PASSWORD")
	if seedPassword == "" {
		seedPassword = "changeme"
	}
	if err := userStore.SeedDefaultAdmin(seedPassword); err != nil {
		zap.S().Fatalf("failed to seed admin account: %v", err)
	}

	// Catalog is loaded once at startup; a read failure degrades to an
	// empty catalog and the till keeps running.
	cat := catalog.New(db)
	cat.Load()

	carts := cart.NewStore()
	checkoutSvc := checkout.New(db, cat, carts)
	events := eventscontroller.NewHub()

	// No capture hardware is registered by default; camera mode then falls
	// back to manual entry on every terminal.
	scanHub := scancontroller.NewHub(scanner.NoDevices{}, cat, carts, events)

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))

	routes.SetupRoutes(r, routes.Deps{
		DB:       db,
		Catalog:  cat,
		Carts:    carts,
		Checkout: checkoutSvc,
		Users:    userStore,
		Scan:     scanHub,
		Events:   events,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	zap.S().Infof("POS server running on port %s", port)
	if err := r.Run(":" + port); err != nil {
		zap.S().Fatalf("failed to start server: %v", err)
	}
}

// initLogger wires zap as the global logger, with file rotation when
// LOG_FILE is set.
func initLogger() {
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logger, err := zap.NewDevelopmentConfig().Build(zap.AddCaller())
		if err != nil {
			panic(err)
		}
		zap.ReplaceGlobals(logger)
		return
	}

	fileLogger := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    64,
		MaxBackups: 7,
		MaxAge:     7,
	}
	core := zapcore.NewTee(
		zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(fileLogger),
			zapcore.InfoLevel,
		),
		zapcore.NewCore(
			zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
			zapcore.AddSync(os.Stdout),
			zapcore.InfoLevel,
		),
	)
	zap.ReplaceGlobals(zap.New(core, zap.AddCaller()))
}
