package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"bookmarks/internal/handlers"
	"bookmarks/internal/middleware"
	"bookmarks/internal/models"
	"bookmarks/internal/repositories"
	"bookmarks/internal/services"
	"bookmarks/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DATABASE_DSN", "") // empty selects sqlite
	viper.SetDefault("SQLITE_PATH", "bookmarks.db")
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("TOKEN_TTL_MINUTES", 15)
	viper.SetDefault("RABBITMQ_URL", "") // empty disables event publishing
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")
	jwtSecret := viper.GetString("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}
	tokenTTL := time.Duration(viper.GetInt("TOKEN_TTL_MINUTES")) * time.Minute

	// --- Database ---
	db, err := openDatabase(viper.GetString("DATABASE_DSN"), viper.GetString("SQLITE_PATH"))
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Bookmark{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// --- RabbitMQ (optional) ---
	var mqClient *rabbitmq.Client
	if rabbitMQURL := viper.GetString("RABBITMQ_URL"); rabbitMQURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: rabbitMQURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
	} else {
		log.Println("RABBITMQ_URL not set, event publishing disabled")
	}

	app := newApp(db, mqClient, jwtSecret, tokenTTL)

	// --- Event stream tail (optional) ---
	// Logs every domain event this instance or its peers publish.
	if mqClient != nil {
		go func() {
			err := mqClient.ConsumeEvents("#", func(msg amqp.Delivery) error {
				log.Printf("Received event %s: %s", msg.RoutingKey, string(msg.Body))
				return nil
			})
			if err != nil {
				log.Printf("Failed to start event consumer: %v", err)
			}
		}()
	}

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", appPort)

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}

// openDatabase connects to PostgreSQL when a DSN is configured and
// falls back to a local sqlite file otherwise.
func openDatabase(dsn, sqlitePath string) (*gorm.DB, error) {
	if dsn != "" {
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}
	log.Printf("DATABASE_DSN not set, using sqlite database at %s", sqlitePath)
	return gorm.Open(sqlite.Open(sqlitePath), &gorm.Config{})
}

// newApp wires repositories, services and handlers into a Fiber app.
// mqClient may be nil, in which case event publishing is disabled.
func newApp(db *gorm.DB, mqClient *rabbitmq.Client, jwtSecret string, tokenTTL time.Duration) *fiber.App {
	// --- Repositories ---
	userRepo := repositories.NewGORMUserRepository(db)
	bookmarkRepo := repositories.NewGORMBookmarkRepository(db)

	// --- Services ---
	authService := services.NewAuthService(userRepo, jwtSecret, tokenTTL, mqClient)
	userService := services.NewUserService(userRepo)
	bookmarkService := services.NewBookmarkService(bookmarkRepo, mqClient)

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	bookmarkHandler := handlers.NewBookmarkHandler(bookmarkService)

	app := fiber.New()

	// --- Middleware ---
	app.Use(logger.New()) // Request logger

	// --- Routes ---
	// Public routes must be registered before the guarded group, which
	// is mounted at the root prefix.
	authHandler.RegisterRoutes(app)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// Protected routes (require a valid bearer token)
	protected := app.Group("", middleware.AuthRequired(authService))
	userHandler.RegisterRoutes(protected)
	bookmarkHandler.RegisterRoutes(protected)

	return app
}
