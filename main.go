package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/musaada/musaada/auth"
	"github.com/musaada/musaada/config"
	"github.com/musaada/musaada/controllers"
	appcron "github.com/musaada/musaada/cron"
	"github.com/musaada/musaada/db"
	"github.com/musaada/musaada/email"
	"github.com/musaada/musaada/middleware"
	appredis "github.com/musaada/musaada/redis"
	"github.com/musaada/musaada/routes"
	"github.com/musaada/musaada/utils"
)

func main() {
	cfg := config.Load()

	gdb, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close(gdb)

	if err := db.Migrate(gdb); err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	mailer := email.NewSMTPMailer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Password, cfg.SMTP.From)

	authService := auth.NewService(db.NewAuthStore(gdb), mailer, cfg.FrontendURL)
	if cfg.RedisAddr != "" {
		client, err := appredis.New(cfg.RedisAddr)
		if err != nil {
			log.Printf("Warning: login rate limiting disabled: %v", err)
		} else {
			defer client.Close()
			authService.Limiter = appredis.NewLoginLimiter(client)
		}
	}

	var uploader *utils.Uploader
	if cfg.Cloudinary.CloudName != "" {
		uploader, err = utils.NewUploader(cfg.Cloudinary)
		if err != nil {
			log.Printf("Warning: avatar uploads disabled: %v", err)
		}
	}

	authMiddleware := middleware.NewAuth(authService)

	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.FrontendURL,
		AllowCredentials: true,
	}))
	app.Use(authMiddleware.Attach())

	routes.SetupAuthRoutes(app,
		controllers.NewAuthController(authService, cfg.IsProduction()),
		controllers.NewProfileController(gdb, uploader),
		authMiddleware)
	routes.SetupServiceRoutes(app, controllers.NewServiceController(gdb), authMiddleware)
	routes.SetupProviderRoutes(app, controllers.NewProviderController(gdb), authMiddleware)
	routes.SetupBookingRoutes(app, controllers.NewBookingController(gdb, mailer), authMiddleware)
	routes.SetupReviewRoutes(app, controllers.NewReviewController(gdb, mailer), authMiddleware)
	routes.SetupNotificationRoutes(app, controllers.NewNotificationController(gdb), authMiddleware)
	routes.SetupAdminRoutes(app, controllers.NewAdminController(gdb), authMiddleware)

	reminders, err := appcron.StartReminders(gdb, mailer)
	if err != nil {
		log.Fatal(err)
	}

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down...")
		reminders.Stop()
		if err := app.Shutdown(); err != nil {
			log.Printf("Shutdown error: %v", err)
		}
	}()

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
