package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"

	"shirtshop_backend/internal/app/router"
	adminhandler "shirtshop_backend/internal/feature/admin/transport/handler"
	authadapters "shirtshop_backend/internal/feature/auth/adapters"
	authhandler "shirtshop_backend/internal/feature/auth/transport/handler"
	authusecase "shirtshop_backend/internal/feature/auth/usecase"
	catalogadapters "shirtshop_backend/internal/feature/catalog/adapters"
	cataloghandler "shirtshop_backend/internal/feature/catalog/transport/handler"
	catalogusecase "shirtshop_backend/internal/feature/catalog/usecase"
	contacthandler "shirtshop_backend/internal/feature/contact/transport/handler"
	"shirtshop_backend/internal/platform/config"
	platformdb "shirtshop_backend/internal/platform/db"
	"shirtshop_backend/internal/platform/externalapi/sendgrid"
	platformredis "shirtshop_backend/internal/platform/redis"
	"shirtshop_backend/internal/platform/session"
	"shirtshop_backend/internal/platform/token"
	"shirtshop_backend/internal/shared/ratelimiter"
)

// catalogCacheTTL is how long cached product reads stay valid.
const catalogCacheTTL = 5 * time.Minute

func main() {
	// .env is optional; in production everything comes from the environment.
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if cfg.Session.Secret == "" {
		log.Println("[WARN] SESSION_SECRET is not set. Set a strong secret in production.")
	}
	if cfg.Admin.Username == "" || cfg.Admin.Password == "" {
		log.Println("[WARN] ADMIN_USERNAME/ADMIN_PASSWORD are not set. The admin panel is unreachable.")
	}

	// db
	db := platformdb.OpenDB(cfg.DB)

	// Redis backs the session store, so it is required.
	rdb, err := platformredis.NewRedisClient(cfg.Redis)
	if err != nil {
		log.Fatalf("failed to connect to Redis: %v", err)
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Println("[ERROR] Failed to close Redis client:", err)
		}
	}()

	// Repository
	userRepo := authadapters.NewUserSQL(db)
	productRepo := catalogadapters.NewProductSQL(db)
	cachedProductRepo := catalogadapters.NewCachingProductRepository(rdb, catalogCacheTTL, productRepo, "products")

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo)
	catalogUC := catalogusecase.NewCatalogUsecase(cachedProductRepo)

	if err := catalogUC.SeedDefault(context.Background()); err != nil {
		log.Fatalf("failed to seed catalog: %v", err)
	}

	// Outbound mail
	mailer := sendgrid.NewMailer(
		sendgrid.Config{
			APIKey:  cfg.SendGrid.APIKey,
			BaseURL: cfg.SendGrid.BaseURL,
			Timeout: cfg.SendGrid.Timeout,
		},
		&http.Client{Timeout: cfg.SendGrid.Timeout},
		ratelimiter.NewRateLimiter(10, time.Minute),
	)

	// Sessions and remember-me tokens. Restoring a session from a remember
	// token goes through the user store so tokens of deleted users die.
	remember := token.NewRememberToken(cfg.Session.Secret, cfg.Session.RememberTTL)
	store := session.NewRedisStore(rdb, "session")
	sessionMW := session.Middleware(store, authusecase.NewRememberParser(remember, userRepo), cfg.Session.TTL)

	// Handler
	catalogH := cataloghandler.NewCatalogHandler(catalogUC)
	contactH := contacthandler.NewContactHandler(mailer, cfg.Contact.To, cfg.Contact.From)
	authH := authhandler.NewAuthHandler(authUC, remember)
	adminH := adminhandler.NewAdminHandler(catalogUC, cfg.Admin)

	r := router.NewRouter(sessionMW, catalogH, contactH, authH, adminH)

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
