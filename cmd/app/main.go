package main

import (
	"context"
	"os"

	"github.com/ThanhAnUp/ArtisanHaven/internal/config"
	"github.com/ThanhAnUp/ArtisanHaven/internal/db"
	"github.com/ThanhAnUp/ArtisanHaven/internal/memstore"
	"github.com/ThanhAnUp/ArtisanHaven/internal/middleware"
	"github.com/ThanhAnUp/ArtisanHaven/internal/repository"
	"github.com/ThanhAnUp/ArtisanHaven/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "artisan-haven",
		Usage: "artisan storefront REST API",
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the HTTP server",
				Action: runServe,
			},
			{
				Name:   "migrate",
				Usage:  "apply database migrations",
				Action: runMigrate,
			},
		},
		DefaultCommand: "serve",
	}
	if err := app.Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}

func runMigrate(_ *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		return errors.New("DATABASE_URL is required")
	}
	if err := db.Migrate(cfg.DatabaseURL); err != nil {
		return err
	}
	logrus.Info("migrations applied")
	return nil
}

func runServe(_ *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	ctx := context.Background()

	// ======================
	// STORAGE
	// ======================
	var (
		products    services.ProductStore
		reviews     services.ReviewStore
		carts       services.CartStore
		orders      services.OrderStore
		workshops   services.WorkshopStore
		newsletters services.NewsletterStore
		contacts    services.ContactStore
	)

	switch cfg.Storage {
	case "memory":
		ms := memstore.New()
		if err := ms.Seed(ctx); err != nil {
			return errors.Wrap(err, "seed memory store")
		}
		products, reviews, carts, orders = ms, ms, ms, ms
		workshops, newsletters, contacts = ms, ms, ms
		logrus.Info("using in-memory storage")
	default:
		if cfg.DatabaseURL == "" {
			return errors.New("DATABASE_URL is required")
		}
		pool, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer pool.Close()
		products = repository.NewProductRepository(pool)
		reviews = repository.NewReviewRepository(pool)
		carts = repository.NewCartRepository(pool)
		orders = repository.NewOrderRepository(pool)
		workshops = repository.NewWorkshopRepository(pool)
		newsletters = repository.NewNewsletterRepository(pool)
		contacts = repository.NewContactRepository(pool)
		logrus.Info("using postgres storage")
	}

	// ======================
	// SERVICES
	// ======================
	shipping := services.ShippingRule{
		Fee:           cfg.ShippingFee,
		FreeThreshold: cfg.FreeShippingThreshold,
	}
	productSvc := services.NewProductService(products)
	reviewSvc := services.NewReviewService(reviews, products)
	cartSvc := services.NewCartService(carts, products, shipping)
	orderSvc := services.NewOrderService(orders, cartSvc)
	workshopSvc := services.NewWorkshopService(workshops)
	newsletterSvc := services.NewNewsletterService(newsletters, services.NewLocalValidator())
	contactSvc := services.NewContactService(contacts)

	// ======================
	// ECHO
	// ======================
	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	api := e.Group("/api")
	api.Use(middleware.Session(cfg.SessionCookieName, cfg.SessionCookieMaxAge))

	// ======================
	// ROUTES (ONLY REGISTRATION)
	// ======================
	registerProductRoutes(api, productSvc)
	registerReviewRoutes(api, reviewSvc)
	registerCartRoutes(api, cartSvc)
	registerOrderRoutes(api, orderSvc)
	registerWorkshopRoutes(api, workshopSvc)
	registerNewsletterRoutes(api, newsletterSvc)
	registerContactRoutes(api, contactSvc)

	logrus.WithField("port", cfg.Port).Info("starting server")
	return e.Start(":" + cfg.Port)
}
