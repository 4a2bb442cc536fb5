package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/lrad-tours/voyages-api/internal/api"
	"github.com/lrad-tours/voyages-api/internal/catalog"
	"github.com/lrad-tours/voyages-api/internal/ports"
	"github.com/lrad-tours/voyages-api/internal/pricing"
	"github.com/lrad-tours/voyages-api/internal/service"
	"github.com/lrad-tours/voyages-api/internal/utils"
	"github.com/lrad-tours/voyages-api/pkg/config"
	"github.com/lrad-tours/voyages-api/pkg/emailjs"
	"github.com/lrad-tours/voyages-api/pkg/health"
	"github.com/lrad-tours/voyages-api/pkg/logger"
	"github.com/lrad-tours/voyages-api/pkg/mailrelay"
	"github.com/lrad-tours/voyages-api/pkg/whatsapp"
)

const version = "1.0.0"

type App struct {
	config *config.Config
	log    *slog.Logger
	server *http.Server
}

func NewApp(cfg *config.Config, log *slog.Logger) *App {
	return &App{
		config: cfg,
		log:    log,
	}
}

func (a *App) Initialize() error {
	services, err := a.setupServices()
	if err != nil {
		return fmt.Errorf("service setup failed: %w", err)
	}

	router := a.setupRouter(services)

	a.server = &http.Server{
		Addr:         a.config.Server.Address,
		Handler:      router,
		WriteTimeout: a.config.Server.WriteTimeout,
		ReadTimeout:  a.config.Server.ReadTimeout,
		IdleTimeout:  a.config.Server.IdleTimeout,
	}

	return nil
}

type Services struct {
	BookingService ports.BookingService
	QuoteService   ports.QuoteService
	ContactService ports.ContactService
}

func (a *App) setupServices() (Services, error) {
	refData, err := catalog.New()
	if err != nil {
		return Services{}, fmt.Errorf("building catalog: %w", err)
	}

	mailer := emailjs.NewClient(
		a.config.EmailJS.ServiceID,
		a.config.EmailJS.TemplateID,
		a.config.EmailJS.PublicKey,
		emailjs.WithBaseURL(a.config.EmailJS.BaseURL),
		emailjs.WithToName(a.config.Company.Name),
	)
	relay := mailrelay.NewClient(a.config.MailRelay.URL)
	links := whatsapp.NewLinkBuilder(a.config.WhatsApp.Number)
	converter := pricing.NewConverter(a.config.Pricing.EURToXOF)

	return Services{
		BookingService: service.NewBookingService(refData, mailer, links, converter, a.config.Company.Name),
		QuoteService:   service.NewQuoteService(mailer, links, a.config.Company.Name),
		ContactService: service.NewContactService(relay, links),
	}, nil
}

func (a *App) setupRouter(services Services) http.Handler {
	router := http.NewServeMux()
	const versionPrefix = "/v1"

	router.HandleFunc(versionPrefix+"/health", health.HealthGet(version))

	router.HandleFunc(versionPrefix+"/departures", utils.AllowedMethods(
		api.DeparturesHandler(services.BookingService),
		"GET",
	))
	router.HandleFunc(versionPrefix+"/destinations", utils.AllowedMethods(
		api.DestinationsHandler(services.BookingService),
		"GET",
	))
	router.HandleFunc(versionPrefix+"/bookings", utils.AllowedMethods(
		utils.AllowedContentTypes(
			api.BookingHandler(services.BookingService),
			"application/json",
		),
		"POST",
	))
	router.HandleFunc(versionPrefix+"/quotes", utils.AllowedMethods(
		utils.AllowedContentTypes(
			api.QuoteHandler(services.QuoteService),
			"application/json",
		),
		"POST",
	))
	router.HandleFunc(versionPrefix+"/contact", utils.AllowedMethods(
		utils.AllowedContentTypes(
			api.ContactHandler(services.ContactService),
			"application/json",
		),
		"POST",
	))

	// the booking site is a browser client on another origin
	c := cors.New(cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type", "Accept"},
	})
	return c.Handler(router)
}

func (a *App) Run(ctx context.Context) error {
	serverErrors := make(chan error, 1)

	go func() {
		a.log.Info("starting server", "addr", a.server.Addr)
		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case <-shutdown:
		a.log.Info("starting graceful shutdown")
		return a.Shutdown()
	case <-ctx.Done():
		return a.Shutdown()
	}
}

func (a *App) Shutdown() error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	return nil
}

func main() {
	ctx := context.Background()

	// .env is optional; real deployments set the environment directly
	godotenv.Load()

	log := logger.New(os.Getenv("DEBUG") != "")
	slog.SetDefault(log)

	cfg, err := config.NewConfig()
	if err != nil {
		log.Error("failed to load configuration", "err", err)
		os.Exit(1)
	}

	app := NewApp(cfg, log)
	if err := app.Initialize(); err != nil {
		log.Error("failed to initialize application", "err", err)
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		log.Error("application error", "err", err)
		os.Exit(1)
	}
}
