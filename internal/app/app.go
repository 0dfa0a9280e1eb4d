package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/campventure/summer-camp-server/internal/domain"
	"github.com/campventure/summer-camp-server/internal/payment"
	"github.com/campventure/summer-camp-server/internal/repository"
	"github.com/campventure/summer-camp-server/internal/token"
	appvalidator "github.com/campventure/summer-camp-server/internal/validator"
	"github.com/campventure/summer-camp-server/internal/vcs"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"
	"github.com/riandyrn/otelchi"
	"github.com/stripe/stripe-go/v82"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const serviceName = "summer-camp-api"

var (
	version = vcs.Version()
)

type Application struct {
	config     Config
	logger     *slog.Logger
	validator  *validator.Validate
	tokenMaker *token.Maker

	userRepo       domain.UserRepository
	classRepo      domain.ClassRepository
	instructorRepo domain.InstructorRepository
	cartRepo       domain.CartRepository
	paymentRepo    domain.PaymentRepository

	paymentProvider domain.PaymentProvider

	checkoutSessionsCreated metric.Int64Counter
	webhookEventsReceived   metric.Int64Counter
}

type Config struct {
	Port             int
	Env              string
	TrustedOrigins   []string
	OtelCollectorUrl string
	DB               DBConfig
	JWT              JWTConfig
	Stripe           StripeConfig
}

type DBConfig struct {
	URI      string
	Database string
}

type JWTConfig struct {
	Secret string
	TTL    time.Duration
}

type StripeConfig struct {
	SecretKey     string
	WebhookSecret string
	SuccessUrl    string
	CancelUrl     string
	Currency      string
}

func Run() error {
	var cfg Config

	flag.IntVar(&cfg.Port, "port", envInt("PORT", 5000), "server port")
	flag.StringVar(&cfg.Env, "env", envString("ENV", "dev"), "Environment (dev|staging|prod)")

	flag.StringVar(&cfg.DB.URI, "db-uri", os.Getenv("MONGODB_URI"), "MongoDB connection URI")
	flag.StringVar(&cfg.DB.Database, "db-name", envString("MONGODB_DATABASE", "summer-camp"), "MongoDB database name")

	flag.StringVar(&cfg.JWT.Secret, "jwt-secret", os.Getenv("ACCESS_TOKEN_SECRET"), "JWT signing secret")
	flag.DurationVar(&cfg.JWT.TTL, "jwt-ttl", time.Hour, "JWT time to live")

	flag.StringVar(&cfg.Stripe.SecretKey, "stripe-key", os.Getenv("STRIPE_SECRET_KEY"), "Stripe secret key")
	flag.StringVar(&cfg.Stripe.WebhookSecret, "stripe-webhook-secret", os.Getenv("STRIPE_WEBHOOK_SECRET"), "Stripe webhook signing secret")
	flag.StringVar(&cfg.Stripe.SuccessUrl, "stripe-success-url",
		envString("STRIPE_SUCCESS_URL", "http://localhost:5173/success"), "Stripe payment success page")
	flag.StringVar(&cfg.Stripe.CancelUrl, "stripe-cancel-url",
		envString("STRIPE_CANCEL_URL", "http://localhost:5173/cancel"), "Stripe payment cancel page")
	flag.StringVar(&cfg.Stripe.Currency, "stripe-currency", envString("STRIPE_CURRENCY", "usd"), "Stripe charge currency")

	trustedOrigins := flag.String("cors-trusted-origins", envString("CORS_TRUSTED_ORIGINS", "http://localhost:5173"),
		"Trusted CORS origins (comma separated)")

	flag.StringVar(&cfg.OtelCollectorUrl, "otel-collector-url", os.Getenv("OTEL_COLLECTOR_URL"), "OpenTelemetry collector URL")

	displayVersion := flag.Bool("version", false, "Display version and exit")

	flag.Parse()

	cfg.TrustedOrigins = strings.Split(*trustedOrigins, ",")

	if *displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	stripe.Key = cfg.Stripe.SecretKey

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	client, err := newMongoClient(cfg)
	if err != nil {
		return err
	}
	defer client.Disconnect(context.Background())

	app := NewApplication(cfg, logger, client)

	shutdownTelemetry, err := app.InitTelemetry()
	if err != nil {
		return err
	}
	defer shutdownTelemetry(context.Background())

	return app.Serve()
}

// NewApplication wires the production dependencies: Mongo-backed
// repositories and the Stripe payment provider.
func NewApplication(cfg Config, logger *slog.Logger, client *mongo.Client) *Application {
	db := client.Database(cfg.DB.Database)

	return NewApp(
		cfg,
		logger,
		appvalidator.NewValidator(),
		repository.NewMongoUserRepository(db),
		repository.NewMongoClassRepository(db),
		repository.NewMongoInstructorRepository(db),
		repository.NewMongoCartRepository(db),
		repository.NewMongoPaymentRepository(db),
		payment.NewStripePaymentProvider(
			cfg.Stripe.SuccessUrl,
			cfg.Stripe.CancelUrl,
			cfg.Stripe.Currency,
			cfg.Stripe.WebhookSecret,
		),
	)
}

func NewApp(
	cfg Config,
	logger *slog.Logger,
	validator *validator.Validate,
	userRepo domain.UserRepository,
	classRepo domain.ClassRepository,
	instructorRepo domain.InstructorRepository,
	cartRepo domain.CartRepository,
	paymentRepo domain.PaymentRepository,
	paymentProvider domain.PaymentProvider,
) *Application {
	app := &Application{
		config:     cfg,
		logger:     logger,
		validator:  validator,
		tokenMaker: token.NewMaker(cfg.JWT.Secret, cfg.JWT.TTL),

		userRepo:       userRepo,
		classRepo:      classRepo,
		instructorRepo: instructorRepo,
		cartRepo:       cartRepo,
		paymentRepo:    paymentRepo,

		paymentProvider: paymentProvider,
	}

	app.initMetrics()

	return app
}

func (app *Application) initMetrics() {
	meter := otel.Meter(serviceName)

	var err error

	app.checkoutSessionsCreated, err = meter.Int64Counter("checkout_sessions_created_total",
		metric.WithDescription("Number of gateway checkout sessions created"))
	if err != nil {
		app.logger.Error("failed to create checkout sessions counter", "error", err)
	}

	app.webhookEventsReceived, err = meter.Int64Counter("webhook_events_received_total",
		metric.WithDescription("Number of verified webhook events received"))
	if err != nil {
		app.logger.Error("failed to create webhook events counter", "error", err)
	}
}

func newMongoClient(cfg Config) (*mongo.Client, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(cfg.DB.URI).SetServerAPIOptions(serverAPI)

	client, err := mongo.Connect(context.Background(), opts)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = client.Ping(ctx, nil)
	if err != nil {
		client.Disconnect(context.Background())
		return nil, err
	}

	return client, nil
}

func (app *Application) Serve() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", app.config.Port),
		Handler:      app.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelDebug),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		err := srv.Shutdown(ctx)
		if err != nil {
			shutdownError <- err
		}

		shutdownError <- nil
	}()

	app.logger.Info("starting server", "addr", srv.Addr, "env", app.config.Env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", srv.Addr)

	return nil
}

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)

	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(otelchi.Middleware(serviceName, otelchi.WithChiRoutes(r)))
	r.Use(app.requestLogger)
	r.Use(app.recoverPanic)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   app.config.TrustedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Get("/health", app.HealthcheckHandler)
	r.Post("/jwt", app.CreateTokenHandler)

	r.Post("/users", app.CreateUserHandler)

	r.Group(func(r chi.Router) {
		r.Use(app.requireAuthentication)

		r.Get("/users/admin/{email}", app.CheckAdminHandler)
		r.Get("/users/instructor/{email}", app.CheckInstructorHandler)
		r.Get("/payment-history/{email}", app.PaymentHistoryHandler)

		r.With(app.requireRole(domain.RoleAdmin, domain.RoleInstructor)).Post("/classes", app.CreateClassHandler)

		r.Group(func(r chi.Router) {
			r.Use(app.requireRole(domain.RoleAdmin))

			r.Get("/users", app.GetUsersHandler)
			r.Delete("/users/{id}", app.DeleteUserHandler)
			r.Patch("/users/admin/{id}", app.PromoteToAdminHandler)
			r.Patch("/users/instructor/{id}", app.PromoteToInstructorHandler)
			r.Delete("/classes/{id}", app.DeleteClassHandler)
			r.Get("/all-payments", app.GetAllPaymentsHandler)
		})
	})

	r.Get("/classes", app.GetClassesHandler)
	r.Get("/instructors", app.GetInstructorsHandler)

	r.Get("/carts", app.GetCartItemsHandler)
	r.Post("/carts", app.AddCartItemHandler)
	r.Delete("/carts/{id}", app.DeleteCartItemHandler)

	r.Post("/create-checkout-session", app.CreateCheckoutSessionHandler)
	r.Post("/webhook", app.StripeWebhookHandler)

	return r
}

func envString(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return fallback
}

func envInt(key string, fallback int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}

	return value
}
