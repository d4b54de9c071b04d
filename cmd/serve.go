package cmd

import (
	"context"
	"database/sql"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/hirelink/ms-go-billing/app/client"
	"github.com/hirelink/ms-go-billing/app/controller"
	"github.com/hirelink/ms-go-billing/app/repository"
	"github.com/hirelink/ms-go-billing/app/service"
	"github.com/hirelink/ms-go-billing/config"

	_ "github.com/go-sql-driver/mysql"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  "Start the HTTP (Echo) server for the billing service.",
	Run:   runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) {
	cfg, paymentService, planService, cleanup := mustCreateServices()
	defer cleanup()

	paymentController := controller.NewPaymentController(paymentService)
	planController := controller.NewPlanController(planService)

	e := setupHTTPServer(paymentController, planController)

	go func() {
		httpAddr := net.JoinHostPort(cfg.HTTP.Host, cfg.HTTP.Port)
		logrus.WithField("addr", httpAddr).Info("Starting HTTP server")
		if err := e.Start(httpAddr); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Fatal("HTTP server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Warn("HTTP shutdown error")
	}

	logrus.Info("Server stopped")
}

func setupHTTPServer(
	paymentController *controller.PaymentController,
	planController *controller.PlanController,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogRemoteIP:  true,
		LogLatency:   true,
		LogUserAgent: true,
		LogError:     true,
		HandleError:  true,
		LogRequestID: true,
		LogValuesFunc: func(_ echo.Context, v echomiddleware.RequestLoggerValues) error {
			fields := logrus.Fields{
				"remote_ip":  v.RemoteIP,
				"host":       v.Host,
				"method":     v.Method,
				"uri":        v.URI,
				"status":     v.Status,
				"latency":    v.Latency.String(),
				"latency_ns": v.Latency.Nanoseconds(),
				"user_agent": v.UserAgent,
			}
			entry := logrus.WithFields(fields)
			if v.Error != nil {
				entry = entry.WithError(v.Error)
			}
			entry.Info("http_request")
			return nil
		},
	}))
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	e.Use(ensureRequestID())

	e.GET("/health", paymentController.Health)

	plans := e.Group("/api/v1/plan")
	plans.GET("/", planController.ListPlans)
	plans.GET("/:id", planController.GetPlan)
	plans.GET("/currency/:currency", planController.ListPlansByCurrency)
	plans.POST("/", planController.CreatePlan)
	plans.PUT("/", planController.UpdatePlan)
	plans.DELETE("/:id", planController.DeletePlan)

	payments := e.Group("/api/v1/payment")
	payments.GET("/", paymentController.ListPayments)
	payments.GET("/methods/", paymentController.ListPaymentMethods)
	payments.GET("/user/:id", paymentController.ListPaymentsByRecruiter)
	payments.GET("/:id", paymentController.GetPayment)
	payments.POST("/", paymentController.CreatePayment)

	return e
}

func ensureRequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			requestID := strings.TrimSpace(ctx.Request().Header.Get(echo.HeaderXRequestID))
			if requestID != "" {
				ctx.Response().Header().Set(echo.HeaderXRequestID, requestID)
			}
			return next(ctx)
		}
	}
}

func mustCreateServices() (*config.Config, *service.PaymentService, *service.PlanService, func()) {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}
	if err := configureLogging(cfg); err != nil {
		logrus.WithError(err).Fatal("Failed to configure logging")
	}

	db, err := sql.Open("mysql", cfg.MySQL.DSN)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to connect to database")
	}

	db.SetMaxOpenConns(cfg.MySQL.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MySQL.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.MySQL.ConnMaxLifetime)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		logrus.WithError(err).Fatal("Failed to ping database")
	}

	paymentRepo := repository.NewPaymentRepository(db)
	planRepo := repository.NewPlanRepository(db)

	recruiterClient := client.NewRecruiterClient(cfg.Clients.UserAPIBaseURL, cfg.Clients.HTTPTimeout)
	addressClient := client.NewAddressClient(cfg.Clients.AddressAPIBaseURL, cfg.Clients.HTTPTimeout)
	invoiceClient := client.NewInvoiceClient(cfg.Clients.InvoiceAPIBaseURL, cfg.Clients.HTTPTimeout)

	paymentService := service.NewPaymentService(paymentRepo, planRepo, recruiterClient, addressClient, invoiceClient)
	planService := service.NewPlanService(planRepo)

	cleanup := func() {
		if err := db.Close(); err != nil {
			logrus.WithError(err).Warn("Failed to close database")
		}
	}

	return cfg, paymentService, planService, cleanup
}

func configureLogging(cfg *config.Config) error {
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.AddHook(&serviceNameHook{serviceName: cfg.App.ServiceName})
	return nil
}

type serviceNameHook struct {
	serviceName string
}

func (h *serviceNameHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *serviceNameHook) Fire(entry *logrus.Entry) error {
	entry.Data["service"] = h.serviceName
	return nil
}
