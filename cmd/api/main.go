package main

import (
	"context"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/anvika-estates/crm-backend/internal/infra/database"
	"github.com/anvika-estates/crm-backend/internal/infra/http/handlers"
	"github.com/anvika-estates/crm-backend/internal/infra/http/middleware"
	"github.com/anvika-estates/crm-backend/internal/infra/integration/gemini"
	"github.com/anvika-estates/crm-backend/internal/infra/mail"
	"github.com/anvika-estates/crm-backend/internal/infra/pdf"
	"github.com/anvika-estates/crm-backend/internal/infra/queue"
	"github.com/anvika-estates/crm-backend/internal/infra/worker"
	"github.com/anvika-estates/crm-backend/internal/usecase"
)

func main() {
	godotenv.Load()

	zl, _ := zap.NewProduction()
	defer zl.Sync()
	log := zl.Sugar()

	ctx := context.Background()

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatalw("database unreachable", "err", err)
	}
	defer db.Close()

	rabbitMQ, err := queue.NewRabbitMQ(
		envOr("RABBITMQ_USER", "guest"),
		envOr("RABBITMQ_PASS", "guest"),
		envOr("RABBITMQ_HOST", "localhost"),
		envOr("RABBITMQ_PORT", "5672"),
	)
	if err != nil {
		log.Fatalw("rabbitmq unreachable", "err", err)
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	// 1. Repositories
	leadRepo := database.NewLeadRepository(db)
	apptRepo := database.NewAppointmentRepository(db)
	followUpRepo := database.NewFollowUpRepository(db)
	projectRepo := database.NewProjectRepository(db)
	plotRepo := database.NewPlotRepository(db)

	// 2. Gateways and adapters
	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
	mailPort, _ := strconv.Atoi(envOr("MAIL_PORT", "587"))
	mailSender := mail.NewEmailSender(
		os.Getenv("MAIL_HOST"), mailPort,
		os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
		envOr("MAIL_FROM", "no-reply@anvika-estates.in"),
	)

	advisor, err := gemini.NewClient(ctx, os.Getenv("GEMINI_API_KEY"), os.Getenv("GEMINI_MODEL"))
	if err != nil {
		log.Fatalw("gemini client init failed", "err", err)
	}

	renderer, err := pdf.NewRenderer()
	if err != nil {
		log.Fatalw("pdf renderer init failed", "err", err)
	}
	defer renderer.Close()

	// 3. Workers (scan publishes reminders, consumer sends the emails)
	scanWorker := worker.NewReminderScanWorker(apptRepo, producer, log)
	go scanWorker.Start(ctx)

	consumer := queue.NewReminderConsumer(rabbitMQ.Ch, leadRepo, apptRepo, mailSender, log)
	go consumer.Start(queue.QueueName)

	// 4. Services
	leadService := usecase.NewLeadService(leadRepo)
	apptService := usecase.NewAppointmentService(apptRepo)
	followUpService := usecase.NewFollowUpService(followUpRepo)
	dashboardService := usecase.NewDashboardService(leadRepo, apptRepo, followUpRepo)
	recommendService := usecase.NewRecommendationService(plotRepo, advisor)

	// 5. Handlers
	leadHandler := handlers.NewLeadHandler(leadService, dashboardService, log)
	apptHandler := handlers.NewAppointmentHandler(apptService, log)
	followUpHandler := handlers.NewFollowUpHandler(followUpService, log)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, log)
	recommendationHandler := handlers.NewRecommendationHandler(recommendService, log)
	projectHandler := handlers.NewProjectHandler(projectRepo, plotRepo, pdf.NewBrochureComposer(), renderer, log)
	plotHandler := handlers.NewPlotHandler(plotRepo, log)
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn)

	// 6. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: strings.Split(envOr("CORS_ORIGINS", "http://localhost:5173"), ","),
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	r.Route("/api", func(r chi.Router) {
		r.Route("/leads", leadHandler.Routes)
		r.Route("/appointments", apptHandler.Routes)
		r.Route("/follow-ups", followUpHandler.Routes)
		r.Route("/dashboard", dashboardHandler.Routes)
		r.Post("/recommendations", recommendationHandler.Handle)
		r.Route("/projects", projectHandler.Routes)
		r.Get("/plots", plotHandler.List)
	})
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	port := ":" + envOr("PORT", "8080")
	log.Infow("🔥 CRM backend listening", "port", port)
	if err := http.ListenAndServe(port, r); err != nil {
		log.Fatalw("server stopped", "err", err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
