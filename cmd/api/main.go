package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rabbitmq/amqp091-go"

	"github.com/PescadorStudios/Vlado/internal/infra/database"
	"github.com/PescadorStudios/Vlado/internal/infra/http/handlers"
	"github.com/PescadorStudios/Vlado/internal/infra/http/middleware"
	"github.com/PescadorStudios/Vlado/internal/infra/http/ws"
	"github.com/PescadorStudios/Vlado/internal/infra/integration/whatsapp"
	"github.com/PescadorStudios/Vlado/internal/infra/mail"
	"github.com/PescadorStudios/Vlado/internal/infra/queue"
	"github.com/PescadorStudios/Vlado/internal/usecase"
)

func main() {
	godotenv.Load()

	mongoClient, err := database.NewMongoConnection(os.Getenv("MONGO_URI"))
	if err != nil {
		log.Fatalf("❌ No se pudo conectar a MongoDB: %v", err)
	}
	defer mongoClient.Disconnect(context.Background())

	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "vladimir_funnel"
	}

	window := usecase.DefaultSessionWindow
	if raw := os.Getenv("SESSION_WINDOW"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			window = n
		}
	}

	// 1. Repositorios
	sessionRepo := database.NewSessionRepository(mongoClient, dbName)
	leadRepo := database.NewLeadRepository(mongoClient, dbName)
	bienestarRepo := database.NewBienestarRepository(mongoClient, dbName)

	// 2. Cola de notificaciones (opcional: el embudo sigue vivo sin ella)
	var producer usecase.QueueProducerInterface
	rabbitMQ, err := queue.NewRabbitMQ(
		os.Getenv("RABBITMQ_USER"), os.Getenv("RABBITMQ_PASS"),
		os.Getenv("RABBITMQ_HOST"), os.Getenv("RABBITMQ_PORT"),
	)
	if err != nil {
		log.Printf("⚠️ RabbitMQ no disponible, notificaciones apagadas: %v", err)
	} else {
		defer rabbitMQ.Conn.Close()
		defer rabbitMQ.Ch.Close()
		producer = queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)

		// 3. Worker: bienvenidas por WhatsApp y alertas de leads por email
		mailPort, _ := strconv.Atoi(os.Getenv("MAIL_PORT"))
		if mailPort == 0 {
			mailPort = 587
		}
		mailSender := mail.NewEmailSender(
			os.Getenv("MAIL_HOST"), mailPort,
			os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
			os.Getenv("MAIL_CAMPAIGN_INBOX"),
		)
		waClient := whatsapp.NewClient()

		worker := queue.NewWorker(rabbitMQ.Ch, waClient, mailSender, os.Getenv("PUBLIC_BASE_URL"))
		go worker.Start(queue.QueueName)
	}

	// 4. UseCases
	trackUC := usecase.NewTrackStepUseCase(sessionRepo)
	leadUC := usecase.NewCaptureLeadUseCase(leadRepo, producer)
	registerUC := usecase.NewRegisterUserUseCase(bienestarRepo, producer)
	loginUC := usecase.NewLoginUseCase(bienestarRepo)
	dashboardUC := usecase.NewReferralDashboardUseCase(bienestarRepo)
	metricsUC := usecase.NewDashboardMetricsUseCase(sessionRepo, leadRepo, bienestarRepo, window)

	// 5. Handlers
	trackHandler := handlers.NewTrackHandler(trackUC)
	leadHandler := handlers.NewLeadHandler(leadUC)
	bienestarHandler := handlers.NewBienestarHandler(registerUC, loginUC, dashboardUC, bienestarRepo)
	adminHandler := handlers.NewAdminHandler(metricsUC, sessionRepo, leadRepo, bienestarRepo, window)

	var rabbitConn *amqp091.Connection
	if rabbitMQ != nil {
		rabbitConn = rabbitMQ.Conn
	}
	healthHandler := handlers.NewHealthHandler(mongoClient, rabbitConn)

	// 6. Hub en vivo: un watcher por colección alimenta los dashboards
	hub := ws.NewHub()
	startWatcher := func(name string, open func() (<-chan database.ChangeEvent, func(), error)) {
		events, cancel, err := open()
		if err != nil {
			log.Printf("⚠️ Sin change stream para %s: %v", name, err)
			return
		}
		_ = cancel // vive lo que vive el proceso
		go hub.Pump(events)
	}
	startWatcher(database.CollectionSessions, sessionRepo.Watch)
	startWatcher(database.CollectionLeads, leadRepo.Watch)
	startWatcher(database.CollectionBienestar, bienestarRepo.Watch)

	// 7. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "X-Admin-Token"},
	}))

	r.Post("/api/track", trackHandler.Handle)
	r.Post("/api/leads", leadHandler.CaptureLead)

	r.Route("/api/bienestar", func(r chi.Router) {
		r.Post("/register", bienestarHandler.Register)
		r.Get("/login", bienestarHandler.Login)
		r.Get("/users/{id}/referrals", bienestarHandler.Referrals)
	})
	r.Get("/ws/bienestar/{id}", bienestarHandler.LiveReferrals)

	adminToken := os.Getenv("ADMIN_TOKEN")
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(middleware.AdminAuth(adminToken))
		r.Get("/overview", adminHandler.Overview)
		r.Get("/sessions", adminHandler.ListSessions)
		r.Get("/leads", adminHandler.ListLeads)
		r.Get("/users", adminHandler.ListUsers)
	})
	r.With(middleware.AdminAuth(adminToken)).Get("/ws/admin", hub.Handler)

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🔥 Backend Vladimir corriendo en el puerto :%s", port)
	http.ListenAndServe(":"+port, r)
}
