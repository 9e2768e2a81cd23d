package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/anaconecta/conecta-api/internal/config"
	"github.com/anaconecta/conecta-api/internal/infra/database"
	"github.com/anaconecta/conecta-api/internal/infra/http/handlers"
	"github.com/anaconecta/conecta-api/internal/infra/http/middleware"
	"github.com/anaconecta/conecta-api/internal/infra/integration/cardpay"
	"github.com/anaconecta/conecta-api/internal/infra/integration/pixdireto"
	"github.com/anaconecta/conecta-api/internal/infra/integration/whatsapp"
	"github.com/anaconecta/conecta-api/internal/infra/mail"
	"github.com/anaconecta/conecta-api/internal/infra/queue"
	"github.com/anaconecta/conecta-api/internal/infra/worker"
	"github.com/anaconecta/conecta-api/internal/logger"
	"github.com/anaconecta/conecta-api/internal/usecase"
)

func main() {
	cfg, err := config.New(".env")
	if err != nil {
		slog.Error("erro ao carregar configuração", "error", err)
		os.Exit(1)
	}

	l, err := logger.New(cfg.Logger.Level)
	if err != nil {
		slog.Error("erro ao configurar logger", "error", err)
		os.Exit(1)
	}

	db, err := database.NewDBConnection(cfg.Postgres.DSN, cfg.Postgres.MaxConn)
	if err != nil {
		l.Error("erro ao conectar no banco", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.UpMigrations(db); err != nil {
		l.Error("erro ao rodar migrations", "error", err)
		os.Exit(1)
	}

	rabbitMQ, err := queue.NewRabbitMQ(cfg.RabbitMQ.User, cfg.RabbitMQ.Pass, cfg.RabbitMQ.Host, cfg.RabbitMQ.Port)
	if err != nil {
		l.Error("erro ao conectar no rabbitmq", "error", err)
		os.Exit(1)
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Repositórios
	clientRepo := database.NewClientRepository(db)
	initiativeRepo := database.NewInitiativeRepository(db)
	mentorshipRepo := database.NewMentorshipRepository(db)
	serviceRepo := database.NewServiceRepository(db)
	podcastRepo := database.NewPodcastRepository(db)
	paymentRepo := database.NewPaymentRepository(db)
	reportRepo := database.NewReportRepository(db)
	messageRepo := database.NewMessageRepository(db)

	// Gateways e adapters
	pixGateway := pixdireto.NewClient(cfg.Pix.APIKey, cfg.Pix.BaseURL)
	cardGateway := cardpay.NewClient(cfg.CardPay.APIKey, cfg.CardPay.BaseURL)
	whatsappClient := whatsapp.NewClient(cfg.WhatsApp.AccessToken, cfg.WhatsApp.PhoneID, cfg.WhatsApp.TemplateID)
	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
	mailSender := mail.NewEmailSender(cfg.Mail.Host, cfg.Mail.Port, cfg.Mail.User, cfg.Mail.Pass, cfg.Mail.From)

	// Workers de fundo
	queueWorker := queue.NewWorker(rabbitMQ.Ch, whatsappClient, messageRepo)
	go queueWorker.Start(queue.QueueName)

	scheduler := worker.NewWhatsAppScheduler(messageRepo, producer)
	go scheduler.Start(ctx)

	pixExpiration := worker.NewPixExpirationWorker(paymentRepo)
	go pixExpiration.Start(ctx)

	// UseCases
	clientUC := usecase.NewClientUseCase(clientRepo)
	initiativeUC := usecase.NewInitiativeUseCase(initiativeRepo)
	mentorshipUC := usecase.NewMentorshipUseCase(mentorshipRepo, clientRepo)
	portalUC := usecase.NewPortalUseCase(serviceRepo, podcastRepo, clientRepo)
	paymentUC := usecase.NewPaymentUseCase(
		paymentRepo, serviceRepo, pixGateway, cardGateway, mailSender,
		cfg.Pix.PixKey, cfg.CardPay.MaxInstallments, cfg.CardPay.InterestFreeInstallments,
	)
	exportUC := usecase.NewExportUseCase(reportRepo)
	whatsappUC := usecase.NewWhatsAppUseCase(whatsappClient, messageRepo)

	// Handlers
	clientHandler := handlers.NewClientHandler(clientUC)
	initiativeHandler := handlers.NewInitiativeHandler(initiativeUC)
	mentorshipHandler := handlers.NewMentorshipHandler(mentorshipUC)
	portalHandler := handlers.NewPortalHandler(portalUC, paymentUC)
	paymentHandler := handlers.NewPaymentHandler(paymentUC)
	exportHandler := handlers.NewExportHandler(exportUC)
	whatsappHandler := handlers.NewWhatsAppHandler(whatsappUC)
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn, handlers.GatewayStatus{
		Pix:      pixGateway.Configured(),
		CardPay:  cardGateway.Configured(),
		WhatsApp: whatsappClient.Configured(),
	})

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.RequestLogContext)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/clients", func(r chi.Router) {
			r.Get("/", clientHandler.List)
			r.Post("/", clientHandler.Create)
			r.Get("/{id}", clientHandler.Get)
			r.Put("/{id}", clientHandler.Update)
			r.Delete("/{id}", clientHandler.Delete)
		})

		r.Get("/initiative-categories", initiativeHandler.Categories)
		r.Route("/initiatives", func(r chi.Router) {
			r.Get("/", initiativeHandler.List)
			r.Post("/", initiativeHandler.Create)
			r.Get("/{id}", initiativeHandler.Get)
			r.Put("/{id}", initiativeHandler.Update)
			r.Delete("/{id}", initiativeHandler.Delete)
		})

		r.Route("/mentorships", func(r chi.Router) {
			r.Get("/", mentorshipHandler.List)
			r.Post("/", mentorshipHandler.Create)
			r.Get("/{id}", mentorshipHandler.Get)
			r.Put("/{id}", mentorshipHandler.Update)
			r.Delete("/{id}", mentorshipHandler.Delete)
		})

		r.Route("/client-portal", func(r chi.Router) {
			r.Get("/services", portalHandler.ListServices)
			r.Post("/services", portalHandler.CreateService)
			r.Get("/services/{id}", portalHandler.GetService)
			r.Post("/services/{id}/chat", portalHandler.AddChatMessage)
			r.Post("/services/{id}/approve-scope", portalHandler.ApproveScope)
			r.Post("/services/{id}/payment", portalHandler.PayService)
			r.Get("/podcasts", portalHandler.ListPodcasts)
			r.Post("/podcasts", portalHandler.CreatePodcast)
			r.Get("/podcasts/{id}", portalHandler.GetPodcast)
		})

		r.Route("/payment", func(r chi.Router) {
			r.Post("/pix/create", paymentHandler.CreatePixCharge)
			r.Get("/pix/status/{reference}", paymentHandler.PixStatus)
			r.Post("/credit-card/process", paymentHandler.ProcessCardPayment)
			r.Get("/installments", paymentHandler.Installments)
		})

		r.Post("/export/{report}", exportHandler.Export)

		r.Post("/send-whatsapp", whatsappHandler.Send)
		r.Post("/schedule-whatsapp", whatsappHandler.Schedule)
	})

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	server := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	go func() {
		l.Info("🔥 Conecta API rodando", "addr", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			l.Error("erro no servidor http", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	l.Info("⚠️ Encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		l.Error("erro no shutdown", "error", err)
	}
}
