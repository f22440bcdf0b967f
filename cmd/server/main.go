package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"resort-backend/internal/auth"
	"resort-backend/internal/cache"
	"resort-backend/internal/config"
	"resort-backend/internal/database"
	"resort-backend/internal/db"
	"resort-backend/internal/handlers"
	"resort-backend/internal/health"
	apphttp "resort-backend/internal/http"
	"resort-backend/internal/middleware"
	"resort-backend/internal/monitoring"
	"resort-backend/internal/repositories"
	"resort-backend/internal/services"
	"resort-backend/internal/storage"
)

func main() {
	migrateOnly := flag.Bool("migrate", false, "run database migrations and exit")
	monitoringPort := flag.Int("monitoring-port", 9090, "port for the internal ops dashboard")
	flag.Parse()

	cfg := config.Load()

	pool := db.Connect(cfg)
	defer pool.Close()

	migrator := database.NewMigrator(pool)
	if err := migrator.RunMigrations(context.Background()); err != nil {
		log.Fatalf("Migrations failed: %v", err)
	}
	if *migrateOnly {
		return
	}

	if err := cache.Init(); err != nil {
		log.Printf("[Cache] Redis unavailable, running without cache: %v", err)
	}

	// Object storage is optional; photo endpoints report it when disabled
	objectStore, err := storage.NewObjectStore(cfg)
	if err != nil {
		log.Printf("[Storage] Photo storage disabled: %v", err)
		objectStore = nil
	}

	jwtManager := auth.NewJWTManager(cfg)

	// Repositories
	userRepo := repositories.NewUserRepository(pool)
	propertyTypeRepo := repositories.NewPropertyTypeRepository(pool)
	agentRepo := repositories.NewAgentRepository(pool)
	overrideRepo := repositories.NewCommissionOverrideRepository(pool)
	bookingRepo := repositories.NewBookingRequestRepository(pool)
	paymentRepo := repositories.NewPaymentRepository(pool)
	settingRepo := repositories.NewSettingRepository(pool)
	serviceRequestRepo := repositories.NewServiceRequestRepository(pool)
	offerRepo := repositories.NewSpecialOfferRepository(pool)
	notificationRepo := repositories.NewNotificationRepository(pool)
	auditRepo := repositories.NewAuditRepository(pool)
	transactionRepo := repositories.NewOnlineTransactionRepository(pool)
	photoRepo := repositories.NewPropertyPhotoRepository(pool)
	totpRepo := repositories.NewTOTPRepository(pool)

	// Services
	totpService := services.NewTOTPService(userRepo, totpRepo)
	userService := services.NewUserService(userRepo, auditRepo, totpService, jwtManager)
	auditService := services.NewAuditService(auditRepo)
	propertyTypeService := services.NewPropertyTypeService(propertyTypeRepo)
	agentService := services.NewAgentService(agentRepo, notificationRepo)
	bookingService := services.NewBookingService(bookingRepo, notificationRepo)
	paymentService := services.NewPaymentService(paymentRepo, settingRepo)
	receiptService := services.NewReceiptService(paymentRepo, bookingRepo)
	serviceRequestService := services.NewServiceRequestService(serviceRequestRepo)
	offerService := services.NewOfferService(offerRepo, agentRepo, notificationRepo)
	overrideService := services.NewOverrideService(overrideRepo)
	photoService := services.NewPhotoService(photoRepo, objectStore)
	razorpayService := services.NewRazorpayService(cfg.Razorpay.KeyID, cfg.Razorpay.KeySecret, transactionRepo, bookingRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(userService)
	userHandler := handlers.NewUserHandler(userService, auditService)
	propertyTypeHandler := handlers.NewPropertyTypeHandler(propertyTypeService, auditService)
	photoHandler := handlers.NewPhotoHandler(photoService, auditService)
	agentHandler := handlers.NewAgentHandler(agentService, auditService)
	overrideHandler := handlers.NewOverrideHandler(overrideService, auditService)
	bookingHandler := handlers.NewBookingHandler(bookingService, auditService)
	paymentHandler := handlers.NewPaymentHandler(paymentService, receiptService, auditService)
	serviceRequestHandler := handlers.NewServiceRequestHandler(serviceRequestService, auditService)
	offerHandler := handlers.NewOfferHandler(offerService, auditService)
	notificationHandler := handlers.NewNotificationHandler(notificationRepo)
	razorpayHandler := handlers.NewRazorpayHandler(razorpayService)
	totpHandler := handlers.NewTOTPHandler(totpService, userService)
	auditHandler := handlers.NewAuditHandler(auditService)
	healthHandler := handlers.NewHealthHandler(health.NewHealthChecker(pool))

	authMiddleware := middleware.NewAuthMiddleware(jwtManager, userRepo)

	router := apphttp.NewRouter(
		authHandler,
		userHandler,
		propertyTypeHandler,
		photoHandler,
		agentHandler,
		overrideHandler,
		bookingHandler,
		paymentHandler,
		serviceRequestHandler,
		offerHandler,
		notificationHandler,
		razorpayHandler,
		totpHandler,
		auditHandler,
		healthHandler,
		authMiddleware,
	)

	corsHandler := middleware.NewCORS(cfg)(router)

	// Internal ops dashboard on its own port
	monitoringServer := monitoring.NewMonitoringServer(pool, *monitoringPort)
	go monitoringServer.Start()

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      corsHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server listening on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Forced shutdown: %v", err)
	}
}
