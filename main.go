package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"barbershop/config"
	"barbershop/database"
	kvRepo "barbershop/database/repository/kv"
	recordsRepo "barbershop/database/repository/records"
	"barbershop/handlers"
	"barbershop/middleware"
	"barbershop/models"
	"barbershop/routes"
	"barbershop/services/booking"
	"barbershop/services/calendar"
	"barbershop/services/catalog"
	"barbershop/services/identity"
	"barbershop/services/preferences"
	"barbershop/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	cfg := config.AppConfig

	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()

	// Per-client state store.
	var kv kvRepo.Store
	if err := utils.InitStateCache(); err != nil {
		if config.IsProduction() {
			logger.Sugar().Fatalf("main: state store unavailable: %v", err)
		}
		logger.Warn("main: Redis unavailable, keeping client state in memory", zap.Error(err))
		kv = kvRepo.NewMemoryStore()
	} else {
		kv = kvRepo.NewRedisStore(utils.GetStateClient())
	}

	// Identity and the records sink. Either may be missing; the API then
	// reports an advisory and refuses confirmations.
	fb, err := utils.FirebaseInit(rootCtx)
	if err != nil {
		logger.Error("main: firebase unavailable", zap.Error(err))
		fb = &utils.FirebaseClients{}
	}
	defer fb.Close()

	var records recordsRepo.RecordRepository
	var mongoClient *mongo.Client
	switch {
	case !cfg.PersistenceConfigured():
		logger.Warn("main: no records backend configured, bookings cannot be confirmed",
			zap.String("backend", cfg.RecordsBackend))
	case cfg.UsesMongo():
		if err := database.InitDB(rootCtx); err != nil {
			logger.Error("main: MongoDB unavailable", zap.Error(err))
			break
		}
		mongoClient = database.MongoClient
		records = recordsRepo.NewMongoRecordRepo(database.Database())
	case fb.Firestore != nil:
		records = recordsRepo.NewFirestoreRecordRepo(fb.Firestore)
	}

	utils.StartHealthMonitor(rootCtx, utils.GetStateClient(), mongoClient, time.Minute)

	// services.
	cat := catalog.NewStaticCatalog()
	picker := calendar.NewPicker(cfg.ShopLocation())
	prefs := &preferences.Service{
		KV:              kv,
		DefaultLanguage: models.ParseLanguage(cfg.DefaultLanguage, models.LanguageES),
		TTL:             cfg.StateTTL,
		Logger:          logger,
	}
	submission := &booking.DefaultOrderSubmission{Catalog: cat, Logger: logger}
	if records != nil {
		submission.Records = records
	}
	bookingService := &booking.DefaultBookingService{
		KV:         kv,
		Catalog:    cat,
		Picker:     picker,
		Submission: submission,
		CartTTL:    cfg.StateTTL,
		DraftTTL:   cfg.BookingDraftTTL,
		Logger:     logger,
	}

	deps := handlers.Deps{
		Catalog:    cat,
		Picker:     picker,
		Booking:    bookingService,
		Submission: submission,
		Prefs:      prefs,
		Identity:   identity.NewFirebaseProvider(fb.Auth),
		AdminEmail: cfg.AdminEmail,
		Status: &handlers.StatusHandler{
			IdentityConfigured:    fb.Auth != nil,
			PersistenceConfigured: records != nil,
			RecordsBackend:        cfg.RecordsBackend,
		},
	}
	if records != nil {
		deps.Records = records
	}

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin))

	routes.RegisterRoutes(router, handlers.NewHandlerBundle(deps), cfg.Origins())

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              "0.0.0.0:" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")
	stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}
	if mongoClient != nil {
		_ = mongoClient.Disconnect(ctx)
	}
	_ = logger.Sync()

	logger.Sugar().Info("main: server stopped gracefully")
}
