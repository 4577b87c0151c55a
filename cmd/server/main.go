package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hotelchat/infrastructure/bookingapi"
	"hotelchat/infrastructure/cache"
	"hotelchat/infrastructure/db"
	"hotelchat/infrastructure/ws"
	httpHandler "hotelchat/internal/delivery/http"
	"hotelchat/internal/delivery/websocket"
	"hotelchat/internal/repository"
	"hotelchat/internal/usecase"
	"hotelchat/pkg/config"
	"hotelchat/pkg/jwt"
	"hotelchat/pkg/logger"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
)

const selectionTTL = 30 * 24 * time.Hour

func main() {
	if err := run(); err != nil {
		logger.Error("server: %v", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger.SetDebug(cfg.IsDevelopment())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	apiClient := bookingapi.NewClient(cfg.BookingApiUrl, cfg.BookingApiTimeout)

	// Cache and hub share Redis when it is configured.
	var store cache.Cache
	var hub ws.IHub
	if cfg.RedisAddr != "" {
		redisCache, err := cache.NewRedisCache(ctx, cfg.RedisAddr)
		if err != nil {
			return err
		}
		defer redisCache.Close()

		serverId := cfg.ServerId
		if serverId == "" {
			serverId = "server-" + uuid.NewString()[:8]
		}
		logger.Info("Using Redis at %s with server ID: %s", cfg.RedisAddr, serverId)

		store = redisCache
		hub = ws.NewRedisHub(redisCache.Client(), serverId)
	} else {
		logger.Info("Using in-memory cache and hub (single server)")
		memCache := cache.NewMemCache(time.Minute)
		defer memCache.Close()

		store = memCache
		hub = ws.NewHub()
	}

	checks := map[string]httpHandler.Pinger{"cache": store}

	var (
		messageRepo repository.MessageRepository
		userRepo    repository.UserRepository
		hotelRepo   repository.HotelRepository
	)
	if cfg.MongoDbUri != "" {
		mongoDb, err := db.NewMongoStore(ctx, cfg.MongoDbUri, cfg.MongoDbDatabase)
		if err != nil {
			return err
		}
		defer mongoDb.Close(context.Background())

		if err := mongoDb.EnsureIndexes(ctx); err != nil {
			logger.Warn("mongo indexes: %v", err)
		}
		logger.Info("Reading booking data from MongoDB %s", cfg.MongoDbDatabase)
		checks["mongo"] = mongoDb

		messageRepo = repository.NewMongoMessageRepository(mongoDb.DB)
		userRepo = repository.NewMongoUserRepository(mongoDb.DB)
		hotelRepo = repository.NewMongoHotelRepository(mongoDb.DB)
	} else {
		logger.Info("Reading booking data from %s", cfg.BookingApiUrl)

		messageRepo = repository.NewApiMessageRepository(apiClient)
		userRepo = repository.NewApiUserRepository(apiClient)
		hotelRepo = repository.NewApiHotelRepository(apiClient)
	}

	nameRepo := repository.NewNameRepository(store, userRepo, hotelRepo, cfg.NameCacheTTL)
	selectionRepo := repository.NewSelectionRepository(store, selectionTTL)
	messageWriteRepo := repository.NewApiMessageWriteRepository(apiClient)
	favoriteRepo := repository.NewApiFavoriteRepository(apiClient)

	jwtManager := jwt.NewJWTManager(cfg.JWTSecret, 15*time.Minute)

	// Initialize use cases
	inboxUc := usecase.NewInboxUsecase(messageRepo, nameRepo, selectionRepo, usecase.InboxOptions{
		RefreshTitleOnNewData: cfg.RefreshTitleOnNewData,
	})
	messageUc := usecase.NewMessageUseCase(messageWriteRepo, websocket.NewHubNotifier(hub))
	favoriteUc := usecase.NewFavoriteUsecase(favoriteRepo)
	hotelUc := usecase.NewHotelUsecase(hotelRepo, messageUc)

	go hub.Run(ctx)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.CorsOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize handlers
	websocketH := websocket.NewWebsocketHandler(hub, jwtManager, inboxUc, cfg.CorsOrigin)
	httpH := httpHandler.NewHttpHandler(inboxUc, messageUc, favoriteUc, hotelUc, checks)
	authMiddleware := httpHandler.NewAuthMiddleware(jwtManager)

	httpHandler.MapHttpRoutes(router, httpH, websocketH, authMiddleware)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server is running on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
