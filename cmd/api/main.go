package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nvlaw-backend/internal/analytics"
	"nvlaw-backend/internal/cache"
	"nvlaw-backend/internal/catalog"
	"nvlaw-backend/internal/config"
	"nvlaw-backend/internal/handlers"
	"nvlaw-backend/internal/middleware"
	"nvlaw-backend/internal/notifications"
	"nvlaw-backend/internal/pages"
	"nvlaw-backend/internal/store"
	"nvlaw-backend/internal/validation"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	var cacheStore cache.Cache = cache.NewNoop()
	if cfg.RedisURL != "" || cfg.RedisAddr != "" {
		var redisCache *cache.RedisCache
		var err error
		if cfg.RedisURL != "" {
			redisCache, err = cache.NewRedisFromURL(cfg.RedisURL)
		} else {
			redisCache = cache.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		}
		if err != nil {
			logger.Error("redis connection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisCache.Ping(ctx); err != nil {
			cancel()
			logger.Error("redis connection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		cancel()
		logger.Info("redis connected")
		cacheStore = redisCache
	}

	cat := catalog.Load()
	st := store.Seeded(cfg.Timezone)
	logger.Info("store seeded", slog.Int("blog_posts", len(st.BlogPosts(context.Background()))))

	var tracker analytics.Tracker = analytics.NewNoop()
	if cfg.AnalyticsMeasurementID != "" {
		tracker = analytics.NewLogTracker(cfg.AnalyticsMeasurementID, logger)
		logger.Info("analytics enabled", slog.String("measurement_id", cfg.AnalyticsMeasurementID))
	}

	server := &handlers.Server{
		Cfg:      cfg,
		Store:    st,
		Catalog:  cat,
		Resolver: pages.NewResolver(cat, cfg.SiteBaseURL),
		Val:      validation.New(),
		Log:      logger,
		Cache:    cacheStore,
		Mailer:   notifications.NewLogMailer(logger),
		Tracker:  tracker,
	}

	r := chi.NewRouter()
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.FrontendOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "X-Request-Id"},
		MaxAge:         300,
	}))
	r.Use(chiMiddleware.Timeout(30 * time.Second))

	contactLimiter := middleware.NewRateLimiter(cfg.RateLimitContact, time.Duration(cfg.RateLimitWindowSec)*time.Second)
	appointmentsLimiter := middleware.NewRateLimiter(cfg.RateLimitAppointments, time.Duration(cfg.RateLimitWindowSec)*time.Second)

	r.Get("/healthz", server.Healthz)
	r.Route("/api", func(api chi.Router) {
		api.With(contactLimiter.Middleware).Post("/contact", server.SubmitContact)
		api.With(appointmentsLimiter.Middleware).Post("/appointments", server.SubmitAppointment)
		api.Get("/blog", server.ListBlogPosts)
		api.Get("/blog/{slug}", server.GetBlogPostBySlug)
		api.Get("/content/{family}", server.GetContentPages)
		api.Get("/content/{family}/{slug}", server.GetContentPage)
		api.Get("/pages", server.ResolvePage)
	})

	srv := &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: r,
	}

	go func() {
		logger.Info("server started", slog.String("addr", cfg.ServerAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.String("error", err.Error()))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.String("error", err.Error()))
	}
}
