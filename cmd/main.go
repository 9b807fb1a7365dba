package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-AdminConsole/internal/api/handlers"
	addLabItemHandler "github.com/m04kA/SMC-AdminConsole/internal/api/handlers/add_lab_item"
	askPartnerConfirmHandler "github.com/m04kA/SMC-AdminConsole/internal/api/handlers/ask_partner_confirm"
	cancelPartnerConfirmHandler "github.com/m04kA/SMC-AdminConsole/internal/api/handlers/cancel_partner_confirm"
	createResourceHandler "github.com/m04kA/SMC-AdminConsole/internal/api/handlers/create_resource"
	deletePhlebotomistHandler "github.com/m04kA/SMC-AdminConsole/internal/api/handlers/delete_phlebotomist"
	getAuditHandler "github.com/m04kA/SMC-AdminConsole/internal/api/handlers/get_audit"
	getDashboardHandler "github.com/m04kA/SMC-AdminConsole/internal/api/handlers/get_dashboard"
	getFormHandler "github.com/m04kA/SMC-AdminConsole/internal/api/handlers/get_form"
	getSessionHandler "github.com/m04kA/SMC-AdminConsole/internal/api/handlers/get_session"
	listResourceHandler "github.com/m04kA/SMC-AdminConsole/internal/api/handlers/list_resource"
	loginHandler "github.com/m04kA/SMC-AdminConsole/internal/api/handlers/login"
	logoutHandler "github.com/m04kA/SMC-AdminConsole/internal/api/handlers/logout"
	performPartnerActionHandler "github.com/m04kA/SMC-AdminConsole/internal/api/handlers/perform_partner_action"
	refreshResourceHandler "github.com/m04kA/SMC-AdminConsole/internal/api/handlers/refresh_resource"
	togglePhlebotomistHandler "github.com/m04kA/SMC-AdminConsole/internal/api/handlers/toggle_phlebotomist"
	uploadPricingHandler "github.com/m04kA/SMC-AdminConsole/internal/api/handlers/upload_pricing"
	"github.com/m04kA/SMC-AdminConsole/internal/api/middleware"
	"github.com/m04kA/SMC-AdminConsole/internal/config"
	"github.com/m04kA/SMC-AdminConsole/internal/domain"
	"github.com/m04kA/SMC-AdminConsole/internal/form"
	"github.com/m04kA/SMC-AdminConsole/internal/infra/archive"
	auditRepo "github.com/m04kA/SMC-AdminConsole/internal/infra/storage/audit"
	"github.com/m04kA/SMC-AdminConsole/internal/integrations/backend"
	"github.com/m04kA/SMC-AdminConsole/internal/service/dashboard"
	"github.com/m04kA/SMC-AdminConsole/internal/service/labs"
	"github.com/m04kA/SMC-AdminConsole/internal/service/onboarding"
	"github.com/m04kA/SMC-AdminConsole/internal/service/partners"
	"github.com/m04kA/SMC-AdminConsole/internal/service/phlebotomists"
	"github.com/m04kA/SMC-AdminConsole/internal/service/pricing"
	"github.com/m04kA/SMC-AdminConsole/internal/service/tracker"
	"github.com/m04kA/SMC-AdminConsole/internal/session"
	resourcesUC "github.com/m04kA/SMC-AdminConsole/internal/usecase/resources"
	"github.com/m04kA/SMC-AdminConsole/pkg/logger"
	"github.com/m04kA/SMC-AdminConsole/pkg/metrics"
)

// auditStore журнал действий: PostgreSQL или заглушка
type auditStore interface {
	Record(ctx context.Context, entry domain.AuditEntry) error
	Recent(ctx context.Context, limit int) ([]domain.AuditEntry, error)
}

const (
	promoCodesResource = "promo-codes"

	// Ограничение на попытки входа с одного IP
	sessionRateLimit  = 10
	sessionRateWindow = time.Minute

	// Вход без токена: единственный публичный маршрут /api/v1
	routeLogin = "login"

	pruneInterval = 24 * time.Hour
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-AdminConsole...")
	log.Info("Configuration loaded from config.toml")

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName, prometheus.DefaultRegisterer)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Хранилище токена администратора
	var store session.TokenStore
	switch cfg.Session.Driver {
	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatal("Failed to ping redis: %v", err)
		}
		store = session.NewRedisStore(rdb, cfg.Redis.KeyPrefix)
		log.Info("Session store: redis (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)
	default:
		store = session.NewFileStore(cfg.Session.File)
		log.Info("Session store: file (%s)", cfg.Session.File)
	}
	sess := session.New(store, cfg.Session.TokenKey, cfg.Session.LegacyKey, log)

	// Клиент backend платформы
	client := backend.NewClient(
		cfg.Backend.URL,
		time.Duration(cfg.Backend.Timeout)*time.Second,
		sess,
		log,
		metricsCollector,
	)
	log.Info("Backend client initialized (url=%s, timeout=%ds)", cfg.Backend.URL, cfg.Backend.Timeout)

	// Журнал действий (PostgreSQL, если включен)
	var audit auditStore = auditRepo.Nop{}
	if cfg.Audit.Enabled {
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.PingContext(ctx); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}

		repo := auditRepo.NewRepository(db)
		if err := repo.EnsureSchema(ctx); err != nil {
			log.Fatal("Failed to prepare audit table: %v", err)
		}
		if cfg.Audit.RetentionDays > 0 {
			go pruneAudit(ctx, repo, cfg.Audit.RetentionDays, log)
		}
		audit = repo
		log.Info("Audit log enabled (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
	}

	// Архив прайс-листов (S3/MinIO, если включен)
	var pricingArchive pricing.Archive
	if cfg.Archive.Enabled {
		minioClient, err := archive.NewMinio(archive.Config{
			Endpoint:  cfg.Archive.Endpoint,
			AccessKey: cfg.Archive.AccessKey,
			SecretKey: cfg.Archive.SecretKey,
			Bucket:    cfg.Archive.Bucket,
			UseSSL:    cfg.Archive.UseSSL,
		})
		if err != nil {
			log.Fatal("Failed to create archive client: %v", err)
		}
		archiveStore := archive.NewStore(minioClient, cfg.Archive.Bucket)
		if err := archiveStore.EnsureBucket(ctx); err != nil {
			log.Fatal("Failed to prepare archive bucket: %v", err)
		}
		pricingArchive = archiveStore
		log.Info("Pricing archive enabled (endpoint=%s, bucket=%s)", cfg.Archive.Endpoint, cfg.Archive.Bucket)
	}

	// Инициализируем сервисы
	actionTracker := tracker.New(audit, metricsCollector, log)
	pageSize := cfg.Console.PageSize

	labsSvc := labs.NewService(client, pageSize, actionTracker, log)
	phlebosSvc := phlebotomists.NewService(client, pageSize, actionTracker, log)
	partnersSvc := partners.NewService(client, pageSize, actionTracker, log)
	promoCodes := onboarding.NewManager[domain.PromoCode](
		promoCodesResource,
		pageSize,
		form.PromoCodeSchema(),
		onboarding.Funcs[domain.PromoCode]{
			ListFunc:   client.ListPromoCodes,
			CreateFunc: client.CreatePromoCode,
		},
		actionTracker,
		log,
	)
	pricingSvc := pricing.NewService(client, pricingArchive, actionTracker, log)
	dashboardSvc := dashboard.NewService(client, cfg.Dashboard.DemoMode, cfg.Dashboard.DefaultDays, log)

	// Инициализируем use cases
	resourcesUseCase := resourcesUC.NewUseCase(labsSvc, phlebosSvc, partnersSvc, promoCodes, log)

	// Инициализируем handlers
	login := loginHandler.NewHandler(sess, log)
	logout := logoutHandler.NewHandler(sess, log)
	getSession := getSessionHandler.NewHandler(sess, log)
	listResource := listResourceHandler.NewHandler(resourcesUseCase, log)
	refreshResource := refreshResourceHandler.NewHandler(resourcesUseCase, log)
	getForm := getFormHandler.NewHandler(resourcesUseCase, log)
	createResource := createResourceHandler.NewHandler(resourcesUseCase, log)
	addLabItem := addLabItemHandler.NewHandler(labsSvc, log)
	togglePhlebotomist := togglePhlebotomistHandler.NewHandler(phlebosSvc, log)
	deletePhlebotomist := deletePhlebotomistHandler.NewHandler(phlebosSvc, log)
	askPartnerConfirm := askPartnerConfirmHandler.NewHandler(partnersSvc, log)
	cancelPartnerConfirm := cancelPartnerConfirmHandler.NewHandler(partnersSvc, log)
	performPartnerAction := performPartnerActionHandler.NewHandler(partnersSvc, log)
	uploadPricing := uploadPricingHandler.NewHandler(pricingSvc, log)
	getDashboard := getDashboardHandler.NewHandler(dashboardSvc, log)
	getAudit := getAuditHandler.NewHandler(audit, cfg.Audit.Limit, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Recover(log))
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.RequireSession(sess, log, routeLogin))

	// --- Сессия ---
	sessionRoutes := api.PathPrefix("/session").Subrouter()
	sessionRoutes.Use(httprate.LimitByIP(sessionRateLimit, sessionRateWindow))
	sessionRoutes.HandleFunc("", getSession.Handle).Methods(http.MethodGet)
	sessionRoutes.HandleFunc("", login.Handle).Methods(http.MethodPost).Name(routeLogin)
	sessionRoutes.HandleFunc("", logout.Handle).Methods(http.MethodDelete)

	// --- Экраны онбординга (labs, lab-admins, phlebotomists, promo-codes, partners) ---
	api.HandleFunc("/resources/{resource}", listResource.Handle).Methods(http.MethodGet)
	api.HandleFunc("/resources/{resource}", createResource.Handle).Methods(http.MethodPost)
	api.HandleFunc("/resources/{resource}/refresh", refreshResource.Handle).Methods(http.MethodPost)
	api.HandleFunc("/resources/{resource}/form", getForm.Handle).Methods(http.MethodGet)

	// --- Лаборатории ---
	api.HandleFunc("/labs/{labId}/packages", addLabItem.HandlePackage).Methods(http.MethodPost)
	api.HandleFunc("/labs/{labId}/tests", addLabItem.HandleTest).Methods(http.MethodPost)

	// --- Флеботомисты ---
	api.HandleFunc("/phlebotomists/{id}/toggle", togglePhlebotomist.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/phlebotomists/{id}", deletePhlebotomist.Handle).Methods(http.MethodDelete)

	// --- Заявки партнёров (подтверждение перед approve/reject) ---
	api.HandleFunc("/partners/confirm", cancelPartnerConfirm.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/partners/{id}/confirm", askPartnerConfirm.Handle).Methods(http.MethodPost)
	api.HandleFunc("/partners/{id}/{action:approve|reject}", performPartnerAction.Handle).Methods(http.MethodPost)

	// --- Прайс-листы, дашборд, журнал ---
	api.HandleFunc("/pricing/{type}", uploadPricing.Handle).Methods(http.MethodPost)
	api.HandleFunc("/dashboard", getDashboard.Handle).Methods(http.MethodGet)
	api.HandleFunc("/audit", getAudit.Handle).Methods(http.MethodGet)

	// CORS снаружи роутера: preflight OPTIONS не совпадает с маршрутами
	handler := cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	})(r)

	// Создаем HTTP сервер
	addr := cfg.Server.Addr()
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}

// pruneAudit удаляет записи старше retentionDays раз в сутки
func pruneAudit(ctx context.Context, repo *auditRepo.Repository, retentionDays int, log *logger.Logger) {
	ticker := time.NewTicker(pruneInterval)
	defer ticker.Stop()

	for {
		before := time.Now().UTC().AddDate(0, 0, -retentionDays)
		if n, err := repo.Prune(ctx, before); err != nil {
			log.Warn("Audit: prune failed: %v", err)
		} else if n > 0 {
			log.Info("Audit: pruned %d entries older than %s", n, before.Format(time.DateOnly))
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
