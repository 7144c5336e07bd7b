package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gachi/gachi/config"
	"gachi/gachi/controllers"
	"gachi/gachi/monitor"
	"gachi/gachi/routes"
	"gachi/gachi/services/llm"
	"gachi/gachi/sources/psql"
	"gachi/gachi/sources/psql/dao"
	"gachi/gachi/utils/logging"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	logging.InitLogger()
	cfg := config.LoadConfig()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	db, err := psql.NewDatabase(ctx, cfg)
	if err != nil {
		logging.ErrorLogger.Error("database connection error", zap.Error(err))
		os.Exit(1)
	}
	defer db.Close()

	userDAO := dao.NewUserDAO(db.DB)
	questionDAO := dao.NewQuestionDAO(db.DB)
	subscriptionDAO := dao.NewSubscriptionDAO(db.DB)
	settingDAO := dao.NewSettingDAO(db.DB)

	riskMonitor := monitor.New(logging.RiskLogger)
	model := llm.NewOpenAIClient(cfg.OpenAIKey, cfg.OpenAIModel, cfg.UpstreamTimeout)

	authCtrl := controllers.NewAuthController(userDAO, cfg)
	userCtrl := controllers.NewUserController(userDAO, settingDAO)
	questionCtrl := controllers.NewQuestionController(userDAO, questionDAO)
	askCtrl := controllers.NewAskController(userDAO, questionDAO, model, riskMonitor)
	adminCtrl := controllers.NewAdminController(userDAO, subscriptionDAO)
	healthCtrl := controllers.NewHealthController()

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(90 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: false,
	}))

	r.Mount("/auth", routes.AuthRoutes(authCtrl, cfg))
	r.Mount("/users", routes.UserRoutes(userCtrl, cfg))
	r.Mount("/questions", routes.QuestionRoutes(questionCtrl, cfg))
	r.Mount("/ask", routes.AskRoutes(askCtrl, cfg))
	r.Mount("/admin", routes.AdminRoutes(adminCtrl, cfg))
	r.Mount("/health", routes.HealthRoutes(healthCtrl))
	r.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: r,
	}
	go func() {
		logging.AppLogger.Info("server listening", zap.String("addr", cfg.ListenAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.ErrorLogger.Error("server listen error", zap.Error(err))
		}
	}()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.ErrorLogger.Error("server shutdown error", zap.Error(err))
	}
	logging.AppLogger.Info("server shutdown complete")
}
