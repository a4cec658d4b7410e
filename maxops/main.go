package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"maxops/maxops/config"
	"maxops/maxops/controllers"
	"maxops/maxops/events"
	"maxops/maxops/routes"
	"maxops/maxops/services/assistant"
	"maxops/maxops/services/llm"
	"maxops/maxops/services/speech"
	"maxops/maxops/sources/psql"
	"maxops/maxops/sources/psql/dao"
	"maxops/maxops/sources/storage"
	"maxops/maxops/utils/logging"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
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
	chatDAO := dao.NewChatMessageDAO(db.DB)
	playbookDAO := dao.NewPlaybookDAO(db.DB)
	widgetDAO := dao.NewWidgetDAO(db.DB)
	prefDAO := dao.NewPreferenceDAO(db.DB)

	// Attachment archive is optional infrastructure; the assistant still
	// answers when the object store is down.
	var store *storage.MinIOClient
	if cfg.MinIOAccessKey != "" {
		store, err = storage.NewMinIOClient(cfg)
		if err != nil {
			logging.ErrorLogger.Error("minio connection error", zap.Error(err))
			store = nil
		}
	}

	llmClient := llm.NewClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel)
	roster := assistant.LoadRoster(cfg.RosterPath)
	assistantSvc := assistant.NewService(llmClient, chatDAO, playbookDAO, prefDAO, roster)
	transcriber := speech.NewTranscriber(cfg.STTBaseURL)
	synthesizer := speech.NewSynthesizer(cfg.TTSBaseURL, cfg.TTSFallbackBaseURL, cfg.TTSAPIKey)
	bus := events.NewBus()

	authCtrl := controllers.NewAuthController(userDAO, cfg)
	assistantCtrl := controllers.NewAssistantController(assistantSvc, chatDAO, store)
	voiceCtrl := controllers.NewVoiceController(transcriber, synthesizer)
	modelsCtrl := controllers.NewModelsController(llmClient)
	widgetsCtrl := controllers.NewWidgetsController(widgetDAO)
	prefsCtrl := controllers.NewPreferencesController(prefDAO, bus)
	playbooksCtrl := controllers.NewPlaybooksController(playbookDAO)
	healthCtrl := controllers.NewHealthController()

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Mount("/auth", routes.AuthRoutes(authCtrl))
	r.Mount("/chat", routes.AssistantRoutes(assistantCtrl, cfg))
	r.Mount("/voice", routes.VoiceRoutes(voiceCtrl, cfg))
	r.Mount("/text-to-speech", routes.TextToSpeechRoutes(voiceCtrl, cfg))
	r.Mount("/models", routes.ModelsRoutes(modelsCtrl))
	r.Mount("/widgets", routes.WidgetsRoutes(widgetsCtrl, cfg))
	r.Mount("/user-preferences", routes.PreferencesRoutes(prefsCtrl, cfg))
	r.Mount("/playbooks", routes.PlaybooksRoutes(playbooksCtrl, cfg))
	r.Mount("/events", routes.EventsRoutes(bus, cfg))
	r.Mount("/health", routes.HealthRoutes(healthCtrl))

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: r,
	}
	go func() {
		logging.AppLogger.Info("gateway listening", zap.String("addr", cfg.ListenAddr))
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
