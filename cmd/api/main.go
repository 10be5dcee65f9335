package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	authadapter "github.com/goer/asana-clone/internal/adapter/auth"
	dbadapter "github.com/goer/asana-clone/internal/adapter/db"
	httpadapter "github.com/goer/asana-clone/internal/adapter/http"
	"github.com/goer/asana-clone/internal/adapter/http/handlers"
	httpmiddleware "github.com/goer/asana-clone/internal/adapter/http/middleware"
	"github.com/goer/asana-clone/internal/app/service"
	"github.com/goer/asana-clone/internal/config"
	"github.com/goer/asana-clone/pkg/translator"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	cfg := config.LoadConfig()
	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to mysql", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close mysql connection", zap.Error(err))
		}
	}()

	userRepo := dbadapter.NewUserRepository(db)
	workspaceRepo := dbadapter.NewWorkspaceRepository(db)
	teamRepo := dbadapter.NewTeamRepository(db)
	projectRepo := dbadapter.NewProjectRepository(db)
	sectionRepo := dbadapter.NewSectionRepository(db)
	taskRepo := dbadapter.NewTaskRepository(db)
	tagRepo := dbadapter.NewTagRepository(db)
	commentRepo := dbadapter.NewCommentRepository(db)
	attachmentRepo := dbadapter.NewAttachmentRepository(db)
	customFieldRepo := dbadapter.NewCustomFieldRepository(db)

	tokenCodec := authadapter.NewHMACTokenCodec(cfg.TokenSecret)

	identityService := service.NewIdentityService(userRepo, tokenCodec, cfg.FallbackUserEmail, cfg.FallbackUserName)
	authService := service.NewAuthService(userRepo, tokenCodec, cfg.TokenTTL)
	workspaceService := service.NewWorkspaceService(workspaceRepo, userRepo)
	teamService := service.NewTeamService(teamRepo, workspaceRepo, userRepo)
	projectService := service.NewProjectService(projectRepo, workspaceRepo, teamRepo)
	sectionService := service.NewSectionService(sectionRepo, projectRepo, workspaceRepo)
	taskService := service.NewTaskService(taskRepo, projectRepo, sectionRepo, workspaceRepo, userRepo)
	tagService := service.NewTagService(tagRepo, taskRepo, projectRepo, workspaceRepo)
	commentService := service.NewCommentService(commentRepo, taskRepo, projectRepo, workspaceRepo)
	attachmentService := service.NewAttachmentService(attachmentRepo, commentRepo, taskRepo, projectRepo, workspaceRepo)
	customFieldService := service.NewCustomFieldService(customFieldRepo, taskRepo, projectRepo, workspaceRepo)

	// Soft-mode resolution needs the fallback account before the first
	// request lands on it.
	bootCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := identityService.EnsureFallbackUser(bootCtx); err != nil {
		logger.Fatal("failed to ensure fallback user", zap.Error(err))
	}

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.RequestIDMiddleware(), httpmiddleware.GinZapMiddleware(logger))
	if len(cfg.TrustedProxies) > 0 {
		if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
			logger.Fatal("invalid trusted proxies", zap.Error(err))
		}
	}

	httpadapter.RegisterRoutes(r, httpadapter.Handlers{
		Health:      handlers.NewHealthHandler(db),
		Auth:        handlers.NewAuthHandler(authService),
		Workspace:   handlers.NewWorkspaceHandler(workspaceService),
		Team:        handlers.NewTeamHandler(teamService),
		Project:     handlers.NewProjectHandler(projectService),
		Section:     handlers.NewSectionHandler(sectionService),
		Task:        handlers.NewTaskHandler(taskService),
		Tag:         handlers.NewTagHandler(tagService),
		Comment:     handlers.NewCommentHandler(commentService),
		Attachment:  handlers.NewAttachmentHandler(attachmentService),
		CustomField: handlers.NewCustomFieldHandler(customFieldService),
	}, identityService, cfg.AutomationAPIKey)

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	addr := ":" + port
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
