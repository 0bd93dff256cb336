package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portfolio-go-server/api/controller"
	"portfolio-go-server/api/route"
	"portfolio-go-server/bootstrap"
	"portfolio-go-server/internal/schema"
	"portfolio-go-server/internal/ws"
	"portfolio-go-server/repository"
	"portfolio-go-server/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	log.Println("[Server] portfolio-go-server starting...")

	env := bootstrap.LoadEnv()
	bootstrap.InitClerk()
	db := bootstrap.NewDatabase(env.DatabaseURL)

	// repository layer
	sectionRepo := repository.NewSectionRepository(db)
	userRepo := repository.NewUserRepository(db)

	// schema registry (process-wide, immutable)
	registry := schema.NewRegistry()

	// usecase layer
	renderer := usecase.NewRendererUseCase(sectionRepo, registry)

	// live preview hub, fed by the renderer
	hub := ws.NewHub(renderer)
	go hub.Run()

	editorUseCase := usecase.NewEditorUseCase(sectionRepo, registry, renderer, hub)

	// controller layer
	deps := &route.Dependencies{
		SectionController: controller.NewSectionController(renderer),
		EditorController:  controller.NewEditorController(editorUseCase),
		ToolsController:   controller.NewToolsController(),
		WebhookController: controller.NewWebhookController(userRepo, env.WebhookSecret),
		WSHandler:         controller.NewWSHandler(hub, env.AllowedOrigins),
	}

	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     append([]string{"http://localhost:3000", "http://localhost:5173"}, env.AllowedOrigins...),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	route.Setup(router, deps)

	srv := &http.Server{
		Addr:    ":" + env.Port,
		Handler: router,
	}

	go func() {
		log.Printf("[Server] listening on http://localhost:%s", env.Port)
		log.Printf("[Server] endpoints:")
		log.Printf("   GET  /health                          - health check")
		log.Printf("   GET  /api/sections/:sectionId         - resolved public section")
		log.Printf("   GET  /api/tools                       - tool catalog (filters: category, q)")
		log.Printf("   GET  /api/dashboard                   - user dashboard")
		log.Printf("   GET  /ws?sectionId=xxx                - live section preview")
		log.Printf("   POST /api/admin/editor                - open editing session")
		log.Printf("   POST /webhook/clerk                   - Clerk webhook")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[Server] failed to start: %v", err)
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("[Server] shutdown signal received, draining...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("[Server] forced shutdown: %v", err)
	}

	log.Println("[Server] stopped cleanly")
}
