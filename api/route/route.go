package route

import (
	"portfolio-go-server/api/controller"
	"portfolio-go-server/api/middleware"

	"github.com/gin-gonic/gin"
)

// Dependencies carries the controllers the route table needs.
type Dependencies struct {
	SectionController *controller.SectionController
	EditorController  *controller.EditorController
	ToolsController   *controller.ToolsController
	WebhookController *controller.WebhookController
	WSHandler         *controller.WSHandler
}

// Setup wires every route.
func Setup(router *gin.Engine, deps *Dependencies) {
	// --- public routes ---

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "portfolio-go-server",
		})
	})

	// Clerk webhook (svix signature, no JWT)
	router.POST("/webhook/clerk", deps.WebhookController.HandleClerkWebhook)

	// live preview subscription
	router.GET("/ws", deps.WSHandler.HandleWS)

	api := router.Group("/api")
	{
		// resolved public sections
		api.GET("/sections/:sectionId", deps.SectionController.GetSection)

		// static tool catalog and dashboard
		api.GET("/tools", deps.ToolsController.ListTools)
		api.GET("/tools/popular", deps.ToolsController.PopularTools)
		api.GET("/tools/new", deps.ToolsController.NewTools)
		api.GET("/tools/upcoming", deps.ToolsController.UpcomingTools)
		api.GET("/tools/:id", deps.ToolsController.GetTool)
		api.GET("/dashboard", deps.ToolsController.Dashboard)
	}

	// --- admin routes (Clerk JWT required) ---
	admin := api.Group("/admin")
	admin.Use(middleware.ClerkAuth())
	{
		admin.POST("/editor", deps.EditorController.OpenSession)
		admin.GET("/editor/:sessionId", deps.EditorController.GetSession)
		admin.PUT("/editor/:sessionId/field", deps.EditorController.SetField)
		admin.POST("/editor/:sessionId/items", deps.EditorController.AddListItem)
		admin.DELETE("/editor/:sessionId/items", deps.EditorController.RemoveListItem)
		admin.POST("/editor/:sessionId/patch", deps.EditorController.ApplyPatch)
		admin.POST("/editor/:sessionId/save", deps.EditorController.Save)
		admin.DELETE("/editor/:sessionId", deps.EditorController.CloseSession)
	}
}
