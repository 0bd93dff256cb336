package controller

import (
	"net/http"
	"strconv"

	"portfolio-go-server/internal/catalog"

	"github.com/gin-gonic/gin"
)

// ToolsController serves the static tool catalog and the user dashboard.
type ToolsController struct{}

func NewToolsController() *ToolsController {
	return &ToolsController{}
}

// ListTools filters the catalog.
// GET /api/tools?category=image&q=compress&excludeUpcoming=true
func (tc *ToolsController) ListTools(c *gin.Context) {
	excludeUpcoming, _ := strconv.ParseBool(c.DefaultQuery("excludeUpcoming", "true"))

	tools := catalog.Filter(catalog.Tools, catalog.Query{
		Category:        catalog.Category(c.DefaultQuery("category", "all")),
		Search:          c.Query("q"),
		ExcludeUpcoming: excludeUpcoming,
	})

	c.JSON(http.StatusOK, gin.H{"tools": tools, "count": len(tools)})
}

// GetTool returns one catalog entry.
// GET /api/tools/:id
func (tc *ToolsController) GetTool(c *gin.Context) {
	tool, ok := catalog.ByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "tool not found", Details: c.Param("id")})
		return
	}
	c.JSON(http.StatusOK, tool)
}

// PopularTools serves the home page highlight strip.
// GET /api/tools/popular
func (tc *ToolsController) PopularTools(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tools": catalog.Popular()})
}

// NewTools serves the recently added list.
// GET /api/tools/new
func (tc *ToolsController) NewTools(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tools": catalog.New()})
}

// UpcomingTools serves the coming-soon page.
// GET /api/tools/upcoming
func (tc *ToolsController) UpcomingTools(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tools": catalog.Upcoming()})
}

// Dashboard resolves the mock user's favorite and recent tool ids against
// the catalog, dropping ids that no longer exist.
// GET /api/dashboard
func (tc *ToolsController) Dashboard(c *gin.Context) {
	user := catalog.CurrentUser

	c.JSON(http.StatusOK, gin.H{
		"user":      user,
		"favorites": catalog.Resolve(user.FavoriteTools),
		"recent":    catalog.Resolve(user.RecentTools),
	})
}
