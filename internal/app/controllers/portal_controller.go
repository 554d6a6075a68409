package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/setnu/clubportal/internal/app/models/dto"
	"github.com/setnu/clubportal/internal/app/services"
	"github.com/setnu/clubportal/internal/middleware"
)

// PortalController serves the public pages
type PortalController struct {
	portal *services.PortalService
}

// NewPortalController creates a new PortalController
func NewPortalController(portal *services.PortalService) *PortalController {
	return &PortalController{portal: portal}
}

func respond(ctx *gin.Context, data interface{}, err error) {
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(data, ""))
}

// Home returns the landing page summary
// @Summary Home page
// @Description Entity counts, the next upcoming events and the latest gallery images
// @Tags portal
// @Produce json
// @Success 200 {object} dto.APIResponse{data=services.HomePage}
// @Failure 500 {object} dto.ErrorResponse "Backend unavailable"
// @Router /home [get]
func (c *PortalController) Home(ctx *gin.Context) {
	page, err := c.portal.Home(ctx.Request.Context())
	respond(ctx, page, err)
}

// Events returns upcoming and past events
// @Summary Events page
// @Tags portal
// @Produce json
// @Success 200 {object} dto.APIResponse{data=services.EventsPage}
// @Failure 500 {object} dto.ErrorResponse "Backend unavailable"
// @Router /events [get]
func (c *PortalController) Events(ctx *gin.Context) {
	page, err := c.portal.Events(ctx.Request.Context())
	respond(ctx, page, err)
}

// Resources returns the shared files, optionally filtered
// @Summary Resources page
// @Description Case-insensitive substring search over title and file type
// @Tags portal
// @Produce json
// @Param search query string false "Search term"
// @Success 200 {object} dto.APIResponse{data=[]models.Resource}
// @Failure 500 {object} dto.ErrorResponse "Backend unavailable"
// @Router /resources [get]
func (c *PortalController) Resources(ctx *gin.Context) {
	list, err := c.portal.Resources(ctx.Request.Context(), ctx.Query("search"))
	respond(ctx, list, err)
}

// Gallery returns the gallery images
// @Summary Gallery page
// @Tags portal
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.GalleryImage}
// @Router /gallery [get]
func (c *PortalController) Gallery(ctx *gin.Context) {
	list, err := c.portal.Gallery(ctx.Request.Context())
	respond(ctx, list, err)
}

// Team returns mentors and coordinators
// @Summary Team page
// @Tags portal
// @Produce json
// @Success 200 {object} dto.APIResponse{data=services.TeamPage}
// @Router /team [get]
func (c *PortalController) Team(ctx *gin.Context) {
	page, err := c.portal.Team(ctx.Request.Context())
	respond(ctx, page, err)
}

// About returns the rendered club information sections
// @Summary About page
// @Tags portal
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]about.Section}
// @Router /about [get]
func (c *PortalController) About(ctx *gin.Context) {
	sections, err := c.portal.About(ctx.Request.Context())
	respond(ctx, sections, err)
}
