package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	appauth "github.com/setnu/clubportal/internal/app/auth"
	"github.com/setnu/clubportal/internal/app/forms"
	"github.com/setnu/clubportal/internal/app/manage"
	"github.com/setnu/clubportal/internal/app/models"
	"github.com/setnu/clubportal/internal/app/models/dto"
	"github.com/setnu/clubportal/internal/middleware"
	"github.com/setnu/clubportal/internal/pkg/apperrors"
	"github.com/setnu/clubportal/internal/pkg/filestorage"
	"github.com/setnu/clubportal/internal/pkg/notify"
)

// AdminController exposes the admin panel screens over HTTP. Each request
// mounts a fresh screen for the caller's session.
type AdminController struct {
	shell          *manage.Shell
	maxUploadBytes int64
	logger         zerolog.Logger
}

// NewAdminController creates a new AdminController
func NewAdminController(shell *manage.Shell, maxUploadBytes int64, logger zerolog.Logger) *AdminController {
	return &AdminController{
		shell:          shell,
		maxUploadBytes: maxUploadBytes,
		logger:         logger,
	}
}

func screenResponse(ctx *gin.Context, status int, state interface{}, recorder *notify.Recorder) {
	ctx.JSON(status, dto.NewSuccessResponse(dto.ScreenResponse{
		Screen:        state,
		Notifications: recorder.All(),
	}, ""))
}

func parseID(ctx *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return uuid.Nil, apperrors.NewValidationError("id", fmt.Sprintf("invalid id %q", ctx.Param("id")))
	}
	return id, nil
}

// Tabs lists the admin tabs
// @Summary Admin tabs
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.TabsResponse}
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Router /admin [get]
func (c *AdminController) Tabs(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.TabsResponse{Tabs: manage.Tabs}, ""))
}

// Mount loads a tab's screen
// @Summary Open an admin tab
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param tab path string true "events, resources, gallery, team or about"
// @Success 200 {object} dto.APIResponse{data=dto.ScreenResponse}
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Failure 404 {object} dto.ErrorResponse "Unknown tab"
// @Failure 500 {object} dto.ErrorResponse "Backend unavailable"
// @Router /admin/{tab} [get]
func (c *AdminController) Mount(ctx *gin.Context) {
	recorder := &notify.Recorder{}
	screen, err := c.shell.Mount(ctx.Param("tab"), appauth.FromContext(ctx), recorder)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if err := screen.Load(ctx.Request.Context()); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	screenResponse(ctx, http.StatusOK, screen.State(), recorder)
}

// Delete removes a record from a tab after confirmation
// @Summary Delete a record
// @Description Requires confirm=true; without it nothing is deleted
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param tab path string true "events, resources, gallery, team or about"
// @Param id path string true "Record ID"
// @Param confirm query bool true "Explicit confirmation"
// @Success 200 {object} dto.APIResponse{data=dto.ScreenResponse}
// @Failure 400 {object} dto.ErrorResponse "Confirmation required"
// @Failure 404 {object} dto.ErrorResponse "Record not found"
// @Router /admin/{tab}/{id} [delete]
func (c *AdminController) Delete(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	confirmed, _ := strconv.ParseBool(ctx.Query("confirm"))

	recorder := &notify.Recorder{}
	screen, err := c.shell.Mount(ctx.Param("tab"), appauth.FromContext(ctx), recorder)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if err := screen.Delete(ctx.Request.Context(), id, confirmed); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	screenResponse(ctx, http.StatusOK, screen.State(), recorder)
}

// Edit opens a record in edit mode
// @Summary Open a record for editing
// @Description Returns the form pre-populated from the record; dates are rendered in the portal time zone
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param tab path string true "events, resources, gallery, team or about"
// @Param id path string true "Record ID"
// @Success 200 {object} dto.APIResponse{data=dto.ScreenResponse}
// @Failure 404 {object} dto.ErrorResponse "Record not found"
// @Router /admin/{tab}/{id}/edit [get]
func (c *AdminController) Edit(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	recorder := &notify.Recorder{}
	screen, err := c.shell.Mount(ctx.Param("tab"), appauth.FromContext(ctx), recorder)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if err := screen.BeginEdit(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	screenResponse(ctx, http.StatusOK, screen.State(), recorder)
}

// submitForm returns a handler that binds a form and submits it. With an
// :id parameter the record is updated, otherwise created.
func submitForm[T models.Keyed, F any](mount func(appauth.Session, notify.Notifier) (*manage.Screen[T, F], error), logger zerolog.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var form F
		if err := ctx.ShouldBindJSON(&form); err != nil {
			logger.Warn().Err(err).Msg("Invalid form payload")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
			return
		}

		recorder := &notify.Recorder{}
		screen, err := mount(appauth.FromContext(ctx), recorder)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}

		status := http.StatusCreated
		if ctx.Param("id") != "" {
			id, err := parseID(ctx)
			if err != nil {
				middleware.HandleAPIError(ctx, err)
				return
			}
			if err := screen.BeginEdit(ctx.Request.Context(), id); err != nil {
				middleware.HandleAPIError(ctx, err)
				return
			}
			status = http.StatusOK
		}

		screen.SetForm(form)
		if err := screen.Submit(ctx.Request.Context()); err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		screenResponse(ctx, status, screen.Snapshot(), recorder)
	}
}

// uploadBlob returns a handler that stores a multipart file and its metadata.
func uploadBlob[T models.Keyed](mount func(appauth.Session, notify.Notifier) (*manage.UploadScreen[T], error), maxBytes int64, logger zerolog.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if maxBytes > 0 {
			ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, maxBytes)
		}

		recorder := &notify.Recorder{}
		screen, err := mount(appauth.FromContext(ctx), recorder)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}

		var meta forms.Upload
		if err := ctx.ShouldBind(&meta); err != nil {
			logger.Warn().Err(err).Msg("Invalid upload metadata")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
			return
		}

		fileHeader, err := ctx.FormFile("file")
		if err != nil {
			logger.Warn().Err(err).Msg("Upload request without a readable file")
			middleware.HandleAPIError(ctx, apperrors.NewWriteError(screen.Name(), apperrors.OpCreate, "", apperrors.ErrUploadRequired))
			return
		}

		blob, closer, err := filestorage.BlobFromFileHeader(fileHeader)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		defer closer.Close()

		if _, err := screen.Upload(ctx.Request.Context(), blob, meta.Title, meta.Description); err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		screenResponse(ctx, http.StatusCreated, screen.Snapshot(), recorder)
	}
}

// updateUpload returns a handler that edits an upload's title and description.
func updateUpload[T models.Keyed](mount func(appauth.Session, notify.Notifier) (*manage.UploadScreen[T], error), logger zerolog.Logger) gin.HandlerFunc {
	return submitForm[T, forms.Upload](func(s appauth.Session, n notify.Notifier) (*manage.Screen[T, forms.Upload], error) {
		screen, err := mount(s, n)
		if err != nil {
			return nil, err
		}
		return screen.Screen, nil
	}, logger)
}

// CreateEvent returns the handler to create an event
// @Summary Create an event
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body forms.Event true "Event form; dates as 2006-01-02T15:04 in the portal time zone"
// @Success 201 {object} dto.APIResponse{data=dto.ScreenResponse}
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Router /admin/events [post]
func (c *AdminController) CreateEvent() gin.HandlerFunc { return submitForm(c.shell.Events, c.logger) }

// UpdateEvent returns the handler to update an event
// @Summary Update an event
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Param request body forms.Event true "Event form"
// @Success 200 {object} dto.APIResponse{data=dto.ScreenResponse}
// @Router /admin/events/{id} [put]
func (c *AdminController) UpdateEvent() gin.HandlerFunc { return submitForm(c.shell.Events, c.logger) }

// CreateTeamMember returns the handler to create a team member
// @Summary Create a team member
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body forms.TeamMember true "Team member form"
// @Success 201 {object} dto.APIResponse{data=dto.ScreenResponse}
// @Router /admin/team [post]
func (c *AdminController) CreateTeamMember() gin.HandlerFunc {
	return submitForm(c.shell.Team, c.logger)
}

// UpdateTeamMember returns the handler to update a team member
// @Summary Update a team member
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Team member ID"
// @Param request body forms.TeamMember true "Team member form"
// @Success 200 {object} dto.APIResponse{data=dto.ScreenResponse}
// @Router /admin/team/{id} [put]
func (c *AdminController) UpdateTeamMember() gin.HandlerFunc {
	return submitForm(c.shell.Team, c.logger)
}

// CreateSection returns the handler to create an about section
// @Summary Create an about section
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body forms.ClubInfo true "Section form; mission items use •, objectives and rules use blank-line separated blocks"
// @Success 201 {object} dto.APIResponse{data=dto.ScreenResponse}
// @Router /admin/about [post]
func (c *AdminController) CreateSection() gin.HandlerFunc { return submitForm(c.shell.About, c.logger) }

// UpdateSection returns the handler to update an about section
// @Summary Update an about section
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Section ID"
// @Param request body forms.ClubInfo true "Section form"
// @Success 200 {object} dto.APIResponse{data=dto.ScreenResponse}
// @Router /admin/about/{id} [put]
func (c *AdminController) UpdateSection() gin.HandlerFunc { return submitForm(c.shell.About, c.logger) }

// UploadResource returns the handler to upload a file
// @Summary Upload a file
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "File to share"
// @Param title formData string true "Title"
// @Param description formData string false "Description"
// @Success 201 {object} dto.APIResponse{data=dto.ScreenResponse}
// @Failure 400 {object} dto.ErrorResponse "File missing or empty"
// @Failure 502 {object} dto.ErrorResponse "Storage or metadata insert failed"
// @Router /admin/resources [post]
func (c *AdminController) UploadResource() gin.HandlerFunc {
	return uploadBlob(c.shell.Resources, c.maxUploadBytes, c.logger)
}

// UpdateResource returns the handler to edit a file's title and description
// @Summary Edit a file's title and description
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resource ID"
// @Param request body forms.Upload true "Metadata"
// @Success 200 {object} dto.APIResponse{data=dto.ScreenResponse}
// @Router /admin/resources/{id} [put]
func (c *AdminController) UpdateResource() gin.HandlerFunc {
	return updateUpload(c.shell.Resources, c.logger)
}

// UploadImage returns the handler to upload a gallery image
// @Summary Upload a gallery image
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Image"
// @Param title formData string true "Title"
// @Param description formData string false "Description"
// @Success 201 {object} dto.APIResponse{data=dto.ScreenResponse}
// @Router /admin/gallery [post]
func (c *AdminController) UploadImage() gin.HandlerFunc {
	return uploadBlob(c.shell.Gallery, c.maxUploadBytes, c.logger)
}

// UpdateImage returns the handler to edit a gallery image's title and description
// @Summary Edit a gallery image's title and description
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Image ID"
// @Param request body forms.Upload true "Metadata"
// @Success 200 {object} dto.APIResponse{data=dto.ScreenResponse}
// @Router /admin/gallery/{id} [put]
func (c *AdminController) UpdateImage() gin.HandlerFunc {
	return updateUpload(c.shell.Gallery, c.logger)
}
