package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/eohue/ibookee-web-sub001/internal/app/models"
	"github.com/eohue/ibookee-web-sub001/internal/app/models/dto"
	"github.com/eohue/ibookee-web-sub001/internal/app/services"
	"github.com/eohue/ibookee-web-sub001/internal/middleware"
)

// PageController handles page image slots and site settings
type PageController struct {
	pageService services.PageService
}

// NewPageController creates a new PageController
func NewPageController(pageService services.PageService) *PageController {
	return &PageController{pageService: pageService}
}

// GetPageImages lists images bound to a page
// @Summary List page images
// @Description Retrieves images for a page, optionally narrowed to one slot
// @Tags pages
// @Produce json
// @Param pageKey path string true "Page key"
// @Param imageKey query string false "Slot key filter"
// @Success 200 {object} dto.APIResponse{data=[]models.PageImage} "Images"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /pages/{pageKey}/images [get]
func (c *PageController) GetPageImages(ctx *gin.Context) {
	images, err := c.pageService.GetPageImages(ctx, ctx.Param("pageKey"), ctx.Query("imageKey"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondOK(ctx, images)
}

// AddPageImage binds an uploaded image to a page slot
// @Summary Add a page image
// @Description Binds an uploaded URL to a slot; full slots reject new images
// @Tags pages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param pageKey path string true "Page key"
// @Param request body dto.PageImageRequest true "Image payload"
// @Success 201 {object} dto.APIResponse{data=models.PageImage} "Image added"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 409 {object} dto.ErrorResponse "Image slot is full"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /pages/{pageKey}/images [post]
func (c *PageController) AddPageImage(ctx *gin.Context) {
	var req dto.PageImageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}
	req.PageKey = ctx.Param("pageKey")

	image, err := c.pageService.AddPageImage(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondCreated(ctx, image)
}

// UpdatePageImage updates a page image binding
// @Summary Update a page image
// @Tags pages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param pageKey path string true "Page key"
// @Param id path int true "Image ID" Format(int64) minimum(1)
// @Param request body models.PageImage true "Image payload"
// @Success 200 {object} dto.APIResponse{data=models.PageImage} "Image updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 404 {object} dto.ErrorResponse "Image not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /pages/{pageKey}/images/{id} [put]
func (c *PageController) UpdatePageImage(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var image models.PageImage
	if err := ctx.ShouldBindJSON(&image); err != nil {
		respondBindError(ctx, err)
		return
	}
	image.ID = id
	image.PageKey = ctx.Param("pageKey")

	updated, err := c.pageService.UpdatePageImage(ctx, &image)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondOK(ctx, updated)
}

// ReorderSlot rewrites the display order of one image slot
// @Summary Reorder a page image slot
// @Description Applies the given ID sequence as the slot's display order
// @Tags pages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param pageKey path string true "Page key"
// @Param request body dto.ReorderRequest true "Ordered image IDs"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Slot reordered"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /pages/{pageKey}/images/order [put]
func (c *PageController) ReorderSlot(ctx *gin.Context) {
	var req dto.ReorderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	if err := c.pageService.ReorderSlot(ctx, ctx.Param("pageKey"), req.ImageKey, req.OrderedIDs); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondOK(ctx, dto.SuccessResponse{Message: "Slot reordered"})
}

// DeletePageImage removes an image binding
// @Summary Delete a page image
// @Tags pages
// @Produce json
// @Security BearerAuth
// @Param pageKey path string true "Page key"
// @Param id path int true "Image ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Image deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid image ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 404 {object} dto.ErrorResponse "Image not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /pages/{pageKey}/images/{id} [delete]
func (c *PageController) DeletePageImage(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.pageService.DeletePageImage(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondOK(ctx, dto.SuccessResponse{Message: "Image deleted"})
}

// GetSetting retrieves one settings blob
// @Summary Get a site setting
// @Description Returns the stored JSON blob for the key; clients fall back to defaults on 404
// @Tags settings
// @Produce json
// @Param key path string true "Setting key"
// @Success 200 {object} dto.APIResponse{data=models.SiteSetting} "Setting"
// @Failure 404 {object} dto.ErrorResponse "Setting not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /settings/{key} [get]
func (c *PageController) GetSetting(ctx *gin.Context) {
	key := ctx.Param("key")
	if key == "" {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Missing setting key")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	setting, err := c.pageService.GetSetting(ctx, key)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondOK(ctx, setting)
}

// GetSettings lists all settings
// @Summary List site settings
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.SiteSetting} "Settings"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /settings [get]
func (c *PageController) GetSettings(ctx *gin.Context) {
	settings, err := c.pageService.GetSettings(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondOK(ctx, settings)
}

// UpsertSetting stores a settings blob
// @Summary Upsert a site setting
// @Description Replaces the JSON blob stored under the key
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param key path string true "Setting key"
// @Param request body dto.SettingRequest true "Setting payload"
// @Success 200 {object} dto.APIResponse{data=models.SiteSetting} "Setting stored"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /settings/{key} [put]
func (c *PageController) UpsertSetting(ctx *gin.Context) {
	var req dto.SettingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	setting, err := c.pageService.UpsertSetting(ctx, ctx.Param("key"), req.Value)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondOK(ctx, setting)
}

// DeleteSetting removes a settings blob
// @Summary Delete a site setting
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Param key path string true "Setting key"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Setting deleted"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 404 {object} dto.ErrorResponse "Setting not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /settings/{key} [delete]
func (c *PageController) DeleteSetting(ctx *gin.Context) {
	if err := c.pageService.DeleteSetting(ctx, ctx.Param("key")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondOK(ctx, dto.SuccessResponse{Message: "Setting deleted"})
}
