package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/eohue/ibookee-web-sub001/internal/app/models"
	"github.com/eohue/ibookee-web-sub001/internal/app/models/dto"
	"github.com/eohue/ibookee-web-sub001/internal/app/services"
	"github.com/eohue/ibookee-web-sub001/internal/middleware"
	"github.com/eohue/ibookee-web-sub001/internal/pkg/helpers"
)

// RecruitmentController handles housing recruitment notices. Public routes
// see published notices only; admin routes see drafts as well.
type RecruitmentController struct {
	recruitmentService services.RecruitmentService
}

// NewRecruitmentController creates a new RecruitmentController
func NewRecruitmentController(recruitmentService services.RecruitmentService) *RecruitmentController {
	return &RecruitmentController{recruitmentService: recruitmentService}
}

// GetRecruitments lists published recruitment notices
// @Summary List recruitments
// @Tags recruitments
// @Produce json
// @Param page query int false "Page number (1-based)" default(1)
// @Param size query int false "Page size" default(20) maximum(100)
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse} "Recruitments"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /recruitments [get]
func (c *RecruitmentController) GetRecruitments(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	recruitments, total, err := c.recruitmentService.GetRecruitments(ctx, true, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondPaginated(ctx, recruitments, total, page, size)
}

// GetAllRecruitments lists notices including drafts
// @Summary List recruitments including drafts
// @Tags recruitments
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (1-based)" default(1)
// @Param size query int false "Page size" default(20) maximum(100)
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse} "Recruitments"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/recruitments [get]
func (c *RecruitmentController) GetAllRecruitments(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	recruitments, total, err := c.recruitmentService.GetRecruitments(ctx, false, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondPaginated(ctx, recruitments, total, page, size)
}

// GetRecruitmentByID retrieves one published notice
// @Summary Get recruitment details
// @Tags recruitments
// @Produce json
// @Param id path int true "Recruitment ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.HousingRecruitment} "Recruitment"
// @Failure 400 {object} dto.ErrorResponse "Invalid recruitment ID"
// @Failure 404 {object} dto.ErrorResponse "Recruitment not found or unpublished"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /recruitments/{id} [get]
func (c *RecruitmentController) GetRecruitmentByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	recruitment, err := c.recruitmentService.GetRecruitmentByID(ctx, id, true)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondOK(ctx, recruitment)
}

// CreateRecruitment creates a notice
// @Summary Create a recruitment
// @Tags recruitments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.HousingRecruitment true "Recruitment payload"
// @Success 201 {object} dto.APIResponse{data=models.HousingRecruitment} "Recruitment created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /recruitments [post]
func (c *RecruitmentController) CreateRecruitment(ctx *gin.Context) {
	var recruitment models.HousingRecruitment
	if err := ctx.ShouldBindJSON(&recruitment); err != nil {
		respondBindError(ctx, err)
		return
	}

	created, err := c.recruitmentService.CreateRecruitment(ctx, &recruitment)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondCreated(ctx, created)
}

// UpdateRecruitment updates a notice
// @Summary Update a recruitment
// @Tags recruitments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Recruitment ID" Format(int64) minimum(1)
// @Param request body models.HousingRecruitment true "Recruitment payload"
// @Success 200 {object} dto.APIResponse{data=models.HousingRecruitment} "Recruitment updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 404 {object} dto.ErrorResponse "Recruitment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /recruitments/{id} [put]
func (c *RecruitmentController) UpdateRecruitment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var recruitment models.HousingRecruitment
	if err := ctx.ShouldBindJSON(&recruitment); err != nil {
		respondBindError(ctx, err)
		return
	}
	recruitment.ID = id

	updated, err := c.recruitmentService.UpdateRecruitment(ctx, &recruitment)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondOK(ctx, updated)
}

// DeleteRecruitment deletes a notice
// @Summary Delete a recruitment
// @Tags recruitments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Recruitment ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Recruitment deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid recruitment ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 404 {object} dto.ErrorResponse "Recruitment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /recruitments/{id} [delete]
func (c *RecruitmentController) DeleteRecruitment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.recruitmentService.DeleteRecruitment(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondOK(ctx, dto.SuccessResponse{Message: "Recruitment deleted"})
}
