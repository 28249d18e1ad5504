package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/eohue/ibookee-web-sub001/internal/app/models"
	"github.com/eohue/ibookee-web-sub001/internal/app/models/dto"
	"github.com/eohue/ibookee-web-sub001/internal/app/services"
	"github.com/eohue/ibookee-web-sub001/internal/middleware"
	"github.com/eohue/ibookee-web-sub001/internal/pkg/helpers"
)

// InquiryController handles contact-form submissions. Inquiries are
// write-once; there is no public read or update path.
type InquiryController struct {
	inquiryService services.InquiryService
}

// NewInquiryController creates a new InquiryController
func NewInquiryController(inquiryService services.InquiryService) *InquiryController {
	return &InquiryController{inquiryService: inquiryService}
}

// CreateInquiry accepts a contact-form submission
// @Summary Submit an inquiry
// @Description Stores the inquiry and notifies the site admin by email
// @Tags inquiries
// @Accept json
// @Produce json
// @Param request body dto.InquiryRequest true "Inquiry payload"
// @Success 201 {object} dto.APIResponse{data=models.Inquiry} "Inquiry stored"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /inquiries [post]
func (c *InquiryController) CreateInquiry(ctx *gin.Context) {
	var req dto.InquiryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	inquiry, err := c.inquiryService.CreateInquiry(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondCreated(ctx, inquiry)
}

// GetInquiries lists inquiries
// @Summary List inquiries
// @Description Retrieves inquiries, optionally filtered by type
// @Tags inquiries
// @Produce json
// @Security BearerAuth
// @Param type query string false "Inquiry type" Enums(move-in, business, recruit)
// @Param page query int false "Page number (1-based)" default(1)
// @Param size query int false "Page size" default(20) maximum(100)
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse} "Inquiries"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /inquiries [get]
func (c *InquiryController) GetInquiries(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	inquiries, total, err := c.inquiryService.GetInquiries(ctx, models.InquiryType(ctx.Query("type")), page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondPaginated(ctx, inquiries, total, page, size)
}

// GetInquiryByID retrieves one inquiry
// @Summary Get inquiry details
// @Tags inquiries
// @Produce json
// @Security BearerAuth
// @Param id path int true "Inquiry ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.Inquiry} "Inquiry"
// @Failure 400 {object} dto.ErrorResponse "Invalid inquiry ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 404 {object} dto.ErrorResponse "Inquiry not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /inquiries/{id} [get]
func (c *InquiryController) GetInquiryByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	inquiry, err := c.inquiryService.GetInquiryByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondOK(ctx, inquiry)
}

// DeleteInquiry deletes an inquiry
// @Summary Delete an inquiry
// @Tags inquiries
// @Produce json
// @Security BearerAuth
// @Param id path int true "Inquiry ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Inquiry deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid inquiry ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 404 {object} dto.ErrorResponse "Inquiry not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /inquiries/{id} [delete]
func (c *InquiryController) DeleteInquiry(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.inquiryService.DeleteInquiry(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondOK(ctx, dto.SuccessResponse{Message: "Inquiry deleted"})
}
