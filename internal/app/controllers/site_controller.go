package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/eohue/ibookee-web-sub001/internal/app/models"
	"github.com/eohue/ibookee-web-sub001/internal/app/models/dto"
	"github.com/eohue/ibookee-web-sub001/internal/app/services"
	"github.com/eohue/ibookee-web-sub001/internal/middleware"
)

// SiteController handles static site content: partners, company history
// and social account links.
type SiteController struct {
	siteService services.SiteService
}

// NewSiteController creates a new SiteController
func NewSiteController(siteService services.SiteService) *SiteController {
	return &SiteController{siteService: siteService}
}

// GetPartners lists partners
// @Summary List partners
// @Tags site
// @Produce json
// @Param category query string false "Partner category"
// @Success 200 {object} dto.APIResponse{data=[]models.Partner} "Partners"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /partners [get]
func (c *SiteController) GetPartners(ctx *gin.Context) {
	partners, err := c.siteService.GetPartners(ctx, ctx.Query("category"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondOK(ctx, partners)
}

// CreatePartner creates a partner
// @Summary Create a partner
// @Tags site
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.Partner true "Partner payload"
// @Success 201 {object} dto.APIResponse{data=models.Partner} "Partner created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /partners [post]
func (c *SiteController) CreatePartner(ctx *gin.Context) {
	var partner models.Partner
	if err := ctx.ShouldBindJSON(&partner); err != nil {
		respondBindError(ctx, err)
		return
	}

	created, err := c.siteService.CreatePartner(ctx, &partner)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondCreated(ctx, created)
}

// UpdatePartner updates a partner
// @Summary Update a partner
// @Tags site
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Partner ID" Format(int64) minimum(1)
// @Param request body models.Partner true "Partner payload"
// @Success 200 {object} dto.APIResponse{data=models.Partner} "Partner updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 404 {object} dto.ErrorResponse "Partner not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /partners/{id} [put]
func (c *SiteController) UpdatePartner(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var partner models.Partner
	if err := ctx.ShouldBindJSON(&partner); err != nil {
		respondBindError(ctx, err)
		return
	}
	partner.ID = id

	updated, err := c.siteService.UpdatePartner(ctx, &partner)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondOK(ctx, updated)
}

// DeletePartner deletes a partner
// @Summary Delete a partner
// @Tags site
// @Produce json
// @Security BearerAuth
// @Param id path int true "Partner ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Partner deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid partner ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 404 {object} dto.ErrorResponse "Partner not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /partners/{id} [delete]
func (c *SiteController) DeletePartner(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.siteService.DeletePartner(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondOK(ctx, dto.SuccessResponse{Message: "Partner deleted"})
}

// GetHistory lists company history milestones
// @Summary List history milestones
// @Description Retrieves milestones ordered by year descending
// @Tags site
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.HistoryMilestone} "Milestones"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /history [get]
func (c *SiteController) GetHistory(ctx *gin.Context) {
	milestones, err := c.siteService.GetMilestones(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondOK(ctx, milestones)
}

// CreateMilestone creates a history milestone
// @Summary Create a history milestone
// @Tags site
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.HistoryMilestone true "Milestone payload"
// @Success 201 {object} dto.APIResponse{data=models.HistoryMilestone} "Milestone created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /history [post]
func (c *SiteController) CreateMilestone(ctx *gin.Context) {
	var milestone models.HistoryMilestone
	if err := ctx.ShouldBindJSON(&milestone); err != nil {
		respondBindError(ctx, err)
		return
	}

	created, err := c.siteService.CreateMilestone(ctx, &milestone)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondCreated(ctx, created)
}

// UpdateMilestone updates a history milestone
// @Summary Update a history milestone
// @Tags site
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Milestone ID" Format(int64) minimum(1)
// @Param request body models.HistoryMilestone true "Milestone payload"
// @Success 200 {object} dto.APIResponse{data=models.HistoryMilestone} "Milestone updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 404 {object} dto.ErrorResponse "Milestone not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /history/{id} [put]
func (c *SiteController) UpdateMilestone(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var milestone models.HistoryMilestone
	if err := ctx.ShouldBindJSON(&milestone); err != nil {
		respondBindError(ctx, err)
		return
	}
	milestone.ID = id

	updated, err := c.siteService.UpdateMilestone(ctx, &milestone)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondOK(ctx, updated)
}

// DeleteMilestone deletes a history milestone
// @Summary Delete a history milestone
// @Tags site
// @Produce json
// @Security BearerAuth
// @Param id path int true "Milestone ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Milestone deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid milestone ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 404 {object} dto.ErrorResponse "Milestone not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /history/{id} [delete]
func (c *SiteController) DeleteMilestone(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.siteService.DeleteMilestone(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondOK(ctx, dto.SuccessResponse{Message: "Milestone deleted"})
}

// GetSocialAccounts lists social accounts
// @Summary List social accounts
// @Description Retrieves active accounts; admins pass all=true to include inactive ones
// @Tags site
// @Produce json
// @Param all query bool false "Include inactive accounts"
// @Success 200 {object} dto.APIResponse{data=[]models.SocialAccount} "Accounts"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /social-accounts [get]
func (c *SiteController) GetSocialAccounts(ctx *gin.Context) {
	activeOnly := true
	if raw := ctx.Query("all"); raw != "" {
		if all, err := strconv.ParseBool(raw); err == nil && all {
			activeOnly = false
		}
	}

	accounts, err := c.siteService.GetSocialAccounts(ctx, activeOnly)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondOK(ctx, accounts)
}

// CreateSocialAccount creates a social account link
// @Summary Create a social account
// @Tags site
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.SocialAccount true "Account payload"
// @Success 201 {object} dto.APIResponse{data=models.SocialAccount} "Account created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /social-accounts [post]
func (c *SiteController) CreateSocialAccount(ctx *gin.Context) {
	var account models.SocialAccount
	if err := ctx.ShouldBindJSON(&account); err != nil {
		respondBindError(ctx, err)
		return
	}

	created, err := c.siteService.CreateSocialAccount(ctx, &account)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondCreated(ctx, created)
}

// UpdateSocialAccount updates a social account link
// @Summary Update a social account
// @Tags site
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Account ID" Format(int64) minimum(1)
// @Param request body models.SocialAccount true "Account payload"
// @Success 200 {object} dto.APIResponse{data=models.SocialAccount} "Account updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /social-accounts/{id} [put]
func (c *SiteController) UpdateSocialAccount(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var account models.SocialAccount
	if err := ctx.ShouldBindJSON(&account); err != nil {
		respondBindError(ctx, err)
		return
	}
	account.ID = id

	updated, err := c.siteService.UpdateSocialAccount(ctx, &account)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondOK(ctx, updated)
}

// DeleteSocialAccount deletes a social account link
// @Summary Delete a social account
// @Tags site
// @Produce json
// @Security BearerAuth
// @Param id path int true "Account ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Account deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid account ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /social-accounts/{id} [delete]
func (c *SiteController) DeleteSocialAccount(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.siteService.DeleteSocialAccount(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondOK(ctx, dto.SuccessResponse{Message: "Account deleted"})
}
