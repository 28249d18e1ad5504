package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/eohue/ibookee-web-sub001/internal/app/models"
	"github.com/eohue/ibookee-web-sub001/internal/app/models/dto"
	"github.com/eohue/ibookee-web-sub001/internal/app/services"
	"github.com/eohue/ibookee-web-sub001/internal/middleware"
	"github.com/eohue/ibookee-web-sub001/internal/pkg/helpers"
)

// ReporterController handles resident reporter articles. Submissions start
// pending and become publicly visible once an admin approves them.
type ReporterController struct {
	reporterService services.ReporterService
	authService     services.AuthService
}

// NewReporterController creates a new ReporterController
func NewReporterController(reporterService services.ReporterService, authService services.AuthService) *ReporterController {
	return &ReporterController{
		reporterService: reporterService,
		authService:     authService,
	}
}

// GetArticles lists approved reporter articles
// @Summary List reporter articles
// @Tags reporters
// @Produce json
// @Param page query int false "Page number (1-based)" default(1)
// @Param size query int false "Page size" default(20) maximum(100)
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse} "Articles"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reporters [get]
func (c *ReporterController) GetArticles(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	articles, total, err := c.reporterService.GetArticles(ctx, models.ReporterApproved, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondPaginated(ctx, articles, total, page, size)
}

// GetAllArticles lists articles for moderation
// @Summary List reporter articles including pending
// @Description Retrieves articles in any status; pass status=pending for the review queue
// @Tags reporters
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter" Enums(pending, approved)
// @Param page query int false "Page number (1-based)" default(1)
// @Param size query int false "Page size" default(20) maximum(100)
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse} "Articles"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/reporters [get]
func (c *ReporterController) GetAllArticles(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	articles, total, err := c.reporterService.GetArticles(ctx, models.ReporterStatus(ctx.Query("status")), page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondPaginated(ctx, articles, total, page, size)
}

// GetArticleByID retrieves one approved article
// @Summary Get reporter article details
// @Description Returns the article with its Markdown rendered to sanitized HTML
// @Tags reporters
// @Produce json
// @Param id path int true "Article ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.ReporterArticle} "Article"
// @Failure 400 {object} dto.ErrorResponse "Invalid article ID"
// @Failure 404 {object} dto.ErrorResponse "Article not found or not approved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reporters/{id} [get]
func (c *ReporterController) GetArticleByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	article, err := c.reporterService.GetArticleByID(ctx, id, true)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondOK(ctx, article)
}

// Submit accepts a reporter article submission
// @Summary Submit a reporter article
// @Description Creates a pending article owned by the authenticated user
// @Tags reporters
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ReporterSubmitRequest true "Submission payload"
// @Success 201 {object} dto.APIResponse{data=models.ReporterArticle} "Article submitted"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reporters [post]
func (c *ReporterController) Submit(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.ReporterSubmitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	user, err := c.authService.GetUserByID(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	article, err := c.reporterService.Submit(ctx, userID, user.Name, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondCreated(ctx, article)
}

// Approve publishes a pending article
// @Summary Approve a reporter article
// @Tags reporters
// @Produce json
// @Security BearerAuth
// @Param id path int true "Article ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Article approved"
// @Failure 400 {object} dto.ErrorResponse "Invalid article ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 404 {object} dto.ErrorResponse "Article not found"
// @Failure 409 {object} dto.ErrorResponse "Article already approved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reporters/{id}/approve [patch]
func (c *ReporterController) Approve(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.reporterService.Approve(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondOK(ctx, dto.SuccessResponse{Message: "Article approved"})
}

// DeleteArticle deletes an article
// @Summary Delete a reporter article
// @Tags reporters
// @Produce json
// @Security BearerAuth
// @Param id path int true "Article ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Article deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid article ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 404 {object} dto.ErrorResponse "Article not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reporters/{id} [delete]
func (c *ReporterController) DeleteArticle(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.reporterService.DeleteArticle(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondOK(ctx, dto.SuccessResponse{Message: "Article deleted"})
}

// LikeArticle bumps the like counter
// @Summary Like a reporter article
// @Tags reporters
// @Produce json
// @Param id path int true "Article ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.LikeResponse} "Updated counter"
// @Failure 400 {object} dto.ErrorResponse "Invalid article ID"
// @Failure 404 {object} dto.ErrorResponse "Article not found or not approved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reporters/{id}/like [post]
func (c *ReporterController) LikeArticle(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	likes, err := c.reporterService.LikeArticle(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondOK(ctx, dto.LikeResponse{Likes: likes})
}

// GetComments lists comments on an article
// @Summary List reporter article comments
// @Tags reporters
// @Produce json
// @Param id path int true "Article ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=[]models.ReporterComment} "Comments"
// @Failure 400 {object} dto.ErrorResponse "Invalid article ID"
// @Failure 404 {object} dto.ErrorResponse "Article not found or not approved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reporters/{id}/comments [get]
func (c *ReporterController) GetComments(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	comments, err := c.reporterService.GetComments(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondOK(ctx, comments)
}

// AddComment adds a comment as the authenticated user
// @Summary Comment on a reporter article
// @Tags reporters
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Article ID" Format(int64) minimum(1)
// @Param request body dto.ReporterCommentRequest true "Comment payload"
// @Success 201 {object} dto.APIResponse{data=models.ReporterComment} "Comment created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Article not found or not approved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reporters/{id}/comments [post]
func (c *ReporterController) AddComment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	userID, okUser := middleware.CurrentUserID(ctx)
	if !okUser {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.ReporterCommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	comment, err := c.reporterService.AddComment(ctx, id, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondCreated(ctx, comment)
}

// DeleteComment removes a comment
// @Summary Delete a reporter article comment
// @Tags reporters
// @Produce json
// @Security BearerAuth
// @Param id path int true "Article ID" Format(int64) minimum(1)
// @Param commentId path int true "Comment ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Comment deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 404 {object} dto.ErrorResponse "Comment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reporters/{id}/comments/{commentId} [delete]
func (c *ReporterController) DeleteComment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	commentID, ok := parseIDParam(ctx, "commentId")
	if !ok {
		return
	}

	if err := c.reporterService.DeleteComment(ctx, id, commentID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondOK(ctx, dto.SuccessResponse{Message: "Comment deleted"})
}
