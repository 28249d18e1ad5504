package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/eohue/ibookee-web-sub001/internal/app/models"
	"github.com/eohue/ibookee-web-sub001/internal/app/models/dto"
	"github.com/eohue/ibookee-web-sub001/internal/app/services"
	"github.com/eohue/ibookee-web-sub001/internal/middleware"
	"github.com/eohue/ibookee-web-sub001/internal/pkg/helpers"
)

// ArticleController handles editorial content (columns, media coverage and
// the resource library)
type ArticleController struct {
	articleService services.ArticleService
}

// NewArticleController creates a new ArticleController
func NewArticleController(articleService services.ArticleService) *ArticleController {
	return &ArticleController{articleService: articleService}
}

// GetArticles lists articles
// @Summary List articles
// @Description Retrieves articles, optionally filtered by category and featured flag
// @Tags articles
// @Produce json
// @Param category query string false "Article category" Enums(column, media, library)
// @Param featured query bool false "Featured filter"
// @Param page query int false "Page number (1-based)" default(1)
// @Param size query int false "Page size" default(20) maximum(100)
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse} "Articles"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /articles [get]
func (c *ArticleController) GetArticles(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	var featured *bool
	if raw := ctx.Query("featured"); raw != "" {
		if value, err := strconv.ParseBool(raw); err == nil {
			featured = &value
		}
	}

	articles, total, err := c.articleService.GetArticles(ctx, models.ArticleCategory(ctx.Query("category")), featured, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondPaginated(ctx, articles, total, page, size)
}

// GetArticleByID retrieves one article
// @Summary Get article details
// @Tags articles
// @Produce json
// @Param id path int true "Article ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.Article} "Article"
// @Failure 400 {object} dto.ErrorResponse "Invalid article ID"
// @Failure 404 {object} dto.ErrorResponse "Article not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /articles/{id} [get]
func (c *ArticleController) GetArticleByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	article, err := c.articleService.GetArticleByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondOK(ctx, article)
}

// CreateArticle creates an article
// @Summary Create an article
// @Tags articles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.Article true "Article payload"
// @Success 201 {object} dto.APIResponse{data=models.Article} "Article created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /articles [post]
func (c *ArticleController) CreateArticle(ctx *gin.Context) {
	var article models.Article
	if err := ctx.ShouldBindJSON(&article); err != nil {
		respondBindError(ctx, err)
		return
	}

	created, err := c.articleService.CreateArticle(ctx, &article)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondCreated(ctx, created)
}

// UpdateArticle updates an article
// @Summary Update an article
// @Tags articles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Article ID" Format(int64) minimum(1)
// @Param request body models.Article true "Article payload"
// @Success 200 {object} dto.APIResponse{data=models.Article} "Article updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 404 {object} dto.ErrorResponse "Article not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /articles/{id} [put]
func (c *ArticleController) UpdateArticle(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var article models.Article
	if err := ctx.ShouldBindJSON(&article); err != nil {
		respondBindError(ctx, err)
		return
	}
	article.ID = id

	updated, err := c.articleService.UpdateArticle(ctx, &article)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondOK(ctx, updated)
}

// DeleteArticle deletes an article
// @Summary Delete an article
// @Tags articles
// @Produce json
// @Security BearerAuth
// @Param id path int true "Article ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Article deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid article ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 404 {object} dto.ErrorResponse "Article not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /articles/{id} [delete]
func (c *ArticleController) DeleteArticle(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.articleService.DeleteArticle(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondOK(ctx, dto.SuccessResponse{Message: "Article deleted"})
}
