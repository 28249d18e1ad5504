package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/eohue/ibookee-web-sub001/internal/app/models"
	"github.com/eohue/ibookee-web-sub001/internal/app/models/dto"
	"github.com/eohue/ibookee-web-sub001/internal/app/services"
	"github.com/eohue/ibookee-web-sub001/internal/middleware"
	"github.com/eohue/ibookee-web-sub001/internal/pkg/helpers"
)

// CommunityController handles community posts, anonymous comments and likes
type CommunityController struct {
	communityService services.CommunityService
}

// NewCommunityController creates a new CommunityController
func NewCommunityController(communityService services.CommunityService) *CommunityController {
	return &CommunityController{communityService: communityService}
}

// GetPosts lists community posts
// @Summary List posts
// @Tags community
// @Produce json
// @Param page query int false "Page number (1-based)" default(1)
// @Param size query int false "Page size" default(20) maximum(100)
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse} "Posts"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /posts [get]
func (c *CommunityController) GetPosts(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	posts, total, err := c.communityService.GetPosts(ctx, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondPaginated(ctx, posts, total, page, size)
}

// GetPostByID retrieves one post
// @Summary Get post details
// @Tags community
// @Produce json
// @Param id path int true "Post ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.CommunityPost} "Post"
// @Failure 400 {object} dto.ErrorResponse "Invalid post ID"
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /posts/{id} [get]
func (c *CommunityController) GetPostByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	post, err := c.communityService.GetPostByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondOK(ctx, post)
}

// CreatePost creates a post
// @Summary Create a post
// @Tags community
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CommunityPost true "Post payload"
// @Success 201 {object} dto.APIResponse{data=models.CommunityPost} "Post created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /posts [post]
func (c *CommunityController) CreatePost(ctx *gin.Context) {
	var post models.CommunityPost
	if err := ctx.ShouldBindJSON(&post); err != nil {
		respondBindError(ctx, err)
		return
	}

	created, err := c.communityService.CreatePost(ctx, &post)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondCreated(ctx, created)
}

// UpdatePost updates a post
// @Summary Update a post
// @Tags community
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID" Format(int64) minimum(1)
// @Param request body models.CommunityPost true "Post payload"
// @Success 200 {object} dto.APIResponse{data=models.CommunityPost} "Post updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /posts/{id} [put]
func (c *CommunityController) UpdatePost(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var post models.CommunityPost
	if err := ctx.ShouldBindJSON(&post); err != nil {
		respondBindError(ctx, err)
		return
	}
	post.ID = id

	updated, err := c.communityService.UpdatePost(ctx, &post)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondOK(ctx, updated)
}

// DeletePost deletes a post
// @Summary Delete a post
// @Tags community
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Post deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid post ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /posts/{id} [delete]
func (c *CommunityController) DeletePost(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.communityService.DeletePost(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondOK(ctx, dto.SuccessResponse{Message: "Post deleted"})
}

// LikePost bumps the like counter
// @Summary Like a post
// @Description Increments the post's like counter and returns the new value
// @Tags community
// @Produce json
// @Param id path int true "Post ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.LikeResponse} "Updated counter"
// @Failure 400 {object} dto.ErrorResponse "Invalid post ID"
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /posts/{id}/like [post]
func (c *CommunityController) LikePost(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	likes, err := c.communityService.LikePost(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondOK(ctx, dto.LikeResponse{Likes: likes})
}

// GetComments lists comments on a post
// @Summary List post comments
// @Tags community
// @Produce json
// @Param id path int true "Post ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=[]models.PostComment} "Comments"
// @Failure 400 {object} dto.ErrorResponse "Invalid post ID"
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /posts/{id}/comments [get]
func (c *CommunityController) GetComments(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	comments, err := c.communityService.GetComments(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondOK(ctx, comments)
}

// AddComment adds an anonymous comment
// @Summary Comment on a post
// @Description Adds a nickname-signed comment; no account is required
// @Tags community
// @Accept json
// @Produce json
// @Param id path int true "Post ID" Format(int64) minimum(1)
// @Param request body dto.PostCommentRequest true "Comment payload"
// @Success 201 {object} dto.APIResponse{data=models.PostComment} "Comment created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /posts/{id}/comments [post]
func (c *CommunityController) AddComment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.PostCommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	comment, err := c.communityService.AddComment(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondCreated(ctx, comment)
}

// DeleteComment removes a comment
// @Summary Delete a post comment
// @Tags community
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID" Format(int64) minimum(1)
// @Param commentId path int true "Comment ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Comment deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 404 {object} dto.ErrorResponse "Comment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /posts/{id}/comments/{commentId} [delete]
func (c *CommunityController) DeleteComment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	commentID, ok := parseIDParam(ctx, "commentId")
	if !ok {
		return
	}

	if err := c.communityService.DeleteComment(ctx, id, commentID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondOK(ctx, dto.SuccessResponse{Message: "Comment deleted"})
}
