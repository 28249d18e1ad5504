package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eohue/ibookee-web-sub001/internal/app/models"
	"github.com/eohue/ibookee-web-sub001/internal/app/models/dto"
	"github.com/eohue/ibookee-web-sub001/internal/pkg/apperrors"
)

type fakeCommunityService struct {
	posts      map[int64]*models.CommunityPost
	comments   map[int64][]*models.PostComment
	nextPostID int64
	nextCmtID  int64
}

func newFakeCommunityService() *fakeCommunityService {
	return &fakeCommunityService{
		posts:      map[int64]*models.CommunityPost{},
		comments:   map[int64][]*models.PostComment{},
		nextPostID: 1,
		nextCmtID:  1,
	}
}

func (s *fakeCommunityService) GetPosts(_ context.Context, page, size int) ([]*models.CommunityPost, int64, error) {
	var result []*models.CommunityPost
	for _, p := range s.posts {
		result = append(result, p)
	}
	return result, int64(len(result)), nil
}

func (s *fakeCommunityService) GetPostByID(_ context.Context, id int64) (*models.CommunityPost, error) {
	p, ok := s.posts[id]
	if !ok {
		return nil, apperrors.ErrPostNotFound
	}
	return p, nil
}

func (s *fakeCommunityService) CreatePost(_ context.Context, post *models.CommunityPost) (*models.CommunityPost, error) {
	post.ID = s.nextPostID
	s.nextPostID++
	s.posts[post.ID] = post
	return post, nil
}

func (s *fakeCommunityService) UpdatePost(_ context.Context, post *models.CommunityPost) (*models.CommunityPost, error) {
	if _, ok := s.posts[post.ID]; !ok {
		return nil, apperrors.ErrPostNotFound
	}
	s.posts[post.ID] = post
	return post, nil
}

func (s *fakeCommunityService) DeletePost(_ context.Context, id int64) error {
	if _, ok := s.posts[id]; !ok {
		return apperrors.ErrPostNotFound
	}
	delete(s.posts, id)
	return nil
}

func (s *fakeCommunityService) LikePost(_ context.Context, id int64) (int, error) {
	p, ok := s.posts[id]
	if !ok {
		return 0, apperrors.ErrPostNotFound
	}
	p.Likes++
	return p.Likes, nil
}

func (s *fakeCommunityService) GetComments(_ context.Context, postID int64) ([]*models.PostComment, error) {
	if _, ok := s.posts[postID]; !ok {
		return nil, apperrors.ErrPostNotFound
	}
	return s.comments[postID], nil
}

func (s *fakeCommunityService) AddComment(_ context.Context, postID int64, req *dto.PostCommentRequest) (*models.PostComment, error) {
	p, ok := s.posts[postID]
	if !ok {
		return nil, apperrors.ErrPostNotFound
	}
	comment := &models.PostComment{
		ID:        s.nextCmtID,
		PostID:    postID,
		Nickname:  req.Nickname,
		Content:   req.Content,
		CreatedAt: time.Now(),
	}
	s.nextCmtID++
	s.comments[postID] = append(s.comments[postID], comment)
	p.CommentCount++
	return comment, nil
}

func (s *fakeCommunityService) DeleteComment(_ context.Context, postID, commentID int64) error {
	comments := s.comments[postID]
	for i, c := range comments {
		if c.ID == commentID {
			s.comments[postID] = append(comments[:i], comments[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrCommentNotFound
}

func newCommunityRouter(svc *fakeCommunityService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	c := NewCommunityController(svc)
	router := gin.New()
	router.GET("/posts", c.GetPosts)
	router.GET("/posts/:id", c.GetPostByID)
	router.POST("/posts", c.CreatePost)
	router.POST("/posts/:id/like", c.LikePost)
	router.GET("/posts/:id/comments", c.GetComments)
	router.POST("/posts/:id/comments", c.AddComment)
	router.DELETE("/posts/:id/comments/:commentId", c.DeleteComment)
	return router
}

func seedPost(svc *fakeCommunityService) *models.CommunityPost {
	post, _ := svc.CreatePost(context.Background(), &models.CommunityPost{
		ImageURL: "https://cdn.example/images/p.webp",
		Caption:  "move-in day",
		Hashtags: []string{"ibookee"},
	})
	return post
}

func TestLikePostIncrements(t *testing.T) {
	svc := newFakeCommunityService()
	seedPost(svc)
	router := newCommunityRouter(svc)

	for want := 1; want <= 3; want++ {
		rec := doJSON(router, "POST", "/posts/1/like", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Data dto.LikeResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, want, resp.Data.Likes)
	}
}

func TestLikeMissingPost(t *testing.T) {
	router := newCommunityRouter(newFakeCommunityService())

	rec := doJSON(router, "POST", "/posts/42/like", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "RES_001")
}

func TestAddAndListComments(t *testing.T) {
	svc := newFakeCommunityService()
	seedPost(svc)
	router := newCommunityRouter(svc)

	rec := doJSON(router, "POST", "/posts/1/comments", gin.H{
		"nickname": "방문자",
		"content":  "좋아요!",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(router, "GET", "/posts/1/comments", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data []models.PostComment `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "방문자", resp.Data[0].Nickname)
	assert.Equal(t, int64(1), resp.Data[0].PostID)
}

func TestAddCommentValidation(t *testing.T) {
	svc := newFakeCommunityService()
	seedPost(svc)
	router := newCommunityRouter(svc)

	rec := doJSON(router, "POST", "/posts/1/comments", gin.H{"content": "no nickname"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VAL_001")
}

func TestDeleteComment(t *testing.T) {
	svc := newFakeCommunityService()
	seedPost(svc)
	router := newCommunityRouter(svc)
	doJSON(router, "POST", "/posts/1/comments", gin.H{"nickname": "n", "content": "c"})

	rec := doJSON(router, "DELETE", "/posts/1/comments/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(router, "DELETE", "/posts/1/comments/1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
