package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/eohue/ibookee-web-sub001/internal/app/controllers"
	"github.com/eohue/ibookee-web-sub001/internal/app/models"
	"github.com/eohue/ibookee-web-sub001/internal/app/models/dto"
	"github.com/eohue/ibookee-web-sub001/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	projectController *controllers.ProjectController,
	eventController *controllers.EventController,
	programController *controllers.ProgramController,
	recruitmentController *controllers.RecruitmentController,
	articleController *controllers.ArticleController,
	communityController *controllers.CommunityController,
	reporterController *controllers.ReporterController,
	siteController *controllers.SiteController,
	inquiryController *controllers.InquiryController,
	pageController *controllers.PageController,
	uploadController *controllers.UploadController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	// --- Public content routes ---
	projects := v1.Group("/projects")
	{
		projects.GET("", projectController.GetProjects)
		projects.GET("/:id", projectController.GetProjectByID)
	}

	events := v1.Group("/events")
	{
		events.GET("", eventController.GetEvents)
		events.GET("/:id", eventController.GetEventByID)
	}

	programs := v1.Group("/programs")
	{
		programs.GET("", programController.GetPrograms)
		programs.GET("/:id", programController.GetProgramByID)
	}

	// Drafts are invisible here; the admin listing lives under /admin.
	recruitments := v1.Group("/recruitments")
	{
		recruitments.GET("", recruitmentController.GetRecruitments)
		recruitments.GET("/:id", recruitmentController.GetRecruitmentByID)
	}

	articles := v1.Group("/articles")
	{
		articles.GET("", articleController.GetArticles)
		articles.GET("/:id", articleController.GetArticleByID)
	}

	// Community posts allow anonymous likes and comments.
	posts := v1.Group("/posts")
	{
		posts.GET("", communityController.GetPosts)
		posts.GET("/:id", communityController.GetPostByID)
		posts.POST("/:id/like", communityController.LikePost)
		posts.GET("/:id/comments", communityController.GetComments)
		posts.POST("/:id/comments", communityController.AddComment)
	}

	reporters := v1.Group("/reporters")
	{
		reporters.GET("", reporterController.GetArticles)
		reporters.GET("/:id", reporterController.GetArticleByID)
		reporters.POST("/:id/like", reporterController.LikeArticle)
		reporters.GET("/:id/comments", reporterController.GetComments)
	}

	v1.GET("/partners", siteController.GetPartners)
	v1.GET("/history", siteController.GetHistory)
	v1.GET("/social-accounts", siteController.GetSocialAccounts)
	v1.GET("/pages/:pageKey/images", pageController.GetPageImages)
	v1.GET("/settings/:key", pageController.GetSetting)

	v1.POST("/inquiries", inquiryController.CreateInquiry)
	v1.POST("/applications", programController.Apply)

	// --- Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.Refresh)
		auth.POST("/logout", authController.Logout)
		auth.GET("/me", authMiddleware.JWTAuth(), authController.Me)
		auth.GET("/:provider", authController.OAuthRedirect)
		auth.GET("/:provider/callback", authController.OAuthCallback)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.POST("/reporters", reporterController.Submit)
		authenticated.POST("/reporters/:id/comments", reporterController.AddComment)
	}

	// --- Admin routes ---
	admin := v1.Group("")
	admin.Use(authMiddleware.JWTAuth(), authMiddleware.RoleRequired(models.RoleAdmin))
	{
		admin.POST("/projects", projectController.CreateProject)
		admin.PUT("/projects/:id", projectController.UpdateProject)
		admin.DELETE("/projects/:id", projectController.DeleteProject)

		admin.POST("/events", eventController.CreateEvent)
		admin.PUT("/events/:id", eventController.UpdateEvent)
		admin.DELETE("/events/:id", eventController.DeleteEvent)

		admin.POST("/programs", programController.CreateProgram)
		admin.PUT("/programs/:id", programController.UpdateProgram)
		admin.DELETE("/programs/:id", programController.DeleteProgram)

		admin.POST("/recruitments", recruitmentController.CreateRecruitment)
		admin.PUT("/recruitments/:id", recruitmentController.UpdateRecruitment)
		admin.DELETE("/recruitments/:id", recruitmentController.DeleteRecruitment)
		admin.GET("/admin/recruitments", recruitmentController.GetAllRecruitments)

		admin.POST("/articles", articleController.CreateArticle)
		admin.PUT("/articles/:id", articleController.UpdateArticle)
		admin.DELETE("/articles/:id", articleController.DeleteArticle)

		admin.POST("/posts", communityController.CreatePost)
		admin.PUT("/posts/:id", communityController.UpdatePost)
		admin.DELETE("/posts/:id", communityController.DeletePost)
		admin.DELETE("/posts/:id/comments/:commentId", communityController.DeleteComment)

		admin.GET("/admin/reporters", reporterController.GetAllArticles)
		admin.PATCH("/reporters/:id/approve", reporterController.Approve)
		admin.DELETE("/reporters/:id", reporterController.DeleteArticle)
		admin.DELETE("/reporters/:id/comments/:commentId", reporterController.DeleteComment)

		admin.POST("/partners", siteController.CreatePartner)
		admin.PUT("/partners/:id", siteController.UpdatePartner)
		admin.DELETE("/partners/:id", siteController.DeletePartner)

		admin.POST("/history", siteController.CreateMilestone)
		admin.PUT("/history/:id", siteController.UpdateMilestone)
		admin.DELETE("/history/:id", siteController.DeleteMilestone)

		admin.POST("/social-accounts", siteController.CreateSocialAccount)
		admin.PUT("/social-accounts/:id", siteController.UpdateSocialAccount)
		admin.DELETE("/social-accounts/:id", siteController.DeleteSocialAccount)

		admin.POST("/pages/:pageKey/images", pageController.AddPageImage)
		admin.PUT("/pages/:pageKey/images/order", pageController.ReorderSlot)
		admin.PUT("/pages/:pageKey/images/:id", pageController.UpdatePageImage)
		admin.DELETE("/pages/:pageKey/images/:id", pageController.DeletePageImage)

		admin.GET("/settings", pageController.GetSettings)
		admin.PUT("/settings/:key", pageController.UpsertSetting)
		admin.DELETE("/settings/:key", pageController.DeleteSetting)

		admin.GET("/inquiries", inquiryController.GetInquiries)
		admin.GET("/inquiries/:id", inquiryController.GetInquiryByID)
		admin.DELETE("/inquiries/:id", inquiryController.DeleteInquiry)

		admin.GET("/applications", programController.GetApplications)
		admin.DELETE("/applications/:id", programController.DeleteApplication)

		admin.POST("/uploads", uploadController.Upload)
		admin.DELETE("/uploads", uploadController.Delete)
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}
