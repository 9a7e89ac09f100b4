// Package server contain implementation of go-gin-server and each route handlers
package server

import (
	"log"
	"net/http"
	"os"
	"strings"

	"JoinUsMaybe-backend/internal/auth"
	"JoinUsMaybe-backend/internal/controller"
	"JoinUsMaybe-backend/internal/middleware"
	"JoinUsMaybe-backend/internal/model"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	// Load env
	_ "github.com/joho/godotenv/autoload"

	// Init swagger doc
	_ "JoinUsMaybe-backend/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes will register each http endpoint routes to bound Server instance
func (s *MyServer) RegisterRoutes() http.Handler {
	r := gin.Default()

	allowOrginsStr := os.Getenv("ALLOW_ORIGIN")
	allowOrgins := strings.Split(allowOrginsStr, ",")

	googleOauth := &oauth2.Config{
		ClientID:     os.Getenv("GOOGLE_AUTH_CLIENT"),
		ClientSecret: os.Getenv("GOOGLE_AUTH_SECRET"),
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint:    google.Endpoint,
		RedirectURL: os.Getenv("OAUTH_REDIRECT_URL"),
	}

	gAuth := auth.NewOauthLoginHandler(s.DB, googleOauth, "https://www.googleapis.com/oauth2/v2/userinfo")
	lAuth := auth.NewLocalAuthHandler(s.DB)
	blacklist := auth.NewInMemoryBlacklistStore()
	logout := auth.NewLogoutController(blacklist)
	recruit := controller.NewRecruitController(s.DB)

	var storageClient *controller.CloudStorageClient
	if bucket := os.Getenv("GCS_BUCKET_NAME"); bucket != "" {
		var err error
		storageClient, err = controller.NewCloudStorageClient(bucket)
		if err != nil {
			log.Printf("Cloud storage disabled: %s", err)
		}
	}

	r.Use(middleware.SafeHeader())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrgins, // Add your frontend URL
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true, // Enable cookies/auth
	}))

	r.GET("/", s.HelloWorldHandler)
	r.GET("/health", s.healthHandler)
	v1 := r.Group("/api/v1")
	{
		authRoute := v1.Group("/auth")
		{
			authRoute.Use(middleware.EnvRateLimitMiddleware())
			authRoute.POST("google/applicant", gAuth.ApplicantGoogleLoginHandler)
			authRoute.GET("google/callback", gAuth.Callback)

			authRoute.POST("login", lAuth.LocalLoginHandler)
			authRoute.POST("register", lAuth.LocalRegisterHandler)
		}
		// Any routes
		needAuth := v1.Group("")
		{
			needAuth.Use(middleware.RequireAuth(s.DB), middleware.JwtBlacklistCheck(blacklist))
			needAuth.POST("/auth/logout", logout.LogoutHandler)

			file := needAuth.Group("/file")
			{
				file.GET(":id", recruit.GetFileHandler)
			}

			if storageClient != nil {
				needAuth.POST("/profile/picture",
					middleware.SizeLimit(10<<20),
					recruit.UploadProfilePictureHandler(storageClient))
			}

			applicantRoute := needAuth.Group("")
			{
				applicantRoute.Use(middleware.CheckRole(model.RoleApplicant))
				applicantRoute.POST("application", recruit.SubmitApplicationHandler)
				applicantRoute.GET("application/me", recruit.GetMyApplicationHandler)
				applicantRoute.POST("application/resume", middleware.SizeLimit(10<<20), recruit.UploadResumeHandler)
			}

			staffRoute := needAuth.Group("")
			{
				staffRoute.Use(middleware.CheckRole(model.RoleRecruiter, model.RoleAdmin))
				staffRoute.GET("applications", recruit.GetApplicationsHandler)
				staffRoute.GET("applications/:id", recruit.GetApplicationByID)
				staffRoute.POST("applications/:id/decision", recruit.DecisionHandler)
				staffRoute.POST("applications/:id/review", recruit.CreateReviewHandler)
				staffRoute.PATCH("reviews/:id", recruit.UpdateReviewHandler)
			}

			adminRoute := needAuth.Group("")
			{
				adminRoute.Use(middleware.CheckRole(model.RoleAdmin))
				adminRoute.POST("admin/recruiters", recruit.CreateRecruiterHandler)
				adminRoute.POST("applications/:id/recruiters", recruit.AssignRecruitersHandler)
			}
		}
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// HelloWorldHandler handle request by return message "Hello World"
func (s *MyServer) HelloWorldHandler(c *gin.Context) {
	resp := make(map[string]string)
	resp["message"] = "Hello World"

	c.JSON(http.StatusOK, resp)
}

func (s *MyServer) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, s.DB.Health())
}
