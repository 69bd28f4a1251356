package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Anurg29/Aluminiconnect/internal/app/controllers"
	"github.com/Anurg29/Aluminiconnect/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	jobController *controllers.JobController,
	chatController *controllers.ChatController,
	adminController *controllers.AdminController,
	authMiddleware *middleware.AuthMiddleware,
	uploadDir string,
) {
	// Landing and health endpoints
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":    "AlumniConnect API",
			"message": "Connecting students and alumni",
		})
	})

	api := router.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Uploaded avatars are served statically
	router.Static("/uploads", uploadDir)

	// --- Public auth routes ---
	auth := api.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.Refresh)
	}

	// --- Authenticated routes ---
	authenticated := api.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		// Own profile
		profile := authenticated.Group("/auth")
		{
			profile.GET("/me", authController.GetProfile)
			profile.PUT("/update-profile", authController.UpdateProfile)
			profile.POST("/change-password", authController.ChangePassword)
			profile.POST("/upload-avatar", authController.UploadAvatar)
		}

		// Member directory
		users := authenticated.Group("/users")
		{
			users.GET("/alumni", userController.ListAlumni)
			users.GET("/students", userController.ListStudents)
			users.GET("/departments", userController.ListDepartments)
			users.GET("/stats", userController.GetDirectoryStats)
			users.GET("/:id", userController.GetUser)
		}

		// Job board
		jobs := authenticated.Group("/jobs")
		{
			jobs.GET("", jobController.ListJobs)
			jobs.GET("/:id", jobController.GetJob)

			jobsAlumni := jobs.Group("")
			jobsAlumni.Use(authMiddleware.AlumniRequired())
			{
				jobsAlumni.POST("", jobController.CreateJob)
				jobsAlumni.GET("/my-jobs", jobController.ListMyJobs)
				jobsAlumni.PUT("/:id", jobController.UpdateJob)
				jobsAlumni.DELETE("/:id", jobController.DeleteJob)
				jobsAlumni.GET("/:id/applications", jobController.ListJobApplications)
				jobsAlumni.PUT("/applications/:id/status", jobController.UpdateApplicationStatus)
			}

			jobsStudent := jobs.Group("")
			jobsStudent.Use(authMiddleware.StudentRequired())
			{
				jobsStudent.POST("/:id/apply", jobController.Apply)
				jobsStudent.GET("/my-applications", jobController.ListMyApplications)
			}
		}

		// Direct messaging
		chat := authenticated.Group("/chat")
		{
			chat.POST("/send", chatController.SendMessage)
			chat.GET("/messages/:userId", chatController.GetThread)
			chat.PUT("/mark-read/:id", chatController.MarkMessageRead)
			chat.DELETE("/delete/:id", chatController.DeleteMessage)
			chat.GET("/conversations", chatController.ListConversations)
			chat.GET("/unread-count", chatController.GetUnreadCount)
		}

		// Administration backend
		admin := authenticated.Group("/admin")
		admin.Use(authMiddleware.AdminRequired())
		{
			admin.GET("/users", adminController.ListUsers)
			admin.GET("/pending-users", adminController.ListPendingUsers)
			admin.GET("/user/:id", adminController.GetUserDetail)
			admin.PUT("/verify-user/:id", adminController.VerifyUser)
			admin.DELETE("/reject-user/:id", adminController.RejectUser)
			admin.PUT("/activate-user/:id", adminController.ActivateUser)
			admin.PUT("/deactivate-user/:id", adminController.DeactivateUser)
			admin.DELETE("/delete-user/:id", adminController.DeleteUser)
			admin.GET("/stats", adminController.GetStats)
		}
	}
}
