package server

import (
	"fmt"
	"os"
	"time"

	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/ecotrack/wastenexus/models"
)

func (s *Server) setupRouter() *gin.Engine {
	ginMode := os.Getenv("GIN_MODE")
	if ginMode == "test" {
		r := gin.New()
		s.defineRoutes(r)
		return r
	}

	r := gin.New()
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		return fmt.Sprintf("%s - [%s] \"%s %s %s %d %s \"%s\" %s\"\n",
			param.ClientIP,
			param.TimeStamp.Format(time.RFC1123),
			param.Method,
			param.Path,
			param.Request.Proto,
			param.StatusCode,
			param.Latency,
			param.Request.UserAgent(),
			param.ErrorMessage,
		)
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	s.defineRoutes(r)

	return r
}

func (s *Server) defineRoutes(router *gin.Engine) {
	store := ratelimit.InMemoryStore(&ratelimit.InMemoryOptions{
		Rate:  time.Minute,
		Limit: 3,
	})
	limitRate := limitRateForPasswordReset(store)

	apirouter := router.Group("/api/v1")
	apirouter.POST("/auth/signup", s.handleSignup())
	apirouter.POST("/auth/login", s.handleLogin())
	apirouter.POST("/password/forgot", limitRate, s.HandleForgotPassword())
	apirouter.POST("/password/reset/:token", s.ResetPassword())
	apirouter.GET("/events", s.handleListEvents())
	apirouter.GET("/marketplace/items", s.handleBrowseItems())
	apirouter.GET("/rewards/leaderboard", s.handleGetLeaderboard())

	authorized := apirouter.Group("/")
	authorized.Use(s.Authorize())

	authorized.GET("/logout", s.handleLogout())
	authorized.GET("/me", s.handleShowProfile())
	authorized.PUT("/me/updateUserProfile", s.handleEditUserProfile())

	// waste reports
	authorized.POST("/reports", s.handleCreateReport())
	authorized.GET("/user/reports", s.handleGetMyReports())
	authorized.GET("/reports/:reportID", s.handleGetReport())
	authorized.GET("/reports", s.RequireRoles(models.RoleAdmin), s.handleListReports())
	authorized.PUT("/reports/:reportID/verify", s.RequireRoles(models.RoleAdmin), s.handleVerifyReport())
	authorized.PUT("/reports/:reportID/reject", s.RequireRoles(models.RoleAdmin), s.handleRejectReport())

	// collection jobs
	authorized.POST("/jobs", s.handleCreateJob())
	authorized.GET("/user/jobs", s.handleGetMyJobs())
	authorized.GET("/worker/jobs", s.RequireRoles(models.RoleWorker), s.handleGetAssignedJobs())
	authorized.GET("/jobs/:jobID", s.handleGetJob())
	authorized.GET("/jobs", s.RequireRoles(models.RoleAdmin), s.handleListJobs())
	authorized.PUT("/jobs/:jobID/verify", s.RequireRoles(models.RoleAdmin), s.handleVerifyJob())
	authorized.PUT("/jobs/:jobID/reject", s.RequireRoles(models.RoleAdmin), s.handleRejectJob())
	authorized.PUT("/jobs/:jobID/assign", s.RequireRoles(models.RoleAdmin), s.handleAssignJob())
	authorized.PUT("/jobs/:jobID/start", s.RequireRoles(models.RoleWorker), s.handleStartJob())
	authorized.PUT("/jobs/:jobID/complete", s.RequireRoles(models.RoleWorker), s.handleCompleteJob())

	// marketplace
	authorized.POST("/marketplace/items", s.handleListItem())
	authorized.GET("/user/marketplace/items", s.handleGetMyItems())
	authorized.PUT("/marketplace/items/:itemID/approve", s.RequireRoles(models.RoleAdmin), s.handleApproveItem())
	authorized.PUT("/marketplace/items/:itemID/reject", s.RequireRoles(models.RoleAdmin), s.handleRejectItem())

	// events
	authorized.POST("/events", s.RequireRoles(models.RoleChampion, models.RoleAdmin), s.handleCreateEvent())
	authorized.PUT("/events/:eventID/activate", s.RequireRoles(models.RoleChampion, models.RoleAdmin), s.handleActivateEvent())
	authorized.PUT("/events/:eventID/complete", s.RequireRoles(models.RoleChampion, models.RoleAdmin), s.handleCompleteEvent())
	authorized.POST("/events/:eventID/join", s.handleJoinEvent())
	authorized.POST("/events/:eventID/participants/:userID/attended", s.RequireRoles(models.RoleChampion, models.RoleAdmin), s.handleMarkParticipation())
	authorized.GET("/events/:eventID/participants", s.handleGetParticipants())

	// worker tasks
	authorized.POST("/tasks", s.RequireRoles(models.RoleAdmin), s.handleCreateTask())
	authorized.GET("/tasks/mine", s.RequireRoles(models.RoleWorker), s.handleGetMyTasks())
	authorized.PUT("/tasks/:taskID/start", s.RequireRoles(models.RoleWorker), s.handleStartTask())
	authorized.PUT("/tasks/:taskID/complete", s.RequireRoles(models.RoleWorker), s.handleCompleteTask())

	// rewards
	authorized.GET("/rewards/me", s.handleGetMyRewardSummary())
	authorized.GET("/rewards/me/transactions", s.handleGetMyTransactions())
	authorized.GET("/rewards/me/stats", s.handleGetMyTransactionStats())
	authorized.GET("/rewards/stats", s.RequireRoles(models.RoleAdmin), s.handleGetGlobalTransactionStats())
	authorized.GET("/rewards/total", s.RequireRoles(models.RoleAdmin), s.handleGetTotalPointsIssued())
	authorized.GET("/rewards/users/:userID/transactions", s.RequireRoles(models.RoleAdmin), s.handleGetUserTransactions())
	authorized.POST("/rewards/adjust", s.RequireRoles(models.RoleAdmin), s.handleManualAdjustment())
	authorized.GET("/users/all", s.RequireRoles(models.RoleAdmin), s.handleGetAllUsers())
}
