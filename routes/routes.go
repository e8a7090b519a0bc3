package routes

import (
	"net/http"
	"time"

	"edspire/handlers"
	"edspire/middleware"
	"edspire/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers registration and sign-in endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.User.RegisterHandler)
		api.POST("/login", hb.User.LoginHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("/logout", hb.User.LogoutHandler)
	}
}

// RegisterUserRoutes registers account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/me", hb.User.MeHandler)
		api.POST("/me/wallet", hb.User.LinkWalletHandler)
		api.PUT("/me/fcm-token", hb.User.FCMTokenHandler)
	}
}

// RegisterAvailabilityRoutes registers the schedule endpoints. The seed
// endpoint stays open so demo environments can be reset without a session.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/availability")
	{
		api.POST("/seed", hb.Availability.SeedHandler)
		api.GET("/:tutorId/status", hb.Availability.StatusHandler)
		api.GET("/:tutorId", hb.Availability.UpcomingHandler)
	}
}

// RegisterTutorRoutes registers the directory endpoints.
func RegisterTutorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/tutors")
	{
		api.GET("", hb.Tutor.ListHandler)
		api.GET("/:tutorId", hb.Tutor.GetHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		protected.POST("", hb.Tutor.CreateHandler)
		protected.PUT("/me", hb.Tutor.UpdateHandler)
		protected.POST("/me/avatar", hb.Tutor.AvatarHandler)
	}
}

// RegisterWalletRoutes registers balance sync and top-up endpoints. The
// Stripe webhook is unauthenticated; its signature check is the auth.
func RegisterWalletRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/wallet")
	{
		api.POST("/stripe/webhook", hb.Wallet.StripeWebhookHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		protected.POST("/sync", hb.Wallet.SyncHandler)
		protected.POST("/topup", hb.Wallet.TopUpHandler)
	}
}

// RegisterSessionRoutes registers the booking endpoints.
func RegisterSessionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/sessions")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("", hb.Session.BookHandler)
		api.GET("", hb.Session.ListHandler)
		api.DELETE("/:sessionId", hb.Session.CancelHandler)
	}
}

// RegisterAIRoutes registers the study assistant endpoints.
func RegisterAIRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/ai")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("/chat", hb.Assistant.ChatHandler)
		api.DELETE("/chat/context", hb.Assistant.ClearContextHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "Stripe-Signature"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterAvailabilityRoutes(r, hb)
	RegisterTutorRoutes(r, hb)
	RegisterWalletRoutes(r, hb)
	RegisterSessionRoutes(r, hb)
	RegisterAIRoutes(r, hb)
	RegisterHealthRoute(r)
}
