package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"gymdesk/internal/auth"
	"gymdesk/internal/config"
	"gymdesk/internal/dietplan"
	"gymdesk/internal/gym"
	"gymdesk/internal/inquiry"
	"gymdesk/internal/member"
	"gymdesk/internal/notify"
	"gymdesk/internal/owner"
	"gymdesk/internal/payment"
	"gymdesk/internal/plan"
	"gymdesk/internal/user"
)

type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *sqlx.DB
	config *config.Config
	notify *notify.Service
}

func New(db *sqlx.DB, cfg *config.Config, notifyService *notify.Service) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())

	userHandler := user.NewHandler(db, cfg.JWTAccessSecret, cfg.JWTRefreshSecret)
	planHandler := plan.NewHandler(db)
	ownerHandler := owner.NewHandler(db)
	gymHandler := gym.NewHandler(db, cfg.ExpiringSoonDays)
	memberHandler := member.NewHandler(db, cfg.ExpiringSoonDays)
	paymentHandler := payment.NewHandler(db)
	inquiryHandler := inquiry.NewHandler(db)
	dietPlanHandler := dietplan.NewHandler(db)

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())
	router.GET("/test-email", TestEmail(notifyService))
	SetupSwagger(router)

	public := router.Group("/auth")
	public.Use(RateLimitMiddleware(5, 10))
	{
		public.POST("/register", userHandler.Register)
		public.POST("/login", userHandler.Login)
		public.POST("/refresh", userHandler.Refresh)
	}

	// Walk-in inquiry form is unauthenticated by design.
	router.POST("/inquiries", RateLimitMiddleware(2, 5), inquiryHandler.Create)

	authMiddleware := auth.AuthMiddleware(cfg.JWTAccessSecret)
	protected := router.Group("/")
	protected.Use(authMiddleware)
	{
		protected.GET("/auth/me", userHandler.Me)

		protected.GET("/plans", planHandler.List)
		protected.GET("/plans/:planID", planHandler.Get)

		protected.GET("/gyms", gymHandler.List)
		protected.GET("/gyms/:gymID", gymHandler.Get)
		protected.PUT("/gyms/:gymID", gymHandler.Update)
		protected.GET("/gyms/:gymID/subscriptions", gymHandler.History)
		protected.POST("/gyms/:gymID/subscriptions", gymHandler.Subscribe)
		protected.GET("/gyms/:gymID/plan-change/preview", gymHandler.PreviewChange)
		protected.POST("/gyms/:gymID/plan-change", gymHandler.ChangePlan)

		protected.POST("/members", memberHandler.Create)
		protected.GET("/gyms/:gymID/members", memberHandler.ListByGym)
		protected.GET("/members/:memberID", memberHandler.Get)
		protected.PUT("/members/:memberID", memberHandler.Update)
		protected.POST("/members/:memberID/memberships", memberHandler.Assign)
		protected.GET("/members/:memberID/memberships", memberHandler.History)

		protected.POST("/members/:memberID/payments", paymentHandler.Record)
		protected.GET("/members/:memberID/payments", paymentHandler.List)
		protected.GET("/members/:memberID/payments/summary", paymentHandler.GetSummary)
		protected.PUT("/payments/:paymentID", paymentHandler.Amend)

		protected.GET("/gyms/:gymID/inquiries", inquiryHandler.ListByGym)
		protected.GET("/inquiries/:inquiryID", inquiryHandler.Get)
		protected.PUT("/inquiries/:inquiryID/status", inquiryHandler.UpdateStatus)

		protected.POST("/members/:memberID/diet-plans", dietPlanHandler.Create)
		protected.GET("/members/:memberID/diet-plans", dietPlanHandler.ListByMember)
		protected.PUT("/diet-plans/:dietPlanID", dietPlanHandler.Update)
		protected.DELETE("/diet-plans/:dietPlanID", dietPlanHandler.Delete)
	}

	adminMiddleware := auth.RequireRole(auth.RoleAdmin)
	admin := router.Group("/admin")
	admin.Use(authMiddleware, adminMiddleware)
	{
		admin.POST("/plans", planHandler.Create)
		admin.PUT("/plans/:planID", planHandler.Update)
		admin.DELETE("/plans/:planID", planHandler.Deactivate)

		admin.POST("/owners", ownerHandler.Create)
		admin.GET("/owners", ownerHandler.List)
		admin.GET("/owners/:ownerID", ownerHandler.Get)
		admin.PUT("/owners/:ownerID", ownerHandler.Update)
		admin.DELETE("/owners/:ownerID", ownerHandler.Delete)

		admin.POST("/gyms", gymHandler.Create)
	}

	return &Server{
		router: router,
		db:     db,
		config: cfg,
		notify: notifyService,
	}
}

func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
