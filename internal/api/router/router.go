package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/saihein2480/au-connect/config"
	"github.com/saihein2480/au-connect/internal/api/handler"
	"github.com/saihein2480/au-connect/internal/api/middleware"
	"github.com/saihein2480/au-connect/internal/model"
	"github.com/saihein2480/au-connect/pkg/jwt"
	"github.com/saihein2480/au-connect/pkg/redis"
)

// maxBodyBytes leaves room for one multipart image upload.
const maxBodyBytes = 10 << 20

// Setup builds the gin engine with the full route table.
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(maxBodyBytes))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Uploaded images are served straight off the blob directory.
	if cfg.Uploads.Backend == "local" {
		r.Static(cfg.Uploads.BaseURL, cfg.Uploads.Dir)
	}

	v1 := r.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/signup", h.Auth.Signup)
			auth.POST("/login", middleware.RateLimit(rdb, 10, time.Minute), h.Auth.Login)
		}

		// Announcements and the contact directory are readable without a
		// token; every mutation is admin-only.
		v1.GET("/announcements", h.Announcement.List)
		v1.GET("/announcements/:id", h.Announcement.Get)
		v1.GET("/contacts", h.Contact.List)
		v1.GET("/contacts/:id", h.Contact.Get)

		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.Me)

			adminOnly := middleware.RoleAuth(model.RoleAdmin)

			profile := authorized.Group("/profile")
			{
				profile.GET("", adminOnly, h.Profile.List)
				profile.GET("/:id", h.Profile.Get)
				profile.POST("", adminOnly, h.Profile.Create)
				profile.PUT("/:id", h.Profile.Update) // admin or self, checked in the service
				profile.DELETE("/:id", adminOnly, h.Profile.Delete)
			}

			authorized.POST("/contacts", adminOnly, h.Contact.Create)
			authorized.PUT("/contacts/:id", adminOnly, h.Contact.Update)
			authorized.DELETE("/contacts/:id", adminOnly, h.Contact.Delete)

			authorized.POST("/announcements", adminOnly, h.Announcement.Create)
			authorized.PUT("/announcements/:id", adminOnly, h.Announcement.Update)
			authorized.DELETE("/announcements/:id", adminOnly, h.Announcement.Delete)

			authorized.GET("/export/contacts", adminOnly, h.Export.ExportContacts)
		}
	}

	return r
}
