package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/kirsten0429/monkey-shoes/internal/config"
	"github.com/kirsten0429/monkey-shoes/internal/usecase"
)

// Server wires the core services behind the loopback HTTP API the
// operator UI talks to.
type Server struct {
	cfg      config.Config
	ledger   *usecase.LedgerService
	roster   *usecase.RosterService
	backup   *usecase.BackupService
	stats    *usecase.StatsService
	validate *validatorv10.Validate
	engine   *gin.Engine
}

func New(cfg config.Config, store usecase.Store) *Server {
	roster := &usecase.RosterService{Store: store}
	s := &Server{
		cfg:    cfg,
		roster: roster,
		ledger: &usecase.LedgerService{Store: store, Roster: roster},
		backup: &usecase.BackupService{Store: store, Prefix: cfg.ShopName},
		stats:  &usecase.StatsService{Store: store},
	}
	s.validate = newValidator()

	if cfg.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	api := r.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api.POST("/orders", s.handleCreateOrder)
	api.GET("/orders", s.handleListOrders)
	api.PUT("/orders/:id", s.handleUpdateOrder)
	api.DELETE("/orders/:id", s.handleDeleteOrder)

	api.GET("/customers", s.handleListCustomers)
	api.GET("/customers/suggest", s.handleSuggestCustomers)
	api.POST("/customers/:phone/vip", s.handleToggleVIP)

	api.GET("/stats", s.handleStats)
	api.GET("/stats/daily", s.handleDailyStats)

	api.GET("/backup/export", s.handleExport)
	api.POST("/backup/import", s.handleImport)

	api.POST("/photos", s.handlePhoto)

	s.engine = r
	return s
}

func (s *Server) Handler() http.Handler { return s.engine }

func (s *Server) err(c *gin.Context, status int, code, msg string) {
	c.JSON(status, gin.H{
		"error": gin.H{
			"code":    code,
			"message": msg,
		},
	})
}
