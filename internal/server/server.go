// Package server exposes the scan and expense operations over HTTP.
package server

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/gastosbot/gastos-tracker/internal/export"
	"github.com/gastosbot/gastos-tracker/internal/pipeline"
	"github.com/gastosbot/gastos-tracker/internal/repository"
)

type Server struct {
	router   *gin.Engine
	pipe     *pipeline.Pipeline
	expenses repository.ExpenseRepository
	exporter *export.Service
	logger   *slog.Logger
}

func New(pipe *pipeline.Pipeline, expenses repository.ExpenseRepository, exporter *export.Service, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		router:   gin.New(),
		pipe:     pipe,
		expenses: expenses,
		exporter: exporter,
		logger:   logger,
	}
	s.router.Use(gin.Recovery())
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.GET("/healthz", s.health)

	v1 := s.router.Group("/api/v1")
	{
		v1.POST("/receipts/scan", s.scanText)
		v1.POST("/receipts/scan-image", s.scanImage)

		v1.GET("/categories", s.listCategories)

		v1.GET("/expenses", s.listExpenses)
		v1.GET("/expenses/summary", s.categorySummary)
		v1.GET("/expenses/stats", s.expenseStats)
		v1.GET("/expenses/export", s.exportExpenses)
		v1.GET("/expenses/:id", s.getExpense)
		v1.PATCH("/expenses/:id", s.updateExpense)
		v1.DELETE("/expenses/:id", s.deleteExpense)
	}
}

// Router exposes the underlying handler for net/http and tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func (s *Server) health(c *gin.Context) {
	c.JSON(200, gin.H{"status": "ok"})
}
