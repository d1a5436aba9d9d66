package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gastosbot/gastos-tracker/constants"
	"github.com/gastosbot/gastos-tracker/internal/common"
)

func parseUserID(c *gin.Context, raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id must be a positive integer"})
		return 0, false
	}
	return id, true
}

func parseDays(c *gin.Context) int {
	days, err := strconv.Atoi(c.DefaultQuery("days", "30"))
	if err != nil || days < 0 {
		return 30
	}
	return days
}

func (s *Server) listCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": constants.AsStringSlice()})
}

func (s *Server) listExpenses(c *gin.Context) {
	userID, ok := parseUserID(c, c.Query("user_id"))
	if !ok {
		return
	}
	out, err := s.expenses.ListByUser(c.Request.Context(), userID, parseDays(c))
	if err != nil {
		s.renderRepoError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"expenses": out})
}

func (s *Server) getExpense(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid expense id"})
		return
	}
	e, err := s.expenses.GetByID(c.Request.Context(), id)
	if err != nil {
		s.renderRepoError(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

type updateExpenseRequest struct {
	Description *string  `json:"description"`
	Amount      *float64 `json:"amount"`
	Category    *string  `json:"category"`
	TxDate      *string  `json:"tx_date"`
}

func (s *Server) updateExpense(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid expense id"})
		return
	}
	var req updateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	e, err := s.expenses.GetByID(c.Request.Context(), id)
	if err != nil {
		s.renderRepoError(c, err)
		return
	}
	if req.Description != nil {
		e.Description = *req.Description
	}
	if req.Amount != nil {
		if *req.Amount <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be positive"})
			return
		}
		e.Amount = *req.Amount
	}
	if req.Category != nil {
		cat, ok := constants.Canonicalize(*req.Category)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown category %q", *req.Category)})
			return
		}
		e.Category = string(cat)
	}
	if req.TxDate != nil {
		e.TxDate = *req.TxDate
	}

	if err := s.expenses.Update(c.Request.Context(), e); err != nil {
		s.renderRepoError(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

func (s *Server) deleteExpense(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid expense id"})
		return
	}
	if err := s.expenses.Delete(c.Request.Context(), id); err != nil {
		s.renderRepoError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) categorySummary(c *gin.Context) {
	userID, ok := parseUserID(c, c.Query("user_id"))
	if !ok {
		return
	}
	days := parseDays(c)
	out, err := s.expenses.SummaryByCategory(c.Request.Context(), userID, days)
	if err != nil {
		s.renderRepoError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"days": days, "categories": out})
}

func (s *Server) expenseStats(c *gin.Context) {
	userID, ok := parseUserID(c, c.Query("user_id"))
	if !ok {
		return
	}
	days := parseDays(c)
	st, err := s.expenses.Stats(c.Request.Context(), userID, days)
	if err != nil {
		s.renderRepoError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"days": days, "stats": st})
}

func (s *Server) exportExpenses(c *gin.Context) {
	userID, ok := parseUserID(c, c.Query("user_id"))
	if !ok {
		return
	}
	data, err := s.exporter.ExportExpensesXLSX(c.Request.Context(), userID, parseDays(c))
	if err != nil {
		s.renderRepoError(c, err)
		return
	}
	name := fmt.Sprintf("gastos-%d-%s.xlsx", userID, time.Now().UTC().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

func (s *Server) renderRepoError(c *gin.Context, err error) {
	if errors.Is(err, common.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "expense not found"})
		return
	}
	s.logger.Error("request failed", "path", c.FullPath(), "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
