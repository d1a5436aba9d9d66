package server

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gastosbot/gastos-tracker/constants"
	"github.com/gastosbot/gastos-tracker/internal/common"
)

type scanTextRequest struct {
	UserID int64  `json:"user_id" binding:"required"`
	Text   string `json:"text" binding:"required"`
}

// scanText extracts fields from raw receipt text and records the
// expense.
func (s *Server) scanText(c *gin.Context) {
	var req scanTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := s.pipe.ProcessText(c.Request.Context(), req.UserID, req.Text, "")
	if err != nil {
		s.renderScanError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// scanImage accepts a multipart upload, OCRs it, and records the
// expense.
func (s *Server) scanImage(c *gin.Context) {
	userID, ok := parseUserID(c, c.PostForm("user_id"))
	if !ok {
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing image upload"})
		return
	}
	ext := constants.NormalizeExt(filepath.Ext(file.Filename))
	if !constants.IsAllowedExt(ext) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported image type"})
		return
	}

	tmp := filepath.Join(os.TempDir(), uuid.NewString()+"."+ext)
	if err := c.SaveUploadedFile(file, tmp); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store upload"})
		return
	}
	defer func() {
		if err := os.Remove(tmp); err != nil {
			s.logger.Warn("failed to remove upload", "path", tmp, "error", err)
		}
	}()

	res, err := s.pipe.ProcessImage(c.Request.Context(), userID, tmp, file.Filename)
	if err != nil {
		s.renderScanError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (s *Server) renderScanError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrAmountNotFound):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, common.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		s.logger.Error("scan failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "scan failed"})
	}
}
