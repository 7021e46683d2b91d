package handler

import (
	"net/http"
	"strings"

	"spotline/internal/domain"
	"spotline/internal/middleware"
	"spotline/internal/models"
	"spotline/internal/repository"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentRepo *repository.CommentRepository
	locRepo     *repository.LocationRepository
	reportRepo  *repository.ReportRepository
}

func NewCommentHandler(commentRepo *repository.CommentRepository, locRepo *repository.LocationRepository, reportRepo *repository.ReportRepository) *CommentHandler {
	return &CommentHandler{commentRepo: commentRepo, locRepo: locRepo, reportRepo: reportRepo}
}

type createCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

func (h *CommentHandler) Create(c *gin.Context) {
	userID := middleware.GetUserID(c)
	locationID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req createCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	text := strings.TrimSpace(req.Text)
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text cannot be empty"})
		return
	}
	if len(text) > domain.MaxCommentLen {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text too long (max 500 characters)"})
		return
	}
	if _, err := h.locRepo.GetByID(locationID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "location not found"})
		return
	}
	comment := &models.Comment{
		UserID:     userID,
		LocationID: locationID,
		Text:       text,
	}
	if err := h.commentRepo.Create(comment); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create comment"})
		return
	}
	full, err := h.commentRepo.GetByID(comment.ID)
	if err != nil {
		full = comment
	}
	c.JSON(http.StatusCreated, gin.H{"comment": full})
}

func (h *CommentHandler) ListByLocation(c *gin.Context) {
	locationID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	limit := queryInt(c, "limit", 20)
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := queryInt(c, "offset", 0)
	if offset < 0 {
		offset = 0
	}
	comments, err := h.commentRepo.ListByLocation(locationID, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list comments"})
		return
	}
	total, err := h.commentRepo.CountByLocation(locationID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list comments"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"comments": comments,
		"total":    total,
		"limit":    limit,
		"offset":   offset,
	})
}

// Mine lists the caller's own comments, newest first.
func (h *CommentHandler) Mine(c *gin.Context) {
	userID := middleware.GetUserID(c)
	limit := queryInt(c, "limit", 50)
	if limit < 1 || limit > 100 {
		limit = 50
	}
	comments, err := h.commentRepo.ListByUser(userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list comments"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// Delete removes a comment; only its author may do so.
func (h *CommentHandler) Delete(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	comment, err := h.commentRepo.GetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "comment not found"})
		return
	}
	if comment.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "only the author can delete this comment"})
		return
	}
	if err := h.commentRepo.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete comment"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type reportCommentRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// Report flags a comment for moderation.
func (h *CommentHandler) Report(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req reportCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, err := h.commentRepo.GetByID(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "comment not found"})
		return
	}
	report := &models.Report{
		ReporterID: userID,
		CommentID:  id,
		Reason:     req.Reason,
		Status:     domain.ReportStatusPending,
	}
	if err := h.reportRepo.Create(report); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to report comment"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "reported"})
}
