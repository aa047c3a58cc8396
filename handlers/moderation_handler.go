package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"petcare-api/models"
	"petcare-api/services"

	"github.com/gin-gonic/gin"
)

type ModerationHandler struct {
	moderationService services.ModerationService
}

func NewModerationHandler(moderationService services.ModerationService) *ModerationHandler {
	return &ModerationHandler{moderationService: moderationService}
}

// Analyze scores arbitrary content without side effects. Scores are never
// stored; callers re-run analysis when they need fresh numbers.
func (h *ModerationHandler) Analyze(c *gin.Context) {
	var req models.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := h.moderationService.Analyze(req)

	c.JSON(http.StatusOK, result)
}

func (h *ModerationHandler) AutoProcess(c *gin.Context) {
	userID, _ := c.Get("user_id")

	var req models.AutoProcessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.moderationService.AutoProcess(req, userID.(uint))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, services.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if result.Blocked {
		c.JSON(http.StatusForbidden, gin.H{
			"error":          "Content blocked by moderation",
			"recommendation": result.Recommendation,
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *ModerationHandler) ReviewQueueEntry(c *gin.Context) {
	userID, _ := c.Get("user_id")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid queue entry ID"})
		return
	}

	if err := h.moderationService.MarkReviewed(uint(id), userID.(uint)); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Queue entry marked as reviewed"})
}

func (h *ModerationHandler) GetQueue(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	entries, total, err := h.moderationService.GetQueue(page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"entries": entries,
		"total":   total,
		"page":    page,
		"limit":   limit,
	})
}
