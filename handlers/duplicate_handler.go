package handlers

import (
	"errors"
	"net/http"

	"petcare-api/models"
	"petcare-api/services"

	"github.com/gin-gonic/gin"
)

type DuplicateHandler struct {
	duplicateService services.DuplicateService
}

func NewDuplicateHandler(duplicateService services.DuplicateService) *DuplicateHandler {
	return &DuplicateHandler{duplicateService: duplicateService}
}

// CheckDuplicates scores a draft against existing questions. The draft is not
// persisted; authors call this before submitting.
func (h *DuplicateHandler) CheckDuplicates(c *gin.Context) {
	var req models.DuplicateCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := h.duplicateService.CheckDuplicates(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *DuplicateHandler) MarkDuplicate(c *gin.Context) {
	userID, _ := c.Get("user_id")

	var req models.DuplicateMarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	question, err := h.duplicateService.MarkDuplicate(req, userID.(uint))
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

	c.JSON(http.StatusOK, gin.H{
		"message":  "Duplicate status updated",
		"question": question,
	})
}
