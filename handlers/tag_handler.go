package handlers

import (
	"errors"
	"strconv"

	"petcare-api/helper"
	"petcare-api/models"
	"petcare-api/services"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type TagHandler struct {
	tagService services.TagService
	Helper     *helper.HTTPHelper
}

func NewTagHandler(tagService services.TagService) *TagHandler {
	return &TagHandler{tagService: tagService, Helper: &helper.HTTPHelper{}}
}

func (h *TagHandler) CreateTag(c *gin.Context) {
	role, _ := c.Get("role")
	if role != models.RoleAdmin {
		h.Helper.SendForbiddenError(c, "Only admin can create tags", h.Helper.EmptyJsonMap())
		return
	}

	var req models.CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			h.Helper.SendValidationError(c, validationErrors)
			return
		}
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	tag, err := h.tagService.CreateTag(req)
	if err != nil {
		if errors.Is(err, services.ErrConflict) {
			h.Helper.SendConflictError(c, err.Error(), h.Helper.EmptyJsonMap())
			return
		}
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Tag created successfully", tag)
}

func (h *TagHandler) GetTags(c *gin.Context) {
	tags, err := h.tagService.GetTags()
	if err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Success", tags)
}

func (h *TagHandler) GetTag(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid tag ID", h.Helper.EmptyJsonMap())
		return
	}

	tag, err := h.tagService.GetTag(uint(id))
	if err != nil {
		h.Helper.SendNotFoundError(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Success", tag)
}
