package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/goer/asana-clone/internal/adapter/http/dto"
	"github.com/goer/asana-clone/internal/adapter/http/mapper"
	"github.com/goer/asana-clone/internal/core/domain"
	"github.com/goer/asana-clone/internal/core/ports"
)

type SectionHandler struct {
	sectionService ports.SectionService
}

func NewSectionHandler(sectionService ports.SectionService) *SectionHandler {
	return &SectionHandler{sectionService: sectionService}
}

func (h *SectionHandler) CreateSection(c *gin.Context) {
	var req dto.CreateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		respondInvalidPayload(c)
		return
	}

	position := 0
	if req.Position != nil {
		position = *req.Position
	}

	section, err := h.sectionService.Create(c.Request.Context(), middlewarePrincipal(c), domain.CreateSectionInput{
		Name:      name,
		ProjectID: req.ProjectID,
		Position:  position,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToSectionItem(section))
}

func (h *SectionHandler) ListSections(c *gin.Context) {
	projectID, err := strconv.ParseUint(c.Query("project_id"), 10, 64)
	if err != nil || projectID == 0 {
		respondInvalidPayload(c)
		return
	}

	sections, err := h.sectionService.ListByProject(c.Request.Context(), middlewarePrincipal(c), projectID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToSectionItems(sections))
}

func (h *SectionHandler) UpdateSection(c *gin.Context) {
	sectionID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}
	if req.Name == nil && req.Position == nil {
		respondInvalidPayload(c)
		return
	}

	var name *string
	if req.Name != nil {
		value := strings.TrimSpace(*req.Name)
		if value == "" {
			respondInvalidPayload(c)
			return
		}
		name = &value
	}

	section, err := h.sectionService.Update(c.Request.Context(), middlewarePrincipal(c), sectionID, domain.UpdateSectionInput{
		Name:     name,
		Position: req.Position,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToSectionItem(section))
}

func (h *SectionHandler) DeleteSection(c *gin.Context) {
	sectionID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.sectionService.Delete(c.Request.Context(), middlewarePrincipal(c), sectionID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
