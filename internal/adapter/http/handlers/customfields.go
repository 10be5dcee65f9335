package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/goer/asana-clone/internal/adapter/http/dto"
	"github.com/goer/asana-clone/internal/adapter/http/mapper"
	"github.com/goer/asana-clone/internal/core/domain"
	"github.com/goer/asana-clone/internal/core/ports"
)

type CustomFieldHandler struct {
	customFieldService ports.CustomFieldService
}

func NewCustomFieldHandler(customFieldService ports.CustomFieldService) *CustomFieldHandler {
	return &CustomFieldHandler{customFieldService: customFieldService}
}

func (h *CustomFieldHandler) CreateField(c *gin.Context) {
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.CreateCustomFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		respondInvalidPayload(c)
		return
	}

	in := domain.CreateCustomFieldInput{
		Name:      name,
		Type:      domain.FieldType(req.Type),
		ProjectID: projectID,
	}
	for _, option := range req.Options {
		in.Options = append(in.Options, domain.CreateFieldOptionInput{
			Value: option.Value,
			Color: option.Color,
		})
	}

	field, err := h.customFieldService.Create(c.Request.Context(), middlewarePrincipal(c), in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToCustomFieldItem(field))
}

func (h *CustomFieldHandler) ListFields(c *gin.Context) {
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	fields, err := h.customFieldService.ListByProject(c.Request.Context(), middlewarePrincipal(c), projectID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToCustomFieldItems(fields))
}

func (h *CustomFieldHandler) UpdateField(c *gin.Context) {
	fieldID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateCustomFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}
	if req.Name == nil && req.Type == nil {
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

	var fieldType *domain.FieldType
	if req.Type != nil {
		value := domain.FieldType(*req.Type)
		fieldType = &value
	}

	field, err := h.customFieldService.Update(c.Request.Context(), middlewarePrincipal(c), fieldID, domain.UpdateCustomFieldInput{
		Name: name,
		Type: fieldType,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToCustomFieldItem(field))
}

func (h *CustomFieldHandler) DeleteField(c *gin.Context) {
	fieldID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.customFieldService.Delete(c.Request.Context(), middlewarePrincipal(c), fieldID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// AddOption appends a new choice to a single select field.
func (h *CustomFieldHandler) AddOption(c *gin.Context) {
	fieldID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.FieldOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}

	option, err := h.customFieldService.AddOption(c.Request.Context(), middlewarePrincipal(c), fieldID, domain.CreateFieldOptionInput{
		Value: req.Value,
		Color: req.Color,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToFieldOptionItem(option))
}

// SetValue writes one value for one (task, field) pair, replacing whatever
// was there. The payload is deliberately untyped JSON; the service decides
// how to read it from the field's declared type.
func (h *CustomFieldHandler) SetValue(c *gin.Context) {
	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	fieldID, ok := parseIDParam(c, "fieldID")
	if !ok {
		return
	}

	var req dto.SetFieldValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}
	if req.Value == nil {
		respondInvalidPayload(c)
		return
	}

	value, err := h.customFieldService.SetValue(c.Request.Context(), middlewarePrincipal(c), taskID, fieldID, req.Value)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToFieldValueItem(value))
}

// ClearValue deletes the stored value; clearing an unset field succeeds.
func (h *CustomFieldHandler) ClearValue(c *gin.Context) {
	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	fieldID, ok := parseIDParam(c, "fieldID")
	if !ok {
		return
	}

	if err := h.customFieldService.ClearValue(c.Request.Context(), middlewarePrincipal(c), taskID, fieldID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *CustomFieldHandler) ListValues(c *gin.Context) {
	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	values, err := h.customFieldService.ListValues(c.Request.Context(), middlewarePrincipal(c), taskID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToFieldValueItems(values))
}
