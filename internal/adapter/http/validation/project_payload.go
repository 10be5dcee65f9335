package validation

import (
	"encoding/json"
	"strings"

	"github.com/goer/asana-clone/internal/adapter/http/dto"
	"github.com/goer/asana-clone/internal/core/domain"
)

func BuildUpdateProjectInput(req dto.UpdateProjectRequest, raw map[string]json.RawMessage) (domain.UpdateProjectInput, error) {
	if !hasProjectUpdateFields(raw) {
		return domain.UpdateProjectInput{}, ErrInvalidPayload
	}

	var name *string
	if hasJSONField(raw, "name") && req.Name == nil {
		return domain.UpdateProjectInput{}, ErrInvalidPayload
	}
	if req.Name != nil {
		value := strings.TrimSpace(*req.Name)
		if value == "" {
			return domain.UpdateProjectInput{}, ErrInvalidPayload
		}
		name = &value
	}

	descriptionSet := hasJSONField(raw, "description")
	if descriptionSet && !isJSONNull(raw["description"]) && req.Description == nil {
		return domain.UpdateProjectInput{}, ErrInvalidPayload
	}

	teamIDSet := hasJSONField(raw, "team_id")
	if teamIDSet && !isJSONNull(raw["team_id"]) && req.TeamID == nil {
		return domain.UpdateProjectInput{}, ErrInvalidPayload
	}

	if hasJSONField(raw, "is_public") && req.IsPublic == nil {
		return domain.UpdateProjectInput{}, ErrInvalidPayload
	}

	return domain.UpdateProjectInput{
		Name:           name,
		Description:    req.Description,
		DescriptionSet: descriptionSet,
		TeamID:         req.TeamID,
		TeamIDSet:      teamIDSet,
		IsPublic:       req.IsPublic,
	}, nil
}

func hasProjectUpdateFields(raw map[string]json.RawMessage) bool {
	return hasJSONField(raw, "name") ||
		hasJSONField(raw, "description") ||
		hasJSONField(raw, "team_id") ||
		hasJSONField(raw, "is_public")
}
