package request_models

import (
	"github.com/google/uuid"
	"wanderdex/internal/validation"
)

type CreateCityRequest struct {
	Name        string
	Season      string
	CountryName string
}

type UpdateCityRequest struct {
	Name      *string
	Season    *string
	CountryID *uuid.UUID
}

func ParseCreateCities(body interface{}) ([]CreateCityRequest, error) {
	items, err := validation.NormalizeToList(body)
	if err != nil {
		return nil, err
	}
	out := make([]CreateCityRequest, 0, len(items))
	for _, item := range items {
		name, _ := item["name"].(string)
		if err := validation.RequireFields(item, []string{"name", "season", "country_name"}, name); err != nil {
			return nil, err
		}
		var req CreateCityRequest
		err := readStrings(item,
			stringField{"name", &req.Name},
			stringField{"season", &req.Season},
			stringField{"country_name", &req.CountryName},
		)
		if err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	return out, nil
}

func ParseUpdateCity(body interface{}) (UpdateCityRequest, error) {
	obj, err := validation.RequireObjectBody(body, "updating city")
	if err != nil {
		return UpdateCityRequest{}, err
	}
	if err := validation.RequireAllowedFields(obj, "name", "season", "country_id"); err != nil {
		return UpdateCityRequest{}, err
	}
	var req UpdateCityRequest
	if req.Name, err = updateString(obj, "name"); err != nil {
		return UpdateCityRequest{}, err
	}
	if req.Season, err = updateString(obj, "season"); err != nil {
		return UpdateCityRequest{}, err
	}
	if req.CountryID, err = updateID(obj, "country_id", "Country not found"); err != nil {
		return UpdateCityRequest{}, err
	}
	return req, nil
}

// updateID reads a partial-update reference; ids that cannot parse resolve to notFound.
func updateID(body map[string]interface{}, field, notFound string) (*uuid.UUID, error) {
	raw, err := updateString(body, field)
	if err != nil || raw == nil {
		return nil, err
	}
	id, err := validation.ParseID(*raw, notFound)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
