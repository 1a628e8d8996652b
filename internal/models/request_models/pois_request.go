package request_models

import (
	"github.com/google/uuid"
	"wanderdex/internal/validation"
)

type CreatePoiRequest struct {
	Name        string
	Description string
	Latitude    float64
	Longitude   float64
	CountryName string
	CityName    string
	Tags        []string
	Images      []string
}

type UpdatePoiRequest struct {
	Name        *string
	Description *string
	Latitude    *float64
	Longitude   *float64
	CityID      *uuid.UUID
}

func ParseCreatePois(body interface{}) ([]CreatePoiRequest, error) {
	items, err := validation.NormalizeToList(body)
	if err != nil {
		return nil, err
	}
	required := []string{"name", "description", "latitude", "longitude", "country_name", "city_name"}

	out := make([]CreatePoiRequest, 0, len(items))
	for _, item := range items {
		name, _ := item["name"].(string)
		if err := validation.RequireFields(item, required, name, "tags", "poiimages"); err != nil {
			return nil, err
		}

		var req CreatePoiRequest
		err := readStrings(item,
			stringField{"name", &req.Name},
			stringField{"description", &req.Description},
			stringField{"country_name", &req.CountryName},
			stringField{"city_name", &req.CityName},
		)
		if err != nil {
			return nil, err
		}
		if req.Latitude, err = validation.Float(item, "latitude"); err != nil {
			return nil, err
		}
		if req.Longitude, err = validation.Float(item, "longitude"); err != nil {
			return nil, err
		}
		if req.Tags, err = validation.StringList(item, "tags", "tag"); err != nil {
			return nil, err
		}
		if req.Images, err = validation.StringList(item, "poiimages", "poiimage"); err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	return out, nil
}

func ParseUpdatePoi(body interface{}) (UpdatePoiRequest, error) {
	obj, err := validation.RequireObjectBody(body, "updating POI")
	if err != nil {
		return UpdatePoiRequest{}, err
	}
	if err := validation.RequireAllowedFields(obj, "name", "description", "latitude", "longitude", "city_id"); err != nil {
		return UpdatePoiRequest{}, err
	}

	var req UpdatePoiRequest
	if req.Name, err = updateString(obj, "name"); err != nil {
		return UpdatePoiRequest{}, err
	}
	if req.Description, err = updateString(obj, "description"); err != nil {
		return UpdatePoiRequest{}, err
	}
	if req.CityID, err = updateID(obj, "city_id", "City not found"); err != nil {
		return UpdatePoiRequest{}, err
	}
	if req.Latitude, err = updateFloat(obj, "latitude"); err != nil {
		return UpdatePoiRequest{}, err
	}
	if req.Longitude, err = updateFloat(obj, "longitude"); err != nil {
		return UpdatePoiRequest{}, err
	}
	return req, nil
}

func updateFloat(body map[string]interface{}, field string) (*float64, error) {
	if _, ok := body[field]; !ok {
		return nil, nil
	}
	f, err := validation.Float(body, field)
	if err != nil {
		return nil, err
	}
	return &f, nil
}
