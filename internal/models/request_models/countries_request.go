package request_models

import (
	"wanderdex/internal/validation"
)

type CreateCountryRequest struct {
	Name string
	Img  string
}

type UpdateCountryRequest struct {
	Name *string
	Img  *string
}

func ParseCreateCountries(body interface{}) ([]CreateCountryRequest, error) {
	items, err := validation.NormalizeToList(body)
	if err != nil {
		return nil, err
	}
	out := make([]CreateCountryRequest, 0, len(items))
	for _, item := range items {
		name, _ := item["name"].(string)
		if err := validation.RequireFields(item, []string{"name", "img"}, name); err != nil {
			return nil, err
		}
		img, err := validation.String(item, "img")
		if err != nil {
			return nil, err
		}
		if _, err := validation.String(item, "name"); err != nil {
			return nil, err
		}
		out = append(out, CreateCountryRequest{Name: name, Img: img})
	}
	return out, nil
}

func ParseUpdateCountry(body interface{}) (UpdateCountryRequest, error) {
	obj, err := validation.RequireObjectBody(body, "updating country")
	if err != nil {
		return UpdateCountryRequest{}, err
	}
	if err := validation.RequireAllowedFields(obj, "name", "img"); err != nil {
		return UpdateCountryRequest{}, err
	}
	var req UpdateCountryRequest
	if req.Name, err = updateString(obj, "name"); err != nil {
		return UpdateCountryRequest{}, err
	}
	if req.Img, err = updateString(obj, "img"); err != nil {
		return UpdateCountryRequest{}, err
	}
	return req, nil
}
