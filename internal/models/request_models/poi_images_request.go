package request_models

import (
	"github.com/google/uuid"
	"wanderdex/internal/validation"
)

type CreatePoiImageRequest struct {
	URL   string
	PoiID uuid.UUID
}

type UpdatePoiImageRequest struct {
	URL   *string
	PoiID *uuid.UUID
}

func ParseCreatePoiImages(body interface{}) ([]CreatePoiImageRequest, error) {
	items, err := validation.NormalizeToList(body)
	if err != nil {
		return nil, err
	}
	out := make([]CreatePoiImageRequest, 0, len(items))
	for _, item := range items {
		url, _ := item["url"].(string)
		if err := validation.RequireFields(item, []string{"url", "poi_id"}, url); err != nil {
			return nil, err
		}
		if _, err := validation.String(item, "url"); err != nil {
			return nil, err
		}
		rawID, err := validation.String(item, "poi_id")
		if err != nil {
			return nil, err
		}
		poiID, err := validation.ParseID(rawID, "POI not found")
		if err != nil {
			return nil, err
		}
		out = append(out, CreatePoiImageRequest{URL: url, PoiID: poiID})
	}
	return out, nil
}

func ParseUpdatePoiImage(body interface{}) (UpdatePoiImageRequest, error) {
	obj, err := validation.RequireObjectBody(body, "updating POI image")
	if err != nil {
		return UpdatePoiImageRequest{}, err
	}
	if err := validation.RequireAllowedFields(obj, "url", "poi_id"); err != nil {
		return UpdatePoiImageRequest{}, err
	}
	var req UpdatePoiImageRequest
	if req.URL, err = updateString(obj, "url"); err != nil {
		return UpdatePoiImageRequest{}, err
	}
	if req.PoiID, err = updateID(obj, "poi_id", "POI not found"); err != nil {
		return UpdatePoiImageRequest{}, err
	}
	return req, nil
}
