package request_models

import (
	"wanderdex/internal/validation"
)

// UserPoiRequest carries the raw poi_id; it is parsed once the caller's
// identity is resolved.
type UserPoiRequest struct {
	PoiID string
}

// ParseUserPoi checks the {poi_id} body of the favorites and visited lists.
func ParseUserPoi(body interface{}, context string) (UserPoiRequest, error) {
	obj, err := validation.RequireObjectBody(body, context)
	if err != nil {
		return UserPoiRequest{}, err
	}
	if err := validation.RequireFields(obj, []string{"poi_id"}, ""); err != nil {
		return UserPoiRequest{}, err
	}
	raw, err := validation.String(obj, "poi_id")
	if err != nil {
		return UserPoiRequest{}, err
	}
	return UserPoiRequest{PoiID: raw}, nil
}
