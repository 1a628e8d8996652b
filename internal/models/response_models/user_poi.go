package response_models

// UserPoiEntry is one item of a favorites or visited listing.
type UserPoiEntry struct {
	PoiID   string `json:"poi_id"`
	PoiName string `json:"poi_name"`
}

type FavoriteResponse struct {
	UserID string `json:"user_id"`
	PoiID  string `json:"poi_id"`
}
