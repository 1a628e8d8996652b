package response_models

import "wanderdex/internal/models/db_models"

type POI struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	CityID      string   `json:"city_id"`
	Images      []string `json:"images"`
	Tags        []string `json:"tags"`
}

type PoiImage struct {
	ID    string `json:"id"`
	URL   string `json:"url"`
	PoiID string `json:"poi_id"`
}

type TagResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// NewPOI expects Images and PoiTags.Tag to be loaded.
func NewPOI(p db_models.POI) POI {
	images := make([]string, 0, len(p.Images))
	for _, img := range p.Images {
		images = append(images, img.URL)
	}
	tags := make([]string, 0, len(p.PoiTags))
	for _, link := range p.PoiTags {
		tags = append(tags, link.Tag.Name)
	}
	return POI{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		Latitude:    p.Latitude,
		Longitude:   p.Longitude,
		CityID:      p.CityID.String(),
		Images:      images,
		Tags:        tags,
	}
}

func NewPOIs(pois []db_models.POI) []POI {
	out := make([]POI, 0, len(pois))
	for _, p := range pois {
		out = append(out, NewPOI(p))
	}
	return out
}

func NewPoiImage(img db_models.PoiImage) PoiImage {
	return PoiImage{ID: img.ID.String(), URL: img.URL, PoiID: img.PoiID.String()}
}

func NewPoiImages(images []db_models.PoiImage) []PoiImage {
	out := make([]PoiImage, 0, len(images))
	for _, img := range images {
		out = append(out, NewPoiImage(img))
	}
	return out
}

func NewTag(t db_models.Tag) TagResponse {
	return TagResponse{ID: t.ID.String(), Name: t.Name}
}

func NewTags(tags []db_models.Tag) []TagResponse {
	out := make([]TagResponse, 0, len(tags))
	for _, t := range tags {
		out = append(out, NewTag(t))
	}
	return out
}
