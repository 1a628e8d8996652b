package response_models

import "wanderdex/internal/models/db_models"

type Country struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Img    string   `json:"img"`
	Cities []string `json:"cities"`
}

type City struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Season    string   `json:"season"`
	CountryID string   `json:"country_id"`
	POIs      []string `json:"pois"`
}

func NewCountry(c db_models.Country) Country {
	cities := make([]string, 0, len(c.Cities))
	for _, city := range c.Cities {
		cities = append(cities, city.ID.String())
	}
	return Country{ID: c.ID.String(), Name: c.Name, Img: c.Img, Cities: cities}
}

func NewCity(c db_models.City) City {
	pois := make([]string, 0, len(c.POIs))
	for _, poi := range c.POIs {
		pois = append(pois, poi.ID.String())
	}
	return City{
		ID:        c.ID.String(),
		Name:      c.Name,
		Season:    c.Season,
		CountryID: c.CountryID.String(),
		POIs:      pois,
	}
}

func NewCountries(countries []db_models.Country) []Country {
	out := make([]Country, 0, len(countries))
	for _, c := range countries {
		out = append(out, NewCountry(c))
	}
	return out
}

func NewCities(cities []db_models.City) []City {
	out := make([]City, 0, len(cities))
	for _, c := range cities {
		out = append(out, NewCity(c))
	}
	return out
}
