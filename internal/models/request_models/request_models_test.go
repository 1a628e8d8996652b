package request_models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"wanderdex/pkg/utils"
)

type obj = map[string]interface{}

func assertBadRequest(t *testing.T, err error, message string) {
	t.Helper()
	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrBadRequest), "got %v", err)
	assert.EqualError(t, err, message)
}

func TestParseCreatePois(t *testing.T) {
	valid := func() obj {
		return obj{
			"name": "Machu Picchu", "description": "Citadel",
			"latitude": "-13.16", "longitude": float64(0),
			"country_name": "Peru", "city_name": "Cusco",
		}
	}

	t.Run("numeric strings and zero", func(t *testing.T) {
		reqs, err := ParseCreatePois(valid())
		require.NoError(t, err)
		require.Len(t, reqs, 1)
		assert.Equal(t, -13.16, reqs[0].Latitude)
		assert.Equal(t, float64(0), reqs[0].Longitude)
		assert.Empty(t, reqs[0].Tags)
	})

	t.Run("lists", func(t *testing.T) {
		body := valid()
		body["tags"] = []interface{}{"hiking"}
		body["poiimages"] = []interface{}{"a.jpg", "b.jpg"}
		reqs, err := ParseCreatePois([]interface{}{body})
		require.NoError(t, err)
		assert.Equal(t, []string{"hiking"}, reqs[0].Tags)
		assert.Equal(t, []string{"a.jpg", "b.jpg"}, reqs[0].Images)
	})

	tests := []struct {
		name    string
		mutate  func(obj)
		message string
	}{
		{"missing", func(b obj) { delete(b, "city_name") }, "Missing fields: city_name in item 'Machu Picchu'"},
		{"extra", func(b obj) { b["rating"] = 5 }, "Extra fields not allowed: rating in item 'Machu Picchu'"},
		{"empty", func(b obj) { b["description"] = "" }, "Fields cannot be empty: description in item 'Machu Picchu'"},
		{"bad coordinate", func(b obj) { b["latitude"] = "north" }, "latitude/longitude must be numeric"},
		{"tags not a list", func(b obj) { b["tags"] = "hiking" }, "tags must be a list"},
		{"blank tag", func(b obj) { b["tags"] = []interface{}{" "} }, "each tag must be a non-empty string"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := valid()
			tt.mutate(body)
			_, err := ParseCreatePois(body)
			assertBadRequest(t, err, tt.message)
		})
	}
}

func TestParseUpdatePoi(t *testing.T) {
	req, err := ParseUpdatePoi(obj{"latitude": 0.0, "name": "New"})
	require.NoError(t, err)
	require.NotNil(t, req.Latitude)
	assert.Equal(t, 0.0, *req.Latitude)
	assert.Equal(t, "New", *req.Name)
	assert.Nil(t, req.Description)

	_, err = ParseUpdatePoi(obj{"name": ""})
	assertBadRequest(t, err, "Fields cannot be empty: name")

	_, err = ParseUpdatePoi(obj{"rating": 5})
	assertBadRequest(t, err, "No valid fields supplied")

	_, err = ParseUpdatePoi(obj{"city_id": "nope"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrNotFound))
	assert.EqualError(t, err, "City not found")
}

func TestParseSignUp(t *testing.T) {
	body := obj{
		"name": "Ana", "user_name": "ana", "email": "ana@example.com",
		"password": "secret", "birth_date": "05/17/1990", "location": "",
	}
	req, err := ParseSignUp(body, "registration")
	require.NoError(t, err)
	assert.Equal(t, 1990, req.BirthDate.Year())
	assert.Nil(t, req.Location)
	assert.Nil(t, req.Role)

	body["birth_date"] = "17/05/1990"
	_, err = ParseSignUp(body, "registration")
	assertBadRequest(t, err, "birth_date must be in mm/dd/yyyy format")

	_, err = ParseSignUp([]interface{}{}, "registration")
	assertBadRequest(t, err, "registration body must be a JSON object")
}

func TestParseUserPoi(t *testing.T) {
	req, err := ParseUserPoi(obj{"poi_id": "not-a-uuid"}, "adding favorite")
	require.NoError(t, err)
	assert.Equal(t, "not-a-uuid", req.PoiID)

	_, err = ParseUserPoi(obj{}, "adding favorite")
	assertBadRequest(t, err, "Missing fields: poi_id")

	_, err = ParseUserPoi(obj{"poi_id": 7}, "adding favorite")
	assertBadRequest(t, err, "poi_id must be a string")
}
