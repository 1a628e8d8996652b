package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"wanderdex/internal/api"
	"wanderdex/internal/api/controllers"
	"wanderdex/internal/config"
	"wanderdex/internal/infra/infratest"
	"wanderdex/internal/models/db_models"
	"wanderdex/internal/repositories"
	"wanderdex/internal/services"
	"wanderdex/pkg/middleware"
	"wanderdex/pkg/utils"
)

type client struct {
	t      *testing.T
	router *gin.Engine
	token  string
}

func newClient(t *testing.T) *client {
	t.Helper()
	db := infratest.NewDB(t)
	tx := infratest.NewTxRunner(t, db)
	logger := zaptest.NewLogger(t)

	tokens, err := utils.NewTokenManager("test-secret", time.Hour)
	require.NoError(t, err)
	reg := prometheus.NewRegistry()

	userRepo := repositories.NewUserRepository(db)
	countryRepo := repositories.NewCountryRepository(db)
	cityRepo := repositories.NewCityRepository(db)
	poiRepo := repositories.NewPOIRepository(db)
	tagRepo := repositories.NewTagRepository(db)
	imageRepo := repositories.NewPoiImageRepository(db)

	router := api.NewRouter(api.RouterParams{
		Logger:   logger,
		Config:   &config.Config{AppEnv: "test", CORSOrigins: []string{"*"}},
		Tokens:   tokens,
		Metrics:  middleware.NewHTTPMetrics(reg),
		Gatherer: reg,

		Accounts: controllers.NewAccountController(services.NewAccountService(tx, userRepo, tokens, logger)),
		Users:    controllers.NewUserController(services.NewUserService(tx, userRepo, logger)),
		Favorites: controllers.NewFavoritesController(services.NewFavoriteService(
			tx, userRepo, repositories.NewUserPoiRepository[db_models.Favorite](db), poiRepo, logger)),
		Visited: controllers.NewVisitedController(services.NewVisitedService(
			tx, userRepo, repositories.NewUserPoiRepository[db_models.Visited](db), poiRepo, logger)),
		Countries: controllers.NewCountryController(services.NewCountryService(tx, countryRepo, cityRepo, logger)),
		Cities:    controllers.NewCityController(services.NewCityService(tx, cityRepo, logger)),
		Pois:      controllers.NewPOIsController(services.NewPoiService(tx, poiRepo, tagRepo, imageRepo, logger)),
		Tags:      controllers.NewTagController(services.NewTagService(tx, tagRepo, logger)),
		Images:    controllers.NewPoiImageController(services.NewPoiImageService(tx, imageRepo, logger)),
	})
	return &client{t: t, router: router}
}

func (c *client) do(method, path string, body interface{}) (int, map[string]interface{}) {
	c.t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(c.t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)

	var out map[string]interface{}
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(c.t, json.Unmarshal(w.Body.Bytes(), &out))
	}
	return w.Code, out
}

type obj = map[string]interface{}

func (c *client) seedCatalog() string {
	c.t.Helper()
	code, _ := c.do(http.MethodPost, "/api/countries", obj{"name": "Peru", "img": "peru.png"})
	require.Equal(c.t, http.StatusCreated, code)
	code, _ = c.do(http.MethodPost, "/api/cities", obj{"name": "Cusco", "season": "summer", "country_name": "Peru"})
	require.Equal(c.t, http.StatusCreated, code)
	code, _ = c.do(http.MethodPost, "/api/tags", []obj{{"name": "hiking"}, {"name": "ruins"}})
	require.Equal(c.t, http.StatusCreated, code)

	code, body := c.do(http.MethodPost, "/api/pois", []obj{
		{
			"name": "Machu Picchu", "description": "Citadel",
			"latitude": -13.16, "longitude": "-72.54",
			"country_name": "Peru", "city_name": "Cusco",
			"tags": []string{"hiking", "ruins"}, "poiimages": []string{"mp.jpg"},
		},
		{
			"name": "Plaza de Armas", "description": "Square",
			"latitude": 0, "longitude": 0,
			"country_name": "Peru", "city_name": "Cusco",
		},
	})
	require.Equal(c.t, http.StatusCreated, code, body)
	created := body["created"].([]interface{})
	return created[0].(obj)["id"].(string)
}

func (c *client) login() {
	c.t.Helper()
	code, body := c.do(http.MethodPost, "/api/register", obj{
		"name": "Ana", "user_name": "ana", "email": "ana@example.com",
		"password": "secret", "birth_date": "05/17/1990",
	})
	require.Equal(c.t, http.StatusCreated, code, body)

	code, body = c.do(http.MethodPost, "/api/login", obj{"credential": "ana", "password": "secret"})
	require.Equal(c.t, http.StatusOK, code, body)
	c.token = body["access_token"].(string)
}

func names(list interface{}) []string {
	items, _ := list.([]interface{})
	var out []string
	for _, item := range items {
		out = append(out, item.(obj)["name"].(string))
	}
	return out
}

func TestCreateCountryTwice(t *testing.T) {
	c := newClient(t)

	code, body := c.do(http.MethodPost, "/api/countries", obj{"name": "Peru", "img": "x.png"})
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "Countries created successfully", body["message"])
	created := body["created"].([]interface{})
	require.Len(t, created, 1)
	assert.NotEmpty(t, created[0].(obj)["id"])
	assert.NotEmpty(t, body["trace_id"])

	code, body = c.do(http.MethodPost, "/api/countries", obj{"name": "Peru", "img": "x.png"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Country Peru already exists", body["message"])

	code, body = c.do(http.MethodGet, "/api/countries/Peru", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Peru", body["country"].(obj)["name"])
}

func TestBodyShapeErrors(t *testing.T) {
	c := newClient(t)

	tests := []struct {
		name    string
		path    string
		body    interface{}
		message string
	}{
		{"empty list", "/api/countries", []obj{}, "Input list cannot be empty"},
		{"scalar", "/api/countries", "42", "Invalid input format"},
		{"non object item", "/api/tags", "[1]", "Each item must be a JSON object"},
		{"missing", "/api/countries", obj{"name": "Peru"}, "Missing fields: img in item 'Peru'"},
		{"extra", "/api/tags", obj{"name": "a", "color": "red"}, "Extra fields not allowed: color in item 'a'"},
		{"empty", "/api/countries", obj{"name": "Peru", "img": " "}, "Fields cannot be empty: img in item 'Peru'"},
		{"duplicate key", "/api/tags", []obj{{"name": "a"}, {"name": "a"}}, "Duplicate entry: a"},
		{"bad date", "/api/register", obj{"name": "A", "user_name": "a", "email": "a@x", "password": "p", "birth_date": "1990-05-17"}, "birth_date must be in mm/dd/yyyy format"},
		{"login without password", "/api/login", obj{"credential": "a"}, "Email or user_name and password are required"},
		{"bad json", "/api/tags", "{", "Invalid request format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := c.do(http.MethodPost, tt.path, tt.body)
			assert.Equal(t, http.StatusBadRequest, code)
			assert.Equal(t, tt.message, body["message"])
		})
	}
}

func TestCityBatchLeavesStoreUnchanged(t *testing.T) {
	c := newClient(t)
	c.seedCatalog()

	code, body := c.do(http.MethodPost, "/api/cities", []obj{
		{"name": "Lima", "season": "winter", "country_name": "Peru"},
		{"name": "Cusco", "season": "summer", "country_name": "Peru"},
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "City 'Cusco' already exists in this country", body["message"])

	_, body = c.do(http.MethodGet, "/api/cities", nil)
	assert.Equal(t, []string{"Cusco"}, names(body["cities"]))
}

func TestUpdateOutsideAllowListChangesNothing(t *testing.T) {
	c := newClient(t)
	c.seedCatalog()

	code, body := c.do(http.MethodPut, "/api/countries/Peru", obj{"name": "Chile", "population": 3})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "No valid fields supplied", body["message"])

	code, _ = c.do(http.MethodPut, "/api/countries/Peru", obj{})
	assert.Equal(t, http.StatusBadRequest, code)

	code, body = c.do(http.MethodGet, "/api/countries/Peru", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "peru.png", body["country"].(obj)["img"])

	code, body = c.do(http.MethodPut, "/api/countries/Peru", obj{"img": "new.png"})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "new.png", body["country"].(obj)["img"])
}

func TestDeleteCountryCascades(t *testing.T) {
	c := newClient(t)
	poiID := c.seedCatalog()
	c.login()

	code, _ := c.do(http.MethodPost, "/api/favorites", obj{"poi_id": poiID})
	require.Equal(t, http.StatusCreated, code)
	code, _ = c.do(http.MethodPost, "/api/visited", obj{"poi_id": poiID})
	require.Equal(t, http.StatusCreated, code)

	code, _ = c.do(http.MethodDelete, "/api/countries/Peru", nil)
	require.Equal(t, http.StatusOK, code)

	code, _ = c.do(http.MethodGet, "/api/pois/"+poiID, nil)
	assert.Equal(t, http.StatusNotFound, code)
	_, body := c.do(http.MethodGet, "/api/poiimages", nil)
	assert.Empty(t, body["images"])
	_, body = c.do(http.MethodGet, "/api/favorites", nil)
	assert.Empty(t, body["favorites"])
	_, body = c.do(http.MethodGet, "/api/visited", nil)
	assert.Empty(t, body["visited"])
	_, body = c.do(http.MethodGet, "/api/tags", nil)
	assert.Len(t, body["tags"], 2)
}

func TestFavoriteTwice(t *testing.T) {
	c := newClient(t)
	poiID := c.seedCatalog()
	c.login()

	code, body := c.do(http.MethodPost, "/api/favorites", obj{"poi_id": poiID})
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, poiID, body["favorite"].(obj)["poi_id"])

	code, body = c.do(http.MethodPost, "/api/favorites", obj{"poi_id": poiID})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Point of interest is already in favorites", body["message"])

	_, body = c.do(http.MethodGet, "/api/favorites", nil)
	favorites := body["favorites"].([]interface{})
	require.Len(t, favorites, 1)
	assert.Equal(t, "Machu Picchu", favorites[0].(obj)["poi_name"])

	_, body = c.do(http.MethodGet, "/api/myProfile", nil)
	assert.Equal(t, []interface{}{poiID}, body["user"].(obj)["favorites"])

	code, _ = c.do(http.MethodDelete, "/api/favorites/"+poiID, nil)
	assert.Equal(t, http.StatusOK, code)
	code, body = c.do(http.MethodDelete, "/api/favorites/"+poiID, nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Favorite not found", body["message"])
}

func TestAuthScopedRoutesNeedToken(t *testing.T) {
	c := newClient(t)

	code, _ := c.do(http.MethodGet, "/api/favorites", nil)
	assert.Equal(t, http.StatusUnauthorized, code)

	c.login()
	code, _ = c.do(http.MethodDelete, "/api/users/ana", nil)
	require.Equal(t, http.StatusOK, code)

	code, body := c.do(http.MethodGet, "/api/visited", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "Authentication failed", body["message"])

	code, body = c.do(http.MethodPost, "/api/favorites", obj{"poi_id": "not-a-uuid"})
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "Authentication failed", body["message"])
}

func TestPoiFilters(t *testing.T) {
	c := newClient(t)
	c.seedCatalog()

	tests := []struct {
		query string
		want  []string
	}{
		{"country_name=Peru&tag_name=hiking", []string{"Machu Picchu"}},
		{"country_name=Chile&tag_name=hiking", nil},
		{"name=plaza", []string{"Plaza de Armas"}},
		{"season=summer&city_name=Cusco", []string{"Machu Picchu", "Plaza de Armas"}},
		{"tag_name=beach", nil},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			code, body := c.do(http.MethodGet, "/api/pois?"+tt.query, nil)
			require.Equal(t, http.StatusOK, code)
			assert.Equal(t, tt.want, names(body["pois"]))
		})
	}

	code, body := c.do(http.MethodGet, "/api/popular-pois", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, body["pois"], 2)
}

func TestPoiDetailsAndTagToggle(t *testing.T) {
	c := newClient(t)
	poiID := c.seedCatalog()

	code, body := c.do(http.MethodGet, "/api/pois/"+poiID, nil)
	require.Equal(t, http.StatusOK, code)
	poi := body["poi"].(obj)
	assert.ElementsMatch(t, []interface{}{"hiking", "ruins"}, poi["tags"])
	assert.Equal(t, []interface{}{"mp.jpg"}, poi["images"])
	assert.Equal(t, -72.54, poi["longitude"])

	code, body = c.do(http.MethodPost, "/api/pois/"+poiID+"/tags/hiking", nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Tag already associated with this POI", body["message"])

	code, _ = c.do(http.MethodDelete, "/api/pois/"+poiID+"/tags/hiking", nil)
	require.Equal(t, http.StatusOK, code)
	_, body = c.do(http.MethodGet, "/api/pois/"+poiID+"/tags", nil)
	assert.Equal(t, []string{"ruins"}, names(body["tags"]))

	code, body = c.do(http.MethodDelete, "/api/pois/"+poiID+"/tags/hiking", nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Tag not associated with this POI", body["message"])

	code, _ = c.do(http.MethodGet, "/api/pois/not-a-uuid", nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestMetricsEndpoint(t *testing.T) {
	c := newClient(t)
	c.do(http.MethodGet, "/api/tags", nil)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `http_requests_total{method="GET",route="/api/tags",status="200"} 1`)
}
