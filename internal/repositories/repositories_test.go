package repositories_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"wanderdex/internal/infra/infratest"
	"wanderdex/internal/models/db_models"
	"wanderdex/internal/repositories"
)

type fixture struct {
	db      *gorm.DB
	country *db_models.Country
	city    *db_models.City
	poi     *db_models.POI
	tag     *db_models.Tag
	user    *db_models.User
}

// seed builds Peru > Cusco > Machu Picchu tagged "hiking", with one image and
// a user who has the POI in both lists.
func seed(t *testing.T) fixture {
	t.Helper()
	ctx := context.Background()
	db := infratest.NewDB(t)

	country := &db_models.Country{Name: "Peru", Img: "peru.png"}
	require.NoError(t, repositories.NewCountryRepository(db).CreateBatch(ctx, []*db_models.Country{country}))

	city := &db_models.City{Name: "Cusco", Season: "summer", CountryID: country.ID}
	require.NoError(t, repositories.NewCityRepository(db).CreateBatch(ctx, []*db_models.City{city}))

	poi := &db_models.POI{Name: "Machu Picchu", Description: "Citadel", Latitude: -13.16, Longitude: -72.54, CityID: city.ID}
	pois := repositories.NewPOIRepository(db)
	require.NoError(t, pois.CreateBatch(ctx, []*db_models.POI{poi}))

	tag := &db_models.Tag{Name: "hiking"}
	require.NoError(t, repositories.NewTagRepository(db).CreateTags(ctx, []*db_models.Tag{tag}))
	require.NoError(t, pois.LinkTags(ctx, []db_models.PoiTag{{PoiID: poi.ID, TagID: tag.ID}}))

	image := &db_models.PoiImage{URL: "mp.jpg", PoiID: poi.ID}
	require.NoError(t, repositories.NewPoiImageRepository(db).CreateBatch(ctx, []*db_models.PoiImage{image}))

	user := &db_models.User{Name: "Ana", UserName: "ana", Email: "ana@example.com", Password: "x", Role: db_models.DefaultRole}
	require.NoError(t, repositories.NewUserRepository(db).Insert(ctx, user))
	require.NoError(t, repositories.NewUserPoiRepository[db_models.Favorite](db).Add(ctx, user.ID, poi.ID))
	require.NoError(t, repositories.NewUserPoiRepository[db_models.Visited](db).Add(ctx, user.ID, poi.ID))

	return fixture{db: db, country: country, city: city, poi: poi, tag: tag, user: user}
}

func count(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func TestCountryDeleteCascades(t *testing.T) {
	f := seed(t)

	require.NoError(t, repositories.NewCountryRepository(f.db).DeleteCascade(context.Background(), f.country))

	for name, model := range map[string]interface{}{
		"countries":  &db_models.Country{},
		"cities":     &db_models.City{},
		"pois":       &db_models.POI{},
		"poi_images": &db_models.PoiImage{},
		"poi_tags":   &db_models.PoiTag{},
		"favorites":  &db_models.Favorite{},
		"visited":    &db_models.Visited{},
	} {
		assert.Zero(t, count(t, f.db, model), name)
	}
	assert.Equal(t, int64(1), count(t, f.db, &db_models.Tag{}))
	assert.Equal(t, int64(1), count(t, f.db, &db_models.User{}))
}

func TestTagDeleteKeepsPois(t *testing.T) {
	f := seed(t)

	require.NoError(t, repositories.NewTagRepository(f.db).DeleteCascade(context.Background(), f.tag))

	assert.Zero(t, count(t, f.db, &db_models.PoiTag{}))
	assert.Equal(t, int64(1), count(t, f.db, &db_models.POI{}))
}

func TestUserDeleteCascades(t *testing.T) {
	f := seed(t)

	require.NoError(t, repositories.NewUserRepository(f.db).DeleteCascade(context.Background(), f.user))

	assert.Zero(t, count(t, f.db, &db_models.Favorite{}))
	assert.Zero(t, count(t, f.db, &db_models.Visited{}))
	assert.Equal(t, int64(1), count(t, f.db, &db_models.POI{}))
}

func TestPoiFilters(t *testing.T) {
	f := seed(t)
	ctx := context.Background()
	repo := repositories.NewPOIRepository(f.db)

	other := &db_models.POI{Name: "Sacsayhuaman", Description: "Fortress", CityID: f.city.ID}
	require.NoError(t, repo.CreateBatch(ctx, []*db_models.POI{other}))

	tests := []struct {
		name   string
		filter repositories.PoiFilter
		want   []string
	}{
		{"no filter", repositories.PoiFilter{}, []string{"Machu Picchu", "Sacsayhuaman"}},
		{"country and tag", repositories.PoiFilter{CountryName: "Peru", TagName: "hiking"}, []string{"Machu Picchu"}},
		{"name substring ignores case", repositories.PoiFilter{Name: "SAYHU"}, []string{"Sacsayhuaman"}},
		{"city and season", repositories.PoiFilter{CityName: "Cusco", Season: "summer"}, []string{"Machu Picchu", "Sacsayhuaman"}},
		{"unknown country", repositories.PoiFilter{CountryName: "Chile"}, nil},
		{"unknown tag", repositories.PoiFilter{TagName: "beach"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pois, err := repo.List(ctx, tt.filter)
			require.NoError(t, err)
			var names []string
			for _, p := range pois {
				names = append(names, p.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestPoiDetailsPreloaded(t *testing.T) {
	f := seed(t)

	poi, err := repositories.NewPOIRepository(f.db).GetByIDWithDetails(context.Background(), f.poi.ID)
	require.NoError(t, err)
	require.NotNil(t, poi)
	require.Len(t, poi.Images, 1)
	assert.Equal(t, "mp.jpg", poi.Images[0].URL)
	require.Len(t, poi.PoiTags, 1)
	assert.Equal(t, "hiking", poi.PoiTags[0].Tag.Name)

	missing, err := repositories.NewPOIRepository(f.db).GetByIDWithDetails(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestPopularIsCapped(t *testing.T) {
	f := seed(t)
	ctx := context.Background()
	repo := repositories.NewPOIRepository(f.db)

	var extra []*db_models.POI
	for i := 0; i < 10; i++ {
		extra = append(extra, &db_models.POI{Name: uuid.NewString(), Description: "d", CityID: f.city.ID})
	}
	require.NoError(t, repo.CreateBatch(ctx, extra))

	pois, err := repo.Popular(ctx)
	require.NoError(t, err)
	assert.Len(t, pois, repositories.PopularPoiLimit)
}

func TestCityFilters(t *testing.T) {
	f := seed(t)
	ctx := context.Background()
	repo := repositories.NewCityRepository(f.db)

	lima := &db_models.City{Name: "Lima", Season: "winter", CountryID: f.country.ID}
	require.NoError(t, repo.CreateBatch(ctx, []*db_models.City{lima}))

	cities, err := repo.List(ctx, repositories.CityFilter{CountryName: "Peru", Season: "winter"})
	require.NoError(t, err)
	require.Len(t, cities, 1)
	assert.Equal(t, "Lima", cities[0].Name)

	cities, err = repo.List(ctx, repositories.CityFilter{CountryID: &f.country.ID})
	require.NoError(t, err)
	assert.Len(t, cities, 2)

	cusco, err := repo.GetByID(ctx, f.city.ID)
	require.NoError(t, err)
	require.Len(t, cusco.POIs, 1)
	assert.Equal(t, f.poi.ID, cusco.POIs[0].ID)
}

func TestCountryPreloadsCityIDs(t *testing.T) {
	f := seed(t)

	country, err := repositories.NewCountryRepository(f.db).GetByName(context.Background(), "Peru")
	require.NoError(t, err)
	require.Len(t, country.Cities, 1)
	assert.Equal(t, f.city.ID, country.Cities[0].ID)

	none, err := repositories.NewCountryRepository(f.db).List(context.Background(), repositories.CountryFilter{Name: "zzz"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestUserPoiLists(t *testing.T) {
	f := seed(t)
	ctx := context.Background()
	favorites := repositories.NewUserPoiRepository[db_models.Favorite](f.db)

	entries, err := favorites.List(ctx, f.user.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, f.poi.ID, entries[0].PoiID)
	assert.Equal(t, "Machu Picchu", entries[0].PoiName)

	exists, err := favorites.Exists(ctx, f.user.ID, f.poi.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, favorites.Remove(ctx, f.user.ID, f.poi.ID))
	exists, err = favorites.Exists(ctx, f.user.ID, f.poi.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	visited, err := repositories.NewUserPoiRepository[db_models.Visited](f.db).List(ctx, f.user.ID)
	require.NoError(t, err)
	assert.Len(t, visited, 1)

	user, err := repositories.NewUserRepository(f.db).FindByUserName(ctx, "ana")
	require.NoError(t, err)
	assert.Empty(t, user.Favorites)
	assert.Len(t, user.Visited, 1)
}

func TestTagLinks(t *testing.T) {
	f := seed(t)
	ctx := context.Background()
	repo := repositories.NewPOIRepository(f.db)

	link, err := repo.FindTagLink(ctx, f.poi.ID, f.tag.ID)
	require.NoError(t, err)
	assert.NotNil(t, link)

	tags, err := repositories.NewTagRepository(f.db).ListByPoi(ctx, f.poi.ID)
	require.NoError(t, err)
	require.Len(t, tags, 1)

	require.NoError(t, repo.UnlinkTag(ctx, f.poi.ID, f.tag.ID))
	link, err = repo.FindTagLink(ctx, f.poi.ID, f.tag.ID)
	require.NoError(t, err)
	assert.Nil(t, link)
}
