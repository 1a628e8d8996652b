package response_models

import (
	"wanderdex/internal/models/db_models"
	"wanderdex/pkg/utils"
)

type UserResponse struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	UserName  string   `json:"user_name"`
	Email     string   `json:"email"`
	BirthDate string   `json:"birth_date"`
	Location  *string  `json:"location"`
	Img       *string  `json:"img"`
	Role      string   `json:"role"`
	Favorites []string `json:"favorites"`
	Visited   []string `json:"visited"`
}

type AccountLoginResponse struct {
	Token string `json:"access_token"`
}

func NewUserResponse(u db_models.User) UserResponse {
	favorites := make([]string, 0, len(u.Favorites))
	for _, f := range u.Favorites {
		favorites = append(favorites, f.PoiID.String())
	}
	visited := make([]string, 0, len(u.Visited))
	for _, v := range u.Visited {
		visited = append(visited, v.PoiID.String())
	}
	return UserResponse{
		ID:        u.ID.String(),
		Name:      u.Name,
		UserName:  u.UserName,
		Email:     u.Email,
		BirthDate: utils.FormatISODateTime(u.BirthDate),
		Location:  u.Location,
		Img:       u.Img,
		Role:      u.Role,
		Favorites: favorites,
		Visited:   visited,
	}
}
