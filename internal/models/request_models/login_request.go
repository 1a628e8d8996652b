package request_models

import (
	"time"

	"wanderdex/internal/validation"
	"wanderdex/pkg/utils"
)

// LoginRequest carries an email or user name in Credential.
type LoginRequest struct {
	Credential string
	Password   string
}

type SignUpRequest struct {
	Name      string
	UserName  string
	Email     string
	Password  string
	BirthDate time.Time
	Location  *string
	Role      *string
	Img       *string
}

// ProfileUpdateRequest holds the fields a user may change on their own profile.
type ProfileUpdateRequest struct {
	UserName *string
	Email    *string
	Location *string
	Password *string
	Img      *string
}

func ParseLogin(body interface{}) (LoginRequest, error) {
	obj, err := validation.RequireObjectBody(body, "login")
	if err != nil {
		return LoginRequest{}, err
	}
	credential, _ := obj["credential"].(string)
	password, _ := obj["password"].(string)
	if credential == "" || password == "" {
		return LoginRequest{}, utils.BadRequest("Email or user_name and password are required")
	}
	return LoginRequest{Credential: credential, Password: password}, nil
}

// ParseSignUp is shared by self-registration and admin user creation; context
// names the operation in shape errors.
func ParseSignUp(body interface{}, context string) (SignUpRequest, error) {
	obj, err := validation.RequireObjectBody(body, context)
	if err != nil {
		return SignUpRequest{}, err
	}
	required := []string{"name", "user_name", "email", "password", "birth_date"}
	if err := validation.RequireFields(obj, required, "", "location", "role", "img"); err != nil {
		return SignUpRequest{}, err
	}

	var req SignUpRequest
	err = readStrings(obj,
		stringField{"name", &req.Name},
		stringField{"user_name", &req.UserName},
		stringField{"email", &req.Email},
		stringField{"password", &req.Password},
	)
	if err != nil {
		return SignUpRequest{}, err
	}

	rawBirthDate, _ := obj["birth_date"].(string)
	if req.BirthDate, err = utils.ParseBirthDate(rawBirthDate); err != nil {
		return SignUpRequest{}, utils.BadRequest("birth_date must be in mm/dd/yyyy format")
	}

	if req.Location, err = optionalString(obj, "location"); err != nil {
		return SignUpRequest{}, err
	}
	if req.Role, err = optionalString(obj, "role"); err != nil {
		return SignUpRequest{}, err
	}
	if req.Img, err = optionalString(obj, "img"); err != nil {
		return SignUpRequest{}, err
	}
	return req, nil
}

func ParseProfileUpdate(body interface{}) (ProfileUpdateRequest, error) {
	obj, err := validation.RequireObjectBody(body, "updating profile")
	if err != nil {
		return ProfileUpdateRequest{}, err
	}
	if err := validation.RequireAllowedFields(obj, "user_name", "email", "location", "password", "img"); err != nil {
		return ProfileUpdateRequest{}, err
	}

	var req ProfileUpdateRequest
	if req.UserName, err = updateString(obj, "user_name"); err != nil {
		return ProfileUpdateRequest{}, err
	}
	if req.Email, err = updateString(obj, "email"); err != nil {
		return ProfileUpdateRequest{}, err
	}
	if req.Location, err = updateString(obj, "location"); err != nil {
		return ProfileUpdateRequest{}, err
	}
	if req.Password, err = updateString(obj, "password"); err != nil {
		return ProfileUpdateRequest{}, err
	}
	if req.Img, err = updateString(obj, "img"); err != nil {
		return ProfileUpdateRequest{}, err
	}
	return req, nil
}

type stringField struct {
	name string
	dst  *string
}

// readStrings copies each field into its destination, stopping at the first
// non-string value.
func readStrings(body map[string]interface{}, fields ...stringField) error {
	for _, f := range fields {
		s, err := validation.String(body, f.name)
		if err != nil {
			return err
		}
		*f.dst = s
	}
	return nil
}

// optionalString reads a field that may be absent, null or blank.
func optionalString(body map[string]interface{}, field string) (*string, error) {
	s, err := validation.String(body, field)
	if err != nil || s == "" {
		return nil, err
	}
	return &s, nil
}

// updateString reads a partial-update field; nil means leave unchanged.
func updateString(body map[string]interface{}, field string) (*string, error) {
	s, present, err := validation.NonEmptyString(body, field)
	if err != nil || !present {
		return nil, err
	}
	return &s, nil
}
