package request_models

import "wanderdex/internal/validation"

type CreateTagRequest struct {
	Name string
}

type UpdateTagRequest struct {
	Name *string
}

func ParseCreateTags(body interface{}) ([]CreateTagRequest, error) {
	items, err := validation.NormalizeToList(body)
	if err != nil {
		return nil, err
	}
	out := make([]CreateTagRequest, 0, len(items))
	for _, item := range items {
		name, _ := item["name"].(string)
		if err := validation.RequireFields(item, []string{"name"}, name); err != nil {
			return nil, err
		}
		if _, err := validation.String(item, "name"); err != nil {
			return nil, err
		}
		out = append(out, CreateTagRequest{Name: name})
	}
	return out, nil
}

func ParseUpdateTag(body interface{}) (UpdateTagRequest, error) {
	obj, err := validation.RequireObjectBody(body, "updating tag")
	if err != nil {
		return UpdateTagRequest{}, err
	}
	if err := validation.RequireAllowedFields(obj, "name"); err != nil {
		return UpdateTagRequest{}, err
	}
	name, err := updateString(obj, "name")
	if err != nil {
		return UpdateTagRequest{}, err
	}
	return UpdateTagRequest{Name: name}, nil
}
