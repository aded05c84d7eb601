package request

import (
	"fmt"
	"net/url"
	"strconv"
)

// SearchRequest carries the optional search parameters as supplied. A nil
// field means the parameter was not sent at all.
type SearchRequest struct {
	Name  *string `json:"name"`
	ID    *int64  `json:"id"`
	Genre *string `json:"genre"`
}

// ParseSearchRequest reads name, id and genre from a query string. An id that
// is present but not an integer is rejected; a present but empty id is
// treated as not sent.
func ParseSearchRequest(query url.Values) (*SearchRequest, error) {
	req := &SearchRequest{
		Name:  optional(query, "name"),
		Genre: optional(query, "genre"),
	}

	if raw := optional(query, "id"); raw != nil && *raw != "" {
		id, err := strconv.ParseInt(*raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid id %q: must be an integer", *raw)
		}
		req.ID = &id
	}

	return req, nil
}

func optional(query url.Values, key string) *string {
	if !query.Has(key) {
		return nil
	}
	v := query.Get(key)
	return &v
}
