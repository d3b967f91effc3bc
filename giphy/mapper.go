package giphy

import (
	"encoding/json"
	"fmt"
)

// The mappers walk the decoded JSON tree (map[string]any as produced by
// encoding/json) and build typed responses. Each mapper returns either a
// value or a *MappingError, never both and never neither. Nested failures
// are propagated unchanged so the caller always sees the innermost field
// that went wrong.

// compact renders a JSON fragment for error diagnostics.
func compact(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	const max = 200
	if len(b) > max {
		return string(b[:max]) + "..."
	}
	return string(b)
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case string:
		// Some counters arrive as quoted digits.
		var i int
		if _, err := fmt.Sscanf(n, "%d", &i); err == nil {
			return i, true
		}
	}
	return 0, false
}

// optString reads a string field, tolerating absence and null.
func optString(obj map[string]any, field string) string {
	s, _ := obj[field].(string)
	return s
}

// optInt reads an integer field, tolerating absence but not a wrong type.
func optInt(obj map[string]any, path string, field string) (int, *MappingError) {
	raw, ok := obj[field]
	if !ok || raw == nil {
		return 0, nil
	}
	n, ok := asInt(raw)
	if !ok {
		return 0, newMappingError(path+"."+field, "expected integer, got %s", compact(raw))
	}
	return n, nil
}

// mapMeta maps the required meta envelope of a response.
func mapMeta(root map[string]any) (*Meta, *MappingError) {
	raw, ok := root["meta"]
	if !ok {
		return nil, newMappingError("meta", "missing field in %s", compact(root))
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, newMappingError("meta", "expected object, got %s", compact(raw))
	}
	status, ok := asInt(obj["status"])
	if !ok {
		return nil, newMappingError("meta.status", "expected integer, got %s", compact(obj["status"]))
	}
	return &Meta{
		Status:     status,
		Msg:        optString(obj, "msg"),
		ResponseID: optString(obj, "response_id"),
	}, nil
}

// mapPagination maps the pagination block of a list response.
func mapPagination(raw any) (*Pagination, *MappingError) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, newMappingError("pagination", "expected object, got %s", compact(raw))
	}
	total, merr := optInt(obj, "pagination", "total_count")
	if merr != nil {
		return nil, merr
	}
	count, merr := optInt(obj, "pagination", "count")
	if merr != nil {
		return nil, merr
	}
	offset, merr := optInt(obj, "pagination", "offset")
	if merr != nil {
		return nil, merr
	}
	return &Pagination{TotalCount: total, Count: count, Offset: offset}, nil
}

// mapMedia maps a single media object. path names the object's location in
// the response for diagnostics ("data", "data[3]", ...).
func mapMedia(raw any, path string) (*Media, *MappingError) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, newMappingError(path, "expected object, got %s", compact(raw))
	}
	id, ok := obj["id"].(string)
	if !ok || id == "" {
		return nil, newMappingError(path+".id", "missing or not a string in %s", compact(raw))
	}

	m := &Media{
		ID:               id,
		Type:             MediaType(optString(obj, "type")),
		URL:              optString(obj, "url"),
		Slug:             optString(obj, "slug"),
		Title:            optString(obj, "title"),
		Rating:           optString(obj, "rating"),
		Username:         optString(obj, "username"),
		Source:           optString(obj, "source"),
		EmbedURL:         optString(obj, "embed_url"),
		ImportDatetime:   optString(obj, "import_datetime"),
		TrendingDatetime: optString(obj, "trending_datetime"),
	}

	if rawImages, ok := obj["images"]; ok && rawImages != nil {
		images, ok := rawImages.(map[string]any)
		if !ok {
			return nil, newMappingError(path+".images", "expected object, got %s", compact(rawImages))
		}
		m.Images = make(map[string]Image, len(images))
		for name, rawImg := range images {
			img, ok := rawImg.(map[string]any)
			if !ok {
				return nil, newMappingError(path+".images."+name, "expected object, got %s", compact(rawImg))
			}
			m.Images[name] = Image{
				URL:    optString(img, "url"),
				Width:  optString(img, "width"),
				Height: optString(img, "height"),
			}
		}
	}

	return m, nil
}

// emptyData reports the shapes the API uses for "no result" on single-item
// endpoints: an empty array or an empty string in place of the object.
func emptyData(raw any) bool {
	switch v := raw.(type) {
	case []any:
		return len(v) == 0
	case string:
		return v == ""
	case nil:
		return true
	}
	return false
}

// mapMediaResponse maps a single-item response. A response carrying only the
// meta envelope is valid and yields a nil Data.
func mapMediaResponse(root map[string]any) (*MediaResponse, *MappingError) {
	meta, merr := mapMeta(root)
	if merr != nil {
		return nil, merr
	}
	resp := &MediaResponse{Meta: *meta}

	rawData, ok := root["data"]
	if !ok || emptyData(rawData) {
		return resp, nil
	}
	media, merr := mapMedia(rawData, "data")
	if merr != nil {
		return nil, merr
	}
	resp.Data = media
	return resp, nil
}

// mapMediaListResponse maps a list response. Pagination is mapped before the
// items; the first item that fails aborts the whole mapping, so the result is
// never a partial list.
func mapMediaListResponse(root map[string]any) (*MediaListResponse, *MappingError) {
	meta, merr := mapMeta(root)
	if merr != nil {
		return nil, merr
	}
	resp := &MediaListResponse{Meta: *meta}

	if rawPag, ok := root["pagination"]; ok {
		pag, merr := mapPagination(rawPag)
		if merr != nil {
			return nil, merr
		}
		resp.Pagination = pag
	}

	rawData, ok := root["data"]
	if !ok || rawData == nil {
		return resp, nil
	}
	items, ok := rawData.([]any)
	if !ok {
		return nil, newMappingError("data", "expected array, got %s", compact(rawData))
	}
	resp.Data = make([]Media, 0, len(items))
	for i, rawItem := range items {
		media, merr := mapMedia(rawItem, fmt.Sprintf("data[%d]", i))
		if merr != nil {
			return nil, merr
		}
		resp.Data = append(resp.Data, *media)
	}
	return resp, nil
}

// mapCategory maps one entry of a categories listing.
func mapCategory(raw any, path string) (*Category, *MappingError) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, newMappingError(path, "expected object, got %s", compact(raw))
	}
	name, ok := obj["name"].(string)
	if !ok {
		return nil, newMappingError(path+".name", "missing or not a string in %s", compact(raw))
	}
	cat := &Category{
		Name:        name,
		NameEncoded: optString(obj, "name_encoded"),
	}

	if rawSubs, ok := obj["subcategories"]; ok && rawSubs != nil {
		subs, ok := rawSubs.([]any)
		if !ok {
			return nil, newMappingError(path+".subcategories", "expected array, got %s", compact(rawSubs))
		}
		cat.Subcategories = make([]Subcategory, 0, len(subs))
		for i, rawSub := range subs {
			sub, ok := rawSub.(map[string]any)
			if !ok {
				return nil, newMappingError(fmt.Sprintf("%s.subcategories[%d]", path, i), "expected object, got %s", compact(rawSub))
			}
			subName, ok := sub["name"].(string)
			if !ok {
				return nil, newMappingError(fmt.Sprintf("%s.subcategories[%d].name", path, i), "missing or not a string in %s", compact(rawSub))
			}
			cat.Subcategories = append(cat.Subcategories, Subcategory{
				Name:        subName,
				NameEncoded: optString(sub, "name_encoded"),
			})
		}
	}

	if rawGif, ok := obj["gif"]; ok && !emptyData(rawGif) {
		gif, merr := mapMedia(rawGif, path+".gif")
		if merr != nil {
			return nil, merr
		}
		cat.Gif = gif
	}

	return cat, nil
}

// mapCategoriesResponse maps a categories or subcategories listing.
func mapCategoriesResponse(root map[string]any) (*CategoriesResponse, *MappingError) {
	meta, merr := mapMeta(root)
	if merr != nil {
		return nil, merr
	}
	resp := &CategoriesResponse{Meta: *meta}

	if rawPag, ok := root["pagination"]; ok {
		pag, merr := mapPagination(rawPag)
		if merr != nil {
			return nil, merr
		}
		resp.Pagination = pag
	}

	rawData, ok := root["data"]
	if !ok || rawData == nil {
		return resp, nil
	}
	items, ok := rawData.([]any)
	if !ok {
		return nil, newMappingError("data", "expected array, got %s", compact(rawData))
	}
	resp.Data = make([]Category, 0, len(items))
	for i, rawItem := range items {
		cat, merr := mapCategory(rawItem, fmt.Sprintf("data[%d]", i))
		if merr != nil {
			return nil, merr
		}
		resp.Data = append(resp.Data, *cat)
	}
	return resp, nil
}

// mapTermSuggestionsResponse maps a term-suggestions listing.
func mapTermSuggestionsResponse(root map[string]any) (*TermSuggestionsResponse, *MappingError) {
	meta, merr := mapMeta(root)
	if merr != nil {
		return nil, merr
	}
	resp := &TermSuggestionsResponse{Meta: *meta}

	rawData, ok := root["data"]
	if !ok || rawData == nil {
		return resp, nil
	}
	items, ok := rawData.([]any)
	if !ok {
		return nil, newMappingError("data", "expected array, got %s", compact(rawData))
	}
	resp.Data = make([]TermSuggestion, 0, len(items))
	for i, rawItem := range items {
		obj, ok := rawItem.(map[string]any)
		if !ok {
			return nil, newMappingError(fmt.Sprintf("data[%d]", i), "expected object, got %s", compact(rawItem))
		}
		name, ok := obj["name"].(string)
		if !ok {
			return nil, newMappingError(fmt.Sprintf("data[%d].name", i), "missing or not a string in %s", compact(rawItem))
		}
		resp.Data = append(resp.Data, TermSuggestion{Name: name})
	}
	return resp, nil
}
