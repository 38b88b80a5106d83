package jsonspec

import (
	"fmt"
	"strconv"

	"github.com/specdoc-labs/specdoc/pkg/model"
)

// Tree access helpers. Every optional field's fallback is explicit at the
// call site; required lookups fail with model.MissingFieldError instead of
// silently yielding zero values.

func str(node map[string]any, field string) (string, error) {
	v, ok := node[field]
	if !ok {
		return "", &model.MissingFieldError{Field: field}
	}
	if v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("field %q is not a string", field)
	}
	return s, nil
}

func optStr(node map[string]any, field string) string {
	s, _ := node[field].(string)
	return s
}

// scalar reads a string field, stringifying JSON numbers and booleans.
func scalar(node map[string]any, field string) (string, error) {
	v, ok := node[field]
	if !ok {
		return "", &model.MissingFieldError{Field: field}
	}
	switch t := v.(type) {
	case string:
		return t, nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(t), nil
	case nil:
		return "", nil
	}
	return "", fmt.Errorf("field %q is not a scalar", field)
}

func optInt(node map[string]any, field string, fallback int) int {
	if v, ok := node[field].(float64); ok {
		return int(v)
	}
	return fallback
}

func obj(node map[string]any, field string) (map[string]any, error) {
	v, ok := node[field]
	if !ok {
		return nil, &model.MissingFieldError{Field: field}
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("field %q is not an object", field)
	}
	return m, nil
}

func list(node map[string]any, field string) ([]map[string]any, error) {
	v, ok := node[field]
	if !ok {
		return nil, &model.MissingFieldError{Field: field}
	}
	return toObjList(v, field)
}

func optList(node map[string]any, field string) ([]map[string]any, error) {
	v, ok := node[field]
	if !ok {
		return nil, nil
	}
	return toObjList(v, field)
}

func toObjList(v any, field string) ([]map[string]any, error) {
	raw, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("field %q is not an array", field)
	}
	out := make([]map[string]any, 0, len(raw))
	for _, item := range raw {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("field %q contains a non-object entry", field)
		}
		out = append(out, m)
	}
	return out, nil
}

func strList(node map[string]any, field string) ([]string, error) {
	v, ok := node[field]
	if !ok {
		return nil, &model.MissingFieldError{Field: field}
	}
	return toStrList(v, field)
}

func optStrList(node map[string]any, field string) ([]string, error) {
	v, ok := node[field]
	if !ok {
		return []string{}, nil
	}
	return toStrList(v, field)
}

func toStrList(v any, field string) ([]string, error) {
	raw, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("field %q is not an array", field)
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("field %q contains a non-string entry", field)
		}
		out = append(out, s)
	}
	return out, nil
}
