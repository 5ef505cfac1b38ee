package service

import (
	"encoding/json"
	"slices"
	"time"
)

// Body es un cuerpo JSON arbitrario tal como llegó a la API
type Body map[string]any

// stamp agrega los ids que falten y sobrescribe siempre createdAt y updatedAt
func stamp(body Body, now time.Time, ids map[string]string) Body {
	if body == nil {
		body = Body{}
	}
	for key, value := range ids {
		if blank(body[key]) {
			body[key] = value
		}
	}
	body["createdAt"] = now
	body["updatedAt"] = now
	return body
}

func blank(v any) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && s == ""
}

// decodeBody arma el registro tipado campo por campo. Los campos cuyo tipo no
// coincide con el modelo quedan fuera del registro y se devuelven ordenados.
func decodeBody[T any](body Body) (T, []string) {
	var record T
	var dropped []string

	for key, value := range body {
		raw, err := json.Marshal(map[string]any{key: value})
		if err != nil {
			dropped = append(dropped, key)
			continue
		}
		var field T
		if err := json.Unmarshal(raw, &field); err != nil {
			dropped = append(dropped, key)
			continue
		}
		_ = json.Unmarshal(raw, &record)
	}

	slices.Sort(dropped)
	return record, dropped
}
