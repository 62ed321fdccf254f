package rates

import (
	"errors"
	"math"
)

// ErrInvalidShape is returned when a JSON value is not a usable rate board.
var ErrInvalidShape = errors.New("rates payload has invalid shape")

// IsValidPayload reports whether v, a value produced by encoding/json, has an
// "offices" object carrying every known office as an object, array or null.
// Individual price fields are not inspected.
func IsValidPayload(v any) bool {
	root, ok := v.(map[string]any)
	if !ok {
		return false
	}
	offices, ok := root[fieldOffices].(map[string]any)
	if !ok {
		return false
	}
	for _, o := range Offices {
		office, ok := offices[string(o)]
		if !ok || !isObjectLike(office) {
			return false
		}
	}
	return true
}

// isObjectLike matches the JSON values typed as objects by the browser page:
// objects, arrays and null.
func isObjectLike(v any) bool {
	switch v.(type) {
	case nil, map[string]any, []any:
		return true
	default:
		return false
	}
}

// UnwrapEnvelope returns the value under a top-level "data" key when it is
// present and truthy, and v itself otherwise.
func UnwrapEnvelope(v any) any {
	root, ok := v.(map[string]any)
	if !ok {
		return v
	}
	data, ok := root["data"]
	if !ok || !truthy(data) {
		return v
	}
	return data
}

// Decode validates v and converts it into a Payload.
func Decode(v any) (*Payload, error) {
	if !IsValidPayload(v) {
		return nil, ErrInvalidShape
	}
	root := v.(map[string]any)
	offices := root[fieldOffices].(map[string]any)

	p := &Payload{
		RateBoardDate: root[fieldRateBoardDate],
		Offices:       make(map[Office]OfficeRates, len(Offices)),
	}
	for _, o := range Offices {
		// Null and array offices carry no prices; their slots are skipped.
		fields, _ := offices[string(o)].(map[string]any)
		p.Offices[o] = OfficeRates{
			ChotaPerKg:     fields[fieldChotaPerKg],
			MotaPerKg:      fields[fieldMotaPerKg],
			ChicksPerPiece: fields[fieldChicksPerPiece],
		}
	}
	return p, nil
}

func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case float64:
		return x != 0 && !math.IsNaN(x)
	default:
		return true
	}
}
