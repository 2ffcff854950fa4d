package models

import (
	"encoding/json"
	"strconv"
)

// Stringify converts an arbitrary decoded JSON value into its CSV cell
// form: strings pass through, numbers keep their shortest representation,
// everything else is re-encoded as JSON. nil becomes the empty string.
func Stringify(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(value)
	case json.Number:
		return value.String()
	default:
		encoded, err := json.Marshal(value)
		if err != nil {
			return ""
		}
		return string(encoded)
	}
}
