package menu

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Text is a free-form field clients send as a string or a number.
// Numbers keep their literal text; null and absent values are empty.
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	switch {
	case bytes.Equal(data, []byte("null")):
		*t = ""
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("expected string or number, got %s", data)
		}
		*t = Text(n.String())
	}
	return nil
}
