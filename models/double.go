package models

import (
	"encoding/json"
	"strings"
)

// Double accepts both quoted and bare JSON numbers.
type Double float64

func (d *Double) UnmarshalJSON(input []byte) error {
	if d == nil {
		d = new(Double)
	}
	strInput := strings.Trim(string(input), `"`)
	var buf float64
	err := json.Unmarshal([]byte(strInput), &buf)
	if err == nil {
		*d = Double(buf)
	}
	return err
}

func (d Double) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(d))
}
