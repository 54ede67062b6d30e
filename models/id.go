package models

import (
	"bytes"
	"fmt"
	"strconv"
)

// FlexID is a numeric identifier on request payloads. The dashboards send ids
// as JSON strings ("12") while scripts send numbers, so both are accepted.
type FlexID uint

func (id *FlexID) UnmarshalJSON(data []byte) error {
	raw := bytes.Trim(bytes.TrimSpace(data), `"`)
	if len(raw) == 0 || string(raw) == "null" {
		*id = 0
		return nil
	}
	v, err := strconv.ParseUint(string(raw), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %q", raw)
	}
	*id = FlexID(v)
	return nil
}

func (id FlexID) Uint() uint {
	return uint(id)
}
