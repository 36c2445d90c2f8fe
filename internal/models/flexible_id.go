package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// FlexibleID is an optional foreign key as submitted by the admin UI.
// Select inputs there serialize "no selection" inconsistently: JSON null,
// the empty string, or the literal string "null". All three decode to an
// absent id; numbers and numeric strings decode to the id itself.
type FlexibleID struct {
	ID *uint
}

func (f *FlexibleID) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		f.ID = nil
		return nil
	}

	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		str = strings.TrimSpace(str)
		if str == "" || strings.EqualFold(str, "null") {
			f.ID = nil
			return nil
		}
		n, err := strconv.ParseUint(str, 10, 64)
		if err != nil {
			return err
		}
		id := uint(n)
		f.ID = &id
		return nil
	}

	var n uint64
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	id := uint(n)
	f.ID = &id
	return nil
}

func (f FlexibleID) MarshalJSON() ([]byte, error) {
	if f.ID == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*f.ID)
}
