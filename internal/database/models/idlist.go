package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// IDList is an ordered sequence of entity ids stored as a JSON array.
// Team member lists and event room lists use it so the storage boundary
// has a real encode/decode contract instead of free-form text.
type IDList []int64

// Value implements driver.Valuer, encoding the list as a JSON array.
func (l IDList) Value() (driver.Value, error) {
	if l == nil {
		return nil, fmt.Errorf("id list must not be null")
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner, decoding a JSON array from text or bytes.
func (l *IDList) Scan(src interface{}) error {
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	case nil:
		return fmt.Errorf("id list column is null")
	default:
		return fmt.Errorf("unsupported id list source type %T", src)
	}
	return json.Unmarshal(data, l)
}

// Contains reports whether id is present in the list.
func (l IDList) Contains(id int64) bool {
	for _, v := range l {
		if v == id {
			return true
		}
	}
	return false
}
