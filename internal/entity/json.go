package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList is a []string stored as a JSON column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(src any) error {
	return scanJSON(src, l, "StringList")
}

// Filters is the report filter map. Only the recognized keys below have an
// effect on generated values; anything else is carried but ignored.
type Filters map[string]string

const (
	FilterCountry = "country"
	FilterDevice  = "device"
)

func (f Filters) Value() (driver.Value, error) {
	if f == nil {
		return nil, nil
	}
	return json.Marshal(f)
}

func (f *Filters) Scan(src any) error {
	return scanJSON(src, f, "Filters")
}

// Credentials is the opaque service account payload attached to a source.
type Credentials map[string]any

// Empty reports whether the payload carries no usable credential data.
func (c Credentials) Empty() bool {
	return len(c) == 0
}

func (c Credentials) Value() (driver.Value, error) {
	if c == nil {
		return nil, nil
	}
	return json.Marshal(c)
}

func (c *Credentials) Scan(src any) error {
	return scanJSON(src, c, "Credentials")
}

func scanJSON(src any, dst any, typeName string) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		if len(v) == 0 {
			return nil
		}
		if err := json.Unmarshal(v, dst); err != nil {
			return fmt.Errorf("unmarshal %s: %w", typeName, err)
		}
		return nil
	case string:
		if v == "" {
			return nil
		}
		if err := json.Unmarshal([]byte(v), dst); err != nil {
			return fmt.Errorf("unmarshal %s: %w", typeName, err)
		}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into %s", src, typeName)
	}
}
