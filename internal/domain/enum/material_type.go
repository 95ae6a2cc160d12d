package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// MaterialType is the metal or stone a piece is priced by
type MaterialType string

const (
	MaterialGold    MaterialType = "Gold"
	MaterialSilver  MaterialType = "Silver"
	MaterialDiamond MaterialType = "Diamond"
)

// MaterialTypes lists every accepted material in display order
var MaterialTypes = []MaterialType{MaterialGold, MaterialSilver, MaterialDiamond}

func (m MaterialType) String() string {
	return string(m)
}

// IsValid reports whether m is a known material
func (m MaterialType) IsValid() bool {
	switch m {
	case MaterialGold, MaterialSilver, MaterialDiamond:
		return true
	}
	return false
}

func (m *MaterialType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := ParseMaterialType(str)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func (m MaterialType) Value() (driver.Value, error) {
	return string(m), nil
}

func (m *MaterialType) Scan(value interface{}) error {
	switch v := value.(type) {
	case string:
		*m = MaterialType(v)
	case []byte:
		*m = MaterialType(v)
	case nil:
		*m = ""
	default:
		return fmt.Errorf("cannot scan %T into MaterialType", value)
	}
	return nil
}

// ParseMaterialType accepts the exact names Gold, Silver and Diamond
func ParseMaterialType(s string) (MaterialType, error) {
	m := MaterialType(s)
	if !m.IsValid() {
		return "", fmt.Errorf("invalid material type %q", s)
	}
	return m, nil
}
