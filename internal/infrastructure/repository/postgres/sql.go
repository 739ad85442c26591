package postgres

import (
	"database/sql/driver"
	"fmt"
	"strings"

	"github.com/bytedance/sonic"
)

// jsonFloatMap stores a prop- or profile-keyed number map in a JSONB column.
type jsonFloatMap map[string]float64

func (m jsonFloatMap) Value() (driver.Value, error) {
	if len(m) == 0 {
		return "{}", nil
	}
	encoded, err := sonic.Marshal(map[string]float64(m))
	if err != nil {
		return nil, fmt.Errorf("encode jsonb map: %w", err)
	}
	return string(encoded), nil
}

func (m *jsonFloatMap) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*m = nil
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("scan jsonb map: unsupported type %T", src)
	}

	if strings.TrimSpace(string(raw)) == "" {
		*m = nil
		return nil
	}
	out := make(map[string]float64)
	if err := sonic.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("decode jsonb map: %w", err)
	}
	*m = out
	return nil
}

func positionStrings[T ~string](items []T) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, string(item))
	}
	return out
}
