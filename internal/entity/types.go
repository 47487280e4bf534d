package entity

import (
	"database/sql/driver"
	"encoding/json"
)

// StringList jsonb格納の文字列リスト。壊れたデータはnilとして読み飛ばす
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		*l = nil
		return nil
	}
	if err := json.Unmarshal(bytes, l); err != nil {
		*l = nil
	}
	return nil
}
