package utils

import (
	"fmt"
	"strconv"
	"time"
)

// ToInt converts various types to int using explicit type switching.
// The MySQL driver hands back int64 or []byte depending on the column and
// query path, so row scanning cannot assume a single concrete type.
func ToInt(val any) int {
	switch v := val.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case int32:
		return int(v)
	case uint64:
		return int(v)
	case uint32:
		return int(v)
	case float64:
		return int(v)
	case string:
		i, _ := strconv.Atoi(v)
		return i
	case []byte:
		i, _ := strconv.Atoi(string(v))
		return i
	default:
		s := fmt.Sprintf("%v", v)
		i, _ := strconv.Atoi(s)
		return i
	}
}

// ToString converts various types to string. Text columns arrive as []byte
// from the MySQL driver unless the connection interpolates.
func ToString(val any) string {
	switch v := val.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ToTime converts a scanned value to time.Time. DATE columns scan into
// time.Time with parseTime=True, but raw []byte ("2006-01-02") shows up in
// tests and with drivers that skip parseTime.
func ToTime(val any) (time.Time, bool) {
	switch v := val.(type) {
	case time.Time:
		return v, true
	case string:
		return parseDateString(v)
	case []byte:
		return parseDateString(string(v))
	default:
		return time.Time{}, false
	}
}

func parseDateString(s string) (time.Time, bool) {
	for _, layout := range []string{"2006-01-02", "2006-01-02 15:04:05", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
