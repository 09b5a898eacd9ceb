package server

import (
	"fmt"

	"github.com/mj1618/axsearch/internal/query"
)

func stringParam(params map[string]interface{}, key, defaultVal string) string {
	if v, ok := params[key]; ok && v != nil {
		if s, ok := v.(string); ok {
			return s
		}
		// Numeric IDs arrive as float64
		if f, ok := v.(float64); ok && f == float64(int(f)) {
			return fmt.Sprintf("%d", int(f))
		}
		return fmt.Sprintf("%v", v)
	}
	return defaultVal
}

func intParam(params map[string]interface{}, key string, defaultVal int) int {
	if v, ok := params[key]; ok {
		switch n := v.(type) {
		case int:
			return n
		case float64:
			return int(n)
		case int64:
			return int(n)
		}
	}
	return defaultVal
}

func boolParam(params map[string]interface{}, key string, defaultVal bool) bool {
	if v, ok := params[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return defaultVal
}

// stringsParam accepts a comma-separated string or an array of strings.
func stringsParam(params map[string]interface{}, key string) []string {
	switch v := params[key].(type) {
	case string:
		return query.SplitList(v)
	case []string:
		return v
	case []interface{}:
		var out []string
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, query.SplitList(s)...)
			}
		}
		return out
	}
	return nil
}
