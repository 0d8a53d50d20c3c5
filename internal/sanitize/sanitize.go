// Package sanitize applies an HTML sanitization pass to untrusted
// configuration copy before pattern generation.
//
// The serializer itself never escapes content (the wire format carries
// pre-formed markup), so when section copy comes from an untrusted source
// the boundary is here: Config deep-walks a configuration map and runs
// every string value through a UGC policy. The pass is opt-in; trusted
// pipelines skip it.
package sanitize

import "github.com/microcosm-cc/bluemonday"

var policy = bluemonday.UGCPolicy()

// HTML sanitizes a single fragment with the UGC policy.
func HTML(fragment string) string {
	return policy.Sanitize(fragment)
}

// Config returns a deep copy of a configuration map with every string
// value sanitized, including strings nested in maps and arrays. The input
// map is left untouched.
func Config(cfg map[string]interface{}) map[string]interface{} {
	if cfg == nil {
		return nil
	}
	out := make(map[string]interface{}, len(cfg))
	for k, v := range cfg {
		out[k] = value(v)
	}
	return out
}

func value(v interface{}) interface{} {
	switch val := v.(type) {
	case string:
		return policy.Sanitize(val)
	case map[string]interface{}:
		return Config(val)
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = value(item)
		}
		return out
	default:
		return v
	}
}
