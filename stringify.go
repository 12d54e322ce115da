package logger

import (
	"encoding/json"
	"strconv"
	"strings"
)

// stringifyValue serializes v to indented JSON per cfg. cfg is never nil here
// and its Space is already normalized by the resolver. Marshal errors (cyclic
// values, unsupported types) are returned as-is.
func stringifyValue(v any, cfg *StringifyConfig) (string, error) {
	if cfg.Replacer != nil {
		v = applyReplacer("", v, cfg.Replacer)
	}
	out, err := json.MarshalIndent(v, "", strings.Repeat(" ", cfg.Space))
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// applyReplacer rewrites v, then recurses into whatever the replacer
// returned: map entries by key, slice elements by decimal index. The payload
// itself is visited under the empty key.
func applyReplacer(key string, v any, replacer func(string, any) any) any {
	v = replacer(key, v)
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[k] = applyReplacer(k, item, replacer)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = applyReplacer(strconv.Itoa(i), item, replacer)
		}
		return out
	}
	return v
}
