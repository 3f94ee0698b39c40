package i18n

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Dictionary is an immutable tree of translated copy for one language.
//
// Nodes are normalised to string, int64, float64, bool, nil, []any and
// map[string]any whatever document format they were decoded from. Integers
// above math.MaxInt64 are kept as uint64.
type Dictionary struct {
	root map[string]any
}

// NewDictionary deep-copies root into a Dictionary.
func NewDictionary(root map[string]any) (*Dictionary, error) {
	normalized, err := normalize(root, "")
	if err != nil {
		return nil, err
	}
	m, _ := normalized.(map[string]any)
	if m == nil {
		m = map[string]any{}
	}
	return &Dictionary{root: m}, nil
}

// Lookup walks the dot-separated key from the root.
// ok is false when any segment fails to resolve or the final node is null.
func (d *Dictionary) Lookup(key string) (any, bool) {
	if d == nil {
		return nil, false
	}
	var current any = d.root
	for _, segment := range strings.Split(key, ".") {
		switch node := current.(type) {
		case nil:
			return nil, false
		case []any:
			index, err := strconv.ParseUint(segment, 10, 0)
			if err != nil || index >= uint64(len(node)) {
				return nil, false
			}
			current = node[index]
		case map[string]any:
			value, exists := node[segment]
			if !exists {
				return nil, false
			}
			current = value
		default:
			return nil, false
		}
	}
	if current == nil {
		return nil, false
	}
	return current, true
}

// Keys returns every leaf path in the dictionary, sorted.
// Sequence elements are addressed by index.
func (d *Dictionary) Keys() []string {
	if d == nil {
		return nil
	}
	var out []string
	collectKeys(d.root, "", &out)
	sort.Strings(out)
	return out
}

func collectKeys(node any, prefix string, out *[]string) {
	switch n := node.(type) {
	case map[string]any:
		for k, v := range n {
			collectKeys(v, joinPath(prefix, k), out)
		}
	case []any:
		for i, v := range n {
			collectKeys(v, joinPath(prefix, strconv.Itoa(i)), out)
		}
	default:
		if prefix != "" {
			*out = append(*out, prefix)
		}
	}
}

func normalize(value any, path string) (any, error) {
	switch v := value.(type) {
	case nil, string, bool, int64, float64:
		return v, nil
	case int:
		return int64(v), nil
	case int8:
		return int64(v), nil
	case int16:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case uint:
		return normalizeUint(uint64(v)), nil
	case uint8:
		return int64(v), nil
	case uint16:
		return int64(v), nil
	case uint32:
		return int64(v), nil
	case uint64:
		return normalizeUint(v), nil
	case float32:
		return float64(v), nil
	case json.Number:
		return normalizeNumber(v.String()), nil
	case time.Time:
		return v.Format(time.RFC3339), nil
	case fmt.Stringer:
		// go-toml local dates and times.
		return v.String(), nil
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			n, err := normalize(item, fmt.Sprintf("%s[%d]", path, i))
			if err != nil {
				return nil, err
			}
			out[i] = n
		}
		return out, nil
	case []map[string]any:
		out := make([]any, len(v))
		for i, item := range v {
			n, err := normalize(item, fmt.Sprintf("%s[%d]", path, i))
			if err != nil {
				return nil, err
			}
			out[i] = n
		}
		return out, nil
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			n, err := normalize(item, joinPath(path, k))
			if err != nil {
				return nil, err
			}
			out[k] = n
		}
		return out, nil
	case map[any]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			key := fmt.Sprint(k)
			n, err := normalize(item, joinPath(path, key))
			if err != nil {
				return nil, err
			}
			out[key] = n
		}
		return out, nil
	default:
		return nil, fmt.Errorf("dictionary: unsupported value %T at %q", value, path)
	}
}

func normalizeUint(u uint64) any {
	if u > math.MaxInt64 {
		return u
	}
	return int64(u)
}

func normalizeNumber(s string) any {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if u, err := strconv.ParseUint(s, 10, 64); err == nil {
		return u
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

func joinPath(prefix, segment string) string {
	if prefix == "" {
		return segment
	}
	return prefix + "." + segment
}
