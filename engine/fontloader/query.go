package fontloader

import (
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/npillmayer/fontpack/core/font/format"
	"github.com/npillmayer/fontpack/core/option"
)

// ParseQuery parses a loader query string. Three notations are understood:
//
//	?format=woff&weight=400             single values
//	?format[]=woff&format[]=truetype    lists
//	?format=woff,truetype               comma-separated lists
//	?{"format":["woff","truetype"],"weight":400}
//
// Keys other than weight, style and format are returned as options, e.g.
// "context" or "name". A leading '?' is optional.
func ParseQuery(raw string) (Query, map[string]string, error) {
	raw = strings.TrimPrefix(strings.TrimSpace(raw), "?")
	var fields map[string][]string
	var multi map[string]bool
	var err error
	if strings.HasPrefix(raw, "{") {
		fields, multi, err = jsonQuery(raw)
	} else {
		fields, multi, err = urlQuery(raw)
	}
	if err != nil {
		return Query{}, nil, err
	}
	q := Query{}
	opts := make(map[string]string)
	for key, vals := range fields {
		switch key {
		case "weight":
			weights := make([]int, len(vals))
			for i, v := range vals {
				if weights[i], err = strconv.Atoi(strings.TrimSpace(v)); err != nil {
					return q, nil, MalformedMetadataError{Msg: "weight in query: " + v, Err: err}
				}
			}
			q.Weight = values(weights, multi[key])
		case "style":
			styles := make([]string, len(vals))
			for i, v := range vals {
				styles[i] = strings.TrimSpace(v)
			}
			q.Style = values(styles, multi[key])
		case "format":
			formats := make([]format.ID, len(vals))
			for i, v := range vals {
				if formats[i], err = format.Parse(v); err != nil {
					return q, nil, MalformedMetadataError{Msg: "format in query: " + v, Err: err}
				}
			}
			q.Format = values(formats, multi[key])
		default:
			if len(vals) > 0 {
				opts[key] = vals[len(vals)-1]
			}
		}
	}
	tracer().Debugf("query %q parsed as %v", raw, q)
	return q, opts, nil
}

func values[T comparable](vals []T, multi bool) option.Values[T] {
	if len(vals) == 1 && !multi {
		return option.Some(vals[0])
	}
	return option.List(vals...)
}

// urlQuery collects the values of a URL query string, splitting comma lists.
func urlQuery(raw string) (map[string][]string, map[string]bool, error) {
	params, err := url.ParseQuery(raw)
	if err != nil {
		return nil, nil, MalformedMetadataError{Msg: "cannot parse query", Err: err}
	}
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys) // "format" before "format[]"
	fields := make(map[string][]string)
	multi := make(map[string]bool)
	for _, k := range keys {
		key := strings.TrimSuffix(k, "[]")
		if key != k || len(params[k]) > 1 {
			multi[key] = true
		}
		for _, v := range params[k] {
			if parts := strings.Split(v, ","); len(parts) > 1 && isDimension(key) {
				multi[key] = true
				fields[key] = append(fields[key], parts...)
			} else {
				fields[key] = append(fields[key], v)
			}
		}
	}
	return fields, multi, nil
}

// jsonQuery collects the values of a JSON object query.
func jsonQuery(raw string) (map[string][]string, map[string]bool, error) {
	var obj map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &obj); err != nil {
		return nil, nil, MalformedMetadataError{Msg: "cannot parse JSON query", Err: err}
	}
	fields := make(map[string][]string)
	multi := make(map[string]bool)
	for key, v := range obj {
		if list, ok := v.([]interface{}); ok {
			multi[key] = true
			fields[key] = make([]string, 0, len(list))
			for _, x := range list {
				fields[key] = append(fields[key], scalar(x))
			}
			continue
		}
		fields[key] = []string{scalar(v)}
	}
	return fields, multi, nil
}

func scalar(x interface{}) string {
	switch v := x.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return fmt.Sprintf("%v", x)
}

func isDimension(key string) bool {
	return key == "weight" || key == "style" || key == "format"
}
