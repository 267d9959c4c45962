// Package query builds query strings whose parameters keep their insertion order.
package query

import (
	"net/url"
	"strconv"
	"strings"
)

// Separators used inside composite values stay literal so that "1,2|3,4" reads as sent.
var unescaper = strings.NewReplacer(
	"%2C", ",",
	"%7C", "|",
	"+", "%20",
)

type param struct {
	key   string
	value string
}

type Builder struct {
	params []param
}

func New() *Builder {
	return &Builder{params: nil}
}

func (b *Builder) Add(key, value string) *Builder {
	b.params = append(b.params, param{key: key, value: value})

	return b
}

// AddNonEmpty adds the parameter only when value is not empty.
func (b *Builder) AddNonEmpty(key, value string) *Builder {
	if value == "" {
		return b
	}

	return b.Add(key, value)
}

// AddBool adds "true" or "false" when value is set.
func (b *Builder) AddBool(key string, value *bool) *Builder {
	if value == nil {
		return b
	}

	return b.Add(key, strconv.FormatBool(*value))
}

func (b *Builder) AddFloat(key string, value float64) *Builder {
	return b.Add(key, strconv.FormatFloat(value, 'f', -1, 64))
}

func (b *Builder) Len() int {
	return len(b.params)
}

func (b *Builder) Encode() string {
	pairs := make([]string, 0, len(b.params))
	for _, p := range b.params {
		pairs = append(pairs, Escape(p.key)+"="+Escape(p.value))
	}

	return strings.Join(pairs, "&")
}

// Join appends the encoded parameters to path. Trailing "?" and "&" are trimmed from path.
func Join(path string, b *Builder) string {
	path = strings.TrimRight(path, "?&")

	if b == nil || b.Len() == 0 {
		return path
	}

	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}

	return path + sep + b.Encode()
}

func Escape(s string) string {
	return unescaper.Replace(url.QueryEscape(s))
}
