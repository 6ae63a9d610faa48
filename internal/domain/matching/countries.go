package matching

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const maxCountryLength = 100

// Countries is the normalised destination list of a request. Order of first
// appearance is kept and duplicates are dropped case-insensitively.
type Countries struct {
	values []string
}

// ParseCountries accepts the free text entered by suppliers, e.g.
// "iraq, UAE, oman" or "Iraq Oman". Commas win; whitespace is only used as
// a separator when the text has no comma.
func ParseCountries(raw string) (Countries, error) {
	var parts []string
	if strings.Contains(raw, ",") {
		parts = strings.Split(raw, ",")
	} else {
		parts = strings.Fields(raw)
	}
	return NewCountries(parts)
}

func NewCountries(items []string) (Countries, error) {
	seen := make(map[string]struct{}, len(items))
	values := make([]string, 0, len(items))
	for _, item := range items {
		name := normalizeCountry(item)
		if name == "" {
			continue
		}
		if len(name) > maxCountryLength {
			return Countries{}, ErrFieldTooLong
		}
		key := strings.ToLower(name)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		values = append(values, name)
	}
	if len(values) == 0 {
		return Countries{}, ErrNoCountries
	}
	return Countries{values: values}, nil
}

// normalizeCountry title-cases names but leaves short all-caps codes such as
// UAE or USA untouched.
func normalizeCountry(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return ""
	}
	if len(s) <= 3 && isUpper(s) {
		return s
	}
	// a Caser keeps state between calls and cannot be shared
	return cases.Title(language.English).String(s)
}

func isUpper(s string) bool {
	for _, r := range s {
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

func (c Countries) Values() []string {
	out := make([]string, len(c.values))
	copy(out, c.values)
	return out
}

func (c Countries) Contains(country string) bool {
	for _, v := range c.values {
		if strings.EqualFold(v, strings.TrimSpace(country)) {
			return true
		}
	}
	return false
}

func (c Countries) String() string { return strings.Join(c.values, ", ") }
