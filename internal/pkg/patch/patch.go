package patch

import "strings"

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// CoalesceOptional is Coalesce for nullable columns: a pointer to a blank
// string clears the value, nil keeps the current one.
func CoalesceOptional(ptr *string, current *string) *string {
	if ptr == nil {
		return current
	}
	if strings.TrimSpace(*ptr) == "" {
		return nil
	}
	v := strings.TrimSpace(*ptr)
	return &v
}
