// Package errs is the project's thin face over cockroachdb/errors: stack
// capturing constructors plus category marks that survive wrapping.
package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func New(msg string) error                 { return cr.New(msg) }
func Newf(format string, args ...any) error { return cr.Newf(format, args...) }

// Wrap and Wrapf return nil for a nil err so call sites can wrap unconditionally.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return cr.Wrapf(err, format, args...)
}

// Mark tags err so Is(err, mark) holds without changing its message.
// A nil err yields the mark itself.
func Mark(err, mark error) error {
	if err == nil {
		return mark
	}
	return cr.Mark(err, mark)
}

func Is(err, reference error) bool { return cr.Is(err, reference) }

// Sentinel creates a package level error that already belongs to category.
func Sentinel(msg string, category error) error {
	return cr.Mark(cr.New(msg), category)
}

// ExtractStackLines renders err with its stack trace, cut to maxLines when maxLines > 0.
func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	lines := strings.Split(fmt.Sprintf("%+v", err), "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
