package httpapi

import (
	"fmt"
	"regexp"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
var zipPattern = regexp.MustCompile(`^[0-9]{1,5}$`)

// fieldErrors collects request validation failures as "<field> <message>"
// lines so a single 400 can report all of them at once.
type fieldErrors []string

func (e *fieldErrors) add(field, msg string) {
	*e = append(*e, fmt.Sprintf("%s %s", field, msg))
}

func (e *fieldErrors) requireNonEmpty(field, value string) {
	if value == "" {
		e.add(field, "must not be empty")
	}
}

func (e *fieldErrors) requireEmail(field, value string) {
	if value == "" {
		e.add(field, "must not be empty")
		return
	}
	if !emailPattern.MatchString(value) {
		e.add(field, "must be a well-formed email address")
	}
}

func (e *fieldErrors) requireLength(field, value string, min, max int) {
	if len(value) < min || len(value) > max {
		e.add(field, fmt.Sprintf("length must be between %d and %d", min, max))
	}
}

func (e *fieldErrors) requireZipCode(field, value string) {
	if !zipPattern.MatchString(value) {
		e.add(field, "must be numeric with at most 5 digits")
	}
}
