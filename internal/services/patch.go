package services

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/mrlokans/flashcards/internal/optional"
)

// patcher applies optional fields onto an entity, recording which fields
// changed and which were rejected.
type patcher struct {
	changed []string
	errs    []FieldError
}

// requiredString rejects null and blank values.
func (p *patcher) requiredString(field string, v optional.Value[string], maxLen int, dst *string) {
	if !v.Present() {
		return
	}
	s, ok := v.Get()
	switch {
	case !ok:
		p.reject(field, "must not be null")
	case strings.TrimSpace(s) == "":
		p.reject(field, "must not be blank")
	case tooLong(s, maxLen):
		p.reject(field, "must be at most "+strconv.Itoa(maxLen)+" characters")
	default:
		*dst = s
		p.changed = append(p.changed, field)
	}
}

// requiredBool rejects null values.
func (p *patcher) requiredBool(field string, v optional.Value[bool], dst *bool) {
	if !v.Present() {
		return
	}
	b, ok := v.Get()
	if !ok {
		p.reject(field, "must not be null")
		return
	}
	*dst = b
	p.changed = append(p.changed, field)
}

// nullable applies a value to an optional column; null clears it.
func nullable[T any](p *patcher, field string, v optional.Value[T], dst **T) {
	if !v.Present() {
		return
	}
	v.ApplyTo(dst)
	p.changed = append(p.changed, field)
}

// nullableString is nullable with the same length limit the create path
// enforces. maxLen <= 0 means unlimited.
func (p *patcher) nullableString(field string, v optional.Value[string], maxLen int, dst **string) {
	if s, ok := v.Get(); ok && tooLong(s, maxLen) {
		p.reject(field, "must be at most "+strconv.Itoa(maxLen)+" characters")
		return
	}
	nullable(p, field, v, dst)
}

// tooLong counts characters, matching the validator's max tag.
func tooLong(s string, maxLen int) bool {
	return maxLen > 0 && utf8.RuneCountInString(s) > maxLen
}

func (p *patcher) reject(field, message string) {
	p.errs = append(p.errs, FieldError{Field: field, Message: message})
}

func (p *patcher) err() error {
	if len(p.errs) == 0 {
		return nil
	}
	return &ValidationError{Fields: p.errs}
}
