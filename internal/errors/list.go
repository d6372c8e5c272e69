package errors

import "strings"

// List collects multiple KitErrors so a user can fix every configuration
// problem in one pass instead of iterating one error at a time.
type List struct {
	errs []*KitError
}

// Append adds an error to the list. Nil errors are ignored.
func (l *List) Append(err *KitError) {
	if err == nil {
		return
	}
	l.errs = append(l.errs, err)
}

// Errors returns the collected errors in insertion order.
func (l *List) Errors() []*KitError {
	return l.errs
}

// Len returns the number of collected errors.
func (l *List) Len() int {
	return len(l.errs)
}

// Err returns the list as an error, or nil when no errors were collected.
func (l *List) Err() error {
	if len(l.errs) == 0 {
		return nil
	}
	return l
}

// Error implements the error interface, listing every collected error.
func (l *List) Error() string {
	if len(l.errs) == 1 {
		return l.errs[0].Error()
	}

	var b strings.Builder
	b.WriteString("multiple errors:")
	for _, err := range l.errs {
		b.WriteString("\n  - ")
		b.WriteString(err.Error())
	}
	return b.String()
}

// HasCode reports whether any collected error carries the given code.
func (l *List) HasCode(code ErrorCode) bool {
	for _, err := range l.errs {
		if err.Code == code {
			return true
		}
	}
	return false
}
