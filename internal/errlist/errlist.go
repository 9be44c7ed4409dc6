// Package errlist collects zero or more errors encountered while
// tearing down the CLI (the terminal program's error and the
// emulation loop's error) into a single error.
package errlist

import (
	"fmt"
	"strings"
)

// New builds a List from errors, dropping any nils.
func New(errors ...error) List {
	return List.Add(nil, errors...)
}

type List []error

func (e List) Add(errors ...error) List {
	for _, err := range errors {
		if err == nil {
			continue
		}

		e = append(e, err)
	}

	return e
}

func (e List) Errorf(format string, args ...interface{}) error {
	if e == nil {
		return nil
	}

	return fmt.Errorf(format, args...)
}

func (e List) Error() string {
	var slist []string
	for _, err := range e {
		slist = append(slist, err.Error())
	}
	return strings.Join(slist, ", ")
}

// Err returns nil if the list is empty, otherwise the list itself as
// an error.
func (e List) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}
