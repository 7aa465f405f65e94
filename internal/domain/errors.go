package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUnresolvedReference = errors.New("unresolved group reference")
	ErrLegendNotFound      = errors.New("category legend not found")
)

type LookupTable string

const (
	LookupTableCategories LookupTable = "categories"
	LookupTableGroups     LookupTable = "groups"
)

// UnresolvedReferenceError reports an incident whose group reference is missing from one of the
// lookup tables built from the group export.
type UnresolvedReferenceError struct {
	Ref   string
	Title string
	Table LookupTable
}

func (e *UnresolvedReferenceError) Error() string {
	return fmt.Sprintf("%s: incident %q references group %q missing from %s table", ErrUnresolvedReference, e.Title, e.Ref, e.Table)
}

func (e *UnresolvedReferenceError) Unwrap() error {
	return ErrUnresolvedReference
}
