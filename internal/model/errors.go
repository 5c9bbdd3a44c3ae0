package model

import "fmt"

// LookupError reports a reference to a node or element that is not present
// in the stores.
type LookupError struct {
	Kind string // "node" or "element"
	ID   int
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("unknown %s id %d", e.Kind, e.ID)
}

// GeometryError reports a girder element chain whose endpoints do not
// connect. The chain is never reordered or patched; the girder is rejected.
type GeometryError struct {
	Girder string
	Elem   ElemID
	Reason string
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("girder %q: element %d: %s", e.Girder, e.Elem, e.Reason)
}

// DataError reports a malformed or incomplete force dataset, such as a
// missing sample for a referenced element or an unrecognized component name.
type DataError struct {
	Girder string // may be empty when the error is not tied to one girder
	Elem   ElemID // zero when the error is not tied to one element
	Reason string
}

func (e *DataError) Error() string {
	switch {
	case e.Girder != "" && e.Elem != 0:
		return fmt.Sprintf("girder %q: element %d: %s", e.Girder, e.Elem, e.Reason)
	case e.Elem != 0:
		return fmt.Sprintf("element %d: %s", e.Elem, e.Reason)
	default:
		return e.Reason
	}
}
