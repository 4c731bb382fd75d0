package cachematrix

import (
	"fmt"

	"github.com/katalvlaran/cachematrix/matrix"
)

// Slot holds the cached inverse of a CacheableMatrix. It is either Absent
// (not computed for the current value) or Present with a matrix.
// The zero value is Absent.
type Slot struct {
	m       matrix.Matrix
	present bool
}

// Absent returns the empty slot.
func Absent() Slot { return Slot{} }

// Present returns a slot holding m verbatim. m is not validated.
func Present(m matrix.Matrix) Slot { return Slot{m: m, present: true} }

// Get returns the stored matrix and whether the slot is present.
func (s Slot) Get() (matrix.Matrix, bool) { return s.m, s.present }

// IsPresent reports whether the slot holds a matrix.
func (s Slot) IsPresent() bool { return s.present }

// String renders "absent", "present(nil)" or "present(RxC)".
func (s Slot) String() string {
	switch {
	case !s.present:
		return "absent"
	case matrix.ValidateNotNil(s.m) != nil:
		return "present(nil)"
	default:
		return fmt.Sprintf("present(%dx%d)", s.m.Rows(), s.m.Cols())
	}
}
