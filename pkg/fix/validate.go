package fix

import (
	"fmt"
	"slices"
)

// RangeError describes an edit whose range does not fit the content.
type RangeError struct {
	Edit    TextEdit
	Message string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("invalid edit [%d:%d]: %s", e.Edit.Start, e.Edit.End, e.Message)
}

// Validate checks every edit against the content length.
func Validate(edits []TextEdit, contentLen int) error {
	for _, e := range edits {
		switch {
		case e.Start < 0:
			return &RangeError{Edit: e, Message: "start offset is negative"}
		case e.End < e.Start:
			return &RangeError{Edit: e, Message: "end offset is before start offset"}
		case e.End > contentLen:
			return &RangeError{
				Edit:    e,
				Message: fmt.Sprintf("end offset %d exceeds content length %d", e.End, contentLen),
			}
		}
	}
	return nil
}

// Sort orders edits by start, then end offset. Equal edits keep their
// recording order.
func Sort(edits []TextEdit) {
	slices.SortStableFunc(edits, func(a, b TextEdit) int {
		if a.Start != b.Start {
			return a.Start - b.Start
		}
		return a.End - b.End
	})
}

// Resolve sorts edits and settles overlaps. Overlapping deletions are
// merged into one covering their union; any other edit overlapping an
// earlier one is skipped. Two insertions at the same offset are both
// kept, in recording order.
func Resolve(edits []TextEdit) (accepted, skipped []TextEdit, merged int) {
	if len(edits) == 0 {
		return nil, nil, 0
	}

	sorted := slices.Clone(edits)
	Sort(sorted)

	accepted = make([]TextEdit, 0, len(sorted))
	current := sorted[0]
	for _, e := range sorted[1:] {
		overlaps := e.Start < current.End
		switch {
		case !overlaps:
			accepted = append(accepted, current)
			current = e
		case current.IsDeletion() && e.IsDeletion():
			current.End = max(current.End, e.End)
			merged++
		default:
			skipped = append(skipped, e)
		}
	}
	accepted = append(accepted, current)
	return accepted, skipped, merged
}
