package fix

import "bytes"

// Result summarises an Apply call.
type Result struct {
	Applied int
	Skipped int
	Merged  int
}

// Apply validates and resolves edits, then applies them to content.
// The content slice is never modified.
func Apply(content []byte, edits []TextEdit) ([]byte, Result, error) {
	if len(edits) == 0 {
		return content, Result{}, nil
	}
	if err := Validate(edits, len(content)); err != nil {
		return nil, Result{}, err
	}

	accepted, skipped, merged := Resolve(edits)

	delta := 0
	for _, e := range accepted {
		delta += len(e.NewText) - (e.End - e.Start)
	}

	var out bytes.Buffer
	out.Grow(len(content) + delta)

	cursor := 0
	for _, e := range accepted {
		out.Write(content[cursor:e.Start])
		out.WriteString(e.NewText)
		cursor = e.End
	}
	out.Write(content[cursor:])

	return out.Bytes(), Result{Applied: len(accepted), Skipped: len(skipped), Merged: merged}, nil
}
