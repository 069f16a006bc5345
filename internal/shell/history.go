package shell

// History is the ordered log of successful calculations in a session. It is
// kept in memory only.
type History struct {
	entries []string
}

// Add appends a calculation and its displayed result.
func (h *History) Add(expr, display string) {
	h.entries = append(h.entries, expr+" = "+display)
}

// Entries returns a copy of the log, oldest first.
func (h *History) Entries() []string {
	return append([]string(nil), h.entries...)
}

// Len returns the number of entries.
func (h *History) Len() int {
	return len(h.entries)
}

// Clear removes all entries.
func (h *History) Clear() {
	h.entries = nil
}
