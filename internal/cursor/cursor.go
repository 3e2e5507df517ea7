// Package cursor provides an immutable position over a slice of characters.
package cursor

// Cursor is a read-only view of characters at a given index. Moving a
// cursor returns a new value; the backing slice is never modified.
type Cursor struct {
	chars []rune
	index int
}

// New creates a cursor positioned at the first character.
func New(chars []rune) Cursor {
	return Cursor{chars: chars}
}

// FromString creates a cursor over the characters of s.
func FromString(s string) Cursor {
	return New([]rune(s))
}

// Index returns the number of characters before the cursor.
func (c Cursor) Index() int {
	return c.index
}

// Len returns the total number of characters behind the cursor.
func (c Cursor) Len() int {
	return len(c.chars)
}

// Done reports whether the cursor is past the last character.
func (c Cursor) Done() bool {
	return c.index >= len(c.chars)
}

// Current returns the character under the cursor, if any.
func (c Cursor) Current() (rune, bool) {
	return c.at(c.index)
}

// Previous returns the character before the cursor, if any.
func (c Cursor) Previous() (rune, bool) {
	return c.at(c.index - 1)
}

// Progress returns a cursor one character further on.
func (c Cursor) Progress() Cursor {
	return c.Jump(1)
}

// Jump returns a cursor n characters further on.
func (c Cursor) Jump(n int) Cursor {
	return Cursor{chars: c.chars, index: c.index + n}
}

func (c Cursor) at(i int) (rune, bool) {
	if i < 0 || i >= len(c.chars) {
		return 0, false
	}
	return c.chars[i], true
}
