package chapters

import "strconv"

// NumberingCursor hands out dotted subsection numbers for one page render.
// Create a fresh cursor per render; it is not safe to share.
type NumberingCursor struct {
	chapterIndex int
	n            int
}

// NewNumberingCursor starts a cursor for the chapter at chapterIndex.
func NewNumberingCursor(chapterIndex int) *NumberingCursor {
	return &NumberingCursor{chapterIndex: chapterIndex}
}

// Next increments the counter and returns "{chapterIndex}.{n}". The first
// call returns ".1".
func (c *NumberingCursor) Next() string {
	c.n++
	return AllocateSubNumber(c.chapterIndex, c.n)
}

// Count returns how many numbers have been handed out.
func (c *NumberingCursor) Count() int {
	return c.n
}

// AllocateSubNumber formats a subsection number.
func AllocateSubNumber(chapterIndex, n int) string {
	return strconv.Itoa(chapterIndex) + "." + strconv.Itoa(n)
}
