package sequence

import "strconv"

const (
	displayBasePrefix     = '{'
	displayCurrentMarker  = '>'
	displaySeparator      = ", "
	displayCapacityPrefix = "} (capacity = "
	displayBaseSuffix     = ')'
)

// display returns the textual representation of s, with the current element
// prefixed by a '>' and the capacity appended:
//
//	{A, >B, C} (capacity = 10)
func display(s *Sequence) []byte {
	approxSize := len(displayCapacityPrefix) + 8
	for i := 0; i < s.count; i++ {
		approxSize += len(s.data[i]) + len(displaySeparator)
	}
	buf := make([]byte, 0, approxSize+2)
	buf = append(buf, displayBasePrefix)
	for i := 0; i < s.count; i++ {
		if i > 0 {
			buf = append(buf, displaySeparator...)
		}
		if i == s.cursor {
			buf = append(buf, displayCurrentMarker)
		}
		buf = append(buf, s.data[i]...)
	}
	buf = append(buf, displayCapacityPrefix...)
	buf = strconv.AppendInt(buf, int64(len(s.data)), 10)
	buf = append(buf, displayBaseSuffix)
	return buf
}

// String returns the display string of the sequence. An empty sequence with
// a capacity of 10 is represented as "{} (capacity = 10)".
func (s *Sequence) String() string {
	return string(display(s))
}
