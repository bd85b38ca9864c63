package runsearch

import "fmt"

// ErrInvalidRange indicates a malformed search range.
//
// A range [Low, High] is valid when both bounds sit inside the list and
// Low <= High+1; the empty range Low == High+1 is valid and yields an
// immediate not-found.
type ErrInvalidRange struct {
	Low  int
	High int
	Len  int
}

func (e *ErrInvalidRange) Error() string {
	return fmt.Sprintf("invalid range [%d, %d] for list of length %d", e.Low, e.High, e.Len)
}

// ErrShortBuffer indicates an output buffer with too little capacity for
// the requested batch.
type ErrShortBuffer struct {
	Need int
	Got  int
}

func (e *ErrShortBuffer) Error() string {
	return fmt.Sprintf("output buffer too short: need %d slots, got %d", e.Need, e.Got)
}
