package recommend

import (
	"encoding/base64"
	"fmt"
	"math"
	"net/url"
	"shopReco/domain"
	"strconv"
	"strings"
)

const cursorDelimiter = "|"

// CursorState carries everything needed to resume a ranked list without
// recomputation drift. The token is reversible, not encrypted.
type CursorState struct {
	ProductID string
	Offset    int
	Alpha     float64
	Diversify bool
}

// EncodeCursor packs the state as product_id|offset|alpha|diversify and
// base64-encodes it URL-safely. The product_id is percent-escaped so ids
// containing the delimiter still round-trip.
func EncodeCursor(state CursorState) string {
	diversify := "0"
	if state.Diversify {
		diversify = "1"
	}

	raw := strings.Join([]string{
		url.QueryEscape(state.ProductID),
		strconv.Itoa(state.Offset),
		strconv.FormatFloat(state.Alpha, 'f', -1, 64),
		diversify,
	}, cursorDelimiter)

	return base64.URLEncoding.EncodeToString([]byte(raw))
}

// DecodeCursor reverses EncodeCursor. Structurally broken tokens fail
// with ErrInvalidCursor; tokens that decode but carry inconsistent
// parameters fail with ErrCursorMismatch.
func DecodeCursor(token string) (CursorState, error) {
	raw, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return CursorState{}, fmt.Errorf("decode cursor: %w", domain.ErrInvalidCursor)
	}

	parts := strings.Split(string(raw), cursorDelimiter)
	if len(parts) != 4 {
		return CursorState{}, fmt.Errorf("cursor field count %d: %w", len(parts), domain.ErrInvalidCursor)
	}

	productID, err := url.QueryUnescape(parts[0])
	if err != nil {
		return CursorState{}, fmt.Errorf("cursor product id: %w", domain.ErrInvalidCursor)
	}

	offset, err := strconv.Atoi(parts[1])
	if err != nil {
		return CursorState{}, fmt.Errorf("cursor offset: %w", domain.ErrInvalidCursor)
	}

	alpha, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return CursorState{}, fmt.Errorf("cursor alpha: %w", domain.ErrInvalidCursor)
	}

	var diversify bool
	switch parts[3] {
	case "0":
		diversify = false
	case "1":
		diversify = true
	default:
		return CursorState{}, fmt.Errorf("cursor diversify flag: %w", domain.ErrInvalidCursor)
	}

	state := CursorState{
		ProductID: productID,
		Offset:    offset,
		Alpha:     alpha,
		Diversify: diversify,
	}

	// NaN compares false against both bounds, so it needs its own check
	if state.ProductID == "" || state.Offset < 0 ||
		math.IsNaN(state.Alpha) || state.Alpha < 0 || state.Alpha > 1 {
		return CursorState{}, fmt.Errorf("inconsistent cursor state: %w", domain.ErrCursorMismatch)
	}

	return state, nil
}
