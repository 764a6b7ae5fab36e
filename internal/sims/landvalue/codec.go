package landvalue

import "errors"

const (
	valueMask     = 0x0f
	categoryShift = 4

	// MaxLevels bounds both value levels and categories: each must fit in
	// a nibble of the packed form.
	MaxLevels = 16
)

// ErrNibbleOverflow is returned when a field does not fit in four bits.
var ErrNibbleOverflow = errors.New("landvalue: field exceeds nibble range")

// Cell is the working representation of one grid position.
type Cell struct {
	Value    uint8
	Category uint8
}

// Codec packs cells into single bytes. The zero Codec is the
// category-less form, which stores the value alone.
type Codec struct {
	WithCategory bool
}

// Encode packs value into the low nibble and, when the codec carries
// categories, category into the high nibble.
func (c Codec) Encode(value, category uint8) (uint8, error) {
	if value > valueMask {
		return 0, ErrNibbleOverflow
	}
	if !c.WithCategory {
		return value, nil
	}
	if category > valueMask {
		return 0, ErrNibbleOverflow
	}
	return category<<categoryShift | value, nil
}

// DecodeValue extracts the value nibble.
func DecodeValue(packed uint8) uint8 { return packed & valueMask }

// DecodeCategory extracts the category nibble.
func DecodeCategory(packed uint8) uint8 { return (packed >> categoryShift) & valueMask }

// Pack returns the packed byte for c. Fields are masked to their nibble, so
// callers that have not validated against the configuration get a
// truncated cell rather than an error.
func (c Cell) Pack() uint8 {
	return (c.Category&valueMask)<<categoryShift | c.Value&valueMask
}

// Unpack is the inverse of Cell.Pack.
func Unpack(packed uint8) Cell {
	return Cell{Value: DecodeValue(packed), Category: DecodeCategory(packed)}
}

// Pack encodes cell for display buffers, dropping the category when the
// codec has none.
func (c Codec) Pack(cell Cell) uint8 {
	if !c.WithCategory {
		return cell.Value & valueMask
	}
	return cell.Pack()
}
