package quant

import "fmt"

// PackingID identifies one of the closed set of sub-byte packing layouts.
// It is a deterministic function of nbits (see PackingForNBits).
type PackingID string

const (
	Packing1Bit PackingID = "1bit_u8"
	Packing2Bit PackingID = "2bit_u8"
	Packing3Bit PackingID = "3bit_32"
	Packing4Bit PackingID = "4bit_u8"
	Packing8Bit PackingID = "8bit_u8"
)

// packingSpec is the stripe layout for one packing id: bits per code and
// the packing ratio (codes per container element).
type packingSpec struct {
	bits int
	r    int
}

var packingSpecs = map[PackingID]packingSpec{
	Packing1Bit: {bits: 1, r: 8},
	Packing2Bit: {bits: 2, r: 4},
	Packing3Bit: {bits: 3, r: 10},
	Packing4Bit: {bits: 4, r: 2},
	Packing8Bit: {bits: 8, r: 1},
}

// PackingForNBits returns the packing identifier for a recognized nbits
// value. ok is false when the width occupies a full 8-bit container
// without sub-byte packing (5, 6 bits); err is non-nil only when nbits
// falls entirely outside the supported set.
func PackingForNBits(nbits float64) (id PackingID, ok bool, err error) {
	switch nbits {
	case 1:
		return Packing1Bit, true, nil
	case 1.58, 2:
		return Packing2Bit, true, nil
	case 3:
		return Packing3Bit, true, nil
	case 4:
		return Packing4Bit, true, nil
	case 5, 6:
		return "", false, nil
	case 8:
		return Packing8Bit, true, nil
	default:
		return "", false, errUnsupported(fmt.Sprintf("nbits %v is not in the supported set", nbits))
	}
}

// packStripes implements the layout rule of the BitPack codec: split a
// code array of length L into r stripes of length L/r and fold stripe k
// into bit position (r-1-k) of each output word. codes must have length
// divisible by r; the caller pads otherwise.
func packStripes(codes []uint8, bits, r int) ([]uint32, error) {
	l := len(codes)
	if l%r != 0 {
		return nil, errShape(fmt.Sprintf("code length %d is not divisible by packing ratio %d", l, r))
	}
	n := l / r
	out := make([]uint32, n)
	for i := 0; i < n; i++ {
		var val uint32
		for k := 0; k < r; k++ {
			val |= uint32(codes[k*n+i]) << uint(bits*(r-1-k))
		}
		out[i] = val
	}
	return out, nil
}

// unpackStripes is the exact inverse of packStripes.
func unpackStripes(container []uint32, bits, r int) []uint8 {
	n := len(container)
	codes := make([]uint8, n*r)
	mask := uint32(1)<<uint(bits) - 1
	for i, val := range container {
		for k := 0; k < r; k++ {
			shift := uint(bits * (r - 1 - k))
			codes[k*n+i] = uint8((val >> shift) & mask)
		}
	}
	return codes
}

func packU8(codes []uint8, bits, r int) ([]uint8, error) {
	wide, err := packStripes(codes, bits, r)
	if err != nil {
		return nil, err
	}
	out := make([]uint8, len(wide))
	for i, v := range wide {
		out[i] = uint8(v)
	}
	return out, nil
}

func unpackU8(container []uint8, bits, r int) []uint8 {
	wide := make([]uint32, len(container))
	for i, v := range container {
		wide[i] = uint32(v)
	}
	return unpackStripes(wide, bits, r)
}

// Pack1 packs 1-bit codes 8-per-byte, MSB-first by octant.
func Pack1(codes []uint8) ([]uint8, error) { return packU8(codes, 1, 8) }

// Unpack1 is the exact inverse of Pack1.
func Unpack1(container []uint8) []uint8 { return unpackU8(container, 1, 8) }

// Pack2 packs 2-bit codes 4-per-byte, MSB-first by quarter position.
func Pack2(codes []uint8) ([]uint8, error) { return packU8(codes, 2, 4) }

// Unpack2 is the exact inverse of Pack2.
func Unpack2(container []uint8) []uint8 { return unpackU8(container, 2, 4) }

// Pack4 packs 4-bit codes 2-per-byte: high nibble first half, low nibble
// second half.
func Pack4(codes []uint8) ([]uint8, error) { return packU8(codes, 4, 2) }

// Unpack4 is the exact inverse of Pack4.
func Unpack4(container []uint8) []uint8 { return unpackU8(container, 4, 2) }

// Pack8 is the identity packing: one code per byte, ratio 1.
func Pack8(codes []uint8) ([]uint8, error) { return packU8(codes, 8, 1) }

// Unpack8 is the exact inverse of Pack8.
func Unpack8(container []uint8) []uint8 { return unpackU8(container, 8, 1) }

// Pack3 packs 3-bit codes 10-per-word into 32-bit containers. Unlike the
// other widths, the 3-bit codec packs along rows of the caller's
// [rows, cols] row-major layout and leaves columns untouched: each column
// is its own stripe run, with rows padded independently to the next
// multiple of 10. This mirrors the grouped-tensor layout the source
// reshapes W into before packing (group dimension first for axis=0, group
// dimension second for axis=1), which is why dequantize's padding trim is
// expressed in rows, not in a flat element count.
func Pack3(codes []uint8, rows, cols int) ([]int32, error) {
	if cols <= 0 {
		cols = 1
	}
	if len(codes) != rows*cols {
		return nil, errShape(fmt.Sprintf("code length %d does not match rows*cols (%d*%d)", len(codes), rows, cols))
	}
	paddedRows := rows
	if rem := rows % 10; rem != 0 {
		paddedRows += 10 - rem
	}
	outRows := paddedRows / 10
	out := make([]int32, outRows*cols)
	for c := 0; c < cols; c++ {
		for j := 0; j < outRows; j++ {
			var val uint32
			for k := 0; k < 10; k++ {
				row := j*10 + k
				var code uint8
				if row < rows {
					code = codes[row*cols+c]
				}
				val |= uint32(code) << uint(3*(10-1-k))
			}
			out[j*cols+c] = int32(val)
		}
	}
	return out, nil
}

// Unpack3 is the exact inverse of Pack3: container is read as
// [len(container)/cols, cols] packed words, and the result is trimmed back
// to exactly rows*cols codes, dropping the row padding Pack3 introduced.
func Unpack3(container []int32, rows, cols int) []uint8 {
	if cols <= 0 {
		cols = 1
	}
	outRows := 0
	if cols > 0 {
		outRows = len(container) / cols
	}
	codes := make([]uint8, rows*cols)
	mask := uint32(1)<<3 - 1
	for c := 0; c < cols; c++ {
		for j := 0; j < outRows; j++ {
			val := uint32(container[j*cols+c])
			for k := 0; k < 10; k++ {
				row := j*10 + k
				if row >= rows {
					continue
				}
				shift := uint(3 * (10 - 1 - k))
				codes[row*cols+c] = uint8((val >> shift) & mask)
			}
		}
	}
	return codes
}

// packedGroupDims returns the [rows, cols] view the 3-bit codec packs
// along: rows are the packable dimension, cols are preserved untouched.
// It mirrors the reshape Quantize performs before computing group
// statistics — axis=0 groups into [group_size, -1], axis=1 into
// [-1, group_size] — so that Pack3/Unpack3 trim exactly the rows the
// source's dequantize trims, not an unrelated flat element count. With no
// grouping, codes keep the tensor's own 2-D shape, or fall back to a
// single column for anything else.
func packedGroupDims(shape []int, groupSize int, axis int, channelWise bool) (rows, cols int) {
	numel := 1
	for _, d := range shape {
		numel *= d
	}
	if channelWise && groupSize > 0 {
		if axis == 1 {
			return numel / groupSize, groupSize
		}
		return groupSize, numel / groupSize
	}
	if len(shape) == 2 {
		return shape[0], shape[1]
	}
	return numel, 1
}

// Pack dispatches to the codec identified by id. Exactly one of the
// returned slices is populated, matching the container type the table in
// §4.1 assigns to id. rows/cols are only consulted for the 3-bit codec.
func Pack(id PackingID, codes []uint8, rows, cols int) (u8 []uint8, i32 []int32, err error) {
	spec, known := packingSpecs[id]
	if !known {
		return nil, nil, errUnsupported(fmt.Sprintf("packing id %q has no registered codec", id))
	}
	if id == Packing3Bit {
		i32, err = Pack3(codes, rows, cols)
		return nil, i32, err
	}
	u8, err = packU8(codes, spec.bits, spec.r)
	return u8, nil, err
}

// Unpack dispatches to the codec identified by id, reading from whichever
// of u8/i32 matches the container type. rows/cols are only consulted for
// the 3-bit codec.
func Unpack(id PackingID, u8 []uint8, i32 []int32, rows, cols int) ([]uint8, error) {
	spec, known := packingSpecs[id]
	if !known {
		return nil, errUnsupported(fmt.Sprintf("packing id %q has no registered codec", id))
	}
	if id == Packing3Bit {
		return Unpack3(i32, rows, cols), nil
	}
	return unpackU8(u8, spec.bits, spec.r), nil
}
