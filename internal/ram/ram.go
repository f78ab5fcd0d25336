package ram

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Base is the PS1 address of the first byte in a captured dump.
const Base uint32 = 0x80000000

// Size is the expected length of a full PS1 RAM capture.
const Size = 2 * 1024 * 1024

var (
	ErrOutOfRange      = errors.New("address out of range")
	ErrUnsupportedSize = errors.New("unsupported value size")
)

// Dump is one captured address space. The buffer is never mutated after
// load; its actual length may differ from Size.
type Dump struct {
	data []byte
}

func NewDump(data []byte) *Dump {
	return &Dump{data: data}
}

func (d *Dump) Len() int {
	return len(d.data)
}

// ReadValue returns the unsigned little-endian value of the given width at
// a PS1 address. Width must be 1, 2 or 4 bytes.
func (d *Dump) ReadValue(addr uint32, size int) (uint64, error) {
	switch size {
	case 1, 2, 4:
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedSize, size)
	}
	if addr < Base {
		return 0, fmt.Errorf("%w: 0x%08X", ErrOutOfRange, addr)
	}
	offset := int(addr - Base)
	if offset+size > len(d.data) {
		return 0, fmt.Errorf("%w: 0x%08X", ErrOutOfRange, addr)
	}
	switch size {
	case 1:
		return uint64(d.data[offset]), nil
	case 2:
		return uint64(binary.LittleEndian.Uint16(d.data[offset:])), nil
	default:
		return uint64(binary.LittleEndian.Uint32(d.data[offset:])), nil
	}
}

// Slice returns up to length bytes starting at addr, clamped to the end of
// the dump. Only addresses below Base are an error; a start past the end
// yields an empty slice.
func (d *Dump) Slice(addr uint32, length int) ([]byte, error) {
	if addr < Base {
		return nil, fmt.Errorf("%w: 0x%08X", ErrOutOfRange, addr)
	}
	offset := int(addr - Base)
	if offset > len(d.data) {
		offset = len(d.data)
	}
	if length < 0 {
		length = 0
	}
	end := offset + length
	if end > len(d.data) {
		end = len(d.data)
	}
	return d.data[offset:end], nil
}

// NonZero counts the bytes in the dump that are not zero.
func (d *Dump) NonZero() int {
	count := 0
	for _, b := range d.data {
		if b != 0 {
			count++
		}
	}
	return count
}
