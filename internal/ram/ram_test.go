package ram

import (
	"errors"
	"testing"
)

func TestReadValueLittleEndian(t *testing.T) {
	dump := NewDump([]byte{0x58, 0x8F, 0x06, 0x80})

	cases := []struct {
		addr     uint32
		size     int
		expected uint64
	}{
		{Base, 1, 0x58},
		{Base, 2, 0x8F58},
		{Base, 4, 0x80068F58},
		{Base + 2, 2, 0x8006},
		{Base + 3, 1, 0x80},
	}
	for _, c := range cases {
		actual, err := dump.ReadValue(c.addr, c.size)
		if err != nil {
			t.Errorf("ReadValue(0x%08X, %d) error: %v", c.addr, c.size, err)
			continue
		}
		if actual != c.expected {
			t.Errorf("got value: 0x%X\nexpected value: 0x%X", actual, c.expected)
		}
	}
}

func TestReadValueOutOfRange(t *testing.T) {
	dump := NewDump([]byte{0x01, 0x02, 0x03, 0x04})

	cases := []struct {
		addr uint32
		size int
	}{
		{Base - 4, 4},
		{Base + 1, 4},
		{Base + 4, 1},
		{0, 1},
	}
	for _, c := range cases {
		if _, err := dump.ReadValue(c.addr, c.size); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("ReadValue(0x%08X, %d) got error: %v\nexpected: %v", c.addr, c.size, err, ErrOutOfRange)
		}
	}
}

func TestReadValueUnsupportedSize(t *testing.T) {
	dump := NewDump(make([]byte, 16))
	for _, size := range []int{0, 3, 5, 8, -1} {
		if _, err := dump.ReadValue(Base, size); !errors.Is(err, ErrUnsupportedSize) {
			t.Errorf("ReadValue(Base, %d) got error: %v\nexpected: %v", size, err, ErrUnsupportedSize)
		}
	}
}

func TestSliceClamps(t *testing.T) {
	dump := NewDump(make([]byte, 128))

	data, err := dump.Slice(Base+127, 64)
	if err != nil {
		t.Fatalf("Slice at last byte error: %v", err)
	}
	if len(data) != 1 {
		t.Errorf("got slice length: %d\nexpected slice length: 1", len(data))
	}

	data, err = dump.Slice(Base+1024, 64)
	if err != nil {
		t.Fatalf("Slice past end error: %v", err)
	}
	if len(data) != 0 {
		t.Errorf("got slice length: %d\nexpected slice length: 0", len(data))
	}

	if _, err := dump.Slice(Base-1, 16); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Slice below base got error: %v\nexpected: %v", err, ErrOutOfRange)
	}
}

func TestNonZero(t *testing.T) {
	data := make([]byte, Size)
	dump := NewDump(data)
	if actual := dump.NonZero(); actual != 0 {
		t.Errorf("got non-zero count: %d\nexpected non-zero count: 0", actual)
	}

	data[0] = 1
	data[100] = 0xFF
	data[Size-1] = 7
	if actual := dump.NonZero(); actual != 3 {
		t.Errorf("got non-zero count: %d\nexpected non-zero count: 3", actual)
	}
}
