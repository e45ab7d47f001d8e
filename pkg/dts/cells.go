package dts

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInsufficientCells is returned when a property has fewer cells than
	// its encoding requires.
	ErrInsufficientCells = errors.New("insufficient cells")

	// ErrMalformedCell is returned when a cell token is not a 32-bit hex value.
	ErrMalformedCell = errors.New("malformed cell")
)

// Reg is a decoded reg property: one address/size pair.
type Reg struct {
	Address uint64
	Size    uint64
}

// Interrupt is a decoded GIC interrupts specifier.
type Interrupt struct {
	// Type is the interrupt class: 0 for SPI, 1 for PPI.
	Type uint32
	// Number is the raw encoded interrupt number, before any SPI offset.
	Number uint32
	// Flags holds the trigger type and CPU mask bits.
	Flags uint32
}

// ParseCells parses hex cell tokens such as "0x09000000" or "1000".
// Every token must fit in 32 bits.
func ParseCells(tokens []string) ([]uint32, error) {
	cells := make([]uint32, 0, len(tokens))
	for _, tok := range tokens {
		digits := strings.TrimPrefix(strings.TrimPrefix(tok, "0x"), "0X")
		v, err := strconv.ParseUint(digits, 16, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrMalformedCell, tok)
		}
		cells = append(cells, uint32(v))
	}
	return cells, nil
}

// DecodeReg decodes the first address/size pair of a reg property.
//
// Four or more cells use the 64-bit layout <addr_hi addr_lo size_hi size_lo>.
// Two or three cells use the 32-bit layout <addr size>; a third cell is ignored.
func DecodeReg(tokens []string) (Reg, error) {
	cells, err := ParseCells(tokens)
	if err != nil {
		return Reg{}, err
	}

	switch {
	case len(cells) >= 4:
		return Reg{
			Address: uint64(cells[0])<<32 | uint64(cells[1]),
			Size:    uint64(cells[2])<<32 | uint64(cells[3]),
		}, nil
	case len(cells) >= 2:
		return Reg{Address: uint64(cells[0]), Size: uint64(cells[1])}, nil
	default:
		return Reg{}, fmt.Errorf("reg: %w: have %d, need 2 or 4", ErrInsufficientCells, len(cells))
	}
}

// DecodeInterrupt decodes the first <type number flags> triple of an
// interrupts property.
func DecodeInterrupt(tokens []string) (Interrupt, error) {
	cells, err := ParseCells(tokens)
	if err != nil {
		return Interrupt{}, err
	}
	if len(cells) < 3 {
		return Interrupt{}, fmt.Errorf("interrupts: %w: have %d, need 3", ErrInsufficientCells, len(cells))
	}
	return Interrupt{Type: cells[0], Number: cells[1], Flags: cells[2]}, nil
}
