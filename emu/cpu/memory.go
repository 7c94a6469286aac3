package cpu

import "fmt"

const (
	MemorySize   = 4096
	ProgramStart = 0x200
	MaxROMSize   = MemorySize - ProgramStart
)

type Memory [MemorySize]uint8

func checkRange(addr uint16, n int) error {
	if int(addr)+n > MemorySize {
		return fmt.Errorf("%w: 0x%04x+%d", ErrAddressRange, addr, n)
	}
	return nil
}

func (m *Memory) Read(addr uint16) (uint8, error) {
	if err := checkRange(addr, 1); err != nil {
		return 0, err
	}
	return m[addr], nil
}

func (m *Memory) Write(addr uint16, v uint8) error {
	if err := checkRange(addr, 1); err != nil {
		return err
	}
	m[addr] = v
	return nil
}

//big-endian, high byte first
func (m *Memory) ReadWord(addr uint16) (uint16, error) {
	if err := checkRange(addr, 2); err != nil {
		return 0, err
	}
	return uint16(m[addr])<<8 | uint16(m[addr+1]), nil
}

// Slice returns the n bytes starting at addr. The slice aliases memory.
func (m *Memory) Slice(addr uint16, n int) ([]uint8, error) {
	if err := checkRange(addr, n); err != nil {
		return nil, err
	}
	return m[addr : int(addr)+n], nil
}
