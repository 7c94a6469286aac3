package cpu

import "errors"

var (
	// load time errors
	ErrROMTooLarge = errors.New("ROM too big")

	// runtime errors
	ErrAddressRange = errors.New("address out of range")
	ErrKeyRange     = errors.New("key out of range")

	// render errors
	ErrResolution = errors.New("target resolution smaller than display")
	ErrBufferSize = errors.New("pixel buffer too small")
)
