package easyproj

import (
	"fmt"
	"strconv"
	"strings"
)

// GroupAddress is a KNX group address in the flat integer encoding used by
// easy exports.
//
// Layout: MMMM MSSS SSSS SSSS
//   - Main:   0-31 (5 bits)
//   - Middle: 0-7  (3 bits)
//   - Sub:    0-255 (8 bits)
//
// Total: 16 bits (0x0000 - 0xFFFF). The export never uses the bus notation;
// addresses appear as plain decimal integers such as "5122".
type GroupAddress uint16

// Bit masks for extracting the three-level parts of a group address.
const (
	gaMainMask   = 0x1F // 5 bits
	gaMiddleMask = 0x07 // 3 bits
	gaSubMask    = 0xFF // 8 bits

	// maxGroupAddress is the highest encodable group address (31/7/255).
	maxGroupAddress = 0xFFFF
)

// ParseGroupAddress parses a flat decimal group address as found in a
// Channels.xml groupAddresses block.
//
// Address 0 is rejected: the configuration tool writes 0 for a datapoint
// that is not connected to the bus, and 0/0/0 is the broadcast address
// anyway.
//
// Parameters:
//   - s: Decimal address string (e.g., "5122")
//
// Returns:
//   - GroupAddress: Parsed address
//   - error: ErrInvalidAddress if the value is not a 16-bit integer or is 0
func ParseGroupAddress(s string) (GroupAddress, error) {
	value, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: expected decimal integer, got %q", ErrInvalidAddress, s)
	}
	if value == 0 {
		return 0, fmt.Errorf("%w: 0 marks an unconnected datapoint", ErrInvalidAddress)
	}
	if value > maxGroupAddress {
		return 0, fmt.Errorf("%w: must be 1-%d, got %q", ErrInvalidAddress, maxGroupAddress, s)
	}
	return GroupAddress(value), nil
}

// String returns the flat decimal form, matching the export and the
// generated configuration.
func (ga GroupAddress) String() string {
	return strconv.Itoa(int(ga))
}

// ThreeLevel returns the bus notation (main/middle/sub) for diagnostics.
//
// Example: GroupAddress(5122).ThreeLevel() == "2/4/2"
func (ga GroupAddress) ThreeLevel() string {
	main := (uint16(ga) >> 11) & gaMainMask
	middle := (uint16(ga) >> 8) & gaMiddleMask
	sub := uint16(ga) & gaSubMask
	return fmt.Sprintf("%d/%d/%d", main, middle, sub)
}
