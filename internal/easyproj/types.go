package easyproj

// Datapoint flags parsed from the export.
const (
	// FlagExport marks a datapoint or channel as exported to the bus.
	// Channels lacking the flag are excluded from conversion.
	FlagExport = "export"
)

// Datapoint is one elementary signal of a channel, such as "Up/Down" or
// "On/Off status". A datapoint may carry several group addresses when the
// installation redefines the same logical point at alternate address ranges;
// the lowest address is authoritative.
type Datapoint struct {
	// Name is the signal name from the export (e.g., "Position control").
	Name string

	// Addresses holds the group addresses in document order.
	Addresses []GroupAddress

	// Flags are export markers attached to the datapoint.
	Flags []string
}

// HasFlag returns true if the datapoint carries the given flag.
func (d *Datapoint) HasFlag(flag string) bool {
	for _, f := range d.Flags {
		if f == flag {
			return true
		}
	}
	return false
}

// CanonicalAddress returns the lowest group address of the datapoint.
// The second return value is false when no address was parsed.
func (d *Datapoint) CanonicalAddress() (GroupAddress, bool) {
	if len(d.Addresses) == 0 {
		return 0, false
	}
	lowest := d.Addresses[0]
	for _, addr := range d.Addresses[1:] {
		if addr < lowest {
			lowest = addr
		}
	}
	return lowest, true
}

// Channel is one physical point of the installation: a blind output, a
// dimmer output, a thermostat input and so on. Channels are created by the
// parser and read-only afterwards.
type Channel struct {
	// Name is the user-assigned channel name. May be filled from the
	// product name when the export leaves it empty (see Products.xml).
	Name string

	// Icon is the icon identifier assigned by the configuration tool
	// (e.g., "icon-shutter"). Empty when the export carries none.
	Icon string

	// Serial is the serial number of the device providing the channel.
	Serial string

	// Datapoints are the channel's signals in document order.
	Datapoints []Datapoint

	// Flags are export markers attached to the channel.
	Flags []string
}

// HasFlag returns true if the channel carries the given flag.
func (c *Channel) HasFlag(flag string) bool {
	for _, f := range c.Flags {
		if f == flag {
			return true
		}
	}
	return false
}

// Exportable reports whether the channel takes part in conversion.
// Unnamed channels and channels explicitly excluded from export are
// filtered out before classification.
func (c *Channel) Exportable() bool {
	return c.Name != "" && c.HasFlag(FlagExport)
}

// Product is one device from Products.xml, identified by serial number.
type Product struct {
	Name   string
	Serial string
}

// Project is a fully parsed easy export.
type Project struct {
	// SourceFile is the base name of the parsed input.
	SourceFile string

	// Channels in document order.
	Channels []Channel

	// Products in document order. Empty for bare Channels.xml input.
	Products []Product
}

// ProductName returns the product name for a serial number, or "" when the
// serial is unknown.
func (p *Project) ProductName(serial string) string {
	for _, prod := range p.Products {
		if prod.Serial == serial {
			return prod.Name
		}
	}
	return ""
}
