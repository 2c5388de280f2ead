package options

import "godmi/internal/dmitype"

// DefaultMemDevice is read when --dev-mem is not given
const DefaultMemDevice = "/dev/mem"

// Config holds the parsed command line
type Config struct {
	DevMem    string
	DevMemSet bool
	Help      bool
	Quiet     bool
	Dump      bool
	Version   bool
	Types     dmitype.Selection

	// Operands in command line order
	Args []string
}

// Device returns the memory device to read from. An explicitly given
// path is returned as is, even when empty.
func (c *Config) Device() string {
	if !c.DevMemSet {
		return DefaultMemDevice
	}
	return c.DevMem
}
