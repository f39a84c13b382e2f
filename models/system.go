package models

import (
	"errors"
	"strings"
)

// System identifies one of the external platforms a license is issued on.
type System string

const (
	SystemDMS  System = "DMS"
	SystemLSQ  System = "LSQ"
	SystemCRM  System = "CRM"
	SystemZOHO System = "ZOHO"
)

// Systems lists every known system in dashboard order.
var Systems = []System{SystemDMS, SystemLSQ, SystemCRM, SystemZOHO}

// ErrUnknownSystem is returned when a system identifier is not one of Systems.
var ErrUnknownSystem = errors.New("unknown system")

// ParseSystem resolves a system identifier case-insensitively.
func ParseSystem(value string) (System, error) {
	v := strings.ToUpper(strings.TrimSpace(value))
	for _, s := range Systems {
		if string(s) == v {
			return s, nil
		}
	}
	return "", ErrUnknownSystem
}

// Key is the lower-case segment used in details column paths (details.<key>.<field>).
func (s System) Key() string {
	return strings.ToLower(string(s))
}

// CategoryField is the details field the distribution chart groups by.
func (s System) CategoryField() string {
	switch s {
	case SystemDMS:
		return "dealerName"
	case SystemLSQ:
		return "licenseType"
	case SystemCRM:
		return "hubName"
	case SystemZOHO:
		return "role"
	}
	return ""
}

// Capacity total seats and card colour of one system.
type Capacity struct {
	Total int    `json:"total" yaml:"total"`
	Color string `json:"color" yaml:"color"`
}

// CapacityTable static capacity per system.
type CapacityTable map[System]Capacity

// DefaultCapacity mirrors the seat counts the dashboard was provisioned with.
func DefaultCapacity() CapacityTable {
	return CapacityTable{
		SystemDMS:  {Total: 100, Color: "#4F46E5"},
		SystemLSQ:  {Total: 75, Color: "#22C55E"},
		SystemCRM:  {Total: 50, Color: "#EF4444"},
		SystemZOHO: {Total: 120, Color: "#EAB308"},
	}
}
