package hid

import "fmt"

// Status is the outcome of a table operation. Table operations never fail
// with errors at runtime; every outcome is a member of this closed set and
// the caller decides what to do with it.
type Status uint8

const (
	StatusGood Status = iota
	StatusBadHeader
	StatusBadLocation
	StatusBadPage
	StatusInUse
)

func (s Status) String() string {
	switch s {
	case StatusGood:
		return "good"
	case StatusBadHeader:
		return "bad header"
	case StatusBadLocation:
		return "bad location"
	case StatusBadPage:
		return "bad page"
	case StatusInUse:
		return "in use"
	}
	return fmt.Sprintf("status(%d)", uint8(s))
}
