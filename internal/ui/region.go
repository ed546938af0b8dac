package ui

// Region is a part of the screen that can hold keyboard focus.
type Region int

const (
	RegionDocument Region = iota
	RegionComparison
)

func (r Region) String() string {
	switch r {
	case RegionDocument:
		return "Document"
	case RegionComparison:
		return "Comparison"
	default:
		return "Unknown"
	}
}
