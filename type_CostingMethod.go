package cryptools

import "fmt"

// CostingMethod defines the inventory-costing rule used to pick which open
// lots a disposal depletes first.
type CostingMethod int

const (
	// LIFOByCreation depletes the most recently opened lot first.
	LIFOByCreation CostingMethod = iota + 1
	// LIFOByBasisDate depletes the lot with the latest basis date first.
	LIFOByBasisDate
	// FIFOByCreation depletes the earliest opened lot first.
	FIFOByCreation
	// FIFOByBasisDate depletes the lot with the earliest basis date first.
	FIFOByBasisDate
)

func (m CostingMethod) String() string {
	switch m {
	case LIFOByCreation:
		return "LIFO by lot creation order"
	case LIFOByBasisDate:
		return "LIFO by lot basis date"
	case FIFOByCreation:
		return "FIFO by lot creation order"
	case FIFOByBasisDate:
		return "FIFO by lot basis date"
	default:
		return "unknown"
	}
}

// ParseCostingMethod parses the numeric method selector (1 through 4) into a
// CostingMethod.
func ParseCostingMethod(s string) (CostingMethod, error) {
	switch s {
	case "1":
		return LIFOByCreation, nil
	case "2":
		return LIFOByBasisDate, nil
	case "3":
		return FIFOByCreation, nil
	case "4":
		return FIFOByBasisDate, nil
	default:
		return 0, fmt.Errorf("unknown costing method %q: want 1, 2, 3, or 4", s)
	}
}

// byBasisDate reports whether the method sorts lots by basis date rather than
// by creation order.
func (m CostingMethod) byBasisDate() bool {
	return m == LIFOByBasisDate || m == FIFOByBasisDate
}

// lifo reports whether the method depletes the latest-sorted lot first.
func (m CostingMethod) lifo() bool {
	return m == LIFOByCreation || m == LIFOByBasisDate
}
