package rotation

import "sort"

// NextBeneficiary walks the rotation and returns the first active member not
// yet paid. Rotation order is ascending numeric member id, treated as a cycle.
// The walk starts at startID; if startID is not active, it starts at the
// smallest active id >= startID, wrapping to the smallest active id when none
// exists. If every active member has already been paid, startID is returned
// unchanged so the caller can detect an exhausted rotation and refuse to pay.
//
// Deterministic: for a fixed active set and paid set the result never varies.
func NextBeneficiary(activeIDs map[uint64]struct{}, paidIDs map[uint64]struct{}, startID uint64) uint64 {
	if len(activeIDs) == 0 {
		return startID
	}

	order := make([]uint64, 0, len(activeIDs))
	for id := range activeIDs {
		order = append(order, id)
	}
	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })

	// Position of the first active id >= startID, wrapping to 0.
	start := sort.Search(len(order), func(i int) bool { return order[i] >= startID })
	if start == len(order) {
		start = 0
	}

	for i := 0; i < len(order); i++ {
		id := order[(start+i)%len(order)]
		if _, paid := paidIDs[id]; !paid {
			return id
		}
	}
	return startID
}
