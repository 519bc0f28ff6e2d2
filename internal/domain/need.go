package domain

import "time"

// Need is a community issue identified in a neighborhood.
type Need struct {
	ID             int
	Label          string
	Category       Category
	Priority       Priority
	Neighborhood   string
	IdentifiedDate time.Time
	ImpactScore    int
}

// IsHighPriority reports whether the need is flagged High.
func (n *Need) IsHighPriority() bool {
	return n.Priority == PriorityHigh
}
