package domain

// HighImpactThreshold is the minimum EstimatedImpact counted as high impact.
const HighImpactThreshold = 7

// Activity is a suggested pairing of one need with one eligible partner.
// The three scores are decorative and carry no information about how good
// the match is.
type Activity struct {
	NeedID           int
	PartnerID        int
	Need             string
	Category         Category
	PartnerName      string
	Description      string
	EstimatedImpact  int
	EstimatedEffort  int
	FeasibilityScore int
	Neighborhood     string
}

func (a *Activity) IsHighImpact() bool {
	return a.EstimatedImpact >= HighImpactThreshold
}

// Quadrant places an activity on the impact/effort matrix. Scores above 5
// count as high.
type Quadrant string

const (
	QuadrantQuickWin     Quadrant = "quick_win"
	QuadrantMajorProject Quadrant = "major_project"
	QuadrantFillIn       Quadrant = "fill_in"
	QuadrantAvoid        Quadrant = "avoid"
)

const quadrantSplit = 5

func Quadrants() []Quadrant {
	return []Quadrant{QuadrantQuickWin, QuadrantMajorProject, QuadrantFillIn, QuadrantAvoid}
}

func (q Quadrant) String() string {
	switch q {
	case QuadrantQuickWin:
		return "Quick win"
	case QuadrantMajorProject:
		return "Major project"
	case QuadrantFillIn:
		return "Fill-in"
	case QuadrantAvoid:
		return "Avoid"
	default:
		return string(q)
	}
}

func (a *Activity) Quadrant() Quadrant {
	highImpact := a.EstimatedImpact > quadrantSplit
	highEffort := a.EstimatedEffort > quadrantSplit
	switch {
	case highImpact && !highEffort:
		return QuadrantQuickWin
	case highImpact:
		return QuadrantMajorProject
	case !highEffort:
		return QuadrantFillIn
	default:
		return QuadrantAvoid
	}
}
