package domain

import (
	"fmt"
	"strings"
)

type Category string

const (
	CategoryEnvironment       Category = "environment"
	CategorySocialInclusion   Category = "social_inclusion"
	CategorySkillsDevelopment Category = "skills_development"
)

// Categories returns every category in catalog order. Needs cycle through
// this order by index.
func Categories() []Category {
	return []Category{CategoryEnvironment, CategorySocialInclusion, CategorySkillsDevelopment}
}

func (c Category) String() string {
	switch c {
	case CategoryEnvironment:
		return "Environment"
	case CategorySocialInclusion:
		return "Social Inclusion"
	case CategorySkillsDevelopment:
		return "Skills Development"
	default:
		return string(c)
	}
}

func (c Category) Valid() bool {
	switch c {
	case CategoryEnvironment, CategorySocialInclusion, CategorySkillsDevelopment:
		return true
	}
	return false
}

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

func Priorities() []Priority {
	return []Priority{PriorityHigh, PriorityMedium, PriorityLow}
}

func (p Priority) String() string {
	switch p {
	case PriorityHigh:
		return "High"
	case PriorityMedium:
		return "Medium"
	case PriorityLow:
		return "Low"
	default:
		return string(p)
	}
}

func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

type PartnerType string

const (
	PartnerAssociation      PartnerType = "association"
	PartnerCommunityCenter  PartnerType = "community_center"
	PartnerSocialEnterprise PartnerType = "social_enterprise"
	PartnerSchool           PartnerType = "school"
	PartnerLocalBusiness    PartnerType = "local_business"
)

func PartnerTypes() []PartnerType {
	return []PartnerType{
		PartnerAssociation,
		PartnerCommunityCenter,
		PartnerSocialEnterprise,
		PartnerSchool,
		PartnerLocalBusiness,
	}
}

func (t PartnerType) String() string {
	switch t {
	case PartnerAssociation:
		return "Association"
	case PartnerCommunityCenter:
		return "Community Center"
	case PartnerSocialEnterprise:
		return "Social Enterprise"
	case PartnerSchool:
		return "School"
	case PartnerLocalBusiness:
		return "Local Business"
	default:
		return string(t)
	}
}

func (t PartnerType) Valid() bool {
	switch t {
	case PartnerAssociation, PartnerCommunityCenter, PartnerSocialEnterprise,
		PartnerSchool, PartnerLocalBusiness:
		return true
	}
	return false
}

// FocusArea is the set of needs a partner can address. FocusMultiple is a
// wildcard that matches every category.
type FocusArea string

const (
	FocusEnvironment       FocusArea = "environment"
	FocusSocialInclusion   FocusArea = "social_inclusion"
	FocusSkillsDevelopment FocusArea = "skills_development"
	FocusMultiple          FocusArea = "multiple"
)

func FocusAreas() []FocusArea {
	return []FocusArea{FocusEnvironment, FocusSocialInclusion, FocusSkillsDevelopment, FocusMultiple}
}

func (f FocusArea) String() string {
	switch f {
	case FocusEnvironment:
		return "Environment"
	case FocusSocialInclusion:
		return "Social Inclusion"
	case FocusSkillsDevelopment:
		return "Skills Development"
	case FocusMultiple:
		return "Multiple"
	default:
		return string(f)
	}
}

func (f FocusArea) Valid() bool {
	switch f {
	case FocusEnvironment, FocusSocialInclusion, FocusSkillsDevelopment, FocusMultiple:
		return true
	}
	return false
}

// Covers reports whether a partner with this focus area can address a need
// in category c.
func (f FocusArea) Covers(c Category) bool {
	switch f {
	case FocusMultiple:
		return true
	case FocusEnvironment:
		return c == CategoryEnvironment
	case FocusSocialInclusion:
		return c == CategorySocialInclusion
	case FocusSkillsDevelopment:
		return c == CategorySkillsDevelopment
	}
	return false
}

// ParseCategory accepts either the stored slug ("social_inclusion") or the
// display name ("Social Inclusion"), case-insensitively.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories() {
		if matchesEnum(s, string(c), c.String()) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: category %q", ErrUnknownValue, s)
}

func ParsePriority(s string) (Priority, error) {
	for _, p := range Priorities() {
		if matchesEnum(s, string(p), p.String()) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: priority %q", ErrUnknownValue, s)
}

func ParsePartnerType(s string) (PartnerType, error) {
	for _, t := range PartnerTypes() {
		if matchesEnum(s, string(t), t.String()) {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: partner type %q", ErrUnknownValue, s)
}

func ParseFocusArea(s string) (FocusArea, error) {
	for _, f := range FocusAreas() {
		if matchesEnum(s, string(f), f.String()) {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: focus area %q", ErrUnknownValue, s)
}

func matchesEnum(input, slug, display string) bool {
	in := strings.TrimSpace(input)
	if strings.EqualFold(in, slug) || strings.EqualFold(in, display) {
		return true
	}
	// Allow "social-inclusion" as a shell-friendly spelling.
	return strings.EqualFold(strings.ReplaceAll(in, "-", "_"), slug)
}
