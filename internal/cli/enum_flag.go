package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/wellow/internal/catalog"
	"github.com/alexanderramin/wellow/internal/domain"
	"github.com/alexanderramin/wellow/internal/filter"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// enumListValue is a pflag.Value holding a comma-separated list of enum
// values. Repeating the flag appends. A flag given with an empty value
// selects nothing, which filters every record out.
type enumListValue[T ~string] struct {
	vals    []T
	parse   func(string) (T, error)
	valid   []T
	changed bool
}

var _ pflag.Value = (*enumListValue[domain.Category])(nil)

func newEnumListValue[T ~string](parse func(string) (T, error), valid []T) *enumListValue[T] {
	return &enumListValue[T]{parse: parse, valid: valid}
}

func (v *enumListValue[T]) Set(s string) error {
	if !v.changed {
		v.vals = []T{}
		v.changed = true
	}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		val, err := v.parse(part)
		if err != nil {
			return fmt.Errorf("%w (valid: %s)", err, joinSlugs(v.valid))
		}
		v.vals = append(v.vals, val)
	}
	return nil
}

func (v *enumListValue[T]) String() string {
	return joinSlugs(v.vals)
}

func (v *enumListValue[T]) Type() string {
	return "list"
}

// set converts the flag to a filter dimension. An unset or unregistered
// flag leaves the dimension unfiltered.
func (v *enumListValue[T]) set() *filter.Set[T] {
	if v == nil || !v.changed {
		return nil
	}
	return filter.NewSet(v.vals...)
}

func joinSlugs[T ~string](vals []T) string {
	return strings.Join(slugs(vals), ", ")
}

// filterFlags holds the filter flags a command registered. Dimensions that
// do not apply to a command stay nil.
type filterFlags struct {
	categories    *enumListValue[domain.Category]
	priorities    *enumListValue[domain.Priority]
	neighborhoods *enumListValue[string]
	partnerTypes  *enumListValue[domain.PartnerType]
	focusAreas    *enumListValue[domain.FocusArea]
}

func (f *filterFlags) addCategory(cmd *cobra.Command) {
	f.categories = newEnumListValue(domain.ParseCategory, domain.Categories())
	cmd.Flags().Var(f.categories, "category", "Categories to show (comma-separated)")
}

func (f *filterFlags) addPriority(cmd *cobra.Command) {
	f.priorities = newEnumListValue(domain.ParsePriority, domain.Priorities())
	cmd.Flags().Var(f.priorities, "priority", "Priorities to show (comma-separated)")
}

// addNeighborhood accepts any text at parse time; names are checked against
// the catalog in criteria, once the catalog is loaded.
func (f *filterFlags) addNeighborhood(cmd *cobra.Command) {
	f.neighborhoods = newEnumListValue(func(s string) (string, error) { return s, nil }, nil)
	cmd.Flags().Var(f.neighborhoods, "neighborhood", "Neighborhoods to show (comma-separated)")
}

func (f *filterFlags) addPartnerType(cmd *cobra.Command) {
	f.partnerTypes = newEnumListValue(domain.ParsePartnerType, domain.PartnerTypes())
	cmd.Flags().Var(f.partnerTypes, "type", "Partner types to show (comma-separated)")
}

func (f *filterFlags) addFocusArea(cmd *cobra.Command) {
	f.focusAreas = newEnumListValue(domain.ParseFocusArea, domain.FocusAreas())
	cmd.Flags().Var(f.focusAreas, "focus", "Partner focus areas to show (comma-separated)")
}

// criteria builds filter criteria from the parsed flags. Neighborhood names
// are matched case-insensitively and replaced by the catalog spelling.
func (f *filterFlags) criteria(cat *catalog.Catalog) (filter.Criteria, error) {
	c := filter.Criteria{
		Categories:   f.categories.set(),
		Priorities:   f.priorities.set(),
		PartnerTypes: f.partnerTypes.set(),
		FocusAreas:   f.focusAreas.set(),
	}
	if n := f.neighborhoods.set(); n != nil {
		names, err := resolveNeighborhoods(cat, n.Values())
		if err != nil {
			return filter.Criteria{}, err
		}
		c.Neighborhoods = filter.NewSet(names...)
	}
	return c, nil
}

func resolveNeighborhoods(cat *catalog.Catalog, input []string) ([]string, error) {
	out := make([]string, 0, len(input))
	for _, in := range input {
		found := ""
		for _, known := range cat.Neighborhoods {
			if strings.EqualFold(in, known) {
				found = known
				break
			}
		}
		if found == "" {
			return nil, fmt.Errorf("%w: neighborhood %q (valid: %s)",
				domain.ErrUnknownValue, in, strings.Join(cat.Neighborhoods, ", "))
		}
		out = append(out, found)
	}
	return out, nil
}
