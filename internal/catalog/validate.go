package catalog

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/wellow/internal/domain"
)

// ErrInvalidCatalog wraps every catalog validation failure. An invalid
// catalog is a startup configuration error.
var ErrInvalidCatalog = errors.New("invalid catalog")

// Validate checks the catalog for problems and returns all of them.
func (c *Catalog) Validate() []error {
	var errs []error

	required := []struct {
		field  string
		values []string
	}{
		{"need_labels", c.NeedLabels},
		{"neighborhoods", c.Neighborhoods},
		{"partner_names", c.PartnerNames},
		{"streets", c.Streets},
		{"first_names", c.FirstNames},
		{"last_names", c.LastNames},
		{"months", c.Months},
	}
	for _, r := range required {
		if len(r.values) == 0 {
			errs = append(errs, fmt.Errorf("%s must not be empty", r.field))
			continue
		}
		errs = append(errs, validateEntries(r.field, r.values)...)
	}

	errs = append(errs, validateUnique("partner_names", c.PartnerNames)...)

	for _, cat := range domain.Categories() {
		phrases := c.ActivityPhrases[cat]
		field := "activity_phrases." + string(cat)
		if len(phrases) == 0 {
			errs = append(errs, fmt.Errorf("%s must not be empty", field))
			continue
		}
		errs = append(errs, validateEntries(field, phrases)...)
	}
	for cat := range c.ActivityPhrases {
		if !cat.Valid() {
			errs = append(errs, fmt.Errorf("activity_phrases: unknown category %q", string(cat)))
		}
	}

	if c.Centroid.Spread < 0 {
		errs = append(errs, fmt.Errorf("centroid.spread must be >= 0, got %g", c.Centroid.Spread))
	}
	if c.Centroid.Latitude < -90 || c.Centroid.Latitude > 90 {
		errs = append(errs, fmt.Errorf("centroid.latitude %g out of range", c.Centroid.Latitude))
	}
	if c.Centroid.Longitude < -180 || c.Centroid.Longitude > 180 {
		errs = append(errs, fmt.Errorf("centroid.longitude %g out of range", c.Centroid.Longitude))
	}

	return errs
}

// Check returns nil for a valid catalog, or ErrInvalidCatalog joined with
// every problem Validate found.
func (c *Catalog) Check() error {
	errs := c.Validate()
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidCatalog, errors.Join(errs...))
}

func validateEntries(field string, values []string) []error {
	var errs []error
	for i, v := range values {
		if v == "" {
			errs = append(errs, fmt.Errorf("%s[%d] is empty", field, i))
		}
	}
	return errs
}

func validateUnique(field string, values []string) []error {
	var errs []error
	seen := make(map[string]int, len(values))
	for i, v := range values {
		if first, ok := seen[v]; ok {
			errs = append(errs, fmt.Errorf("%s[%d] duplicates %s[%d] (%q)", field, i, field, first, v))
			continue
		}
		seen[v] = i
	}
	return errs
}
