package cli

import (
	"testing"

	"github.com/alexanderramin/wellow/internal/catalog"
	"github.com/alexanderramin/wellow/internal/domain"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumListValue_SetAndString(t *testing.T) {
	v := newEnumListValue(domain.ParsePriority, domain.Priorities())
	require.NoError(t, v.Set("high, Low"))
	require.NoError(t, v.Set("medium"))

	assert.Equal(t, "high, low, medium", v.String())
	assert.Equal(t, "list", v.Type())
	assert.True(t, v.set().Allows(domain.PriorityLow))
}

func TestEnumListValue_UnsetIsUnfiltered(t *testing.T) {
	v := newEnumListValue(domain.ParseCategory, domain.Categories())
	assert.Nil(t, v.set())

	var missing *enumListValue[domain.Category]
	assert.Nil(t, missing.set())
}

func TestEnumListValue_EmptyValueSelectsNothing(t *testing.T) {
	v := newEnumListValue(domain.ParseFocusArea, domain.FocusAreas())
	require.NoError(t, v.Set(""))

	s := v.set()
	require.NotNil(t, s)
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Allows(domain.FocusMultiple))
}

func TestEnumListValue_RejectsUnknown(t *testing.T) {
	v := newEnumListValue(domain.ParsePartnerType, domain.PartnerTypes())
	err := v.Set("school,museum")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownValue)
	assert.Contains(t, err.Error(), "association, community_center, social_enterprise, school, local_business")
}

func TestFilterFlags_CriteriaOnlyForRegisteredFlags(t *testing.T) {
	var flags filterFlags
	cmd := &cobra.Command{Use: "x"}
	flags.addPartnerType(cmd)
	flags.addFocusArea(cmd)
	require.NoError(t, cmd.Flags().Parse([]string{"--type", "school"}))

	c, err := flags.criteria(catalog.Default())
	require.NoError(t, err)
	assert.Nil(t, c.Categories)
	assert.Nil(t, c.Priorities)
	assert.Nil(t, c.Neighborhoods)
	assert.Nil(t, c.FocusAreas)
	assert.Equal(t, []domain.PartnerType{domain.PartnerSchool}, c.PartnerTypes.Values())
}

func TestResolveNeighborhoods(t *testing.T) {
	cat := catalog.Default()

	got, err := resolveNeighborhoods(cat, []string{"la noue", "SIGNAC"})
	require.NoError(t, err)
	assert.Equal(t, []string{"La Noue", "Signac"}, got)

	_, err = resolveNeighborhoods(cat, []string{"Paris"})
	assert.ErrorIs(t, err, domain.ErrUnknownValue)
}
