package intel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flux-imaging/prospect-cli/internal/model"
)

func TestLookupCompetitors(t *testing.T) {
	d := NewStaticDirectory()
	ctx := context.Background()

	tx, err := d.LookupCompetitors(ctx, "TX")
	require.NoError(t, err)
	require.Len(t, tx, 3)
	assert.Equal(t, "Austin Radiological Association", tx[0].Name)
	assert.Equal(t, sharedChallenges, tx[0].SharedChallenges)

	// state names map to their codes
	byName, err := d.LookupCompetitors(ctx, "texas")
	require.NoError(t, err)
	assert.Equal(t, tx, byName)

	// unrecognized regions fall back to the national entries
	generic, err := d.LookupCompetitors(ctx, "WY")
	require.NoError(t, err)
	require.Len(t, generic, 2)
	assert.Equal(t, "RadNet", generic[0].Name)

	none, err := d.LookupCompetitors(ctx, "")
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestExtractRegion(t *testing.T) {
	assert.Equal(t, "TX", ExtractRegion("Austin, TX", nil))
	assert.Equal(t, "CA", ExtractRegion("Los Angeles, CA 90001", nil))

	pages := []model.PageRecord{
		pageWithContent("https://example.com/about", "We are proudly based in Florida since 1998."),
	}
	assert.Equal(t, "Florida", ExtractRegion("", pages))

	assert.Equal(t, "", ExtractRegion("", nil))
}
