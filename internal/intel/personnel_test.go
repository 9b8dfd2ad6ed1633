package intel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flux-imaging/prospect-cli/internal/model"
)

const teamPageHTML = `<html><body>
<h2>Dr. Jane Smith</h2>
<p>Medical Director of Radiology</p>
<h3>Robert Chen</h3>
<p>Board-certified and fellowship trained</p>
<p>Chief Information Officer</p>
<h3>Welcome</h3>
<p>Meet the people behind our imaging services.</p>
</body></html>`

func TestFindKeyPersonnel(t *testing.T) {
	pages := []model.PageRecord{
		{URL: "https://example.com/our-team", HTML: teamPageHTML},
	}

	people := FindKeyPersonnel(pages)
	require.Len(t, people, 2)

	assert.Equal(t, "Dr. Jane Smith", people[0].Name)
	assert.Equal(t, "Medical Director of Radiology", people[0].Title)
	assert.Equal(t, "https://example.com/our-team", people[0].URL)

	// the title can be a couple of siblings away
	assert.Equal(t, "Robert Chen", people[1].Name)
	assert.Equal(t, "Chief Information Officer", people[1].Title)
}

func TestFindKeyPersonnelSkipsNonTeamPages(t *testing.T) {
	pages := []model.PageRecord{
		{URL: "https://example.com/services", HTML: teamPageHTML},
	}
	assert.Empty(t, FindKeyPersonnel(pages))
}
