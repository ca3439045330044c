package workspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func widgetsOf(items []Item) []WidgetType {
	var out []WidgetType
	for _, it := range items {
		if it.Kind == KindWidget {
			out = append(out, it.WidgetType)
		}
	}
	return out
}

func TestFallbackWeddingPhotographer(t *testing.T) {
	items := GenerateFallback("wedding photographer showing recent shoots and galleries")

	var folder *Item
	for i := range items {
		if it := &items[i]; it.FileType == TypeFolder {
			folder = it
		}
	}
	require.NotNil(t, folder)
	assert.Equal(t, "Wedding Gallery", folder.Title)

	// No booking/contact/links/status keywords: the contact widget is
	// still appended because booking was not detected.
	assert.Equal(t, []WidgetType{WidgetContact}, widgetsOf(items))
}

func TestFallbackBookingIntentSkipsContact(t *testing.T) {
	items := GenerateFallback("portrait photographer who wants people to book sessions")
	assert.Equal(t, []WidgetType{WidgetBook}, widgetsOf(items))
}

func TestFallbackAllIntents(t *testing.T) {
	items := GenerateFallback("designer - show my status, book a call, contact me, links to my social profiles")
	assert.Equal(t,
		[]WidgetType{WidgetStatus, WidgetBook, WidgetContact, WidgetLinks},
		widgetsOf(items))
}

func TestFallbackBaseSequence(t *testing.T) {
	items := GenerateFallback("developer building side projects")
	require.GreaterOrEqual(t, len(items), 5)
	assert.Equal(t, TypeNote, items[0].FileType)
	assert.Equal(t, "About", items[0].Title)
	assert.Equal(t, TypeFolder, items[1].FileType)
	assert.Equal(t, TypeCaseStudy, items[2].FileType)
	assert.Equal(t, items[1].Title, items[2].ParentFolder)
	assert.Equal(t, TypeNote, items[3].FileType)
	assert.Equal(t, TypeBoard, items[4].FileType)

	for _, it := range items {
		assert.NotEmpty(t, it.ID)
		if it.Kind == KindWidget {
			assert.Empty(t, it.Content)
		}
	}
}

func TestFallbackGenericProfile(t *testing.T) {
	items := GenerateFallback("someone who makes interesting things sometimes")
	require.NotEmpty(t, items)
	assert.Equal(t, "Portfolio", items[1].Title)

	profile := FallbackProfile("someone who makes interesting things sometimes")
	assert.Equal(t, "Creative Professional", profile.Identity.Profession)
	assert.NotEmpty(t, profile.Summary)
	assert.NotEmpty(t, profile.WallpaperQuery)
}

func TestFallbackNoteContentIsHTML(t *testing.T) {
	items := GenerateFallback("wedding photographer")
	assert.Contains(t, items[0].Content, "<h1>")
	assert.Contains(t, items[0].Content, "photographer")
}

func TestFallbackPlanMirrorsItems(t *testing.T) {
	prompt := "writer who wants links to my social accounts"
	items := GenerateFallback(prompt)
	plan := FallbackPlan(prompt)
	require.Len(t, plan.Items, len(items))
	for i, pi := range plan.Items {
		assert.Equal(t, i+1, pi.Priority)
		assert.Equal(t, items[i].Title, pi.Name)
		if items[i].Kind == KindWidget {
			assert.Equal(t, TypeWidget, pi.Type)
			assert.Equal(t, items[i].WidgetType, pi.WidgetType)
		} else {
			assert.Equal(t, items[i].FileType, pi.Type)
		}
	}
	assert.NotEmpty(t, plan.Summary)
}
