package content

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homebase/internal/llmclient"
	"homebase/internal/workspace"
)

var testProfile = workspace.Profile{
	Identity: workspace.Identity{Profession: "Photographer", Niche: "weddings"},
	Tone:     "warm",
	Summary:  "A wedding photographer.",
}

func planItem(t workspace.ItemType, name string) workspace.PlanItem {
	return workspace.PlanItem{Type: t, Name: name, Purpose: "test purpose", ContentBrief: "test brief", Priority: 1}
}

func TestBuildEmptyTypes(t *testing.T) {
	gen := llmclient.NewFake("gen")
	b := NewBuilder(gen, nil)

	widget := planItem(workspace.TypeWidget, "Book a Call")
	widget.WidgetType = workspace.WidgetBook
	assert.Equal(t, "", b.Build(context.Background(), widget, testProfile))
	assert.Equal(t, "", b.Build(context.Background(), planItem(workspace.TypeFolder, "Gallery"), testProfile))
	assert.Equal(t, "", b.Build(context.Background(), planItem(workspace.TypeLink, "Instagram"), testProfile))
	// None of these types reach the model.
	assert.Equal(t, 0, gen.Calls())
}

func TestBuildBoardSuccess(t *testing.T) {
	boardJSON := `{"columns":[{"id":"","title":"Shoots","cards":[{"id":"","title":"Edit Sarah's gallery"}]}]}`
	gen := llmclient.NewFake("gen").Reply("```json\n" + boardJSON + "\n```")
	b := NewBuilder(gen, nil)

	out := b.Build(context.Background(), planItem(workspace.TypeBoard, "Shoot Tracker"), testProfile)
	var board workspace.Board
	require.NoError(t, json.Unmarshal([]byte(out), &board))
	require.Len(t, board.Columns, 1)
	assert.Equal(t, "col-1", board.Columns[0].ID)
	assert.Equal(t, "card-1-1", board.Columns[0].Cards[0].ID)
	assert.Equal(t, "blue", board.Columns[0].Cards[0].Color)
}

func TestBuildBoardFailureYieldsSkeleton(t *testing.T) {
	gen := llmclient.NewFake("gen").Fail(&llmclient.ProviderError{Provider: "gen", Detail: "down"})
	b := NewBuilder(gen, nil)

	out := b.Build(context.Background(), planItem(workspace.TypeBoard, "Shoot Tracker"), testProfile)
	var board workspace.Board
	require.NoError(t, json.Unmarshal([]byte(out), &board))
	require.Len(t, board.Columns, 3)
	assert.Equal(t, "To Do", board.Columns[0].Title)
	assert.Equal(t, "In Progress", board.Columns[1].Title)
	assert.Equal(t, "Done", board.Columns[2].Title)
	require.Len(t, board.Columns[0].Cards, 1)
}

func TestBuildBoardBadJSONYieldsSkeleton(t *testing.T) {
	gen := llmclient.NewFake("gen").Reply("sorry, I can't do structured output today")
	b := NewBuilder(gen, nil)

	out := b.Build(context.Background(), planItem(workspace.TypeBoard, "Tracker"), testProfile)
	var board workspace.Board
	require.NoError(t, json.Unmarshal([]byte(out), &board))
	assert.Len(t, board.Columns, 3)
}

func TestBuildSheetSuccess(t *testing.T) {
	sheetJSON := `{"data":[[{"value":"Client","type":"text"},{"value":"Fee","type":"weird"}]],"frozenRows":1}`
	gen := llmclient.NewFake("gen").Reply(sheetJSON)
	b := NewBuilder(gen, nil)

	out := b.Build(context.Background(), planItem(workspace.TypeSheet, "Clients"), testProfile)
	var sheet workspace.Sheet
	require.NoError(t, json.Unmarshal([]byte(out), &sheet))
	require.Len(t, sheet.Data, 1)
	// Unknown cell types collapse to text.
	assert.Equal(t, "text", sheet.Data[0][1].Type)
}

func TestBuildSheetFailureYieldsSkeleton(t *testing.T) {
	gen := llmclient.NewFake("gen").Fail(&llmclient.ProviderError{Provider: "gen", Detail: "down"})
	b := NewBuilder(gen, nil)

	out := b.Build(context.Background(), planItem(workspace.TypeSheet, "Clients"), testProfile)
	var sheet workspace.Sheet
	require.NoError(t, json.Unmarshal([]byte(out), &sheet))
	require.Len(t, sheet.Data, 2)
	assert.Equal(t, 1, sheet.FrozenRows)
	assert.Equal(t, "Clients", sheet.Data[0][0].Value)
}

func TestBuildCustomAppPostprocessing(t *testing.T) {
	raw := "```html\n<style>:root { --bg: red; }\n.app{color:var(--text)}</style>\n<div class=\"app\">hi</div>\n<script>console.log(\"hi\")\n```"
	gen := llmclient.NewFake("gen").Reply(raw)
	b := NewBuilder(gen, nil)

	out := b.Build(context.Background(), planItem(workspace.TypeCustomApp, "Mood Picker"), testProfile)
	assert.NotContains(t, out, "```")
	assert.NotContains(t, out, ":root")
	assert.Contains(t, out, "</script>")
}

func TestBuildCustomAppFailureYieldsPlaceholder(t *testing.T) {
	gen := llmclient.NewFake("gen").Fail(&llmclient.ProviderError{Provider: "gen", Detail: "down"})
	b := NewBuilder(gen, nil)

	out := b.Build(context.Background(), planItem(workspace.TypeCustomApp, "Mood Picker"), testProfile)
	assert.Contains(t, out, "Mood Picker")
	assert.Contains(t, out, "being set up")
}

func TestBuildProseStripsFences(t *testing.T) {
	gen := llmclient.NewFake("gen").Reply("```html\n<h1>About</h1>\n<p>I photograph weddings.</p>\n```")
	b := NewBuilder(gen, nil)

	out := b.Build(context.Background(), planItem(workspace.TypeNote, "About"), testProfile)
	assert.Equal(t, "<h1>About</h1>\n<p>I photograph weddings.</p>", out)
}

func TestBuildProseFailureYieldsSkeleton(t *testing.T) {
	gen := llmclient.NewFake("gen").Fail(&llmclient.ProviderError{Provider: "gen", Detail: "down"})
	b := NewBuilder(gen, nil)

	for _, typ := range []workspace.ItemType{workspace.TypeNote, workspace.TypeCaseStudy, workspace.TypeEmbed} {
		out := b.Build(context.Background(), planItem(typ, "My Page"), testProfile)
		assert.Contains(t, out, "My Page")
		assert.NotEmpty(t, out)
	}
}
