// Package content produces the final content payload for one planned
// item, branching by item type. Build never fails: every failure path
// resolves to a typed placeholder so one bad item cannot abort a batch.
package content

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"homebase/internal/jsonutil"
	"homebase/internal/workspace"
)

// Generator is the slice of the model gateway the builder needs.
type Generator interface {
	Generate(ctx context.Context, prompt string, maxTokens int) (string, error)
}

type Builder struct {
	gen      Generator
	log      *zap.Logger
	validate *validator.Validate
}

func NewBuilder(gen Generator, log *zap.Logger) *Builder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Builder{
		gen:      gen,
		log:      log,
		validate: validator.New(),
	}
}

// Build returns the content string for one planned item. Widgets,
// folders and links carry no generated body.
func (b *Builder) Build(ctx context.Context, item workspace.PlanItem, profile workspace.Profile) string {
	switch item.Type {
	case workspace.TypeWidget, workspace.TypeFolder, workspace.TypeLink:
		return ""
	case workspace.TypeBoard:
		return b.buildBoard(ctx, item, profile)
	case workspace.TypeSheet:
		return b.buildSheet(ctx, item, profile)
	case workspace.TypeCustomApp:
		return b.buildCustomApp(ctx, item, profile)
	default:
		return b.buildProse(ctx, item, profile)
	}
}

func (b *Builder) buildBoard(ctx context.Context, item workspace.PlanItem, p workspace.Profile) string {
	prompt := fmt.Sprintf(boardPrompt,
		p.Identity.Profession, p.Identity.Niche, p.Tone,
		item.Name, item.Purpose, item.ContentBrief)
	out, err := b.gen.Generate(ctx, prompt, 1500)
	if err != nil {
		return b.skeletonBoard(item, err)
	}
	var board workspace.Board
	if err := jsonutil.ExtractInto(out, &board); err != nil {
		return b.skeletonBoard(item, err)
	}
	if err := b.validate.Struct(board); err != nil {
		return b.skeletonBoard(item, err)
	}
	normalizeBoard(&board)
	return workspace.MarshalDoc(board)
}

func (b *Builder) skeletonBoard(item workspace.PlanItem, cause error) string {
	b.log.Warn("board generation failed, using skeleton",
		zap.String("item", item.Name), zap.Error(cause))
	return workspace.MarshalDoc(workspace.SkeletonBoard(item.Purpose))
}

func (b *Builder) buildSheet(ctx context.Context, item workspace.PlanItem, p workspace.Profile) string {
	prompt := fmt.Sprintf(sheetPrompt,
		p.Identity.Profession, p.Identity.Niche, p.Tone,
		item.Name, item.Purpose, item.ContentBrief)
	out, err := b.gen.Generate(ctx, prompt, 1000)
	if err != nil {
		return b.skeletonSheet(item, err)
	}
	var sheet workspace.Sheet
	if err := jsonutil.ExtractInto(out, &sheet); err != nil {
		return b.skeletonSheet(item, err)
	}
	if err := b.validate.Struct(sheet); err != nil {
		return b.skeletonSheet(item, err)
	}
	normalizeSheet(&sheet)
	return workspace.MarshalDoc(sheet)
}

func (b *Builder) skeletonSheet(item workspace.PlanItem, cause error) string {
	b.log.Warn("sheet generation failed, using skeleton",
		zap.String("item", item.Name), zap.Error(cause))
	return workspace.MarshalDoc(workspace.SkeletonSheet(item.Name))
}

func (b *Builder) buildCustomApp(ctx context.Context, item workspace.PlanItem, p workspace.Profile) string {
	prompt := fmt.Sprintf(customAppPrompt,
		p.Identity.Profession, p.Identity.Niche, p.Tone,
		item.Name, item.Purpose, item.ContentBrief)
	out, err := b.gen.Generate(ctx, prompt, 2500)
	if err != nil {
		b.log.Warn("custom-app generation failed, using placeholder",
			zap.String("item", item.Name), zap.Error(err))
		return placeholderApp(item.Name)
	}
	out = stripFences(out)
	out = stripRootVars(out)
	out = closeScript(out)
	return out
}

// word-count targets per prose type
var proseBands = map[workspace.ItemType][2]int{
	workspace.TypeNote:      {150, 250},
	workspace.TypeCaseStudy: {300, 450},
	workspace.TypeEmbed:     {100, 180},
}

func (b *Builder) buildProse(ctx context.Context, item workspace.PlanItem, p workspace.Profile) string {
	band, ok := proseBands[item.Type]
	if !ok {
		band = proseBands[workspace.TypeNote]
	}
	prompt := fmt.Sprintf(prosePrompt,
		p.Identity.Profession, p.Identity.Niche, p.Tone,
		item.Name, item.Purpose, item.ContentBrief, band[0], band[1])
	out, err := b.gen.Generate(ctx, prompt, 1200)
	if err != nil {
		b.log.Warn("prose generation failed, using skeleton",
			zap.String("item", item.Name), zap.Error(err))
		return fmt.Sprintf("<h1>%s</h1>\n<p>Content coming soon.</p>", item.Name)
	}
	return stripFences(out)
}

func placeholderApp(name string) string {
	return fmt.Sprintf(`<style>.app-pending{padding:24px;color:var(--muted);text-align:center}</style>
<div class="app-pending"><h2>%s</h2><p>This app is being set up. Check back soon.</p></div>`, name)
}

func normalizeBoard(board *workspace.Board) {
	for i := range board.Columns {
		col := &board.Columns[i]
		if col.ID == "" {
			col.ID = fmt.Sprintf("col-%d", i+1)
		}
		col.Order = i
		if col.Cards == nil {
			col.Cards = []workspace.Card{}
		}
		for j := range col.Cards {
			card := &col.Cards[j]
			if card.ID == "" {
				card.ID = fmt.Sprintf("card-%d-%d", i+1, j+1)
			}
			card.Order = j
			if card.Color == "" {
				card.Color = "blue"
			}
		}
	}
}

func normalizeSheet(sheet *workspace.Sheet) {
	for i := range sheet.Data {
		for j := range sheet.Data[i] {
			if sheet.Data[i][j].Type != "text" && sheet.Data[i][j].Type != "number" {
				sheet.Data[i][j].Type = "text"
			}
		}
	}
	if sheet.FrozenRows < 0 || sheet.FrozenRows > len(sheet.Data) {
		sheet.FrozenRows = 1
	}
}
