// Package pipeline drives one generation run through Understanding,
// Planning and Building, emitting progress events along the way.
package pipeline

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"homebase/internal/jsonutil"
	"homebase/internal/stream"
	"homebase/internal/wallpaper"
	"homebase/internal/workspace"
)

// minPromptLen is the shortest prompt worth running the pipeline on.
const minPromptLen = 10

// Generator is the slice of the model gateway the pipeline needs.
type Generator interface {
	Generate(ctx context.Context, prompt string, maxTokens int) (string, error)
}

// Builder produces the content payload for one planned item.
type Builder interface {
	Build(ctx context.Context, item workspace.PlanItem, profile workspace.Profile) string
}

type Pipeline struct {
	gen      Generator
	builder  Builder
	cache    *lru.Cache[string, workspace.Profile]
	validate *validator.Validate
	log      *zap.Logger
	pace     time.Duration
}

type Option func(*Pipeline)

// WithPace sets the artificial delay inserted around emitted events to
// keep the live stream legible. Zero disables pacing.
func WithPace(d time.Duration) Option {
	return func(p *Pipeline) { p.pace = d }
}

func WithLogger(log *zap.Logger) Option {
	return func(p *Pipeline) { p.log = log }
}

// WithCacheSize bounds the understanding-profile LRU.
func WithCacheSize(n int) Option {
	return func(p *Pipeline) {
		if n > 0 {
			p.cache, _ = lru.New[string, workspace.Profile](n)
		}
	}
}

func New(gen Generator, builder Builder, opts ...Option) *Pipeline {
	p := &Pipeline{
		gen:      gen,
		builder:  builder,
		validate: validator.New(),
		log:      zap.NewNop(),
	}
	p.cache, _ = lru.New[string, workspace.Profile](256)
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run executes one generation end to end. Every outcome except a gone
// caller ends in a terminal complete or error event; the returned error
// reports only emit failures.
func (p *Pipeline) Run(ctx context.Context, prompt string, em stream.Emitter) error {
	if len(strings.TrimSpace(prompt)) < minPromptLen {
		return em.Emit(stream.Event{Name: stream.EventError, Data: stream.ErrorPayload{
			Message: "Prompt too short",
		}})
	}

	if err := p.emitPhase(em, "understanding", "Getting to know you"); err != nil {
		return err
	}
	if err := p.emitThinking(ctx, em, "understanding", "Reading your description..."); err != nil {
		return err
	}

	profile, ok := p.understand(ctx, prompt)
	if !ok {
		// AI understanding is unavailable; the deterministic generator
		// still produces a usable workspace.
		return p.runFallback(ctx, prompt, em)
	}

	if err := p.emitUnderstood(ctx, em, profile); err != nil {
		return err
	}

	if err := p.emitPhase(em, "planning", "Deciding what to build"); err != nil {
		return err
	}
	if err := p.emitThinking(ctx, em, "planning", "Sketching a layout that fits your goals..."); err != nil {
		return err
	}

	plan := p.plan(ctx, prompt, profile)
	if err := p.emitPlan(em, plan); err != nil {
		return err
	}

	items, err := p.build(ctx, em, plan, profile)
	if err != nil {
		return err
	}

	return em.Emit(stream.Event{Name: stream.EventComplete, Data: stream.CompletePayload{
		Items:         items,
		Summary:       plan.Summary,
		Understanding: profile,
	}})
}

// understand runs Phase 1. The second return is false when no usable
// profile could be produced via AI.
func (p *Pipeline) understand(ctx context.Context, prompt string) (workspace.Profile, bool) {
	key := cacheKey(prompt)
	if cached, hit := p.cache.Get(key); hit {
		p.log.Debug("understanding cache hit")
		return cached, true
	}

	out, err := p.gen.Generate(ctx, fmt.Sprintf(understandingPrompt, prompt), 1200)
	if err != nil {
		p.log.Warn("understanding generation failed", zap.Error(err))
		return workspace.Profile{}, false
	}
	var profile workspace.Profile
	if err := jsonutil.ExtractInto(out, &profile); err != nil {
		p.log.Warn("understanding extraction failed", zap.Error(err))
		return workspace.Profile{}, false
	}
	if err := p.validate.Struct(profile); err != nil {
		p.log.Warn("understanding validation failed", zap.Error(err))
		return workspace.Profile{}, false
	}
	fillProfileDefaults(&profile)
	p.cache.Add(key, profile)
	return profile, true
}

// plan runs Phase 2. Any failure degrades to the deterministic plan;
// content generation for each item still goes through the model.
func (p *Pipeline) plan(ctx context.Context, prompt string, profile workspace.Profile) workspace.Plan {
	profileJSON, _ := jsonutil.MarshalNoEscape(profile)
	out, err := p.gen.Generate(ctx, fmt.Sprintf(planningPrompt, profileJSON, prompt), 1800)
	if err != nil {
		p.log.Warn("planning generation failed, using fallback plan", zap.Error(err))
		return workspace.FallbackPlan(prompt)
	}
	var plan workspace.Plan
	if err := jsonutil.ExtractInto(out, &plan); err != nil {
		p.log.Warn("planning extraction failed, using fallback plan", zap.Error(err))
		return workspace.FallbackPlan(prompt)
	}
	plan.Items = p.validItems(plan.Items)
	if len(plan.Items) == 0 {
		p.log.Warn("planning returned no valid items, using fallback plan")
		return workspace.FallbackPlan(prompt)
	}
	if strings.TrimSpace(plan.Summary) == "" {
		plan.Summary = "A personal workspace built around your goals."
	}
	return plan
}

// validItems drops plan entries that fail schema validation rather than
// propagating malformed structures downstream.
func (p *Pipeline) validItems(items []workspace.PlanItem) []workspace.PlanItem {
	out := items[:0]
	for _, it := range items {
		if err := p.validate.Struct(it); err != nil {
			p.log.Warn("dropping invalid plan item", zap.String("name", it.Name), zap.Error(err))
			continue
		}
		out = append(out, it)
	}
	return out
}

// build runs Phase 3: items are built strictly one at a time, in
// non-decreasing priority order, and no item failure stops the loop.
func (p *Pipeline) build(ctx context.Context, em stream.Emitter, plan workspace.Plan, profile workspace.Profile) ([]workspace.Item, error) {
	if err := p.emitPhase(em, "building", "Building your workspace"); err != nil {
		return nil, err
	}

	sorted := append([]workspace.PlanItem(nil), plan.Items...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Priority < sorted[j].Priority })

	items := make([]workspace.Item, 0, len(sorted))
	for i, pi := range sorted {
		if err := p.emitThinking(ctx, em, "building", buildNarration(pi)); err != nil {
			return nil, err
		}
		if err := em.Emit(stream.Event{Name: stream.EventBuilding, Data: stream.BuildingPayload{
			Name: pi.Name, Type: string(pi.Type), Purpose: pi.Purpose,
		}}); err != nil {
			return nil, err
		}

		item := workspace.Item{
			ID:           uuid.NewString(),
			Title:        pi.Name,
			Purpose:      pi.Purpose,
			LinkURL:      pi.LinkURL,
			ParentFolder: pi.ParentFolder,
			Content:      p.builder.Build(ctx, pi, profile),
		}
		if pi.Type == workspace.TypeWidget {
			item.Kind = workspace.KindWidget
			item.WidgetType = pi.WidgetType
		} else {
			item.Kind = workspace.KindFile
			item.FileType = pi.Type
		}
		items = append(items, item)

		if err := em.Emit(stream.Event{Name: stream.EventCreated, Data: stream.CreatedPayload{
			Item:      item,
			Remaining: len(sorted) - i - 1,
		}}); err != nil {
			return nil, err
		}
	}
	return items, nil
}

// runFallback emits the full degraded-but-successful sequence from the
// deterministic generator. Same event order as a normal run.
func (p *Pipeline) runFallback(ctx context.Context, prompt string, em stream.Emitter) error {
	profile := workspace.FallbackProfile(prompt)
	plan := workspace.FallbackPlan(prompt)
	built := workspace.GenerateFallback(prompt)

	if err := p.emitUnderstood(ctx, em, profile); err != nil {
		return err
	}
	if err := p.emitPhase(em, "planning", "Deciding what to build"); err != nil {
		return err
	}
	if err := p.emitThinking(ctx, em, "planning", "Putting together a dependable starter layout..."); err != nil {
		return err
	}
	if err := p.emitPlan(em, plan); err != nil {
		return err
	}
	if err := p.emitPhase(em, "building", "Building your workspace"); err != nil {
		return err
	}
	for i, item := range built {
		pi := plan.Items[i]
		if err := p.emitThinking(ctx, em, "building", buildNarration(pi)); err != nil {
			return err
		}
		if err := em.Emit(stream.Event{Name: stream.EventBuilding, Data: stream.BuildingPayload{
			Name: pi.Name, Type: string(pi.Type), Purpose: pi.Purpose,
		}}); err != nil {
			return err
		}
		if err := em.Emit(stream.Event{Name: stream.EventCreated, Data: stream.CreatedPayload{
			Item:      item,
			Remaining: len(built) - i - 1,
		}}); err != nil {
			return err
		}
	}
	return em.Emit(stream.Event{Name: stream.EventComplete, Data: stream.CompletePayload{
		Items:         built,
		Summary:       plan.Summary,
		Understanding: profile,
	}})
}

func (p *Pipeline) emitPhase(em stream.Emitter, phase, message string) error {
	return em.Emit(stream.Event{Name: stream.EventPhase, Data: stream.PhasePayload{
		Phase: phase, Message: message,
	}})
}

func (p *Pipeline) emitThinking(ctx context.Context, em stream.Emitter, phase, text string) error {
	if err := em.Emit(stream.Event{Name: stream.EventThinking, Data: stream.ThinkingPayload{
		Text: text, Phase: phase,
	}}); err != nil {
		return err
	}
	return p.sleep(ctx)
}

// emitUnderstood sends the understanding, wallpaper and prompt_keywords
// events that close Phase 1.
func (p *Pipeline) emitUnderstood(ctx context.Context, em stream.Emitter, profile workspace.Profile) error {
	if err := em.Emit(stream.Event{Name: stream.EventUnderstanding, Data: stream.UnderstandingPayload{
		Summary:  profile.Summary,
		Identity: profile.Identity,
		Goals:    profile.Goals,
		Tone:     profile.Tone,
	}}); err != nil {
		return err
	}
	if err := em.Emit(stream.Event{Name: stream.EventWallpaper, Data: stream.WallpaperPayload{
		URL: wallpaper.Match(profile.WallpaperQuery),
	}}); err != nil {
		return err
	}
	if err := em.Emit(stream.Event{Name: stream.EventPromptKeywords, Data: stream.PromptKeywordsPayload{
		Keywords:       profileKeywords(profile),
		Interpretation: profile.Summary,
	}}); err != nil {
		return err
	}
	return p.sleep(ctx)
}

func (p *Pipeline) emitPlan(em stream.Emitter, plan workspace.Plan) error {
	summaries := make([]stream.PlanItemSummary, 0, len(plan.Items))
	for _, it := range plan.Items {
		summaries = append(summaries, stream.PlanItemSummary{
			Name: it.Name, Type: string(it.Type), Purpose: it.Purpose,
		})
	}
	return em.Emit(stream.Event{Name: stream.EventPlan, Data: stream.PlanPayload{
		Summary:   plan.Summary,
		Reasoning: plan.Reasoning,
		ItemCount: len(plan.Items),
		Items:     summaries,
	}})
}

// sleep applies the pacing delay, stopping early if the caller is gone.
func (p *Pipeline) sleep(ctx context.Context) error {
	if p.pace <= 0 {
		return nil
	}
	t := time.NewTimer(p.pace)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func cacheKey(prompt string) string {
	return strings.Join(strings.Fields(strings.ToLower(prompt)), " ")
}

func fillProfileDefaults(profile *workspace.Profile) {
	if strings.TrimSpace(profile.Tone) == "" {
		profile.Tone = "friendly"
	}
	if strings.TrimSpace(profile.WallpaperQuery) == "" {
		if profile.Identity.Niche != "" {
			profile.WallpaperQuery = profile.Identity.Niche
		} else {
			profile.WallpaperQuery = "minimal calm"
		}
	}
	if strings.TrimSpace(profile.Identity.Profession) == "" {
		profile.Identity.Profession = "Creative Professional"
	}
}

func profileKeywords(profile workspace.Profile) []string {
	seen := map[string]bool{}
	var out []string
	add := func(s string) {
		for _, w := range strings.Fields(strings.ToLower(s)) {
			if len(w) > 2 && !seen[w] {
				seen[w] = true
				out = append(out, w)
			}
		}
	}
	add(profile.Identity.Profession)
	add(profile.Identity.Niche)
	add(profile.WallpaperQuery)
	if out == nil {
		out = []string{}
	}
	return out
}

func buildNarration(pi workspace.PlanItem) string {
	switch pi.Type {
	case workspace.TypeWidget:
		return fmt.Sprintf("Adding a %s widget: %s", pi.WidgetType, pi.Name)
	case workspace.TypeBoard:
		return fmt.Sprintf("Laying out the %q board", pi.Name)
	case workspace.TypeSheet:
		return fmt.Sprintf("Filling in the %q sheet", pi.Name)
	case workspace.TypeFolder:
		return fmt.Sprintf("Creating the %q folder", pi.Name)
	case workspace.TypeCustomApp:
		return fmt.Sprintf("Building the %q mini-app", pi.Name)
	default:
		return fmt.Sprintf("Writing %q", pi.Name)
	}
}
