// Package stream defines the generation progress events and the
// transports that carry them to the caller.
package stream

import "homebase/internal/workspace"

// Event names, in the order a successful run emits them.
const (
	EventError          = "error"
	EventPhase          = "phase"
	EventThinking       = "thinking"
	EventUnderstanding  = "understanding"
	EventWallpaper      = "wallpaper"
	EventPromptKeywords = "prompt_keywords"
	EventPlan           = "plan"
	EventBuilding       = "building"
	EventCreated        = "created"
	EventComplete       = "complete"
)

// Event is one frame of the progress stream.
type Event struct {
	Name string
	Data any
}

type ErrorPayload struct {
	Message string `json:"message"`
}

type PhasePayload struct {
	Phase   string `json:"phase"`
	Message string `json:"message"`
}

type ThinkingPayload struct {
	Text  string `json:"text"`
	Phase string `json:"phase"`
}

type UnderstandingPayload struct {
	Summary  string             `json:"summary"`
	Identity workspace.Identity `json:"identity"`
	Goals    workspace.Goals    `json:"goals"`
	Tone     string             `json:"tone"`
}

type WallpaperPayload struct {
	URL string `json:"url"`
}

type PromptKeywordsPayload struct {
	Keywords       []string `json:"keywords"`
	Interpretation string   `json:"interpretation"`
}

// PlanItemSummary is the caller-facing view of one planned item.
type PlanItemSummary struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Purpose string `json:"purpose"`
}

type PlanPayload struct {
	Summary   string            `json:"summary"`
	Reasoning string            `json:"reasoning"`
	ItemCount int               `json:"itemCount"`
	Items     []PlanItemSummary `json:"items"`
}

type BuildingPayload struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Purpose string `json:"purpose"`
}

type CreatedPayload struct {
	Item      workspace.Item `json:"item"`
	Remaining int            `json:"remaining"`
}

type CompletePayload struct {
	Items         []workspace.Item  `json:"items"`
	Summary       string            `json:"summary"`
	Understanding workspace.Profile `json:"understanding"`
}

// Emitter delivers events to the caller. Emit returns an error when the
// caller is gone; the run stops at that point.
type Emitter interface {
	Emit(ev Event) error
}
