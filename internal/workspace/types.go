// Package workspace defines the data model shared across the
// generation pipeline: the understanding profile, the plan, and the
// finished workspace items handed to the presentation layer.
package workspace

// ItemType is the closed set of plannable content types.
type ItemType string

const (
	TypeNote      ItemType = "note"
	TypeCaseStudy ItemType = "case-study"
	TypeFolder    ItemType = "folder"
	TypeEmbed     ItemType = "embed"
	TypeBoard     ItemType = "board"
	TypeSheet     ItemType = "sheet"
	TypeLink      ItemType = "link"
	TypeCustomApp ItemType = "custom-app"
	TypeWidget    ItemType = "widget"
)

// WidgetType is the closed set of functional widgets. Widgets carry no
// generated content body; the presentation layer implements them.
type WidgetType string

const (
	WidgetStatus   WidgetType = "status"
	WidgetContact  WidgetType = "contact"
	WidgetBook     WidgetType = "book"
	WidgetLinks    WidgetType = "links"
	WidgetTipJar   WidgetType = "tipjar"
	WidgetFeedback WidgetType = "feedback"
)

// Kind distinguishes content-bearing files from functional widgets.
type Kind string

const (
	KindFile   Kind = "file"
	KindWidget Kind = "widget"
)

// Identity describes who the user is.
type Identity struct {
	Profession  string `json:"profession"`
	Niche       string `json:"niche"`
	Experience  string `json:"experience"`
	Personality string `json:"personality"`
}

// Goals describes what the user wants out of the workspace.
type Goals struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Success   string `json:"success"`
}

// Workflow describes how the user works and for whom.
type Workflow struct {
	Audience string   `json:"audience"`
	Process  string   `json:"process"`
	Tools    []string `json:"tools"`
}

// Needs lists what the user asked for and what they likely need.
type Needs struct {
	Explicit []string `json:"explicit"`
	Implicit []string `json:"implicit"`
}

// Profile is the understanding extracted in Phase 1. It is produced
// once per request and never mutated afterward.
type Profile struct {
	Identity       Identity `json:"identity"`
	Goals          Goals    `json:"goals"`
	Workflow       Workflow `json:"workflow"`
	Needs          Needs    `json:"needs"`
	Tone           string   `json:"tone"`
	CustomRequests []string `json:"customRequests"`
	Summary        string   `json:"summary" validate:"required"`
	WallpaperQuery string   `json:"wallpaperQuery"`
}

// PlanItem is one intended workspace item. Priority sorts lower first.
type PlanItem struct {
	Type         ItemType   `json:"type" validate:"required,oneof=note case-study folder embed board sheet link custom-app widget"`
	WidgetType   WidgetType `json:"widgetType,omitempty" validate:"required_if=Type widget,omitempty,oneof=status contact book links tipjar feedback"`
	Name         string     `json:"name" validate:"required"`
	Purpose      string     `json:"purpose"`
	ContentBrief string     `json:"contentBrief"`
	Priority     int        `json:"priority"`
	LinkURL      string     `json:"linkUrl,omitempty" validate:"required_if=Type link,omitempty,url"`
	ParentFolder string     `json:"parentFolder,omitempty"`
}

// Plan is the ordered list of intended items plus a one-sentence summary.
type Plan struct {
	Summary   string     `json:"summary"`
	Reasoning string     `json:"reasoning"`
	Items     []PlanItem `json:"items" validate:"required,min=1,dive"`
}

// Item is a finished workspace item. Created exactly once, in priority
// order, and never mutated after creation.
type Item struct {
	ID           string     `json:"id"`
	Kind         Kind       `json:"kind"`
	FileType     ItemType   `json:"fileType,omitempty"`
	WidgetType   WidgetType `json:"widgetType,omitempty"`
	Title        string     `json:"title"`
	Content      string     `json:"content"`
	Purpose      string     `json:"purpose,omitempty"`
	LinkURL      string     `json:"linkUrl,omitempty"`
	ParentFolder string     `json:"parentFolder,omitempty"`
}
