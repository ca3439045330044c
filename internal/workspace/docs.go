package workspace

import "encoding/json"

// Board is the serialized content carried by board items.
type Board struct {
	Columns []Column `json:"columns" validate:"required,min=1,dive"`
}

// Column is one board lane.
type Column struct {
	ID    string `json:"id"`
	Title string `json:"title" validate:"required"`
	Cards []Card `json:"cards"`
	Order int    `json:"order"`
}

// Card is one board entry.
type Card struct {
	ID          string   `json:"id"`
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	Color       string   `json:"color"`
	Order       int      `json:"order"`
	Checklist   []string `json:"checklist,omitempty"`
}

// Sheet is the serialized content carried by sheet items.
type Sheet struct {
	Data       [][]Cell `json:"data" validate:"required,min=1"`
	FrozenRows int      `json:"frozenRows"`
}

// Cell is one sheet cell.
type Cell struct {
	Value string `json:"value"`
	Type  string `json:"type"`
}

// SkeletonBoard is the board substituted when generation fails: three
// fixed columns and a single seed card.
func SkeletonBoard(seedTitle string) Board {
	if seedTitle == "" {
		seedTitle = "Get started"
	}
	return Board{Columns: []Column{
		{ID: "col-1", Title: "To Do", Order: 0, Cards: []Card{
			{ID: "card-1", Title: seedTitle, Description: "First task for this board", Color: "blue", Order: 0},
		}},
		{ID: "col-2", Title: "In Progress", Order: 1, Cards: []Card{}},
		{ID: "col-3", Title: "Done", Order: 2, Cards: []Card{}},
	}}
}

// SkeletonSheet is the two-row table substituted when generation fails.
func SkeletonSheet(name string) Sheet {
	if name == "" {
		name = "Item"
	}
	return Sheet{
		FrozenRows: 1,
		Data: [][]Cell{
			{{Value: name, Type: "text"}, {Value: "Notes", Type: "text"}},
			{{Value: "", Type: "text"}, {Value: "", Type: "text"}},
		},
	}
}

// MarshalDoc serializes a board or sheet for item content.
func MarshalDoc(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(b)
}
