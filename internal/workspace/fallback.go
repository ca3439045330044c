package workspace

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// professionRule maps a prompt keyword to a canned professional
// profile. Rules are checked in order; the first match wins.
type professionRule struct {
	keyword    string
	profession string
	niche      string
	folder     string
	service    string
	wallpaper  string
}

var professionRules = []professionRule{
	{"photograph", "Photographer", "photography", "Photo Gallery", "Photography Sessions", "art studio"},
	{"design", "Designer", "design", "Design Portfolio", "Design Services", "minimal clean"},
	{"develop", "Developer", "software development", "Projects", "Development Services", "tech code"},
	{"writ", "Writer", "writing", "Writing Samples", "Writing Services", "minimal calm"},
	{"learn", "Learner", "learning", "Study Materials", "Study Plan", "minimal calm"},
}

var genericRule = professionRule{
	profession: "Creative Professional",
	niche:      "creative work",
	folder:     "Portfolio",
	service:    "Services",
	wallpaper:  "minimal calm",
}

// nicheWords refine the folder name when they appear alongside a
// gallery-style profession (e.g. "wedding" + photographer).
var nicheWords = []string{"wedding", "portrait", "travel", "fashion", "food", "event", "brand"}

var (
	bookingWords = []string{"book", "appointment", "schedul", "calendar", "session"}
	contactWords = []string{"contact", "get in touch", "reach out", "email", "inquir"}
	linksWords   = []string{"link", "social", "instagram", "twitter", "youtube", "tiktok"}
	statusWords  = []string{"status", "availab", "open for"}
)

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

func detectProfession(lower string) (professionRule, string) {
	rule := genericRule
	for _, r := range professionRules {
		if strings.Contains(lower, r.keyword) {
			rule = r
			break
		}
	}
	for _, n := range nicheWords {
		if strings.Contains(lower, n) {
			return rule, n
		}
	}
	return rule, ""
}

func titleWord(w string) string {
	if w == "" {
		return ""
	}
	return strings.ToUpper(w[:1]) + w[1:]
}

// GenerateFallback builds a usable workspace without any AI call. It is
// a pure, total function: any prompt yields a populated item list.
func GenerateFallback(prompt string) []Item {
	lower := strings.ToLower(prompt)
	rule, niche := detectProfession(lower)

	folderName := rule.folder
	nicheLabel := rule.niche
	if niche != "" {
		folderName = titleWord(niche) + " Gallery"
		nicheLabel = niche + " " + rule.niche
	}

	newItem := func(t ItemType, title, purpose, content string) Item {
		return Item{
			ID:       uuid.NewString(),
			Kind:     KindFile,
			FileType: t,
			Title:    title,
			Purpose:  purpose,
			Content:  content,
		}
	}
	newWidget := func(w WidgetType, title, purpose string) Item {
		return Item{
			ID:         uuid.NewString(),
			Kind:       KindWidget,
			WidgetType: w,
			Title:      title,
			Purpose:    purpose,
		}
	}

	about := renderMarkdown(fmt.Sprintf(
		"# About\n\nHi, I'm a %s focused on %s.\n\nThis space collects my work, my services and the best ways to work with me.\n",
		strings.ToLower(rule.profession), nicheLabel))
	featured := renderMarkdown(fmt.Sprintf(
		"# Featured Project\n\nA closer look at a recent piece of %s I'm proud of.\n\n**The brief.** What the client needed and why it mattered.\n\n**The work.** How I approached it, from first conversation to delivery.\n\n**The result.** What changed for the client afterwards.\n",
		nicheLabel))
	services := renderMarkdown(fmt.Sprintf(
		"# %s\n\nHere's what I offer and how we can work together.\n\n- Initial consultation\n- %s tailored to your needs\n- Follow-up and delivery\n",
		rule.service, titleWord(nicheLabel)))

	board := SkeletonBoard("Plan the next project")

	items := []Item{
		newItem(TypeNote, "About", "Introduce who I am and what I do", about),
		newItem(TypeFolder, folderName, "Collect finished work in one place", ""),
		newItem(TypeCaseStudy, "Featured Project", "Showcase one piece of work in depth", featured),
		newItem(TypeNote, rule.service, "Explain offered services", services),
		newItem(TypeBoard, "Project Board", "Track ongoing work", MarshalDoc(board)),
	}
	items[2].ParentFolder = folderName

	booking := containsAny(lower, bookingWords)
	contact := containsAny(lower, contactWords)
	links := containsAny(lower, linksWords)
	status := containsAny(lower, statusWords)

	if status {
		items = append(items, newWidget(WidgetStatus, "Current Status", "Show whether I'm open for work"))
	}
	if booking {
		items = append(items, newWidget(WidgetBook, "Book a Call", "Let visitors schedule time with me"))
	}
	if contact || !booking {
		items = append(items, newWidget(WidgetContact, "Contact", "Give visitors a way to reach me"))
	}
	if links {
		items = append(items, newWidget(WidgetLinks, "My Links", "Point to my profiles elsewhere"))
	}
	return items
}

// FallbackProfile synthesizes the understanding profile for the
// deterministic path, so downstream phases and events keep their shape.
func FallbackProfile(prompt string) Profile {
	lower := strings.ToLower(prompt)
	rule, niche := detectProfession(lower)

	nicheLabel := rule.niche
	wallpaper := rule.wallpaper
	if niche != "" {
		nicheLabel = niche + " " + rule.niche
		wallpaper = niche
	}
	return Profile{
		Identity: Identity{
			Profession:  rule.profession,
			Niche:       nicheLabel,
			Experience:  "working professional",
			Personality: "friendly and straightforward",
		},
		Goals: Goals{
			Primary:   "present my work and services in one place",
			Secondary: "make it easy for people to get in touch",
			Success:   "visitors understand what I do and reach out",
		},
		Workflow: Workflow{
			Audience: "potential clients",
			Process:  "inquiry, conversation, delivery",
			Tools:    []string{},
		},
		Needs: Needs{
			Explicit: []string{"a place to show my work"},
			Implicit: []string{"a simple way to be contacted"},
		},
		Tone:           "friendly",
		CustomRequests: []string{},
		Summary: fmt.Sprintf("A %s focused on %s who needs a simple workspace to present work and be reachable.",
			strings.ToLower(rule.profession), nicheLabel),
		WallpaperQuery: wallpaper,
	}
}

// FallbackPlan projects the deterministic item list into a plan, used
// when AI planning returns unusable output but content generation can
// still run per item.
func FallbackPlan(prompt string) Plan {
	items := GenerateFallback(prompt)
	plan := Plan{
		Summary:   "A starter workspace with an about page, a work folder, a featured project and the essentials for getting in touch.",
		Reasoning: "Derived from keywords in the prompt without model assistance.",
	}
	for i, it := range items {
		pi := PlanItem{
			Name:         it.Title,
			Purpose:      it.Purpose,
			Priority:     i + 1,
			ParentFolder: it.ParentFolder,
		}
		if it.Kind == KindWidget {
			pi.Type = TypeWidget
			pi.WidgetType = it.WidgetType
		} else {
			pi.Type = it.FileType
		}
		plan.Items = append(plan.Items, pi)
	}
	return plan
}
