package pipeline

// Phase prompt templates. Static, process-wide tables; never mutated
// after start.

const understandingPrompt = `You are profiling a person from a short description so a personal
workspace can be generated for them.

Description:
"""
%s
"""

Output: STRICT JSON ONLY, no prose, no markdown fences, schema:
{
  "identity": {"profession": "string", "niche": "string", "experience": "string", "personality": "string"},
  "goals": {"primary": "string", "secondary": "string", "success": "string"},
  "workflow": {"audience": "string", "process": "string", "tools": ["strings"]},
  "needs": {"explicit": ["what they asked for"], "implicit": ["what they likely need but didn't say"]},
  "tone": "one word, e.g. friendly|professional|playful|bold",
  "customRequests": ["anything specific they asked for verbatim"],
  "summary": "2-3 sentences describing who this is and what they need",
  "wallpaperQuery": "2-3 words describing an ideal background image mood"
}

Rules:
- Infer conservatively; if the description doesn't say, choose the most
  likely value for that kind of person.
- summary is required and must not be empty.`

const planningPrompt = `You are planning the contents of a personal workspace.

Profile (JSON):
%s

Original request:
"""
%s
"""

Available item types:
- note: a written page (about, services, ideas)
- case-study: an in-depth look at one piece of work
- folder: a named container for other items
- embed: a page around external media
- board: a kanban board (columns and cards)
- sheet: a spreadsheet (rows and columns)
- link: a pointer to an external URL (requires linkUrl)
- custom-app: a small interactive mini-app
- widget: a functional affordance; widgetType one of
  status|contact|book|links|tipjar|feedback

Output: STRICT JSON ONLY, no prose, no markdown fences, schema:
{
  "summary": "one sentence describing the workspace",
  "reasoning": "one sentence on why these items",
  "items": [
    {
      "type": "note",
      "widgetType": "only for type widget",
      "name": "string",
      "purpose": "string",
      "contentBrief": "one sentence brief for the content generator",
      "priority": 1,
      "linkUrl": "only for type link",
      "parentFolder": "name of a folder item defined earlier, optional"
    }
  ]
}

Rules:
- 5 to 9 items. Lower priority builds first.
- Include at least one board or sheet so the workspace feels structured.
- Include widgets matching the person's goals (booking, contact, links).
- Names must sound like this person wrote them, not like a template.`
