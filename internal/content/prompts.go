package content

// Prompt templates for per-item content generation. Static,
// process-wide tables; never mutated after start.

const boardPrompt = `You are generating a kanban board for a personal workspace.

Owner: %s (%s), tone: %s.
Board name: %s
Purpose: %s
Brief: %s

Output: STRICT JSON ONLY, no prose, no markdown fences, schema:
{
  "columns": [
    {
      "id": "col-1",
      "title": "string",
      "order": 0,
      "cards": [
        {"id": "card-1", "title": "string", "description": "string", "color": "blue|green|yellow|red|purple", "order": 0, "checklist": ["optional strings"]}
      ]
    }
  ]
}

Rules:
- 3 to 4 columns that fit how this person actually works.
- 2 to 4 cards per column with concrete, specific titles.
- Keep descriptions to one sentence.`

const sheetPrompt = `You are generating a spreadsheet for a personal workspace.

Owner: %s (%s), tone: %s.
Sheet name: %s
Purpose: %s
Brief: %s

Output: STRICT JSON ONLY, no prose, no markdown fences, schema:
{
  "data": [[{"value": "string", "type": "text|number"}]],
  "frozenRows": 1
}

Rules:
- First row is a header row.
- 4 to 8 rows of realistic example data this person would track.
- 3 to 5 columns.`

const customAppPrompt = `You are building a small self-contained mini-app for a personal workspace window.

Owner: %s (%s), tone: %s.
App name: %s
Purpose: %s
Brief: %s

Output raw markup only: one <style> block, then HTML, then one <script> block.
No markdown fences. No external frameworks, fonts or network calls.

The host supplies these CSS variables; use them and do not redefine a
:root scope of your own:
  --bg, --surface, --text, --muted, --accent, --radius

Rules:
- Everything must work inside a single scrollable panel.
- Plain DOM APIs only in the script.
- Keep state in memory; no storage APIs.`

const prosePrompt = `You are writing content for a personal workspace page.

Write as the owner, in first person. Owner: %s (%s). Tone: %s.
Page: %s
Purpose: %s
Brief: %s

Output clean HTML only (h1/h2/p/ul/li/strong/em), no markdown fences,
no <html> or <body> wrapper. Aim for %d-%d words. Make it specific to
this person, not generic filler.`
