package usecase

import "github.com/The-Apinke/sumpro/internal/core/domain"

// modeDefinition pairs the retrieval queries that build a mode's context
// with the summary instruction sent ahead of that context.
type modeDefinition struct {
	queries  []string
	template string
}

var modeDefinitions = map[domain.ModeName]modeDefinition{
	domain.ModeProfessional: {
		queries: []string{
			"action items decisions",
			"attendees participants",
			"blockers issues",
			"next steps timeline",
			"key outcomes results",
		},
		template: `You are analyzing a work document. Provide a comprehensive summary that captures all important information someone would need if they missed this meeting or didn't read this document.

Start with a brief overview of what this document is about and why it exists.

Then cover what actually happened or was discussed. Be specific - use real names, actual numbers, exact dates, and concrete details. Don't just say "decisions were made" - explain what the decisions were and why they matter.

If there are action items, list each one with:
- Who is responsible (actual names)
- What they need to do (be specific)
- When it's due (actual dates or timeframes)
- Why it matters (context)

If there are open questions or blockers, explain what they are and why they're important.

End with what happens next - what are the immediate next steps, follow-up meetings, or deadlines people need to know about.

Write naturally and conversationally. This should read like a detailed briefing from a colleague who was there, not a form to fill out.`,
	},
	domain.ModeTech: {
		queries: []string{
			"core concepts definitions",
			"technical implementation details",
			"how it works architecture",
			"examples use cases",
			"methods algorithms",
		},
		template: `You are analyzing a technical document. Your goal is to help someone understand what this document is teaching, how things work, and what they can do with this knowledge.

Start by explaining what this document is about - what problem does it solve, what technology does it describe, or what concept does it teach?

Then dive into the substance. Explain the key technical concepts in detail:
- What are they and why do they matter?
- How do they actually work? (mechanisms, processes, flows)
- What are the important technical details someone needs to know?
- If there are algorithms or methods, explain what they do and when you'd use them

If the document covers implementation or architecture:
- Describe how things are structured or built
- Explain the technical decisions and tradeoffs
- Include specific technologies, frameworks, or tools mentioned

If there are examples or use cases, walk through them - they often contain the most valuable practical information.

End with practical takeaways: What can someone do with this information? When would they use this approach? What are the key things to remember?

Write like you're explaining this to a technically capable colleague. Be thorough but clear. Focus on understanding, not just listing facts.`,
	},
	domain.ModeDigest: {
		queries: []string{
			"main topic thesis argument",
			"key points findings",
			"important details facts",
			"conclusions implications",
			"examples evidence",
		},
		template: `You are analyzing a document and need to capture what really matters.

Start with the main point - what is this document actually about? What's the core message or main argument?

Then explain the key points in detail. Don't just list them - explain each one:
- What is the point?
- Why does it matter?
- What evidence or examples support it?
- How does it connect to the bigger picture?

Include specific details, numbers, names, or examples that make the content concrete and memorable. These details are often what makes something worth reading.

If the document has a conclusion or recommendations, explain them clearly.

End with why this matters - what should someone take away from this? How might it affect their thinking or actions?

Write conversationally and naturally. This should read like you're telling someone about something interesting you just read, not filling out a summary template.`,
	},
}
