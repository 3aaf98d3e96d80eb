package grok

import (
	"fmt"
	"strings"
)

// systemPrompts holds the fixed system instructions per operation type and
// language; English is the fallback for unlisted languages.
var systemPrompts = map[string]map[string]string{
	"en": {
		"enhance":      "You are a professional storytelling assistant. Enhance the provided chapter content while maintaining the original tone and style. Make it more engaging, descriptive, and well-structured. Keep the core story intact.",
		"integrate":    "You are a storytelling assistant. Seamlessly integrate the new thought or idea into the existing content. Make it flow naturally as if it was always part of the story.",
		"summarize":    "You are a professional summarizer. Create clear, engaging summaries that capture the essence and key points of the content.",
		"generate":     "You are a creative writing assistant. Generate engaging, well-structured chapter content based on the provided outline and context.",
		"book_summary": "You are a professional book summarizer. Create compelling summaries that would interest readers and provide clear progress updates.",
		"analyze":      "You are a professional writing coach. Provide constructive, specific feedback to help improve the writing quality and storytelling.",
	},
	"de": {
		"enhance":      "Du bist ein professioneller Geschichtenerzähler-Assistent. Verbessere den bereitgestellten Kapitelinhalt, während du den ursprünglichen Ton und Stil beibehältst. Mache ihn ansprechender, beschreibender und gut strukturiert.",
		"integrate":    "Du bist ein Geschichtenerzähler-Assistent. Integriere den neuen Gedanken oder die Idee nahtlos in den bestehenden Inhalt. Lass es natürlich fließen, als wäre es schon immer Teil der Geschichte gewesen.",
		"summarize":    "Du bist ein professioneller Zusammenfasser. Erstelle klare, ansprechende Zusammenfassungen, die das Wesentliche und die Kernpunkte des Inhalts erfassen.",
		"generate":     "Du bist ein kreativer Schreibassistent. Erstelle ansprechende, gut strukturierte Kapitelinhalte basierend auf der bereitgestellten Gliederung und dem Kontext.",
		"book_summary": "Du bist ein professioneller Buchzusammenfasser. Erstelle überzeugende Zusammenfassungen, die Leser interessieren und klare Fortschrittsupdates bieten.",
		"analyze":      "Du bist ein professioneller Schreibcoach. Gib konstruktives, spezifisches Feedback, um die Schreibqualität und das Geschichtenerzählen zu verbessern.",
	},
	"es": {
		"enhance":      "Eres un asistente profesional de narración. Mejora el contenido del capítulo proporcionado manteniendo el tono y estilo original. Hazlo más atractivo, descriptivo y bien estructurado.",
		"integrate":    "Eres un asistente de narración. Integra perfectamente el nuevo pensamiento o idea en el contenido existente. Haz que fluya naturalmente como si siempre hubiera sido parte de la historia.",
		"summarize":    "Eres un resumidor profesional. Crea resúmenes claros y atractivos que capturen la esencia y puntos clave del contenido.",
		"generate":     "Eres un asistente de escritura creativa. Genera contenido de capítulo atractivo y bien estructurado basado en el esquema y contexto proporcionados.",
		"book_summary": "Eres un resumidor profesional de libros. Crea resúmenes convincentes que interesen a los lectores y proporcionen actualizaciones claras del progreso.",
		"analyze":      "Eres un coach profesional de escritura. Proporciona retroalimentación constructiva y específica para ayudar a mejorar la calidad de escritura y narrativa.",
	},
}

func systemPrompt(opType, language string) string {
	if prompts, ok := systemPrompts[language]; ok {
		if p, ok := prompts[opType]; ok {
			return p
		}
	}
	return systemPrompts["en"][opType]
}

// chatSystemPrompt is the system instruction for the free-form chat endpoint.
func chatSystemPrompt(language string) string {
	switch language {
	case "de":
		return "Du bist Grok, ein hilfreicher KI-Assistent für kreatives Schreiben und Geschichtenerzählen. Antworte auf Deutsch."
	case "es":
		return "Eres Grok, un asistente de IA útil para escritura creativa y narración. Responde en español."
	default:
		return "You are Grok, a helpful AI assistant for creative writing and storytelling. Respond in English."
	}
}

func enhancementPrompt(title, content string, ctx EnhanceContext) string {
	var b strings.Builder
	b.WriteString("Please enhance this chapter content:\n\n")
	fmt.Fprintf(&b, "Chapter Title: %s\n", title)
	if ctx.BookTitle != "" {
		fmt.Fprintf(&b, "Book: %s\n", ctx.BookTitle)
	}
	if ctx.Genre != "" {
		fmt.Fprintf(&b, "Genre: %s\n", ctx.Genre)
	}

	b.WriteString("\nCurrent Content:\n")
	if strings.TrimSpace(content) == "" {
		b.WriteString("No content yet - please create engaging content based on the title.\n")
	} else {
		b.WriteString(content + "\n")
	}

	if ctx.PreviousChapter != "" {
		prev := ctx.PreviousChapter
		if len(prev) > 200 {
			prev = prev[:200]
		}
		fmt.Fprintf(&b, "\nPrevious Chapter Context: %s...\n", prev)
	}

	b.WriteString(`
Requirements:
- Keep the original story and characters intact
- Enhance descriptions and dialogue
- Improve pacing and flow
- Add sensory details where appropriate
- Maintain consistent tone
- Target 800-1200 words`)
	return b.String()
}

func integrationPrompt(currentContent, newThought, tone string) string {
	return fmt.Sprintf(`Please integrate this new thought into the existing content:

Existing Content:
%s

New Thought to Integrate:
%q

Requirements:
- Seamlessly blend the new thought into the story
- Maintain narrative flow
- Keep the %s tone
- Ensure logical placement
- Expand naturally around the new idea`, currentContent, newThought, tone)
}

var summaryLengthGuides = map[string]string{
	"short":  "1-2 sentences",
	"medium": "1 paragraph (3-4 sentences)",
	"long":   "2-3 paragraphs",
}

func summaryPrompt(content, length string) string {
	guide, ok := summaryLengthGuides[length]
	if !ok {
		guide = summaryLengthGuides["medium"]
	}
	return fmt.Sprintf(`Please create a %s summary of this content:

%s

Summary length: %s
Focus on key plot points, character development, and important themes.`, length, content, guide)
}

func generationPrompt(title, outline string, ctx GenerateContext) string {
	var b strings.Builder
	b.WriteString("Please write a complete chapter based on this outline:\n\n")
	fmt.Fprintf(&b, "Chapter Title: %s\n", title)
	if ctx.BookTitle != "" {
		fmt.Fprintf(&b, "Book: %s\n", ctx.BookTitle)
	}
	if ctx.Genre != "" {
		fmt.Fprintf(&b, "Genre: %s\n", ctx.Genre)
	}
	fmt.Fprintf(&b, "Writing Style: %s\n", ctx.Style)
	fmt.Fprintf(&b, "\nChapter Outline:\n%s\n", outline)
	b.WriteString(`
Requirements:
- Write a complete, engaging chapter (800-1200 words)
- Include dialogue and character development
- Create vivid descriptions and scenes
- Maintain consistent pacing
- End with a compelling transition or hook`)
	return b.String()
}

func bookSummaryPrompt(chapters []ChapterInput, info BookInfo) string {
	genre := info.Genre
	if genre == "" {
		genre = "Fiction"
	}

	parts := make([]string, 0, len(chapters))
	for _, ch := range chapters {
		content := ch.Content
		if strings.TrimSpace(content) == "" {
			content = "No content yet"
		}
		parts = append(parts, fmt.Sprintf("Chapter %d: %s\n%s", ch.Number, ch.Title, content))
	}

	return fmt.Sprintf(`Create a comprehensive summary of this book:

Book Title: %s
Genre: %s
Total Chapters: %d

Chapters:
%s

Please provide:
1. A compelling book summary (2-3 paragraphs)
2. Key themes and highlights
3. Progress overview
4. Next steps or recommendations`, info.Title, genre, len(chapters), strings.Join(parts, "\n\n"))
}

func analysisPrompt(content, focus string) string {
	return fmt.Sprintf(`Please analyze this writing and provide constructive feedback:

Content to analyze:
%s

Focus areas: %s

Please provide:
1. Overall assessment
2. Strengths
3. Areas for improvement
4. Specific suggestions
5. Style recommendations`, content, focus)
}

// extractSuggestions derives a short heuristic suggestion list from generated
// content. Deliberately crude; suggestions are opaque annotations.
func extractSuggestions(content string) []string {
	suggestions := []string{}
	if strings.Contains(content, "consider") {
		suggestions = append(suggestions, "Content includes suggestions for further development")
	}
	if len(content) < 500 {
		suggestions = append(suggestions, "Chapter could be expanded for better depth")
	}
	if !strings.Contains(content, `"`) && len(content) > 200 {
		suggestions = append(suggestions, "Consider adding dialogue to make the chapter more dynamic")
	}
	return suggestions
}
