package generator

import (
	"fmt"
	"strings"
)

// Prompt 表示发送给 LLM 的消息集合。
type Prompt struct {
	System string
	User   string
}

const blogPersona = "You are a lead full-stack developer writing for a technical blog that provides in-depth tutorials and insights for other developers. Output a single, clean JSON object and nothing else."

// BuildTitlePrompt asks for a fresh batch of title candidates within a
// subject domain, steering the model away from titles already published.
func BuildTitlePrompt(domain string, excluded []string) Prompt {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Propose 5 blog post titles about %q.\n", domain))
	sb.WriteString("Each title must be specific, practical, and appealing to working developers.\n")
	if len(excluded) > 0 {
		sb.WriteString("Do NOT reuse or closely paraphrase any of these already-published titles:\n")
		for _, t := range excluded {
			sb.WriteString(fmt.Sprintf("- %s\n", t))
		}
	}
	sb.WriteString("\nRespond with exactly this JSON shape:\n")
	sb.WriteString(`{"titles": ["title 1", "title 2", "title 3", "title 4", "title 5"]}` + "\n")
	sb.WriteString("All values must be strings. No markdown, no commentary.")

	return Prompt{System: blogPersona, User: sb.String()}
}

// BuildDraftPrompt asks for the full article for a fixed title. The title is
// decided by the caller; the model only fills in body and excerpt.
func BuildDraftPrompt(title string) Prompt {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Write a complete, high-quality, SEO-friendly blog post titled %q.\n", title))
	sb.WriteString("The post must be professional yet approachable, as if written by a seasoned developer.\n")
	sb.WriteString("Structure the content with clear <h2>/<h3> headings and valid HTML markup. ")
	sb.WriteString("The \"body\" must be a single string containing all HTML. Do not use Markdown outside the JSON object.\n\n")
	sb.WriteString("Respond with exactly this JSON shape:\n")
	sb.WriteString(`{"body": "<p>First paragraph...</p><h2>A sub-heading</h2><p>More content.</p>", "excerpt": "A short, 1-2 sentence summary of the post."}` + "\n")
	sb.WriteString("All values must be strings. No markdown, no commentary.")

	return Prompt{System: blogPersona, User: sb.String()}
}
