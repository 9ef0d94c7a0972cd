package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/umputun/feedsense/pkg/domain"
)

// default system prompt for feedback categorization
const defaultSystemPrompt = `You are an AI assistant specialized in categorizing customer feedback.
Always answer with JSON only. Be concise and accurate. Confidence should reflect how certain you are about the categorization.`

// buildPrompt creates the prompt for a single feedback text
func buildPrompt(text string) string {
	var sb strings.Builder
	sb.WriteString("Analyze the following feedback text and categorize it into one of these categories:\n")
	writeCategories(&sb)
	sb.WriteString("\nFeedback text: ")
	sb.WriteString(quote(text))
	sb.WriteString("\n\n")
	sb.WriteString("Respond with a JSON object containing:\n")
	sb.WriteString("{\n")
	sb.WriteString(`  "category": "one of the categories above",` + "\n")
	sb.WriteString(`  "confidence": number between 0 and 1,` + "\n")
	sb.WriteString(`  "reasoning": "brief explanation of why this category was chosen"` + "\n")
	sb.WriteString("}")
	return sb.String()
}

// buildBatchPrompt creates the prompt for several feedback texts, numbered from 1
func buildBatchPrompt(texts []string) string {
	var sb strings.Builder
	sb.WriteString("Categorize each of the following customer feedback texts into one of these categories:\n")
	writeCategories(&sb)
	sb.WriteString("\nFeedback texts:\n")
	for i, text := range texts {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, quote(text)))
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Respond with a JSON array of exactly %d objects, one per feedback text in the same order. ", len(texts)))
	sb.WriteString("Each object must contain:\n")
	sb.WriteString(`  "index": the feedback number,` + "\n")
	sb.WriteString(`  "category": one of the categories above,` + "\n")
	sb.WriteString(`  "confidence": number between 0 and 1,` + "\n")
	sb.WriteString(`  "reasoning": brief explanation (max 100 chars)`)
	return sb.String()
}

func writeCategories(sb *strings.Builder) {
	for _, c := range domain.Categories {
		sb.WriteString(fmt.Sprintf("- %s: %s\n", c, c.Description()))
	}
}

// quote escapes text as a JSON string literal so it can't break out of the prompt structure
func quote(text string) string {
	b, err := json.Marshal(text)
	if err != nil {
		return `"` + text + `"`
	}
	return string(b)
}
