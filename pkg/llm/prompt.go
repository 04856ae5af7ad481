package llm

import "fmt"

const promptTemplate = `Analyze the following article content and provide a JSON response:

%s

Return ONLY a valid JSON object with these exact keys:
- "summary": A concise, 3-sentence summary of the article
- "sentiment": Must be exactly one of: "POSITIVE", "NEGATIVE", or "NEUTRAL"

Example response format:
{"summary": "Brief summary here.", "sentiment": "POSITIVE"}`

// BuildPrompt embeds the cleaned article text into the fixed analysis
// instruction.
func BuildPrompt(articleContent string) string {
	return fmt.Sprintf(promptTemplate, articleContent)
}
