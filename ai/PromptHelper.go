package ai

import (
	"fmt"
	"strings"
)

// BuildDatasetPrompt constructs the planning instruction for one demo run.
// The output shape described here is a contract: the planner parses the reply
// against exactly these field names, and the repair step keys off csvData.
func BuildDatasetPrompt(goal string, rowCount int, tableCount int, publicDatasetID string) string {
	var promptBuilder strings.Builder
	promptBuilder.WriteString("You are a data engineer preparing a demo environment for a business scenario.\n")
	promptBuilder.WriteString("Design a small relational dataset and an AI agent configuration for the scenario below.\n\n")

	promptBuilder.WriteString("--- Business Scenario ---\n")
	promptBuilder.WriteString(goal)
	promptBuilder.WriteString("\n\n")

	promptBuilder.WriteString("Output Requirements:\n\n")
	promptBuilder.WriteString("Return a single JSON object with EXACTLY these top-level fields:\n")
	promptBuilder.WriteString("- \"tables\": an array of table definitions\n")
	promptBuilder.WriteString("- \"systemInstruction\": the system prompt for an AI agent that answers questions about this dataset\n")
	promptBuilder.WriteString("- \"publicDatasetId\": a public BigQuery dataset relevant to the scenario, or an empty string\n")
	promptBuilder.WriteString("- \"demoGuide\": an array of exactly 5 example questions a presenter can ask the agent\n\n")

	promptBuilder.WriteString("Each entry in \"tables\" must have:\n")
	promptBuilder.WriteString("- \"name\": a table name using only lowercase letters, digits and underscores\n")
	promptBuilder.WriteString("- \"description\": one sentence describing the table\n")
	promptBuilder.WriteString("- \"schema\": an array of {\"name\", \"type\", \"description\"} where type is one of STRING, INTEGER, FLOAT, DATE\n")
	promptBuilder.WriteString("- \"csvData\": the table contents as CSV text, a header line matching the schema column names followed by the data rows, rows separated by \\n\n\n")

	promptBuilder.WriteString("Constraints:\n")
	promptBuilder.WriteString(fmt.Sprintf("- Generate exactly %d tables.\n", tableCount))
	promptBuilder.WriteString(fmt.Sprintf("- Each table must have at most %d data rows.\n", rowCount))
	promptBuilder.WriteString("- Tables should share key columns so they can be joined in the demo.\n")
	promptBuilder.WriteString("- Values must be realistic for the scenario, not placeholders like foo or test.\n")
	promptBuilder.WriteString("- Write all descriptions, the system instruction and the demo guide in the same language as the business scenario above.\n")
	if publicDatasetID != "" {
		promptBuilder.WriteString(fmt.Sprintf("- Set \"publicDatasetId\" to %q and make the agent instruction mention it as supplementary data.\n", publicDatasetID))
	}
	promptBuilder.WriteString("\nReturn ONLY the JSON object. No markdown code blocks, no explanations, no additional text.")

	return promptBuilder.String()
}
