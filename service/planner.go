package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"demoforge/ai"
	"demoforge/csvutil"
	"demoforge/models"
	"demoforge/repair"
)

const (
	maxRowCount       = 100
	defaultRowCount   = 20
	defaultTableCount = 2
	previewRowLimit   = 5
	logPayloadLimit   = 500
)

// TextGenerator is the slice of the AI client the planner depends on.
// ai.AIService satisfies it; tests supply canned responses.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// Planner turns a free-text goal into a validated dataset-and-agent plan.
type Planner struct {
	gen TextGenerator
}

func NewPlanner(gen TextGenerator) *Planner {
	return &Planner{gen: gen}
}

// Plan renders the structured instruction, invokes the model, repairs and
// parses the reply, and derives the tabular preview. It has no side effects
// beyond the network call.
func (p *Planner) Plan(ctx context.Context, req models.GenerateRequest) (*models.PlanResult, error) {
	rowCount := req.RowCount
	if rowCount <= 0 {
		rowCount = defaultRowCount
	}
	if rowCount > maxRowCount {
		rowCount = maxRowCount
	}
	tableCount := req.TableCount
	if tableCount <= 0 {
		tableCount = defaultTableCount
	}

	prompt := ai.BuildDatasetPrompt(req.Goal, rowCount, tableCount, req.PublicDatasetID)

	raw, err := p.gen.GenerateText(ctx, prompt)
	if err != nil {
		return nil, err
	}

	cleaned := stripCodeFences(raw)
	repaired := repair.Repair(cleaned)

	var plan models.PlanResult
	if err := json.Unmarshal([]byte(repaired), &plan); err != nil {
		log.Printf("unparseable model output (%v): %s", err, truncateForLog(repaired))
		return nil, fmt.Errorf("could not interpret the model output; try reducing the row or table count")
	}

	plan.DataPreview = buildPreview(plan.Tables)
	return &plan, nil
}

// ValidatePlan is the fail-fast gate the orchestrator runs before any script
// generation.
func ValidatePlan(plan *models.PlanResult) error {
	if plan == nil || len(plan.Tables) == 0 {
		return fmt.Errorf("No tables were generated; try describing the scenario differently")
	}
	for _, table := range plan.Tables {
		if len(table.Schema) == 0 || strings.TrimSpace(table.CSVData) == "" {
			return fmt.Errorf("Incomplete table data for table %q", table.Name)
		}
	}
	return nil
}

func stripCodeFences(s string) string {
	out := strings.TrimSpace(s)
	out = strings.TrimPrefix(out, "```json")
	out = strings.TrimPrefix(out, "```JSON")
	out = strings.TrimPrefix(out, "```")
	out = strings.TrimSuffix(out, "```")
	return strings.TrimSpace(out)
}

// buildPreview parses the first few CSV rows of every table into header->value
// maps for display. Line 0 is the header; at most previewRowLimit data rows
// follow.
func buildPreview(tables []models.TableSpec) []models.TablePreview {
	previews := make([]models.TablePreview, 0, len(tables))
	for _, table := range tables {
		lines := strings.Split(strings.TrimSpace(table.CSVData), "\n")
		if len(lines) == 0 || strings.TrimSpace(lines[0]) == "" {
			continue
		}
		headers := csvutil.ParseLine(lines[0])

		rows := []map[string]string{}
		for _, line := range lines[1:] {
			if len(rows) >= previewRowLimit {
				break
			}
			if strings.TrimSpace(line) == "" {
				continue
			}
			values := csvutil.ParseLine(line)
			row := map[string]string{}
			for i, header := range headers {
				if i < len(values) {
					row[header] = values[i]
				} else {
					row[header] = ""
				}
			}
			rows = append(rows, row)
		}

		previews = append(previews, models.TablePreview{
			TableName: table.Name,
			Headers:   headers,
			Rows:      rows,
		})
	}
	return previews
}

func truncateForLog(s string) string {
	if len(s) <= logPayloadLimit {
		return s
	}
	return s[:logPayloadLimit] + "..."
}
