package service

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"demoforge/models"
	"demoforge/storage"
)

// Generator runs the whole pipeline for one request: plan, validate, assign a
// dataset id, render the setup script and record the run. It always returns a
// well-formed result; failures are folded into the last progress step.
type Generator struct {
	planner         *Planner
	history         *storage.HistoryStore
	agentRepoURL    string
	agentRepoBranch string
}

func NewGenerator(planner *Planner, history *storage.HistoryStore, agentRepoURL, agentRepoBranch string) *Generator {
	return &Generator{
		planner:         planner,
		history:         history,
		agentRepoURL:    agentRepoURL,
		agentRepoBranch: agentRepoBranch,
	}
}

func (g *Generator) Generate(ctx context.Context, req models.GenerateRequest) *models.GenerationResult {
	result := &models.GenerationResult{}

	start := func(msg string) {
		result.Steps = append(result.Steps, models.ProgressStep{
			Step:    len(result.Steps) + 1,
			Status:  models.StepRunning,
			Message: msg,
		})
	}
	complete := func() {
		result.Steps[len(result.Steps)-1].Status = models.StepCompleted
	}
	fail := func(err error) *models.GenerationResult {
		last := &result.Steps[len(result.Steps)-1]
		last.Status = models.StepError
		last.Message = err.Error()
		result.Error = err.Error()
		result.Success = false
		log.Printf("generation failed at step %d: %v", last.Step, err)
		return result
	}

	start("Planning dataset and agent configuration")
	plan, err := g.planner.Plan(ctx, req)
	if err != nil {
		return fail(err)
	}
	complete()

	start("Validating generated tables")
	if err := ValidatePlan(plan); err != nil {
		return fail(err)
	}
	complete()

	start("Assigning dataset identifier")
	datasetID := newDatasetID()
	complete()

	start("Rendering setup script")
	script, err := RenderSetupScript(ScriptParams{
		DatasetID:         datasetID,
		PublicDatasetID:   plan.PublicDatasetID,
		SystemInstruction: plan.SystemInstruction,
		Tables:            plan.Tables,
		DemoGuide:         plan.DemoGuide,
		AgentRepoURL:      g.agentRepoURL,
		AgentRepoBranch:   g.agentRepoBranch,
	})
	if err != nil {
		return fail(err)
	}
	complete()

	result.DatasetID = datasetID
	result.Tables = plan.Tables
	result.DataPreview = plan.DataPreview
	result.SystemInstruction = plan.SystemInstruction
	result.DemoGuide = plan.DemoGuide
	result.PublicDatasetID = plan.PublicDatasetID
	result.SetupScript = script
	result.Success = true

	// Mark the step before recording so the persisted payload (which embeds
	// this result) shows a finished run.
	start("Saving to history")
	complete()
	entry := models.HistoryEntry{
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		UserGoal:  req.Goal,
		Options: models.GenerateOptions{
			RowCount:        req.RowCount,
			TableCount:      req.TableCount,
			PublicDatasetID: req.PublicDatasetID,
		},
		DatasetID:       datasetID,
		PublicDatasetID: plan.PublicDatasetID,
		Result:          result,
	}
	if err := g.history.Record(entry); err != nil {
		// The demo itself succeeded; a history write failure should not
		// withhold the script from the user.
		log.Printf("failed to record history entry: %v", err)
		result.Steps[len(result.Steps)-1].Status = models.StepError
		result.Steps[len(result.Steps)-1].Message = "Saving to history failed: " + err.Error()
	}

	return result
}

func newDatasetID() string {
	return "demo_" + strings.ReplaceAll(uuid.New().String(), "-", "")[:12]
}
