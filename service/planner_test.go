package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"demoforge/models"
)

// fakeGenerator returns canned model output and records the prompt it saw.
type fakeGenerator struct {
	response string
	err      error
	prompts  []string
}

func (f *fakeGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

const planJSON = `{
  "tables": [
    {
      "name": "stations",
      "description": "Rental stations",
      "schema": [
        {"name": "station_id", "type": "INTEGER", "description": "id"},
        {"name": "city", "type": "STRING", "description": "city"}
      ],
      "csvData": "station_id,city\n1,\"Boston, MA\"\n2,Austin\n3,Denver\n4,Miami\n5,Seattle\n6,Portland\n7,Chicago\n"
    }
  ],
  "systemInstruction": "You are a bike rental analyst.",
  "publicDatasetId": "",
  "demoGuide": ["q1", "q2", "q3", "q4", "q5"]
}`

func TestPlanParsesModelOutput(t *testing.T) {
	gen := &fakeGenerator{response: planJSON}
	p := NewPlanner(gen)

	plan, err := p.Plan(context.Background(), models.GenerateRequest{
		Goal: "Bicycle rental demand forecasting", RowCount: 50, TableCount: 1,
	})
	require.NoError(t, err)
	require.Len(t, plan.Tables, 1)
	assert.Equal(t, "stations", plan.Tables[0].Name)
	assert.Equal(t, "You are a bike rental analyst.", plan.SystemInstruction)
	assert.Len(t, plan.DemoGuide, 5)
}

func TestPlanStripsCodeFences(t *testing.T) {
	gen := &fakeGenerator{response: "```json\n" + planJSON + "\n```"}
	p := NewPlanner(gen)

	plan, err := p.Plan(context.Background(), models.GenerateRequest{Goal: "bikes"})
	require.NoError(t, err)
	assert.Len(t, plan.Tables, 1)
}

func TestPlanRepairsTruncatedOutput(t *testing.T) {
	truncated := `{"tables": [{"name": "stations", "schema": [{"name": "id", "type": "INTEGER", "description": "id"}], "csvData": "id,city\n1,Boston\n2,Aus`
	gen := &fakeGenerator{response: truncated}
	p := NewPlanner(gen)

	plan, err := p.Plan(context.Background(), models.GenerateRequest{Goal: "bikes"})
	require.NoError(t, err)
	require.Len(t, plan.Tables, 1)
	assert.Equal(t, "id,city\n1,Boston", plan.Tables[0].CSVData)
}

func TestPlanPreviewCapsAtFiveRows(t *testing.T) {
	gen := &fakeGenerator{response: planJSON}
	p := NewPlanner(gen)

	plan, err := p.Plan(context.Background(), models.GenerateRequest{Goal: "bikes"})
	require.NoError(t, err)
	require.Len(t, plan.DataPreview, 1)

	preview := plan.DataPreview[0]
	assert.Equal(t, "stations", preview.TableName)
	assert.Equal(t, []string{"station_id", "city"}, preview.Headers)
	require.Len(t, preview.Rows, 5, "preview takes at most 5 data rows")
	assert.Equal(t, "Boston, MA", preview.Rows[0]["city"], "quoted comma preserved")
	assert.Equal(t, "1", preview.Rows[0]["station_id"])
}

func TestPlanClampsRowCountInPrompt(t *testing.T) {
	gen := &fakeGenerator{response: planJSON}
	p := NewPlanner(gen)

	_, err := p.Plan(context.Background(), models.GenerateRequest{Goal: "bikes", RowCount: 5000, TableCount: 3})
	require.NoError(t, err)
	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "at most 100 data rows")
	assert.Contains(t, gen.prompts[0], "exactly 3 tables")
}

func TestPlanSurfacesUpstreamError(t *testing.T) {
	upstream := errors.New("API error (status 429): RESOURCE_EXHAUSTED - quota exceeded")
	gen := &fakeGenerator{err: upstream}
	p := NewPlanner(gen)

	_, err := p.Plan(context.Background(), models.GenerateRequest{Goal: "bikes"})
	require.Error(t, err)
	assert.ErrorIs(t, err, upstream)
}

func TestPlanUnparseableOutput(t *testing.T) {
	gen := &fakeGenerator{response: "Sorry, I cannot help with that."}
	p := NewPlanner(gen)

	_, err := p.Plan(context.Background(), models.GenerateRequest{Goal: "bikes"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not interpret the model output")
}

func TestValidatePlan(t *testing.T) {
	t.Run("no tables", func(t *testing.T) {
		err := ValidatePlan(&models.PlanResult{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "No tables were generated")
	})

	t.Run("missing csvData names the table", func(t *testing.T) {
		plan := &models.PlanResult{Tables: []models.TableSpec{
			{Name: "stations", Schema: []models.ColumnSpec{{Name: "id", Type: "INTEGER"}}, CSVData: "id\n1\n"},
			{Name: "rentals", Schema: []models.ColumnSpec{{Name: "id", Type: "INTEGER"}}},
		}}
		err := ValidatePlan(plan)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Incomplete table data")
		assert.Contains(t, err.Error(), "rentals")
	})

	t.Run("missing schema names the table", func(t *testing.T) {
		plan := &models.PlanResult{Tables: []models.TableSpec{
			{Name: "stations", CSVData: "id\n1\n"},
		}}
		err := ValidatePlan(plan)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "stations")
	})

	t.Run("complete plan passes", func(t *testing.T) {
		plan := &models.PlanResult{Tables: []models.TableSpec{
			{Name: "stations", Schema: []models.ColumnSpec{{Name: "id", Type: "INTEGER"}}, CSVData: "id\n1\n"},
		}}
		assert.NoError(t, ValidatePlan(plan))
	})
}
