package models

// GenerateRequest is the user-facing input for one demo generation run.
type GenerateRequest struct {
	Goal            string `json:"goal" binding:"required"`
	RowCount        int    `json:"row_count"`
	TableCount      int    `json:"table_count"`
	PublicDatasetID string `json:"public_dataset_id,omitempty"`
}

// GenerateOptions is the subset of the request that history keeps alongside the goal.
type GenerateOptions struct {
	RowCount        int    `json:"row_count"`
	TableCount      int    `json:"table_count"`
	PublicDatasetID string `json:"public_dataset_id,omitempty"`
}

// ColumnSpec and TableSpec mirror the JSON shape the model is instructed to emit,
// so the tags below are part of the prompt contract (camelCase, csvData).
type ColumnSpec struct {
	Name        string `json:"name"`
	Type        string `json:"type"` // STRING, INTEGER, FLOAT, DATE
	Description string `json:"description"`
}

type TableSpec struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Schema      []ColumnSpec `json:"schema"`
	CSVData     string       `json:"csvData"`
}

// TablePreview is the first few parsed rows of one table, for display only.
type TablePreview struct {
	TableName string              `json:"table_name"`
	Headers   []string            `json:"headers"`
	Rows      []map[string]string `json:"rows"`
}

// PlanResult is the validated output of one planning call. Read-only once built.
type PlanResult struct {
	Tables            []TableSpec    `json:"tables"`
	SystemInstruction string         `json:"systemInstruction"`
	PublicDatasetID   string         `json:"publicDatasetId,omitempty"`
	DemoGuide         []string       `json:"demoGuide"`
	DataPreview       []TablePreview `json:"dataPreview,omitempty"`
}

const (
	StepRunning   = "running"
	StepCompleted = "completed"
	StepError     = "error"
)

type ProgressStep struct {
	Step    int    `json:"step"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// GenerationResult is the full outcome of one run. It is always well-formed:
// on failure Success is false, Error is set and the last step carries the message.
type GenerationResult struct {
	Success           bool           `json:"success"`
	Steps             []ProgressStep `json:"steps"`
	Error             string         `json:"error,omitempty"`
	DatasetID         string         `json:"dataset_id,omitempty"`
	Tables            []TableSpec    `json:"tables,omitempty"`
	DataPreview       []TablePreview `json:"data_preview,omitempty"`
	SystemInstruction string         `json:"system_instruction,omitempty"`
	DemoGuide         []string       `json:"demo_guide,omitempty"`
	PublicDatasetID   string         `json:"public_dataset_id,omitempty"`
	SetupScript       string         `json:"setup_script,omitempty"`
}

// HistoryEntry is one recorded run. The index persists it without Result;
// Get re-attaches Result from the chunked blob referenced by StorageID.
type HistoryEntry struct {
	Timestamp       string            `json:"timestamp"`
	UserGoal        string            `json:"user_goal"`
	Options         GenerateOptions   `json:"options"`
	DatasetID       string            `json:"dataset_id"`
	PublicDatasetID string            `json:"public_dataset_id,omitempty"`
	StorageID       string            `json:"storage_id"`
	Result          *GenerationResult `json:"result,omitempty"`
}
