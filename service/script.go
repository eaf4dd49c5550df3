package service

import (
	"fmt"
	"strings"
	"text/template"

	"demoforge/models"
)

// ScriptParams is everything the setup script needs; rendering is a pure
// function of this record.
type ScriptParams struct {
	DatasetID         string
	PublicDatasetID   string
	SystemInstruction string
	Tables            []models.TableSpec
	DemoGuide         []string
	AgentRepoURL      string
	AgentRepoBranch   string
}

const setupScriptTemplate = `#!/bin/bash
#
# Demo environment setup for dataset {{ .DatasetID }}.
# Run this in Cloud Shell. It provisions the dataset, loads the generated
# data and configures the companion agent.
set -euo pipefail

PROJECT_ID=$(gcloud config get-value project 2>/dev/null)
if [ -z "${PROJECT_ID}" ]; then
  echo "ERROR: no default project configured. Run: gcloud config set project <PROJECT_ID>" >&2
  exit 1
fi

echo "[1/5] Enabling required APIs"
gcloud services enable bigquery.googleapis.com aiplatform.googleapis.com apikeys.googleapis.com

echo "[2/5] Creating dataset {{ .DatasetID }}"
bq mk --dataset "${PROJECT_ID}:{{ .DatasetID }}"
{{ range .Tables }}
echo "Loading table {{ .Name }}"
bq mk --table "${PROJECT_ID}:{{ $.DatasetID }}.{{ .Name }}" {{ schemaArg .Schema }}
cat > "/tmp/{{ .Name }}.csv" <<'{{ csvDelim .CSVData }}'
{{ csvBody .CSVData }}
{{ csvDelim .CSVData }}
bq load --source_format=CSV --skip_leading_rows=1 "${PROJECT_ID}:{{ $.DatasetID }}.{{ .Name }}" "/tmp/{{ .Name }}.csv"
{{ end }}
echo "[3/5] Cloning agent template"
git clone --branch {{ .AgentRepoBranch }} {{ .AgentRepoURL }} "{{ .DatasetID }}_agent"
cd "{{ .DatasetID }}_agent"

echo "[4/5] Writing agent configuration"
API_KEY=$(gcloud services api-keys create --display-name={{ shellQuote (printf "demoforge %s" .DatasetID) }} --format="value(response.keyString)" 2>/dev/null || true)
if [ -z "${API_KEY}" ]; then
  API_KEY="YOUR_API_KEY_HERE"
  echo "WARNING: could not mint an API key automatically; edit .env before launching." >&2
fi
cat > .env <<EOF
GOOGLE_CLOUD_PROJECT=${PROJECT_ID}
BQ_DATASET={{ .DatasetID }}
{{- if .PublicDatasetID }}
PUBLIC_DATASET={{ .PublicDatasetID }}
{{- end }}
GOOGLE_API_KEY=${API_KEY}
EOF
cat > system_instruction.txt <<'{{ csvDelim .SystemInstruction }}'
{{ csvBody .SystemInstruction }}
{{ csvDelim .SystemInstruction }}

echo "[5/5] Done"
echo "Launch the agent with: adk web"
echo "Suggested demo prompts:"
{{- range .DemoGuide }}
echo "  - "{{ shellQuote . }}
{{- end }}
`

var scriptTemplate = template.Must(template.New("setup").Funcs(template.FuncMap{
	"shellQuote": shellQuote,
	"schemaArg":  schemaArg,
	"csvBody":    csvBody,
	"csvDelim":   csvDelim,
}).Parse(setupScriptTemplate))

// RenderSetupScript expands the provisioning script for one plan.
func RenderSetupScript(p ScriptParams) (string, error) {
	var b strings.Builder
	if err := scriptTemplate.Execute(&b, p); err != nil {
		return "", fmt.Errorf("failed to render setup script: %w", err)
	}
	return b.String(), nil
}

// shellQuote wraps s in single quotes, escaping embedded single quotes the
// POSIX way ('\'').
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// schemaArg renders a bq schema argument: name:TYPE pairs joined by commas.
func schemaArg(schema []models.ColumnSpec) string {
	pairs := make([]string, 0, len(schema))
	for _, col := range schema {
		pairs = append(pairs, col.Name+":"+strings.ToUpper(col.Type))
	}
	return shellQuote(strings.Join(pairs, ","))
}

// csvBody trims the trailing newline so the heredoc delimiter lands on its
// own line without introducing an empty record.
func csvBody(s string) string {
	return strings.TrimRight(s, "\n")
}

// csvDelim picks a heredoc delimiter that cannot collide with a content line.
func csvDelim(content string) string {
	delim := "DEMOFORGE_EOF"
	for strings.Contains(content, delim) {
		delim += "_X"
	}
	return delim
}
