package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jgreyling/polsched/internal/model"
)

const testDoc = `POLICYHOLDER DETAILS
Policyholder: Acme Boerdery CC
POLICY DETAILS
Insurer: Example Insurer Ltd
Policy number: AB1234567
Type of policy: MONTHLY
PREMIUM SUMMARY
Fire Yes R 1 943.22
TOTAL R 1 993.22
FIRE SECTION
Effective Date 01 March 2025
Buildings as defined R 2 500 000.00 R 1 500.00
Main dwelling and outbuildings
`

func testConfig() *model.Config {
	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = false
	cfg.LLM.Provider = ""
	return cfg
}

func writeTestDoc(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write test doc: %v", err)
	}
	return path
}

func TestExtractFile(t *testing.T) {
	path := writeTestDoc(t, "schedule.txt", testDoc)
	p := NewPipeline(testConfig())

	result, err := p.ExtractFile(context.Background(), path)
	if err != nil {
		t.Fatalf("ExtractFile() error = %v", err)
	}

	record := result.Record
	if record.Policyholder.Name == nil || *record.Policyholder.Name != "Acme Boerdery CC" {
		t.Errorf("policyholder name = %v", record.Policyholder.Name)
	}
	if record.PolicyDetails.PolicyNumber == nil || *record.PolicyDetails.PolicyNumber != "AB1234567" {
		t.Errorf("policy number = %v", record.PolicyDetails.PolicyNumber)
	}
	if record.Metadata.SourceDocument != "schedule.txt" {
		t.Errorf("source_document = %q", record.Metadata.SourceDocument)
	}
	if len(record.Sections) != 1 || record.Sections[0].SectionType != model.SectionFire {
		t.Fatalf("sections = %+v", record.Sections)
	}
	if !result.Validation.Valid {
		t.Errorf("expected valid record, got errors %v", result.Validation.Errors)
	}
	if result.Summary != nil {
		t.Error("summary must be nil when no LLM provider is configured")
	}
}

func TestExtractFile_MissingFile(t *testing.T) {
	p := NewPipeline(testConfig())

	if _, err := p.ExtractFile(context.Background(), "/nonexistent/schedule.txt"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestExtractFile_ValidationSurfacesProblems(t *testing.T) {
	path := writeTestDoc(t, "sparse.txt", "nothing resembling a schedule\n")
	p := NewPipeline(testConfig())

	result, err := p.ExtractFile(context.Background(), path)
	if err != nil {
		t.Fatalf("ExtractFile() error = %v", err)
	}
	if result.Validation.Valid {
		t.Error("expected structural errors for an empty extraction")
	}
}

func TestRenderJSON_Pretty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	record := model.NewPolicyRecord("schedule.txt")

	if err := NewRenderer(true).RenderJSON(record, path); err != nil {
		t.Fatalf("RenderJSON() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(data), "\n  \"extraction_metadata\"") {
		t.Error("expected indented output")
	}

	var decoded model.PolicyRecord
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Metadata.SourceDocument != "schedule.txt" {
		t.Errorf("round-tripped source_document = %q", decoded.Metadata.SourceDocument)
	}
}

func TestRenderJSON_Compact(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	record := model.NewPolicyRecord("schedule.txt")

	if err := NewRenderer(false).RenderJSON(record, path); err != nil {
		t.Fatalf("RenderJSON() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if n := bytes.Count(data, []byte("\n")); n != 1 {
		t.Errorf("compact output should be a single line, got %d newlines", n)
	}
}

func TestWriteSummary(t *testing.T) {
	path := writeTestDoc(t, "schedule.txt", testDoc)
	p := NewPipeline(testConfig())

	result, err := p.ExtractFile(context.Background(), path)
	if err != nil {
		t.Fatalf("ExtractFile() error = %v", err)
	}

	var buf bytes.Buffer
	p.renderer.WriteSummary(&buf, result)
	out := buf.String()

	for _, want := range []string{
		"=== EXTRACTION SUMMARY ===",
		"Policy Number: AB1234567",
		"Policyholder: Acme Boerdery CC",
		"Sections Extracted: 1",
		"Total Premium: R 1993.22 MONTHLY",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}
