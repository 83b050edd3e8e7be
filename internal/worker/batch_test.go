package worker

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/jgreyling/polsched/internal/model"
	"github.com/jgreyling/polsched/internal/pipeline"
)

// MockExtractor implements Extractor
type MockExtractor struct {
	ShouldError bool
}

func (m *MockExtractor) ExtractFile(ctx context.Context, path string) (*pipeline.Result, error) {
	time.Sleep(10 * time.Millisecond) // Simulate work
	if m.ShouldError {
		return nil, errors.New("extract error")
	}
	return &pipeline.Result{
		Record:     model.NewPolicyRecord(filepath.Base(path)),
		SourcePath: path,
	}, nil
}

func TestBatchProcessor_ProcessPaths(t *testing.T) {
	extractor := &MockExtractor{}
	processor := NewBatchProcessor(extractor, 2)

	paths := []string{"a.pdf", "b.pdf", "c.txt"}
	ctx := context.Background()

	results := processor.ProcessPaths(ctx, paths)

	if len(results) != 3 {
		t.Errorf("expected 3 results, got %d", len(results))
	}

	successCount := 0
	for _, res := range results {
		if res.Error == nil {
			successCount++
			if res.Result == nil || res.Result.Record == nil {
				t.Error("expected record for successful extraction")
			}
		} else {
			t.Errorf("unexpected error for %s: %v", res.Path, res.Error)
		}
	}

	if successCount != 3 {
		t.Errorf("expected 3 successes, got %d", successCount)
	}
}

func TestBatchProcessor_ProcessPaths_Error(t *testing.T) {
	extractor := &MockExtractor{ShouldError: true}
	processor := NewBatchProcessor(extractor, 2)

	results := processor.ProcessPaths(context.Background(), []string{"a.pdf"})

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}

	if results[0].Error == nil {
		t.Error("expected error, got nil")
	}
	if results[0].Result != nil {
		t.Error("expected nil result on error")
	}
}

// A directory of schedules far exceeding the pool's queue capacity must
// still complete on a single worker.
func TestBatchProcessor_ManyDocumentsSmallPool(t *testing.T) {
	processor := NewBatchProcessor(&MockExtractor{}, 1)

	paths := make([]string, 40)
	for i := range paths {
		paths[i] = fmt.Sprintf("schedule-%02d.pdf", i)
	}

	done := make(chan []*ExtractResult, 1)
	go func() {
		done <- processor.ProcessPaths(context.Background(), paths)
	}()

	select {
	case results := <-done:
		if len(results) != len(paths) {
			t.Errorf("expected %d results, got %d", len(paths), len(results))
		}
		for _, res := range results {
			if res.Error != nil {
				t.Errorf("unexpected error for %s: %v", res.Path, res.Error)
			}
		}
	case <-time.After(10 * time.Second):
		t.Fatal("batch larger than the pool's queue buffer never completed")
	}
}

func TestBatchProcessor_ProcessPaths_Empty(t *testing.T) {
	extractor := &MockExtractor{}
	processor := NewBatchProcessor(extractor, 2)

	results := processor.ProcessPaths(context.Background(), []string{})
	if len(results) != 0 {
		t.Errorf("expected 0 results, got %d", len(results))
	}
}

func TestReadPathsFromFile(t *testing.T) {
	content := `schedules/a.pdf
# comment
schedules/b.pdf

schedules/a.pdf
schedules/c.txt   `

	listPath := filepath.Join(t.TempDir(), "paths.txt")
	if err := os.WriteFile(listPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	paths, err := ReadPathsFromFile(listPath)
	if err != nil {
		t.Fatalf("ReadPathsFromFile failed: %v", err)
	}

	expected := []string{"schedules/a.pdf", "schedules/b.pdf", "schedules/c.txt"}
	if !reflect.DeepEqual(paths, expected) {
		t.Errorf("paths = %v, want %v", paths, expected)
	}
}

func TestReadPathsFromFile_Missing(t *testing.T) {
	if _, err := ReadPathsFromFile("/nonexistent/list.txt"); err == nil {
		t.Error("expected error for missing list file")
	}
}

func TestCollectFiles(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "nested")
	if err := os.Mkdir(sub, 0755); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"b.pdf", "a.txt", "skip.json"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.WriteFile(filepath.Join(sub, "c.PDF"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	paths, err := CollectFiles(dir)
	if err != nil {
		t.Fatalf("CollectFiles failed: %v", err)
	}

	expected := []string{
		filepath.Join(dir, "a.txt"),
		filepath.Join(dir, "b.pdf"),
		filepath.Join(sub, "c.PDF"),
	}
	if !reflect.DeepEqual(paths, expected) {
		t.Errorf("paths = %v, want %v", paths, expected)
	}
}

func TestBatchProcessor_ProcessDir(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.txt", "b.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	processor := NewBatchProcessor(&MockExtractor{}, 2)
	results, err := processor.ProcessDir(context.Background(), dir)
	if err != nil {
		t.Fatalf("ProcessDir failed: %v", err)
	}
	if len(results) != 2 {
		t.Errorf("expected 2 results, got %d", len(results))
	}
}
