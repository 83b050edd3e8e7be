package worker

import (
	"bufio"
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jgreyling/polsched/internal/pipeline"
)

// Extractor defines the interface for extracting a single document
type Extractor interface {
	ExtractFile(ctx context.Context, path string) (*pipeline.Result, error)
}

// ExtractJob represents one document extraction job
type ExtractJob struct {
	Path      string
	Extractor Extractor
}

// Execute executes the extraction job
func (j *ExtractJob) Execute(ctx context.Context) Result {
	result, err := j.Extractor.ExtractFile(ctx, j.Path)
	if err != nil {
		return &ExtractResult{
			Path:  j.Path,
			Error: err,
		}
	}
	return &ExtractResult{
		Path:   j.Path,
		Result: result,
	}
}

// ExtractResult represents the outcome of one extraction job
type ExtractResult struct {
	Path   string
	Result *pipeline.Result
	Error  error
}

// GetError returns the error from the extraction result
func (r *ExtractResult) GetError() error {
	return r.Error
}

// BatchProcessor extracts multiple schedule documents concurrently
type BatchProcessor struct {
	extractor   Extractor
	concurrency int
}

// NewBatchProcessor creates a new batch processor
func NewBatchProcessor(extractor Extractor, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		extractor:   extractor,
		concurrency: concurrency,
	}
}

// ProcessPaths extracts multiple documents concurrently
func (b *BatchProcessor) ProcessPaths(ctx context.Context, paths []string) []*ExtractResult {
	if len(paths) == 0 {
		return []*ExtractResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	for _, path := range paths {
		job := &ExtractJob{
			Path:      path,
			Extractor: b.extractor,
		}
		pool.Submit(job)
	}

	results := pool.Wait()

	extractResults := make([]*ExtractResult, len(results))
	for i, result := range results {
		extractResults[i] = result.(*ExtractResult)
	}

	return extractResults
}

// ProcessFile reads document paths from a list file and extracts them concurrently
func (b *BatchProcessor) ProcessFile(ctx context.Context, listPath string) ([]*ExtractResult, error) {
	paths, err := ReadPathsFromFile(listPath)
	if err != nil {
		return nil, fmt.Errorf("read paths: %w", err)
	}

	return b.ProcessPaths(ctx, paths), nil
}

// ProcessDir extracts every schedule document under dir concurrently
func (b *BatchProcessor) ProcessDir(ctx context.Context, dir string) ([]*ExtractResult, error) {
	paths, err := CollectFiles(dir)
	if err != nil {
		return nil, fmt.Errorf("collect files: %w", err)
	}

	return b.ProcessPaths(ctx, paths), nil
}

// ReadPathsFromFile reads document paths from a file (one per line)
func ReadPathsFromFile(listPath string) ([]string, error) {
	file, err := os.Open(listPath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var paths []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Deduplicate paths
		if !seen[line] {
			seen[line] = true
			paths = append(paths, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return paths, nil
}

// CollectFiles walks dir and returns every .pdf and .txt file, sorted so batch
// runs process documents in a stable order
func CollectFiles(dir string) ([]string, error) {
	var paths []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext == ".pdf" || ext == ".txt" {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(paths)
	return paths, nil
}
