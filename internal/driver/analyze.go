// Package driver orchestrates analysis of many Nimble files for the CLI.
//
// Each file gets its own fresh single-threaded analysis run; the driver only
// parallelizes across files. Results can be served from a msgpack disk cache
// keyed by content digest.
package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"nimble/internal/ast"
	"nimble/internal/diag"
	"nimble/internal/diagfmt"
	"nimble/internal/lexer"
	"nimble/internal/parser"
	"nimble/internal/sema"
	"nimble/internal/semtest"
	"nimble/internal/source"
)

// Options configure a driver run.
type Options struct {
	FirstPhaseOnly bool
	MaxDiagnostics int
	Workers        int // 0 means GOMAXPROCS
	Cache          *DiskCache
}

func (o Options) maxDiagnostics() int {
	if o.MaxDiagnostics <= 0 {
		return 100
	}
	return o.MaxDiagnostics
}

// FileResult is the analysis outcome for one file. Either the live fields
// (Bag, Tree, Types) are set, or FromCache is true and the rendered fields
// replay a previous run.
type FileResult struct {
	Path   string
	FileID source.FileID

	Bag   *diag.Bag
	Tree  *ast.Tree
	Types semtest.TypeIndex

	FromCache   bool
	HadErrors   bool
	Diagnostics []string // rendered, plain
	TypeReport  string
}

// ListFiles returns the sorted relative paths of all *.nim files under dir.
func ListFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".nim") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// AnalyzeDir analyzes every *.nim file under dir. Results come back in the
// same (sorted) order as ListFiles.
func AnalyzeDir(ctx context.Context, dir string, opts Options) ([]*FileResult, *source.FileSet, error) {
	files, err := ListFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	return AnalyzePaths(ctx, files, opts)
}

// AnalyzePaths analyzes the given files, fanning out across workers.
// Loading is serial (the FileSet is not safe for concurrent writes);
// analysis of the loaded files runs in parallel and touches the FileSet
// read-only.
func AnalyzePaths(ctx context.Context, paths []string, opts Options) ([]*FileResult, *source.FileSet, error) {
	fileSet := source.NewFileSet()
	ids := make([]source.FileID, len(paths))
	for i, path := range paths {
		id, err := fileSet.Load(path)
		if err != nil {
			return nil, nil, err
		}
		ids[i] = id
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]*FileResult, len(paths))
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range paths {
		g.Go(func() error {
			results[i] = analyzeOne(fileSet, ids[i], opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return results, fileSet, nil
}

// analyzeOne runs the full pipeline for a single loaded file, consulting
// the cache first when one is configured.
func analyzeOne(fileSet *source.FileSet, id source.FileID, opts Options) *FileResult {
	file := fileSet.Get(id)
	key := digestOf(file.Content, opts.FirstPhaseOnly)

	if payload, ok := opts.Cache.Get(key); ok {
		return &FileResult{
			Path:        file.Path,
			FileID:      id,
			FromCache:   true,
			HadErrors:   payload.HadErrors,
			Diagnostics: payload.Diagnostics,
			TypeReport:  payload.TypeReport,
		}
	}

	bag := diag.NewBag(opts.maxDiagnostics())
	reporter := diag.BagReporter{Bag: bag}

	tokens := lexer.New(file, reporter).ScanAll()
	tree := parser.Parse(file, tokens, parser.StartScript, parser.Options{Reporter: reporter})
	sema.DefineScopesAndSymbols(tree, reporter)
	if !opts.FirstPhaseOnly {
		sema.InferTypesAndCheckConstraints(tree, reporter)
	}
	types := semtest.CollectTypes(tree)

	res := &FileResult{
		Path:        file.Path,
		FileID:      id,
		Bag:         bag,
		Tree:        tree,
		Types:       types,
		HadErrors:   bag.HasErrors(),
		Diagnostics: renderPlain(bag, fileSet),
		TypeReport:  semtest.FormatTypes(types),
	}

	if opts.Cache != nil {
		// best effort: a failed write only costs the next run
		_ = opts.Cache.Put(key, &DiskPayload{
			Path:        file.Path,
			HadErrors:   res.HadErrors,
			Diagnostics: res.Diagnostics,
			TypeReport:  res.TypeReport,
		})
	}
	return res
}

func renderPlain(bag *diag.Bag, fileSet *source.FileSet) []string {
	lines := make([]string, 0, bag.Len())
	for _, d := range bag.Items() {
		lines = append(lines, diagfmt.Line(d, fileSet, diagfmt.Options{}))
	}
	return lines
}
