// Package main runs reproducible parse/check and LSP memory stability
// measurements for bagel-core, adapted from the teacher's
// scripts/perf-report (the format-benchmark and external-corpus-root
// pieces have no equivalent here: there is no formatter in this module
// and no real-world corpus of this language to point a flag at, so both
// are dropped in favor of the fixtures under testdata/corpus).
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"slices"
	"strings"
	"time"

	"github.com/kpumuk/bagelcore/internal/check"
	"github.com/kpumuk/bagelcore/internal/diag"
	"github.com/kpumuk/bagelcore/internal/lsp"
	"github.com/kpumuk/bagelcore/internal/parser"
	"github.com/kpumuk/bagelcore/internal/source"
	"github.com/kpumuk/bagelcore/internal/testutil"
)

const (
	setSmall     = "small"
	setTypical   = "typical"
	setLarge     = "large"
	setMalformed = "malformed"
)

type config struct {
	iterations      int
	warmup          int
	jsonPath        string
	memIters        int
	memSampleEvery  int
	memFreeOSMemory bool
}

type sampleStats struct {
	Samples int     `json:"samples"`
	P50MS   float64 `json:"p50_ms"`
	P95MS   float64 `json:"p95_ms"`
	MinMS   float64 `json:"min_ms"`
	MaxMS   float64 `json:"max_ms"`
	MeanMS  float64 `json:"mean_ms"`
}

type benchSetReport struct {
	Set        string      `json:"set"`
	Files      int         `json:"files"`
	Iterations int         `json:"iterations"`
	Samples    int         `json:"samples"`
	Stats      sampleStats `json:"stats"`
	Notes      []string    `json:"notes,omitempty"`
}

type memSample struct {
	Iteration int    `json:"iteration"`
	HeapAlloc uint64 `json:"heap_alloc"`
	HeapInuse uint64 `json:"heap_inuse"`
	HeapSys   uint64 `json:"heap_sys"`
	NumGC     uint32 `json:"num_gc"`
}

type memoryReport struct {
	Iterations          int         `json:"iterations"`
	SampleEvery         int         `json:"sample_every"`
	DocCount            int         `json:"doc_count"`
	Samples             []memSample `json:"samples"`
	HeapAllocGrowth     int64       `json:"heap_alloc_growth"`
	HeapInuseGrowth     int64       `json:"heap_inuse_growth"`
	UnboundedGrowthHint bool        `json:"unbounded_growth_hint"`
}

type report struct {
	GeneratedAt time.Time        `json:"generated_at"`
	GoVersion   string           `json:"go_version"`
	GOOS        string           `json:"goos"`
	GOARCH      string           `json:"goarch"`
	CPUs        int              `json:"cpus"`
	Config      map[string]any   `json:"config"`
	ParseBench  []benchSetReport `json:"parse_bench"`
	CheckBench  []benchSetReport `json:"check_bench"`
	Memory      memoryReport     `json:"memory"`
	Warnings    []string         `json:"warnings,omitempty"`
}

func main() {
	cfg := parseFlags()
	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "bagello: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags() config {
	var cfg config
	flag.IntVar(&cfg.iterations, "iterations", 50, "timed iterations per corpus file")
	flag.IntVar(&cfg.warmup, "warmup", 3, "untimed warmup iterations per corpus file")
	flag.StringVar(&cfg.jsonPath, "json", "", "optional path to write the report as JSON")
	flag.IntVar(&cfg.memIters, "mem-iterations", 200, "open/close cycles in the LSP memory loop")
	flag.IntVar(&cfg.memSampleEvery, "mem-sample-every", 20, "sample memory every N iterations")
	flag.BoolVar(&cfg.memFreeOSMemory, "mem-free-os-memory", false, "call debug.FreeOSMemory instead of runtime.GC before each sample")
	flag.Parse()
	return cfg
}

func run(cfg config) error {
	if cfg.memSampleEvery <= 0 {
		cfg.memSampleEvery = 1
	}
	ctx := context.Background()

	parseBench, err := runParseBench(ctx, cfg)
	if err != nil {
		return fmt.Errorf("parse bench: %w", err)
	}
	checkBench, err := runCheckBench(ctx, cfg)
	if err != nil {
		return fmt.Errorf("check bench: %w", err)
	}
	mem, memWarnings, err := runLSPMemoryLoop(ctx, cfg)
	if err != nil {
		return fmt.Errorf("lsp memory loop: %w", err)
	}

	rep := report{
		GeneratedAt: time.Time{},
		GoVersion:   runtime.Version(),
		GOOS:        runtime.GOOS,
		GOARCH:      runtime.GOARCH,
		CPUs:        runtime.NumCPU(),
		Config:      configJSON(cfg),
		ParseBench:  parseBench,
		CheckBench:  checkBench,
		Memory:      mem,
		Warnings:    memWarnings,
	}

	printReport(rep)
	if cfg.jsonPath != "" {
		if err := writeJSON(cfg.jsonPath, rep); err != nil {
			return fmt.Errorf("write json report: %w", err)
		}
	}
	return nil
}

func corpusSets() []string {
	return []string{setSmall, setTypical, setLarge, setMalformed}
}

func runParseBench(ctx context.Context, cfg config) ([]benchSetReport, error) {
	_ = ctx
	out := make([]benchSetReport, 0, len(corpusSets()))
	for _, set := range corpusSets() {
		files, err := testutil.CorpusFiles(set)
		if err != nil {
			return nil, fmt.Errorf("corpus %s: %w", set, err)
		}
		samples, notes, err := benchmarkParse(files, cfg)
		if err != nil {
			return nil, err
		}
		out = append(out, benchSetReport{
			Set:        set,
			Files:      len(files),
			Iterations: cfg.iterations,
			Samples:    len(samples),
			Stats:      durationStats(samples),
			Notes:      notes,
		})
	}
	return out, nil
}

func benchmarkParse(files []string, cfg config) ([]time.Duration, []string, error) {
	var samples []time.Duration
	var notes []string
	for _, path := range files {
		src, err := os.ReadFile(path)
		if err != nil {
			return nil, nil, fmt.Errorf("read %s: %w", path, err)
		}
		code := source.NewCode(path, string(src))
		for range cfg.warmup {
			parser.ParseModule(code)
		}
		for range cfg.iterations {
			start := time.Now()
			_, diags := parser.ParseModule(code)
			samples = append(samples, time.Since(start))
			if hasParseError(diags) {
				notes = append(notes, filepath.Base(path))
			}
		}
	}
	notes = dedupeStrings(notes)
	return samples, notes, nil
}

func runCheckBench(ctx context.Context, cfg config) ([]benchSetReport, error) {
	_ = ctx
	// Malformed inputs fail to parse a module at all (or parse one with
	// broken subtrees); checking them still exercises check.Module's
	// broken-subtree diagnostic path, so the set is included like the
	// other three.
	out := make([]benchSetReport, 0, len(corpusSets()))
	for _, set := range corpusSets() {
		files, err := testutil.CorpusFiles(set)
		if err != nil {
			return nil, fmt.Errorf("corpus %s: %w", set, err)
		}
		samples, skipped, err := benchmarkCheck(files, cfg)
		if err != nil {
			return nil, err
		}
		out = append(out, benchSetReport{
			Set:        set,
			Files:      len(files),
			Iterations: cfg.iterations,
			Samples:    len(samples),
			Stats:      durationStats(samples),
			Notes:      skipped,
		})
	}
	return out, nil
}

func benchmarkCheck(files []string, cfg config) ([]time.Duration, []string, error) {
	var samples []time.Duration
	var skipped []string
	for _, path := range files {
		src, err := os.ReadFile(path)
		if err != nil {
			return nil, nil, fmt.Errorf("read %s: %w", path, err)
		}
		code := source.NewCode(path, string(src))
		module, _ := parser.ParseModule(code)
		if module == nil {
			skipped = append(skipped, filepath.Base(path))
			continue
		}
		for range cfg.warmup {
			check.Module(module, func(diag.Diagnostic) {})
		}
		for range cfg.iterations {
			start := time.Now()
			check.Module(module, func(diag.Diagnostic) {})
			samples = append(samples, time.Since(start))
		}
	}
	return samples, skipped, nil
}

func hasParseError(diags []diag.Diagnostic) bool {
	for _, d := range diags {
		if d.Severity == diag.SeverityError {
			return true
		}
	}
	return false
}

func dedupeStrings(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := in[:0]
	for _, s := range in {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

// runLSPMemoryLoop repeatedly opens, mutates and closes every corpus
// document through the language server's store, watching for heap
// growth that would indicate the store leaks closed documents.
func runLSPMemoryLoop(ctx context.Context, cfg config) (memoryReport, []string, error) {
	_ = ctx
	var warnings []string
	type memDoc struct {
		uri    string
		open   []byte
		change []byte
	}
	var memDocs []memDoc
	for _, set := range corpusSets() {
		files, err := testutil.CorpusFiles(set)
		if err != nil {
			return memoryReport{}, nil, fmt.Errorf("corpus %s: %w", set, err)
		}
		for i, path := range files {
			src, err := os.ReadFile(path)
			if err != nil {
				return memoryReport{}, nil, fmt.Errorf("read memory doc %s: %w", path, err)
			}
			memDocs = append(memDocs, memDoc{
				uri:    fmt.Sprintf("file:///perf/memory/%s/%d/%s", set, i, filepath.Base(path)),
				open:   src,
				change: mutateForMemoryLoop(src),
			})
		}
	}
	if len(memDocs) == 0 {
		return memoryReport{}, warnings, errors.New("no memory benchmark documents available")
	}

	store := lsp.NewStore()
	samples := make([]memSample, 0, max(1, cfg.memIters/cfg.memSampleEvery))
	recordSample := func(iter int) {
		if cfg.memFreeOSMemory {
			debug.FreeOSMemory()
		} else {
			runtime.GC()
		}
		var ms runtime.MemStats
		runtime.ReadMemStats(&ms)
		samples = append(samples, memSample{
			Iteration: iter,
			HeapAlloc: ms.HeapAlloc,
			HeapInuse: ms.HeapInuse,
			HeapSys:   ms.HeapSys,
			NumGC:     ms.NumGC,
		})
	}

	recordSample(0)
	var version int32 = 1
	for iter := 1; iter <= cfg.memIters; iter++ {
		for _, d := range memDocs {
			version++
			store.Open(d.uri, version, string(d.change))
			version++
			store.Open(d.uri, version, string(d.open))
			store.Close(d.uri)
		}
		if iter%cfg.memSampleEvery == 0 || iter == cfg.memIters {
			recordSample(iter)
		}
	}

	rep := memoryReport{
		Iterations:  cfg.memIters,
		SampleEvery: cfg.memSampleEvery,
		DocCount:    len(memDocs),
		Samples:     samples,
	}
	if len(samples) >= 2 {
		first := samples[0]
		last := samples[len(samples)-1]
		rep.HeapAllocGrowth = int64Diff(last.HeapAlloc, first.HeapAlloc)
		rep.HeapInuseGrowth = int64Diff(last.HeapInuse, first.HeapInuse)
		rep.UnboundedGrowthHint = isUnboundedGrowthHint(samples)
	}
	return rep, warnings, nil
}

func mutateForMemoryLoop(src []byte) []byte {
	const marker = "\n// perf-memory-toggle\n"
	s := string(src)
	if strings.Contains(s, marker) {
		return []byte(strings.ReplaceAll(s, marker, "\n"))
	}
	trimmed := strings.TrimRight(s, "\n")
	return []byte(trimmed + marker)
}

func isUnboundedGrowthHint(samples []memSample) bool {
	if len(samples) < 4 {
		return false
	}
	base := samples[0]
	last := samples[len(samples)-1]
	growthAlloc := int64Diff(last.HeapAlloc, base.HeapAlloc)
	growthInuse := int64Diff(last.HeapInuse, base.HeapInuse)
	const maxExpectedGrowth = 16 << 20 // 16 MiB heuristic after forced GC samples
	return growthAlloc > maxExpectedGrowth || growthInuse > maxExpectedGrowth
}

func durationStats(samples []time.Duration) sampleStats {
	if len(samples) == 0 {
		return sampleStats{}
	}
	ns := make([]int64, len(samples))
	var sum int64
	for i, d := range samples {
		ns[i] = d.Nanoseconds()
		sum += ns[i]
	}
	slices.Sort(ns)
	p50 := quantile(ns, 0.50)
	p95 := quantile(ns, 0.95)
	return sampleStats{
		Samples: len(samples),
		P50MS:   nanosToMS(p50),
		P95MS:   nanosToMS(p95),
		MinMS:   nanosToMS(ns[0]),
		MaxMS:   nanosToMS(ns[len(ns)-1]),
		MeanMS:  nanosToMS(sum / int64(len(ns))),
	}
}

func quantile(sorted []int64, q float64) int64 {
	if len(sorted) == 0 {
		return 0
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	idx := int(float64(len(sorted)-1) * q)
	return sorted[idx]
}

func nanosToMS(ns int64) float64 {
	return float64(ns) / float64(time.Millisecond)
}

func printReport(rep report) {
	fmt.Printf("bagel-core performance report\n")
	fmt.Printf("go=%s os=%s arch=%s cpus=%d\n\n", rep.GoVersion, rep.GOOS, rep.GOARCH, rep.CPUs)
	printBenchTable("Parse", rep.ParseBench)
	printBenchTable("Check", rep.CheckBench)
	printMemoryReport(rep.Memory)
	if len(rep.Warnings) > 0 {
		fmt.Println("\nWarnings:")
		for _, w := range rep.Warnings {
			fmt.Println("  -", w)
		}
	}
}

func printBenchTable(title string, rows []benchSetReport) {
	fmt.Printf("%s bench:\n", title)
	fmt.Printf("  %-10s %6s %8s %8s %8s %8s %8s\n", "set", "files", "samples", "p50ms", "p95ms", "meanms", "maxms")
	for _, r := range rows {
		fmt.Printf("  %-10s %6d %8d %8.3f %8.3f %8.3f %8.3f\n",
			r.Set, r.Files, r.Stats.Samples, r.Stats.P50MS, r.Stats.P95MS, r.Stats.MeanMS, r.Stats.MaxMS)
		if len(r.Notes) > 0 {
			fmt.Printf("    notes: %s\n", strings.Join(r.Notes, ", "))
		}
	}
	fmt.Println()
}

func printMemoryReport(rep memoryReport) {
	fmt.Println("LSP memory loop:")
	fmt.Printf("  docs=%d iterations=%d sample_every=%d\n", rep.DocCount, rep.Iterations, rep.SampleEvery)
	fmt.Printf("  heap_alloc_growth=%d heap_inuse_growth=%d unbounded_growth_hint=%v\n",
		rep.HeapAllocGrowth, rep.HeapInuseGrowth, rep.UnboundedGrowthHint)
	fmt.Println()
}

func writeJSON(path string, rep report) error {
	b, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

func configJSON(cfg config) map[string]any {
	return map[string]any{
		"iterations":         cfg.iterations,
		"warmup":             cfg.warmup,
		"mem_iterations":     cfg.memIters,
		"mem_sample_every":   cfg.memSampleEvery,
		"mem_free_os_memory": cfg.memFreeOSMemory,
	}
}

func int64Diff(a, b uint64) int64 {
	return int64(a) - int64(b)
}
