// Package bench drives perft and nodes-per-second measurements against
// the engine, the way the teacher's cmd/.../main.go does inline, but as
// a reusable harness that can sweep many positions concurrently and
// optionally persist results to a badger store between runs.
package bench

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/sync/semaphore"

	"github.com/Juules32/sisyphus32-sub000/internal/config"
	"github.com/Juules32/sisyphus32-sub000/internal/movegen"
	"github.com/Juules32/sisyphus32-sub000/internal/position"
	"github.com/Juules32/sisyphus32-sub000/internal/search"
	"github.com/Juules32/sisyphus32-sub000/internal/util"
)

// Report is the outcome of a single perft or nps run.
type Report struct {
	Fen     string
	Depth   int
	Nodes   uint64
	Nps     uint64
	Elapsed time.Duration

	Captures   uint64
	EnPassant  uint64
	Castles    uint64
	Promotions uint64
	Checks     uint64
	CheckMates uint64
}

// PerftOptions controls a single perft run.
type PerftOptions struct {
	Fen        string
	Depth      int
	OnDemand   bool
	ProfileDir string // non-empty enables CPU profiling to this folder
}

// RunPerft runs perft to the given depth on fen and returns a Report.
func RunPerft(opt PerftOptions) *Report {
	if opt.ProfileDir != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(opt.ProfileDir)).Stop()
	}

	var p movegen.Perft
	start := time.Now()
	p.StartPerft(opt.Fen, opt.Depth, opt.OnDemand)
	elapsed := time.Since(start)

	return &Report{
		Fen:        opt.Fen,
		Depth:      opt.Depth,
		Nodes:      p.Nodes,
		Nps:        util.Nps(p.Nodes, elapsed),
		Elapsed:    elapsed,
		Captures:   p.CaptureCounter,
		EnPassant:  p.EnpassantCounter,
		Castles:    p.CastleCounter,
		Promotions: p.PromotionCounter,
		Checks:     p.CheckCounter,
		CheckMates: p.CheckMateCounter,
	}
}

// RunNps runs a time-limited search on fen, disabling the opening book
// so every node is actually searched, and reports nodes-per-second.
func RunNps(fen string, duration time.Duration, profileDir string) *Report {
	if profileDir != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(profileDir)).Stop()
	}

	useBook := config.Settings.Search.UseBook
	config.Settings.Search.UseBook = false
	defer func() { config.Settings.Search.UseBook = useBook }()

	s := search.NewSearch()
	p := position.NewPosition(fen)
	sl := search.NewSearchLimits()
	sl.TimeControl = true
	sl.MoveTime = duration

	s.StartSearch(*p, *sl)
	s.WaitWhileSearching()

	result := s.LastSearchResult()
	return &Report{
		Fen:     fen,
		Nodes:   s.NodesVisited(),
		Nps:     util.Nps(s.NodesVisited(), result.SearchTime),
		Elapsed: result.SearchTime,
	}
}

// SweepPerft runs perft for every fen in fens concurrently, bounded by
// maxConcurrent, and returns one Report per fen in the same order.
func SweepPerft(fens []string, depth int, maxConcurrent int64) []*Report {
	reports := make([]*Report, len(fens))
	sem := semaphore.NewWeighted(maxConcurrent)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i, fen := range fens {
		i, fen := i, fen
		_ = sem.Acquire(ctx, 1)
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)
			reports[i] = RunPerft(PerftOptions{Fen: fen, Depth: depth, OnDemand: true})
		}()
	}
	wg.Wait()
	return reports
}
