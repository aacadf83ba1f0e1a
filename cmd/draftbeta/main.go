// draftbeta is a command-line driver for the draft-optimizing search
// engine of spec.md: it loads a draft template (heroes, roles, schedule,
// reward weights) from a TOML file, optionally restores a saved
// transposition table, runs the root search over a partial draft given on
// the command line, and reports the optimal selection(s).
//
// Assembling the real hero/role/reward data from a database or a richer
// config format is the preprocessor's job (spec.md S1, out of scope); this
// driver's TOML loader is a minimal convenience for exercising the engine
// end to end, not part of the engine package itself.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/draftbeta/draftbeta/cmd/draftbeta/draftconfig"
	"github.com/draftbeta/draftbeta/pkg/draftengine"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
)

var (
	template = flag.String("template", "", "Draft template TOML file (required)")
	ttFile   = flag.String("tt", "", "Transposition table persistence file (optional)")
	save     = flag.Bool("save", false, "Save the transposition table to -tt after the search")
	workers  = flag.Int("workers", 0, "Root-level worker count (0 defaults to GOMAXPROCS; 1 forces deterministic single-threaded search)")
	startA   = flag.String("a", "", "Comma-separated hero indices already selected by team A")
	startB   = flag.String("b", "", "Comma-separated hero indices already selected by team B")
	banned   = flag.String("banned", "", "Comma-separated hero indices already banned")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: draftbeta -template=draft.toml [options]

draftbeta runs the draft-optimizing search engine (spec.md) over a partial
draft and reports the optimal next selection(s) for the side to move.
Options:
`)
		flag.PrintDefaults()
	}
}

func parseIndices(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	var out []int
	for _, tok := range strings.Split(s, ",") {
		v, err := strconv.Atoi(strings.TrimSpace(tok))
		if err != nil {
			return nil, fmt.Errorf("invalid hero index %q: %w", tok, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func main() {
	flag.Parse()
	ctx := context.Background()

	if *template == "" {
		logw.Exitf(ctx, "missing -template")
	}

	cfg, err := draftconfig.Load(*template)
	if err != nil {
		logw.Exitf(ctx, "failed to load template %v: %v", *template, err)
	}

	e := draftengine.New()
	if err := cfg.Apply(e); err != nil {
		logw.Exitf(ctx, "failed to apply template %v: %v", *template, err)
	}
	logw.Infof(ctx, "Configured %v, version=%v", *template, draftengine.Version)

	if *ttFile != "" {
		if err := e.LoadTT(*ttFile); err != nil {
			logw.Infof(ctx, "No prior transposition table at %v (%v); starting cold", *ttFile, err)
		} else {
			logw.Infof(ctx, "Loaded transposition table from %v", *ttFile)
		}
	}

	a, err := parseIndices(*startA)
	if err != nil {
		logw.Exitf(ctx, "-a: %v", err)
	}
	b, err := parseIndices(*startB)
	if err != nil {
		logw.Exitf(ctx, "-b: %v", err)
	}
	bans, err := parseIndices(*banned)
	if err != nil {
		logw.Exitf(ctx, "-banned: %v", err)
	}

	var startListA, startListB [][]int
	if len(a) > 0 {
		startListA = [][]int{a}
	}
	if len(b) > 0 {
		startListB = [][]int{b}
	}

	var opts draftengine.Options
	if *workers > 0 {
		opts.Workers = lang.Some(*workers)
	}

	result, stats, err := e.RunSearch(startListA, startListB, bans, opts)
	if err != nil {
		logw.Exitf(ctx, "search failed: %v", err)
	}

	fmt.Printf("value=%d hero=%d hero2=%d nodes=%d tt_hits=%d\n",
		result.Value, result.Hero, result.Hero2, stats.Nodes.Load(), stats.TTHits.Load())

	if *save && *ttFile != "" {
		if err := e.SaveTT(*ttFile); err != nil {
			logw.Exitf(ctx, "failed to save transposition table to %v: %v", *ttFile, err)
		}
		logw.Infof(ctx, "Saved transposition table to %v", *ttFile)
	}
}
