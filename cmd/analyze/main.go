// Command analyze runs the dashboard pipeline over local files without
// the HTTP surface: every argument is parsed and analyzed, and the
// report lands next to the input as <file>.report.json.
package main

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"reviewlens/internal/adapters/observability"
	"reviewlens/internal/adapters/segment"
	"reviewlens/internal/adapters/tabular"
	"reviewlens/internal/app"
	"reviewlens/internal/shared"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	files := os.Args[1:]
	if len(files) == 0 {
		log.Fatal().Msg("usage: analyze <reviews.csv|reviews.xlsx> ...")
	}

	lexicon, err := shared.LoadLexicon(cfg.LexiconFile)
	if err != nil {
		log.Fatal().Err(err).Msg("lexicon load failed")
	}
	seg, err := segment.New()
	if err != nil {
		log.Fatal().Err(err).Msg("segmenter init failed")
	}
	analyzer := app.NewAnalyzer(seg, app.Options{
		Stopwords:    lexicon.Stopwords,
		MinTermRunes: lexicon.MinTermRunes,
		Roles:        lexicon.Roles,
		DefaultTopN:  cfg.DefaultTopN,
	})

	sem := semaphore.NewWeighted(int64(cfg.Workers))
	var wg sync.WaitGroup

	for _, path := range files {
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(path string) {
			defer wg.Done()
			defer sem.Release(1)

			if err := analyzeFile(analyzer, path); err != nil {
				log.Warn().Str("file", path).Err(err).Msg("analysis failed")
				return
			}
			log.Info().Str("file", path).Msg("report written")
		}(path)
	}

	wg.Wait()
}

func analyzeFile(analyzer *app.Analyzer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	table, err := tabular.Read(filepath.Base(path), f)
	if err != nil {
		return err
	}
	rep, err := analyzer.Analyze(filepath.Base(path), table, app.Params{})
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path+".report.json", b, 0o644)
}
