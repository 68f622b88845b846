package main

import (
	"net/http"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"reviewlens/internal/adapters/echarts"
	server "reviewlens/internal/adapters/http_server"
	"reviewlens/internal/adapters/memcache"
	"reviewlens/internal/adapters/observability"
	redisad "reviewlens/internal/adapters/redis"
	"reviewlens/internal/adapters/segment"
	"reviewlens/internal/app"
	"reviewlens/internal/domain"
	"reviewlens/internal/shared"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	lexicon, err := shared.LoadLexicon(cfg.LexiconFile)
	if err != nil {
		log.Fatal().Err(err).Msg("lexicon load failed")
	}

	seg, err := segment.New()
	if err != nil {
		log.Fatal().Err(err).Msg("segmenter init failed")
	}
	log.Info().Msg("segmenter dictionary loaded")

	// deps
	var cache domain.Cache
	if cfg.RedisAddr != "" {
		cache = redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		log.Info().Str("addr", cfg.RedisAddr).Msg("sessions backed by redis")
	} else {
		mem := memcache.New()
		defer mem.Close()
		cache = mem
	}
	analyzer := app.NewAnalyzer(seg, app.Options{
		Stopwords:    lexicon.Stopwords,
		MinTermRunes: lexicon.MinTermRunes,
		Roles:        lexicon.Roles,
		DefaultTopN:  cfg.DefaultTopN,
	})
	sessions := app.NewSessionService(cache, analyzer, cfg.SessionTTL)

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{
		Sessions:       sessions,
		Board:          echarts.Renderer{},
		Sem:            semaphore.NewWeighted(int64(cfg.Workers)),
		MaxUploadBytes: cfg.MaxUploadBytes,
		UploadRPS:      cfg.UploadRPS,
	})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
