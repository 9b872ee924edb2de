package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/drakos74/backprop/infra/config"
	"github.com/drakos74/backprop/internal/data"
	"github.com/drakos74/backprop/internal/net"
	"github.com/drakos74/backprop/internal/server"
	"github.com/drakos74/backprop/internal/storage/file/json"
	"github.com/drakos74/backprop/internal/trainer"
)

const table = "network"

func main() {
	file := flag.String("config", config.Path+"/train.json", "training configuration file")
	input := flag.String("data", "", "data file, overrides the configuration")
	addr := flag.String("metrics", "", "address for the metrics endpoint, overrides the configuration")
	restore := flag.String("restore", "", "id of a stored network to continue training")
	dump := flag.Bool("dump", false, "log the weights of the trained network")
	flag.Parse()

	var cfg trainer.Config
	if _, err := config.LoadFile(*file, &cfg); err != nil {
		log.Fatal().Err(err).Msg("could not load config")
	}
	cfg = cfg.WithDefaults()
	if *input != "" {
		cfg.Data.Path = *input
	}
	if *addr != "" {
		cfg.Metrics = *addr
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Str("level", cfg.LogLevel).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(level)

	persistence, err := json.BlobShard(cfg.Storage, table)("snapshot")
	if err != nil {
		log.Fatal().Err(err).Msg("could not create storage")
	}

	var network *net.Network
	if *restore != "" {
		network, err = trainer.Load(persistence, *restore)
	} else {
		network, err = trainer.NewNetwork(cfg)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("could not create network")
	}

	f, err := os.Open(cfg.Data.Path)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Data.Path).Msg("could not open data")
	}
	defer f.Close()

	reader, err := data.NewReader(f, cfg.Data.Format)
	if err != nil {
		log.Fatal().Err(err).Msg("could not read data")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	t := trainer.New(network, cfg, trainer.WithStorage(persistence))

	if cfg.Metrics != "" {
		srv := server.NewServer("train", cfg.Metrics).
			Add(server.Live()).
			AddRoute(server.GET, "/api/report", server.JSON(func() interface{} {
				return t.Status()
			})).
			Handle("/metrics", promhttp.Handler())
		go func() {
			if err := srv.Run(ctx); err != nil {
				log.Error().Err(err).Msg("metrics server failed")
			}
		}()
	}

	log.Info().
		Str("id", network.ID()).
		Ints("nodes", network.Parameters().Nodes).
		Float64("rate", network.LearningRate()).
		Str("data", cfg.Data.Path).
		Int("train", cfg.Train).
		Msg("starting training")

	report, err := t.Run(ctx, reader)
	if err != nil {
		log.Fatal().Err(err).Msg("training failed")
	}

	if *dump {
		log.Info().Msg(network.String())
	}

	log.Info().
		Str("id", report.ID).
		Int("iterations", report.Iterations).
		Int("evaluated", report.Evaluated).
		Int("correct", report.Correct).
		Float64("accuracy", report.Accuracy).
		Float64("mse", report.MSE).
		Float64("stdev", report.Evaluation.StDev).
		Msg("done")
}
