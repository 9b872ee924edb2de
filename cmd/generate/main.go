package main

import (
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"github.com/drakos74/backprop/internal/data"
)

func main() {
	out := flag.String("out", "2d_data.dat", "output file")
	n := flag.Int("n", 50000, "number of records")
	seed := flag.Uint64("seed", 0, "random seed, 0 for a time based one")
	flag.Parse()

	format := data.DefaultFormat()

	s := *seed
	if s == 0 {
		s = uint64(time.Now().UnixNano())
	}

	f, err := os.Create(*out)
	if err != nil {
		log.Fatal().Err(err).Str("file", *out).Msg("could not create file")
	}

	w, err := data.NewWriter(f, format)
	if err != nil {
		log.Fatal().Err(err).Msg("could not create writer")
	}

	for _, record := range data.Separable(rand.NewSource(s), *n, format.Features) {
		if err := w.Write(record); err != nil {
			log.Fatal().Err(err).Msg("could not write record")
		}
	}
	if err := w.Flush(); err != nil {
		log.Fatal().Err(err).Msg("could not flush records")
	}
	if err := f.Close(); err != nil {
		log.Fatal().Err(err).Str("file", *out).Msg("could not close file")
	}

	log.Info().
		Str("file", *out).
		Int("records", *n).
		Uint64("seed", s).
		Floats64("hyperplane", data.Hyperplane(format.Features)).
		Msg("generated data")
}
