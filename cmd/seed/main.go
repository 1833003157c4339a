package main

import (
	"context"
	"flag"
	"math/rand/v2"
	"os"
	"time"

	"github.com/go-kratos/kratos/v2/config"
	"github.com/go-kratos/kratos/v2/config/env"
	"github.com/go-kratos/kratos/v2/config/file"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/joho/godotenv"

	"github.com/Ikbal-hand/streaming-api-pdt/internal/conf"
	"github.com/Ikbal-hand/streaming-api-pdt/internal/data"
	"github.com/Ikbal-hand/streaming-api-pdt/internal/logger"
)

var (
	flagconf string
	size     int
	migrate  bool
	seed     uint64
)

func init() {
	flag.StringVar(&flagconf, "conf", "configs", "config path, eg: -conf config.yaml")
	flag.IntVar(&size, "n", 50, "number of contents and users to generate")
	flag.BoolVar(&migrate, "migrate", true, "create tables before seeding")
	flag.Uint64Var(&seed, "seed", 0, "random seed, 0 picks one from the clock")
}

func main() {
	flag.Parse()
	_ = godotenv.Load()

	c := config.New(
		config.WithSource(
			env.NewSource(),
			file.NewSource(flagconf),
		),
	)
	defer c.Close()

	if err := c.Load(); err != nil {
		panic(err)
	}
	var bc conf.Bootstrap
	if err := c.Scan(&bc); err != nil {
		panic(err)
	}
	bc.Defaults()

	logger := log.With(logger.New(bc.Log, os.Stdout), "ts", log.DefaultTimestamp, "service.name", "seed")
	if err := run(bc.Data, logger); err != nil {
		log.NewHelper(logger).Errorf("error during seeding: %v", err)
		os.Exit(1)
	}
}

func run(c *conf.Data, logger log.Logger) error {
	helper := log.NewHelper(logger)

	d, cleanup, err := data.NewData(c, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if migrate {
		if err := d.Migrate(ctx); err != nil {
			return err
		}
	}

	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	helper.Infof("starting database seeding with %d data points", size)
	report, err := d.Seed(ctx, size, rand.New(rand.NewPCG(seed, seed>>1)))
	if err != nil {
		return err
	}

	helper.Infow(
		"msg", "seeding complete",
		"contents", report.Contents,
		"users", report.Users,
		"reviews", report.Reviews,
		"watch_history", report.WatchHistory,
		"sample_content_id", report.SampleContent,
		"sample_user_id", report.SampleUser,
	)
	return nil
}
