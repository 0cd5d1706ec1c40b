package main

import (
	"context"
	"fmt"
	"os"

	"github.com/CynthiaM111/weshare-sub002/internal/broker"
	"github.com/CynthiaM111/weshare-sub002/internal/config"
	"github.com/CynthiaM111/weshare-sub002/internal/metrics"
	"github.com/CynthiaM111/weshare-sub002/internal/notification"
	"github.com/CynthiaM111/weshare-sub002/internal/seed"
	"github.com/CynthiaM111/weshare-sub002/internal/service"
	"github.com/CynthiaM111/weshare-sub002/internal/storage"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/wb-go/wbf/logger"
)

func main() {
	if err := rootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		file   string
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load demo categories, riders, rides and bookings",
		Long: `seed reads a YAML fixtures file and writes it into the storage
selected by the service configuration. Bookings go through the booking
service, so seat counters stay in sync with the bookings list.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), file, dryRun)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "fixtures/demo.yaml", "Fixtures file (YAML)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Validate fixtures without writing")

	return cmd
}

func run(ctx context.Context, file string, dryRun bool) error {
	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("open fixtures: %w", err)
	}
	defer f.Close()

	fx, err := seed.Parse(f)
	if err != nil {
		return err
	}
	if dryRun {
		fmt.Printf("%s: %d categories, %d users, %d rides\n",
			file, len(fx.Categories), len(fx.Users), len(fx.Rides))
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"WeShareSeed",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	stores, err := storage.Open(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer stores.Close(context.Background())

	// сидер не шлёт уведомления и события
	notifier, err := notification.NewTelegramNotifier("", log)
	if err != nil {
		return err
	}
	pub := broker.NoopPublisher{}
	m := metrics.New(prometheus.NewRegistry(), cfg.Metrics.Path)

	loader := seed.NewLoader(
		service.NewCategoryService(stores.Categories),
		service.NewUserService(stores.Users),
		service.NewRideService(stores.Rides, stores.Categories, stores.Users, notifier, pub, m, log),
		service.NewBookingService(stores.Rides, stores.Users, notifier, pub, m, log),
		log,
	)

	res, err := loader.Load(ctx, fx)
	if err != nil {
		return err
	}

	fmt.Printf("loaded %d categories, %d users, %d rides, %d bookings into %s\n",
		res.Categories, res.Users, res.Rides, res.Bookings, stores.Driver)
	return nil
}
