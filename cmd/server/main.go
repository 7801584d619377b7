package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"
	_ "time/tzdata"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"

	"nurse-agenda/internal/booking"
	pb "nurse-agenda/internal/bookingpb"
	"nurse-agenda/internal/catalog"
	"nurse-agenda/internal/config"
	"nurse-agenda/internal/grpcweb"
	"nurse-agenda/internal/handler"
	"nurse-agenda/internal/middleware"
	"nurse-agenda/internal/model"
	"nurse-agenda/internal/slot"
	"nurse-agenda/internal/store"
	"nurse-agenda/internal/web"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "nurse-agenda",
		Short:        "Appointment agenda for a nursing practice",
		SilenceUsage: true,
	}
	root.AddCommand(serveCmd(), slotsCmd(), catalogCmd())
	return root
}

// setup loads configuration, pins time.Local to TIMEZONE and reads the
// catalog.
func setup() (*config.Config, *catalog.Catalog, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, nil, err
	}
	time.Local = loc

	cat := catalog.Default()
	if cfg.CatalogFile != "" {
		if cat, err = catalog.Load(cfg.CatalogFile); err != nil {
			return nil, nil, err
		}
	}
	return cfg, cat, nil
}

func newLogger(cfg *config.Config) zerolog.Logger {
	level, _ := cfg.Level()
	var logger zerolog.Logger
	if cfg.IsDev() {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	} else {
		logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	}
	return logger.Level(level)
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the gRPC and HTTP servers",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func runServer() error {
	cfg, cat, err := setup()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	st := store.New()
	sched := booking.New(st, cat,
		booking.WithHours(cfg.Hours()),
		booking.WithLogger(logger.With().Str("component", "booking").Logger()),
	)
	if cfg.SeedEvents > 0 {
		seeded, err := sched.Seed(context.Background(), cfg.SeedEvents, rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)))
		if err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		logger.Info().Int("count", len(seeded)).Msg("seeded demo appointments")
	}

	rl := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	defer rl.Close()

	srv := grpc.NewServer(
		grpc.ForceServerCodec(pb.Codec{}),
		grpc.ChainUnaryInterceptor(
			middleware.UnaryRecovery(logger),
			middleware.UnaryLogger(logger),
			middleware.RateLimit(rl),
		),
	)
	pb.RegisterAgendaServiceServer(srv, handler.New(sched, logger))

	lis, err := net.Listen("tcp", ":"+cfg.GRPCPort)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	go func() {
		logger.Info().Str("addr", lis.Addr().String()).Msg("grpc listening")
		if err := srv.Serve(lis); err != nil {
			logger.Error().Err(err).Msg("grpc server stopped")
		}
	}()

	bridge, err := grpcweb.New("localhost:"+cfg.GRPCPort,
		grpcweb.WithOrigins(cfg.CORSOrigins...),
		grpcweb.WithLogger(logger.With().Str("component", "grpcweb").Logger()),
	)
	if err != nil {
		srv.Stop()
		return fmt.Errorf("grpc-web bridge: %w", err)
	}
	defer bridge.Close()

	e := web.New(sched, bridge.Handler(), logger)
	go func() {
		addr := ":" + cfg.WebPort
		logger.Info().Str("addr", addr).Msg("http listening")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error().Err(err).Msg("http server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("http shutdown failed")
	}
	srv.GracefulStop()
	logger.Info().Msg("stopped")
	return nil
}

func slotsCmd() *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "slots",
		Short: "Print bookable start times for a date",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, cat, err := setup()
			if err != nil {
				return err
			}
			sched := booking.New(store.New(), cat, booking.WithHours(cfg.Hours()))
			return printSlots(cmd, sched, date)
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "date as YYYY-MM-DD (default today)")
	return cmd
}

func printSlots(cmd *cobra.Command, sched *booking.Scheduler, date string) error {
	day := sched.Today()
	if date != "" {
		d, err := time.ParseInLocation(model.DateLayout, date, time.Local)
		if err != nil {
			return fmt.Errorf("--date: want YYYY-MM-DD: %w", err)
		}
		day = d
	}

	out := cmd.OutOrStdout()
	if !slot.IsEligibleDate(day, sched.Today()) {
		fmt.Fprintf(out, "%s: not bookable\n", day.Format(model.DateLayout))
		return nil
	}
	times := sched.AvailableTimes(day)
	labels := make([]string, len(times))
	for i, c := range times {
		labels[i] = c.String()
	}
	fmt.Fprintf(out, "%s: %s\n", day.Format(model.DateLayout), strings.Join(labels, " "))
	return nil
}

func catalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Print the nurses and services on offer",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, cat, err := setup()
			if err != nil {
				return err
			}
			return printCatalog(cmd, cat)
		},
	}
}

func printCatalog(cmd *cobra.Command, c booking.Catalog) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NURSE\tNAME")
	for _, n := range c.ListNurses() {
		fmt.Fprintf(w, "%s\t%s\n", n.ID, n.Name)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "SERVICE\tNAME\tMINUTES")
	for _, s := range c.ListServices() {
		fmt.Fprintf(w, "%s\t%s\t%d\n", s.ID, s.Name, s.DurationMinutes)
	}
	return w.Flush()
}
