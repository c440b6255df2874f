package main

import (
	"context"
	"flag"
	"fmt"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go-price-calculator/config"
	"go-price-calculator/convert"
	"go-price-calculator/domain"
	"go-price-calculator/http"
	"go-price-calculator/pricing"
	"go-price-calculator/rates"
	"io"
	nhttp "net/http"
	"os"
)

func main() {
	serve := flag.Bool("serve", false, "serve the HTTP API instead of printing sample prices")
	demoFailure := flag.Bool("demo-failure", false, "finish the sample with a Usd conversion against an unreachable rate source")
	flag.Parse()

	dotenvErr := godotenv.Load()
	cfg := config.MustLoad()

	logger := newLogger(log.NewSyncWriter(os.Stderr), cfg.LogLevel)
	if dotenvErr != nil {
		level.Debug(logger).Log("msg", "no .env file loaded", "err", dotenvErr)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())

	var client rates.Client
	client = rates.NewLiveClient(cfg.RatesUrl)
	client = rates.NewInstrumentingClient(rates.NewMetrics(reg), client)
	client = rates.NewLoggingClient(level.Debug(log.With(logger, "component", "rates")), client)

	convertService := convert.NewService(client)
	convertService = convert.NewLoggingService(level.Debug(log.With(logger, "component", "convert")), convertService)

	if *serve {
		server := http.NewServer(convertService, reg, level.Info(log.With(logger, "component", "http")))
		level.Info(logger).Log("msg", "listening", "addr", cfg.HttpAddr)
		if err := nhttp.ListenAndServe(cfg.HttpAddr, server); err != nil {
			level.Error(logger).Log("msg", "http server stopped", "err", err)
			os.Exit(1)
		}
		return
	}

	var unreachable convert.Service
	if *demoFailure {
		unreachable = convert.NewLoggingService(
			level.Debug(log.With(logger, "component", "convert")),
			convert.NewService(rates.NewLiveClient(unreachableUrl)),
		)
	}

	if err := run(context.Background(), convertService, unreachable); err != nil {
		level.Error(logger).Log("msg", "conversion failed", "err", err)
		os.Exit(1)
	}
}

// unreachableUrl has no rate source listening
const unreachableUrl = "http://localhost"

// newLogger returns a logfmt logger dropping entries below levelName
func newLogger(w io.Writer, levelName string) log.Logger {
	logger := log.NewLogfmtLogger(w)
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
	return level.NewFilter(logger, level.Allow(level.ParseDefault(levelName, level.InfoValue())))
}

// run prints a sample price followed by its Krupnic and Usd conversions.
// A non-nil unreachable service is then asked for one more Usd conversion, whose error is returned.
func run(ctx context.Context, s convert.Service, unreachable convert.Service) error {
	fmt.Println(pricing.CalculatePriceFormatted(5, 345, ptr(pricing.MustPercentage(10))))

	for _, currency := range []domain.Currency{domain.Krupnic, domain.Usd} {
		converted, err := s.Convert(ctx, 20, currency)
		if err != nil {
			return fmt.Errorf("convert to [%v]: %w", currency, err)
		}
		fmt.Println(converted)
	}

	if unreachable != nil {
		converted, err := unreachable.Convert(ctx, 20, domain.Usd)
		if err != nil {
			return fmt.Errorf("convert to [%v]: %w", domain.Usd, err)
		}
		fmt.Println(converted)
	}
	return nil
}

func ptr[T any](v T) *T {
	return &v
}
