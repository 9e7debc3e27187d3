package main

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/junioraw/irontrade-alpaca/internal/alpaca"
	appcfg "github.com/junioraw/irontrade-alpaca/internal/config"
	"github.com/junioraw/irontrade-alpaca/internal/logger"
	"github.com/junioraw/irontrade-alpaca/internal/trading"
)

const probeTimeout = 30 * time.Second

func main() {
	_ = godotenv.Load()

	cfgPath := os.Getenv("IRONTRADE_CONFIG")
	explicit := cfgPath != ""
	if !explicit {
		cfgPath = "configs/config.yaml"
	}
	cfg, err := appcfg.Load(cfgPath)
	switch {
	case err == nil:
	case !explicit && errors.Is(err, fs.ErrNotExist):
		// No file next to the binary; credentials come from the environment.
		cfg = appcfg.Default()
	default:
		log.Fatalf("loading config failed: %v", err)
	}

	logFile, err := logger.TeeToFile(cfg.App.LogPath)
	if err != nil {
		log.Fatalf("initializing log file failed: %v", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}
	logger.SetLevel(cfg.App.LogLevel)

	client, err := alpaca.New(alpaca.Config{
		APIKey:      cfg.Alpaca.APIKey,
		APISecret:   cfg.Alpaca.APISecret,
		BaseURL:     cfg.Alpaca.BaseURL,
		HTTPTimeout: cfg.Alpaca.Timeout(),
		RetryLimit:  cfg.Alpaca.RetryLimit,
		RetryDelay:  cfg.Alpaca.RetryDelay(),
	})
	if err != nil {
		log.Fatalf("initializing alpaca adapter failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()
	if err := probe(ctx, client); err != nil {
		log.Fatalf("account probe failed: %v", err)
	}
}

// probe runs the read-only operations once, concurrently, and logs what the
// account looks like. It never places an order.
func probe(ctx context.Context, client trading.Client) error {
	symbol := strings.TrimSpace(os.Getenv("IRONTRADE_PROBE_SYMBOL"))
	if symbol == "" {
		symbol = "BTCUSD"
	}

	var eg errgroup.Group
	eg.Go(func() error {
		resp, err := client.GetCash(ctx)
		if err != nil {
			return err
		}
		logger.Infof("cash balance: %s", resp.Cash)
		return nil
	})
	eg.Go(func() error {
		resp, err := client.GetOrders(ctx)
		if err != nil {
			return err
		}
		logger.Infof("orders on account: %d", len(resp.Orders))
		for _, o := range resp.Orders {
			logger.Debugf("order %s: %s %s %s status=%s", o.OrderID, o.AssetSymbol, o.Type, o.Amount, o.Status)
		}
		return nil
	})
	eg.Go(func() error {
		resp, err := client.GetOpenPosition(ctx, symbol)
		if errors.Is(err, trading.ErrNoOpenPosition) {
			logger.Infof("no open position for %s", symbol)
			return nil
		}
		if err != nil {
			return err
		}
		logger.Infof("position %s: qty=%s value=%s", resp.Position.AssetSymbol, resp.Position.Quantity, resp.Position.MarketValue)
		return nil
	})
	return eg.Wait()
}
