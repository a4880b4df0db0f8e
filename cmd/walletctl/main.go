package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/ashquarry/binancewallet/config"
	"github.com/ashquarry/binancewallet/wallet"
)

var (
	configPath string
	timeout    time.Duration
	verbose    bool
)

const defaultTimeout = 30 * time.Second

func jsonOutput(in any) {
	j, err := json.MarshalIndent(in, "", " ")
	if err != nil {
		return
	}
	fmt.Println(string(j))
}

// setupClient loads the config, unlocks the credential vault when one is
// configured, and returns a ready wallet client
func setupClient() (*wallet.Client, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.VaultFile != "" {
		passphrase := os.Getenv("BINANCEWALLET_VAULT_PASSPHRASE")
		if err := cfg.UnlockVault(passphrase); err != nil {
			return nil, err
		}
	}

	logger := zap.NewNop()
	if verbose || cfg.Verbose {
		logger, err = zap.NewProduction()
		if err != nil {
			return nil, err
		}
	}

	clientTimeout := cfg.Timeout
	if timeout > 0 {
		clientTimeout = timeout
	}

	return wallet.New(wallet.Options{
		Key:        cfg.Credentials.Key,
		Secret:     cfg.Credentials.Secret,
		BaseURL:    cfg.BaseURL,
		RecvWindow: cfg.RecvWindow,
		USVariant:  cfg.USVariant,
		Verbose:    verbose || cfg.Verbose,
		HTTPClient: &http.Client{Timeout: clientTimeout},
		Logger:     logger,
	})
}

func main() {
	app := cli.NewApp()
	app.Name = "walletctl"
	app.Usage = "command line interface for the exchange wallet API"
	app.EnableBashCompletion = true
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Usage:       "path to the JSON config file",
			Destination: &configPath,
		},
		&cli.DurationFlag{
			Name:        "timeout",
			Value:       defaultTimeout,
			Usage:       "the request timeout value",
			Destination: &timeout,
		},
		&cli.BoolFlag{
			Name:        "verbose",
			Usage:       "log request and response detail",
			Destination: &verbose,
		},
	}
	app.Commands = []*cli.Command{
		statusCommand,
		coinsCommand,
		balanceCommand,
		depositsCommand,
		withdrawalsCommand,
		historyCommand,
		withdrawCommand,
		addressCommand,
		feesCommand,
		permissionsCommand,
		dustCommand,
		dividendsCommand,
		transferCommand,
		snapshotCommand,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
