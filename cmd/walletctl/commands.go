package main

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v2"

	"github.com/ashquarry/binancewallet/wallet"
	"github.com/ashquarry/binancewallet/withdraw"
)

var statusCommand = &cli.Command{
	Name:  "status",
	Usage: "get the exchange system status and account standing",
	Action: func(c *cli.Context) error {
		client, err := setupClient()
		if err != nil {
			return err
		}
		system, err := client.SystemStatus(c.Context)
		if err != nil {
			return err
		}
		account, err := client.AccountStatus(c.Context)
		if err != nil {
			return err
		}
		jsonOutput(map[string]any{"system": system, "account": account})
		return nil
	},
}

var coinsCommand = &cli.Command{
	Name:  "coins",
	Usage: "list coins available for deposit and withdrawal",
	Action: func(c *cli.Context) error {
		client, err := setupClient()
		if err != nil {
			return err
		}
		coins, err := client.AllCoinsInfo(c.Context)
		if err != nil {
			return err
		}
		jsonOutput(coins)
		return nil
	},
}

var balanceCommand = &cli.Command{
	Name:  "balance",
	Usage: "get funding wallet balances",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "asset", Usage: "restrict to a single asset"},
		&cli.BoolFlag{Name: "btc", Usage: "include BTC valuation"},
	},
	Action: func(c *cli.Context) error {
		client, err := setupClient()
		if err != nil {
			return err
		}
		assets, err := client.FundingWallet(c.Context, c.String("asset"), c.Bool("btc"))
		if err != nil {
			return err
		}
		jsonOutput(assets)
		return nil
	},
}

var depositsCommand = &cli.Command{
	Name:  "deposits",
	Usage: "get recent deposit history (single 90-day window)",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "coin"},
		&cli.StringFlag{Name: "status"},
		&cli.IntFlag{Name: "limit"},
	},
	Action: func(c *cli.Context) error {
		client, err := setupClient()
		if err != nil {
			return err
		}
		records, err := client.DepositHistory(c.Context, wallet.DepositHistoryQuery{
			Coin:   c.String("coin"),
			Status: c.String("status"),
			Limit:  c.Int("limit"),
		})
		if err != nil {
			return err
		}
		jsonOutput(records)
		return nil
	},
}

var withdrawalsCommand = &cli.Command{
	Name:  "withdrawals",
	Usage: "get recent withdrawal history (single 90-day window)",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "coin"},
		&cli.StringFlag{Name: "status"},
		&cli.IntFlag{Name: "limit"},
	},
	Action: func(c *cli.Context) error {
		client, err := setupClient()
		if err != nil {
			return err
		}
		records, err := client.WithdrawalHistory(c.Context, wallet.WithdrawalHistoryQuery{
			Coin:   c.String("coin"),
			Status: c.String("status"),
			Limit:  c.Int("limit"),
		})
		if err != nil {
			return err
		}
		jsonOutput(records)
		return nil
	},
}

var historyCommand = &cli.Command{
	Name:  "history",
	Usage: "collect deposit or withdrawal history over an arbitrary lookback",
	Subcommands: []*cli.Command{
		{
			Name:  "deposits",
			Usage: "windowed deposit history",
			Flags: historyFlags,
			Action: func(c *cli.Context) error {
				client, err := setupClient()
				if err != nil {
					return err
				}
				batches, err := client.DepositHistoryWindowed(c.Context,
					wallet.DepositHistoryQuery{Coin: c.String("coin")},
					time.Time{}, c.Duration("lookback"))
				if err != nil {
					return err
				}
				jsonOutput(batches)
				return nil
			},
		},
		{
			Name:  "withdrawals",
			Usage: "windowed withdrawal history",
			Flags: historyFlags,
			Action: func(c *cli.Context) error {
				client, err := setupClient()
				if err != nil {
					return err
				}
				batches, err := client.WithdrawalHistoryWindowed(c.Context,
					wallet.WithdrawalHistoryQuery{Coin: c.String("coin")},
					time.Time{}, c.Duration("lookback"))
				if err != nil {
					return err
				}
				jsonOutput(batches)
				return nil
			},
		},
	},
}

var historyFlags = []cli.Flag{
	&cli.StringFlag{Name: "coin"},
	&cli.DurationFlag{
		Name:  "lookback",
		Usage: "total lookback duration, e.g. 2160h for 90 days (default 90 days)",
	},
}

var withdrawCommand = &cli.Command{
	Name:  "withdraw",
	Usage: "submit a withdrawal",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "coin", Required: true},
		&cli.StringFlag{Name: "address", Required: true},
		&cli.StringFlag{Name: "amount", Required: true},
		&cli.StringFlag{Name: "network"},
		&cli.StringFlag{Name: "tag", Usage: "secondary address identifier (memo)"},
	},
	Action: func(c *cli.Context) error {
		client, err := setupClient()
		if err != nil {
			return err
		}
		amount, err := decimal.NewFromString(c.String("amount"))
		if err != nil {
			return err
		}
		req := &withdraw.Request{
			Coin:       c.String("coin"),
			Address:    c.String("address"),
			Amount:     amount,
			Network:    c.String("network"),
			AddressTag: c.String("tag"),
		}
		if err := req.GenerateOrderID(); err != nil {
			return err
		}
		id, err := client.Withdraw(c.Context, req)
		if err != nil {
			return err
		}
		jsonOutput(map[string]string{"id": id, "withdrawOrderId": req.WithdrawOrderID})
		return nil
	},
}

var addressCommand = &cli.Command{
	Name:  "address",
	Usage: "get the deposit address for a coin",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "coin", Required: true},
		&cli.StringFlag{Name: "network"},
	},
	Action: func(c *cli.Context) error {
		client, err := setupClient()
		if err != nil {
			return err
		}
		addr, err := client.DepositAddress(c.Context, c.String("coin"), c.String("network"))
		if err != nil {
			return err
		}
		jsonOutput(addr)
		return nil
	},
}

var feesCommand = &cli.Command{
	Name:  "fees",
	Usage: "get trade fees",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "symbol"},
	},
	Action: func(c *cli.Context) error {
		client, err := setupClient()
		if err != nil {
			return err
		}
		fees, err := client.TradeFees(c.Context, c.String("symbol"))
		if err != nil {
			return err
		}
		jsonOutput(fees)
		return nil
	},
}

var permissionsCommand = &cli.Command{
	Name:  "permissions",
	Usage: "get the API key's permission set",
	Action: func(c *cli.Context) error {
		client, err := setupClient()
		if err != nil {
			return err
		}
		perms, err := client.APIKeyPermissions(c.Context)
		if err != nil {
			return err
		}
		jsonOutput(perms)
		return nil
	},
}

var dustCommand = &cli.Command{
	Name:  "dust",
	Usage: "inspect and convert dust balances",
	Subcommands: []*cli.Command{
		{
			Name:  "log",
			Usage: "past dust conversions",
			Action: func(c *cli.Context) error {
				client, err := setupClient()
				if err != nil {
					return err
				}
				dustLog, err := client.DustLog(c.Context, time.Time{}, time.Time{})
				if err != nil {
					return err
				}
				jsonOutput(dustLog)
				return nil
			},
		},
		{
			Name:  "convertible",
			Usage: "assets convertible to BNB",
			Action: func(c *cli.Context) error {
				client, err := setupClient()
				if err != nil {
					return err
				}
				assets, err := client.ConvertibleAssets(c.Context)
				if err != nil {
					return err
				}
				jsonOutput(assets)
				return nil
			},
		},
		{
			Name:      "convert",
			Usage:     "convert the named assets to BNB",
			ArgsUsage: "ASSET [ASSET…]",
			Action: func(c *cli.Context) error {
				client, err := setupClient()
				if err != nil {
					return err
				}
				result, err := client.DustTransfer(c.Context, c.Args().Slice())
				if err != nil {
					return err
				}
				jsonOutput(result)
				return nil
			},
		},
	},
}

var dividendsCommand = &cli.Command{
	Name:  "dividends",
	Usage: "get asset dividend records",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "asset"},
		&cli.IntFlag{Name: "limit"},
	},
	Action: func(c *cli.Context) error {
		client, err := setupClient()
		if err != nil {
			return err
		}
		dividends, err := client.AssetDividends(c.Context, wallet.AssetDividendQuery{
			Asset: c.String("asset"),
			Limit: c.Int("limit"),
		})
		if err != nil {
			return err
		}
		jsonOutput(dividends)
		return nil
	},
}

var transferCommand = &cli.Command{
	Name:  "transfer",
	Usage: "move an asset between wallets",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "type", Required: true, Usage: "e.g. FUNDING_MAIN"},
		&cli.StringFlag{Name: "asset", Required: true},
		&cli.StringFlag{Name: "amount", Required: true},
		&cli.StringFlag{Name: "from-symbol"},
		&cli.StringFlag{Name: "to-symbol"},
	},
	Action: func(c *cli.Context) error {
		client, err := setupClient()
		if err != nil {
			return err
		}
		amount, err := decimal.NewFromString(c.String("amount"))
		if err != nil {
			return err
		}
		resp, err := client.UniversalTransfer(c.Context, wallet.UniversalTransfer{
			Type:       wallet.TransferType(c.String("type")),
			Asset:      c.String("asset"),
			Amount:     amount,
			FromSymbol: c.String("from-symbol"),
			ToSymbol:   c.String("to-symbol"),
		})
		if err != nil {
			return err
		}
		jsonOutput(resp)
		return nil
	},
}

var snapshotCommand = &cli.Command{
	Name:  "snapshot",
	Usage: "get daily account snapshots",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "type", Value: "SPOT", Usage: "SPOT, MARGIN or FUTURES"},
		&cli.IntFlag{Name: "limit"},
	},
	Action: func(c *cli.Context) error {
		client, err := setupClient()
		if err != nil {
			return err
		}
		snap, err := client.DailyAccountSnapshot(c.Context, wallet.AccountSnapshotQuery{
			Type:  c.String("type"),
			Limit: c.Int("limit"),
		})
		if err != nil {
			return err
		}
		jsonOutput(snap)
		return nil
	},
}
