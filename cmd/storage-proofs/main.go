package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"github.com/urfave/cli/v2"

	"github.com/zksync-community/storage-proofs/aggregator"
	"github.com/zksync-community/storage-proofs/config"
	"github.com/zksync-community/storage-proofs/etherman"
	"github.com/zksync-community/storage-proofs/l2client"
	"github.com/zksync-community/storage-proofs/log"
)

const appName = "storage-proofs"

const (
	flagAddress = "address"
	flagKey     = "key"
	flagBatch   = "batch"
)

func main() {
	app := cli.NewApp()
	app.Name = appName
	app.Usage = "fetch verifiable storage proof bundles for committed L1 batches"
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:  config.FlagNetwork,
			Usage: fmt.Sprintf("preconfigured network to use %v", config.Networks()),
			Value: "mainnet",
		},
		&cli.StringFlag{
			Name:  config.FlagCfg,
			Usage: "configuration file",
		},
	}
	app.Commands = []*cli.Command{
		{
			Name:   "proof",
			Usage:  "fetch the storage proofs for an account and key set, with batch metadata",
			Action: getProofs,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     flagAddress,
					Usage:    "account to prove storage for",
					Required: true,
				},
				&cli.StringSliceFlag{
					Name:     flagKey,
					Usage:    "storage key to prove, repeatable",
					Required: true,
				},
				&cli.Uint64Flag{
					Name:  flagBatch,
					Usage: "L1 batch number to prove at (default: latest minus the configured lag)",
				},
			},
		},
		{
			Name:   "batch",
			Usage:  "fetch the stored record of a committed and proved batch",
			Action: getStoredBatchInfo,
			Flags: []cli.Flag{
				&cli.Uint64Flag{
					Name:     flagBatch,
					Usage:    "L1 batch number",
					Required: true,
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "\nError: %v\n", err)
		os.Exit(1)
	}
}

func newAggregator(cliCtx *cli.Context) (aggregator.Aggregator, error) {
	cfg, err := config.Load(cliCtx)
	if err != nil {
		return aggregator.Aggregator{}, err
	}
	log.Init(cfg.Log)

	etherMan, err := etherman.NewClient(cfg.Etherman)
	if err != nil {
		return aggregator.Aggregator{}, err
	}
	l2, err := l2client.NewClient(cliCtx.Context, cfg.L2Client)
	if err != nil {
		return aggregator.Aggregator{}, err
	}
	return aggregator.New(cfg.Aggregator, etherMan, l2)
}

func getProofs(cliCtx *cli.Context) error {
	agg, err := newAggregator(cliCtx)
	if err != nil {
		return err
	}

	account := common.HexToAddress(cliCtx.String(flagAddress))
	keys := make([]common.Hash, 0, len(cliCtx.StringSlice(flagKey)))
	for _, key := range cliCtx.StringSlice(flagKey) {
		keys = append(keys, common.HexToHash(key))
	}
	var batchNumber *uint64
	if cliCtx.IsSet(flagBatch) {
		batch := cliCtx.Uint64(flagBatch)
		batchNumber = &batch
	}

	bundle, err := agg.GetProofs(cliCtx.Context, account, keys, batchNumber)
	if err != nil {
		return err
	}
	return printJSON(bundle)
}

func getStoredBatchInfo(cliCtx *cli.Context) error {
	agg, err := newAggregator(cliCtx)
	if err != nil {
		return err
	}
	stored, err := agg.GetStoredBatchInfo(cliCtx.Context, cliCtx.Uint64(flagBatch))
	if err != nil {
		return err
	}
	return printJSON(stored)
}

func printJSON(v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
