package l2client

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"

	"github.com/zksync-community/storage-proofs/log"
	"github.com/zksync-community/storage-proofs/state"
)

// Config represents the configuration of the l2client.
type Config struct {
	// URL is the endpoint of the L2 node.
	URL string `mapstructure:"URL"`
}

// Client talks to the L2 node over its extended JSON-RPC namespace: batch
// lifecycle details, latest batch number and merkle storage proofs.
type Client struct {
	rpc *rpc.Client
}

// NewClient creates a new client connected to the given L2 node.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	rpcClient, err := rpc.DialContext(ctx, cfg.URL)
	if err != nil {
		log.Errorf("error connecting to %s: %+v", cfg.URL, err)
		return nil, err
	}
	return &Client{rpc: rpcClient}, nil
}

// Close closes the underlying RPC connection.
func (c *Client) Close() {
	c.rpc.Close()
}

// GetL1BatchDetails returns the lifecycle record of the given batch: its
// commit/prove/execute transaction hashes on L1, root hash and timestamps.
func (c *Client) GetL1BatchDetails(ctx context.Context, batchNumber uint64) (*state.BatchDetails, error) {
	var details *state.BatchDetails
	err := c.rpc.CallContext(ctx, &details, "zks_getL1BatchDetails", batchNumber)
	if err != nil {
		return nil, fmt.Errorf("error getting details for batch %d: %w", batchNumber, err)
	}
	if details == nil {
		return nil, fmt.Errorf("batch %d is unknown to the L2 node", batchNumber)
	}
	return details, nil
}

// GetLatestL1BatchNumber returns the number of the latest L1 batch of the L2
// chain.
func (c *Client) GetLatestL1BatchNumber(ctx context.Context) (uint64, error) {
	var latest hexutil.Uint64
	err := c.rpc.CallContext(ctx, &latest, "zks_L1BatchNumber")
	if err != nil {
		return 0, fmt.Errorf("error getting the latest batch number: %w", err)
	}
	return uint64(latest), nil
}

// GetStorageProof issues a single merkle-proof query for the given account and
// storage keys at the given batch. The node answers with the queried account
// and one proof per key; sibling hashes are passed through in the exact order
// received. Failures are wrapped as state.ErrProofFetch with the cause
// preserved.
func (c *Client) GetStorageProof(ctx context.Context, account common.Address, storageKeys []common.Hash, batchNumber uint64) (*state.StorageProofResult, error) {
	var result *state.StorageProofResult
	err := c.rpc.CallContext(ctx, &result, "zks_getProof", account, storageKeys, batchNumber)
	if err != nil {
		return nil, fmt.Errorf("%w: account %s, batch %d: %w", state.ErrProofFetch, account, batchNumber, err)
	}
	if result == nil {
		return nil, fmt.Errorf("%w: account %s, batch %d: node returned no result", state.ErrProofFetch, account, batchNumber)
	}
	log.Debugf("fetched %d storage proofs for account %s at batch %d", len(result.StorageProof), account, batchNumber)
	return result, nil
}
