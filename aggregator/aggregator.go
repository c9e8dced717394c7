package aggregator

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/sync/errgroup"

	"github.com/zksync-community/storage-proofs/log"
	"github.com/zksync-community/storage-proofs/state"
)

// Aggregator resolves storage proof bundles: for a given batch it correlates
// the commit transaction calldata, the BlockCommit event in its receipt and
// the logs-root view call on L1 with the storage proofs served by the L2 node.
//
// Every call resolves from scratch against the network; nothing is cached and
// no state is shared between calls beyond the read-only clients.
type Aggregator struct {
	cfg Config

	Etherman etherman
	L2Client l2Client
}

// New creates a new aggregator.
func New(cfg Config, etherman etherman, l2Client l2Client) (Aggregator, error) {
	if cfg.BatchLag == 0 {
		cfg.BatchLag = DefaultBatchLag
	}
	return Aggregator{
		cfg:      cfg,
		Etherman: etherman,
		L2Client: l2Client,
	}, nil
}

// GetStoredBatchInfo reconstructs the canonical stored record of a batch. The
// batch must be proved: a missing commit transaction fails with
// state.ErrBatchNotCommitted and a missing prove transaction with
// state.ErrBatchNotProved, both before anything is fetched from L1.
func (a *Aggregator) GetStoredBatchInfo(ctx context.Context, batchNumber uint64) (*state.StoredBatchInfo, error) {
	details, err := a.L2Client.GetL1BatchDetails(ctx, batchNumber)
	if err != nil {
		return nil, err
	}
	if !details.IsCommitted() {
		return nil, fmt.Errorf("%w: batch %d", state.ErrBatchNotCommitted, batchNumber)
	}
	if !details.IsProved() {
		return nil, fmt.Errorf("%w: batch %d", state.ErrBatchNotProved, batchNumber)
	}

	commitTxHash := *details.CommitTxHash
	log.Debugf("resolving batch %d from commit tx %s", batchNumber, commitTxHash)

	tx, _, err := a.Etherman.GetTx(ctx, commitTxHash)
	if err != nil {
		return nil, fmt.Errorf("error getting commit tx %s: %w", commitTxHash, err)
	}
	receipt, err := a.Etherman.GetTxReceipt(ctx, commitTxHash)
	if err != nil {
		return nil, err
	}

	commit, err := a.Etherman.DecodeCommitCalldata(tx.Data(), batchNumber)
	if err != nil {
		return nil, err
	}
	commitment, err := a.Etherman.FindCommitEvent(receipt.Logs, batchNumber)
	if err != nil {
		return nil, err
	}
	l2LogsTreeRoot, err := a.Etherman.GetL2LogsRootHash(ctx, batchNumber)
	if err != nil {
		return nil, err
	}

	return state.AssembleStoredBatchInfo(commit, commitment, l2LogsTreeRoot)
}

// GetProofs returns the storage proofs for the given account and keys
// together with the metadata of the batch they were resolved at. A nil
// batchNumber selects the latest L1 batch minus the configured lag. The
// stored-record resolution and the proof fetch are independent and run
// concurrently.
func (a *Aggregator) GetProofs(ctx context.Context, account common.Address, storageKeys []common.Hash, batchNumber *uint64) (*state.ProofBundle, error) {
	batch, err := a.resolveBatchNumber(ctx, batchNumber)
	if err != nil {
		return nil, err
	}

	var (
		stored *state.StoredBatchInfo
		result *state.StorageProofResult
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stored, err = a.GetStoredBatchInfo(gCtx, batch)
		return err
	})
	g.Go(func() error {
		var err error
		result, err = a.L2Client.GetStorageProof(gCtx, account, storageKeys, batch)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &state.ProofBundle{
		Metadata: stored.Metadata(),
		Account:  result.Address,
		Proofs:   result.StorageProof,
	}, nil
}

// GetProof is the single-key convenience form of GetProofs.
func (a *Aggregator) GetProof(ctx context.Context, account common.Address, storageKey common.Hash, batchNumber *uint64) (*state.SingleProofBundle, error) {
	bundle, err := a.GetProofs(ctx, account, []common.Hash{storageKey}, batchNumber)
	if err != nil {
		return nil, err
	}
	if len(bundle.Proofs) == 0 {
		return nil, fmt.Errorf("%w: account %s, key %s: node returned no proof", state.ErrProofFetch, account, storageKey)
	}
	return &state.SingleProofBundle{
		Metadata: bundle.Metadata,
		Account:  bundle.Account,
		Proof:    bundle.Proofs[0],
	}, nil
}

func (a *Aggregator) resolveBatchNumber(ctx context.Context, batchNumber *uint64) (uint64, error) {
	if batchNumber != nil {
		return *batchNumber, nil
	}
	latest, err := a.L2Client.GetLatestL1BatchNumber(ctx)
	if err != nil {
		return 0, err
	}
	if latest < a.cfg.BatchLag {
		return 0, fmt.Errorf("latest batch %d is below the configured batch lag %d", latest, a.cfg.BatchLag)
	}
	batch := latest - a.cfg.BatchLag
	log.Debugf("no batch number given, defaulting to %d (latest %d - lag %d)", batch, latest, a.cfg.BatchLag)
	return batch, nil
}
