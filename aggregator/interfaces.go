package aggregator

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/zksync-community/storage-proofs/state"
)

// Consumer interfaces required by the package.

// etherman contains the methods required to read batch commitments from L1.
type etherman interface {
	GetTx(ctx context.Context, txHash common.Hash) (*types.Transaction, bool, error)
	GetTxReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	DecodeCommitCalldata(data []byte, batchNumber uint64) (*state.CommitBatchInfo, error)
	FindCommitEvent(logs []*types.Log, batchNumber uint64) (common.Hash, error)
	GetL2LogsRootHash(ctx context.Context, batchNumber uint64) (common.Hash, error)
}

// l2Client contains the methods required to interact with the L2 node.
type l2Client interface {
	GetL1BatchDetails(ctx context.Context, batchNumber uint64) (*state.BatchDetails, error)
	GetLatestL1BatchNumber(ctx context.Context) (uint64, error)
	GetStorageProof(ctx context.Context, account common.Address, storageKeys []common.Hash, batchNumber uint64) (*state.StorageProofResult, error)
}
