package state

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// CommitBatchInfo is the batch record carried inside the calldata of a
// commitBatches transaction. Field widths mirror the on-chain tuple exactly:
// uint64 counters stay uint64, uint256 values are big.Int, hashes are 32 bytes.
type CommitBatchInfo struct {
	BatchNumber                       uint64
	Timestamp                         uint64
	IndexRepeatedStorageChanges       uint64
	NewStateRoot                      common.Hash
	NumberOfLayer1Txs                 *big.Int
	PriorityOperationsHash            common.Hash
	BootloaderHeapInitialContentsHash common.Hash
	EventsQueueStateHash              common.Hash
	SystemLogs                        []byte
	TotalL2ToL1Pubdata                []byte
}

// StoredBatchInfo is the canonical record of a committed batch, assembled from
// the commit calldata, the BlockCommit event and the logs-root view call. It
// matches the StoredBatchInfo struct the verifier contract keeps per batch.
type StoredBatchInfo struct {
	BatchNumber                 uint64      `json:"batchNumber"`
	BatchHash                   common.Hash `json:"batchHash"`
	IndexRepeatedStorageChanges uint64      `json:"indexRepeatedStorageChanges"`
	NumberOfLayer1Txs           *big.Int    `json:"numberOfLayer1Txs"`
	PriorityOperationsHash      common.Hash `json:"priorityOperationsHash"`
	L2LogsTreeRoot              common.Hash `json:"l2LogsTreeRoot"`
	Timestamp                   uint64      `json:"timestamp"`
	Commitment                  common.Hash `json:"commitment"`
}

// BatchMetadata is the public view of a StoredBatchInfo handed to proof
// consumers. It is the stored record with the batch hash stripped.
type BatchMetadata struct {
	BatchNumber                 uint64      `json:"batchNumber"`
	IndexRepeatedStorageChanges uint64      `json:"indexRepeatedStorageChanges"`
	NumberOfLayer1Txs           *big.Int    `json:"numberOfLayer1Txs"`
	PriorityOperationsHash      common.Hash `json:"priorityOperationsHash"`
	L2LogsTreeRoot              common.Hash `json:"l2LogsTreeRoot"`
	Timestamp                   uint64      `json:"timestamp"`
	Commitment                  common.Hash `json:"commitment"`
}

// Metadata strips the batch hash from the stored record.
func (s *StoredBatchInfo) Metadata() BatchMetadata {
	return BatchMetadata{
		BatchNumber:                 s.BatchNumber,
		IndexRepeatedStorageChanges: s.IndexRepeatedStorageChanges,
		NumberOfLayer1Txs:           s.NumberOfLayer1Txs,
		PriorityOperationsHash:      s.PriorityOperationsHash,
		L2LogsTreeRoot:              s.L2LogsTreeRoot,
		Timestamp:                   s.Timestamp,
		Commitment:                  s.Commitment,
	}
}

// AssembleStoredBatchInfo merges the decoded commit record, the commitment
// located in the BlockCommit event and the logs-root returned by the L1 view
// call into the canonical stored record. The batch hash of a stored record is
// the new state root the batch was committed with. Pure, no I/O.
func AssembleStoredBatchInfo(commit *CommitBatchInfo, commitment, l2LogsTreeRoot common.Hash) (*StoredBatchInfo, error) {
	if commitment == (common.Hash{}) {
		return nil, ErrEmptyCommitment
	}
	if l2LogsTreeRoot == (common.Hash{}) {
		return nil, ErrEmptyLogsRoot
	}
	return &StoredBatchInfo{
		BatchNumber:                 commit.BatchNumber,
		BatchHash:                   commit.NewStateRoot,
		IndexRepeatedStorageChanges: commit.IndexRepeatedStorageChanges,
		NumberOfLayer1Txs:           commit.NumberOfLayer1Txs,
		PriorityOperationsHash:      commit.PriorityOperationsHash,
		L2LogsTreeRoot:              l2LogsTreeRoot,
		Timestamp:                   commit.Timestamp,
		Commitment:                  commitment,
	}, nil
}

// BatchDetails is the lifecycle record the L2 node keeps per L1 batch,
// returned by zks_getL1BatchDetails. Transaction hashes are nil until the
// corresponding lifecycle step happened on L1.
type BatchDetails struct {
	Number         uint64       `json:"number"`
	Timestamp      uint64       `json:"timestamp"`
	RootHash       *common.Hash `json:"rootHash"`
	Status         string       `json:"status"`
	CommitTxHash   *common.Hash `json:"commitTxHash"`
	CommittedAt    *time.Time   `json:"committedAt"`
	ProveTxHash    *common.Hash `json:"proveTxHash"`
	ProvenAt       *time.Time   `json:"provenAt"`
	ExecuteTxHash  *common.Hash `json:"executeTxHash"`
	ExecutedAt     *time.Time   `json:"executedAt"`
	L1TxCount      uint64       `json:"l1TxCount"`
	L2TxCount      uint64       `json:"l2TxCount"`
	L1GasPrice     *big.Int     `json:"l1GasPrice"`
	L2FairGasPrice *big.Int     `json:"l2FairGasPrice"`
}

// IsCommitted reports whether the batch has a known commit transaction.
func (d *BatchDetails) IsCommitted() bool {
	return d.CommitTxHash != nil
}

// IsProved reports whether the batch has a known prove transaction.
func (d *BatchDetails) IsProved() bool {
	return d.ProveTxHash != nil
}
