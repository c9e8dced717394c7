package state

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCommit() *CommitBatchInfo {
	return &CommitBatchInfo{
		BatchNumber:                 42,
		Timestamp:                   1680000000,
		IndexRepeatedStorageChanges: 420,
		NewStateRoot:                common.HexToHash("0x090bcaf734c4f06c93954a827b45a6e8c67b8e0fd1e0a35a1c5982d6961828f9"),
		NumberOfLayer1Txs:           big.NewInt(3),
		PriorityOperationsHash:      common.HexToHash("0x17c04c3760510b48c6012742c540a81aba4bca2f78b9d14bfd2f123e2e53ea3e"),
	}
}

func TestAssembleStoredBatchInfo(t *testing.T) {
	commit := testCommit()
	commitment := common.HexToHash("0x2e53ea3e17c04c3760510b48c6012742c540a81aba4bca2f78b9d14bfd2f123e")
	l2LogsTreeRoot := common.HexToHash("0x37b79edd8219a33948e82ab03c2e062fe2e11631ef53ce40796717bf3753d044")

	stored, err := AssembleStoredBatchInfo(commit, commitment, l2LogsTreeRoot)
	require.NoError(t, err)

	assert.Equal(t, commit.BatchNumber, stored.BatchNumber)
	// the batch hash of a stored record is the committed state root
	assert.Equal(t, commit.NewStateRoot, stored.BatchHash)
	assert.Equal(t, commit.IndexRepeatedStorageChanges, stored.IndexRepeatedStorageChanges)
	assert.Equal(t, commit.NumberOfLayer1Txs, stored.NumberOfLayer1Txs)
	assert.Equal(t, commit.PriorityOperationsHash, stored.PriorityOperationsHash)
	assert.Equal(t, l2LogsTreeRoot, stored.L2LogsTreeRoot)
	assert.Equal(t, commit.Timestamp, stored.Timestamp)
	assert.Equal(t, commitment, stored.Commitment)
}

func TestAssembleStoredBatchInfoEmptyCommitment(t *testing.T) {
	_, err := AssembleStoredBatchInfo(testCommit(), common.Hash{}, common.HexToHash("0x01"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyCommitment)
}

func TestAssembleStoredBatchInfoEmptyLogsRoot(t *testing.T) {
	_, err := AssembleStoredBatchInfo(testCommit(), common.HexToHash("0x01"), common.Hash{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyLogsRoot)
}

func TestMetadataStripsBatchHash(t *testing.T) {
	stored, err := AssembleStoredBatchInfo(testCommit(), common.HexToHash("0x01"), common.HexToHash("0x02"))
	require.NoError(t, err)

	metadata := stored.Metadata()
	assert.Equal(t, stored.BatchNumber, metadata.BatchNumber)
	assert.Equal(t, stored.Commitment, metadata.Commitment)
	assert.Equal(t, stored.L2LogsTreeRoot, metadata.L2LogsTreeRoot)

	out, err := json.Marshal(metadata)
	require.NoError(t, err)
	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(out, &fields))
	assert.NotContains(t, fields, "batchHash")

	out, err = json.Marshal(stored)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(out, &fields))
	assert.Contains(t, fields, "batchHash")
}

func TestBatchDetailsLifecycle(t *testing.T) {
	commitTx := common.HexToHash("0x01")
	proveTx := common.HexToHash("0x02")

	uncommitted := BatchDetails{Number: 42}
	assert.False(t, uncommitted.IsCommitted())
	assert.False(t, uncommitted.IsProved())

	committed := BatchDetails{Number: 42, CommitTxHash: &commitTx}
	assert.True(t, committed.IsCommitted())
	assert.False(t, committed.IsProved())

	proved := BatchDetails{Number: 42, CommitTxHash: &commitTx, ProveTxHash: &proveTx}
	assert.True(t, proved.IsCommitted())
	assert.True(t, proved.IsProved())
}
