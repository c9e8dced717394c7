package l2client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zksync-community/storage-proofs/log"
	"github.com/zksync-community/storage-proofs/state"
)

func init() {
	log.Init(log.Config{
		Level:   "debug",
		Outputs: []string{"stderr"},
	})
}

type rpcRequest struct {
	ID     json.RawMessage   `json:"id"`
	Method string            `json:"method"`
	Params []json.RawMessage `json:"params"`
}

// newTestServer serves a minimal JSON-RPC endpoint backed by the given
// per-method responses. A response is raw JSON for the result field, or an
// error object when it starts with the "error:" marker.
func newTestServer(t *testing.T, responses map[string]string) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req rpcRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		w.Header().Set("Content-Type", "application/json")
		response, ok := responses[req.Method]
		if !ok {
			_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":` + string(req.ID) + `,"error":{"code":-32601,"message":"method not found"}}`))
			return
		}
		if response == "error" {
			_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":` + string(req.ID) + `,"error":{"code":-32000,"message":"internal error"}}`))
			return
		}
		_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":` + string(req.ID) + `,"result":` + response + `}`))
	}))
	t.Cleanup(srv.Close)

	client, err := NewClient(context.Background(), Config{URL: srv.URL})
	require.NoError(t, err)
	t.Cleanup(client.Close)
	return client
}

func TestGetL1BatchDetails(t *testing.T) {
	client := newTestServer(t, map[string]string{
		"zks_getL1BatchDetails": `{
			"number": 42,
			"timestamp": 1680000000,
			"rootHash": "0x090bcaf734c4f06c93954a827b45a6e8c67b8e0fd1e0a35a1c5982d6961828f9",
			"status": "verified",
			"commitTxHash": "0x17c04c3760510b48c6012742c540a81aba4bca2f78b9d14bfd2f123e2e53ea3e",
			"committedAt": "2023-03-28T12:00:00Z",
			"proveTxHash": "0x37b79edd8219a33948e82ab03c2e062fe2e11631ef53ce40796717bf3753d044",
			"provenAt": "2023-03-28T13:00:00Z",
			"executeTxHash": null,
			"executedAt": null,
			"l1TxCount": 3,
			"l2TxCount": 150,
			"l1GasPrice": 25000000000,
			"l2FairGasPrice": 250000000
		}`,
	})

	details, err := client.GetL1BatchDetails(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), details.Number)
	assert.True(t, details.IsCommitted())
	assert.True(t, details.IsProved())
	require.NotNil(t, details.CommitTxHash)
	assert.Equal(t, common.HexToHash("0x17c04c3760510b48c6012742c540a81aba4bca2f78b9d14bfd2f123e2e53ea3e"), *details.CommitTxHash)
	assert.Nil(t, details.ExecuteTxHash)
	assert.Nil(t, details.ExecutedAt)
}

func TestGetL1BatchDetailsPendingBatch(t *testing.T) {
	client := newTestServer(t, map[string]string{
		"zks_getL1BatchDetails": `{
			"number": 43,
			"timestamp": 1680000100,
			"status": "sealed",
			"commitTxHash": null,
			"proveTxHash": null,
			"executeTxHash": null
		}`,
	})

	details, err := client.GetL1BatchDetails(context.Background(), 43)
	require.NoError(t, err)
	assert.False(t, details.IsCommitted())
	assert.False(t, details.IsProved())
}

func TestGetL1BatchDetailsUnknownBatch(t *testing.T) {
	client := newTestServer(t, map[string]string{
		"zks_getL1BatchDetails": `null`,
	})

	_, err := client.GetL1BatchDetails(context.Background(), 99999999)
	require.Error(t, err)
}

func TestGetLatestL1BatchNumber(t *testing.T) {
	client := newTestServer(t, map[string]string{
		"zks_L1BatchNumber": `"0x1388"`,
	})

	latest, err := client.GetLatestL1BatchNumber(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(5000), latest)
}

func TestGetStorageProof(t *testing.T) {
	client := newTestServer(t, map[string]string{
		"zks_getProof": `{
			"address": "0x0000000000000000000000000000000000008003",
			"storageProof": [
				{
					"key": "0x0000000000000000000000000000000000000000000000000000000000000001",
					"value": "0x0000000000000000000000000000000000000000000000000000000000000064",
					"index": 10,
					"proof": [
						"0x17c04c3760510b48c6012742c540a81aba4bca2f78b9d14bfd2f123e2e53ea3e",
						"0x090bcaf734c4f06c93954a827b45a6e8c67b8e0fd1e0a35a1c5982d6961828f9",
						"0x37b79edd8219a33948e82ab03c2e062fe2e11631ef53ce40796717bf3753d044"
					]
				},
				{
					"key": "0x0000000000000000000000000000000000000000000000000000000000000002",
					"value": "0x00000000000000000000000000000000000000000000000000000000000000c8",
					"index": 11,
					"proof": []
				}
			]
		}`,
	})

	result, err := client.GetStorageProof(context.Background(), common.HexToAddress("0x0000000000000000000000000000000000008003"), []common.Hash{common.HexToHash("0x01"), common.HexToHash("0x02")}, 42)
	require.NoError(t, err)
	// the queried account is part of the answer and must survive
	assert.Equal(t, common.HexToAddress("0x0000000000000000000000000000000000008003"), result.Address)
	proofs := result.StorageProof
	require.Len(t, proofs, 2)

	assert.Equal(t, common.HexToHash("0x01"), proofs[0].Key)
	assert.Equal(t, common.HexToHash("0x64"), proofs[0].Value)
	assert.Equal(t, uint64(10), proofs[0].Index)
	// sibling order must survive the round trip untouched
	require.Len(t, proofs[0].Proof, 3)
	assert.Equal(t, common.HexToHash("0x17c04c3760510b48c6012742c540a81aba4bca2f78b9d14bfd2f123e2e53ea3e"), proofs[0].Proof[0])
	assert.Equal(t, common.HexToHash("0x090bcaf734c4f06c93954a827b45a6e8c67b8e0fd1e0a35a1c5982d6961828f9"), proofs[0].Proof[1])
	assert.Equal(t, common.HexToHash("0x37b79edd8219a33948e82ab03c2e062fe2e11631ef53ce40796717bf3753d044"), proofs[0].Proof[2])

	assert.Equal(t, common.HexToHash("0x02"), proofs[1].Key)
	assert.Empty(t, proofs[1].Proof)
}

func TestGetStorageProofNodeError(t *testing.T) {
	client := newTestServer(t, map[string]string{
		"zks_getProof": "error",
	})

	_, err := client.GetStorageProof(context.Background(), common.HexToAddress("0x8003"), []common.Hash{common.HexToHash("0x01")}, 42)
	require.Error(t, err)
	assert.ErrorIs(t, err, state.ErrProofFetch)
}

func TestGetStorageProofNullResult(t *testing.T) {
	client := newTestServer(t, map[string]string{
		"zks_getProof": `null`,
	})

	_, err := client.GetStorageProof(context.Background(), common.HexToAddress("0x8003"), []common.Hash{common.HexToHash("0x01")}, 42)
	require.Error(t, err)
	assert.ErrorIs(t, err, state.ErrProofFetch)
}
