package etherman

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/zksync-community/storage-proofs/log"
	"github.com/zksync-community/storage-proofs/state"
)

const (
	commitBatchesMethod             = "commitBatches"
	commitBatchesSharedBridgeMethod = "commitBatchesSharedBridge"
	l2LogsRootHashMethod            = "l2LogsRootHash"
	blockCommitEventName            = "BlockCommit"

	// BlockCommit(uint256 indexed, bytes32 indexed, bytes32 indexed)
	blockCommitTopicCount = 4
)

var (
	zkChainABI               abi.ABI
	blockCommitSignatureHash common.Hash
)

func init() {
	var err error
	zkChainABI, err = abi.JSON(strings.NewReader(ZkChainABIJSON))
	if err != nil {
		log.Fatal("error parsing the zk chain abi: ", err)
	}
	blockCommitSignatureHash = zkChainABI.Events[blockCommitEventName].ID
}

// commitBatchInfo mirrors the CommitBatchInfo calldata tuple for abi
// conversion. Field order and widths must match the ABI exactly.
type commitBatchInfo struct {
	BatchNumber                       uint64
	Timestamp                         uint64
	IndexRepeatedStorageChanges       uint64
	NewStateRoot                      [32]byte
	NumberOfLayer1Txs                 *big.Int
	PriorityOperationsHash            [32]byte
	BootloaderHeapInitialContentsHash [32]byte
	EventsQueueStateHash              [32]byte
	SystemLogs                        []byte
	TotalL2ToL1Pubdata                []byte
}

// Config represents the configuration of the etherman client.
type Config struct {
	// URL is the endpoint of a read-only L1 node.
	URL string `mapstructure:"URL"`
	// DiamondProxyAddr is the address of the hyperchain diamond proxy on L1.
	DiamondProxyAddr common.Address `mapstructure:"DiamondProxyAddr"`
}

type ethereumClient interface {
	ethereum.TransactionReader
	ethereum.ContractCaller
}

// Client is a simple implementation of an L1 reader for the hyperchain
// contracts: it fetches commit transactions, decodes their calldata and
// receipts and queries the logs-root view function.
type Client struct {
	EthClient ethereumClient
	cfg       Config
}

// NewClient creates a new etherman client connected to the given L1 node.
func NewClient(cfg Config) (*Client, error) {
	ethClient, err := ethclient.Dial(cfg.URL)
	if err != nil {
		log.Errorf("error connecting to %s: %+v", cfg.URL, err)
		return nil, err
	}
	return &Client{EthClient: ethClient, cfg: cfg}, nil
}

// GetTx fetches a transaction from L1 by hash.
func (c *Client) GetTx(ctx context.Context, txHash common.Hash) (*types.Transaction, bool, error) {
	return c.EthClient.TransactionByHash(ctx, txHash)
}

// GetTxReceipt fetches a transaction receipt from L1 by hash. A receipt the
// node does not know about maps to state.ErrReceiptNotFound.
func (c *Client) GetTxReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	receipt, err := c.EthClient.TransactionReceipt(ctx, txHash)
	if errors.Is(err, ethereum.NotFound) {
		return nil, fmt.Errorf("%w: tx %s", state.ErrReceiptNotFound, txHash)
	}
	if err != nil {
		return nil, err
	}
	return receipt, nil
}

// DecodeCommitCalldata decodes the calldata of a commitBatches (or
// commitBatchesSharedBridge) transaction and returns the record of the batch
// with the given number. The new-batches array is searched without any
// ordering assumption; state.ErrBatchNotFoundInCalldata is returned when no
// element matches.
func (c *Client) DecodeCommitCalldata(data []byte, batchNumber uint64) (*state.CommitBatchInfo, error) {
	if len(data) < 4 {
		return nil, fmt.Errorf("calldata too short: %d bytes", len(data))
	}
	method, err := zkChainABI.MethodById(data[:4])
	if err != nil {
		return nil, fmt.Errorf("unrecognized commit tx selector %x: %w", data[:4], err)
	}

	// _newBatchesData is the last argument of both commit entrypoints.
	var newBatchesArg int
	switch method.Name {
	case commitBatchesMethod:
		newBatchesArg = 1
	case commitBatchesSharedBridgeMethod:
		newBatchesArg = 2
	default:
		return nil, fmt.Errorf("tx selector %x is not a batch commitment", data[:4])
	}

	args, err := method.Inputs.Unpack(data[4:])
	if err != nil {
		return nil, fmt.Errorf("error unpacking %s calldata: %w", method.Name, err)
	}
	if len(args) <= newBatchesArg {
		return nil, fmt.Errorf("malformed %s calldata: %d arguments", method.Name, len(args))
	}

	newBatches, ok := abi.ConvertType(args[newBatchesArg], new([]commitBatchInfo)).(*[]commitBatchInfo)
	if !ok {
		return nil, fmt.Errorf("error converting %s new batches data", method.Name)
	}

	for i := range *newBatches {
		b := (*newBatches)[i]
		if b.BatchNumber != batchNumber {
			continue
		}
		log.Debugf("found batch %d in %s calldata at position %d", batchNumber, method.Name, i)
		return &state.CommitBatchInfo{
			BatchNumber:                       b.BatchNumber,
			Timestamp:                         b.Timestamp,
			IndexRepeatedStorageChanges:       b.IndexRepeatedStorageChanges,
			NewStateRoot:                      b.NewStateRoot,
			NumberOfLayer1Txs:                 b.NumberOfLayer1Txs,
			PriorityOperationsHash:            b.PriorityOperationsHash,
			BootloaderHeapInitialContentsHash: b.BootloaderHeapInitialContentsHash,
			EventsQueueStateHash:              b.EventsQueueStateHash,
			SystemLogs:                        b.SystemLogs,
			TotalL2ToL1Pubdata:                b.TotalL2ToL1Pubdata,
		}, nil
	}
	return nil, fmt.Errorf("%w: batch %d, %d batches in calldata", state.ErrBatchNotFoundInCalldata, batchNumber, len(*newBatches))
}

// FindCommitEvent scans the receipt logs for the BlockCommit event of the
// given batch emitted by the configured diamond proxy and returns the batch
// commitment. Logs from any other address are skipped, even with matching
// topics. The leading topics must equal the event signature hash and the
// batch number, in that order; the commitment is the remaining indexed value.
func (c *Client) FindCommitEvent(logs []*types.Log, batchNumber uint64) (common.Hash, error) {
	batchNumberTopic := common.BigToHash(new(big.Int).SetUint64(batchNumber))
	for _, vLog := range logs {
		if vLog.Address != c.cfg.DiamondProxyAddr {
			continue
		}
		if len(vLog.Topics) != blockCommitTopicCount {
			continue
		}
		if vLog.Topics[0] != blockCommitSignatureHash || vLog.Topics[1] != batchNumberTopic {
			continue
		}
		log.Debugf("found BlockCommit event for batch %d in log %d of block %d", batchNumber, vLog.Index, vLog.BlockNumber)
		return vLog.Topics[3], nil
	}
	return common.Hash{}, fmt.Errorf("%w: batch %d, contract %s", state.ErrCommitEventNotFound, batchNumber, c.cfg.DiamondProxyAddr)
}

// GetL2LogsRootHash queries the diamond proxy for the root hash of the
// L2-to-L1 message log tree of the given batch.
func (c *Client) GetL2LogsRootHash(ctx context.Context, batchNumber uint64) (common.Hash, error) {
	input, err := zkChainABI.Pack(l2LogsRootHashMethod, new(big.Int).SetUint64(batchNumber))
	if err != nil {
		return common.Hash{}, fmt.Errorf("error packing %s call: %w", l2LogsRootHashMethod, err)
	}
	output, err := c.EthClient.CallContract(ctx, ethereum.CallMsg{
		To:   &c.cfg.DiamondProxyAddr,
		Data: input,
	}, nil)
	if err != nil {
		return common.Hash{}, fmt.Errorf("error calling %s for batch %d: %w", l2LogsRootHashMethod, batchNumber, err)
	}
	results, err := zkChainABI.Unpack(l2LogsRootHashMethod, output)
	if err != nil {
		return common.Hash{}, fmt.Errorf("error unpacking %s result: %w", l2LogsRootHashMethod, err)
	}
	root := *abi.ConvertType(results[0], new([32]byte)).(*[32]byte)
	return root, nil
}
