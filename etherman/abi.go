package etherman

// ZkChainABIJSON is the subset of the hyperchain diamond proxy ABI the client
// needs: the two batch-commit entrypoints, the logs-root view function and the
// BlockCommit event.
const ZkChainABIJSON = `[
  {
    "inputs": [
      {
        "components": [
          {"internalType": "uint64", "name": "batchNumber", "type": "uint64"},
          {"internalType": "bytes32", "name": "batchHash", "type": "bytes32"},
          {"internalType": "uint64", "name": "indexRepeatedStorageChanges", "type": "uint64"},
          {"internalType": "uint256", "name": "numberOfLayer1Txs", "type": "uint256"},
          {"internalType": "bytes32", "name": "priorityOperationsHash", "type": "bytes32"},
          {"internalType": "bytes32", "name": "l2LogsTreeRoot", "type": "bytes32"},
          {"internalType": "uint256", "name": "timestamp", "type": "uint256"},
          {"internalType": "bytes32", "name": "commitment", "type": "bytes32"}
        ],
        "internalType": "struct IExecutor.StoredBatchInfo",
        "name": "_lastCommittedBatchData",
        "type": "tuple"
      },
      {
        "components": [
          {"internalType": "uint64", "name": "batchNumber", "type": "uint64"},
          {"internalType": "uint64", "name": "timestamp", "type": "uint64"},
          {"internalType": "uint64", "name": "indexRepeatedStorageChanges", "type": "uint64"},
          {"internalType": "bytes32", "name": "newStateRoot", "type": "bytes32"},
          {"internalType": "uint256", "name": "numberOfLayer1Txs", "type": "uint256"},
          {"internalType": "bytes32", "name": "priorityOperationsHash", "type": "bytes32"},
          {"internalType": "bytes32", "name": "bootloaderHeapInitialContentsHash", "type": "bytes32"},
          {"internalType": "bytes32", "name": "eventsQueueStateHash", "type": "bytes32"},
          {"internalType": "bytes", "name": "systemLogs", "type": "bytes"},
          {"internalType": "bytes", "name": "totalL2ToL1Pubdata", "type": "bytes"}
        ],
        "internalType": "struct IExecutor.CommitBatchInfo[]",
        "name": "_newBatchesData",
        "type": "tuple[]"
      }
    ],
    "name": "commitBatches",
    "outputs": [],
    "stateMutability": "nonpayable",
    "type": "function"
  },
  {
    "inputs": [
      {"internalType": "uint256", "name": "_chainId", "type": "uint256"},
      {
        "components": [
          {"internalType": "uint64", "name": "batchNumber", "type": "uint64"},
          {"internalType": "bytes32", "name": "batchHash", "type": "bytes32"},
          {"internalType": "uint64", "name": "indexRepeatedStorageChanges", "type": "uint64"},
          {"internalType": "uint256", "name": "numberOfLayer1Txs", "type": "uint256"},
          {"internalType": "bytes32", "name": "priorityOperationsHash", "type": "bytes32"},
          {"internalType": "bytes32", "name": "l2LogsTreeRoot", "type": "bytes32"},
          {"internalType": "uint256", "name": "timestamp", "type": "uint256"},
          {"internalType": "bytes32", "name": "commitment", "type": "bytes32"}
        ],
        "internalType": "struct IExecutor.StoredBatchInfo",
        "name": "_lastCommittedBatchData",
        "type": "tuple"
      },
      {
        "components": [
          {"internalType": "uint64", "name": "batchNumber", "type": "uint64"},
          {"internalType": "uint64", "name": "timestamp", "type": "uint64"},
          {"internalType": "uint64", "name": "indexRepeatedStorageChanges", "type": "uint64"},
          {"internalType": "bytes32", "name": "newStateRoot", "type": "bytes32"},
          {"internalType": "uint256", "name": "numberOfLayer1Txs", "type": "uint256"},
          {"internalType": "bytes32", "name": "priorityOperationsHash", "type": "bytes32"},
          {"internalType": "bytes32", "name": "bootloaderHeapInitialContentsHash", "type": "bytes32"},
          {"internalType": "bytes32", "name": "eventsQueueStateHash", "type": "bytes32"},
          {"internalType": "bytes", "name": "systemLogs", "type": "bytes"},
          {"internalType": "bytes", "name": "totalL2ToL1Pubdata", "type": "bytes"}
        ],
        "internalType": "struct IExecutor.CommitBatchInfo[]",
        "name": "_newBatchesData",
        "type": "tuple[]"
      }
    ],
    "name": "commitBatchesSharedBridge",
    "outputs": [],
    "stateMutability": "nonpayable",
    "type": "function"
  },
  {
    "inputs": [
      {"internalType": "uint256", "name": "_batchNumber", "type": "uint256"}
    ],
    "name": "l2LogsRootHash",
    "outputs": [
      {"internalType": "bytes32", "name": "merkleRoot", "type": "bytes32"}
    ],
    "stateMutability": "view",
    "type": "function"
  },
  {
    "anonymous": false,
    "inputs": [
      {"indexed": true, "internalType": "uint256", "name": "batchNumber", "type": "uint256"},
      {"indexed": true, "internalType": "bytes32", "name": "batchHash", "type": "bytes32"},
      {"indexed": true, "internalType": "bytes32", "name": "commitment", "type": "bytes32"}
    ],
    "name": "BlockCommit",
    "type": "event"
  }
]`
