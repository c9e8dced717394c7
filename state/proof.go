package state

import (
	"github.com/ethereum/go-ethereum/common"
)

// StorageProof is the merkle path for a single storage slot at a given batch,
// as returned by the L2 node. The sibling hashes in Proof are ordered from the
// leaf to the root and must be kept exactly as received; any reordering
// invalidates verification against the batch root.
type StorageProof struct {
	Key   common.Hash   `json:"key"`
	Value common.Hash   `json:"value"`
	Index uint64        `json:"index"`
	Proof []common.Hash `json:"proof"`
}

// StorageProofResult is the envelope zks_getProof answers with: the queried
// account plus one proof per requested storage key.
type StorageProofResult struct {
	Address      common.Address `json:"address"`
	StorageProof []StorageProof `json:"storageProof"`
}

// ProofBundle pairs the storage proofs with the account they attest to and
// the commitment metadata needed to validate them against the on-chain batch
// root.
type ProofBundle struct {
	Metadata BatchMetadata  `json:"metadata"`
	Account  common.Address `json:"account"`
	Proofs   []StorageProof `json:"proofs"`
}

// SingleProofBundle is the convenience shape for a single-key query.
type SingleProofBundle struct {
	Metadata BatchMetadata  `json:"metadata"`
	Account  common.Address `json:"account"`
	Proof    StorageProof   `json:"proof"`
}
