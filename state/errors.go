package state

import "errors"

var (
	// ErrBatchNotCommitted indicates that the requested batch has no commit
	// transaction on L1 yet.
	ErrBatchNotCommitted = errors.New("batch is not committed to L1")

	// ErrBatchNotProved indicates that the requested batch is committed but
	// its validity proof has not been submitted to L1 yet.
	ErrBatchNotProved = errors.New("batch is committed but not proved on L1")

	// ErrBatchNotFoundInCalldata indicates that the commit transaction
	// calldata does not carry a record for the requested batch.
	ErrBatchNotFoundInCalldata = errors.New("batch not found in commit transaction calldata")

	// ErrCommitEventNotFound indicates that no log in the commit transaction
	// receipt matches the BlockCommit event for the requested batch and
	// contract address.
	ErrCommitEventNotFound = errors.New("commit event not found in receipt")

	// ErrReceiptNotFound indicates that the receipt of the commit transaction
	// could not be fetched from L1.
	ErrReceiptNotFound = errors.New("commit transaction receipt not found")

	// ErrProofFetch wraps any transport or node-side failure while querying
	// storage proofs from the L2 node. The underlying cause stays in the
	// error chain.
	ErrProofFetch = errors.New("failed to fetch storage proof")

	// ErrEmptyCommitment is returned by the assembler when the located
	// commitment is the zero hash.
	ErrEmptyCommitment = errors.New("batch commitment is empty")

	// ErrEmptyLogsRoot is returned by the assembler when the queried logs
	// root is the zero hash.
	ErrEmptyLogsRoot = errors.New("l2 logs tree root is empty")
)
