package aggregator

// DefaultBatchLag is the number of batches subtracted from the latest L1
// batch when no explicit batch number is given. The lag keeps default queries
// away from batches too recent to be proved.
const DefaultBatchLag = 2000

// Config represents the configuration of the aggregator.
type Config struct {
	// BatchLag overrides DefaultBatchLag when non zero.
	BatchLag uint64 `mapstructure:"BatchLag"`
}
