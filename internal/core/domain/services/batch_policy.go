package services

import (
	"workshop/internal/pkg/errs"
)

// DefaultStandardBatchSize is the business constant for a full print batch.
const DefaultStandardBatchSize = 4

// maxStandardBatchSize caps configuration mistakes; a batch is a single sheet of
// sticker labels and the largest stock sheet holds 100.
const maxStandardBatchSize = 100

// BatchDecision classifies a candidate print batch against the standard size.
type BatchDecision int

const (
	// BatchDecisionUnknown represents an invalid or undefined decision.
	BatchDecisionUnknown BatchDecision = iota

	// BatchNothingToPrint means the queue is empty; there is nothing to release.
	BatchNothingToPrint

	// BatchRequiresConfirmation means the batch is smaller than the standard size;
	// printing it risks paper waste and needs explicit user confirmation.
	BatchRequiresConfirmation

	// BatchReady means the batch is exactly the standard size; no confirmation.
	BatchReady

	// BatchRequiresVerification means the batch is larger than the standard size,
	// which getNextBatch should never produce; flag for manual verification.
	BatchRequiresVerification
)

func getBatchDecisionStrings() map[BatchDecision]string {
	return map[BatchDecision]string{
		BatchDecisionUnknown:      "Unknown",
		BatchNothingToPrint:       "NothingToPrint",
		BatchRequiresConfirmation: "RequiresConfirmation",
		BatchReady:                "Ready",
		BatchRequiresVerification: "RequiresVerification",
	}
}

// String returns the human-readable name of the decision.
func (d BatchDecision) String() string {
	if str, ok := getBatchDecisionStrings()[d]; ok {
		return str
	}
	return "Unknown"
}

// BatchPolicy decides whether a candidate batch may be printed without
// confirmation. It is pure decision logic consumed by the UI layer, kept in the
// domain because it encodes the correctness expectations of the print queue.
type BatchPolicy struct {
	standardSize int
}

// NewBatchPolicy creates a policy for the given standard batch size.
func NewBatchPolicy(standardSize int) (BatchPolicy, error) {
	if standardSize < 1 || standardSize > maxStandardBatchSize {
		return BatchPolicy{}, errs.NewValueIsOutOfRangeError(
			"standard batch size", standardSize, 1, maxStandardBatchSize)
	}
	return BatchPolicy{standardSize: standardSize}, nil
}

// StandardSize returns the configured standard batch size.
func (p BatchPolicy) StandardSize() int {
	return p.standardSize
}

// Evaluate classifies a candidate batch of the given size.
func (p BatchPolicy) Evaluate(batchSize int) BatchDecision {
	switch {
	case batchSize <= 0:
		return BatchNothingToPrint
	case batchSize < p.standardSize:
		return BatchRequiresConfirmation
	case batchSize == p.standardSize:
		return BatchReady
	default:
		return BatchRequiresVerification
	}
}

// CanPrint reports whether the given unprinted-entry count is enough for a full
// batch without confirmation.
func (p BatchPolicy) CanPrint(unprintedCount int) bool {
	return unprintedCount >= p.standardSize
}

// NextBatchSize returns how many entries the next batch should contain given the
// current unprinted count: the standard size when enough entries are queued,
// otherwise everything that is there.
func (p BatchPolicy) NextBatchSize(unprintedCount int) int {
	if unprintedCount > p.standardSize {
		return p.standardSize
	}
	if unprintedCount < 0 {
		return 0
	}
	return unprintedCount
}
