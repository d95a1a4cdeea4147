package dto

// QueueMetrics represents metrics for the insight generation queue.
// Completed jobs are deleted on success, so only live states are counted.
type QueueMetrics struct {
	PendingCount    int64   `json:"pendingCount"`
	ProcessingCount int64   `json:"processingCount"`
	FailedCount     int64   `json:"failedCount"`
	OldestPending   *string `json:"oldestPending,omitempty"`
}
