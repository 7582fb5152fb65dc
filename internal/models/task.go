package models

// DLStatus holds constant download status strings.
type DLStatus string

const (
	DLStatusPending   DLStatus = "pending"
	DLStatusRunning   DLStatus = "running"
	DLStatusCompleted DLStatus = "completed"
	DLStatusFailed    DLStatus = "failed"
)

// DownloadTask is one attempt to materialize a MediaCandidate into a
// local file. Terminal once Status is completed or failed; retries
// create fresh attempts internally and only the final task is returned.
type DownloadTask struct {
	ID              string   `json:"id"`
	SourceURL       string   `json:"source_url"`
	DestinationPath string   `json:"destination_path"`
	Progress        float64  `json:"progress"`
	Status          DLStatus `json:"status"`
	Error           string   `json:"error,omitempty"`

	// HeadersUsed records the exact header set sent, for diagnostics.
	HeadersUsed map[string]string `json:"headers_used,omitempty"`
}

// Completed reports whether the task finished successfully.
func (t *DownloadTask) Completed() bool {
	return t.Status == DLStatusCompleted
}
