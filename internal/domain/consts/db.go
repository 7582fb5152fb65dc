package consts

// Tables
const (
	DBCandidates = "candidates"
	DBDownloads  = "downloads"
)

// Candidates
const (
	QCandID          = "id"
	QCandURL         = "url"
	QCandKind        = "kind"
	QCandReferrer    = "referrer"
	QCandContentType = "content_type"
	QCandObservedAt  = "observed_at"
)

// Downloads
const (
	QDLID        = "id"
	QDLTaskID    = "task_id"
	QDLURL       = "url"
	QDLPath      = "path"
	QDLStatus    = "status"
	QDLError     = "error"
	QDLCreatedAt = "created_at"
	QDLUpdatedAt = "updated_at"
)
