package domain

import "time"

// UploadStatus tracks the lifecycle of one ingestion run.
type UploadStatus string

const (
	UploadProcessing UploadStatus = "processing"
	UploadCompleted  UploadStatus = "completed"
	UploadFailed     UploadStatus = "failed"
)

// Upload is one ingestion run of a single workbook. All fact rows are scoped to it.
type Upload struct {
	UploadID     string       `json:"uploadID"`
	FileName     string       `json:"fileName"`
	FileSize     int64        `json:"fileSize"`
	Status       UploadStatus `json:"status"`
	ErrorMessage *string      `json:"errorMessage,omitempty"`
	CreatedAt    time.Time    `json:"createdAt"`
	FinishedAt   *time.Time   `json:"finishedAt,omitempty"`
}

// IsTerminal reports whether the upload already reached completed or failed.
func (u Upload) IsTerminal() bool {
	return u.Status == UploadCompleted || u.Status == UploadFailed
}

// IngestionCounts reports how many records of each kind an ingestion produced.
type IngestionCounts struct {
	Accounts     int `json:"accounts"`
	CostCenters  int `json:"costCenters"`
	Vendors      int `json:"vendors"`
	Payables     int `json:"payables"`
	Receivables  int `json:"receivables"`
	PayrollLines int `json:"payrollLines"`
	BankBalances int `json:"bankBalances"`
	NewBranches  int `json:"newBranches"`
}
