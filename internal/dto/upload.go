package dto

import (
	"time"

	"github.com/SscSPs/financial_reports_app/internal/core/domain"
)

// UploadResponse defines the data returned for an upload.
type UploadResponse struct {
	UploadID     string     `json:"uploadID"`
	FileName     string     `json:"fileName"`
	FileSize     int64      `json:"fileSize"`
	Status       string     `json:"status"`
	ErrorMessage *string    `json:"errorMessage,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	FinishedAt   *time.Time `json:"finishedAt,omitempty"`
}

// ListUploadsParams defines query parameters for listing uploads.
type ListUploadsParams struct {
	Limit     int    `form:"limit,default=20" binding:"min=1,max=100"`
	PageToken string `form:"pageToken"`
}

// ListUploadsResponse wraps a page of uploads.
type ListUploadsResponse struct {
	Uploads       []UploadResponse `json:"uploads"`
	NextPageToken string           `json:"nextPageToken,omitempty"`
}

// ToUploadResponse converts a domain.Upload to UploadResponse DTO.
func ToUploadResponse(u *domain.Upload) UploadResponse {
	return UploadResponse{
		UploadID:     u.UploadID,
		FileName:     u.FileName,
		FileSize:     u.FileSize,
		Status:       string(u.Status),
		ErrorMessage: u.ErrorMessage,
		CreatedAt:    u.CreatedAt,
		FinishedAt:   u.FinishedAt,
	}
}

// ToListUploadsResponse converts a page of uploads.
func ToListUploadsResponse(uploads []domain.Upload, nextPageToken string) ListUploadsResponse {
	resp := ListUploadsResponse{
		Uploads:       make([]UploadResponse, len(uploads)),
		NextPageToken: nextPageToken,
	}
	for i := range uploads {
		resp.Uploads[i] = ToUploadResponse(&uploads[i])
	}
	return resp
}
