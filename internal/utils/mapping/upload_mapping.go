package mapping

import (
	"github.com/SscSPs/financial_reports_app/internal/core/domain"
	"github.com/SscSPs/financial_reports_app/internal/models"
)

// ToModelUpload converts a domain Upload to a model Upload
func ToModelUpload(d domain.Upload) models.Upload {
	return models.Upload{
		UploadID:     d.UploadID,
		FileName:     d.FileName,
		FileSize:     d.FileSize,
		Status:       string(d.Status),
		ErrorMessage: d.ErrorMessage,
		CreatedAt:    d.CreatedAt,
		FinishedAt:   d.FinishedAt,
	}
}

// ToDomainUpload converts a model Upload to a domain Upload
func ToDomainUpload(m models.Upload) domain.Upload {
	return domain.Upload{
		UploadID:     m.UploadID,
		FileName:     m.FileName,
		FileSize:     m.FileSize,
		Status:       domain.UploadStatus(m.Status),
		ErrorMessage: m.ErrorMessage,
		CreatedAt:    m.CreatedAt,
		FinishedAt:   m.FinishedAt,
	}
}

// ToDomainUploadSlice converts a slice of model Uploads to a slice of domain Uploads
func ToDomainUploadSlice(ms []models.Upload) []domain.Upload {
	if ms == nil {
		return []domain.Upload{}
	}
	ds := make([]domain.Upload, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainUpload(m)
	}
	return ds
}
