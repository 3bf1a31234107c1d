// posthog_client.go provides a wrapper around the posthog.Client to make it easier to use and handle when its not initialized.
package utils

import (
	"context"
	"log/slog"

	"github.com/posthog/posthog-go"

	"github.com/SscSPs/financial_reports_app/internal/core/domain"
	portssvc "github.com/SscSPs/financial_reports_app/internal/core/ports/services"
)

// PosthogClientWrapper is safe to use when no API key was configured; every call is then a no-op.
type PosthogClientWrapper struct {
	posthogClient posthog.Client
	logger        *slog.Logger
}

var _ portssvc.IngestionObserver = (*PosthogClientWrapper)(nil)

func InitializePosthogClient(apiKey, endpoint string, logger *slog.Logger) *PosthogClientWrapper {
	if apiKey == "" {
		logger.Warn("Posthog API key is empty, not initializing posthog client.")
		return &PosthogClientWrapper{}
	}
	client, err := posthog.NewWithConfig(apiKey, posthog.Config{Endpoint: endpoint})
	if err != nil {
		logger.Error("Failed to initialize posthog client", slog.String("error", err.Error()))
		return &PosthogClientWrapper{}
	}
	logger.Info("Posthog client initialized", slog.String("endpoint", endpoint))
	return &PosthogClientWrapper{posthogClient: client, logger: logger}
}

func (w *PosthogClientWrapper) IsInitialized() bool {
	return w != nil && w.posthogClient != nil
}

func (w *PosthogClientWrapper) Enqueue(distinctId string, event string, properties map[string]any) {
	if !w.IsInitialized() {
		return
	}
	if w.logger != nil {
		w.logger.Debug("Enqueueing event", slog.String("distinct_id", distinctId), slog.String("event", event))
	}
	if err := w.posthogClient.Enqueue(posthog.Capture{
		DistinctId: distinctId,
		Event:      event,
		Properties: properties,
	}); err != nil && w.logger != nil {
		w.logger.Warn("Failed to enqueue event", slog.String("event", event), slog.String("error", err.Error()))
	}
}

// UploadFinished reports the outcome of an ingestion as an "upload_finished" event.
func (w *PosthogClientWrapper) UploadFinished(_ context.Context, upload domain.Upload, counts *domain.IngestionCounts) {
	props := map[string]any{
		"upload_id": upload.UploadID,
		"status":    string(upload.Status),
		"file_size": upload.FileSize,
	}
	if counts != nil {
		props["payables"] = counts.Payables
		props["receivables"] = counts.Receivables
		props["payroll_lines"] = counts.PayrollLines
		props["bank_balances"] = counts.BankBalances
		props["new_branches"] = counts.NewBranches
	}
	w.Enqueue(upload.UploadID, "upload_finished", props)
}

func (w *PosthogClientWrapper) Close() {
	if !w.IsInitialized() {
		return
	}
	if err := w.posthogClient.Close(); err != nil && w.logger != nil {
		w.logger.Warn("Failed to close posthog client", slog.String("error", err.Error()))
	}
}
