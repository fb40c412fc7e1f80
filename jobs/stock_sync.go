package jobs

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/vapemart/vapemart/internal/stocksync"
)

// StockSyncHandler runs queued stock sync jobs through the sync service.
type StockSyncHandler struct {
	service *stocksync.Service
	logger  *slog.Logger
}

// NewStockSyncHandler constructs the worker-side handler for stock syncs.
func NewStockSyncHandler(service *stocksync.Service, logger *slog.Logger) *StockSyncHandler {
	return &StockSyncHandler{service: service, logger: logger}
}

// Handle processes TaskStockSync tasks.
func (h *StockSyncHandler) Handle(ctx context.Context, t *asynq.Task) error {
	var payload StockSyncPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return asynq.SkipRetry
	}
	if payload.JobID == "" {
		return asynq.SkipRetry
	}
	h.logger.Info("stock sync started", slog.String("job_id", payload.JobID))
	if err := h.service.Run(ctx, payload.JobID); err != nil {
		h.logger.Error("stock sync failed",
			slog.String("job_id", payload.JobID),
			slog.Any("error", err))
		return err
	}
	h.logger.Info("stock sync finished", slog.String("job_id", payload.JobID))
	return nil
}
