package stocksync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/vapemart/vapemart/internal/availability"
	"github.com/vapemart/vapemart/internal/platform/httpx"
	"github.com/vapemart/vapemart/internal/shared"
)

// ProductResolver resolves a product slug to its id.
type ProductResolver interface {
	ResolveSlug(ctx context.Context, slug string) (int64, error)
}

// Upserter writes one stock row per (product, location) pair.
type Upserter interface {
	Upsert(ctx context.Context, productID, locationID int64, quantity int) (availability.Availability, error)
}

// Enqueuer submits a sync run to the job queue.
type Enqueuer interface {
	EnqueueStockSync(ctx context.Context, jobID string) error
}

// Service coordinates sync runs: the HTTP side starts and polls jobs, the
// worker side executes them.
type Service struct {
	logger       *slog.Logger
	store        *Store
	products     ProductResolver
	stock        Upserter
	enqueuer     Enqueuer
	workbookPath string
}

// Config collects the Service dependencies.
type Config struct {
	Logger       *slog.Logger
	Store        *Store
	Products     ProductResolver
	Stock        Upserter
	Enqueuer     Enqueuer
	WorkbookPath string
}

func NewService(cfg Config) *Service {
	return &Service{
		logger:       cfg.Logger,
		store:        cfg.Store,
		products:     cfg.Products,
		stock:        cfg.Stock,
		enqueuer:     cfg.Enqueuer,
		workbookPath: cfg.WorkbookPath,
	}
}

// Start records a pending job and enqueues it. workbook may be nil; the
// worker then reads the configured workbook path instead.
func (s *Service) Start(ctx context.Context, workbook []byte) (Job, error) {
	if len(workbook) == 0 && s.workbookPath == "" {
		return Job{}, fmt.Errorf("%w: no workbook uploaded and no sync workbook configured", httpx.ErrValidation)
	}

	job := Job{
		ID:        uuid.NewString(),
		Status:    StatusPending,
		StartedAt: time.Now().UTC(),
	}
	if len(workbook) > 0 {
		if err := s.store.SaveWorkbook(ctx, job.ID, workbook); err != nil {
			return Job{}, err
		}
	}
	if err := s.store.SaveJob(ctx, job); err != nil {
		return Job{}, err
	}
	if err := s.enqueuer.EnqueueStockSync(ctx, job.ID); err != nil {
		return Job{}, err
	}
	return job, nil
}

// Status returns a job by id.
func (s *Service) Status(ctx context.Context, id string) (Job, error) {
	return s.store.GetJob(ctx, id)
}

// LatestStatus returns the most recent run.
func (s *Service) LatestStatus(ctx context.Context) (Job, error) {
	return s.store.LatestJob(ctx)
}

// Run executes a sync job. Called from the worker.
func (s *Service) Run(ctx context.Context, jobID string) error {
	job, err := s.store.GetJob(ctx, jobID)
	if err != nil {
		return err
	}
	job.Status = StatusRunning
	if err := s.store.SaveJob(ctx, job); err != nil {
		return err
	}

	data, err := s.loadWorkbook(ctx, jobID)
	if err != nil {
		return s.fail(ctx, job, err)
	}

	rows, malformed, err := ParseWorkbook(data)
	if err != nil {
		return s.fail(ctx, job, err)
	}

	job.Total = len(rows) + malformed
	job.Skipped = malformed

	for _, row := range rows {
		productID, err := s.resolveProduct(ctx, row.Product)
		if err != nil {
			job.Skipped++
			continue
		}
		if _, err := s.stock.Upsert(ctx, productID, row.LocationID, row.Quantity); err != nil {
			s.logger.Warn("stocksync upsert failed",
				slog.String("product", row.Product),
				slog.Int64("location", row.LocationID),
				slog.Any("error", err))
			job.Skipped++
			continue
		}
		job.Updated++

		// Persist progress so polling clients see movement on large sheets.
		if (job.Updated+job.Skipped)%50 == 0 {
			_ = s.store.SaveJob(ctx, job)
		}
	}

	job.Status = StatusSucceeded
	now := time.Now().UTC()
	job.FinishedAt = &now
	return s.store.SaveJob(ctx, job)
}

func (s *Service) loadWorkbook(ctx context.Context, jobID string) ([]byte, error) {
	data, err := s.store.TakeWorkbook(ctx, jobID)
	if err == nil {
		return data, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if s.workbookPath == "" {
		return nil, errors.New("stocksync: no workbook available for job")
	}
	return os.ReadFile(s.workbookPath)
}

func (s *Service) resolveProduct(ctx context.Context, ref string) (int64, error) {
	if id, err := strconv.ParseInt(ref, 10, 64); err == nil {
		return id, nil
	}
	return s.products.ResolveSlug(ctx, ref)
}

func (s *Service) fail(ctx context.Context, job Job, cause error) error {
	s.logger.Error("stocksync run failed", slog.String("job", job.ID), slog.Any("error", cause))
	job.Status = StatusFailed
	job.Error = cause.Error()
	now := time.Now().UTC()
	job.FinishedAt = &now
	if err := s.store.SaveJob(ctx, job); err != nil {
		return err
	}
	return cause
}
