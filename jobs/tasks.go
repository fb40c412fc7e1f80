package jobs

import (
	"context"
	"encoding/json"

	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskStockSync drives a spreadsheet stock synchronization run.
	TaskStockSync = "stock:sync"
)

// StockSyncPayload identifies which sync job a task belongs to.
type StockSyncPayload struct {
	JobID string `json:"job_id"`
}

// NewStockSyncTask constructs an Asynq task for a stock sync run.
func NewStockSyncTask(jobID string) (*asynq.Task, error) {
	data, err := json.Marshal(StockSyncPayload{JobID: jobID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskStockSync, data, asynq.Queue(QueueDefault)), nil
}

// Client submits jobs to the queue.
type Client struct {
	client *asynq.Client
}

// NewClient constructs an Asynq client.
func NewClient(redisOpts asynq.RedisClientOpt) (*Client, error) {
	return &Client{client: asynq.NewClient(redisOpts)}, nil
}

// EnqueueStockSync enqueues a stock sync task for the given job id.
func (c *Client) EnqueueStockSync(ctx context.Context, jobID string) error {
	task, err := NewStockSyncTask(jobID)
	if err != nil {
		return err
	}
	_, err = c.client.EnqueueContext(ctx, task, asynq.Queue(QueueDefault))
	return err
}

// Close releases client resources.
func (c *Client) Close() error {
	return c.client.Close()
}
