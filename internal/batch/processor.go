package batch

import (
	"context"
	"sync"

	"github.com/povarna/generative-ai-agents/prompt-compare/internal/models"
	"github.com/rs/zerolog"
)

// Executor runs one comparison
type Executor interface {
	Execute(ctx context.Context, req models.CompareRequest) (models.ComparisonResult, error)
}

// Result is one processed record. Comparison is nil when Error is set.
type Result struct {
	LineNumber int                      `json:"line"`
	ID         string                   `json:"request_id,omitempty"`
	Comparison *models.ComparisonResult `json:"result,omitempty"`
	Error      string                   `json:"error,omitempty"`
}

func (r Result) Failed() bool {
	return r.Error != ""
}

type Processor struct {
	executor Executor
	workers  int
	logger   *zerolog.Logger
}

func NewProcessor(executor Executor, workers int, logger *zerolog.Logger) *Processor {
	if workers < 1 {
		workers = 1
	}
	return &Processor{
		executor: executor,
		workers:  workers,
		logger:   logger,
	}
}

// Process fans records out to a fixed pool of workers. Results arrive in
// completion order; the channel closes once every record is handled or ctx is done.
func (p *Processor) Process(ctx context.Context, records []InputRecord) <-chan Result {
	jobs := make(chan InputRecord)
	results := make(chan Result)

	var wg sync.WaitGroup
	for i := 0; i < p.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for record := range jobs {
				result := p.processOne(ctx, record)
				select {
				case results <- result:
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, record := range records {
			select {
			case jobs <- record:
			case <-ctx.Done():
				p.logger.Warn().Int("line", record.LineNumber).Msg("Processing cancelled")
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	return results
}

func (p *Processor) processOne(ctx context.Context, record InputRecord) Result {
	result := Result{LineNumber: record.LineNumber, ID: record.Request.RequestID}
	if record.Error != nil {
		result.Error = record.Error.Error()
		return result
	}

	comparison, err := p.executor.Execute(ctx, record.Request)
	if err != nil {
		p.logger.Warn().Int("line", record.LineNumber).Err(err).Msg("Comparison rejected")
		result.Error = err.Error()
		return result
	}

	result.ID = comparison.RequestID
	result.Comparison = &comparison
	return result
}
