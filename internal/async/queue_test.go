package async

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/loanguard/loanguard/internal/docprep"
	"github.com/loanguard/loanguard/internal/extract"
	processor "github.com/loanguard/loanguard/internal/pipeline"
)

func TestAnalysisQueueProcessesAllJobs(t *testing.T) {
	proc := processor.NewProcessor(nil, extract.NewFixtureExtractor(), nil)

	var mu sync.Mutex
	done := map[string]int{}
	q := NewAnalysisQueue(proc, func(_ context.Context, job Job, res *processor.Result, err error) {
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			t.Errorf("job %s failed: %v", job.LoanID, err)
			return
		}
		done[job.LoanID] = res.Summary.TotalRequirements
	}, nil, WithWorkers(3), WithQueueSize(8))

	const jobs = 20
	for i := 0; i < jobs; i++ {
		err := q.Enqueue(context.Background(), Job{
			LoanID:   fmt.Sprintf("LOAN-%03d", i+1),
			Document: docprep.Document{Filename: "agreement.txt", Text: "covenant text"},
		})
		if err != nil {
			t.Fatalf("enqueue: %v", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	mu.Lock()
	defer mu.Unlock()
	if len(done) != jobs {
		t.Fatalf("completed %d jobs, want %d", len(done), jobs)
	}
	for loanID, n := range done {
		if n != 8 {
			t.Errorf("job %s saw %d requirements, want 8", loanID, n)
		}
	}
}

func TestAnalysisQueueEnqueueAfterShutdown(t *testing.T) {
	proc := processor.NewProcessor(nil, extract.NewFixtureExtractor(), nil)
	q := NewAnalysisQueue(proc, nil, nil, WithWorkers(1))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	// must not panic on the closed channel
	if err := q.Enqueue(context.Background(), Job{LoanID: "LOAN-999"}); err != nil {
		t.Fatalf("enqueue after shutdown: %v", err)
	}
}
