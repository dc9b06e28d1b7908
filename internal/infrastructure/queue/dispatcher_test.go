package queue

import (
	"context"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/99minutos/wms-console/internal/core/ports"
)

func TestDispatcher_SlowSessionDoesNotDelayOthers(t *testing.T) {
	d := NewDispatcher(2, zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	release := make(chan struct{})
	defer close(release)
	slowStarted := make(chan struct{})
	d.Schedule(ports.SummaryJob{
		SessionID: "sess-slow",
		Ctx:       context.Background(),
		Run: func(context.Context) {
			close(slowStarted)
			<-release
		},
	})
	select {
	case <-slowStarted:
	case <-time.After(2 * time.Second):
		t.Fatalf("slow job never started")
	}

	fastDone := make(chan struct{})
	d.Schedule(ports.SummaryJob{
		SessionID: "sess-fast",
		Ctx:       context.Background(),
		Run:       func(context.Context) { close(fastDone) },
	})
	select {
	case <-fastDone:
	case <-time.After(time.Second):
		t.Fatalf("second session's job waited for the first session's slow job")
	}
}

func TestDispatcher_RunsEveryJob(t *testing.T) {
	d := NewDispatcher(4, zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	var mu sync.Mutex
	seen := map[int]bool{}
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		i := i
		wg.Add(1)
		ok := d.Schedule(ports.SummaryJob{
			SessionID: "sess-" + strconv.Itoa(i%3),
			Ctx:       context.Background(),
			Run: func(context.Context) {
				defer wg.Done()
				mu.Lock()
				seen[i] = true
				mu.Unlock()
			},
		})
		if !ok {
			t.Fatalf("job %d rejected", i)
		}
	}

	waitGroupOrFail(t, &wg)
	if len(seen) != 20 {
		t.Fatalf("expected 20 jobs to run, got %d", len(seen))
	}
}

func TestDispatcher_SkipsCancelledJobs(t *testing.T) {
	d := NewDispatcher(1, zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	jobCtx, jobCancel := context.WithCancel(context.Background())
	jobCancel()

	ran := make(chan struct{}, 1)
	d.Schedule(ports.SummaryJob{SessionID: "s", Ctx: jobCtx, Run: func(context.Context) { ran <- struct{}{} }})

	done := make(chan struct{})
	d.Schedule(ports.SummaryJob{SessionID: "s", Ctx: context.Background(), Run: func(context.Context) { close(done) }})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("follow-up job never ran")
	}
	select {
	case <-ran:
		t.Fatalf("cancelled job must not run")
	default:
	}
}

func TestDispatcher_RecoversFromPanickingJob(t *testing.T) {
	d := NewDispatcher(1, zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Schedule(ports.SummaryJob{SessionID: "s", Ctx: context.Background(), Run: func(context.Context) { panic("boom") }})

	done := make(chan struct{})
	d.Schedule(ports.SummaryJob{SessionID: "s", Ctx: context.Background(), Run: func(context.Context) { close(done) }})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("worker died after a panicking job")
	}
}

func TestDispatcher_RejectsAfterStop(t *testing.T) {
	d := NewDispatcher(1, zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	d.Start(ctx)
	cancel()
	d.Wait()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if !d.Schedule(ports.SummaryJob{SessionID: "s", Ctx: context.Background(), Run: func(context.Context) {}}) {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("stopped dispatcher kept accepting jobs")
}

func TestDispatcher_FullQueueDropsJob(t *testing.T) {
	d := NewDispatcher(1, zerolog.Nop()) // never started: nothing drains the queue

	for i := 0; i < queueSize; i++ {
		if !d.Schedule(ports.SummaryJob{SessionID: "s", Run: func(context.Context) {}}) {
			t.Fatalf("job %d rejected before the queue was full", i)
		}
	}
	if d.Schedule(ports.SummaryJob{SessionID: "other", Run: func(context.Context) {}}) {
		t.Fatalf("expected a full queue to drop the job")
	}
}

func waitGroupOrFail(t *testing.T, wg *sync.WaitGroup) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("jobs did not finish in time")
	}
}
