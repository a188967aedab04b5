package batch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"spikemask/internal/artifacts"
	"spikemask/internal/config"
	"spikemask/internal/store"
)

// Runner iterates recordings and feeds each one to the artifact pipeline.
type Runner struct {
	cfg     *config.Config
	logger  *slog.Logger
	windows *artifacts.ContaminatedWindows
}

// NewRunner constructs a batch runner. windows may be nil to disable
// concurrent-activity rejection for the whole run.
func NewRunner(cfg *config.Config, logger *slog.Logger, windows *artifacts.ContaminatedWindows) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{cfg: cfg, logger: logger, windows: windows}
}

// Summary aggregates one batch run.
type Summary struct {
	RunID      string
	Recordings []artifacts.RecordingResult
}

// Failed counts recordings with at least one failure.
func (s Summary) Failed() int {
	failed := 0
	for _, rec := range s.Recordings {
		if rec.Failed() {
			failed++
		}
	}
	return failed
}

// AllFailed reports whether every recording in a non-empty run failed.
func (s Summary) AllFailed() bool {
	return len(s.Recordings) > 0 && s.Failed() == len(s.Recordings)
}

// Run processes every recording under the target sequentially. Individual
// recording failures are reported in the summary, never returned as errors.
func (r *Runner) Run(ctx context.Context, target string) (Summary, error) {
	files, err := Discover(target, r.cfg.Storage.RecordingPattern)
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{RunID: uuid.NewString()}
	logger := r.logger.With("run_id", summary.RunID)
	logger.Info("starting batch", "target", target, "recordings", len(files))

	pipeline := artifacts.NewPipeline(logger, artifacts.DefaultSpecs(), r.cfg.Analysis.ResetBeforeAnalysis)
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		logger.Info("starting recording", "recording", path)
		summary.Recordings = append(summary.Recordings, r.processRecording(ctx, pipeline, path))
	}
	return summary, nil
}

func (r *Runner) processRecording(ctx context.Context, pipeline *artifacts.Pipeline, path string) artifacts.RecordingResult {
	lock := flock.New(path + ".lock")
	ok, err := r.acquireLock(ctx, lock)
	if err != nil {
		return failedRecording(path, fmt.Errorf("acquire lock: %w", err))
	}
	if !ok {
		return failedRecording(path, fmt.Errorf("recording is locked by another run"))
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			r.logger.Warn("release recording lock", "recording", path, "error", err)
		}
	}()

	rec, err := store.Open(path)
	if err != nil {
		return failedRecording(path, err)
	}
	defer rec.Close()

	return pipeline.ProcessRecording(ctx, rec, r.windows)
}

func (r *Runner) acquireLock(ctx context.Context, lock *flock.Flock) (bool, error) {
	wait := time.Duration(r.cfg.Analysis.LockTimeoutSeconds) * time.Second
	if wait <= 0 {
		return lock.TryLock()
	}
	lockCtx, cancel := context.WithTimeout(ctx, wait)
	defer cancel()
	ok, err := lock.TryLockContext(lockCtx, 250*time.Millisecond)
	if err != nil && lockCtx.Err() != nil {
		// Timed out waiting; report the lock as held rather than as an error.
		return false, nil
	}
	return ok, err
}

func failedRecording(path string, err error) artifacts.RecordingResult {
	return artifacts.RecordingResult{Path: path, Err: err}
}
