package observability

import (
	"context"
	"testing"
	"time"
)

type recordingPipelineHooks struct {
	started   []string
	completed []string
	cached    []bool
}

func (r *recordingPipelineHooks) OnStageStart(_ context.Context, stage string) {
	r.started = append(r.started, stage)
}

func (r *recordingPipelineHooks) OnStageComplete(_ context.Context, stage string, cached bool, _ time.Duration, _ error) {
	r.completed = append(r.completed, stage)
	r.cached = append(r.cached, cached)
}

type recordingCacheHooks struct {
	hits, misses, sets int
}

func (r *recordingCacheHooks) OnCacheHit(context.Context, string)      { r.hits++ }
func (r *recordingCacheHooks) OnCacheMiss(context.Context, string)     { r.misses++ }
func (r *recordingCacheHooks) OnCacheSet(context.Context, string, int) { r.sets++ }

func TestDefaultsAreNoop(t *testing.T) {
	Reset()

	// Must not panic.
	ctx := context.Background()
	Pipeline().OnStageStart(ctx, StageDesign)
	Pipeline().OnStageComplete(ctx, StageDesign, false, time.Second, nil)
	Cache().OnCacheHit(ctx, "design")
	Cache().OnCacheMiss(ctx, "design")
	Cache().OnCacheSet(ctx, "design", 128)
	Server().OnPageServed(ctx, "/", 200, time.Millisecond)
}

func TestSetPipelineHooks(t *testing.T) {
	defer Reset()

	rec := &recordingPipelineHooks{}
	SetPipelineHooks(rec)

	ctx := context.Background()
	Pipeline().OnStageStart(ctx, StageDesign)
	Pipeline().OnStageComplete(ctx, StageDesign, true, time.Second, nil)
	Pipeline().OnStageStart(ctx, StageModel)

	if len(rec.started) != 2 || rec.started[0] != StageDesign || rec.started[1] != StageModel {
		t.Errorf("started = %v", rec.started)
	}
	if len(rec.completed) != 1 || !rec.cached[0] {
		t.Errorf("completed = %v cached = %v", rec.completed, rec.cached)
	}
}

func TestSetCacheHooks(t *testing.T) {
	defer Reset()

	rec := &recordingCacheHooks{}
	SetCacheHooks(rec)

	ctx := context.Background()
	Cache().OnCacheHit(ctx, "model")
	Cache().OnCacheMiss(ctx, "model")
	Cache().OnCacheSet(ctx, "model", 64)
	Cache().OnCacheSet(ctx, "model", 64)

	if rec.hits != 1 || rec.misses != 1 || rec.sets != 2 {
		t.Errorf("hits=%d misses=%d sets=%d", rec.hits, rec.misses, rec.sets)
	}
}

func TestSetNilKeepsCurrent(t *testing.T) {
	defer Reset()

	rec := &recordingPipelineHooks{}
	SetPipelineHooks(rec)
	SetPipelineHooks(nil)

	Pipeline().OnStageStart(context.Background(), StageDocuments)
	if len(rec.started) != 1 {
		t.Error("nil registration should keep the current hooks")
	}
}
