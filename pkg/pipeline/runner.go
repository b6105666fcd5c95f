package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/solprov/tankdesign/pkg/cache"
	"github.com/solprov/tankdesign/pkg/design"
	"github.com/solprov/tankdesign/pkg/docgen"
	"github.com/solprov/tankdesign/pkg/errors"
	"github.com/solprov/tankdesign/pkg/geometry"
	"github.com/solprov/tankdesign/pkg/observability"
	"github.com/solprov/tankdesign/pkg/step"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger; it stores no
// run results, so multiple goroutines can share one Runner with different
// options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// A nil keyer gets the DefaultKeyer; a nil cache disables caching.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// Execute runs the complete design → documents → model pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)

	result := &Result{
		RunID:     uuid.NewString(),
		Documents: make(map[string][]byte),
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Design
	designStart := time.Now()
	observability.Pipeline().OnStageStart(ctx, observability.StageDesign)
	spec, designHit, err := r.DesignWithCacheInfo(ctx, opts)
	observability.Pipeline().OnStageComplete(ctx, observability.StageDesign, designHit, time.Since(designStart), err)
	if err != nil {
		return nil, err
	}
	result.Spec = spec
	result.SpecHash = specHash(spec)
	result.Stats.DesignTime = time.Since(designStart)
	result.CacheInfo.DesignHit = designHit

	r.Logger.Info("sized design",
		"capacity", spec.ActualLiters,
		"diameter", spec.DiameterMM,
		"length", spec.LengthMM,
		"cached", designHit,
		"duration", result.Stats.DesignTime)

	// Stage 2: Documents
	if opts.wantsFormat(FormatMarkdown) {
		docStart := time.Now()
		observability.Pipeline().OnStageStart(ctx, observability.StageDocuments)
		docs, docHit, err := r.DocumentsWithCacheInfo(ctx, spec, result.SpecHash, opts)
		observability.Pipeline().OnStageComplete(ctx, observability.StageDocuments, docHit, time.Since(docStart), err)
		if err != nil {
			return nil, err
		}
		result.Documents = docs
		result.Stats.DocumentTime = time.Since(docStart)
		result.Stats.DocumentCount = len(docs)
		result.CacheInfo.DocumentHit = docHit
		for name, data := range docs {
			result.Artifacts[name] = data
		}

		r.Logger.Info("generated documents",
			"count", len(docs),
			"cached", docHit,
			"duration", result.Stats.DocumentTime)
	}

	// Stage 3: Model
	if wantsModel(opts) {
		modelStart := time.Now()
		observability.Pipeline().OnStageStart(ctx, observability.StageModel)
		assembly, artifacts, modelHit, err := r.ModelWithCacheInfo(ctx, spec, result.SpecHash, opts)
		observability.Pipeline().OnStageComplete(ctx, observability.StageModel, modelHit, time.Since(modelStart), err)
		if err != nil {
			return nil, err
		}
		result.Assembly = assembly
		result.Stats.ModelTime = time.Since(modelStart)
		result.Stats.PartCount = len(assembly.Parts)
		result.CacheInfo.ModelHit = modelHit
		for name, data := range artifacts {
			result.Artifacts[name] = data
		}

		r.Logger.Info("built model",
			"parts", len(assembly.Parts),
			"cached", modelHit,
			"duration", result.Stats.ModelTime)
	}

	return result, nil
}

// DesignWithCacheInfo sizes the tank with caching and reports a cache hit.
func (r *Runner) DesignWithCacheInfo(ctx context.Context, opts Options) (*design.Spec, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}
	cacheKey := r.Keyer.DesignKey(opts.CapacityLiters)

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var spec design.Spec
			if err := json.Unmarshal(data, &spec); err == nil {
				return &spec, true, nil
			}
		}
	}

	spec, err := design.New(opts.CapacityLiters)
	if err != nil {
		return nil, false, err
	}

	if data, err := json.Marshal(spec); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLDesign)
	}
	return spec, false, nil
}

// Design is a convenience wrapper that discards the cache hit info.
func (r *Runner) Design(ctx context.Context, opts Options) (*design.Spec, error) {
	spec, _, err := r.DesignWithCacheInfo(ctx, opts)
	return spec, err
}

// DocumentsWithCacheInfo generates the document package with per-document
// caching. The hit flag reports whether every document came from cache.
func (r *Runner) DocumentsWithCacheInfo(ctx context.Context, spec *design.Spec, hash string, opts Options) (map[string][]byte, bool, error) {
	gen := docgen.NewGenerator(spec)
	docs := make(map[string][]byte, len(docgen.All()))
	allHit := true

	for _, doc := range docgen.All() {
		cacheKey := r.Keyer.DocumentKey(hash, doc.Name)

		if !opts.Refresh {
			if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
				docs[doc.Filename] = data
				continue
			}
		}
		allHit = false

		data, err := gen.Generate(doc.Name)
		if err != nil {
			return nil, false, err
		}
		docs[doc.Filename] = data
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLDocument)
	}

	return docs, allHit, nil
}

// ModelWithCacheInfo builds the assembly and serializes the requested model
// formats, caching each serialization. The assembly itself is always
// rebuilt; only serializations are cached.
func (r *Runner) ModelWithCacheInfo(ctx context.Context, spec *design.Spec, hash string, opts Options) (*geometry.Assembly, map[string][]byte, bool, error) {
	assembly := geometry.BuildTank(spec)
	artifacts := make(map[string][]byte)
	allHit := true

	serialize := func(format, filename string, fn func() ([]byte, error)) error {
		if !opts.wantsFormat(format) {
			return nil
		}
		cacheKey := r.Keyer.ModelKey(hash, cache.ModelKeyOpts{Format: format})

		if !opts.Refresh {
			if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
				artifacts[filename] = data
				return nil
			}
		}
		allHit = false

		data, err := fn()
		if err != nil {
			return err
		}
		artifacts[filename] = data
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLModel)
		return nil
	}

	err := serialize(FormatSTEP, ArtifactSTEP, func() ([]byte, error) {
		var buf bytes.Buffer
		stepOpts := step.DefaultOptions()
		// Fixed timestamp keeps the serialization cacheable byte-for-byte.
		stepOpts.Timestamp = time.Unix(0, 0).UTC()
		if err := step.Write(&buf, assembly, stepOpts); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	})
	if err != nil {
		return nil, nil, false, err
	}

	err = serialize(FormatJSON, ArtifactJSON, func() ([]byte, error) {
		var buf bytes.Buffer
		if err := geometry.EncodeJSON(&buf, assembly); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	})
	if err != nil {
		return nil, nil, false, err
	}

	err = serialize(FormatDOT, ArtifactDOT, func() ([]byte, error) {
		return []byte(geometry.ToDOT(assembly)), nil
	})
	if err != nil {
		return nil, nil, false, err
	}

	err = serialize(FormatSVG, ArtifactSVG, func() ([]byte, error) {
		return geometry.RenderSVG(ctx, geometry.ToDOT(assembly))
	})
	if err != nil {
		return nil, nil, false, errors.Wrap(errors.ErrCodeInternal, err, "render svg diagram")
	}

	err = serialize(FormatPNG, ArtifactPNG, func() ([]byte, error) {
		return geometry.RenderPNG(ctx, geometry.ToDOT(assembly))
	})
	if err != nil {
		return nil, nil, false, errors.Wrap(errors.ErrCodeInternal, err, "render png diagram")
	}

	return assembly, artifacts, allHit, nil
}

// wantsModel reports whether any model serialization was requested.
func wantsModel(opts Options) bool {
	for _, f := range opts.Formats {
		if f != FormatMarkdown {
			return true
		}
	}
	return false
}

// specHash is the content hash of a sized design, used to key the document
// and model stages.
func specHash(spec *design.Spec) string {
	data, _ := json.Marshal(spec)
	return cache.Hash(data)
}

func (r *Runner) applyLogger(opts *Options) {
	if r.Logger != nil {
		opts.Logger = r.Logger
	}
}
