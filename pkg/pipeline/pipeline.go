// Package pipeline runs the complete design → documents → model flow used
// by the CLI and the documentation server.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Design: size the tank for the requested capacity
//  2. Documents: generate the markdown document package
//  3. Model: build the CSG assembly and serialize it
//
// Each stage is cached independently, so regenerating one output format
// reuses the sized design and documents from earlier runs.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    CapacityLiters: 9000,
//	    Formats:        []string{"md", "step"},
//	})
//	stepData := result.Artifacts["tank.stp"]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/solprov/tankdesign/pkg/design"
	"github.com/solprov/tankdesign/pkg/errors"
	"github.com/solprov/tankdesign/pkg/geometry"
)

// DefaultCapacityLiters is the capacity used when none is requested,
// matching the standard BTA tank.
const DefaultCapacityLiters = 9000.0

// Format constants for output artifacts.
const (
	FormatMarkdown = "md"
	FormatSTEP     = "step"
	FormatJSON     = "json"
	FormatDOT      = "dot"
	FormatSVG      = "svg"
	FormatPNG      = "png"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatMarkdown: true,
	FormatSTEP:     true,
	FormatJSON:     true,
	FormatDOT:      true,
	FormatSVG:      true,
	FormatPNG:      true,
}

// Artifact filenames for the model formats.
const (
	ArtifactSTEP = "tank.stp"
	ArtifactJSON = "tank_assembly.json"
	ArtifactDOT  = "tank_assembly.dot"
	ArtifactSVG  = "tank_assembly.svg"
	ArtifactPNG  = "tank_assembly.png"
)

// Options contains all configuration for a pipeline run.
// The struct supports JSON serialization so runs can be requested remotely.
type Options struct {
	// CapacityLiters is the requested tank capacity. Zero selects the
	// standard size.
	CapacityLiters float64 `json:"capacity_liters,omitempty"`

	// Formats selects which artifacts to produce.
	Formats []string `json:"formats,omitempty"`

	// Refresh bypasses the cache and recomputes every stage.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: md, step, json, dot, svg, png)", format)
	}
	return nil
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// The method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.CapacityLiters == 0 {
		o.CapacityLiters = DefaultCapacityLiters
	}
	if o.CapacityLiters < 0 {
		return errors.New(errors.ErrCodeInvalidCapacity, "capacity must be positive, got %.0f", o.CapacityLiters)
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatMarkdown, FormatSTEP}
	}
	for _, f := range o.Formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// wantsFormat reports whether a format was requested.
func (o *Options) wantsFormat(format string) bool {
	for _, f := range o.Formats {
		if f == format {
			return true
		}
	}
	return false
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID uniquely identifies this execution.
	RunID string

	// Spec is the sized tank design.
	Spec *design.Spec

	// SpecHash is the content hash of the design, used in cache keys.
	SpecHash string

	// Documents contains generated markdown keyed by filename.
	Documents map[string][]byte

	// Assembly is the CSG model, present when a model format was requested.
	Assembly *geometry.Assembly

	// Artifacts contains every produced output keyed by filename.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	PartCount     int
	DocumentCount int
	DesignTime    time.Duration
	DocumentTime  time.Duration
	ModelTime     time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	DesignHit   bool // Whether the sized design came from cache
	DocumentHit bool // Whether all documents came from cache
	ModelHit    bool // Whether all model artifacts came from cache
}
