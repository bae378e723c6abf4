package intent

import (
	"context"
	"log"
	"sync/atomic"
)

// Extractor turns one chat message into an Intent.
type Extractor interface {
	Extract(ctx context.Context, message string) (Intent, error)
}

// Pipeline tries the remote extractor first and falls back to rules when
// it fails for any reason. Callers never see the failure; it only shows up
// in logs and the fallback counter.
type Pipeline struct {
	remote    Extractor
	fallback  Extractor
	fallbacks atomic.Int64
}

// NewPipeline wires a pipeline. remote may be nil, in which case the rule
// grammar is the only extractor and fallbacks are never counted. A nil
// fallback selects the rule grammar.
func NewPipeline(remote, fallback Extractor) *Pipeline {
	if fallback == nil {
		fallback = NewRuleExtractor()
	}
	return &Pipeline{remote: remote, fallback: fallback}
}

func (p *Pipeline) Extract(ctx context.Context, message string) (Intent, error) {
	if p.remote != nil {
		it, err := p.remote.Extract(ctx, message)
		if err == nil {
			return it, nil
		}
		p.fallbacks.Add(1)
		log.Printf("intent extraction fell back to rules: %v", err)
	}
	return p.fallback.Extract(ctx, message)
}

// Fallbacks reports how many times the remote extractor has failed.
func (p *Pipeline) Fallbacks() int64 { return p.fallbacks.Load() }
