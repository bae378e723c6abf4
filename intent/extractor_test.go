package intent_test

import (
	"context"
	"errors"
	"testing"

	"github.com/theoremus-urban-solutions/route-chat/intent"
)

type stubExtractor struct {
	it    intent.Intent
	err   error
	calls int
}

func (s *stubExtractor) Extract(ctx context.Context, message string) (intent.Intent, error) {
	s.calls++
	if s.err != nil {
		return intent.Intent{}, s.err
	}
	return s.it, nil
}

func TestPipelineUsesRemoteResult(t *testing.T) {
	remote := &stubExtractor{it: intent.Intent{Kind: intent.KindGreeting}}
	fallback := &stubExtractor{it: intent.Intent{Kind: intent.KindUnknown}}
	p := intent.NewPipeline(remote, fallback)

	it, err := p.Extract(context.Background(), "hello")
	if err != nil {
		t.Fatalf("Extract error: %v", err)
	}
	if it.Kind != intent.KindGreeting {
		t.Errorf("Kind = %q, want greeting", it.Kind)
	}
	if fallback.calls != 0 {
		t.Errorf("fallback called %d times, want 0", fallback.calls)
	}
	if p.Fallbacks() != 0 {
		t.Errorf("Fallbacks() = %d, want 0", p.Fallbacks())
	}
}

func TestPipelineFallsBackOnRemoteError(t *testing.T) {
	remote := &stubExtractor{err: errors.New("model unreachable")}
	p := intent.NewPipeline(remote, nil)

	it, err := p.Extract(context.Background(), "from charbagh to alambagh")
	if err != nil {
		t.Fatalf("Extract error: %v", err)
	}
	want := intent.Intent{Kind: intent.KindRouteQuery, From: "charbagh", To: "alambagh"}
	if it != want {
		t.Errorf("Extract = %+v, want %+v", it, want)
	}
	if p.Fallbacks() != 1 {
		t.Errorf("Fallbacks() = %d, want 1", p.Fallbacks())
	}

	if _, err := p.Extract(context.Background(), "hi"); err != nil {
		t.Fatalf("Extract error: %v", err)
	}
	if p.Fallbacks() != 2 {
		t.Errorf("Fallbacks() = %d after second failure, want 2", p.Fallbacks())
	}
}

func TestPipelineWithoutRemote(t *testing.T) {
	p := intent.NewPipeline(nil, nil)

	it, err := p.Extract(context.Background(), "hi")
	if err != nil {
		t.Fatalf("Extract error: %v", err)
	}
	if it.Kind != intent.KindGreeting {
		t.Errorf("Kind = %q, want greeting", it.Kind)
	}
	if p.Fallbacks() != 0 {
		t.Errorf("Fallbacks() = %d, want 0 when no remote is configured", p.Fallbacks())
	}
}
