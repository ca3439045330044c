package llmclient

import (
	"context"
	"sync"
)

type fakeReply struct {
	text string
	err  error
}

// Fake returns scripted replies in order, for offline runs and tests.
// When the script is exhausted it repeats the last scripted reply, or
// returns an empty JSON object when nothing was scripted.
type Fake struct {
	mu      sync.Mutex
	name    string
	script  []fakeReply
	pos     int
	Prompts []string
}

func NewFake(name string) *Fake {
	if name == "" {
		name = "FakeLLM"
	}
	return &Fake{name: name}
}

func (f *Fake) Name() string { return f.name }
func (f *Fake) Close() error { return nil }

// Reply queues a successful reply.
func (f *Fake) Reply(text string) *Fake {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.script = append(f.script, fakeReply{text: text})
	return f
}

// Fail queues an error reply.
func (f *Fake) Fail(err error) *Fake {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.script = append(f.script, fakeReply{err: err})
	return f
}

// Calls reports how many times Generate was invoked.
func (f *Fake) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Prompts)
}

func (f *Fake) Generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Prompts = append(f.Prompts, prompt)
	if len(f.script) == 0 {
		return "{}", nil
	}
	r := f.script[f.pos]
	if f.pos < len(f.script)-1 {
		f.pos++
	}
	return r.text, r.err
}
