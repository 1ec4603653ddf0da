package source

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// fakeRunner returns canned output keyed by the full command line.
type fakeRunner struct {
	mu      sync.Mutex
	outputs map[string]string
	errs    map[string]error
	calls   []string
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{outputs: map[string]string{}, errs: map[string]error{}}
}

func (f *fakeRunner) on(cmd, output string) *fakeRunner {
	f.outputs[cmd] = output
	return f
}

func (f *fakeRunner) fail(cmd string, err error) *fakeRunner {
	f.errs[cmd] = err
	return f
}

func (f *fakeRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	line := strings.Join(append([]string{name}, args...), " ")
	f.mu.Lock()
	f.calls = append(f.calls, line)
	f.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err, ok := f.errs[line]; ok {
		return nil, err
	}
	out, ok := f.outputs[line]
	if !ok {
		return nil, fmt.Errorf("%s: executable file not found in $PATH", name)
	}
	return []byte(out), nil
}

// fakeResolver returns fixed addresses or an error.
type fakeResolver struct {
	addrs []string
	err   error
	asked []string
}

func (r *fakeResolver) LookupHost(_ context.Context, host string) ([]string, error) {
	r.asked = append(r.asked, host)
	return r.addrs, r.err
}
