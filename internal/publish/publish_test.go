package publish

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/nsodat/vitrina/internal/testutil"
)

var errGit = errors.New("exit status 1")

// fakeRunner records git invocations and scripts their outcomes.
type fakeRunner struct {
	calls    []string
	out      map[string]string
	fail     map[string]bool
	failOnce map[string]bool
}

func (f *fakeRunner) Run(_ context.Context, _ string, args ...string) (string, error) {
	key := strings.Join(args, " ")
	f.calls = append(f.calls, key)
	if f.failOnce[key] {
		delete(f.failOnce, key)
		return f.out[key], errGit
	}
	if f.fail[key] {
		return f.out[key], errGit
	}
	return f.out[key], nil
}

func newPublisher(run Runner) *Publisher {
	return NewWithRunner("/site", "https://github.com/nsodat/portfolio.git", "main", run, testutil.Logger())
}

func TestPublishHappyPath(t *testing.T) {
	run := &fakeRunner{out: map[string]string{"push -u origin main": "branch main set up"}}
	out, err := newPublisher(run).Publish(context.Background(), "Обновление")
	if err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if !strings.Contains(out, "branch main set up") {
		t.Errorf("output = %q", out)
	}

	want := []string{
		"rev-parse --git-dir",
		"remote get-url origin",
		"add .",
		"commit -m Обновление",
		"push -u origin main",
	}
	if len(run.calls) != len(want) {
		t.Fatalf("calls = %v", run.calls)
	}
	for i, w := range want {
		if run.calls[i] != w {
			t.Errorf("call %d = %q, want %q", i, run.calls[i], w)
		}
	}
}

func TestPublishDefaultMessage(t *testing.T) {
	run := &fakeRunner{}
	if _, err := newPublisher(run).Publish(context.Background(), ""); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	found := false
	for _, c := range run.calls {
		if c == "commit -m "+DefaultMessage {
			found = true
		}
	}
	if !found {
		t.Errorf("default message not used, calls = %v", run.calls)
	}
}

func TestPublishInitializesRepo(t *testing.T) {
	run := &fakeRunner{fail: map[string]bool{"rev-parse --git-dir": true}}
	if _, err := newPublisher(run).Publish(context.Background(), "m"); err != nil {
		t.Fatalf("Publish: %v", err)
	}

	want := []string{
		"rev-parse --git-dir",
		"init",
		"remote add origin https://github.com/nsodat/portfolio.git",
		"branch -M main",
		"add .",
		"commit -m m",
		"push -u origin main",
	}
	if len(run.calls) != len(want) {
		t.Fatalf("calls = %v", run.calls)
	}
	for i, w := range want {
		if run.calls[i] != w {
			t.Errorf("call %d = %q, want %q", i, run.calls[i], w)
		}
	}
}

func TestPublishAddsMissingRemote(t *testing.T) {
	run := &fakeRunner{fail: map[string]bool{"remote get-url origin": true}}
	if _, err := newPublisher(run).Publish(context.Background(), "m"); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	found := false
	for _, c := range run.calls {
		if c == "remote add origin https://github.com/nsodat/portfolio.git" {
			found = true
		}
	}
	if !found {
		t.Errorf("remote not added, calls = %v", run.calls)
	}
}

func TestPublishNothingToCommit(t *testing.T) {
	run := &fakeRunner{
		fail: map[string]bool{"commit -m m": true},
		out:  map[string]string{"commit -m m": "nothing to commit, working tree clean"},
	}
	if _, err := newPublisher(run).Publish(context.Background(), "m"); err != nil {
		t.Fatalf("clean tree should not fail: %v", err)
	}
	if last := run.calls[len(run.calls)-1]; last != "push -u origin main" {
		t.Errorf("push skipped, last call = %q", last)
	}
}

func TestPublishCreatesBranchOnRefspecError(t *testing.T) {
	run := &fakeRunner{
		failOnce: map[string]bool{"push -u origin main": true},
		out:      map[string]string{"push -u origin main": "error: src refspec main does not match any"},
	}
	if _, err := newPublisher(run).Publish(context.Background(), "m"); err != nil {
		t.Fatalf("Publish: %v", err)
	}

	var sawCheckout bool
	var pushes int
	for _, c := range run.calls {
		if c == "checkout -b main" {
			sawCheckout = true
		}
		if c == "push -u origin main" {
			pushes++
		}
	}
	if !sawCheckout {
		t.Error("branch was not created")
	}
	if pushes != 2 {
		t.Errorf("pushes = %d, want retry after branch creation", pushes)
	}
}

func TestPublishFailurePropagates(t *testing.T) {
	run := &fakeRunner{
		fail: map[string]bool{"push -u origin main": true},
		out:  map[string]string{"push -u origin main": "fatal: could not read from remote"},
	}
	_, err := newPublisher(run).Publish(context.Background(), "m")
	if err == nil {
		t.Fatal("push failure not surfaced")
	}
	if !strings.Contains(err.Error(), "could not read from remote") {
		t.Errorf("err = %v, want git output included", err)
	}
}
