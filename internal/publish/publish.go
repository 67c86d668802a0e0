// Package publish commits the site repository and pushes it to its
// git remote.
package publish

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

// DefaultMessage is the commit message used when the caller gives none.
const DefaultMessage = "Update portfolio content"

// Runner executes one git subcommand in dir and returns its combined
// output.
type Runner interface {
	Run(ctx context.Context, dir string, args ...string) (string, error)
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	return string(out), err
}

// Publisher pushes the repository at root to a remote branch.
type Publisher struct {
	root   string
	remote string
	branch string
	run    Runner
	log    *slog.Logger
}

// New creates a Publisher that shells out to git.
func New(root, remote, branch string, log *slog.Logger) *Publisher {
	return NewWithRunner(root, remote, branch, execRunner{}, log)
}

// NewWithRunner creates a Publisher with a custom Runner.
func NewWithRunner(root, remote, branch string, run Runner, log *slog.Logger) *Publisher {
	if branch == "" {
		branch = "main"
	}
	if log == nil {
		log = slog.Default()
	}
	return &Publisher{root: root, remote: remote, branch: branch, run: run, log: log}
}

// Publish stages everything under root, commits with message and pushes
// to origin. A repository or remote that does not exist yet is set up
// first. A commit with no changes is not an error.
func (p *Publisher) Publish(ctx context.Context, message string) (string, error) {
	if message == "" {
		message = DefaultMessage
	}
	if err := p.ensureRepo(ctx); err != nil {
		return "", err
	}

	var output strings.Builder
	steps := [][]string{
		{"add", "."},
		{"commit", "-m", message},
		{"push", "-u", "origin", p.branch},
	}
	for _, args := range steps {
		p.log.Info("running git", slog.String("args", strings.Join(args, " ")))
		out, err := p.run.Run(ctx, p.root, args...)
		output.WriteString(out)
		if err == nil {
			continue
		}
		if strings.Contains(out, "nothing to commit") {
			p.log.Info("nothing to commit")
			continue
		}
		if strings.Contains(out, "src refspec "+p.branch+" does not match any") {
			// No commit exists under the branch name yet.
			p.log.Warn("creating branch", slog.String("branch", p.branch))
			if out, err := p.run.Run(ctx, p.root, "checkout", "-b", p.branch); err != nil {
				return output.String(), gitError("checkout", err, out)
			}
			out, err := p.run.Run(ctx, p.root, args...)
			output.WriteString(out)
			if err != nil {
				return output.String(), gitError(args[0], err, out)
			}
			continue
		}
		return output.String(), gitError(args[0], err, out)
	}

	p.log.Info("published", slog.String("branch", p.branch))
	return strings.TrimSpace(output.String()), nil
}

// ensureRepo initializes the repository and its origin remote when
// either is missing, mirroring a first-time deploy.
func (p *Publisher) ensureRepo(ctx context.Context) error {
	if _, err := p.run.Run(ctx, p.root, "rev-parse", "--git-dir"); err != nil {
		p.log.Warn("no git repository, initializing", slog.String("dir", p.root))
		for _, args := range [][]string{
			{"init"},
			{"remote", "add", "origin", p.remote},
			{"branch", "-M", p.branch},
		} {
			if out, err := p.run.Run(ctx, p.root, args...); err != nil {
				return gitError(args[0], err, out)
			}
		}
		return nil
	}

	if _, err := p.run.Run(ctx, p.root, "remote", "get-url", "origin"); err != nil {
		p.log.Warn("remote origin not configured, adding", slog.String("remote", p.remote))
		if out, err := p.run.Run(ctx, p.root, "remote", "add", "origin", p.remote); err != nil {
			return gitError("remote", err, out)
		}
	}
	return nil
}

func gitError(sub string, err error, out string) error {
	if trimmed := strings.TrimSpace(out); trimmed != "" {
		return fmt.Errorf("git %s: %w: %s", sub, err, trimmed)
	}
	return fmt.Errorf("git %s: %w", sub, err)
}
