package taskwarrior

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"taskwarrior-mcp/internal/model"
	"taskwarrior-mcp/internal/task/repository"
	pkgLog "taskwarrior-mcp/pkg/log"
)

// Config configures the subprocess client.
type Config struct {
	Bin             string        // binary name or path, usually "task"
	Taskrc          string        // TASKRC override, empty keeps the process env
	Taskdata        string        // TASKDATA override, empty keeps the process env
	Timeout         time.Duration // per-invocation deadline
	RateLimitPerMin int           // invocation budget
	CacheTTL        time.Duration // export cache entry lifetime
	CacheSize       int           // max cached export results
}

// Client invokes the task binary. Reads go through a short-lived export
// cache so operations that need the task set more than once (context,
// overview, dependencies) pay for a single subprocess; any mutation purges
// the cache. The rate limiter protects the binary from runaway agent loops
// by waiting, not rejecting.
type Client struct {
	cfg     Config
	env     []string
	limiter *rate.Limiter
	cache   *expirable.LRU[string, []model.Task]
	l       pkgLog.Logger
}

// New creates a Taskwarrior subprocess client.
func New(cfg Config, l pkgLog.Logger) *Client {
	if cfg.Bin == "" {
		cfg.Bin = "task"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.RateLimitPerMin <= 0 {
		cfg.RateLimitPerMin = 120
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = 32
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 3 * time.Second
	}

	env := os.Environ()
	if cfg.Taskrc != "" {
		env = append(env, "TASKRC="+cfg.Taskrc)
	}
	if cfg.Taskdata != "" {
		env = append(env, "TASKDATA="+cfg.Taskdata)
	}

	burst := cfg.RateLimitPerMin / 10
	if burst < 1 {
		burst = 1
	}

	return &Client{
		cfg:     cfg,
		env:     env,
		limiter: rate.NewLimiter(rate.Limit(float64(cfg.RateLimitPerMin)/60.0), burst),
		cache:   expirable.NewLRU[string, []model.Task](cfg.CacheSize, nil, cfg.CacheTTL),
		l:       l,
	}
}

// Export runs `task <filters...> export` and decodes the JSON array.
// Every call gets its own copy of the cached result: callers attach derived
// fields and re-sort in place, and the stdio server dispatches tool calls
// concurrently, so a shared backing array would race.
func (c *Client) Export(ctx context.Context, filters ...string) ([]model.Task, error) {
	key := strings.Join(filters, "\x00")
	if tasks, ok := c.cache.Get(key); ok {
		return cloneTasks(tasks), nil
	}

	args := make([]string, 0, len(filters)+3)
	args = append(args, filters...)
	args = append(args, "export", "rc.json.array=on", "rc.confirmation=off")

	out, err := c.run(ctx, args)
	if err != nil {
		return nil, err
	}

	tasks := []model.Task{}
	if strings.TrimSpace(out) != "" {
		if err := json.Unmarshal([]byte(out), &tasks); err != nil {
			return nil, &repository.ParseError{Output: out, Err: err}
		}
	}

	c.cache.Add(key, tasks)
	return cloneTasks(tasks), nil
}

// cloneTasks copies the slice and its elements. Enrichment only assigns
// fresh values to element fields, so an element copy is enough isolation.
func cloneTasks(tasks []model.Task) []model.Task {
	out := make([]model.Task, len(tasks))
	copy(out, tasks)
	return out
}

// Mutate runs a state-changing command and purges the export cache so the
// next read observes the effect.
func (c *Client) Mutate(ctx context.Context, args ...string) (string, error) {
	c.cache.Purge()
	full := make([]string, 0, len(args)+1)
	full = append(full, args...)
	full = append(full, "rc.confirmation=off")
	return c.run(ctx, full)
}

func (c *Client) run(ctx context.Context, args []string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, c.cfg.Bin, args...)
	cmd.Env = c.env

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	c.l.Debugf(ctx, "taskwarrior: running %s %s", c.cfg.Bin, strings.Join(args, " "))

	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", repository.ErrBinaryNotFound
		}
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			errOut := stderr.String()
			if strings.TrimSpace(errOut) == "" {
				errOut = stdout.String()
			}
			return "", &repository.CommandError{Args: args, Stderr: errOut}
		}
		return "", err
	}

	return strings.TrimSpace(stdout.String()), nil
}
