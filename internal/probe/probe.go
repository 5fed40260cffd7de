// Package probe checks whether saved clusters' API servers answer.
//
// A probe is an unauthenticated GET of the server's /version endpoint, which
// OpenShift and Kubernetes serve to anonymous clients. It does not log in and
// does not read the kubeconfig, so it says nothing about whether the saved
// username can authenticate.
package probe

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aryankumar/oclogin/internal/executor"
	"github.com/aryankumar/oclogin/internal/registry"
	"k8s.io/apimachinery/pkg/version"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
)

const (
	// DefaultTimeout bounds a single probe
	DefaultTimeout = 10 * time.Second

	// DefaultParallel is the number of clusters probed at once
	DefaultParallel = 5
)

// Status is the outcome of probing one saved cluster
type Status struct {
	Name          string `json:"name" yaml:"name"`
	URL           string `json:"url" yaml:"url"`
	Reachable     bool   `json:"reachable" yaml:"reachable"`
	ServerVersion string `json:"serverVersion,omitempty" yaml:"serverVersion,omitempty"`
	Error         string `json:"error,omitempty" yaml:"error,omitempty"`
	Latency       string `json:"latency" yaml:"latency"`
}

// Options configures a Prober
type Options struct {
	// Timeout bounds each probe; zero means DefaultTimeout
	Timeout time.Duration

	// Parallel is the worker count; zero means DefaultParallel
	Parallel int

	// Insecure skips TLS certificate verification
	Insecure bool
}

// Prober probes API servers
type Prober struct {
	opts   Options
	logger *slog.Logger

	// serverVersion is replaced in tests
	serverVersion func(cfg *rest.Config) (*version.Info, error)
}

// NewProber creates a prober, filling zero options with defaults
func NewProber(opts Options, logger *slog.Logger) *Prober {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.Parallel <= 0 {
		opts.Parallel = DefaultParallel
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Prober{
		opts:          opts,
		logger:        logger,
		serverVersion: discoverServerVersion,
	}
}

// restConfig builds an anonymous client config for url
func (p *Prober) restConfig(url string) *rest.Config {
	return &rest.Config{
		Host:    url,
		Timeout: p.opts.Timeout,
		TLSClientConfig: rest.TLSClientConfig{
			Insecure: p.opts.Insecure,
		},
	}
}

func discoverServerVersion(cfg *rest.Config) (*version.Info, error) {
	clientset, err := kubernetes.NewForConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create clientset: %w", err)
	}
	return clientset.Discovery().ServerVersion()
}

// Probe checks a single cluster. Failures are reported in the Status, not as an error.
func (p *Prober) Probe(ctx context.Context, c registry.Cluster) Status {
	start := time.Now()
	gitVersion, err := p.probe(ctx, c.URL)
	return p.status(c, gitVersion, err, time.Since(start))
}

func (p *Prober) probe(ctx context.Context, url string) (string, error) {
	if url == "" {
		return "", fmt.Errorf("cluster has no url")
	}

	probeCtx, cancel := context.WithTimeout(ctx, p.opts.Timeout)
	defer cancel()

	type result struct {
		gitVersion string
		err        error
	}
	resultCh := make(chan result, 1)

	// ServerVersion takes no context, so the timeout is enforced here
	go func() {
		info, err := p.serverVersion(p.restConfig(url))
		if err != nil {
			resultCh <- result{err: err}
			return
		}
		resultCh <- result{gitVersion: info.GitVersion}
	}()

	select {
	case <-probeCtx.Done():
		return "", fmt.Errorf("probe timeout: %w", probeCtx.Err())
	case res := <-resultCh:
		if res.err != nil {
			return "", fmt.Errorf("failed to get server version: %w", res.err)
		}
		return res.gitVersion, nil
	}
}

func (p *Prober) status(c registry.Cluster, gitVersion string, err error, latency time.Duration) Status {
	s := Status{
		Name:          c.Name,
		URL:           c.URL,
		Reachable:     err == nil,
		ServerVersion: gitVersion,
		Latency:       latency.Round(time.Millisecond).String(),
	}
	if err != nil {
		s.Error = err.Error()
	}
	return s
}

// Check probes every cluster on a worker pool and returns statuses in registry order
func (p *Prober) Check(ctx context.Context, clusters registry.Registry) ([]Status, error) {
	tasks := make([]executor.Task, 0, len(clusters))
	for _, c := range clusters {
		url := c.URL
		tasks = append(tasks, executor.Task{
			Name: c.Name,
			Run: func(ctx context.Context) (interface{}, error) {
				return p.probe(ctx, url)
			},
		})
	}

	pool := executor.NewPool(p.opts.Parallel, p.logger)
	results, err := pool.Run(ctx, tasks, func(completed, total int) {
		p.logger.Debug("probe progress", "completed", completed, "total", total)
	})
	if err != nil {
		return nil, err
	}

	statuses := make([]Status, len(results))
	for i, res := range results {
		gitVersion, _ := res.Data.(string)
		statuses[i] = p.status(clusters[i], gitVersion, res.Error, res.Duration)
	}

	p.logger.Debug("probed clusters", "summary", executor.Summarize(results).String())

	return statuses, nil
}

// Unreachable returns the statuses whose probe failed
func Unreachable(statuses []Status) []Status {
	failed := make([]Status, 0)
	for _, s := range statuses {
		if !s.Reachable {
			failed = append(failed, s)
		}
	}
	return failed
}
