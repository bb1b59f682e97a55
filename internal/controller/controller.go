// Package controller drives the QuickHelp front ends: it validates form
// input, calls the backend, and writes typed content to a Surface.
//
// Every operation follows the same shape: validate, show the loading
// overlay, issue the request, hide the overlay, then render either the
// result, the backend's failure text, or the transport error. Background
// loads (stats, saved clusters) skip the overlay and only log failures.
package controller

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"quickhelp/internal/api"
	"quickhelp/internal/metrics"
)

// User-visible texts.
const (
	msgEmptyQuery    = "Please enter a search query"
	msgEmptyQuestion = "Please enter a question"
	msgEmptyPath     = "Please enter a document path"
	msgNoResults     = "No results found"
	msgNoClusters    = `No clusters available. Click "Run Clustering" to generate.`

	prefixSearch  = "Error performing search: "
	prefixAsk     = "Error asking question: "
	prefixCluster = "Error clustering: "
	prefixIndex   = "Error indexing documents: "
)

// Defaults applied by New.
const (
	DefaultMaxResults = 10
	DefaultAskMode    = "hybrid"
)

// Operation names a controller operation in logs and metrics. The names
// match the backend endpoint each one calls.
type Operation string

const (
	OpStats    Operation = "stats"
	OpClusters Operation = "clusters"
	OpSearch   Operation = "search"
	OpAsk      Operation = "ask"
	OpCluster  Operation = "cluster"
	OpIndex    Operation = "index"
)

// Outcome is how an operation ended.
type Outcome string

const (
	// OutcomeOK covers results and informational messages.
	OutcomeOK Outcome = "ok"
	// OutcomeInvalid means validation failed and no request was made.
	OutcomeInvalid Outcome = "invalid"
	// OutcomeFailed means the backend answered success:false.
	OutcomeFailed Outcome = "failed"
	// OutcomeError means the request itself failed.
	OutcomeError Outcome = "error"
	// OutcomeStale means a newer call of the same operation superseded this
	// one and its response was discarded.
	OutcomeStale Outcome = "stale"
)

// Failed reports whether the outcome left an error block on screen.
func (o Outcome) Failed() bool {
	return o == OutcomeInvalid || o == OutcomeFailed || o == OutcomeError
}

// Backend is the subset of *api.Client the controller needs.
type Backend interface {
	Stats(ctx context.Context) (*api.StatsResponse, error)
	Clusters(ctx context.Context) (*api.ClustersResponse, error)
	Search(ctx context.Context, req api.SearchRequest) (*api.SearchResponse, error)
	Ask(ctx context.Context, req api.AskRequest) (*api.AskResponse, error)
	Cluster(ctx context.Context, req api.ClusterRequest) (*api.ClustersResponse, error)
	Index(ctx context.Context, req api.IndexRequest) (*api.IndexResponse, error)
}

// Options tune a Controller. Zero values take defaults.
type Options struct {
	// MaxResults is sent with every search.
	MaxResults int
	// AskMode is the retrieval mode used for questions.
	AskMode string
	// Timeout bounds each request. Zero means no timeout.
	Timeout time.Duration
	Logger  *zap.Logger
}

// Controller runs operations against a backend and renders to a Surface.
// It is safe for concurrent use.
type Controller struct {
	backend Backend
	surface Surface
	opts    Options
	logger  *zap.Logger

	mu    sync.Mutex
	slots map[Operation]*slot
}

// slot tracks the latest call of one operation.
type slot struct {
	gen    uint64
	cancel context.CancelFunc
}

// New creates a Controller.
func New(backend Backend, surface Surface, opts Options) *Controller {
	if opts.MaxResults <= 0 {
		opts.MaxResults = DefaultMaxResults
	}
	if opts.AskMode == "" {
		opts.AskMode = DefaultAskMode
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		backend: backend,
		surface: surface,
		opts:    opts,
		logger:  logger,
		slots:   make(map[Operation]*slot),
	}
}

// Surface returns the surface the controller writes to.
func (c *Controller) Surface() Surface {
	return c.surface
}

// SetTab activates tab without loading anything.
func (c *Controller) SetTab(tab Tab) {
	c.surface.SetActiveTab(tab)
}

// SelectTab activates tab. Entering the cluster tab loads saved clusters.
func (c *Controller) SelectTab(ctx context.Context, tab Tab) Outcome {
	c.SetTab(tab)
	if tab == TabCluster {
		return c.LoadClusters(ctx)
	}
	return OutcomeOK
}

// LoadStats refreshes the header counters. Failures leave the counters
// untouched.
func (c *Controller) LoadStats(ctx context.Context) Outcome {
	ctx, gen, done := c.begin(ctx, OpStats)
	defer done()

	resp, err := c.backend.Stats(ctx)
	if !c.commit(OpStats, gen, nil) {
		return c.finish(OpStats, OutcomeStale)
	}
	if err != nil {
		c.logger.Warn("error loading stats", zap.Error(err))
		return c.finish(OpStats, OutcomeError)
	}
	if !resp.Success || resp.Stats == nil {
		c.logger.Debug("stats unavailable", zap.String("message", resp.Message))
		return c.finish(OpStats, OutcomeFailed)
	}
	counters := Counters{
		Documents: resp.Stats.TotalDocuments,
		Words:     resp.Stats.TotalWords,
		Tags:      resp.Stats.UniqueTags,
	}
	if !c.commit(OpStats, gen, func() { c.surface.SetCounters(counters) }) {
		return c.finish(OpStats, OutcomeStale)
	}
	return c.finish(OpStats, OutcomeOK)
}

// LoadClusters shows the saved clusters, or an info message when there are
// none. Transport failures are only logged.
func (c *Controller) LoadClusters(ctx context.Context) Outcome {
	ctx, gen, done := c.begin(ctx, OpClusters)
	defer done()

	resp, err := c.backend.Clusters(ctx)
	if err != nil {
		if !c.commit(OpClusters, gen, nil) {
			return c.finish(OpClusters, OutcomeStale)
		}
		c.logger.Warn("error loading clusters", zap.Error(err))
		return c.finish(OpClusters, OutcomeError)
	}
	if resp.Success && len(resp.Clusters) > 0 {
		return c.publish(OpClusters, gen, TargetClusterResults, ClusterList{Clusters: resp.Clusters}, OutcomeOK)
	}
	text := resp.Message
	if text == "" {
		text = msgNoClusters
	}
	return c.publish(OpClusters, gen, TargetClusterResults, InfoMessage(text), OutcomeOK)
}

// Search runs a ranked search for query in the given mode. An empty query
// still supersedes a search in flight.
func (c *Controller) Search(ctx context.Context, query, mode string) Outcome {
	ctx, gen, done := c.begin(ctx, OpSearch)
	defer done()

	query = strings.TrimSpace(query)
	if query == "" {
		return c.publish(OpSearch, gen, TargetSearchResults, ErrorMessage(msgEmptyQuery), OutcomeInvalid)
	}

	resp, err := withLoading(c.surface, func() (*api.SearchResponse, error) {
		return c.backend.Search(ctx, api.SearchRequest{
			Query:      query,
			Mode:       mode,
			MaxResults: c.opts.MaxResults,
		})
	})
	switch {
	case err != nil:
		return c.publish(OpSearch, gen, TargetSearchResults, ErrorMessage(prefixSearch+transportText(OpSearch, err)), OutcomeError)
	case !resp.Success:
		return c.publish(OpSearch, gen, TargetSearchResults, ErrorMessage(resp.FailureText()), OutcomeFailed)
	case len(resp.Results) == 0:
		return c.publish(OpSearch, gen, TargetSearchResults, InfoMessage(msgNoResults), OutcomeOK)
	}
	return c.publish(OpSearch, gen, TargetSearchResults, SearchResults{Results: resp.Results}, OutcomeOK)
}

// Ask asks a question and shows the answer with its sources.
func (c *Controller) Ask(ctx context.Context, question string) Outcome {
	ctx, gen, done := c.begin(ctx, OpAsk)
	defer done()

	question = strings.TrimSpace(question)
	if question == "" {
		return c.publish(OpAsk, gen, TargetAnswerResult, ErrorMessage(msgEmptyQuestion), OutcomeInvalid)
	}

	resp, err := withLoading(c.surface, func() (*api.AskResponse, error) {
		return c.backend.Ask(ctx, api.AskRequest{Question: question, Mode: c.opts.AskMode})
	})
	switch {
	case err != nil:
		return c.publish(OpAsk, gen, TargetAnswerResult, ErrorMessage(prefixAsk+transportText(OpAsk, err)), OutcomeError)
	case !resp.Success:
		return c.publish(OpAsk, gen, TargetAnswerResult, ErrorMessage(resp.FailureText()), OutcomeFailed)
	}
	return c.publish(OpAsk, gen, TargetAnswerResult, Answer{Text: resp.Answer, Sources: resp.Sources}, OutcomeOK)
}

// RunClustering clusters the knowledge base with algorithm.
func (c *Controller) RunClustering(ctx context.Context, algorithm string) Outcome {
	ctx, gen, done := c.begin(ctx, OpCluster)
	defer done()

	resp, err := withLoading(c.surface, func() (*api.ClustersResponse, error) {
		return c.backend.Cluster(ctx, api.ClusterRequest{Algorithm: algorithm})
	})
	switch {
	case err != nil:
		return c.publish(OpCluster, gen, TargetClusterResults, ErrorMessage(prefixCluster+transportText(OpCluster, err)), OutcomeError)
	case !resp.Success:
		return c.publish(OpCluster, gen, TargetClusterResults, ErrorMessage(resp.FailureText()), OutcomeFailed)
	case len(resp.Clusters) == 0:
		return c.publish(OpCluster, gen, TargetClusterResults, InfoMessage(msgNoClusters), OutcomeOK)
	}
	return c.publish(OpCluster, gen, TargetClusterResults, ClusterList{Clusters: resp.Clusters}, OutcomeOK)
}

// Index indexes the documents under path. On success the header counters
// are refreshed.
func (c *Controller) Index(ctx context.Context, path string) Outcome {
	ctx, gen, done := c.begin(ctx, OpIndex)
	defer done()

	path = strings.TrimSpace(path)
	if path == "" {
		return c.publish(OpIndex, gen, TargetIndexResult, ErrorMessage(msgEmptyPath), OutcomeInvalid)
	}

	resp, err := withLoading(c.surface, func() (*api.IndexResponse, error) {
		return c.backend.Index(ctx, api.IndexRequest{Path: path})
	})
	switch {
	case err != nil:
		return c.publish(OpIndex, gen, TargetIndexResult, ErrorMessage(prefixIndex+transportText(OpIndex, err)), OutcomeError)
	case !resp.Success:
		return c.publish(OpIndex, gen, TargetIndexResult, ErrorMessage(resp.FailureText()), OutcomeFailed)
	}
	outcome := c.publish(OpIndex, gen, TargetIndexResult, IndexReport{Message: resp.Message, Stats: resp.Stats}, OutcomeOK)
	if outcome == OutcomeOK {
		c.LoadStats(ctx)
	}
	return outcome
}

// begin supersedes any in-flight call of op and returns the context and
// generation for the new one. done must be called when the call returns.
func (c *Controller) begin(ctx context.Context, op Operation) (context.Context, uint64, func()) {
	ctx, cancel := context.WithCancel(ctx)
	if c.opts.Timeout > 0 {
		var cancelTimeout context.CancelFunc
		ctx, cancelTimeout = context.WithTimeout(ctx, c.opts.Timeout)
		cancelParent := cancel
		cancel = func() {
			cancelTimeout()
			cancelParent()
		}
	}

	c.mu.Lock()
	s, ok := c.slots[op]
	if !ok {
		s = &slot{}
		c.slots[op] = s
	}
	if s.cancel != nil {
		c.logger.Debug("superseding in-flight request", zap.String("operation", string(op)))
		s.cancel()
	}
	s.gen++
	gen := s.gen
	s.cancel = cancel
	c.mu.Unlock()

	done := func() {
		c.mu.Lock()
		if s.gen == gen {
			s.cancel = nil
		}
		c.mu.Unlock()
		cancel()
	}
	return ctx, gen, done
}

// commit runs write, which may be nil, only if gen is still the latest call
// of op. The check and the write share one lock, so a superseded call can
// never land after its successor.
func (c *Controller) commit(op Operation, gen uint64, write func()) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if s, ok := c.slots[op]; !ok || s.gen != gen {
		return false
	}
	if write != nil {
		write()
	}
	return true
}

// publish renders content into target and finishes op with outcome, or
// finishes it as stale when a newer call has started.
func (c *Controller) publish(op Operation, gen uint64, target Target, content Content, outcome Outcome) Outcome {
	if !c.commit(op, gen, func() { c.surface.Render(target, content) }) {
		return c.finish(op, OutcomeStale)
	}
	return c.finish(op, outcome)
}

func (c *Controller) finish(op Operation, outcome Outcome) Outcome {
	metrics.ObserveOperation(string(op), string(outcome))
	c.logger.Debug("operation finished",
		zap.String("operation", string(op)),
		zap.String("outcome", string(outcome)),
	)
	return outcome
}

// withLoading holds the overlay for exactly the duration of call.
func withLoading[T any](s Surface, call func() (T, error)) (T, error) {
	s.ShowLoading()
	defer s.HideLoading()
	return call()
}

// transportText strips the endpoint prefix the api client adds, since the
// rendered message already names the operation.
func transportText(op Operation, err error) string {
	return strings.TrimPrefix(err.Error(), string(op)+": ")
}
