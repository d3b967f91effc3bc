package giphy

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// OperationState is the lifecycle state of an Operation.
type OperationState int32

const (
	StatePending OperationState = iota
	StateRunning
	StateFinished
	StateCancelled
)

// String returns the state name for logging.
func (s OperationState) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateRunning:
		return "running"
	case StateFinished:
		return "finished"
	case StateCancelled:
		return "cancelled"
	}
	return "unknown"
}

// CompletionFunc receives the terminal outcome of an operation. body is the
// parsed top-level JSON object when one was obtained (it is also delivered
// alongside an *HTTPError so callers can inspect diagnostic fields), resp is
// the raw HTTP response when one was obtained, and err is nil on success or
// exactly one of *TransportError, *ParseError, *ShapeError, *HTTPError.
type CompletionFunc func(body map[string]any, resp *http.Response, err error)

// Operation drives a single RequestSpec through one network call. The
// completion callback fires at most once; a cancel observed before delivery
// suppresses the callback entirely, and callers then observe the outcome
// through State instead.
type Operation struct {
	spec       RequestSpec
	httpClient *http.Client
	logger     zerolog.Logger
	completion CompletionFunc

	state     atomic.Int32
	cancelled atomic.Bool
	done      chan struct{}
	doneOnce  sync.Once

	mu     sync.Mutex
	cancel context.CancelFunc
}

func newOperation(spec RequestSpec, httpClient *http.Client, logger zerolog.Logger, completion CompletionFunc) *Operation {
	return &Operation{
		spec:       spec,
		httpClient: httpClient,
		logger:     logger,
		completion: completion,
		done:       make(chan struct{}),
	}
}

// State returns the current lifecycle state.
func (o *Operation) State() OperationState {
	return OperationState(o.state.Load())
}

// Done returns a channel closed once the operation reaches a terminal state,
// whether finished or cancelled.
func (o *Operation) Done() <-chan struct{} {
	return o.done
}

// Start issues the network call on a background goroutine. The caller is
// never blocked. Starting an operation twice is a no-op.
func (o *Operation) Start(ctx context.Context) {
	if !o.state.CompareAndSwap(int32(StatePending), int32(StateRunning)) {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	o.mu.Lock()
	o.cancel = cancel
	cancelled := o.cancelled.Load()
	o.mu.Unlock()
	if cancelled {
		// Cancel raced with Start; never hit the network.
		cancel()
		o.settle(StateCancelled)
		return
	}

	go o.run(ctx)
}

// Cancel requests cooperative cancellation. An operation cancelled before its
// network call returns delivers no completion at all. Cancelling a finished
// operation has no effect.
func (o *Operation) Cancel() {
	if o.state.CompareAndSwap(int32(StatePending), int32(StateCancelled)) {
		o.cancelled.Store(true)
		o.doneOnce.Do(func() { close(o.done) })
		return
	}

	o.cancelled.Store(true)
	o.mu.Lock()
	cancel := o.cancel
	o.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

func (o *Operation) settle(s OperationState) {
	o.state.Store(int32(s))
	o.doneOnce.Do(func() { close(o.done) })
}

func (o *Operation) finish(body map[string]any, resp *http.Response, err error) {
	o.state.Store(int32(StateFinished))
	if o.completion != nil {
		o.completion(body, resp, err)
	}
	o.doneOnce.Do(func() { close(o.done) })
}

func (o *Operation) run(ctx context.Context) {
	var bodyReader io.Reader
	if len(o.spec.Body) > 0 {
		bodyReader = bytes.NewReader(o.spec.Body)
	}

	req, err := http.NewRequestWithContext(ctx, o.spec.Method, o.spec.URL, bodyReader)
	if err != nil {
		o.finish(nil, nil, &TransportError{Err: err})
		return
	}
	for k, v := range o.spec.Headers {
		req.Header.Set(k, v)
	}

	resp, err := o.httpClient.Do(req)

	// Cancellation is checked once, here, after the call returns. A cancel
	// requested later does not suppress delivery.
	if o.cancelled.Load() {
		if resp != nil {
			resp.Body.Close()
		}
		o.logger.Debug().Str("url", o.spec.URL).Msg("Request cancelled, suppressing completion")
		o.settle(StateCancelled)
		return
	}

	if err != nil {
		o.finish(nil, nil, &TransportError{Err: err})
		return
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		o.finish(nil, resp, &TransportError{Err: err})
		return
	}

	o.logger.Debug().
		Str("url", o.spec.URL).
		Int("status", resp.StatusCode).
		Int("bytes", len(raw)).
		Msg("Received API response")

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		o.finish(nil, resp, &ParseError{Err: err})
		return
	}
	obj, ok := parsed.(map[string]any)
	if !ok {
		o.finish(nil, resp, &ShapeError{Value: parsed})
		return
	}

	if resp.StatusCode != http.StatusOK {
		o.finish(obj, resp, httpErrorFromBody(resp.StatusCode, obj))
		return
	}

	o.finish(obj, resp, nil)
}

// httpErrorFromBody builds the HTTPError for a non-200 response. The
// API-reported meta.status and meta.msg are authoritative over the transport
// status when present.
func httpErrorFromBody(transportStatus int, body map[string]any) *HTTPError {
	herr := &HTTPError{StatusCode: transportStatus}
	meta, ok := body["meta"].(map[string]any)
	if !ok {
		return herr
	}
	if status, ok := asInt(meta["status"]); ok {
		herr.StatusCode = status
	}
	herr.Message = optString(meta, "msg")
	return herr
}
