package stream

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/goodnatureofminers/algowatch-backend/internal/clock"
	"github.com/goodnatureofminers/algowatch-backend/internal/model"
	"github.com/goodnatureofminers/algowatch-backend/internal/window"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// State is the connection manager's lifecycle state.
type State string

const (
	StateDisconnected   State = "disconnected"
	StateConnecting     State = "connecting"
	StateOpen           State = "open"
	StateClosed         State = "closed"
	StateErrored        State = "errored"
	StateReconnecting   State = "reconnecting"
	StateManuallyClosed State = "manuallyClosed"
)

type (
	// Sink receives delivered events. The engine implements it.
	Sink interface {
		ApplySnapshot(records []model.BlockRecord, fallback bool)
		ApplyIncrement(rec model.BlockRecord) window.ApplyResult
		SetStatus(status model.ConnectionStatus)
	}

	// Metrics tracks transport instrumentation.
	Metrics interface {
		ObserveMessage(kind string)
		ObserveProtocolError()
		ObserveConnectAttempt(err error)
		ObserveFallbackActivated()
	}
)

// Config tunes the connection manager.
type Config struct {
	Endpoint             string
	HandshakeTimeout     time.Duration
	ReconnectDelay       time.Duration
	MaxReconnectDelay    time.Duration
	MaxReconnectAttempts int
	FallbackTimeout      time.Duration
	FallbackWindowSize   int
	Logger               *zap.Logger
	Metrics              Metrics
}

const (
	defaultHandshakeTimeout   = 10 * time.Second
	defaultReconnectDelay     = 2 * time.Second
	defaultMaxReconnectDelay  = 30 * time.Second
	defaultReconnectAttempts  = 10
	defaultFallbackTimeout    = 2 * time.Second
	defaultFallbackWindowSize = 60
)

// Client owns one live subscription. It delivers Snapshot and Increment
// events to the sink sequentially from a single goroutine, reconnects with
// bounded backoff, and injects a synthetic snapshot if no genuine one arrives
// within the fallback timeout. Stop releases the transport and all timers; no
// sink call happens after Stop returns.
type Client struct {
	cfg     Config
	sink    Sink
	logger  *zap.Logger
	metrics Metrics

	stateMu sync.RWMutex
	state   State

	connMu     sync.Mutex
	conn       *websocket.Conn
	connClosed bool

	fbMu        sync.Mutex
	fbTimer     *time.Timer
	fbStopped   bool
	fbSatisfied bool

	started bool
	cancel  context.CancelFunc
	done    chan struct{}
	stop    sync.Once
}

// NewClient validates the configuration, applies defaults, and returns a
// Client ready to Start.
func NewClient(cfg Config, sink Sink) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("endpoint is required")
	}
	if sink == nil {
		return nil, errors.New("sink is required")
	}
	if cfg.Logger == nil {
		return nil, errors.New("logger is required")
	}
	if cfg.Metrics == nil {
		return nil, errors.New("stream metrics is required")
	}
	if cfg.HandshakeTimeout <= 0 {
		cfg.HandshakeTimeout = defaultHandshakeTimeout
	}
	if cfg.ReconnectDelay <= 0 {
		cfg.ReconnectDelay = defaultReconnectDelay
	}
	if cfg.MaxReconnectDelay <= 0 {
		cfg.MaxReconnectDelay = defaultMaxReconnectDelay
	}
	if cfg.MaxReconnectAttempts <= 0 {
		cfg.MaxReconnectAttempts = defaultReconnectAttempts
	}
	if cfg.FallbackTimeout <= 0 {
		cfg.FallbackTimeout = defaultFallbackTimeout
	}
	if cfg.FallbackWindowSize <= 0 {
		cfg.FallbackWindowSize = defaultFallbackWindowSize
	}

	return &Client{
		cfg:     cfg,
		sink:    sink,
		logger:  cfg.Logger.Named("stream").With(zap.String("endpoint", cfg.Endpoint)),
		metrics: cfg.Metrics,
		state:   StateDisconnected,
		done:    make(chan struct{}),
	}, nil
}

// Start begins connecting and arms the fallback timer. It may be called once.
func (c *Client) Start(ctx context.Context) error {
	if c.started {
		return errors.New("client already started")
	}
	c.started = true

	ctx, c.cancel = context.WithCancel(ctx)

	c.fbMu.Lock()
	c.fbTimer = time.AfterFunc(c.cfg.FallbackTimeout, c.activateFallback)
	c.fbMu.Unlock()

	go c.run(ctx)
	return nil
}

// Stop tears the subscription down. After it returns no further sink call is
// made and every timer and connection owned by the client is released.
func (c *Client) Stop() {
	c.stop.Do(func() {
		if !c.started {
			c.setState(StateManuallyClosed)
			return
		}
		c.cancel()
		c.closeConn()
		<-c.done

		c.fbMu.Lock()
		c.fbStopped = true
		if c.fbTimer != nil {
			c.fbTimer.Stop()
		}
		c.fbMu.Unlock()

		c.setState(StateManuallyClosed)
	})
}

// State returns the current lifecycle state.
func (c *Client) State() State {
	c.stateMu.RLock()
	defer c.stateMu.RUnlock()
	return c.state
}

func (c *Client) setState(s State) {
	c.stateMu.Lock()
	c.state = s
	c.stateMu.Unlock()
}

func (c *Client) run(ctx context.Context) {
	defer close(c.done)

	backoff := clock.Backoff{Base: c.cfg.ReconnectDelay, Max: c.cfg.MaxReconnectDelay}
	attempt := 0

	for {
		if ctx.Err() != nil {
			c.setState(StateDisconnected)
			return
		}

		c.setState(StateConnecting)
		conn, err := c.dial(ctx)
		c.metrics.ObserveConnectAttempt(err)
		if err != nil {
			c.logger.Warn("connect failed", zap.Error(err), zap.Int("attempt", attempt+1))
			c.setState(StateErrored)
			if !c.backoffOrGiveUp(ctx, backoff, &attempt) {
				return
			}
			continue
		}

		attempt = 0
		c.storeConn(conn)
		if ctx.Err() != nil {
			// Stop ran between dial and storeConn and may have missed the
			// conn; release it here and leave the sink untouched.
			c.closeConn()
			c.setState(StateDisconnected)
			return
		}
		c.setState(StateOpen)
		c.sink.SetStatus(model.StatusConnected)
		c.logger.Info("subscription open")

		readErr := c.readLoop(conn)
		_ = conn.Close()
		c.storeConn(nil)

		if ctx.Err() != nil {
			c.setState(StateDisconnected)
			return
		}

		c.logger.Warn("connection lost", zap.Error(readErr))
		c.setState(StateErrored)
		c.sink.SetStatus(model.StatusReconnecting)
		if !c.backoffOrGiveUp(ctx, backoff, &attempt) {
			return
		}
	}
}

// backoffOrGiveUp counts an attempt and sleeps before the next connect.
// Returns false once the attempt limit is exhausted or the context ends.
func (c *Client) backoffOrGiveUp(ctx context.Context, backoff clock.Backoff, attempt *int) bool {
	*attempt++
	if *attempt >= c.cfg.MaxReconnectAttempts {
		c.logger.Error("reconnect attempt limit reached", zap.Int("attempts", *attempt))
		c.setState(StateClosed)
		return false
	}
	c.setState(StateReconnecting)
	c.sink.SetStatus(model.StatusReconnecting)
	if err := clock.SleepWithContext(ctx, backoff.Delay(*attempt-1)); err != nil {
		c.setState(StateDisconnected)
		return false
	}
	return true
}

func (c *Client) dial(ctx context.Context) (*websocket.Conn, error) {
	dialer := websocket.Dialer{HandshakeTimeout: c.cfg.HandshakeTimeout}
	conn, resp, err := dialer.DialContext(ctx, c.cfg.Endpoint, nil)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	return conn, err
}

// readLoop delivers events until the connection fails. The first message of
// every connection must be a Snapshot; Increments before it are ignored.
func (c *Client) readLoop(conn *websocket.Conn) error {
	awaitSnapshot := true
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return err
		}

		msg, err := Decode(data)
		if err != nil {
			c.metrics.ObserveProtocolError()
			c.logger.Warn("dropping malformed message", zap.Error(err))
			continue
		}
		c.metrics.ObserveMessage(string(msg.Kind))

		switch msg.Kind {
		case KindSnapshot:
			c.markSnapshotReceived()
			awaitSnapshot = false
			c.sink.ApplySnapshot(msg.Blocks, false)
		case KindIncrement:
			if awaitSnapshot {
				c.logger.Warn("increment before snapshot; ignoring", zap.Uint64("height", msg.Block.Height))
				continue
			}
			c.sink.ApplyIncrement(msg.Block)
		default:
			// Other message kinds belong to unrelated collaborators.
		}
	}
}

// markSnapshotReceived disarms the fallback timer permanently.
func (c *Client) markSnapshotReceived() {
	c.fbMu.Lock()
	defer c.fbMu.Unlock()
	c.fbSatisfied = true
	if c.fbTimer != nil {
		c.fbTimer.Stop()
	}
}

// activateFallback runs on the fallback timer. It injects a synthetic
// snapshot so dependent views are never empty. The fbMu critical section
// guarantees no injection races with Stop or with a genuine snapshot.
func (c *Client) activateFallback() {
	c.fbMu.Lock()
	defer c.fbMu.Unlock()
	if c.fbStopped || c.fbSatisfied {
		return
	}
	c.logger.Warn("no snapshot within fallback timeout; injecting synthetic data",
		zap.Duration("timeout", c.cfg.FallbackTimeout))
	c.metrics.ObserveFallbackActivated()
	c.sink.ApplySnapshot(SyntheticSnapshot(c.cfg.FallbackWindowSize, time.Now()), true)
}

// storeConn publishes the live connection for closeConn. A conn stored after
// teardown already ran is closed on the spot so it can never outlive Stop.
func (c *Client) storeConn(conn *websocket.Conn) {
	c.connMu.Lock()
	if c.connClosed && conn != nil {
		_ = conn.Close()
	}
	c.conn = conn
	c.connMu.Unlock()
}

func (c *Client) closeConn() {
	c.connMu.Lock()
	c.connClosed = true
	if c.conn != nil {
		_ = c.conn.Close()
	}
	c.connMu.Unlock()
}
