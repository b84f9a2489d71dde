package transport

import (
	"context"
	"io"
	"time"

	"go.bug.st/serial"
	"go.uber.org/zap"
)

// readBufferSize is large enough for every response the device sends in a
// single burst.
const readBufferSize = 512

// Stream is the duplex byte stream a Session drives. Read must not block:
// when no bytes are pending it returns n == 0 immediately. Serial ports
// opened by this package are configured that way; test fakes must follow
// the same contract.
type Stream interface {
	io.ReadWriteCloser
}

// Session owns one open stream to the device. It is not safe for concurrent
// use: the protocol has no request multiplexing, so a second request must
// not be issued before the prior response (or timeout) is resolved.
type Session struct {
	stream Stream
	port   string
	cfg    Config
	log    *zap.Logger
	closed bool
}

// Open opens the named serial port with the bridge's line parameters
// (38400 baud, 8 data bits, 1 stop bit, no parity, non-blocking reads) and
// returns a Session owning it. Failure to acquire the port yields a
// *TransportError carrying the underlying cause.
func Open(name string, opts ...Option) (*Session, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	mode := &serial.Mode{
		BaudRate: cfg.BaudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
	port, err := serial.Open(name, mode)
	if err != nil {
		return nil, &TransportError{Op: "open", Port: name, Err: err}
	}

	// Zero timeout puts reads in non-blocking mode
	if err := port.SetReadTimeout(0); err != nil {
		_ = port.Close()
		return nil, &TransportError{Op: "open", Port: name, Err: err}
	}

	cfg.Logger.Debug("port opened",
		zap.String("port", name),
		zap.Int("baud", cfg.BaudRate),
	)

	return &Session{stream: port, port: name, cfg: cfg, log: cfg.Logger}, nil
}

// NewSession wraps an already open stream. The stream must honor the
// non-blocking Read contract documented on Stream.
func NewSession(stream Stream, opts ...Option) *Session {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Session{stream: stream, cfg: cfg, log: cfg.Logger}
}

// Write sends the complete frame to the device. A failed write surfaces as
// a *TransportError; the session is not torn down.
func (s *Session) Write(p []byte) error {
	if _, err := s.stream.Write(p); err != nil {
		s.log.Error("write failed", zap.Int("frame_len", len(p)), zap.Error(err))
		return &TransportError{Op: "write", Port: s.port, Err: err}
	}
	s.log.Debug("frame written", zap.Int("frame_len", len(p)))
	return nil
}

// PollRead waits for the next burst of bytes from the device. It checks the
// stream, sleeps one poll interval, and rechecks until bytes arrive or the
// response timeout elapses. A timeout, a cancelled context, and a stream
// read failure all surface as ErrNoData; PollRead never hangs and never
// corrupts the stream.
//
// Whatever arrived in one read is returned as-is; the protocol's responses
// each fit in a single burst.
func (s *Session) PollRead(ctx context.Context) ([]byte, error) {
	deadline := time.Now().Add(s.cfg.ResponseTimeout)
	buf := make([]byte, readBufferSize)

	for {
		n, err := s.stream.Read(buf)
		if err != nil {
			s.log.Warn("read failed, treating as no data", zap.Error(err))
			return nil, ErrNoData
		}
		if n > 0 {
			out := make([]byte, n)
			copy(out, buf[:n])
			s.log.Debug("frame received", zap.Int("frame_len", n))
			return out, nil
		}

		if !time.Now().Before(deadline) {
			s.log.Debug("response deadline elapsed",
				zap.Duration("timeout", s.cfg.ResponseTimeout),
			)
			return nil, ErrNoData
		}

		select {
		case <-ctx.Done():
			s.log.Debug("wait cancelled")
			return nil, ErrNoData
		case <-time.After(s.cfg.PollInterval):
		}
	}
}

// Close releases the stream. It is idempotent: closing an already closed
// session is a no-op.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if err := s.stream.Close(); err != nil {
		return &TransportError{Op: "close", Port: s.port, Err: err}
	}
	return nil
}
