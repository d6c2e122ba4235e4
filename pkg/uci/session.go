package uci

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

var (
	ErrSpawn    = errors.New("uci: engine spawn failed")
	ErrProtocol = errors.New("uci: protocol violation")
)

// OptionFeatureVector is the setoption name used to transmit tuned parameters.
const OptionFeatureVector = "FeatureVector"

// Session is one engine process speaking UCI over its stdin/stdout.
// A session is used by a single goroutine.
type Session struct {
	path  string
	fen   string
	cmd   *exec.Cmd
	stdin io.WriteCloser
	lines chan string
	done  chan struct{}

	// readerDone is closed when readLines has stopped reading stdout.
	readerDone chan struct{}
	once       sync.Once
}

type startOptions struct {
	parameters       []int32
	handshakeTimeout time.Duration
}

type StartOption func(*startOptions)

// WithParameters sends the parameter vector before ucinewgame.
func WithParameters(parameters []int32) StartOption {
	return func(o *startOptions) {
		o.parameters = parameters
	}
}

func WithHandshakeTimeout(d time.Duration) StartOption {
	return func(o *startOptions) {
		o.handshakeTimeout = d
	}
}

// Start launches the engine and blocks until it acknowledges isready.
// An empty fen means the standard starting position.
func Start(ctx context.Context, path, fen string, opts ...StartOption) (*Session, error) {
	var o startOptions
	for _, opt := range opts {
		opt(&o)
	}
	var s, err = spawn(path)
	if err != nil {
		return nil, err
	}
	s.fen = fen
	err = s.handshake(ctx, o)
	if err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

// DiscoverName starts the engine only to read its "id name" line.
// It reports false if uciok comes first or the engine exits.
// WithHandshakeTimeout bounds the wait; an engine that stays silent is an ErrProtocol error.
func DiscoverName(ctx context.Context, path string, opts ...StartOption) (string, bool, error) {
	var o startOptions
	for _, opt := range opts {
		opt(&o)
	}
	var s, err = spawn(path)
	if err != nil {
		return "", false, err
	}
	defer s.Close()

	if err := s.send("uci"); err != nil {
		return "", false, nil
	}
	var timeout <-chan time.Time
	if o.handshakeTimeout > 0 {
		var timer = time.NewTimer(o.handshakeTimeout)
		defer timer.Stop()
		timeout = timer.C
	}
	for {
		select {
		case <-ctx.Done():
			return "", false, ctx.Err()
		case <-timeout:
			return "", false, fmt.Errorf("%w: %s: no uciok within %v", ErrProtocol, s.path, o.handshakeTimeout)
		case line, ok := <-s.lines:
			if !ok {
				return "", false, nil
			}
			var fields = strings.Fields(line)
			if len(fields) == 0 {
				continue
			}
			if fields[0] == "uciok" {
				return "", false, nil
			}
			if fields[0] == "id" && len(fields) >= 3 && fields[1] == "name" {
				var parts = strings.SplitN(strings.TrimSpace(line), " ", 3)
				return strings.TrimSpace(parts[2]), true, nil
			}
		}
	}
}

func spawn(path string) (*Session, error) {
	var cmd = exec.Command(path)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSpawn, path, err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSpawn, path, err)
	}
	err = cmd.Start()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSpawn, path, err)
	}
	var s = &Session{
		path:  path,
		cmd:   cmd,
		stdin: stdin,
		lines:      make(chan string, 16),
		done:       make(chan struct{}),
		readerDone: make(chan struct{}),
	}
	go s.readLines(stdout)
	log.Debug().Str("engine", path).Int("pid", cmd.Process.Pid).Msg("engine-started")
	return s, nil
}

func (s *Session) readLines(r io.Reader) {
	defer close(s.readerDone)
	defer close(s.lines)
	var scanner = bufio.NewScanner(r)
	for scanner.Scan() {
		select {
		case s.lines <- scanner.Text():
		case <-s.done:
			return
		}
	}
}

func (s *Session) handshake(ctx context.Context, o startOptions) error {
	if err := s.send("uci"); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrProtocol, s.path, err)
	}
	if o.parameters != nil {
		if err := s.SendParameters(o.parameters); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrProtocol, s.path, err)
		}
	}
	if err := s.send("isready"); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrProtocol, s.path, err)
	}
	if err := s.send("ucinewgame"); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrProtocol, s.path, err)
	}

	var timeout <-chan time.Time
	if o.handshakeTimeout > 0 {
		var timer = time.NewTimer(o.handshakeTimeout)
		defer timer.Stop()
		timeout = timer.C
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timeout:
			return fmt.Errorf("%w: %s: no readyok within %v", ErrProtocol, s.path, o.handshakeTimeout)
		case line, ok := <-s.lines:
			if !ok {
				return fmt.Errorf("%w: %s: engine exited before readyok", ErrProtocol, s.path)
			}
			if strings.HasPrefix(line, "readyok") {
				return nil
			}
		}
	}
}

// SendParameters transmits integer parameters as one setoption line.
func (s *Session) SendParameters(parameters []int32) error {
	var sb = &strings.Builder{}
	sb.WriteString("setoption name ")
	sb.WriteString(OptionFeatureVector)
	sb.WriteString(" value")
	for _, p := range parameters {
		sb.WriteString(" ")
		sb.WriteString(strconv.Itoa(int(p)))
	}
	return s.send(sb.String())
}

type MoveRequest struct {
	// Moves played since the starting position, in coordinate notation.
	Moves     []string
	WhiteTime int
	BlackTime int
	Increment int
	// Budget bounds the wait for bestmove.
	Budget time.Duration
}

// RequestMove sends the position and a timed go command and waits for bestmove.
// It reports false if the budget elapses, the engine exits, or the engine has no move.
// A malformed bestmove token is an ErrProtocol error.
func (s *Session) RequestMove(ctx context.Context, req MoveRequest) (Move, bool, error) {
	var position string
	if s.fen == "" {
		position = "position startpos"
	} else {
		position = "position fen " + s.fen
	}
	if len(req.Moves) != 0 {
		position += " moves " + strings.Join(req.Moves, " ")
	}
	if err := s.send(position); err != nil {
		return Move{}, false, nil
	}
	var goCommand = fmt.Sprintf("go wtime %d winc %d btime %d binc %d",
		req.WhiteTime, req.Increment, req.BlackTime, req.Increment)
	if err := s.send(goCommand); err != nil {
		return Move{}, false, nil
	}

	var timer = time.NewTimer(req.Budget)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return Move{}, false, ctx.Err()
		case <-timer.C:
			log.Debug().Str("engine", s.path).Dur("budget", req.Budget).Msg("engine-timeout")
			return Move{}, false, nil
		case line, ok := <-s.lines:
			if !ok {
				log.Debug().Str("engine", s.path).Msg("engine-exited")
				return Move{}, false, nil
			}
			var fields = strings.Fields(line)
			if len(fields) == 0 || fields[0] != "bestmove" {
				continue
			}
			if len(fields) < 2 {
				return Move{}, false, fmt.Errorf("%w: %s: %q", ErrProtocol, s.path, line)
			}
			if fields[1] == "(none)" || fields[1] == "0000" {
				return Move{}, false, nil
			}
			var move, err = ParseMove(fields[1])
			if err != nil {
				return Move{}, false, fmt.Errorf("%s: %w", s.path, err)
			}
			return move, true, nil
		}
	}
}

// Close terminates the engine process. It is safe to call more than once.
func (s *Session) Close() {
	s.once.Do(func() {
		close(s.done)
		s.stdin.Close()
		if s.cmd.Process != nil {
			s.cmd.Process.Kill()
		}
		// Wait closes stdout, so the reader must be finished first.
		<-s.readerDone
		s.cmd.Wait()
		log.Debug().Str("engine", s.path).Msg("engine-stopped")
	})
}

func (s *Session) send(line string) error {
	log.Trace().Str("engine", s.path).Str("line", line).Msg("uci-send")
	var _, err = io.WriteString(s.stdin, line+"\n")
	return err
}
