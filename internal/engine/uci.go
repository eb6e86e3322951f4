package engine

import (
	"bufio"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// ErrNotReady indicates Evaluate was called before the engine session was
// started. This is a caller error, not an engine failure.
var ErrNotReady = errors.New("engine not ready: session has not been started")

// EngineError wraps a failure of the external engine process. It is fatal to
// the analysis run in progress.
type EngineError struct {
	Op  string
	Err error
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("engine %s: %v", e.Op, e.Err)
}

func (e *EngineError) Unwrap() error { return e.Err }

// SearchResult is the raw outcome of one engine search. ScoreCP and MateIn
// are reported relative to white, regardless of the side to move in the
// searched position.
type SearchResult struct {
	ScoreCP     int
	Mate        bool
	MateIn      int // >0 white delivers mate, <0 black does
	BestMoveUCI string
	PV          []string
	Depth       int
}

// UCI is a session with a UCI-speaking engine process (stockfish or
// compatible). It is not safe for concurrent use: the process answers one
// request at a time and the analysis pipeline is fully synchronous.
type UCI struct {
	path   string
	cmd    *exec.Cmd
	stdin  *bufio.Writer
	stdout *bufio.Scanner
}

// NewUCI prepares a session for the engine binary at path. The process is
// not launched until Start.
func NewUCI(path string) *UCI {
	return &UCI{path: path}
}

// Start launches the engine process and performs the UCI handshake.
func (u *UCI) Start() error {
	if u.cmd != nil {
		return nil
	}

	cmd := exec.Command(u.path)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return &EngineError{Op: "start", Err: err}
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return &EngineError{Op: "start", Err: err}
	}

	if err := cmd.Start(); err != nil {
		return &EngineError{Op: "start", Err: err}
	}

	u.cmd = cmd
	u.stdin = bufio.NewWriter(stdin)
	u.stdout = bufio.NewScanner(stdout)

	if err := u.send("uci"); err != nil {
		return err
	}
	if _, err := u.readUntil("uciok"); err != nil {
		return err
	}
	if err := u.send("isready"); err != nil {
		return err
	}
	if _, err := u.readUntil("readyok"); err != nil {
		return err
	}
	return nil
}

// Close shuts the engine process down. It is idempotent and safe to call on
// a session that was never started.
func (u *UCI) Close() error {
	if u.cmd == nil {
		return nil
	}
	_ = u.send("quit")
	err := u.cmd.Wait()
	u.cmd = nil
	u.stdin = nil
	u.stdout = nil
	if err != nil {
		return &EngineError{Op: "close", Err: err}
	}
	return nil
}

// Search runs a fixed-depth search on the given FEN and returns the raw
// white-relative result. It blocks until the engine reports its best move.
func (u *UCI) Search(fen string, depth int) (SearchResult, error) {
	if u.cmd == nil {
		return SearchResult{}, ErrNotReady
	}

	if err := u.send("position fen " + fen); err != nil {
		return SearchResult{}, err
	}
	if err := u.send(fmt.Sprintf("go depth %d", depth)); err != nil {
		return SearchResult{}, err
	}

	lines, err := u.readUntil("bestmove")
	if err != nil {
		return SearchResult{}, err
	}

	return parseSearchOutput(lines, whiteToMove(fen)), nil
}

func (u *UCI) send(cmd string) error {
	if _, err := u.stdin.WriteString(cmd + "\n"); err != nil {
		return &EngineError{Op: "write", Err: err}
	}
	if err := u.stdin.Flush(); err != nil {
		return &EngineError{Op: "write", Err: err}
	}
	return nil
}

// readUntil collects output lines until one starts with the given prefix.
// The matching line is included in the result.
func (u *UCI) readUntil(prefix string) ([]string, error) {
	var lines []string
	for u.stdout.Scan() {
		line := u.stdout.Text()
		lines = append(lines, line)
		if strings.HasPrefix(line, prefix) {
			return lines, nil
		}
	}
	err := u.stdout.Err()
	if err == nil {
		err = fmt.Errorf("engine closed its output before %q", prefix)
	}
	return nil, &EngineError{Op: "read", Err: err}
}

// whiteToMove reads the side-to-move field of a FEN. Defaults to white on
// malformed input; the engine would reject such a position anyway.
func whiteToMove(fen string) bool {
	fields := strings.Fields(fen)
	return len(fields) < 2 || fields[1] != "b"
}

// parseSearchOutput extracts the final score and principal variation from
// UCI info lines plus the closing bestmove line. UCI scores are relative to
// the side to move; they are flipped here so SearchResult is always
// white-relative.
func parseSearchOutput(lines []string, whiteToMove bool) SearchResult {
	var res SearchResult

	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "info":
			for i := 0; i < len(fields); i++ {
				switch fields[i] {
				case "depth":
					if i+1 < len(fields) {
						res.Depth, _ = strconv.Atoi(fields[i+1])
					}
				case "score":
					if i+2 >= len(fields) {
						continue
					}
					switch fields[i+1] {
					case "cp":
						res.Mate = false
						res.ScoreCP, _ = strconv.Atoi(fields[i+2])
					case "mate":
						res.Mate = true
						res.MateIn, _ = strconv.Atoi(fields[i+2])
						// "mate 0" means the side to move is already
						// checkmated.
						if res.MateIn == 0 {
							res.MateIn = -1
						}
					}
				case "pv":
					if i+1 < len(fields) {
						res.PV = append([]string(nil), fields[i+1:]...)
					}
				}
			}
		case "bestmove":
			if len(fields) > 1 && fields[1] != "(none)" {
				res.BestMoveUCI = fields[1]
			}
		}
	}

	if !whiteToMove {
		res.ScoreCP = -res.ScoreCP
		res.MateIn = -res.MateIn
	}
	return res
}
