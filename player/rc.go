package player

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// telnet control bytes
const (
	iac  = 0xFF
	sb   = 0xFA
	se   = 0xF0
	will = 0xFB
	dont = 0xFE
)

var passwordPrompt = []byte("Password:")

// session is one rc connection. Reads strip telnet negotiation.
type session struct {
	conn net.Conn
	r    *bufio.Reader
}

func newSession(conn net.Conn) *session {
	return &session{conn: conn, r: bufio.NewReader(conn)}
}

func (s *session) send(line string, timeout time.Duration) error {
	if err := s.conn.SetWriteDeadline(time.Now().Add(timeout)); err != nil {
		return err
	}

	_, err := s.conn.Write([]byte(line + "\n"))
	return err
}

// readUntil reads until done reports true or timeout elapses. A timeout is
// not an error: whatever was read so far is returned.
func (s *session) readUntil(timeout time.Duration, done func([]byte) bool) ([]byte, error) {
	if err := s.conn.SetReadDeadline(time.Now().Add(timeout)); err != nil {
		return nil, err
	}

	var buf []byte
	for {
		b, err := s.readByte()
		if err != nil {
			if errors.Is(err, os.ErrDeadlineExceeded) {
				return buf, nil
			}
			return buf, err
		}

		buf = append(buf, b)
		if done(buf) {
			return buf, nil
		}
	}
}

// readByte returns the next data byte, skipping telnet commands.
func (s *session) readByte() (byte, error) {
	for {
		b, err := s.r.ReadByte()
		if err != nil || b != iac {
			return b, err
		}

		cmd, err := s.r.ReadByte()
		if err != nil {
			return 0, err
		}

		switch {
		case cmd == iac:
			return iac, nil
		case cmd >= will && cmd <= dont:
			if _, err := s.r.ReadByte(); err != nil {
				return 0, err
			}
		case cmd == sb:
			if err := s.skipSubnegotiation(); err != nil {
				return 0, err
			}
		}
	}
}

func (s *session) skipSubnegotiation() error {
	var prev byte
	for {
		b, err := s.r.ReadByte()
		if err != nil {
			return err
		}
		if prev == iac && b == se {
			return nil
		}
		prev = b
	}
}

// atPrompt reports whether buf ends with a ">" at the start of a line.
func atPrompt(buf []byte) bool {
	n := len(buf)
	if n == 0 || buf[n-1] != '>' {
		return false
	}
	return n == 1 || buf[n-2] == '\n' || buf[n-2] == '\r'
}

func atPromptOrPassword(buf []byte) bool {
	return atPrompt(buf) || bytes.HasSuffix(buf, passwordPrompt)
}

// command sends cmd and returns the reply without the trailing prompt.
func (s *session) command(cmd string, timeout time.Duration) (string, error) {
	if err := s.send(cmd, timeout); err != nil {
		return "", fmt.Errorf("send %s: %w", cmd, err)
	}

	reply, err := s.readUntil(timeout, atPrompt)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", cmd, err)
	}

	return strings.TrimSuffix(string(reply), ">"), nil
}

// parseStatus extracts the state and file from a status reply. The last
// declarator of each kind wins.
func parseStatus(reply string) (state State, file string) {
	for _, line := range strings.Split(reply, "\n") {
		line = strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(line, "( state "):
			state = State(declaratorValue(strings.TrimPrefix(line, "( state ")))
		case strings.HasPrefix(line, "( new input: "):
			file = declaratorValue(strings.TrimPrefix(line, "( new input: "))
		case strings.HasPrefix(line, "input: "):
			file = strings.TrimSpace(strings.TrimPrefix(line, "input: "))
		}
	}

	return state, file
}

func declaratorValue(s string) string {
	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), ")"))
}

// parseSeconds reads the first line of a get_time or get_length reply.
func parseSeconds(reply string) (int, error) {
	line, _, _ := strings.Cut(strings.TrimSpace(reply), "\n")
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadReply, line)
	}
	if n < 0 {
		n = 0
	}
	return n, nil
}
