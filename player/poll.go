package player

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/vlctrack/vlctrack/key"
	"github.com/vlctrack/vlctrack/log"
)

// Poller queries one VLC instance over its rc interface.
type Poller struct {
	Host     string
	Port     int
	Password string

	// Process is the executable name checked before connecting. Empty skips the check.
	Process string
	Finder  ProcessFinder

	ConnectTimeout time.Duration
	PromptTimeout  time.Duration
	ReadTimeout    time.Duration
}

// NewPoller builds a Poller from configuration. The password is passed in
// because it may come from the keyring instead of the config file.
func NewPoller(password string) *Poller {
	return &Poller{
		Host:           viper.GetString(key.PlayerHost),
		Port:           viper.GetInt(key.PlayerPort),
		Password:       password,
		Process:        viper.GetString(key.PlayerProcess),
		Finder:         SystemProcesses{},
		ConnectTimeout: time.Duration(viper.GetInt(key.PlayerConnectTimeout)) * time.Millisecond,
		PromptTimeout:  time.Duration(viper.GetInt(key.PlayerPromptTimeout)) * time.Millisecond,
		ReadTimeout:    time.Duration(viper.GetInt(key.PlayerReadTimeout)) * time.Millisecond,
	}
}

// Address is the host:port the poller connects to.
func (p *Poller) Address() string {
	return net.JoinHostPort(p.Host, strconv.Itoa(p.Port))
}

// Poll reports what the player is doing right now.
func (p *Poller) Poll(ctx context.Context) Result {
	if p.Process != "" && p.Finder != nil {
		running, err := p.Finder.Running(ctx, p.Process)
		switch {
		case err != nil:
			log.Warnf("could not list processes, trying to connect anyway: %v", err)
		case !running:
			return Result{Outcome: Absent}
		}
	}

	status, err := p.query(ctx)
	if err != nil {
		return unavailable(err)
	}

	return loaded(status)
}

func (p *Poller) query(ctx context.Context) (Status, error) {
	dialer := net.Dialer{Timeout: p.ConnectTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", p.Address())
	if err != nil {
		return Status{}, fmt.Errorf("connect: %w", err)
	}
	defer conn.Close()

	// unblock pending reads when the context is cancelled
	stop := context.AfterFunc(ctx, func() {
		_ = conn.SetDeadline(time.Now())
	})
	defer stop()

	s := newSession(conn)

	if err := p.login(s); err != nil {
		return Status{}, err
	}

	reply, err := s.command("status", p.ReadTimeout)
	if err != nil {
		return Status{}, err
	}

	state, file := parseStatus(reply)
	if !state.Tracked() || file == "" {
		return Status{}, ErrNothingPlaying
	}

	position, err := p.seconds(s, "get_time")
	if err != nil {
		return Status{}, err
	}

	length, err := p.seconds(s, "get_length")
	if err != nil {
		return Status{}, err
	}

	return Status{
		File:     file,
		Position: position,
		Length:   length,
		State:    state,
	}, nil
}

// login answers the password challenge if the server sends one.
func (p *Poller) login(s *session) error {
	greeting, err := s.readUntil(p.PromptTimeout, atPromptOrPassword)
	if err != nil {
		return fmt.Errorf("greeting: %w", err)
	}

	if !strings.Contains(string(greeting), string(passwordPrompt)) {
		return nil
	}

	if err := s.send(p.Password, p.ReadTimeout); err != nil {
		return fmt.Errorf("send password: %w", err)
	}

	reply, err := s.readUntil(p.PromptTimeout, atPromptOrPassword)
	if strings.Contains(string(reply), "Wrong password") {
		return ErrWrongPassword
	}
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	return nil
}

func (p *Poller) seconds(s *session, cmd string) (int, error) {
	reply, err := s.command(cmd, p.ReadTimeout)
	if err != nil {
		return 0, err
	}

	n, err := parseSeconds(reply)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", cmd, err)
	}

	return n, nil
}
