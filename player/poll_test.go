package player

import (
	"bufio"
	"context"
	"errors"
	"net"
	"strings"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

// fakeVLC serves a scripted rc session on a local listener.
type fakeVLC struct {
	ln       net.Listener
	password string
	replies  map[string]string
	// greeting is sent before the password prompt, with telnet negotiation mixed in.
	greeting string
}

func newFakeVLC(t *testing.T, password string, replies map[string]string) *fakeVLC {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}

	f := &fakeVLC{ln: ln, password: password, replies: replies, greeting: "VLC media player 3.0.20 Vetinari\r\n"}
	go f.serve()
	t.Cleanup(func() { _ = ln.Close() })

	return f
}

func (f *fakeVLC) serve() {
	for {
		conn, err := f.ln.Accept()
		if err != nil {
			return
		}
		go f.handle(conn)
	}
}

func (f *fakeVLC) handle(conn net.Conn) {
	defer conn.Close()
	r := bufio.NewReader(conn)

	_, _ = conn.Write([]byte(f.greeting + "Password: "))
	_, _ = conn.Write([]byte{iac, will, 1})

	line, err := r.ReadString('\n')
	if err != nil {
		return
	}
	_, _ = conn.Write([]byte{iac, 0xFC, 1})

	if strings.TrimSpace(line) != f.password {
		_, _ = conn.Write([]byte("\r\nWrong password\r\nPassword: "))
		return
	}
	_, _ = conn.Write([]byte("\r\nWelcome, Master\r\n> "))

	for {
		line, err := r.ReadString('\n')
		if err != nil {
			return
		}

		reply, ok := f.replies[strings.TrimSpace(line)]
		if !ok {
			reply = "Unknown command\r\n"
		}
		_, _ = conn.Write([]byte(reply + "> "))
	}
}

func (f *fakeVLC) poller(password string) *Poller {
	addr := f.ln.Addr().(*net.TCPAddr)
	return &Poller{
		Host:           "127.0.0.1",
		Port:           addr.Port,
		Password:       password,
		ConnectTimeout: time.Second,
		PromptTimeout:  time.Second,
		ReadTimeout:    time.Second,
	}
}

const playingStatus = "( new input: file:///m/Old.mp4 )\r\n( audio volume: 256 )\r\n( new input: file:///m/Foo.mp4 )\r\n( state playing )\r\n"

func TestPoll(t *testing.T) {
	Convey("Given a running VLC", t, func() {
		replies := map[string]string{
			"status":     playingStatus,
			"get_time":   "10\r\n",
			"get_length": "1000\r\n",
		}

		Convey("When the password is right", func() {
			vlc := newFakeVLC(t, "secret", replies)
			result := vlc.poller("secret").Poll(context.Background())

			Convey("Then the last file declarator wins", func() {
				So(result.Err, ShouldBeNil)
				So(result.Outcome, ShouldEqual, Loaded)
				So(result.Status, ShouldResemble, Status{
					File:     "file:///m/Foo.mp4",
					Position: 10,
					Length:   1000,
					State:    Playing,
				})
			})
		})

		Convey("When the password is wrong", func() {
			vlc := newFakeVLC(t, "secret", replies)
			result := vlc.poller("nope").Poll(context.Background())

			So(result.Outcome, ShouldEqual, Unavailable)
			So(errors.Is(result.Err, ErrWrongPassword), ShouldBeTrue)
		})

		Convey("When the password is empty on both sides", func() {
			vlc := newFakeVLC(t, "", replies)
			result := vlc.poller("").Poll(context.Background())
			So(result.Outcome, ShouldEqual, Loaded)
		})

		Convey("When the player is stopped", func() {
			replies["status"] = "( state stopped )\r\n"
			vlc := newFakeVLC(t, "", replies)
			result := vlc.poller("").Poll(context.Background())

			So(result.Outcome, ShouldEqual, Unavailable)
			So(errors.Is(result.Err, ErrNothingPlaying), ShouldBeTrue)
		})

		Convey("When the time reply is not a number", func() {
			replies["get_time"] = "abc\r\n"
			vlc := newFakeVLC(t, "", replies)
			result := vlc.poller("").Poll(context.Background())

			So(result.Outcome, ShouldEqual, Unavailable)
			So(errors.Is(result.Err, ErrBadReply), ShouldBeTrue)
		})

		Convey("When the paused state comes in an input line", func() {
			replies["status"] = "input: /m/Bar.mkv\r\n( state paused )\r\n"
			vlc := newFakeVLC(t, "", replies)
			result := vlc.poller("").Poll(context.Background())

			So(result.Outcome, ShouldEqual, Loaded)
			So(result.Status.File, ShouldEqual, "/m/Bar.mkv")
			So(result.Status.State, ShouldEqual, Paused)
		})
	})

	Convey("Given no VLC process", t, func() {
		checked := false
		p := &Poller{
			Host:    "127.0.0.1",
			Port:    1,
			Process: "vlc",
			Finder: ProcessFinderFunc(func(context.Context, string) (bool, error) {
				checked = true
				return false, nil
			}),
		}

		result := p.Poll(context.Background())

		Convey("Then the poll is absent without connecting", func() {
			So(checked, ShouldBeTrue)
			So(result.Outcome, ShouldEqual, Absent)
			So(result.Err, ShouldBeNil)
		})
	})

	Convey("Given a process but nothing listening", t, func() {
		ln, err := net.Listen("tcp", "127.0.0.1:0")
		So(err, ShouldBeNil)
		port := ln.Addr().(*net.TCPAddr).Port
		So(ln.Close(), ShouldBeNil)

		p := &Poller{
			Host:           "127.0.0.1",
			Port:           port,
			Process:        "vlc",
			Finder:         ProcessFinderFunc(func(context.Context, string) (bool, error) { return true, nil }),
			ConnectTimeout: time.Second,
		}

		result := p.Poll(context.Background())
		So(result.Outcome, ShouldEqual, Unavailable)
		So(result.Err, ShouldNotBeNil)
	})
}

func TestParseStatus(t *testing.T) {
	Convey("Given status replies", t, func() {
		Convey("Later declarators override earlier ones", func() {
			state, file := parseStatus("( state playing )\r\n( new input: /a.mp4 )\r\n( state paused )\r\ninput: /b.mp4\r\n")
			So(state, ShouldEqual, Paused)
			So(file, ShouldEqual, "/b.mp4")
		})

		Convey("Parentheses inside the file name survive", func() {
			_, file := parseStatus("( new input: /m/Film (2019).mkv )\r\n")
			So(file, ShouldEqual, "/m/Film (2019).mkv")
		})

		Convey("An empty reply has neither", func() {
			state, file := parseStatus("")
			So(state, ShouldEqual, State(""))
			So(file, ShouldEqual, "")
		})
	})
}

func TestStatusString(t *testing.T) {
	Convey("The now-playing line names the state, file and position", t, func() {
		So(Status{File: "file:///m/Foo.mp4", Position: 70, State: Paused}.String(), ShouldEqual, "Paused: Foo.mp4 - 1:10")
		So(Status{File: "/m/Foo.mp4", Position: 5, State: Playing}.String(), ShouldEqual, "Playing: Foo.mp4 - 0:05")
	})
}
