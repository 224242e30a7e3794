package player

import (
	"crypto/rand"
	"errors"
	"fmt"
	"net"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"time"

	"github.com/clipdeck/clipdeck/constant"
	"github.com/clipdeck/clipdeck/log"
	"github.com/clipdeck/clipdeck/where"
)

const (
	socketWaitRetries = 10
	socketWaitDelay   = 300 * time.Millisecond
	trackInterval     = time.Second
)

// MPV drives mpv through its JSON IPC socket.
type MPV struct {
	socketPath string
	cmd        *exec.Cmd
	exited     chan struct{}
	stop       chan struct{}
	stopOnce   sync.Once

	// mu guards cmd and closed between Play and Close.
	mu     sync.Mutex
	closed bool
}

func NewMPV() *MPV {
	return &MPV{
		exited: make(chan struct{}),
		stop:   make(chan struct{}),
	}
}

// args leaves video output and hwdec to the user's mpv.conf.
func (m *MPV) args(target, title string) []string {
	return []string{
		"--no-terminal",
		"--really-quiet",
		"--input-ipc-server=" + m.socketPath,
		"--force-media-title=" + title,
		"--title=" + title,
		"--force-window=yes",
		"--keep-open=no",
		target,
	}
}

func (m *MPV) Play(target, title string) error {
	safeTarget, err := sanitizeTarget(target)
	if err != nil {
		return fmt.Errorf("play: %w", err)
	}

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return ErrClosed
	}

	if m.socketPath == "" {
		suffix := make([]byte, 4)
		if _, err := rand.Read(suffix); err != nil {
			m.mu.Unlock()
			return fmt.Errorf("generate socket name: %w", err)
		}
		m.socketPath = filepath.Join(where.Temp(), fmt.Sprintf("%s-%x.sock", constant.Clipdeck, suffix))
	}

	cmd := exec.Command("mpv", m.args(safeTarget, sanitizeTitle(title))...)
	cmd.SysProcAttr = sysProcAttr()

	if err := cmd.Start(); err != nil {
		m.mu.Unlock()
		return fmt.Errorf("start mpv: %w", err)
	}
	m.cmd = cmd
	m.mu.Unlock()
	log.Infof("mpv started for %s", safeTarget)

	go func() {
		_ = cmd.Wait()
		close(m.exited)
	}()

	if err := m.waitForSocket(); err != nil {
		select {
		case <-m.exited:
		default:
			log.Warn("killing mpv: ipc socket never became ready")
			_ = killProcess(cmd)
		}
		return fmt.Errorf("mpv socket not ready: %w", err)
	}

	return nil
}

func (m *MPV) Wait() <-chan struct{} {
	return m.exited
}

func (m *MPV) waitForSocket() error {
	for range socketWaitRetries {
		time.Sleep(socketWaitDelay)

		select {
		case <-m.exited:
			return errors.New("mpv exited before the socket was ready")
		default:
		}

		if conn, err := net.Dial("unix", m.socketPath); err == nil {
			_ = conn.Close()
			return nil
		}
	}

	return fmt.Errorf("socket %s not ready after %d attempts", m.socketPath, socketWaitRetries)
}

func (m *MPV) PercentWatched() (float64, error) {
	pos, err := m.floatProperty("time-pos")
	if err != nil {
		return 0, err
	}

	duration, err := m.floatProperty("duration")
	if err != nil {
		return 0, err
	}

	return percent(pos, duration), nil
}

func percent(pos, duration float64) float64 {
	if duration <= 0 || pos <= 0 {
		return 0
	}

	return min(pos/duration*100, 100)
}

func (m *MPV) Track(fn func(percent float64)) {
	go func() {
		ticker := time.NewTicker(trackInterval)
		defer ticker.Stop()

		for {
			select {
			case <-m.stop:
				return
			case <-m.exited:
				return
			case <-ticker.C:
				if p, err := m.PercentWatched(); err == nil {
					fn(p)
				}
			}
		}
	}()
}

// Close asks mpv to quit and kills it if it is still running after three seconds.
// A Play that has not started mpv yet fails with ErrClosed afterwards.
func (m *MPV) Close() error {
	m.stopOnce.Do(func() { close(m.stop) })

	m.mu.Lock()
	m.closed = true
	cmd := m.cmd
	m.mu.Unlock()

	if cmd == nil {
		return nil
	}

	_, _ = m.command("quit")

	select {
	case <-m.exited:
	case <-time.After(3 * time.Second):
		_ = killProcess(cmd)
	}

	_ = os.Remove(m.socketPath)
	return nil
}

func (m *MPV) floatProperty(name string) (float64, error) {
	data, err := m.command("get_property", name)
	if err != nil {
		return 0, err
	}

	value, ok := data.(float64)
	if !ok {
		return 0, fmt.Errorf("property %s: expected a number, got %T", name, data)
	}

	return value, nil
}
