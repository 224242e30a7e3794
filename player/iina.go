package player

import (
	"fmt"
	"os/exec"
)

// IINA opens streams in IINA through LaunchServices. It has no IPC, so progress is unknown.
type IINA struct {
	cmd    *exec.Cmd
	exited chan struct{}
}

func NewIINA() *IINA {
	return &IINA{exited: make(chan struct{})}
}

func (p *IINA) Play(target, title string) error {
	safeTarget, err := sanitizeTarget(target)
	if err != nil {
		return fmt.Errorf("play: %w", err)
	}

	p.cmd = exec.Command("open", "-W", "-a", "IINA", safeTarget, "--args", "--mpv-force-media-title="+sanitizeTitle(title))
	if err := p.cmd.Start(); err != nil {
		return fmt.Errorf("launch IINA: %w", err)
	}

	go func() {
		_ = p.cmd.Wait()
		close(p.exited)
	}()

	return nil
}

func (p *IINA) PercentWatched() (float64, error) {
	return 0, ErrUnsupported
}

func (p *IINA) Track(func(float64)) {}

func (p *IINA) Wait() <-chan struct{} {
	return p.exited
}

func (p *IINA) Close() error {
	if p.cmd != nil && p.cmd.Process != nil {
		return p.cmd.Process.Kill()
	}

	return nil
}
