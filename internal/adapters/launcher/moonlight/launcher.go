// Package moonlight spawns the Moonlight streaming client for a launch
// request, with a stub spawn on platforms where Moonlight is not wired up.
package moonlight

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/adupuis1/CouchSuite/internal/domain"
	"github.com/adupuis1/CouchSuite/internal/ports"
)

const (
	flatpakApp = "com.moonlight_stream.Moonlight"
	// ForceStubEnv forces the stub spawn regardless of platform, for
	// development machines without a flatpak Moonlight install.
	ForceStubEnv = "COUCH_FORCE_STUB"
)

type Launcher struct {
	// Start runs the assembled command. Defaults to a fire-and-forget
	// exec start; tests swap it to capture argv.
	Start func(ctx context.Context, name string, args ...string) error

	goos   string
	getenv func(string) string
}

var _ ports.ProcessLauncher = (*Launcher)(nil)

func New() *Launcher {
	return &Launcher{
		Start:  startDetached,
		goos:   runtime.GOOS,
		getenv: os.Getenv,
	}
}

// Launch attempts exactly one spawn. The spawned process is not waited on;
// Moonlight outlives the launcher invocation.
func (l *Launcher) Launch(ctx context.Context, req domain.LaunchRequest) (domain.LaunchReceipt, error) {
	if err := ctx.Err(); err != nil {
		return domain.LaunchReceipt{}, err
	}

	host := StripHost(req.Host)
	name, args, stub := l.command(host, req.Target)

	if err := l.Start(ctx, name, args...); err != nil {
		return domain.LaunchReceipt{}, fmt.Errorf("start %s: %w", name, err)
	}

	return domain.LaunchReceipt{
		Stub:    stub,
		Command: strings.Join(append([]string{name}, args...), " "),
	}, nil
}

func (l *Launcher) command(host, target string) (string, []string, bool) {
	if l.goos == "linux" && l.getenv(ForceStubEnv) != "1" {
		return "flatpak", []string{"run", flatpakApp, "stream", host, "--app", target}, false
	}
	return "echo", []string{fmt.Sprintf("stub launch for %s -> %s", target, host)}, true
}

// StripHost reduces a base URL to the bare host Moonlight expects: no
// scheme, no port, no path. A bracketed IPv6 literal keeps its brackets.
func StripHost(raw string) string {
	host := strings.TrimPrefix(strings.TrimPrefix(raw, "https://"), "http://")
	if i := strings.IndexByte(host, '/'); i >= 0 {
		host = host[:i]
	}
	if strings.HasPrefix(host, "[") {
		if i := strings.IndexByte(host, ']'); i >= 0 {
			return host[:i+1]
		}
		return host
	}
	if i := strings.LastIndexByte(host, ':'); i >= 0 {
		host = host[:i]
	}
	return host
}

func startDetached(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = nil
	cmd.Stderr = nil
	if err := cmd.Start(); err != nil {
		return err
	}
	// Reap the child in the background so it does not linger as a zombie
	// while the CLI is still running.
	go func() { _ = cmd.Wait() }()
	return nil
}
