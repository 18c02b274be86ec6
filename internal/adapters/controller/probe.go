// Package controller detects a connected Bluetooth game controller. Direct
// device discovery under /dev/input/by-id is preferred; bluetoothctl output
// is the fallback. COUCH_FORCE_CONTROLLER=1/0 overrides both for development.
package controller

import (
	"context"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/adupuis1/CouchSuite/internal/domain"
	"github.com/adupuis1/CouchSuite/internal/ports"
)

const (
	ForceEnv = "COUCH_FORCE_CONTROLLER"

	defaultInputDir = "/dev/input/by-id"
	bluetoothctlTimeout = 2 * time.Second
)

var controllerKeywords = []string{
	"controller",
	"gamepad",
	"dualshock",
	"dual sense",
	"dualsense",
	"xbox",
	"joy-con",
	"switch",
	"pro controller",
}

type Probe struct {
	// InputDeviceDir defaults to /dev/input/by-id.
	InputDeviceDir string
	// RunBluetoothctl returns the combined output of
	// `bluetoothctl devices Connected`; tests swap it out.
	RunBluetoothctl func(ctx context.Context) (string, error)

	getenv func(string) string
}

var _ ports.ControllerProbe = (*Probe)(nil)

func NewProbe() *Probe {
	return &Probe{
		InputDeviceDir:  defaultInputDir,
		RunBluetoothctl: runBluetoothctl,
		getenv:          os.Getenv,
	}
}

func (p *Probe) Detect(ctx context.Context) domain.ControllerInfo {
	switch p.getenv(ForceEnv) {
	case "1":
		return domain.ControllerInfo{Connected: true, Label: "development override"}
	case "0":
		return domain.ControllerInfo{}
	}

	if info := p.detectInputDevice(); info.Connected {
		return info
	}
	return p.detectBluetoothDevice(ctx)
}

func (p *Probe) detectInputDevice() domain.ControllerInfo {
	entries, err := os.ReadDir(p.InputDeviceDir)
	if err != nil {
		return domain.ControllerInfo{}
	}

	for _, entry := range entries {
		name := strings.ToLower(entry.Name())
		if !strings.Contains(name, "bluetooth") {
			continue
		}
		if strings.Contains(name, "-event-joystick") || strings.Contains(name, "-event-gamepad") {
			return domain.ControllerInfo{Connected: true, Label: entry.Name()}
		}
	}
	return domain.ControllerInfo{}
}

func (p *Probe) detectBluetoothDevice(ctx context.Context) domain.ControllerInfo {
	ctx, cancel := context.WithTimeout(ctx, bluetoothctlTimeout)
	defer cancel()

	output, err := p.RunBluetoothctl(ctx)
	if err != nil {
		// bluetoothctl missing or timed out; report disconnected.
		return domain.ControllerInfo{}
	}

	trimmed := strings.TrimSpace(output)
	if trimmed == "" {
		return domain.ControllerInfo{}
	}

	lower := strings.ToLower(trimmed)
	for _, keyword := range controllerKeywords {
		if strings.Contains(lower, keyword) {
			label, _, _ := strings.Cut(trimmed, "\n")
			return domain.ControllerInfo{Connected: true, Label: label}
		}
	}
	return domain.ControllerInfo{}
}

func runBluetoothctl(ctx context.Context) (string, error) {
	output, err := exec.CommandContext(ctx, "bluetoothctl", "devices", "Connected").CombinedOutput()
	if err != nil {
		return "", err
	}
	return string(output), nil
}
