package sysinfo

// Package sysinfo reads hardware inventory for the specs query. CPU and
// memory come from gopsutil; there is no portable GPU inventory, so the
// GPU field is probed through vendor tooling via the command runner.

import (
	"context"
	"errors"
	"fmt"
	"math"
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/tweakd/tweakd/internal/ports"
)

// Probe implements the SpecSource port.
type Probe struct {
	// Runner executes the GPU vendor probe commands.
	Runner ports.CommandRunner
}

// CPU returns the processor brand string.
func (p *Probe) CPU(ctx context.Context) (string, error) {
	infos, err := cpu.InfoWithContext(ctx)
	if err != nil {
		return "", fmt.Errorf("cpu info: %w", err)
	}
	if len(infos) == 0 {
		return "", errors.New("cpu info: no processors reported")
	}
	return strings.TrimSpace(infos[0].ModelName), nil
}

// RAM returns the total memory in whole gigabytes, with the module clock
// speed appended when the platform reports one ("32GB 3200MHz").
func (p *Probe) RAM(ctx context.Context) (string, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return "", fmt.Errorf("memory info: %w", err)
	}

	total := FormatRAM(vm.Total)
	if speed := p.moduleSpeed(ctx); speed != "" {
		return total + " " + speed, nil
	}
	return total, nil
}

// moduleSpeed probes the installed modules' clock speed. Best effort:
// missing tooling or an unreported speed just leaves the suffix off.
func (p *Probe) moduleSpeed(ctx context.Context) string {
	if p.Runner == nil || runtime.GOOS != "windows" {
		return ""
	}
	out, err := p.Runner.Run(ctx, `wmic memorychip get speed /value`)
	if err != nil {
		return ""
	}
	return ModuleSpeed(out)
}

// GPU returns the primary graphics controller model.
func (p *Probe) GPU(ctx context.Context) (string, error) {
	if p.Runner == nil {
		return "", errors.New("gpu probe: no command runner")
	}

	if runtime.GOOS == "windows" {
		out, err := p.Runner.Run(ctx, `wmic path win32_VideoController get name /value`)
		if err != nil {
			return "", fmt.Errorf("gpu probe: %w", err)
		}
		return ParseWmicValue(out, "Name"), nil
	}

	out, err := p.Runner.Run(ctx, `nvidia-smi --query-gpu=name --format=csv,noheader`)
	if err != nil {
		return "", fmt.Errorf("gpu probe: %w", err)
	}
	return FirstLine(out), nil
}

// ModuleSpeed extracts the first module clock speed from wmic
// /value-format output and renders it as "<n>MHz". Modules that report
// no speed (virtual machines, some laptops) yield an empty string.
func ModuleSpeed(out string) string {
	speed := ParseWmicValue(out, "Speed")
	if speed == "" || speed == "0" {
		return ""
	}
	return speed + "MHz"
}

// FormatRAM renders a byte total as whole gigabytes ("32GB").
func FormatRAM(totalBytes uint64) string {
	gb := int(math.Round(float64(totalBytes) / float64(1<<30)))
	return fmt.Sprintf("%dGB", gb)
}

// ParseWmicValue extracts the first "Key=value" assignment from wmic
// /value-format output.
func ParseWmicValue(out, key string) string {
	prefix := key + "="
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, prefix) {
			return strings.TrimSpace(strings.TrimPrefix(line, prefix))
		}
	}
	return ""
}

// FirstLine returns the first non-empty line of command output.
func FirstLine(out string) string {
	for _, line := range strings.Split(out, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
