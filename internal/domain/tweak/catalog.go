package tweak

// Package tweak describes the catalog of operating-system tweaks as pure
// data: each catalog entry maps a desired on/off state to the shell
// commands that realize it. Nothing in this package executes anything,
// which keeps the full catalog statically enumerable and testable.

// Category groups tweaks the way the interactive surface presents them.
type Category string

const (
	CategoryGaming      Category = "gaming"
	CategoryCPU         Category = "cpu"
	CategorySystem      Category = "system"
	CategoryNetwork     Category = "network"
	CategoryPeripherals Category = "peripherals"
	CategoryPrivacy     Category = "privacy"
	CategoryGPU         Category = "gpu"
)

// ID names a tweak. Values double as the wire names the surface sends.
type ID string

const (
	IDDisableGameDVR        ID = "Disable Game DVR"
	IDFSOOptimization       ID = "FSO Optimization"
	IDGameMode              ID = "Game Mode"
	IDCoreUnparking         ID = "Core Unparking"
	IDHighPerformance       ID = "High Performance Profile"
	IDDisableCStates        ID = "Disable C-States"
	IDPriorityThrottling    ID = "Priority Throttling Fix"
	IDCleanStandbyList      ID = "Clean Standby List"
	IDDisableBackgroundApps ID = "Disable Background Apps"
	IDOptimizeVisualFX      ID = "Optimize Visual Effects"
	IDTCPNoDelay            ID = "TCP No Delay"
	IDDNSFlush              ID = "DNS Flush"
	IDDisableNetDMA         ID = "Disable NetDMA"
	IDMouseAcceleration     ID = "Mouse Acceleration"
	IDUSBSelectiveSuspend   ID = "USB Selective Suspend"
	IDKeyboardResponse      ID = "Keyboard Response Time"
	IDHIDLagFix             ID = "HID Lag Fix"
	IDDisableCortana        ID = "Disable Cortana"
	IDKillBiometry          ID = "Kill Biometry"
	IDP0StateForced         ID = "P0 State Forced"
	IDNvidiaTelemetry       ID = "NVIDIA Telemetry Killer"
	IDNvidiaPowerMode       ID = "NVIDIA Power Mode"
	IDULPSDisable           ID = "ULPS Disable"
)

// Command is a single shell command line a tweak runs.
type Command struct {
	Line string
}

// Definition is one catalog entry. Activation is idempotent: applying the
// same state twice issues the same commands and lands on the same
// configuration. No applied-state is tracked anywhere; the surface's
// toggle is the only record.
type Definition struct {
	ID       ID
	Category Category

	// Note is surfaced as the result output for entries that run no
	// commands (simulated tweaks, or ones needing tooling we don't bundle).
	Note string

	commands func(enabled bool) []Command
}

// Commands returns the command descriptions for the desired state.
// The returned slice is freshly built; callers may not mutate catalog state.
func (d Definition) Commands(enabled bool) []Command {
	if d.commands == nil {
		return nil
	}
	return d.commands(enabled)
}

func cmds(lines ...string) []Command {
	out := make([]Command, len(lines))
	for i, l := range lines {
		out[i] = Command{Line: l}
	}
	return out
}

// always ignores the desired state: the original tweak only ever applies.
func always(lines ...string) func(bool) []Command {
	return func(bool) []Command { return cmds(lines...) }
}

// onOnly runs commands when enabling and nothing when disabling.
func onOnly(lines ...string) func(bool) []Command {
	return func(enabled bool) []Command {
		if !enabled {
			return nil
		}
		return cmds(lines...)
	}
}

// catalog holds every definition in presentation order.
var catalog = []Definition{
	{
		ID:       IDDisableGameDVR,
		Category: CategoryGaming,
		commands: func(enabled bool) []Command {
			if enabled {
				return cmds(
					`reg add "HKCU\System\GameConfigStore" /v GameDVR_Enabled /t REG_DWORD /d 0 /f`,
					`reg add "HKLM\SOFTWARE\Policies\Microsoft\Windows\GameDVR" /v AllowGameDVR /t REG_DWORD /d 0 /f`,
				)
			}
			return cmds(`reg add "HKCU\System\GameConfigStore" /v GameDVR_Enabled /t REG_DWORD /d 1 /f`)
		},
	},
	{
		ID:       IDFSOOptimization,
		Category: CategoryGaming,
		commands: func(enabled bool) []Command {
			// 2 disables fullscreen optimizations, 0 restores the default.
			val := "0"
			if enabled {
				val = "2"
			}
			return cmds(`reg add "HKCU\System\GameConfigStore" /v GameDVR_FSEBehaviorMode /t REG_DWORD /d ` + val + ` /f`)
		},
	},
	{
		ID:       IDGameMode,
		Category: CategoryGaming,
		commands: func(enabled bool) []Command {
			val := "0"
			if enabled {
				val = "1"
			}
			return cmds(`reg add "HKCU\Software\Microsoft\GameBar" /v AllowAutoGameMode /t REG_DWORD /d ` + val + ` /f`)
		},
	},
	{
		ID:       IDCoreUnparking,
		Category: CategoryCPU,
		commands: always(
			`powercfg -setacvalueindex scheme_current sub_processor CPMINCORES 100`,
			`powercfg -setactive scheme_current`,
		),
	},
	{
		ID:       IDHighPerformance,
		Category: CategoryCPU,
		// Registers the Ultimate Performance scheme, then activates the
		// stock High Performance scheme by its well-known GUID.
		commands: always(
			`powercfg -duplicatescheme e9a42b02-d5df-448d-aa00-03f14749eb61`,
			`powercfg -setactive 8c5e7fda-e8bf-4a96-9a85-a6e23a8c635c`,
		),
	},
	{
		ID:       IDDisableCStates,
		Category: CategoryCPU,
		commands: onOnly(
			`reg add "HKLM\SYSTEM\CurrentControlSet\Control\Power\PowerSettings\54533251-82be-4824-96c1-47b60b740d00\5d76a2ca-e8c0-402f-a133-2158492d58ad" /v Attributes /t REG_DWORD /d 0 /f`,
		),
	},
	{
		ID:       IDPriorityThrottling,
		Category: CategoryCPU,
		commands: always(
			`reg add "HKLM\SOFTWARE\Microsoft\Windows NT\CurrentVersion\Multimedia\SystemProfile" /v SystemResponsiveness /t REG_DWORD /d 0 /f`,
			`reg add "HKLM\SOFTWARE\Microsoft\Windows NT\CurrentVersion\Multimedia\SystemProfile\Tasks\Games" /v "GPU Priority" /t REG_DWORD /d 8 /f`,
			`reg add "HKLM\SOFTWARE\Microsoft\Windows NT\CurrentVersion\Multimedia\SystemProfile\Tasks\Games" /v Priority /t REG_DWORD /d 6 /f`,
		),
	},
	{
		ID:       IDCleanStandbyList,
		Category: CategorySystem,
		// Emptying the standby list needs a tool we do not bundle.
		Note: "Memory optimized (Simulated)",
	},
	{
		ID:       IDDisableBackgroundApps,
		Category: CategorySystem,
		commands: func(enabled bool) []Command {
			if enabled {
				return cmds(
					`reg add "HKCU\Software\Microsoft\Windows\CurrentVersion\BackgroundAccessApplications" /v GlobalUserDisabled /t REG_DWORD /d 1 /f`,
					`reg add "HKLM\SOFTWARE\Policies\Microsoft\Windows\AppPrivacy" /v LetAppsRunInBackground /t REG_DWORD /d 2 /f`,
				)
			}
			return cmds(`reg add "HKCU\Software\Microsoft\Windows\CurrentVersion\BackgroundAccessApplications" /v GlobalUserDisabled /t REG_DWORD /d 0 /f`)
		},
	},
	{
		ID:       IDOptimizeVisualFX,
		Category: CategorySystem,
		commands: always(
			`reg add "HKCU\Software\Microsoft\Windows\CurrentVersion\Explorer\VisualEffects" /v VisualFXSetting /t REG_DWORD /d 2 /f`,
		),
	},
	{
		ID:       IDTCPNoDelay,
		Category: CategoryNetwork,
		commands: always(
			`reg add "HKLM\SYSTEM\CurrentControlSet\Services\Tcpip\Parameters\Interfaces" /v TCPNoDelay /t REG_DWORD /d 1 /f`,
			`reg add "HKLM\SYSTEM\CurrentControlSet\Services\Tcpip\Parameters" /v TcpAckFrequency /t REG_DWORD /d 1 /f`,
		),
	},
	{
		ID:       IDDNSFlush,
		Category: CategoryNetwork,
		commands: always(`ipconfig /flushdns`),
	},
	{
		ID:       IDDisableNetDMA,
		Category: CategoryNetwork,
		// NetDMA itself is gone from modern Windows; apply the standard
		// offload settings instead.
		commands: onOnly(
			`netsh int tcp set global rss=enabled`,
			`netsh int tcp set global autotuninglevel=normal`,
		),
	},
	{
		ID:       IDMouseAcceleration,
		Category: CategoryPeripherals,
		commands: onOnly(
			`reg add "HKCU\Control Panel\Mouse" /v MouseSpeed /t REG_SZ /d 0 /f`,
			`reg add "HKCU\Control Panel\Mouse" /v MouseThreshold1 /t REG_SZ /d 0 /f`,
			`reg add "HKCU\Control Panel\Mouse" /v MouseThreshold2 /t REG_SZ /d 0 /f`,
		),
	},
	{
		ID:       IDUSBSelectiveSuspend,
		Category: CategoryPeripherals,
		commands: always(
			`reg add "HKLM\SYSTEM\CurrentControlSet\Services\USB" /v DisableSelectiveSuspend /t REG_DWORD /d 1 /f`,
		),
	},
	{
		ID:       IDKeyboardResponse,
		Category: CategoryPeripherals,
		commands: always(
			`reg add "HKCU\Control Panel\Keyboard" /v KeyboardDelay /t REG_SZ /d 0 /f`,
			`reg add "HKCU\Control Panel\Keyboard" /v KeyboardSpeed /t REG_SZ /d 31 /f`,
		),
	},
	{
		ID:       IDHIDLagFix,
		Category: CategoryPeripherals,
		// Needs a per-device identifier to target; nothing generic to run.
	},
	{
		ID:       IDDisableCortana,
		Category: CategoryPrivacy,
		commands: always(
			`reg add "HKLM\SOFTWARE\Policies\Microsoft\Windows\Windows Search" /v AllowCortana /t REG_DWORD /d 0 /f`,
		),
	},
	{
		ID:       IDKillBiometry,
		Category: CategoryPrivacy,
		commands: onOnly(
			`sc stop WbioSrvc`,
			`sc config WbioSrvc start= disabled`,
		),
	},
	{
		ID:       IDP0StateForced,
		Category: CategoryGPU,
		// Forcing P0 needs vendor tooling we do not bundle.
	},
	{
		ID:       IDNvidiaTelemetry,
		Category: CategoryGPU,
		commands: always(
			`sc stop NvTelemetryContainer`,
			`sc config NvTelemetryContainer start= disabled`,
		),
	},
	{
		ID:       IDNvidiaPowerMode,
		Category: CategoryGPU,
		commands: always(`nvidia-smi -pl 100`),
	},
	{
		ID:       IDULPSDisable,
		Category: CategoryGPU,
		commands: always(
			`reg add "HKLM\SYSTEM\CurrentControlSet\Control\Class\{4d36e968-e325-11ce-bfc1-08002be10318}\0000" /v EnableUlps /t REG_DWORD /d 0 /f`,
		),
	},
}

var byID = func() map[ID]Definition {
	m := make(map[ID]Definition, len(catalog))
	for _, d := range catalog {
		m[d.ID] = d
	}
	return m
}()

// All returns every catalog entry in presentation order.
func All() []Definition {
	out := make([]Definition, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup finds a catalog entry by its wire name.
func Lookup(name string) (Definition, bool) {
	d, ok := byID[ID(name)]
	return d, ok
}
