// Package mocks provides generated mock implementations for testing.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks
// for the execution ports. To regenerate after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	runner := mocks.NewMockCommandRunner(ctrl)
//	runner.EXPECT().Run(gomock.Any(), "ipconfig /flushdns").Return("", nil)
package mocks

// Generate mock for CommandRunner interface from internal/ports.
// This creates MockCommandRunner with a Run method.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=command_runner_mock.go github.com/tweakd/tweakd/internal/ports CommandRunner

// Generate mock for SpecSource interface from internal/ports.
// This creates MockSpecSource with CPU, GPU, and RAM methods.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=spec_source_mock.go github.com/tweakd/tweakd/internal/ports SpecSource
