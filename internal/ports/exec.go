package ports

import "context"

// CommandRunner executes a single OS shell command line and returns its
// output. A non-zero exit or spawn failure is returned as an error carrying
// the command's message.
type CommandRunner interface {
	Run(ctx context.Context, command string) (string, error)
}

// SpecSource reads hardware inventory, one field per call so each can
// degrade independently.
type SpecSource interface {
	CPU(ctx context.Context) (string, error)
	GPU(ctx context.Context) (string, error)
	RAM(ctx context.Context) (string, error)
}
