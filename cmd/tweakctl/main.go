// tweakctl is a small command-line client for the tweakd control API.
// It talks to a running daemon over the loopback interface.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

var apiAddr string

var rootCmd = &cobra.Command{
	Use:   "tweakctl",
	Short: "Control a running tweakd daemon",
	Long: `tweakctl talks to the tweakd control API: trigger a provider login,
apply or revert OS tweaks from the catalog, and query the machine's
hardware summary.`,
	SilenceUsage: true,
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1) //nolint:forbidigo // CLI must exit non-zero so shell scripts can detect failure
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiAddr, "addr", "127.0.0.1:8686", "tweakd control API address")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(cancelCmd)
	rootCmd.AddCommand(tweakCmd)
	rootCmd.AddCommand(specsCmd)
	rootCmd.AddCommand(statusCmd)
}

// apiCall sends a request to the daemon and decodes the JSON response into
// dst. Login blocks server-side until the browser flow resolves, so there
// is no client timeout; cancellation comes from the command context.
func apiCall(ctx context.Context, method, path string, payload, dst any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	url := fmt.Sprintf("http://%s%s", apiAddr, path)
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("is tweakd running on %s? %w", apiAddr, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s %s: %s: %s", method, path, resp.Status, bytes.TrimSpace(raw))
	}
	if dst == nil {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check whether the daemon is up",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
		defer cancel()

		var health struct {
			Status string `json:"status"`
		}
		if err := apiCall(ctx, http.MethodGet, "/healthz", nil, &health); err != nil {
			return err
		}
		fmt.Printf("tweakd on %s: %s\n", apiAddr, health.Status)
		return nil
	},
}
