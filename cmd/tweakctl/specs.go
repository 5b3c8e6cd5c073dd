package main

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
)

var specsCmd = &cobra.Command{
	Use:   "specs",
	Short: "Show the machine's hardware summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		var res struct {
			CPU string `json:"cpu"`
			GPU string `json:"gpu"`
			RAM string `json:"ram"`
		}
		if err := apiCall(cmd.Context(), http.MethodGet, "/api/specs", nil, &res); err != nil {
			return err
		}

		fmt.Printf("CPU: %s\nGPU: %s\nRAM: %s\n", res.CPU, res.GPU, res.RAM)
		return nil
	},
}
