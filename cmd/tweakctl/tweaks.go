package main

import (
	"fmt"
	"net/http"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var tweakCmd = &cobra.Command{
	Use:   "tweak",
	Short: "List, apply, or revert OS tweaks",
}

func init() {
	tweakCmd.AddCommand(tweakListCmd)
	tweakCmd.AddCommand(tweakApplyCmd)
	tweakCmd.AddCommand(tweakRevertCmd)
}

var tweakListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the tweak catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		var res struct {
			Tweaks []struct {
				Name     string `json:"name"`
				Category string `json:"category"`
				Note     string `json:"note"`
				Commands int    `json:"commands"`
			} `json:"tweaks"`
		}
		if err := apiCall(cmd.Context(), http.MethodGet, "/api/tweaks", nil, &res); err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tCATEGORY\tCOMMANDS\tNOTE")
		for _, t := range res.Tweaks {
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", t.Name, t.Category, t.Commands, t.Note)
		}
		return w.Flush()
	},
}

type tweakApplyResult struct {
	Success bool   `json:"success"`
	Output  string `json:"output"`
	Error   string `json:"error"`
}

func runTweak(cmd *cobra.Command, name string, active bool) error {
	payload := map[string]any{"tweakName": name, "isActive": active}

	var res tweakApplyResult
	if err := apiCall(cmd.Context(), http.MethodPost, "/api/tweaks", payload, &res); err != nil {
		return err
	}
	if !res.Success {
		return fmt.Errorf("%s", res.Error)
	}
	if res.Output != "" {
		fmt.Println(res.Output)
	}
	if active {
		fmt.Printf("Applied %q.\n", name)
	} else {
		fmt.Printf("Reverted %q.\n", name)
	}
	return nil
}

var tweakApplyCmd = &cobra.Command{
	Use:   "apply <name>",
	Short: "Apply a tweak by its catalog name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTweak(cmd, args[0], true)
	},
}

var tweakRevertCmd = &cobra.Command{
	Use:   "revert <name>",
	Short: "Revert a tweak by its catalog name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTweak(cmd, args[0], false)
	},
}
