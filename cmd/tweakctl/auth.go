package main

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
)

type loginResult struct {
	Success bool `json:"success"`
	User    *struct {
		ID       string `json:"id"`
		Username string `json:"username"`
	} `json:"user"`
	Roles *struct {
		IsPremium bool `json:"isPremium"`
		IsAdmin   bool `json:"isAdmin"`
	} `json:"roles"`
	Tier  string `json:"tier"`
	Error string `json:"error"`
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Run the provider login flow",
	Long: `Starts a login attempt on the daemon. The daemon opens the provider
authorization page in your browser and this command blocks until you
approve or deny it there. Ctrl-C cancels the attempt.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("Waiting for you to finish logging in via your browser...")

		var res loginResult
		if err := apiCall(cmd.Context(), http.MethodPost, "/api/auth/login", nil, &res); err != nil {
			return err
		}
		if !res.Success {
			return fmt.Errorf("login failed: %s", res.Error)
		}

		fmt.Printf("Logged in as %s (id %s), tier %s\n", res.User.Username, res.User.ID, res.Tier)
		return nil
	},
}

var cancelCmd = &cobra.Command{
	Use:   "cancel",
	Short: "Cancel a pending login attempt",
	RunE: func(cmd *cobra.Command, args []string) error {
		var res struct {
			Cancelled bool `json:"cancelled"`
		}
		if err := apiCall(cmd.Context(), http.MethodPost, "/api/auth/cancel", nil, &res); err != nil {
			return err
		}
		if res.Cancelled {
			fmt.Println("Pending login attempt cancelled.")
		} else {
			fmt.Println("No login attempt was pending.")
		}
		return nil
	},
}
