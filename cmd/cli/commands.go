package main

import (
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(teamsCmd)
	rootCmd.AddCommand(divisionCmd)
	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(rosterCmd)
	rootCmd.AddCommand(conferencesCmd)
	rootCmd.AddCommand(positionTypesCmd)
	rootCmd.AddCommand(scheduleCmd)
	rootCmd.AddCommand(metricsCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health")
	},
}

var teamsCmd = &cobra.Command{
	Use:   "teams [id]",
	Short: "List all teams, or fetch one team by id",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			return performGetRequest("/api/teams/" + url.PathEscape(args[0]))
		}
		return performGetRequest("/api/teams")
	},
}

var divisionCmd = &cobra.Command{
	Use:   "division <division>",
	Short: "List the teams in a division",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/api/teams/division/" + url.PathEscape(args[0]))
	},
}

var playersCmd = &cobra.Command{
	Use:   "players [id]",
	Short: "List all players, or fetch one player by id",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			return performGetRequest("/api/players/" + url.PathEscape(args[0]))
		}
		return performGetRequest("/api/players")
	},
}

var rosterCmd = &cobra.Command{
	Use:   "roster <teamID>",
	Short: "List the players on a team",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/api/players/team/" + url.PathEscape(args[0]))
	},
}

var conferencesCmd = &cobra.Command{
	Use:   "conferences",
	Short: "List the conferences and their divisions",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/api/conferences")
	},
}

var positionTypesCmd = &cobra.Command{
	Use:   "position-types",
	Short: "List the position types",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/api/position-types")
	},
}

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Get the current week's schedule",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/api/schedule")
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics")
	},
}

func performGetRequest(endpoint string) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(body))

	return nil
}
