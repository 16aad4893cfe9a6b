package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/mdp/qrterminal/v3"
	"github.com/spf13/cobra"

	"github.com/nuts-foundation/doc-signer/api"
	"github.com/nuts-foundation/doc-signer/pkg/services"
)

var serverURL string
var pollTimeout time.Duration

// sessionCmd starts a disclosure session against a running doc-signer server, shows the
// status url as a terminal QR for a wallet to scan and polls until the disclosure completes.
var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Start a disclosure session against a running doc-signer server",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := retryablehttp.NewClient()
		client.Logger = nil

		resp, err := client.Post(fmt.Sprintf("%s/api/sessions/start", serverURL), "application/json", nil)
		if err != nil {
			return fmt.Errorf("could not start session: %w", err)
		}
		defer resp.Body.Close()

		var result api.CreateSessionResult
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			return fmt.Errorf("could not decode session result: %w", err)
		}

		cmd.Printf("session started: %s\n", result.SessionToken)
		cmd.Println("scan with your wallet:")
		qrterminal.GenerateHalfBlock(result.StatusUrl, qrterminal.L, os.Stdout)

		deadline := time.Now().Add(pollTimeout)
		for {
			status, err := pollStatus(client, result.StatusUrl)
			if err != nil {
				return err
			}
			if status == string(services.StatusCompleted) {
				cmd.Println("credentials disclosed, session completed")
				return nil
			}
			if time.Now().After(deadline) {
				return fmt.Errorf("session not completed within %s", pollTimeout)
			}
			time.Sleep(time.Second)
		}
	},
}

func pollStatus(client *retryablehttp.Client, statusURL string) (string, error) {
	resp, err := client.Get(statusURL)
	if err != nil {
		return "", fmt.Errorf("could not get session status: %w", err)
	}
	defer resp.Body.Close()

	var status api.SessionStatusResult
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return "", fmt.Errorf("could not decode session status: %w", err)
	}
	return status.Status, nil
}

func init() {
	sessionCmd.Flags().StringVar(&serverURL, "server", "http://localhost:3002", "Base url of the doc-signer server")
	sessionCmd.Flags().DurationVar(&pollTimeout, "timeout", 30*time.Second, "How long to wait for the disclosure to complete")
	rootCmd.AddCommand(sessionCmd)
}
