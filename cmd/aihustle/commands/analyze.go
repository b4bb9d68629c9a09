package commands

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"aihustle/internal/client"
)

// analyze [json]: run the strategist on a JSON document.
func analyzeCmd() *cobra.Command {
	var (
		serverURL string
		apiKey    string
		timeout   time.Duration
	)
	cmd := &cobra.Command{
		Use:   "analyze [json]",
		Short: "Run the strategist locally or against a server",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := "{}"
			if len(args) == 1 {
				raw = args[0]
			}
			var input any
			if err := json.Unmarshal([]byte(raw), &input); err != nil {
				return fmt.Errorf("input is not valid JSON: %w", err)
			}

			if serverURL == "" {
				return printJSON(cmd, appCtx.Strategist.Analyze(input))
			}

			c := client.NewHTTP(serverURL, &http.Client{Timeout: timeout})
			c.APIKey = apiKey
			res, err := c.Analyze(cmd.Context(), input)
			if err != nil {
				return err
			}
			return printJSON(cmd, res)
		},
	}
	cmd.Flags().StringVar(&serverURL, "server", "", "server base URL (e.g. http://127.0.0.1:5000); empty runs locally")
	cmd.Flags().StringVar(&apiKey, "api-key", "", "X-API-KEY value sent to the server")
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "request timeout")
	return cmd
}
