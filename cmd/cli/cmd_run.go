package main

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Args:  cobra.ExactArgs(1),
	Short: "Submits a source file to the relay and prints the assembled page",
	Run:   runCmdRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.PersistentFlags().StringP("output", "o", "", "Write the page to this file instead of stdout")
}

func submitFile(cmd *cobra.Command, filename string) (string, error) {
	code, err := os.ReadFile(filename)
	if err != nil {
		return "", fmt.Errorf("failed to read source file %s: %v", filename, err)
	}

	relayURL := strings.TrimSuffix(cmd.Flag("relay-url").Value.String(), "/")
	req, err := http.NewRequestWithContext(cmd.Context(), http.MethodPost, relayURL+"/api/run", bytes.NewReader(code))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %v", err)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to reach relay: %v", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read relay response: %v", err)
	}

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("relay returned %d: %s", res.StatusCode, body)
	}

	return string(body), nil
}

func runCmdRun(cmd *cobra.Command, args []string) {
	page, err := submitFile(cmd, args[0])
	if err != nil {
		cmd.PrintErrf("%v\n", err)
		return
	}

	if out := cmd.Flag("output").Value.String(); out != "" {
		if err := os.WriteFile(out, []byte(page), 0o644); err != nil {
			cmd.PrintErrf("failed to write output file %s: %v\n", out, err)
			return
		}

		cmd.Printf("Wrote %s\n", out)
		return
	}

	cmd.Println(page)
}
