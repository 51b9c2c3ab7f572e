package main

import (
	"io"
	"net/http"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/numkem/wasmrelay"
)

var helloCmd = &cobra.Command{
	Use:   "hello",
	Short: "Checks connectivity and wire encoding against the relay",
	Run:   helloCmdRun,
}

func init() {
	rootCmd.AddCommand(helloCmd)
}

func helloCmdRun(cmd *cobra.Command, args []string) {
	relayURL := strings.TrimSuffix(cmd.Flag("relay-url").Value.String(), "/")

	req, err := http.NewRequestWithContext(cmd.Context(), http.MethodGet, relayURL+"/api/hello", nil)
	if err != nil {
		cmd.PrintErrf("failed to build request: %v\n", err)
		return
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		cmd.PrintErrf("failed to reach relay: %v\n", err)
		return
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		cmd.PrintErrf("failed to read relay response: %v\n", err)
		return
	}

	resp, err := wasmrelay.Unmarshal(body)
	if err != nil {
		cmd.PrintErrf("failed to decode sample payload: %v\n", err)
		return
	}

	if resp.Output == nil {
		cmd.PrintErrf("sample payload isn't an output variant\n")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateRows = false
	t.Style().Options.SeparateColumns = false
	t.Style().Options.SeparateHeader = false
	t.Style().Options.SeparateFooter = false

	t.AppendHeader(table.Row{"Field", "Value", "Bytes"})
	t.AppendRow(table.Row{"index_html", resp.Output.IndexHTML, len(resp.Output.IndexHTML)})
	t.AppendRow(table.Row{"js", resp.Output.JS, len(resp.Output.JS)})
	t.AppendRow(table.Row{"wasm", string(resp.Output.Wasm), len(resp.Output.Wasm)})

	t.Render()
}
