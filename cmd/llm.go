package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/abhisek/fitcheck/internal/llm"
	"github.com/abhisek/fitcheck/internal/store"
	"github.com/spf13/cobra"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect logged LLM requests and usage",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM events",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		out := cmd.OutOrStdout()
		opts := store.QueryOpts{Limit: limit}
		if purpose != "" {
			// Filter before limiting so -n counts matching events.
			opts.Limit = 0
		}
		events, err := s.EventRepo().QueryLLMEvents(ctx, opts)
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}
		events = filterByPurpose(events, purpose, limit)

		if len(events) == 0 {
			fmt.Fprintln(out, "No LLM events found.")
			return nil
		}

		fmt.Fprintf(out, "%-5s  %-19s  %-10s  %-28s  %-6s  %-6s  %-7s  %s\n",
			"ID", "Timestamp", "Purpose", "Model", "In", "Out", "Ms", "OK")
		fmt.Fprintln(out, strings.Repeat("\u2500", 96))

		for _, e := range events {
			ok := "✓"
			if !e.Success {
				ok = "✗"
			}
			fmt.Fprintf(out, "%-5d  %-19s  %-10s  %-28s  %-6d  %-6d  %-7d  %s\n",
				e.ID,
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				truncate(e.Purpose, 10),
				truncate(e.Model, 28),
				e.InputTokens,
				e.OutputTokens,
				e.LatencyMs,
				ok,
			)
		}
		return nil
	},
}

func filterByPurpose(events []store.LLMEventRecord, purpose string, limit int) []store.LLMEventRecord {
	if purpose == "" {
		return events
	}
	out := events[:0]
	for _, e := range events {
		if e.Purpose != purpose {
			continue
		}
		out = append(out, e)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

var llmViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Show the full prompt and response of one LLM event",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid event id %q", args[0])
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		e, err := s.EventRepo().GetLLMEvent(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("get event: %w", err)
		}
		if e == nil {
			return fmt.Errorf("event %d not found", id)
		}
		writeEvent(cmd.OutOrStdout(), e)
		return nil
	},
}

func writeEvent(w io.Writer, e *store.LLMEventRecord) {
	status := "ok"
	if !e.Success {
		status = "failed: " + e.ErrorMessage
	}
	fields := [][2]string{
		{"Event", strconv.Itoa(e.ID)},
		{"Time", e.Timestamp.Local().Format("2006-01-02 15:04:05")},
		{"Provider", e.Provider},
		{"Model", e.Model},
		{"Purpose", e.Purpose},
		{"Tokens", fmt.Sprintf("%d in, %d out", e.InputTokens, e.OutputTokens)},
		{"Latency", fmt.Sprintf("%dms", e.LatencyMs)},
		{"Status", status},
	}
	for _, f := range fields {
		fmt.Fprintf(w, "%-10s %s\n", f[0]+":", f[1])
	}

	for _, section := range [][2]string{{"Request", e.RequestBody}, {"Response", e.ResponseBody}} {
		body := section[1]
		if body == "" {
			body = "(not captured)"
		}
		fmt.Fprintf(w, "\n── %s %s\n%s\n", section[0], strings.Repeat("─", 56-len(section[0])), body)
	}
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show token usage per purpose and estimated cost per model",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		byPurpose, err := s.EventRepo().LLMUsageByPurpose(ctx)
		if err != nil {
			return fmt.Errorf("query usage: %w", err)
		}
		byModel, err := s.EventRepo().LLMUsageByModel(ctx)
		if err != nil {
			return fmt.Errorf("query model usage: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(byPurpose) == 0 {
			fmt.Fprintln(out, "No LLM usage recorded yet.")
			return nil
		}
		writePurposeUsage(out, byPurpose)
		if len(byModel) > 0 {
			fmt.Fprintln(out)
			writeModelCost(out, byModel)
		}
		return nil
	},
}

const statsRule = 72

func writePurposeUsage(w io.Writer, stats []store.LLMPurposeUsage) {
	rule := strings.Repeat("─", statsRule)
	fmt.Fprintf(w, "Usage by purpose\n%s\n", rule)
	fmt.Fprintf(w, "%-16s  %6s  %10s  %10s  %10s  %8s\n%s\n",
		"Purpose", "Calls", "Input", "Output", "Total", "Avg Ms", rule)

	var calls, in, outTok int
	for _, st := range stats {
		fmt.Fprintf(w, "%-16s  %6d  %10d  %10d  %10d  %8d\n",
			truncate(st.Purpose, 16), st.Calls, st.InputTokens, st.OutputTokens,
			st.InputTokens+st.OutputTokens, st.AvgLatencyMs)
		calls += st.Calls
		in += st.InputTokens
		outTok += st.OutputTokens
	}
	fmt.Fprintf(w, "%s\n%-16s  %6d  %10d  %10d  %10d\n", rule, "TOTAL", calls, in, outTok, in+outTok)
}

// writeModelCost prices each model from the llm price table. Models without
// a known price are listed and make the total partial.
func writeModelCost(w io.Writer, usage []store.LLMModelUsage) {
	rule := strings.Repeat("─", statsRule)
	fmt.Fprintf(w, "Estimated cost (USD)\n%s\n", rule)
	fmt.Fprintf(w, "%-32s  %6s  %10s  %10s  %9s\n%s\n", "Model", "Calls", "Input", "Output", "Cost", rule)

	var total float64
	var unpriced []string
	for _, mu := range usage {
		cost := "?"
		if price := llm.LookupCost(mu.Model); price != nil {
			c := price.Cost(mu.InputTokens, mu.OutputTokens)
			total += c
			cost = formatCost(c)
		} else {
			unpriced = append(unpriced, mu.Model)
		}
		fmt.Fprintf(w, "%-32s  %6d  %10d  %10d  %9s\n",
			truncate(mu.Model, 32), mu.Calls, mu.InputTokens, mu.OutputTokens, cost)
	}

	label := "TOTAL"
	if len(unpriced) > 0 {
		label = "TOTAL (partial)"
	}
	fmt.Fprintf(w, "%s\n%-32s  %6s  %10s  %10s  %9s\n", rule, label, "", "", "", formatCost(total))
	if len(unpriced) > 0 {
		fmt.Fprintf(w, "\nPricing unavailable for: %s\n", strings.Join(unpriced, ", "))
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of events to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Filter by purpose (e.g. coach)")

	llmCmd.AddCommand(llmListCmd)
	llmCmd.AddCommand(llmViewCmd)
	llmCmd.AddCommand(llmStatsCmd)
}
