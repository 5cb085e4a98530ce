package cmd

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/patenteapp/patente/internal/llm"
	"github.com/patenteapp/patente/internal/store"
	"github.com/spf13/cobra"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect LLM request/response events",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM events",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		records, st, err := queryLLMRecords(cmd, store.QueryOpts{Limit: limit})
		if err != nil {
			return err
		}
		defer st.Close()

		if len(records) == 0 {
			fmt.Println("No LLM events found.")
			return nil
		}

		fmt.Printf("%-5s  %-19s  %-14s  %-28s  %-6s  %-6s  %-7s  %s\n",
			"Seq", "Timestamp", "Purpose", "Model", "In", "Out", "Ms", "OK")
		fmt.Println(strings.Repeat("─", 100))

		for _, e := range records {
			if purpose != "" && e.Purpose != purpose {
				continue
			}
			ok := "✓"
			if !e.Success {
				ok = "✗"
			}
			model := e.Model
			if len(model) > 28 {
				model = model[:28]
			}
			fmt.Printf("%-5d  %-19s  %-14s  %-28s  %-6d  %-6d  %-7d  %s\n",
				e.Sequence,
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				e.Purpose,
				model,
				e.InputTokens,
				e.OutputTokens,
				e.LatencyMs,
				ok,
			)
		}
		return nil
	},
}

var llmViewCmd = &cobra.Command{
	Use:   "view <seq>",
	Short: "View full request/response for an LLM event",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		seq, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid sequence %q: %w", args[0], err)
		}

		records, st, err := queryLLMRecords(cmd, store.QueryOpts{})
		if err != nil {
			return err
		}
		defer st.Close()

		var found *store.LLMRequestRecord
		for i := range records {
			if records[i].Sequence == seq {
				found = &records[i]
				break
			}
		}
		if found == nil {
			return fmt.Errorf("event %d not found", seq)
		}

		sep := strings.Repeat("─", 60)

		fmt.Printf("Seq:       %d\n", found.Sequence)
		fmt.Printf("Time:      %s\n", found.Timestamp.Local().Format("2006-01-02 15:04:05"))
		fmt.Printf("Provider:  %s\n", found.Provider)
		fmt.Printf("Model:     %s\n", found.Model)
		fmt.Printf("Purpose:   %s\n", found.Purpose)
		fmt.Printf("Tokens:    %d in / %d out\n", found.InputTokens, found.OutputTokens)
		fmt.Printf("Latency:   %dms\n", found.LatencyMs)
		fmt.Printf("Success:   %v\n", found.Success)
		if found.ErrorMessage != "" {
			fmt.Printf("Error:     %s\n", found.ErrorMessage)
		}

		fmt.Println()
		fmt.Println(sep)
		fmt.Println("REQUEST")
		fmt.Println(sep)
		if found.RequestBody != "" {
			fmt.Println(found.RequestBody)
		} else {
			fmt.Println("(not captured)")
		}

		fmt.Println(sep)
		fmt.Println("RESPONSE")
		fmt.Println(sep)
		if found.ResponseBody != "" {
			fmt.Println(found.ResponseBody)
		} else {
			fmt.Println("(not captured)")
		}

		return nil
	},
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregated LLM token usage and estimated cost",
	RunE: func(cmd *cobra.Command, args []string) error {
		records, st, err := queryLLMRecords(cmd, store.QueryOpts{})
		if err != nil {
			return err
		}
		defer st.Close()

		if len(records) == 0 {
			fmt.Println("No LLM usage recorded yet.")
			return nil
		}

		type usage struct {
			calls   int
			in, out int
			latency int64
		}
		byPurpose := make(map[string]*usage)
		byModel := make(map[string]*usage)
		add := func(m map[string]*usage, key string, e store.LLMRequestRecord) {
			u := m[key]
			if u == nil {
				u = &usage{}
				m[key] = u
			}
			u.calls++
			u.in += e.InputTokens
			u.out += e.OutputTokens
			u.latency += e.LatencyMs
		}
		for _, e := range records {
			add(byPurpose, e.Purpose, e)
			add(byModel, e.Model, e)
		}

		fmt.Println("Usage by Purpose")
		fmt.Println(strings.Repeat("─", 72))
		fmt.Printf("%-16s  %6s  %10s  %10s  %10s  %8s\n",
			"Purpose", "Calls", "Input", "Output", "Total", "Avg Ms")
		fmt.Println(strings.Repeat("─", 72))

		var totalCalls, totalIn, totalOut int
		for _, p := range sortedKeys(byPurpose) {
			u := byPurpose[p]
			fmt.Printf("%-16s  %6d  %10d  %10d  %10d  %8d\n",
				p, u.calls, u.in, u.out, u.in+u.out, u.latency/int64(u.calls))
			totalCalls += u.calls
			totalIn += u.in
			totalOut += u.out
		}
		fmt.Println(strings.Repeat("─", 72))
		fmt.Printf("%-16s  %6d  %10d  %10d  %10d\n",
			"TOTAL", totalCalls, totalIn, totalOut, totalIn+totalOut)

		fmt.Println()
		fmt.Println("Estimated Cost by Model")
		fmt.Println(strings.Repeat("─", 72))
		var totalCost float64
		for _, m := range sortedKeys(byModel) {
			u := byModel[m]
			cost := llm.LookupCost(m)
			if cost == nil {
				fmt.Printf("%-40s  %6d  %10s\n", m, u.calls, "unknown")
				continue
			}
			c := cost.Cost(u.in, u.out)
			totalCost += c
			fmt.Printf("%-40s  %6d  $%9.4f\n", m, u.calls, c)
		}
		fmt.Println(strings.Repeat("─", 72))
		fmt.Printf("%-40s  %6s  $%9.4f\n", "TOTAL", "", totalCost)

		return nil
	},
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// queryLLMRecords opens the store and loads LLM request records. The caller
// closes the returned store.
func queryLLMRecords(cmd *cobra.Command, opts store.QueryOpts) ([]store.LLMRequestRecord, *store.Store, error) {
	dsn, err := resolveDSN(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve data source: %w", err)
	}
	st, err := openStore(dsn)
	if err != nil {
		return nil, nil, err
	}

	repo, err := st.EventRepo()
	if err != nil {
		st.Close()
		return nil, nil, fmt.Errorf("open event repo: %w", err)
	}

	records, err := repo.QueryLLMRequests(cmd.Context(), opts)
	if err != nil {
		st.Close()
		return nil, nil, fmt.Errorf("query events: %w", err)
	}
	return records, st, nil
}

func init() {
	llmCmd.AddCommand(llmListCmd)
	llmCmd.AddCommand(llmViewCmd)
	llmCmd.AddCommand(llmStatsCmd)

	llmListCmd.Flags().Int("limit", 50, "Maximum number of events to list")
	llmListCmd.Flags().String("purpose", "", "Filter by purpose")
}
