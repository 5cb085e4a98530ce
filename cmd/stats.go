package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/patenteapp/patente/internal/history"
	"github.com/patenteapp/patente/internal/mistakes"
	"github.com/patenteapp/patente/internal/progress"
	"github.com/patenteapp/patente/internal/readiness"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		dsn, err := resolveDSN(cmd)
		if err != nil {
			return fmt.Errorf("resolve data source: %w", err)
		}
		st, err := openStore(dsn)
		if err != nil {
			return err
		}
		defer st.Close()

		repo, err := st.EventRepo()
		if err != nil {
			return fmt.Errorf("open event repo: %w", err)
		}

		catalog, err := loadCatalog()
		if err != nil {
			return err
		}

		tracker, err := mistakes.Load(ctx, repo)
		if err != nil {
			return err
		}
		lessonProgress, err := progress.LoadLessons(ctx, repo)
		if err != nil {
			return err
		}
		histLog, err := history.Load(ctx, repo)
		if err != nil {
			return err
		}

		recent := histLog.Last(readiness.ExamWindow)
		ratios := make([]float64, 0, len(recent))
		for _, r := range recent {
			if r.Total > 0 {
				ratios = append(ratios, float64(r.Score)/float64(r.Total))
			}
		}
		score := readiness.Score(readiness.Input{
			CompletedLessons: lessonProgress.Count(),
			TotalLessons:     catalog.LessonCount(),
			ExamRatios:       ratios,
			MistakeCount:     tracker.Count(),
		})

		fmt.Printf("Readiness:            %d%%\n", score)
		fmt.Printf("Lessons completed:    %d / %d\n", lessonProgress.Count(), catalog.LessonCount())
		fmt.Printf("Mistakes outstanding: %d\n", tracker.Count())
		fmt.Println()

		results := histLog.All()
		passed := 0
		for _, r := range results {
			if r.Passed {
				passed++
			}
		}
		fmt.Printf("Exams: %d taken, %d passed\n", len(results), passed)
		for i := len(results) - 1; i >= 0; i-- {
			r := results[i]
			verdict := "failed"
			if r.Passed {
				verdict = "passed"
			}
			fmt.Printf("  %s  %2d/%d  %02d:%02d  %s\n",
				r.Date.Local().Format("2006-01-02 15:04"),
				r.Score, r.Total,
				r.TimeSpent/60, r.TimeSpent%60,
				verdict)
		}

		stats, err := repo.AnswerStatsByMode(ctx)
		if err != nil {
			return fmt.Errorf("query answer stats: %w", err)
		}
		if len(stats) > 0 {
			fmt.Println()
			fmt.Println("Answer accuracy by mode")
			fmt.Println(strings.Repeat("─", 40))
			modes := make([]string, 0, len(stats))
			for mode := range stats {
				modes = append(modes, mode)
			}
			sort.Strings(modes)
			for _, mode := range modes {
				s := stats[mode]
				if s.Total == 0 {
					continue
				}
				fmt.Printf("  %-12s  %4d/%-4d  (%d%%)\n",
					mode, s.Correct, s.Total, 100*s.Correct/s.Total)
			}
		}
		return nil
	},
}
