package cmd

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/patenteapp/patente/internal/app"
	"github.com/patenteapp/patente/internal/coach"
	"github.com/patenteapp/patente/internal/content"
	"github.com/patenteapp/patente/internal/exam"
	"github.com/patenteapp/patente/internal/history"
	"github.com/patenteapp/patente/internal/learner"
	"github.com/patenteapp/patente/internal/llm"
	"github.com/patenteapp/patente/internal/mistakes"
	"github.com/patenteapp/patente/internal/progress"
	"github.com/patenteapp/patente/internal/quiz"
	"github.com/patenteapp/patente/internal/screens/home"
	"github.com/patenteapp/patente/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, replays learner state, and launches the TUI.
// startExam opens a mock-exam attempt immediately instead of the home menu.
func runApp(cmd *cobra.Command, startExam bool) error {
	ctx := cmd.Context()

	dsn, err := resolveDSN(cmd)
	if err != nil {
		return fmt.Errorf("resolve data source: %w", err)
	}
	st, err := store.Open(dsn)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
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

	var coachSvc *coach.Service
	provider, err := llm.NewProviderFromEnv(ctx, repo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Coach explanations will use the built-in templates.")
		coachSvc = coach.NewService(nil, coach.DefaultConfig())
	} else {
		coachSvc = coach.NewService(provider, coach.DefaultConfig())
	}

	profile := learner.Current()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	session := exam.NewSession(exam.Config{
		Catalog:  catalog,
		Log:      histLog,
		Mistakes: tracker,
		UserID:   profile.UserID(),
		Rand:     rng,
	})

	deps := home.Deps{
		Catalog:  catalog,
		Repo:     repo,
		Session:  session,
		Grader:   quiz.NewGrader(tracker, repo),
		Mistakes: tracker,
		Lessons:  lessonProgress,
		History:  histLog,
		Coach:    coachSvc,
		Profile:  profile,
		Rand:     rng,
	}
	if startExam {
		return app.RunExam(deps)
	}
	return app.Run(deps)
}

// loadCatalog returns the built-in catalog, or the one named by
// PATENTE_CONTENT when set.
func loadCatalog() (*content.Repository, error) {
	path := os.Getenv("PATENTE_CONTENT")
	if path == "" {
		return content.NewDefaultRepository(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open content file: %w", err)
	}
	defer f.Close()

	c, err := content.Import(f)
	if err != nil {
		return nil, fmt.Errorf("import %s: %w", path, err)
	}
	return content.NewRepository(c), nil
}
