package cmd

// Composition root for commands that drive the pipeline: store repos,
// LLM provider (with call recording), notifier, and the domain services
// wired together the same way on every command.

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tutorbay/tutorbay/internal/llm"
	"github.com/tutorbay/tutorbay/internal/notify"
	"github.com/tutorbay/tutorbay/internal/quiz"
	"github.com/tutorbay/tutorbay/internal/session"
	"github.com/tutorbay/tutorbay/internal/store"
	"github.com/tutorbay/tutorbay/internal/summary"
)

// idDirectory resolves display names for prompts. Profiles live in another
// service; the CLI passes the raw IDs through as names.
type idDirectory struct{}

func (idDirectory) SubjectName(_ context.Context, subjectID string) (string, error) {
	return subjectID, nil
}

func (idDirectory) StudentName(_ context.Context, studentID string) (string, error) {
	return studentID, nil
}

// notifierFromEnv returns the AMQP notifier when TUTORBAY_AMQP_URL is set,
// and a no-op notifier otherwise. The returned closer is always safe to call.
func notifierFromEnv() (notify.Notifier, func(), error) {
	url := os.Getenv("TUTORBAY_AMQP_URL")
	if url == "" {
		return notify.Noop{}, func() {}, nil
	}

	exchange := os.Getenv("TUTORBAY_AMQP_EXCHANGE")
	if exchange == "" {
		exchange = "tutorbay.events"
	}

	n, err := notify.NewAMQPNotifier(url, exchange)
	if err != nil {
		return nil, nil, fmt.Errorf("connect notifier: %w", err)
	}
	return n, n.Close, nil
}

// generatorConfigs derives the summary and quiz generation settings from the
// resolved LLM config, propagating its timeout over the per-generator
// defaults.
func generatorConfigs(cfg llm.Config) (summary.Config, quiz.Config) {
	sumCfg := summary.DefaultConfig()
	quizCfg := quiz.DefaultConfig()
	if cfg.Timeout > 0 {
		sumCfg.Timeout = cfg.Timeout
		quizCfg.Timeout = cfg.Timeout
	}
	return sumCfg, quizCfg
}

// lifecycle bundles the store-backed session service for commands that only
// move sessions through their lifecycle. No LLM credentials required.
type lifecycle struct {
	store    *store.Store
	sessions *session.Service
	notifier notify.Notifier

	closeNotifier func()
}

func openLifecycle(cmd *cobra.Command) (*lifecycle, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	notifier, closeNotifier, err := notifierFromEnv()
	if err != nil {
		s.Close()
		return nil, err
	}

	return &lifecycle{
		store:         s,
		sessions:      session.NewService(s.SessionRepo(), notifier),
		notifier:      notifier,
		closeNotifier: closeNotifier,
	}, nil
}

func (l *lifecycle) Close() {
	l.closeNotifier()
	_ = l.store.Close()
}

// assessment extends lifecycle with the LLM-backed generators and grading.
type assessment struct {
	*lifecycle
	summaries *summary.Service
	quizzes   *quiz.Service
}

func openAssessment(cmd *cobra.Command) (*assessment, error) {
	l, err := openLifecycle(cmd)
	if err != nil {
		return nil, err
	}

	provider, llmCfg, err := llm.NewProviderFromEnv(cmd.Context(), l.store.EventRepo())
	if err != nil {
		l.Close()
		return nil, fmt.Errorf("configure LLM provider: %w", err)
	}

	sumCfg, quizCfg := generatorConfigs(llmCfg)

	return &assessment{
		lifecycle: l,
		summaries: summary.NewService(provider, l.sessions, idDirectory{}, sumCfg),
		quizzes: quiz.NewService(
			provider,
			l.sessions,
			l.store.QuizRepo(),
			l.store.AttemptRepo(),
			idDirectory{},
			l.notifier,
			quizCfg,
		),
	}, nil
}

func parseRole(s string) (session.Role, error) {
	switch s {
	case "tutor":
		return session.RoleTutor, nil
	case "student":
		return session.RoleStudent, nil
	default:
		return "", fmt.Errorf("invalid role %q (want tutor or student)", s)
	}
}

func parseDecision(s string) (session.Decision, error) {
	switch s {
	case "accept":
		return session.DecisionAccept, nil
	case "reject":
		return session.DecisionReject, nil
	default:
		return "", fmt.Errorf("invalid decision %q (want accept or reject)", s)
	}
}
