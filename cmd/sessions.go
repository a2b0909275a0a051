package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/tutorbay/tutorbay/internal/session"
	"github.com/tutorbay/tutorbay/internal/store"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Inspect tutoring sessions",
}

var sessionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		sessions, err := s.SessionRepo().List(context.Background(), limit)
		if err != nil {
			return fmt.Errorf("list sessions: %w", err)
		}

		if len(sessions) == 0 {
			fmt.Println("No sessions found.")
			return nil
		}

		fmt.Printf("%-36s  %-16s  %-11s  %-8s  %-7s  %s\n",
			"ID", "Scheduled", "Status", "Cancel", "Summary", "Subject")
		fmt.Println(strings.Repeat("─", 100))

		for _, sess := range sessions {
			summary := "-"
			if sess.AISummary != nil {
				summary = "yes"
			}
			fmt.Printf("%-36s  %-16s  %-11s  %-8s  %-7s  %s\n",
				sess.ID,
				sess.ScheduledAt.Local().Format("2006-01-02 15:04"),
				sess.Status,
				sess.Cancel,
				summary,
				sess.SubjectID,
			)
		}
		return nil
	},
}

var sessionsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one session in full",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		sess, err := s.SessionRepo().Get(context.Background(), args[0])
		if err != nil {
			return err
		}

		fmt.Printf("ID:           %s\n", sess.ID)
		fmt.Printf("Tutor:        %s\n", sess.TutorID)
		fmt.Printf("Student:      %s\n", sess.StudentID)
		fmt.Printf("Subject:      %s\n", sess.SubjectID)
		fmt.Printf("Scheduled:    %s (%d min)\n",
			sess.ScheduledAt.Local().Format("2006-01-02 15:04"), int(sess.Duration.Minutes()))
		fmt.Printf("Status:       %s\n", sess.Status)
		fmt.Printf("Cancel state: %s\n", sess.Cancel)
		fmt.Printf("Price:        %d.%02d\n", sess.PriceCents/100, sess.PriceCents%100)
		fmt.Printf("Version:      %d\n", sess.Version)

		if sess.TutorNotes != "" {
			fmt.Println("\nTutor notes:")
			fmt.Println(sess.TutorNotes)
		}
		if sess.AISummary != nil {
			fmt.Println("\nLesson summary:")
			fmt.Printf("  Learned:   %s\n", sess.AISummary.WhatWasLearned)
			fmt.Printf("  Mistakes:  %s\n", sess.AISummary.Mistakes)
			fmt.Printf("  Strengths: %s\n", sess.AISummary.Strengths)
			fmt.Printf("  Practice:  %s\n", sess.AISummary.PracticeTasks)
		}
		return nil
	},
}

var sessionsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Book a new pending session",
	RunE: func(cmd *cobra.Command, args []string) error {
		tutor, _ := cmd.Flags().GetString("tutor")
		student, _ := cmd.Flags().GetString("student")
		subject, _ := cmd.Flags().GetString("subject")
		at, _ := cmd.Flags().GetString("at")
		minutes, _ := cmd.Flags().GetInt("minutes")
		price, _ := cmd.Flags().GetInt("price-cents")
		notes, _ := cmd.Flags().GetString("notes")

		scheduledAt, err := time.ParseInLocation("2006-01-02 15:04", at, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --at %q (want \"2006-01-02 15:04\"): %w", at, err)
		}

		l, err := openLifecycle(cmd)
		if err != nil {
			return err
		}
		defer l.Close()

		sess, err := l.sessions.Create(cmd.Context(), session.CreateParams{
			TutorID:     tutor,
			StudentID:   student,
			SubjectID:   subject,
			ScheduledAt: scheduledAt,
			Duration:    time.Duration(minutes) * time.Minute,
			PriceCents:  price,
			Notes:       notes,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Created session %s (%s)\n", sess.ID, sess.Status)
		return nil
	},
}

// transitionCommand builds a one-argument command that moves a session
// through a lifecycle step.
func transitionCommand(use, short string, run func(*lifecycle, context.Context, string) (*session.Session, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := openLifecycle(cmd)
			if err != nil {
				return err
			}
			defer l.Close()

			sess, err := run(l, cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Session %s is now %s\n", sess.ID, sess.Status)
			return nil
		},
	}
}

var sessionsNotesCmd = &cobra.Command{
	Use:   "notes <id> <notes...>",
	Short: "Attach the tutor's post-session notes",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		l, err := openLifecycle(cmd)
		if err != nil {
			return err
		}
		defer l.Close()

		sess, err := l.sessions.AttachTutorNotes(cmd.Context(), args[0], strings.Join(args[1:], " "))
		if err != nil {
			return err
		}
		fmt.Printf("Notes attached to session %s\n", sess.ID)
		return nil
	},
}

var sessionsCancelCmd = &cobra.Command{
	Use:   "cancel <id>",
	Short: "Request cancellation as one party",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		as, _ := cmd.Flags().GetString("as")
		role, err := parseRole(as)
		if err != nil {
			return err
		}

		l, err := openLifecycle(cmd)
		if err != nil {
			return err
		}
		defer l.Close()

		sess, err := l.sessions.RequestCancel(cmd.Context(), args[0], role)
		if err != nil {
			return err
		}
		if sess.Status == session.StatusCancelled {
			fmt.Printf("Session %s cancelled (mutual agreement)\n", sess.ID)
		} else {
			fmt.Printf("Cancellation requested by %s; awaiting %s\n", role, role.Counterparty())
		}
		return nil
	},
}

var sessionsRespondCmd = &cobra.Command{
	Use:   "respond <id>",
	Short: "Answer the counterparty's cancellation request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		as, _ := cmd.Flags().GetString("as")
		role, err := parseRole(as)
		if err != nil {
			return err
		}
		dec, _ := cmd.Flags().GetString("decision")
		decision, err := parseDecision(dec)
		if err != nil {
			return err
		}

		l, err := openLifecycle(cmd)
		if err != nil {
			return err
		}
		defer l.Close()

		sess, err := l.sessions.RespondToCancel(cmd.Context(), args[0], role, decision)
		if err != nil {
			return err
		}
		fmt.Printf("Session %s is now %s\n", sess.ID, sess.Status)
		return nil
	},
}

var sessionsSummarizeCmd = &cobra.Command{
	Use:   "summarize <id>",
	Short: "Generate and attach the AI lesson summary",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openAssessment(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		sum, err := a.summaries.Generate(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		fmt.Println("Lesson summary attached:")
		fmt.Printf("  Learned:   %s\n", sum.WhatWasLearned)
		fmt.Printf("  Mistakes:  %s\n", sum.Mistakes)
		fmt.Printf("  Strengths: %s\n", sum.Strengths)
		fmt.Printf("  Practice:  %s\n", sum.PracticeTasks)
		return nil
	},
}

func init() {
	sessionsListCmd.Flags().IntP("limit", "n", 20, "Number of sessions to show")

	sessionsCreateCmd.Flags().String("tutor", "", "Tutor ID")
	sessionsCreateCmd.Flags().String("student", "", "Student ID")
	sessionsCreateCmd.Flags().String("subject", "", "Subject ID")
	sessionsCreateCmd.Flags().String("at", "", "Scheduled time, \"2006-01-02 15:04\" local")
	sessionsCreateCmd.Flags().Int("minutes", 60, "Session length in minutes")
	sessionsCreateCmd.Flags().Int("price-cents", 0, "Price in cents")
	sessionsCreateCmd.Flags().String("notes", "", "Booking notes")
	for _, f := range []string{"tutor", "student", "subject", "at"} {
		_ = sessionsCreateCmd.MarkFlagRequired(f)
	}

	sessionsCancelCmd.Flags().String("as", "", "Acting party: tutor or student")
	_ = sessionsCancelCmd.MarkFlagRequired("as")
	sessionsRespondCmd.Flags().String("as", "", "Acting party: tutor or student")
	sessionsRespondCmd.Flags().String("decision", "", "accept or reject")
	_ = sessionsRespondCmd.MarkFlagRequired("as")
	_ = sessionsRespondCmd.MarkFlagRequired("decision")

	sessionsCmd.AddCommand(sessionsListCmd)
	sessionsCmd.AddCommand(sessionsShowCmd)
	sessionsCmd.AddCommand(sessionsCreateCmd)
	sessionsCmd.AddCommand(transitionCommand("schedule", "Confirm a pending booking",
		func(l *lifecycle, ctx context.Context, id string) (*session.Session, error) {
			return l.sessions.Schedule(ctx, id)
		}))
	sessionsCmd.AddCommand(transitionCommand("start", "Mark a scheduled session as in progress",
		func(l *lifecycle, ctx context.Context, id string) (*session.Session, error) {
			return l.sessions.Start(ctx, id)
		}))
	sessionsCmd.AddCommand(transitionCommand("complete", "Finish an in-progress session",
		func(l *lifecycle, ctx context.Context, id string) (*session.Session, error) {
			return l.sessions.Complete(ctx, id)
		}))
	sessionsCmd.AddCommand(sessionsNotesCmd)
	sessionsCmd.AddCommand(sessionsCancelCmd)
	sessionsCmd.AddCommand(sessionsRespondCmd)
	sessionsCmd.AddCommand(sessionsSummarizeCmd)
}
