package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tutorbay/tutorbay/internal/quiz"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Generate, inspect, and grade retention quizzes",
}

var quizGenerateCmd = &cobra.Command{
	Use:   "generate <session-id>",
	Short: "Generate the quiz from the session's lesson summary",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openAssessment(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		q, err := a.quizzes.Generate(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Generated quiz %s (%d questions, %s)\n", q.ID, len(q.Questions), q.Difficulty)
		printQuestions(q)
		return nil
	},
}

var quizShowCmd = &cobra.Command{
	Use:   "show <session-id>",
	Short: "Show the session's quiz and the latest attempt",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Read-only: goes straight to the repos so no LLM credentials are
		// needed to inspect a quiz.
		l, err := openLifecycle(cmd)
		if err != nil {
			return err
		}
		defer l.Close()

		q, err := l.store.QuizRepo().GetBySession(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		sess, err := l.sessions.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		attempt, err := l.store.AttemptRepo().LatestForQuiz(cmd.Context(), q.ID, sess.StudentID)
		if err != nil {
			return err
		}

		fmt.Printf("Quiz %s (%d questions, %s)\n", q.ID, len(q.Questions), q.Difficulty)
		printQuestions(q)

		if attempt == nil {
			fmt.Println("\nNo attempt yet.")
			return nil
		}
		fmt.Printf("\nLatest attempt: %d/100 (%d of %d correct), completed %s\n",
			attempt.Score, attempt.CorrectCount, attempt.TotalQuestions,
			attempt.CompletedAt.Local().Format("2006-01-02 15:04"))
		for i, r := range attempt.DetailedResults {
			mark := "✗"
			if r.IsCorrect {
				mark = "✓"
			}
			fmt.Printf("  %s %d. %s (answered %q)\n", mark, i+1, r.Question, r.StudentAnswer)
		}
		return nil
	},
}

var quizSubmitCmd = &cobra.Command{
	Use:   "submit <session-id>",
	Short: "Grade a student's answers against the session's quiz",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		student, _ := cmd.Flags().GetString("student")
		raw, _ := cmd.Flags().GetString("answers")

		answers := parseAnswers(raw)

		a, err := openAssessment(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		attempt, err := a.quizzes.Submit(cmd.Context(), args[0], student, answers)
		if err != nil {
			return err
		}

		fmt.Printf("Scored %d/100 (%d of %d correct)\n",
			attempt.Score, attempt.CorrectCount, attempt.TotalQuestions)
		for i, r := range attempt.DetailedResults {
			if r.IsCorrect {
				continue
			}
			fmt.Printf("  %d. %s\n     answered %q, correct %q: %s\n",
				i+1, r.Question, r.StudentAnswer, r.CorrectAnswer, r.Explanation)
		}
		return nil
	},
}

// parseAnswers splits a semicolon-separated answer list into the contiguous
// index-keyed map the grader expects. Answers may contain spaces; the grader
// trims them.
func parseAnswers(raw string) map[int]string {
	answers := make(map[int]string)
	if raw == "" {
		return answers
	}
	for i, a := range strings.Split(raw, ";") {
		answers[i] = a
	}
	return answers
}

func printQuestions(q *quiz.Quiz) {
	for i, question := range q.Questions {
		fmt.Printf("  %d. [%s] %s\n", i+1, question.Type, question.Text)
		for _, opt := range question.Options {
			fmt.Printf("       - %s\n", opt)
		}
	}
}

func init() {
	quizSubmitCmd.Flags().String("student", "", "Student ID submitting the answers")
	quizSubmitCmd.Flags().String("answers", "", "Answers in question order, separated by \";\"")
	_ = quizSubmitCmd.MarkFlagRequired("student")
	_ = quizSubmitCmd.MarkFlagRequired("answers")

	quizCmd.AddCommand(quizGenerateCmd)
	quizCmd.AddCommand(quizShowCmd)
	quizCmd.AddCommand(quizSubmitCmd)
}
