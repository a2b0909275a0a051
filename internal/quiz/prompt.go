package quiz

import (
	"fmt"
	"strings"

	"github.com/tutorbay/tutorbay/internal/session"
)

const systemPrompt = `You are a tutor writing a short retention quiz. The quiz tests whether the student remembers what was covered in their last session, with extra weight on the areas they struggled with.`

func buildUserMessage(subject string, sum *session.Summary) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Subject: %s\n", subject))

	b.WriteString("\nWhat was learned:\n")
	b.WriteString(sum.WhatWasLearned)
	b.WriteString("\n\nMistakes observed:\n")
	b.WriteString(sum.Mistakes)
	b.WriteString("\n\nStrengths:\n")
	b.WriteString(sum.Strengths)
	b.WriteString("\n\nAssigned practice:\n")
	b.WriteString(sum.PracticeTasks)
	b.WriteString("\n")

	b.WriteString(`
Instructions:
Write 4-6 questions covering the material above:
1. Mix multiple_choice and true_false questions. Weight questions toward the mistakes listed above.
2. multiple_choice questions need 3-4 plausible options; correct_answer must repeat one option exactly, character for character.
3. true_false questions take correct_answer "true" or "false" and no options.
4. Every question needs a short explanation and a topic label taken from the material.
5. List the focus areas the quiz emphasizes and rate the overall difficulty.
Use plain text, no markdown.`)

	return b.String()
}
