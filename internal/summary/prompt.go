package summary

import (
	"fmt"
	"strings"
	"time"
)

const systemPrompt = `You are an experienced private tutor writing a post-session recap for a student and their parents. Be specific, encouraging, and honest about what still needs work.`

// promptInput is the resolved context for one summary prompt.
type promptInput struct {
	Subject     string
	StudentName string
	Duration    time.Duration
	TutorNotes  string
}

func buildUserMessage(in promptInput) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Subject: %s\n", in.Subject))
	b.WriteString(fmt.Sprintf("Student: %s\n", in.StudentName))
	b.WriteString(fmt.Sprintf("Session length: %d minutes\n", int(in.Duration.Minutes())))

	b.WriteString("\nTutor's raw notes:\n")
	b.WriteString(in.TutorNotes)
	b.WriteString("\n")

	b.WriteString(`
Instructions:
Write the recap from the tutor's notes above:
1. what_was_learned: the concepts and skills actually covered. Stick to the notes; do not invent topics.
2. mistakes: recurring mistakes or misconceptions, phrased constructively.
3. strengths: what the student did well this session.
4. practice_tasks: 2-4 concrete tasks the student can do before the next session, one per line.
Every field must be filled in. Use plain text, no markdown.`)

	return b.String()
}
