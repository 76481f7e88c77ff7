package questionparser

import (
	"fmt"
	"strings"

	"github.com/willyuhot/ehexam/internal/domain"
)

// Format renders q in the grammar that Parse reads back, so that
// Parse(Format(q)) yields q for any valid question with trimmed fields.
func Format(q domain.Question) string {
	var b strings.Builder

	b.WriteString(headerOf(q))
	b.WriteString("\n\n")
	b.WriteString(markerText + q.Text + "\n\n")

	b.WriteString(markerOptions + "\n")
	for _, label := range domain.OptionLabels {
		if opt, ok := q.Options[label]; ok {
			b.WriteString(label + ")" + opt + "\n")
		}
	}

	b.WriteString(markerAnswer + q.CorrectAnswer + "\n")
	b.WriteString(markerCheck + "：正确\n")
	b.WriteString(markerTranslation + q.Translation + "\n\n")
	b.WriteString(markerKeyPoint + "\n" + q.KeyPoint + "\n\n")
	b.WriteString(markerAnalysis + "\n" + q.Analysis + "\n\n")

	if len(q.CoreWords) > 0 {
		b.WriteString(markerCoreWords + "（音标+拆解记忆）\n\n")
		for _, cw := range q.CoreWords {
			b.WriteString("• " + cw.Word)
			if cw.Phonetic != "" {
				b.WriteString(" " + cw.Phonetic)
			}
			b.WriteString("：" + cw.Explanation + "\n")
		}
	}

	return b.String()
}

// FormatAll renders questions one after another, separated by a blank line.
func FormatAll(questions []domain.Question) string {
	parts := make([]string, len(questions))
	for i, q := range questions {
		parts[i] = Format(q)
	}
	return strings.Join(parts, "\n")
}

func headerOf(q domain.Question) string {
	if id, _, ok := parseHeader(q.Number); ok && id == q.ID {
		return q.Number
	}
	return fmt.Sprintf("第%d题", q.ID)
}
