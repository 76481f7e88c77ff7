// Package questionparser turns the line-oriented question grammar produced by
// the exam-extraction prompt into domain.Question records.
package questionparser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/willyuhot/ehexam/internal/domain"
)

// Section markers of the question grammar.
const (
	markerText        = "原题："
	markerOptions     = "选项："
	markerAnswer      = "你的答案："
	markerCheck       = "核对结果"
	markerTranslation = "译文："
	markerKeyPoint    = "【考点·高效记忆】"
	markerAnalysis    = "【解析·秒选思路】"
	markerCoreWords   = "核心词"
)

// headerRe reads decimal question numbers. looseHeaderRe only recognizes
// other headers, like "第十题".
var (
	headerRe      = regexp.MustCompile(`^第\s*(\d+)\s*题\s*(?:$|[\s:：(（【\[、.,，\-])`)
	looseHeaderRe = regexp.MustCompile(`^第\s*[^\s:：题]{1,12}\s*题\s*(?:$|[\s:：(（【\[、.,，\-])`)
	optionRe      = regexp.MustCompile(`^([A-D])[)）]\s*(.*)$`)
	coreWordRe    = regexp.MustCompile(`^(\S+(?:\s+\S+)*?)\s+(/[^/]+/)`)
)

// state is the section the parser is currently reading.
type state int

const (
	stateIdle state = iota
	stateText
	stateOptions
	stateTranslation
	stateKeyPoint
	stateAnalysis
	stateCoreWords
)

func (s state) String() string {
	switch s {
	case stateIdle:
		return "idle"
	case stateText:
		return "reading_text"
	case stateOptions:
		return "reading_options"
	case stateTranslation:
		return "reading_translation"
	case stateKeyPoint:
		return "reading_key_point"
	case stateAnalysis:
		return "reading_analysis"
	case stateCoreWords:
		return "reading_core_words"
	default:
		return "unknown"
	}
}

// Rejection describes a question block that was dropped at close time.
type Rejection struct {
	ID     int    `json:"id"`
	Number string `json:"questionNumber"`
	Reason string `json:"reason"`
}

// Report is the result of parsing a text: accepted questions in source order
// plus the blocks that could not be closed.
type Report struct {
	Questions []domain.Question `json:"questions"`
	Rejected  []Rejection       `json:"rejected"`
}

// machine is the parser state threaded through the fold over lines.
// At most one draft is open; open is false before the first header.
type machine struct {
	state state
	open  bool
	draft domain.Question
}

// outcome is what closing a draft produced: either a question or a rejection.
type outcome struct {
	question  *domain.Question
	rejection *Rejection
}

// Parse extracts all complete questions from text. Incomplete blocks are
// dropped silently; use ParseReport to see them.
func Parse(text string) []domain.Question {
	return ParseReport(text).Questions
}

// ParseReport runs the line state machine over text. Question ids are taken
// from the headers as-is and are not deduplicated.
func ParseReport(text string) Report {
	var (
		report Report
		m      machine
		out    *outcome
	)

	for _, raw := range strings.Split(text, "\n") {
		m, out = m.step(strings.TrimSpace(strings.TrimSuffix(raw, "\r")))
		report.add(out)
	}
	report.add(m.close())

	return report
}

func (r *Report) add(out *outcome) {
	switch {
	case out == nil:
	case out.question != nil:
		r.Questions = append(r.Questions, *out.question)
	case out.rejection != nil:
		r.Rejected = append(r.Rejected, *out.rejection)
	}
}

// step consumes one trimmed line. A non-nil outcome is returned only when a
// new header closes the previous draft.
func (m machine) step(line string) (machine, *outcome) {
	if id, number, ok := parseHeader(line); ok {
		out := m.close()
		return machine{
			state: stateIdle,
			open:  true,
			draft: domain.Question{ID: id, Number: number, Options: map[string]string{}},
		}, out
	}

	if !m.open {
		return m, nil
	}

	switch {
	case strings.HasPrefix(line, markerText):
		m.draft.Text = strings.TrimSpace(strings.TrimPrefix(line, markerText))
		m.state = stateText
		return m, nil

	case line == markerOptions || line == "选项:":
		m.state = stateOptions
		return m, nil

	case strings.HasPrefix(line, markerAnswer):
		m.draft.CorrectAnswer = strings.TrimSpace(strings.TrimPrefix(line, markerAnswer))
		m.state = stateIdle
		return m, nil

	case strings.HasPrefix(line, markerCheck):
		m.state = stateIdle
		return m, nil

	case strings.HasPrefix(line, markerTranslation):
		m.draft.Translation = strings.TrimSpace(strings.TrimPrefix(line, markerTranslation))
		m.state = stateTranslation
		return m, nil

	case strings.HasPrefix(line, markerKeyPoint):
		m.draft.KeyPoint = appendLine(m.draft.KeyPoint, strings.TrimPrefix(line, markerKeyPoint))
		m.state = stateKeyPoint
		return m, nil

	case strings.HasPrefix(line, markerAnalysis):
		m.draft.Analysis = appendLine(m.draft.Analysis, strings.TrimPrefix(line, markerAnalysis))
		m.state = stateAnalysis
		return m, nil

	case strings.HasPrefix(line, markerCoreWords):
		m.state = stateCoreWords
		return m, nil
	}

	switch m.state {
	case stateText:
		// Some replies skip the "选项：" line and go straight to "A)".
		if match := optionRe.FindStringSubmatch(line); match != nil {
			m.draft.Options[match[1]] = strings.TrimSpace(match[2])
			m.state = stateOptions
			break
		}
		m.draft.Text = appendLine(m.draft.Text, line)
	case stateOptions:
		if match := optionRe.FindStringSubmatch(line); match != nil {
			m.draft.Options[match[1]] = strings.TrimSpace(match[2])
		}
	case stateTranslation:
		m.draft.Translation = appendLine(m.draft.Translation, line)
	case stateKeyPoint:
		m.draft.KeyPoint = appendLine(m.draft.KeyPoint, line)
	case stateAnalysis:
		m.draft.Analysis = appendLine(m.draft.Analysis, line)
	case stateCoreWords:
		if cw, ok := parseCoreWord(line); ok {
			m.draft.CoreWords = append(m.draft.CoreWords, cw)
		}
	}

	return m, nil
}

// close finalizes the open draft. It returns nil when nothing is open.
func (m machine) close() *outcome {
	if !m.open {
		return nil
	}

	if reason := closeReason(m.draft); reason != "" {
		return &outcome{rejection: &Rejection{
			ID:     m.draft.ID,
			Number: m.draft.Number,
			Reason: reason,
		}}
	}

	q := m.draft
	return &outcome{question: &q}
}

func closeReason(q domain.Question) string {
	switch {
	case q.ID <= 0:
		return "unrecognized question number"
	case q.Text == "":
		return "missing question text"
	case len(q.Options) != len(domain.OptionLabels):
		return fmt.Sprintf("want %d options, got %d", len(domain.OptionLabels), len(q.Options))
	case q.CorrectAnswer == "":
		return "missing answer"
	}
	return ""
}

// parseHeader reports whether line starts a question block. A header whose
// number cannot be read still starts a block, with id 0, so the block is
// rejected instead of being merged into the previous question.
func parseHeader(line string) (int, string, bool) {
	line = strings.Trim(line, "#* ")
	if match := headerRe.FindStringSubmatch(line); match != nil {
		id, err := strconv.Atoi(match[1])
		if err != nil {
			return 0, line, true
		}
		return id, line, true
	}
	if looseHeaderRe.MatchString(line) {
		return 0, line, true
	}
	return 0, "", false
}

// parseCoreWord reads a bullet line of the form "• word /phonetic/：explanation".
func parseCoreWord(line string) (domain.CoreWord, bool) {
	body, ok := trimBullet(line)
	if !ok {
		return domain.CoreWord{}, false
	}

	head, explanation, found := strings.Cut(body, "：")
	if !found {
		head, explanation, found = strings.Cut(body, ":")
		if !found {
			return domain.CoreWord{}, false
		}
	}
	head = strings.TrimSpace(head)
	explanation = strings.TrimSpace(explanation)

	if match := coreWordRe.FindStringSubmatch(head); match != nil {
		return domain.CoreWord{Word: match[1], Phonetic: match[2], Explanation: explanation}, true
	}

	fields := strings.Fields(head)
	if len(fields) == 0 {
		return domain.CoreWord{}, false
	}
	return domain.CoreWord{Word: fields[0], Explanation: explanation}, true
}

func trimBullet(line string) (string, bool) {
	for _, bullet := range []string{"•", "·", "●", "-", "*"} {
		if strings.HasPrefix(line, bullet) {
			return strings.TrimSpace(strings.TrimPrefix(line, bullet)), true
		}
	}
	return "", false
}

func appendLine(acc, line string) string {
	line = strings.TrimSpace(line)
	switch {
	case line == "":
		return acc
	case acc == "":
		return line
	default:
		return acc + "\n" + line
	}
}
