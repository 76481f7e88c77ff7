// Package prompt renders the instructions sent to the language model. The
// exam-extraction prompt describes exactly the grammar that questionparser
// reads, and the vocabulary prompt the JSON shape that vocabmerge decodes.
package prompt

import (
	"fmt"
	"strings"

	"github.com/willyuhot/ehexam/internal/domain"
	"github.com/willyuhot/ehexam/internal/ingest/questionparser"
	"github.com/willyuhot/ehexam/internal/provider"
)

// Prompt is one model request: system and user text plus sampling limits.
type Prompt struct {
	System      string
	User        string
	MaxTokens   int
	Temperature float64
}

// Request converts p into a model request.
func (p Prompt) Request() provider.CompletionRequest {
	return provider.CompletionRequest{
		System:      p.System,
		User:        p.User,
		MaxTokens:   p.MaxTokens,
		Temperature: p.Temperature,
	}
}

const enrichmentSystem = `你是英语考试解题专家。请针对题目给出「一看就会选」的解析，包含：
1. 题目翻译、选项翻译
2. 核心词：词根词缀拆解（如 pre- + dict → 预测）、视觉化/联想记忆
3. 场景题/词汇题解题心法：
   - 第一步：看搭配（如 depend __ → on）
   - 第二步：析语境，辨近义（如 glance vs stare）
   - 第三步：挖逻辑（转折、并列、解释）
4. 若是完形填空：逐句说明为何选该项、线索在哪
5. 若是阅读理解：抓信息要点，不逐句翻译
输出简洁、条理清晰，便于学生秒选正确答案。`

// Enrichment asks for translation and explanation of a single question,
// passing along whatever the question already carries.
func Enrichment(q domain.Question) Prompt {
	var b strings.Builder

	b.WriteString("题目：" + q.Text + "\n\n选项：\n")
	for _, label := range domain.OptionLabels {
		if opt, ok := q.Options[label]; ok {
			fmt.Fprintf(&b, "%s) %s\n", label, opt)
		}
	}
	b.WriteString("\n正确答案：" + q.CorrectAnswer + "\n")
	if q.Translation != "" {
		b.WriteString("已有译文：" + q.Translation + "\n")
	}
	if q.KeyPoint != "" {
		b.WriteString("已有考点：" + q.KeyPoint + "\n")
	}
	if q.Analysis != "" {
		b.WriteString("已有解析：" + q.Analysis + "\n")
	}
	b.WriteString("\n请按系统提示格式，补充/优化上述内容的智能解析（题目翻译、选项翻译、词根词缀、解题心法、完形/阅读技巧）。")

	return Prompt{
		System:      enrichmentSystem,
		User:        b.String(),
		MaxTokens:   4000,
		Temperature: 0.3,
	}
}

const examSystem = "你是一位具有20年教学经验英语专业老师并且精通英语四级笔试考点和学位英语考点和押题。" +
	"请根据试卷文档内容，指导一位初中水平的学生，对这个文档中除作文外的内容进行拆解高效记忆。" +
	"并且每道题和结尾的答案进行匹配，输出纯文本格式。"

// exampleQuestion is rendered with questionparser.Format so the example in
// the prompt is always something the parser accepts.
var exampleQuestion = domain.Question{
	ID:            1,
	Number:        "第1题",
	Text:          "She has been waiting ___ two hours.",
	Options:       map[string]string{"A": "for", "B": "since", "C": "in", "D": "at"},
	CorrectAnswer: "A",
	Translation:   "她已经等了两个小时。",
	KeyPoint:      "考时间介词：for + 时间段，since + 时间点。口诀：段用for，点用since",
	Analysis:      "看到 two hours（时间段）→ 用 for → 选A",
	CoreWords: []domain.CoreWord{
		{Word: "wait", Phonetic: "/weɪt/", Explanation: "等待；wait for sb 等某人"},
	},
}

// ExamExtraction asks the model to rewrite a chunk of exam text as question
// blocks in the grammar questionparser.Parse reads.
func ExamExtraction(chunk string) Prompt {
	var b strings.Builder

	b.WriteString("请根据以下试卷内容，解析出所有题目（除作文外），并严格按照以下格式逐题输出纯文本（不要使用 Markdown）：\n\n")
	b.WriteString("## 格式要求：\n\n")
	b.WriteString("• 每题以「第N题」单独一行开头（N 为原卷题号）\n")
	b.WriteString("• 原题：题干（一行）\n")
	b.WriteString("• 选项：单独一行，随后每个选项一行，共四个，格式为 A)xxx B)xxx C)xxx D)xxx\n")
	b.WriteString("• 你的答案：正确选项字母（只写 A/B/C/D 中的一个）\n")
	b.WriteString("• 核对结果：正确\n")
	b.WriteString("• 译文：题干的中文翻译\n")
	b.WriteString("• 【考点·高效记忆】单独一行，下一行起写：一句话考什么 + 口诀/秒选法\n")
	b.WriteString("• 【解析·秒选思路】单独一行，下一行起写：看到什么词→用什么规则→选哪个\n")
	b.WriteString("• 核心词（音标+拆解记忆）单独一行，随后每个词一行：• 单词 /音标/：词根拆解与记忆\n\n")
	b.WriteString("## 示例：\n\n")
	b.WriteString(questionparser.Format(exampleQuestion))
	b.WriteString("\n试卷内容：\n")
	b.WriteString(chunk)
	b.WriteString("\n\n请确保：\n")
	b.WriteString("1. 每道题都有完整的格式\n")
	b.WriteString("2. 答案与题目匹配\n")
	b.WriteString("3. 译文准确\n")
	b.WriteString("4. 考点和解析清晰\n")
	b.WriteString("5. 核心词包含音标和记忆方法\n")

	return Prompt{
		System:      examSystem,
		User:        b.String(),
		MaxTokens:   8000,
		Temperature: 0.3,
	}
}

const vocabularySystem = `你是英语词汇专家，熟悉初中（约1600词）与高中、四级词汇范围。
请分析试卷文本，找出所有「超出初中词汇范围」的单词。
超纲词的界定：不在初中约1600词范围内的单词都算（高中、四级及以上词汇均计入）；初中范围内的基础词、人名、地名、数字和缩写不算。
对每个超纲词，输出如下 JSON 数组格式，不要输出任何其他文字：
[{"word":"单词","phonetic":"/音标/","meaningWithRoot":"释义（词根：xxx）","originalSentence":"试卷中出现的原文句子","translation":"原文的中文译文","memoryTips":"记忆要点"}]
要求：word 必填；phonetic 可空；meaningWithRoot 包含释义和词根信息；originalSentence 必须是试卷原文；translation 对原文的翻译；memoryTips 简洁记忆法。
没有超纲词时输出 []。`

// Vocabulary asks for the above-junior-high words of a chunk as a JSON array.
func Vocabulary(chunk string) Prompt {
	return Prompt{
		System:      vocabularySystem,
		User:        "请分析以下试卷内容，提取所有超出初中词汇范围的单词，按上述 JSON 格式输出：\n\n" + chunk,
		MaxTokens:   8000,
		Temperature: 0.2,
	}
}

// WordAnalysis asks for a root/affix breakdown of one word, optionally in the
// sentence it was seen in.
func WordAnalysis(word, context string) Prompt {
	var b strings.Builder
	b.WriteString("请对单词「" + word + "」做智能解析：\n")
	if context = strings.TrimSpace(context); context != "" {
		b.WriteString("所在句子/语境：" + context + "\n")
	}
	b.WriteString("\n要求：\n")
	b.WriteString("1. 词根词缀拆解（像汉字偏旁部首，如 pre- + dict → 预测）\n")
	b.WriteString("2. 视觉化/联想记忆（谐音或画面，如 ambitious→俺必胜）\n")
	b.WriteString("3. 同根词拓展（如 dict → dictionary, contradict, dictate）")

	return Prompt{
		System:      "你是英语词汇与解题专家，擅长词根词缀和记忆法。",
		User:        b.String(),
		MaxTokens:   1500,
		Temperature: 0.3,
	}
}
