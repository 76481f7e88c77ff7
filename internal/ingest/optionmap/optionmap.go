// Package optionmap relabels the options of a question for display and maps
// answers between the displayed and the stored labels.
package optionmap

import (
	"math/rand"

	"github.com/willyuhot/ehexam/internal/domain"
)

// Shuffle returns a uniformly random relabeling of A..D. The option that was
// stored under label k is displayed under OriginalToNew[k]. A nil rng uses the
// package-level source. options is not modified.
func Shuffle(options map[string]string, rng *rand.Rand) domain.OptionMapping {
	var perm []int
	if rng != nil {
		perm = rng.Perm(len(domain.OptionLabels))
	} else {
		perm = rand.Perm(len(domain.OptionLabels))
	}

	keys := make([]string, len(domain.OptionLabels))
	for i, p := range perm {
		keys[i] = domain.OptionLabels[p]
	}
	return build(options, keys)
}

// Identity returns the mapping that keeps every option under its own label.
func Identity(options map[string]string) domain.OptionMapping {
	keys := make([]string, len(domain.OptionLabels))
	copy(keys, domain.OptionLabels)
	return build(options, keys)
}

// For picks Shuffle or Identity for q.
func For(q domain.Question, shuffle bool, rng *rand.Rand) domain.OptionMapping {
	if shuffle {
		return Shuffle(q.Options, rng)
	}
	return Identity(q.Options)
}

// build pairs the i-th original label with keys[i].
func build(options map[string]string, keys []string) domain.OptionMapping {
	m := domain.OptionMapping{
		OriginalToNew:   make(map[string]string, len(keys)),
		NewToOriginal:   make(map[string]string, len(keys)),
		ShuffledOptions: make(map[string]string, len(keys)),
		ShuffledKeys:    keys,
	}
	for i, original := range domain.OptionLabels {
		newKey := keys[i]
		m.OriginalToNew[original] = newKey
		m.NewToOriginal[newKey] = original
		if text, ok := options[original]; ok {
			m.ShuffledOptions[newKey] = text
		}
	}
	return m
}

// ToOriginal translates a displayed label back to the stored label.
func ToOriginal(m domain.OptionMapping, displayed string) (string, bool) {
	original, ok := m.NewToOriginal[displayed]
	return original, ok
}

// ToDisplayed translates a stored label to the label it is displayed under.
func ToDisplayed(m domain.OptionMapping, original string) (string, bool) {
	displayed, ok := m.OriginalToNew[original]
	return displayed, ok
}

// Valid reports whether m is a pair of inverse bijections over A..D.
func Valid(m domain.OptionMapping) bool {
	if len(m.OriginalToNew) != len(domain.OptionLabels) || len(m.NewToOriginal) != len(domain.OptionLabels) {
		return false
	}
	for _, k := range domain.OptionLabels {
		n, ok := m.OriginalToNew[k]
		if !ok || !domain.IsOptionLabel(n) || m.NewToOriginal[n] != k {
			return false
		}
	}
	return true
}
