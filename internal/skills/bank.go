// Package skills detects canonical skills in tokenized resume text using
// exact and fuzzy matching against a controlled vocabulary.
package skills

import "sort"

// DefaultBank returns the built-in categorized skill bank. Category names are
// informational; matching runs against the flattened vocabulary.
func DefaultBank() map[string][]string {
	return map[string][]string{
		"programming": {
			"python", "java", "c++", "javascript", "typescript", "sql",
			"bash", "powershell",
		},
		"data": {
			"pandas", "numpy", "scikit-learn", "tensorflow", "pytorch",
			"matplotlib", "seaborn", "statistics", "eda", "ml", "nlp",
			"computer vision", "xgboost", "lightgbm",
		},
		"web": {
			"react", "node", "django", "flask", "fastapi", "laravel",
			"wordpress", "tailwind", "next.js",
		},
		"mobile": {
			"android", "kotlin", "flutter", "swift", "xcode",
		},
		"cloud": {
			"aws", "gcp", "azure", "docker", "kubernetes", "git", "linux",
			"ci/cd",
		},
		"uiux": {
			"figma", "adobe xd", "wireframing", "prototyping",
			"usability testing",
		},
	}
}

// Vocabulary is the sorted, deduplicated union of all skill bank categories.
// Built once at startup and shared read-only across concurrent analyses.
type Vocabulary []string

// NewVocabulary flattens a categorized skill bank into a canonical vocabulary.
func NewVocabulary(bank map[string][]string) Vocabulary {
	seen := make(map[string]struct{})
	for _, list := range bank {
		for _, s := range list {
			seen[s] = struct{}{}
		}
	}
	vocab := make(Vocabulary, 0, len(seen))
	for s := range seen {
		vocab = append(vocab, s)
	}
	sort.Strings(vocab)
	return vocab
}

// DefaultVocabulary returns the vocabulary derived from DefaultBank.
func DefaultVocabulary() Vocabulary {
	return NewVocabulary(DefaultBank())
}
