// Package patterns holds the static phrase tables that drive the rewrite stages.
// Every table is built once at package initialization and is never mutated.
package patterns

import (
	"regexp"
)

// Rule maps a case-insensitive whole-word or whole-phrase match onto an ordered
// list of candidate replacements.
type Rule struct {
	Phrase     string
	Candidates []string
	re         *regexp.Regexp
}

// Match reports whether the rule's phrase occurs anywhere in text.
func (r Rule) Match(text string) bool {
	return r.re.MatchString(text)
}

// ReplaceAll substitutes every occurrence of the phrase with replacement, taken literally.
func (r Rule) ReplaceAll(text, replacement string) string {
	return r.re.ReplaceAllLiteralString(text, replacement)
}

// Regexp returns the compiled match expression.
func (r Rule) Regexp() *regexp.Regexp {
	return r.re
}

func newRule(phrase string, candidates ...string) Rule {
	return Rule{
		Phrase:     phrase,
		Candidates: candidates,
		re:         regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(phrase) + `\b`),
	}
}

// Table is an ordered, read-only list of rules.
type Table []Rule

// AICliches are transition phrases typical of generated prose.
var AICliches = Table{
	newRule("In conclusion", "To wrap up", "All in all", "When it comes down to it", "At the end of the day"),
	newRule("It is important to note that", "Keep in mind", "Remember", "What you should know is", "The thing is"),
	newRule("Furthermore", "What's more", "On top of that", "Plus", "And another thing"),
	newRule("Moreover", "Besides that", "Also", "Not only that", "And let's not forget"),
	newRule("However", "But", "That said", "Then again", "On the other hand"),
	newRule("Nevertheless", "Still", "Even so", "All the same", "Despite that"),
	newRule("Thus", "So", "This means", "Because of this", "As a result"),
	newRule("Hence", "So", "Therefore", "That's why", "This leads to"),
	newRule("Additionally", "Also", "Plus", "Another thing", "What's more"),
	newRule("Consequently", "So", "Because of this", "This means", "As you might expect"),
	newRule("Accordingly", "So", "Because of this", "This is why", "Given that"),
}

// CorporateJargon are buzzwords swapped for plain alternatives.
var CorporateJargon = Table{
	newRule("leverage", "use", "make the most of", "work with", "take advantage of"),
	newRule("synergy", "teamwork", "working together", "collaboration", "combined effort"),
	newRule("paradigm", "approach", "model", "way of thinking", "method"),
	newRule("utilize", "use", "work with", "make use of", "put to work"),
	newRule("optimal", "best", "ideal", "most effective", "right"),
	newRule("facilitate", "help", "make easier", "assist with", "enable"),
}

// Contractions map expanded forms onto their contracted form.
var Contractions = Table{
	newRule("do not", "don't"),
	newRule("does not", "doesn't"),
	newRule("did not", "didn't"),
	newRule("cannot", "can't"),
	newRule("will not", "won't"),
	newRule("should not", "shouldn't"),
	newRule("would not", "wouldn't"),
	newRule("could not", "couldn't"),
	newRule("it is", "it's"),
	newRule("that is", "that's"),
	newRule("they are", "they're"),
	newRule("we are", "we're"),
	newRule("you are", "you're"),
	newRule("I am", "I'm"),
	newRule("he is", "he's"),
	newRule("she is", "she's"),
	newRule("there is", "there's"),
	newRule("what is", "what's"),
	newRule("where is", "where's"),
	newRule("how is", "how's"),
	newRule("when is", "when's"),
	newRule("why is", "why's"),
	newRule("who is", "who's"),
	newRule("I have", "I've"),
	newRule("they have", "they've"),
	newRule("we have", "we've"),
	newRule("you have", "you've"),
}

// FormalToCasual are word swaps applied only to casual documents.
var FormalToCasual = Table{
	newRule("approximately", "about"),
	newRule("utilize", "use"),
	newRule("assistance", "help"),
	newRule("commence", "start"),
	newRule("terminate", "end"),
	newRule("purchase", "buy"),
	newRule("individual", "person"),
	newRule("vehicle", "car"),
}

// Lexicon groups the filler material inserted by the speech-pattern stages.
type Lexicon struct {
	SentenceStarters []string
	CasualConnectors []string
	EmphasisWords    []string
	HedgingWords     []string
}

// HumanSpeech is the filler lexicon shared by every pipeline.
var HumanSpeech = Lexicon{
	SentenceStarters: []string{
		"You know,", "I mean,", "Well,", "So,", "Actually,", "Basically,",
		"Honestly,", "Seriously,", "To be honest,", "The way I see it,",
		"From what I understand,", "If you ask me,", "In my experience,",
	},
	CasualConnectors: []string{
		"kind of", "sort of", "a bit", "pretty much", "more or less",
		"you know what I mean", "and all that", "and everything",
		"or something", "and stuff like that",
	},
	EmphasisWords: []string{
		"really", "actually", "literally", "basically", "obviously",
		"clearly", "definitely", "absolutely", "completely",
	},
	HedgingWords: []string{
		"like", "I guess", "I suppose", "maybe", "perhaps",
		"probably", "apparently", "seemingly",
	},
}

// Perspectives are the personal framing phrases; a segment already containing
// one of them is never given another.
var Perspectives = []string{"I think", "In my experience", "From what I've seen", "It seems to me"}

// DoubledWords are accidental repeats collapsed to their single word. Matching is case-sensitive.
var DoubledWords = []struct {
	Pattern *regexp.Regexp
	Word    string
}{
	{regexp.MustCompile(`\bthe the\b`), "the"},
	{regexp.MustCompile(`\band and\b`), "and"},
	{regexp.MustCompile(`\bto to\b`), "to"},
}
