package prose

import "math"

// stopWords are function words excluded from keyword statistics.
// Contraction suffixes are included because the tokenizer splits them off.
var stopWords = map[string]struct{}{
	"a": {}, "about": {}, "above": {}, "after": {}, "again": {}, "against": {},
	"all": {}, "almost": {}, "also": {}, "although": {}, "always": {}, "am": {},
	"among": {}, "an": {}, "and": {}, "another": {}, "any": {}, "anyone": {},
	"anything": {}, "are": {}, "around": {}, "as": {}, "at": {},

	"be": {}, "became": {}, "because": {}, "become": {}, "been": {}, "before": {},
	"being": {}, "below": {}, "between": {}, "both": {}, "but": {}, "by": {},

	"can": {}, "cannot": {}, "could": {},

	"did": {}, "do": {}, "does": {}, "doing": {}, "done": {}, "down": {},
	"during": {},

	"each": {}, "either": {}, "else": {}, "enough": {}, "etc": {}, "even": {},
	"ever": {}, "every": {},

	"few": {}, "for": {}, "from": {}, "further": {},

	"had": {}, "has": {}, "have": {}, "having": {}, "he": {}, "her": {},
	"here": {}, "hers": {}, "herself": {}, "him": {}, "himself": {}, "his": {},
	"how": {}, "however": {},

	"i": {}, "if": {}, "in": {}, "into": {}, "is": {}, "it": {}, "its": {},
	"itself": {},

	"just": {},

	"least": {}, "less": {},

	"many": {}, "may": {}, "me": {}, "might": {}, "more": {}, "most": {},
	"much": {}, "must": {}, "my": {}, "myself": {},

	"neither": {}, "no": {}, "nor": {}, "not": {}, "now": {},

	"of": {}, "off": {}, "often": {}, "on": {}, "once": {}, "only": {}, "or": {},
	"other": {}, "others": {}, "otherwise": {}, "our": {}, "ours": {},
	"ourselves": {}, "out": {}, "over": {}, "own": {},

	"per": {}, "perhaps": {},

	"quite": {},

	"rather": {},

	"same": {}, "several": {}, "she": {}, "should": {}, "since": {}, "so": {},
	"some": {}, "still": {}, "such": {},

	"than": {}, "that": {}, "the": {}, "their": {}, "theirs": {}, "them": {},
	"themselves": {}, "then": {}, "there": {}, "therefore": {}, "these": {},
	"they": {}, "this": {}, "those": {}, "though": {}, "through": {}, "thus": {},
	"to": {}, "too": {},

	"under": {}, "until": {}, "up": {}, "upon": {}, "us": {},

	"very": {}, "via": {},

	"was": {}, "we": {}, "well": {}, "were": {}, "what": {}, "whatever": {},
	"when": {}, "where": {}, "whether": {}, "which": {}, "while": {}, "who": {},
	"whom": {}, "whose": {}, "why": {}, "will": {}, "with": {}, "within": {},
	"without": {}, "would": {},

	"yet": {}, "you": {}, "your": {}, "yours": {}, "yourself": {},
	"yourselves": {},

	"'s": {}, "'re": {}, "'ll": {}, "'ve": {}, "'d": {}, "'m": {}, "n't": {},
}

// IsStopWord reports whether the normalized word is a stop word.
func IsStopWord(word string) bool {
	_, ok := stopWords[word]
	return ok
}

// valence holds word polarity on a -3..3 scale.
var valence = map[string]float64{
	"amazing": 3, "awesome": 3, "excellent": 3, "outstanding": 3, "perfect": 3,
	"superb": 3, "wonderful": 3, "brilliant": 3, "fantastic": 3, "love": 3,

	"best": 2, "beautiful": 2, "delightful": 2, "enjoy": 2, "exciting": 2,
	"fast": 1, "favorite": 2, "fresh": 1, "glad": 2, "good": 2, "great": 2,
	"happy": 2, "healthy": 2, "helpful": 2, "impressive": 2, "like": 1,
	"nice": 2, "pleasant": 2, "positive": 2, "powerful": 2, "recommend": 2,
	"reliable": 2, "safe": 1, "simple": 1, "easy": 1, "strong": 1,
	"success": 2, "successful": 2, "thank": 2, "thanks": 2, "useful": 2,
	"valuable": 2, "win": 2, "better": 1, "clear": 1, "clean": 1,
	"improve": 1, "improved": 1, "benefit": 1, "benefits": 1, "secure": 1,

	"awful": -3, "horrible": -3, "terrible": -3, "worst": -3, "hate": -3,
	"disaster": -3, "disgusting": -3,

	"angry": -2, "annoying": -2, "bad": -2, "broken": -2, "dangerous": -2,
	"difficult": -1, "disappointing": -2, "fail": -2, "failed": -2,
	"failure": -2, "fear": -2, "hard": -1, "harmful": -2, "poor": -2,
	"problem": -1, "problems": -1, "risk": -1, "sad": -2, "slow": -1,
	"ugly": -2, "unfortunately": -2, "useless": -2, "weak": -1, "worse": -2,
	"wrong": -2, "error": -1, "errors": -1, "bug": -1, "bugs": -1,
	"confusing": -2, "expensive": -1, "pain": -2, "painful": -2,
}

// negators flip the polarity of the next lexicon word.
var negators = map[string]struct{}{
	"not": {}, "no": {}, "never": {}, "n't": {}, "without": {}, "hardly": {},
	"don't": {}, "doesn't": {}, "didn't": {}, "isn't": {}, "aren't": {},
	"wasn't": {}, "weren't": {}, "can't": {}, "won't": {},
}

// normalizationAlpha bounds the summed valence into (-1, 1).
const normalizationAlpha = 15

// Sentiment scores normalized words on [-1, 1]. A negator flips the next
// polar word; text without polar words scores 0.
func Sentiment(words []string) float64 {
	var sum float64
	negate := false
	for _, w := range words {
		if _, ok := negators[w]; ok {
			negate = true
			continue
		}
		v, ok := valence[w]
		if !ok {
			continue
		}
		if negate {
			v = -v
			negate = false
		}
		sum += v
	}
	if sum == 0 {
		return 0
	}
	return sum / math.Sqrt(sum*sum+normalizationAlpha)
}
