package app

import "strings"

// defaultStopwords covers the function words of the input domain's
// Chinese plus the English fillers that show up in mixed-language
// reviews. Latin entries are lowercase; lookups lowercase the term
// first. A lexicon file replaces the whole set, it does not merge.
var defaultStopwords = map[string]struct{}{
	// Chinese function words and review fillers
	"的": {}, "了": {}, "是": {}, "我": {}, "在": {}, "和": {},
	"也": {}, "都": {}, "就": {}, "用": {}, "有": {}, "很": {},
	"买": {}, "一个": {}, "这款": {}, "这个": {}, "使用": {},
	"感觉": {}, "可以": {}, "非常": {}, "就是": {}, "不过": {},
	"自己": {}, "那里": {}, "什么": {}, "所以": {}, "会": {},
	"它": {}, "它家": {}, "它能": {},
	// English function words
	"the": {}, "and": {}, "to": {}, "a": {}, "of": {},
	"it": {}, "is": {}, "in": {}, "for": {},
}

// stopwordSet builds a lookup set from a configured list, or returns
// the default set when the list is empty. Entries are lowercased to
// match the lowercased lookups.
func stopwordSet(words []string) map[string]struct{} {
	if len(words) == 0 {
		return defaultStopwords
	}
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[strings.ToLower(w)] = struct{}{}
	}
	return set
}
