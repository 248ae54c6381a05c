package grammar

// DefaultRules returns the full rule catalogue in execution order. Sentence
// structure is repaired before verb forms, and sentence punctuation runs last.
func DefaultRules() []Rule {
	var rules []Rule
	for _, group := range [][]Rule{
		spacingRules(),
		spellingRules(),
		apostropheRules(),
		ellipsisRules(),
		reportedSpeechRules(),
		fragmentRules(),
		runOnRules(),
		irregularVerbRules(),
		modalRules(),
		tenseRules(),
		agreementRules(),
		purposeRules(),
		conjunctionRules(),
		passiveRules(),
		gerundRules(),
		phrasalRules(),
		comparativeRules(),
		quantifierRules(),
		parallelRules(),
		punctuationRules(),
	} {
		rules = append(rules, group...)
	}
	return rules
}

// Categories lists every rule category in execution order.
func Categories() []Category {
	var out []Category
	seen := map[Category]bool{}
	for _, r := range DefaultRules() {
		if !seen[r.Category] {
			seen[r.Category] = true
			out = append(out, r.Category)
		}
	}
	return out
}
