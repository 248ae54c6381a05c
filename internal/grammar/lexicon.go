package grammar

import "strings"

// Form is a bit set of the inflections a surface word can stand for.
type Form uint8

const (
	FormBase Form = 1 << iota
	FormThird
	FormPast
	FormParticiple
	FormGerund
)

// Has reports whether f includes every bit of other.
func (f Form) Has(other Form) bool { return f&other == other }

// Verb holds the inflected forms of one English verb.
type Verb struct {
	Base       string
	Third      string
	Past       string
	Participle string
	Gerund     string

	// Noun marks bases that are routinely used as nouns ("work", "review").
	Noun bool
	// Adjective marks bases that double as adjectives ("complete", "clean").
	Adjective bool
}

type lexEntry struct {
	verb  *Verb
	forms Form
}

// irregularVerbs lists base, past and past participle.
var irregularVerbs = [][3]string{
	{"arise", "arose", "arisen"},
	{"awake", "awoke", "awoken"},
	{"beat", "beat", "beaten"},
	{"become", "became", "become"},
	{"begin", "began", "begun"},
	{"bend", "bent", "bent"},
	{"bite", "bit", "bitten"},
	{"blow", "blew", "blown"},
	{"break", "broke", "broken"},
	{"bring", "brought", "brought"},
	{"build", "built", "built"},
	{"buy", "bought", "bought"},
	{"catch", "caught", "caught"},
	{"choose", "chose", "chosen"},
	{"come", "came", "come"},
	{"cost", "cost", "cost"},
	{"cut", "cut", "cut"},
	{"deal", "dealt", "dealt"},
	{"dig", "dug", "dug"},
	{"do", "did", "done"},
	{"draw", "drew", "drawn"},
	{"drink", "drank", "drunk"},
	{"drive", "drove", "driven"},
	{"eat", "ate", "eaten"},
	{"fall", "fell", "fallen"},
	{"feed", "fed", "fed"},
	{"feel", "felt", "felt"},
	{"fight", "fought", "fought"},
	{"find", "found", "found"},
	{"fly", "flew", "flown"},
	{"forget", "forgot", "forgotten"},
	{"freeze", "froze", "frozen"},
	{"get", "got", "got"},
	{"give", "gave", "given"},
	{"go", "went", "gone"},
	{"grow", "grew", "grown"},
	{"hang", "hung", "hung"},
	{"have", "had", "had"},
	{"hear", "heard", "heard"},
	{"hide", "hid", "hidden"},
	{"hit", "hit", "hit"},
	{"hold", "held", "held"},
	{"hurt", "hurt", "hurt"},
	{"keep", "kept", "kept"},
	{"know", "knew", "known"},
	{"lay", "laid", "laid"},
	{"lead", "led", "led"},
	{"leave", "left", "left"},
	{"lend", "lent", "lent"},
	{"let", "let", "let"},
	{"lose", "lost", "lost"},
	{"make", "made", "made"},
	{"mean", "meant", "meant"},
	{"meet", "met", "met"},
	{"pay", "paid", "paid"},
	{"put", "put", "put"},
	{"quit", "quit", "quit"},
	{"read", "read", "read"},
	{"ride", "rode", "ridden"},
	{"ring", "rang", "rung"},
	{"rise", "rose", "risen"},
	{"run", "ran", "run"},
	{"say", "said", "said"},
	{"see", "saw", "seen"},
	{"seek", "sought", "sought"},
	{"sell", "sold", "sold"},
	{"send", "sent", "sent"},
	{"set", "set", "set"},
	{"shake", "shook", "shaken"},
	{"shoot", "shot", "shot"},
	{"show", "showed", "shown"},
	{"shut", "shut", "shut"},
	{"sing", "sang", "sung"},
	{"sink", "sank", "sunk"},
	{"sit", "sat", "sat"},
	{"sleep", "slept", "slept"},
	{"speak", "spoke", "spoken"},
	{"spend", "spent", "spent"},
	{"split", "split", "split"},
	{"spread", "spread", "spread"},
	{"stand", "stood", "stood"},
	{"steal", "stole", "stolen"},
	{"stick", "stuck", "stuck"},
	{"strike", "struck", "struck"},
	{"swim", "swam", "swum"},
	{"take", "took", "taken"},
	{"teach", "taught", "taught"},
	{"tear", "tore", "torn"},
	{"tell", "told", "told"},
	{"think", "thought", "thought"},
	{"throw", "threw", "thrown"},
	{"undertake", "undertook", "undertaken"},
	{"understand", "understood", "understood"},
	{"wake", "woke", "woken"},
	{"wear", "wore", "worn"},
	{"win", "won", "won"},
	{"withdraw", "withdrew", "withdrawn"},
	{"write", "wrote", "written"},
}

// regularVerbs is the working vocabulary of site-visit notes. Verbs whose
// participles are protected adjectives (tire, interest, worry, ...) are
// deliberately absent.
var regularVerbs = []string{
	"accept", "achieve", "add", "admit", "agree", "aim", "allocate", "allow",
	"answer", "appear", "apply", "approve", "arrange", "arrive", "ask",
	"assess", "assign", "attach", "attempt", "attend", "avoid", "call",
	"cancel", "carry", "change", "check", "clean", "clear", "close", "collect",
	"commence", "commit", "complete", "comprise", "conduct", "confirm", "connect",
	"consider", "construct", "contact", "continue", "coordinate", "cope",
	"correct", "cover", "crack", "create", "cure", "decide", "delay",
	"deliver", "demolish", "deny", "design", "discuss", "dispatch", "drop",
	"emphasize", "enjoy", "ensure", "erect", "examine", "excavate", "expect",
	"explain", "fail", "fill", "finalize", "finish", "fix", "follow", "help",
	"hire", "hope", "identify", "improve", "include", "inform", "inspect",
	"install", "instruct", "intend", "invite", "join", "lift", "like",
	"load", "look", "maintain", "manage", "mark", "measure", "mention",
	"miss", "monitor", "move", "need", "note", "notice", "observe", "obtain",
	"occur", "offer", "open", "order", "paint", "pass", "perform", "permit",
	"place", "plan", "plaster", "postpone", "pour", "practice", "prefer",
	"prepare", "present", "prevent", "proceed", "promise", "provide", "pull",
	"push", "rain", "raise", "reach", "receive", "recommend", "record",
	"rectify", "reduce", "refer", "refuse", "reject", "release", "remain",
	"remove", "repair", "repeat", "replace", "reply", "report", "request",
	"require", "resolve", "respond", "resume", "return", "review", "revert",
	"revise", "risk", "schedule", "seem", "share", "shift", "ship", "start",
	"stay", "step", "stop", "stress", "submit", "suggest", "supply", "support",
	"survey", "talk", "test", "train", "transfer", "travel", "try", "turn",
	"update", "use", "verify", "visit", "wait", "walk", "want", "watch",
	"weld", "wish", "work",
}

var nounVerbs = setOf(
	"answer", "attempt", "call", "change", "check", "cover", "crack", "cut",
	"delay", "design", "drink", "estimate", "fall", "fix", "help", "hit",
	"load", "look", "mark", "measure", "need", "note", "offer", "order",
	"paint", "pass", "place", "plan", "practice", "present", "promise",
	"pull", "push", "rain", "record", "release", "repair", "reply", "report",
	"request", "return", "review", "ring", "rise", "risk", "run", "schedule",
	"set", "share", "shift", "ship", "spread", "stay", "step", "stop",
	"supply", "support", "survey", "talk", "test", "train", "transfer",
	"travel", "turn", "update", "use", "visit", "wait", "walk", "watch",
	"work", "cost", "deal", "drive", "sleep", "stand", "win", "plaster",
	"weld", "lift", "fill", "start", "move", "contact", "attach", "stress",
	"permit", "dispatch",
)

var adjectiveVerbs = setOf(
	"clean", "clear", "close", "complete", "correct", "open", "separate",
)

// doublingVerbs double their final consonant before -ed and -ing.
var doublingVerbs = setOf(
	"admit", "begin", "chat", "commit", "cut", "dig", "drop", "forget", "get",
	"hit", "let", "occur", "permit", "plan", "plug", "prefer", "put", "quit",
	"refer", "run", "scrap", "set", "ship", "shut", "sit", "split", "step",
	"stop", "submit", "swim", "transfer", "win",
)

// realWords are regularized spellings of irregular verbs that are
// legitimate words in their own right and must not be "corrected".
var realWords = setOf("seed", "leaded", "hanged")

// verbs indexes every inflected form; overRegulated maps regularized
// spellings of irregular verbs ("goed") to the real past form.
var verbs, overRegulated = buildLexicon()

func buildLexicon() (map[string]lexEntry, map[string]string) {
	index := map[string]lexEntry{}
	wrong := map[string]string{}

	register := func(v *Verb) {
		add := func(word string, f Form) {
			e, ok := index[word]
			if ok && e.verb != v {
				return
			}
			index[word] = lexEntry{verb: v, forms: e.forms | f}
		}
		add(v.Base, FormBase)
		add(v.Third, FormThird)
		add(v.Past, FormPast)
		add(v.Participle, FormParticiple)
		add(v.Gerund, FormGerund)
	}

	for _, irr := range irregularVerbs {
		v := &Verb{
			Base:       irr[0],
			Third:      thirdPerson(irr[0]),
			Past:       irr[1],
			Participle: irr[2],
			Gerund:     gerund(irr[0]),
			Noun:       nounVerbs[irr[0]],
			Adjective:  adjectiveVerbs[irr[0]],
		}
		register(v)
		if w := regularPast(v.Base); w != v.Past && !realWords[w] {
			wrong[w] = v.Past
		}
	}
	for _, base := range regularVerbs {
		past := regularPast(base)
		register(&Verb{
			Base:       base,
			Third:      thirdPerson(base),
			Past:       past,
			Participle: past,
			Gerund:     gerund(base),
			Noun:       nounVerbs[base],
			Adjective:  adjectiveVerbs[base],
		})
	}
	return index, wrong
}

// LookupVerb returns the verb a word inflects and the forms it can stand for.
func LookupVerb(word string) (*Verb, Form, bool) {
	e, ok := verbs[strings.ToLower(word)]
	if !ok {
		return nil, 0, false
	}
	return e.verb, e.forms, true
}

// verbAs returns the verb behind word when word can stand for form f.
func verbAs(word string, f Form) (*Verb, bool) {
	v, forms, ok := LookupVerb(word)
	if !ok || forms&f == 0 {
		return nil, false
	}
	return v, true
}

func thirdPerson(base string) string {
	switch base {
	case "have":
		return "has"
	case "do", "go":
		return base + "es"
	}
	switch {
	case hasAnySuffix(base, "s", "x", "z", "ch", "sh", "o"):
		return base + "es"
	case endsConsonantY(base):
		return base[:len(base)-1] + "ies"
	}
	return base + "s"
}

func gerund(base string) string {
	switch {
	case strings.HasSuffix(base, "ie"):
		return base[:len(base)-2] + "ying"
	case hasAnySuffix(base, "ee", "ye", "oe"):
		return base + "ing"
	case strings.HasSuffix(base, "e") && len(base) > 2:
		return base[:len(base)-1] + "ing"
	case doublingVerbs[base]:
		return base + base[len(base)-1:] + "ing"
	}
	return base + "ing"
}

func regularPast(base string) string {
	switch {
	case strings.HasSuffix(base, "e"):
		return base + "d"
	case endsConsonantY(base):
		return base[:len(base)-1] + "ied"
	case doublingVerbs[base]:
		return base + base[len(base)-1:] + "ed"
	}
	return base + "ed"
}

func endsConsonantY(w string) bool {
	if len(w) < 2 || w[len(w)-1] != 'y' {
		return false
	}
	return !strings.ContainsRune("aeiou", rune(w[len(w)-2]))
}

func hasAnySuffix(w string, suffixes ...string) bool {
	for _, s := range suffixes {
		if strings.HasSuffix(w, s) {
			return true
		}
	}
	return false
}

func setOf(words ...string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}
