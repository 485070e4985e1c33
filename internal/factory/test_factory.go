package factory

import (
	"time"

	"github.com/mcoot/smartscrabble/internal/dependencies/mocks"
	"github.com/mcoot/smartscrabble/internal/services/dictionary"
	"github.com/mcoot/smartscrabble/internal/storage/memory"
	"github.com/mcoot/smartscrabble/internal/testutil"
)

// TestWords is a small lexicon that still lets agents play whole games
var TestWords = []string{
	// 2-letter words
	"aa", "ab", "ad", "ae", "ag", "ah", "ai", "al", "am", "an", "ar", "as", "at",
	"aw", "ax", "ay", "be", "bi", "bo", "by", "de", "do", "ed", "ef", "eh", "el",
	"em", "en", "er", "es", "ex", "fa", "go", "ha", "he", "hi", "ho", "id", "if",
	"in", "is", "it", "jo", "ka", "la", "li", "lo", "ma", "me", "mi", "mo", "mu",
	"my", "na", "ne", "no", "nu", "od", "oe", "of", "oh", "oi", "om", "on", "op",
	"or", "os", "ow", "ox", "oy", "pa", "pe", "pi", "qi", "re", "sh", "si", "so",
	"ta", "ti", "to", "uh", "um", "un", "up", "us", "ut", "we", "wo", "xi", "xu",
	"ya", "ye", "yo", "za",
	// 3-letter words
	"ace", "act", "ado", "age", "aid", "ail", "air", "ale", "ant", "ape", "arc",
	"are", "art", "ate", "awe", "axe", "bad", "bag", "bat", "bed", "bee", "bet",
	"bid", "bin", "bog", "box", "bud", "cab", "can", "cat", "cod", "cog", "cot",
	"cow", "cue", "dab", "den", "dew", "die", "dig", "dog", "doe", "due", "ear",
	"eat", "eel", "egg", "elf", "end", "era", "eve", "ewe", "fan", "fed", "fig",
	"fin", "fit", "fix", "fog", "fox", "fun", "gas", "gel", "gem", "gin", "gnu",
	"god", "gum", "hat", "hen", "hex", "hid", "hit", "hog", "hot", "hue", "ice",
	"ink", "ion", "ire", "jab", "jam", "jet", "jog", "jot", "joy", "keg", "kin",
	"kit", "lab", "lad", "lap", "led", "lid", "lie", "lit", "log", "lot", "mad",
	"map", "mat", "men", "mix", "mob", "mud", "nap", "net", "nod", "not", "nut",
	"oak", "oar", "oat", "odd", "ode", "oil", "one", "ore", "owl", "pad", "pan",
	"pat", "pen", "pet", "pie", "pin", "pit", "pod", "pot", "quo", "rag", "ran",
	"rat", "red", "rib", "rid", "rod", "rot", "rub", "rug", "sad", "sat", "sea",
	"set", "sin", "sit", "six", "ski", "sod", "son", "sun", "tab", "tag", "tan",
	"tar", "tea", "ten", "tie", "tin", "toe", "ton", "top", "tug", "urn", "use",
	"van", "vat", "vet", "via", "wax", "web", "wet", "wig", "win", "wit", "yak",
	"yam", "yes", "yet", "zap", "zed", "zen", "zip", "zoo",
	// 4-letter words
	"able", "aced", "acid", "aged", "aide", "airs", "ante", "arts", "bade", "bait",
	"bare", "bead", "beat", "bite", "boat", "bone", "cane", "care", "cart", "cats",
	"cede", "coat", "code", "cone", "core", "dare", "dart", "date", "dean", "dear",
	"dine", "dire", "dote", "earn", "ease", "east", "eats", "edit", "fare", "fate",
	"fine", "fire", "gate", "gear", "gone", "hare", "hate", "heat", "idea", "iron",
	"lane", "late", "lead", "lean", "line", "lion", "lone", "mane", "mare", "mate",
	"mead", "mean", "meat", "mine", "mite", "more", "name", "near", "neat", "nest",
	"note", "oars", "oats", "once", "open", "oral", "pane", "pare", "pate",
	"pear", "pine", "quiz", "race", "rain", "rant", "rate", "read", "rein", "rent",
	"rest", "ride", "riot", "road", "roam", "rode", "rose", "rote", "sane", "sate",
	"seat", "sent", "side", "site", "sore", "star", "tame", "tear", "tend", "tide",
	"tile", "time", "tine", "tire", "toad", "tone", "tore", "tree", "vane",
	"vote", "wade", "wane", "ward", "wear", "wine", "wire", "zone",
	// 5-letter and longer words
	"alert", "alter", "arise", "aside", "aster", "crate", "dealt", "diner", "drone",
	"earns", "enter", "irate", "later", "learn", "least", "notes", "ocean", "onset",
	"oriel", "rates", "ratio", "react", "resin", "risen", "saner", "setae", "siren",
	"snare", "stare", "steal", "stone", "tenor", "tears", "toner", "trace", "train",
	"aliens", "alters", "insert", "inters", "orates", "senior", "stoner", "tenors",
	"retains", "nastier", "stainer", "retinas", "oration", "entails",
}

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
// and TestWords loaded
func NewTestApp() *TestApp {
	return NewTestAppWithConfig(Config{})
}

// NewTestAppWithConfig creates a test App with custom rules or bot options
func NewTestAppWithConfig(cfg Config) *TestApp {
	logger := testutil.NopLogger()
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	dictService := dictionary.New(store, logger)
	if err := dictService.LoadWords(TestWords); err != nil {
		panic(err)
	}

	app, err := newWithDependencies(store, mockClock, mockRandom, dictService, cfg, logger)
	if err != nil {
		panic(err)
	}

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}
