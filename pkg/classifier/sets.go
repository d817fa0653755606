package classifier

// Hand-curated word sets backing the static heuristic layers. All entries
// lowercase. These are precision lists: when in doubt a word stays out, the
// later layers or the scorer can still penalize it.

var properNounSet = map[string]struct{}{
	"america": {}, "europe": {}, "africa": {}, "asia": {},
	"london": {}, "paris": {}, "texas": {}, "china": {}, "india": {},
	"kenya": {}, "tokyo": {}, "egypt": {}, "spain": {}, "japan": {},
	"atlanta": {}, "boston": {}, "chicago": {}, "dallas": {},
	"denver": {}, "miami": {}, "seattle": {}, "austin": {},
	"monday": {}, "tuesday": {}, "friday": {}, "sunday": {},
	"january": {}, "august": {}, "october": {},
}

// Place-name suffixes; only consulted for words longer than six letters.
var placeNameSuffixes = []string{"burg", "ville", "shire", "stan", "land", "ton"}

// Common words that coincidentally share a place-name suffix.
var placeSuffixWhitelist = map[string]struct{}{
	"garland": {}, "woodland": {}, "headland": {}, "lowland": {},
	"highland": {}, "midland": {}, "mainland": {}, "heartland": {},
	"farmland": {}, "grassland": {}, "wasteland": {}, "homeland": {},
	"skeleton": {}, "singleton": {}, "automaton": {}, "crouton": {},
	"plankton": {}, "badminton": {}, "megaton": {}, "wonton": {},
	"homburg": {}, "vaudeville": {},
}

var foreignWordSet = map[string]struct{}{
	"gracias": {}, "bonjour": {}, "amigo": {}, "adios": {},
	"senor": {}, "senora": {}, "merci": {}, "danke": {},
	"ciao": {}, "hombre": {}, "salud": {},
}

// Doubled vowels essentially absent from native English vocabulary.
var uncommonDoubledVowels = []string{"aa", "ii", "uu"}

var abbreviationSet = map[string]struct{}{
	"govt": {}, "dept": {}, "corp": {}, "assn": {}, "natl": {},
	"intl": {}, "misc": {}, "approx": {}, "acct": {}, "appt": {},
	"asst": {}, "mgmt": {}, "blvd": {},
}

var abbreviationSuffixes = []string{"tech", "biz"}

// Compound words ending in an abbreviation-like suffix.
var abbreviationWhitelist = map[string]struct{}{
	"showbiz": {}, "biotech": {},
}

// Enzyme, chemical and medical suffixes.
var technicalSuffixes = []string{"ase", "osis", "itis", "ium"}

// Long Latin-derived endings.
var latinEndings = []string{"orum", "ibus", "idae", "ensis"}

// Everyday English words sharing a technical or Latin ending.
var technicalWhitelist = map[string]struct{}{
	"case": {}, "base": {}, "chase": {}, "phase": {}, "erase": {},
	"ease": {}, "cease": {}, "tease": {}, "crease": {}, "grease": {},
	"unease": {}, "lease": {}, "please": {}, "release": {}, "disease": {},
	"purchase": {}, "database": {}, "phrase": {}, "vase": {},
	"suitcase": {}, "staircase": {}, "increase": {}, "decrease": {},
	"diagnosis": {}, "hypnosis": {}, "arthritis": {},
	"premium": {}, "medium": {}, "stadium": {}, "podium": {},
	"tedium": {}, "aquarium": {}, "gymnasium": {}, "millennium": {},
	"auditorium": {}, "delirium": {},
}

var archaicSet = map[string]struct{}{
	"thee": {}, "thou": {}, "thine": {}, "hath": {}, "doth": {},
	"whilst": {}, "betwixt": {}, "forsooth": {}, "verily": {},
	"prithee": {}, "hither": {}, "thither": {},
}
