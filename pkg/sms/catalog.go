package sms

import "strings"

// cityCatalog is the fixed set of metro names the deterministic interpreter
// recognizes, each with its state. Cities outside the catalog still resolve
// through the planner plus geocoding; the catalog only makes the common ones
// free.
var cityCatalog = map[string]string{
	"atlanta":       "GA",
	"austin":        "TX",
	"baltimore":     "MD",
	"boston":        "MA",
	"charlotte":     "NC",
	"chicago":       "IL",
	"cincinnati":    "OH",
	"cleveland":     "OH",
	"columbus":      "OH",
	"dallas":        "TX",
	"denver":        "CO",
	"detroit":       "MI",
	"el paso":       "TX",
	"fort worth":    "TX",
	"houston":       "TX",
	"indianapolis":  "IN",
	"jacksonville":  "FL",
	"kansas city":   "MO",
	"las vegas":     "NV",
	"los angeles":   "CA",
	"louisville":    "KY",
	"memphis":       "TN",
	"miami":         "FL",
	"milwaukee":     "WI",
	"minneapolis":   "MN",
	"nashville":     "TN",
	"new orleans":   "LA",
	"new york":      "NY",
	"oakland":       "CA",
	"oklahoma city": "OK",
	"omaha":         "NE",
	"orlando":       "FL",
	"philadelphia":  "PA",
	"phoenix":       "AZ",
	"pittsburgh":    "PA",
	"portland":      "OR",
	"raleigh":       "NC",
	"reno":          "NV",
	"sacramento":    "CA",
	"salt lake city": "UT",
	"san antonio":   "TX",
	"san diego":     "CA",
	"san francisco": "CA",
	"san jose":      "CA",
	"savannah":      "GA",
	"seattle":       "WA",
	"st louis":      "MO",
	"tampa":         "FL",
	"tucson":        "AZ",
	"tulsa":         "OK",
}

// stateAbbrevs recognizes two-letter codes when they appear as their own
// token.
var stateAbbrevs = map[string]bool{
	"AL": true, "AK": true, "AZ": true, "AR": true, "CA": true, "CO": true,
	"CT": true, "DE": true, "FL": true, "GA": true, "HI": true, "ID": true,
	"IL": true, "IN": true, "IA": true, "KS": true, "KY": true, "LA": true,
	"ME": true, "MD": true, "MA": true, "MI": true, "MN": true, "MS": true,
	"MO": true, "MT": true, "NE": true, "NV": true, "NH": true, "NJ": true,
	"NM": true, "NY": true, "NC": true, "ND": true, "OH": true, "OK": true,
	"OR": true, "PA": true, "RI": true, "SC": true, "SD": true, "TN": true,
	"TX": true, "UT": true, "VT": true, "VA": true, "WA": true, "WV": true,
	"WI": true, "WY": true, "DC": true,
}

// stateNames maps spelled-out state names to their codes.
var stateNames = map[string]string{
	"alabama": "AL", "alaska": "AK", "arizona": "AZ", "arkansas": "AR",
	"california": "CA", "colorado": "CO", "connecticut": "CT", "delaware": "DE",
	"florida": "FL", "georgia": "GA", "hawaii": "HI", "idaho": "ID",
	"illinois": "IL", "indiana": "IN", "iowa": "IA", "kansas": "KS",
	"kentucky": "KY", "louisiana": "LA", "maine": "ME", "maryland": "MD",
	"massachusetts": "MA", "michigan": "MI", "minnesota": "MN", "mississippi": "MS",
	"missouri": "MO", "montana": "MT", "nebraska": "NE", "nevada": "NV",
	"new hampshire": "NH", "new jersey": "NJ", "new mexico": "NM", "new york": "NY",
	"north carolina": "NC", "north dakota": "ND", "ohio": "OH", "oklahoma": "OK",
	"oregon": "OR", "pennsylvania": "PA", "rhode island": "RI", "south carolina": "SC",
	"south dakota": "SD", "tennessee": "TN", "texas": "TX", "utah": "UT",
	"vermont": "VT", "virginia": "VA", "washington": "WA", "west virginia": "WV",
	"wisconsin": "WI", "wyoming": "WY",
}

// topicKeywords maps question phrasing to property-attribute keys understood
// by the detail fetcher.
var topicKeywords = map[string]string{
	"clear height": "clear_height",
	"ceiling":      "clear_height",
	"how tall":     "clear_height",
	"dock":         "dock_doors",
	"loading":      "dock_doors",
	"power":        "power",
	"electric":     "power",
	"amps":         "power",
	"office":       "office",
	"sprinkler":    "sprinkler",
	"fire suppression": "sprinkler",
	"square feet":  "sqft",
	"how big":      "sqft",
	"size":         "sqft",
}

// featureKeywords maps buyer phrasing to requirement keys merged into the
// search criteria.
var featureKeywords = map[string]string{
	"dock":         "dock_doors",
	"docks":        "dock_doors",
	"loading dock": "dock_doors",
	"office":       "office",
	"sprinkler":    "sprinkler",
	"climate":      "climate_control",
	"cold":         "cold_storage",
	"refrigerat":   "cold_storage",
	"freezer":      "cold_storage",
	"food":         "food_grade",
	"three phase":  "power",
	"3 phase":      "power",
	"high power":   "power",
	"fenced":       "secure_yard",
	"yard":         "secure_yard",
}

// useTypeKeywords maps buyer phrasing to the use-type matrix keys.
var useTypeKeywords = map[string]string{
	"storage":     "storage",
	"store":       "storage",
	"warehouse":   "storage",
	"fulfillment": "ecommerce_fulfillment",
	"ecommerce":   "ecommerce_fulfillment",
	"e-commerce":  "ecommerce_fulfillment",
	"shipping":    "ecommerce_fulfillment",
	"assembly":       "manufacturing_light",
	"light assembly": "manufacturing_light",
	"manufactur":     "manufacturing_light",
	"cold":           "cold_storage",
	"cold storage":   "cold_storage",
	"frozen":         "cold_storage",
	"food":           "food_grade",
	"food grade":     "food_grade",
	"office":         "storage_office",
}

// DetectTopics finds the property-attribute keys a free-text question is
// about. Used by the interpreter and by the knowledge backfill job.
func DetectTopics(body string) []string {
	return extractKeys(strings.ToLower(body), topicKeywords)
}

// ordinalWords maps spelled ordinals to 1-based positions.
var ordinalWords = map[string]int{
	"first": 1, "second": 2, "third": 3, "fourth": 4, "fifth": 5,
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
}

// stopWords are excluded from the outbound word-repetition check.
var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true, "to": true,
	"of": true, "in": true, "at": true, "on": true, "for": true, "with": true,
	"is": true, "are": true, "was": true, "be": true, "you": true, "your": true,
	"we": true, "our": true, "it": true, "its": true, "that": true, "this": true,
	"i": true, "me": true, "my": true, "can": true, "will": true, "have": true,
	"has": true, "sqft": true,
}

// profanityList is intentionally small; the gate exists to keep obvious
// garbage out of supplier-facing threads, not to moderate speech.
var profanityList = []string{
	"fuck", "shit", "bitch", "asshole", "cunt", "dickhead",
}

func containsProfanity(s string) bool {
	lower := strings.ToLower(s)
	for _, w := range profanityList {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

// showOptionsPhrases short-circuit to re-presenting the last result set.
var showOptionsPhrases = []string{
	"show me the options", "show options", "show me options", "options again",
	"see them again", "list them again", "what were the options",
	"show me those again", "the choices again",
}

// greetingPhrases are openers with no content.
var greetingPhrases = []string{
	"hi", "hello", "hey", "yo", "good morning", "good afternoon",
	"good evening", "hi there", "hello there",
}
