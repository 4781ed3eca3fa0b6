package marketrate

// stateFallback is the coarse per-state NNN band (dollars per sqft per month)
// used when a zipcode was never fetched and the LLM is unavailable. Numbers
// are deliberately wide; they bound rate suggestions, they do not price deals.
var stateFallback = map[string]band{
	"AL": {0.35, 0.75}, "AK": {0.80, 1.60}, "AZ": {0.55, 1.10}, "AR": {0.35, 0.70},
	"CA": {0.90, 2.20}, "CO": {0.60, 1.20}, "CT": {0.60, 1.20}, "DE": {0.50, 1.00},
	"FL": {0.60, 1.30}, "GA": {0.45, 0.95}, "HI": {1.20, 2.40}, "ID": {0.50, 0.95},
	"IL": {0.45, 1.00}, "IN": {0.35, 0.75}, "IA": {0.35, 0.70}, "KS": {0.35, 0.70},
	"KY": {0.35, 0.75}, "LA": {0.40, 0.80}, "ME": {0.50, 0.95}, "MD": {0.60, 1.20},
	"MA": {0.75, 1.50}, "MI": {0.40, 0.85}, "MN": {0.45, 0.90}, "MS": {0.30, 0.65},
	"MO": {0.40, 0.80}, "MT": {0.45, 0.90}, "NE": {0.35, 0.70}, "NV": {0.60, 1.20},
	"NH": {0.55, 1.05}, "NJ": {0.85, 1.80}, "NM": {0.45, 0.90}, "NY": {0.80, 1.90},
	"NC": {0.45, 0.95}, "ND": {0.35, 0.70}, "OH": {0.35, 0.80}, "OK": {0.35, 0.70},
	"OR": {0.60, 1.20}, "PA": {0.50, 1.05}, "RI": {0.60, 1.15}, "SC": {0.40, 0.85},
	"SD": {0.35, 0.70}, "TN": {0.40, 0.90}, "TX": {0.45, 1.00}, "UT": {0.55, 1.05},
	"VT": {0.50, 0.95}, "VA": {0.55, 1.15}, "WA": {0.70, 1.40}, "WV": {0.30, 0.65},
	"WI": {0.40, 0.80}, "WY": {0.40, 0.80}, "DC": {0.90, 1.90},
}

type band struct {
	Low  float64
	High float64
}
