package pattern

import (
	"github.com/lokascript/semantic-go/semantic"
)

// hindiPatterns uses the SOV order with postpositions as separate words,
// matching how Devanagari text is whitespace-delimited.
func hindiPatterns() []*Pattern {
	const lang = "hi"
	return []*Pattern{
		hp(lang, semantic.ActionToggle, 0,
			Slot(rPatient), Lit("को"), Opt(Slot(rDest), Lit("पर")), Lit("टॉगल"), Opt(Lit("करें"))),
		hp(lang, semantic.ActionAdd, 0,
			Slot(rPatient), Lit("को"), Opt(Slot(rDest), Lit("में")), Lit("जोड़ें")),
		hp(lang, semantic.ActionRemove, 0,
			Slot(rPatient), Lit("को"), Opt(Slot(rSource), Lit("से")), Lit("हटाएं")),
		hp(lang, semantic.ActionShow, 0,
			Opt(Slot(rPatient), Lit("को")), Lit("दिखाएं")),
		hp(lang, semantic.ActionHide, 0,
			Opt(Slot(rPatient), Lit("को")), Lit("छिपाएं")),
		hp(lang, semantic.ActionWait, 0,
			Opt(Slot(rDuration)), Lit("प्रतीक्षा"), Opt(Lit("करें"))),
	}
}
