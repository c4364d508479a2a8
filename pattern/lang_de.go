package pattern

import (
	"github.com/lokascript/semantic-go/semantic"
)

// germanPatterns includes the separable-verb forms ("schalte ... um",
// "füge ... hinzu") at a higher priority than the plain infinitive forms,
// since the split idiom cannot be synthesized from the profile.
func germanPatterns() []*Pattern {
	const lang = "de"
	return []*Pattern{
		hp(lang, semantic.ActionToggle, PriorityHandAuthored+10,
			Lit("schalte"), Slot(rPatient), Opt(Lit("auf"), Slot(rDest)), Lit("um")),
		hp(lang, semantic.ActionToggle, 0,
			Lit("umschalten"), Slot(rPatient), Opt(Lit("auf"), Slot(rDest))),
		hp(lang, semantic.ActionAdd, PriorityHandAuthored+10,
			Lit("füge"), Slot(rPatient), Opt(Lit("zu"), Slot(rDest)), Lit("hinzu")),
		hp(lang, semantic.ActionAdd, 0,
			Lit("hinzufügen"), Slot(rPatient), Opt(Lit("zu"), Slot(rDest))),
		hp(lang, semantic.ActionRemove, 0,
			Lit("entferne", "entfernen"), Slot(rPatient), Opt(Lit("von"), Slot(rSource))),
		hp(lang, semantic.ActionPut, 0,
			Lit("setze"), Slot(rPatient), Lit("in"), Slot(rDest)),
		hp(lang, semantic.ActionShow, 0,
			Lit("zeige", "zeigen"), Opt(Slot(rPatient))),
		hp(lang, semantic.ActionHide, 0,
			Lit("verstecke", "verbergen"), Opt(Slot(rPatient))),
		hp(lang, semantic.ActionOn, 0,
			Lit("bei", "wenn"), Slot(rEvent)),
		hp(lang, semantic.ActionWait, 0,
			Lit("warte", "warten"), Opt(Slot(rDuration))),
		hp(lang, semantic.ActionIncrement, 0,
			Lit("erhöhe"), Slot(rPatient), Opt(Lit("um"), Slot(rQuantity))),
		hp(lang, semantic.ActionLog, 0,
			Lit("protokolliere"), Slot(rPatient)),
	}
}
