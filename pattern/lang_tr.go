package pattern

import (
	"github.com/lokascript/semantic-go/semantic"
)

// turkishPatterns uses the SOV order with postposed particles written as
// separate words, the convention this constrained grammar adopts in place
// of fused case suffixes.
func turkishPatterns() []*Pattern {
	const lang = "tr"
	return []*Pattern{
		hp(lang, semantic.ActionToggle, 0,
			Slot(rPatient), Opt(Slot(rDest), Lit("üzerinde")), Lit("değiştir")),
		hp(lang, semantic.ActionAdd, 0,
			Slot(rPatient), Opt(Slot(rDest), Lit("e")), Lit("ekle")),
		hp(lang, semantic.ActionRemove, 0,
			Slot(rPatient), Opt(Slot(rSource), Lit("den")), Lit("kaldır")),
		hp(lang, semantic.ActionShow, 0,
			Opt(Slot(rPatient)), Lit("göster")),
		hp(lang, semantic.ActionHide, 0,
			Opt(Slot(rPatient)), Lit("gizle")),
		hp(lang, semantic.ActionWait, 0,
			Opt(Slot(rDuration)), Lit("bekle")),
	}
}
