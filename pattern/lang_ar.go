package pattern

import (
	"github.com/lokascript/semantic-go/semantic"
)

// arabicPatterns follows the VSO order: the imperative verb opens the
// command and prepositions mark the oblique roles.
func arabicPatterns() []*Pattern {
	const lang = "ar"
	return []*Pattern{
		hp(lang, semantic.ActionToggle, 0,
			Lit("بدّل", "بدل"), Slot(rPatient), Opt(Lit("على"), Slot(rDest))),
		hp(lang, semantic.ActionAdd, 0,
			Lit("أضف"), Slot(rPatient), Opt(Lit("إلى"), Slot(rDest))),
		hp(lang, semantic.ActionRemove, 0,
			Lit("أزل"), Slot(rPatient), Opt(Lit("من"), Slot(rSource))),
		hp(lang, semantic.ActionPut, 0,
			Lit("ضع"), Slot(rPatient), Lit("في"), Slot(rDest)),
		hp(lang, semantic.ActionShow, 0,
			Lit("أظهر"), Opt(Slot(rPatient))),
		hp(lang, semantic.ActionHide, 0,
			Lit("أخف"), Opt(Slot(rPatient))),
		hp(lang, semantic.ActionOn, 0,
			Lit("عند"), Slot(rEvent)),
		hp(lang, semantic.ActionWait, 0,
			Lit("انتظر"), Opt(Slot(rDuration))),
		hp(lang, semantic.ActionLog, 0,
			Lit("سجّل", "سجل"), Slot(rPatient)),
	}
}
