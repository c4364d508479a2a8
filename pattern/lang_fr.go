package pattern

import (
	"github.com/lokascript/semantic-go/semantic"
)

func frenchPatterns() []*Pattern {
	const lang = "fr"
	return []*Pattern{
		hp(lang, semantic.ActionToggle, 0,
			Lit("basculer", "bascule"), Slot(rPatient), Opt(Lit("sur"), Slot(rDest))),
		hp(lang, semantic.ActionAdd, 0,
			Lit("ajouter", "ajoute"), Slot(rPatient), Opt(Lit("à"), Slot(rDest))),
		hp(lang, semantic.ActionRemove, 0,
			Lit("retirer", "retire", "supprimer"), Slot(rPatient), Opt(Lit("de"), Slot(rSource))),
		hp(lang, semantic.ActionPut, 0,
			Lit("mettre", "mets"), Slot(rPatient), Lit("dans"), Slot(rDest)),
		hp(lang, semantic.ActionSet, 0,
			Lit("définir", "définis"), Slot(rDest), Lit("à"), Slot(rPatient)),
		hp(lang, semantic.ActionShow, 0,
			Lit("montrer", "afficher", "montre"), Opt(Slot(rPatient))),
		hp(lang, semantic.ActionHide, 0,
			Lit("cacher", "masquer", "cache"), Opt(Slot(rPatient))),
		hp(lang, semantic.ActionOn, 0,
			Lit("sur", "quand"), Slot(rEvent)),
		hp(lang, semantic.ActionWait, 0,
			Lit("attendre", "attends"), Opt(Slot(rDuration))),
		hp(lang, semantic.ActionIncrement, 0,
			Lit("incrémenter", "incrémente"), Slot(rPatient), Opt(Lit("par"), Slot(rQuantity))),
		hp(lang, semantic.ActionLog, 0,
			Lit("journaliser", "journalise"), Slot(rPatient)),
		hp(lang, semantic.ActionIf, 0,
			Lit("si"), Slot(rCondition)),
	}
}
