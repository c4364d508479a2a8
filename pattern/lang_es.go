package pattern

import (
	"github.com/lokascript/semantic-go/semantic"
)

// spanishPatterns covers the commonly used commands with their idiomatic
// Spanish surface forms. The rest of the command set synthesizes from the
// "es" profile.
func spanishPatterns() []*Pattern {
	const lang = "es"
	return []*Pattern{
		hp(lang, semantic.ActionToggle, 0,
			Lit("alternar", "alterna"), Slot(rPatient), Opt(Lit("en"), Slot(rDest))),
		hp(lang, semantic.ActionAdd, 0,
			Lit("añadir", "agregar", "añade"), Slot(rPatient), Opt(Lit("a"), Slot(rDest))),
		hp(lang, semantic.ActionRemove, 0,
			Lit("quitar", "eliminar", "quita"), Slot(rPatient), Opt(Lit("de"), Slot(rSource))),
		hp(lang, semantic.ActionPut, 0,
			Lit("poner", "pon"), Slot(rPatient), Lit("en"), Slot(rDest)),
		hp(lang, semantic.ActionSet, 0,
			Lit("establecer", "establece"), Slot(rDest), Lit("a"), Slot(rPatient)),
		hp(lang, semantic.ActionShow, 0,
			Lit("mostrar", "muestra"), Opt(Slot(rPatient))),
		hp(lang, semantic.ActionHide, 0,
			Lit("ocultar", "oculta"), Opt(Slot(rPatient))),
		hp(lang, semantic.ActionOn, 0,
			Lit("al", "cuando"), Slot(rEvent)),
		hp(lang, semantic.ActionWait, 0,
			Lit("esperar", "espera"), Opt(Slot(rDuration))),
		hp(lang, semantic.ActionFetch, 0,
			Lit("obtener", "obtén"), Slot(rSource), Opt(Lit("como"), Slot(rResponse))),
		hp(lang, semantic.ActionIncrement, 0,
			Lit("incrementar", "incrementa"), Slot(rPatient), Opt(Lit("por"), Slot(rQuantity))),
		hp(lang, semantic.ActionLog, 0,
			Lit("registrar", "registra"), Slot(rPatient)),
		hp(lang, semantic.ActionIf, 0,
			Lit("si"), Slot(rCondition)),
		hp(lang, semantic.ActionFor, 0,
			Lit("para"), Opt(Lit("cada")), Slot(rPatient), Lit("en"), Slot(rSource)),
	}
}
