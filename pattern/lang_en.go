package pattern

import (
	"github.com/lokascript/semantic-go/semantic"
)

// englishPatterns is the reference catalog: every built-in command has at
// least one hand-authored surface form, and commands with more than one
// common idiom register the more specific form at a higher priority.
func englishPatterns() []*Pattern {
	const lang = "en"
	return []*Pattern{
		// dom
		hp(lang, semantic.ActionToggle, 0,
			Lit("toggle"), Slot(rPatient), Opt(Lit("on"), Slot(rDest))),
		hp(lang, semantic.ActionAdd, 0,
			Lit("add"), Slot(rPatient), Opt(Lit("to"), Slot(rDest))),
		hp(lang, semantic.ActionRemove, 0,
			Lit("remove"), Slot(rPatient), Opt(Lit("from"), Slot(rSource))),
		hp(lang, semantic.ActionShow, 0,
			Lit("show"), Opt(Slot(rPatient)), Opt(Lit("with"), Slot(rManner))),
		hp(lang, semantic.ActionHide, 0,
			Lit("hide"), Opt(Slot(rPatient)), Opt(Lit("with"), Slot(rManner))),
		hp(lang, semantic.ActionTake, 0,
			Lit("take"), Slot(rPatient), Opt(Lit("from"), Slot(rSource)), Opt(Lit("for"), Slot(rDest))),
		hp(lang, semantic.ActionClone, 0,
			Lit("clone"), Slot(rPatient), Opt(Lit("into"), Slot(rDest))),
		hp(lang, semantic.ActionFocus, 0,
			Lit("focus"), Opt(Slot(rPatient))),
		hp(lang, semantic.ActionBlur, 0,
			Lit("blur"), Opt(Slot(rPatient))),
		hp(lang, semantic.ActionMeasure, 0,
			Lit("measure"), Opt(Slot(rPatient))),
		hp(lang, semantic.ActionTransition, 0,
			Lit("transition"), Slot(rStyle), Lit("to"), Slot(rGoal), Opt(Lit("over"), Slot(rDuration))),
		hp(lang, semantic.ActionSwap, 0,
			Lit("swap"), Slot(rDest), Lit("with"), Slot(rPatient), Opt(Lit("using"), Slot(rMethod))),
		hp(lang, semantic.ActionMorph, 0,
			Lit("morph"), Slot(rDest), Lit("into"), Slot(rPatient)),

		// data
		hp(lang, semantic.ActionPut, 0,
			Lit("put"), Slot(rPatient), Lit("into"), Slot(rDest)),
		hp(lang, semantic.ActionSet, 0,
			Lit("set"), Slot(rDest), Lit("to"), Slot(rPatient)),
		hp(lang, semantic.ActionIncrement, 0,
			Lit("increment"), Slot(rPatient), Opt(Lit("by"), Slot(rQuantity))),
		hp(lang, semantic.ActionDecrement, 0,
			Lit("decrement"), Slot(rPatient), Opt(Lit("by"), Slot(rQuantity))),
		hp(lang, semantic.ActionAppend, 0,
			Lit("append"), Slot(rPatient), Opt(Lit("to"), Slot(rDest))),
		hp(lang, semantic.ActionPrepend, 0,
			Lit("prepend"), Slot(rPatient), Opt(Lit("to"), Slot(rDest))),
		hp(lang, semantic.ActionGet, 0,
			Lit("get"), Slot(rPatient)),
		hp(lang, semantic.ActionMake, PriorityHandAuthored+10,
			Lit("make"), Lit("a", "an"), Slot(rPatient)),
		hp(lang, semantic.ActionMake, 0,
			Lit("make"), Slot(rPatient)),
		hp(lang, semantic.ActionCall, 0,
			Lit("call"), Slot(rPatient)),
		hp(lang, semantic.ActionDefault, 0,
			Lit("default"), Slot(rDest), Lit("to"), Slot(rPatient)),

		// events
		hp(lang, semantic.ActionOn, 0,
			Lit("on"), Slot(rEvent), Opt(Lit("from"), Slot(rSource))),
		hp(lang, semantic.ActionTrigger, 0,
			Lit("trigger"), Slot(rEvent), Opt(Lit("on"), Slot(rDest))),
		hp(lang, semantic.ActionSend, 0,
			Lit("send"), Slot(rEvent), Opt(Lit("to"), Slot(rDest))),

		// async
		hp(lang, semantic.ActionWait, PriorityHandAuthored+10,
			Lit("wait"), Lit("for"), Slot(rEvent)),
		hp(lang, semantic.ActionWait, 0,
			Lit("wait"), Opt(Slot(rDuration))),
		hp(lang, semantic.ActionFetch, 0,
			Lit("fetch"), Slot(rSource), Opt(Lit("as"), Slot(rResponse)), Opt(Lit("with"), Slot(rMethod))),

		// control flow
		hp(lang, semantic.ActionLog, 0,
			Lit("log"), Slot(rPatient)),
		withDefault(hp(lang, semantic.ActionHalt, 0,
			Lit("halt"), Opt(Lit("the"), Slot(rEvent))),
			rEvent, semantic.Reference("event")),
		hp(lang, semantic.ActionThrow, 0,
			Lit("throw"), Slot(rPatient)),
		hp(lang, semantic.ActionIf, 0,
			Lit("if"), Slot(rCondition)),
		hp(lang, semantic.ActionUnless, 0,
			Lit("unless"), Slot(rCondition)),
		withDefault(hp(lang, semantic.ActionRepeat, PriorityHandAuthored+10,
			Lit("repeat"), Slot(rQuantity), Lit("times")),
			rLoopType, semantic.Literal("times")),
		hp(lang, semantic.ActionRepeat, 0,
			Lit("repeat"), Opt(Slot(rLoopType))),
		hp(lang, semantic.ActionFor, 0,
			Lit("for"), Opt(Lit("each")), Slot(rPatient), Lit("in"), Slot(rSource)),
		hp(lang, semantic.ActionWhile, 0,
			Lit("while"), Slot(rCondition)),
		hp(lang, semantic.ActionContinue, 0, Lit("continue")),
		hp(lang, semantic.ActionBreak, 0, Lit("break")),
		hp(lang, semantic.ActionGo, PriorityHandAuthored+10,
			Lit("go"), Lit("to"), Slot(rGoal)),
		hp(lang, semantic.ActionGo, 0,
			Lit("go"), Slot(rGoal)),
		hp(lang, semantic.ActionReturn, 0,
			Lit("return"), Opt(Slot(rPatient))),
		hp(lang, semantic.ActionTell, 0,
			Lit("tell"), Slot(rDest)),

		// definitions
		hp(lang, semantic.ActionInit, 0, Lit("init")),
		hp(lang, semantic.ActionBehavior, 0,
			Lit("behavior"), Slot(rPatient)),
		hp(lang, semantic.ActionInstall, 0,
			Lit("install"), Slot(rPatient)),
	}
}
