// Package semantic defines the closed vocabulary of the command language:
// action kinds, semantic roles, tagged values, and the per-command schemas
// that declare which roles a command accepts.
//
// The vocabulary is shared by the pattern store, the grammar synthesizer,
// the matcher and the role validator. It is immutable for the lifetime of
// the process; new commands enter only through explicit schema
// registration on a Registry.
package semantic

// ActionType identifies a command kind in the language.
type ActionType string

const (
	ActionToggle     ActionType = "toggle"
	ActionAdd        ActionType = "add"
	ActionRemove     ActionType = "remove"
	ActionPut        ActionType = "put"
	ActionSet        ActionType = "set"
	ActionShow       ActionType = "show"
	ActionHide       ActionType = "hide"
	ActionOn         ActionType = "on"
	ActionTrigger    ActionType = "trigger"
	ActionWait       ActionType = "wait"
	ActionFetch      ActionType = "fetch"
	ActionIncrement  ActionType = "increment"
	ActionDecrement  ActionType = "decrement"
	ActionAppend     ActionType = "append"
	ActionPrepend    ActionType = "prepend"
	ActionLog        ActionType = "log"
	ActionGet        ActionType = "get"
	ActionTake       ActionType = "take"
	ActionMake       ActionType = "make"
	ActionHalt       ActionType = "halt"
	ActionThrow      ActionType = "throw"
	ActionSend       ActionType = "send"
	ActionIf         ActionType = "if"
	ActionUnless     ActionType = "unless"
	ActionRepeat     ActionType = "repeat"
	ActionFor        ActionType = "for"
	ActionWhile      ActionType = "while"
	ActionContinue   ActionType = "continue"
	ActionBreak      ActionType = "break"
	ActionGo         ActionType = "go"
	ActionTransition ActionType = "transition"
	ActionClone      ActionType = "clone"
	ActionFocus      ActionType = "focus"
	ActionBlur       ActionType = "blur"
	ActionCall       ActionType = "call"
	ActionReturn     ActionType = "return"
	ActionTell       ActionType = "tell"
	ActionDefault    ActionType = "default"
	ActionInit       ActionType = "init"
	ActionBehavior   ActionType = "behavior"
	ActionInstall    ActionType = "install"
	ActionMeasure    ActionType = "measure"
	ActionSwap       ActionType = "swap"
	ActionMorph      ActionType = "morph"
)

// String implements fmt.Stringer.
func (a ActionType) String() string {
	return string(a)
}
