package semantic

// Role classifies a command argument by its grammatical-semantic function,
// independent of where it appears in a language's surface word order.
// Each command schema selects the subset of roles it accepts.
type Role string

const (
	// RolePatient is the entity acted upon (the class being toggled, the
	// value being put).
	RolePatient Role = "patient"
	// RoleDestination is where the action lands ("into #output", "to me").
	RoleDestination Role = "destination"
	// RoleSource is where the action draws from ("from #input").
	RoleSource Role = "source"
	// RoleEvent is the DOM event an event-handler command binds to.
	RoleEvent Role = "event"
	// RoleQuantity is a numeric amount ("by 2").
	RoleQuantity Role = "quantity"
	// RoleCondition is the boolean guard of a conditional or loop.
	RoleCondition Role = "condition"
	// RoleMethod is an HTTP or invocation method.
	RoleMethod Role = "method"
	// RoleStyle is a style property name or value.
	RoleStyle Role = "style"
	// RoleDuration is a time span ("for 2s").
	RoleDuration Role = "duration"
	// RoleGoal is the object of navigation or transition.
	RoleGoal Role = "goal"
	// RoleResponseType is the expected fetch response shape ("as json").
	RoleResponseType Role = "responseType"
	// RoleLoopType distinguishes repeat variants (times, forever, until).
	RoleLoopType Role = "loopType"
	// RoleManner qualifies how an action is performed ("with *opacity").
	RoleManner Role = "manner"
)

// String implements fmt.Stringer.
func (r Role) String() string {
	return string(r)
}
