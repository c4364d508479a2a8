package semantic

// Built-in command schema catalog.
//
// Positions are word-order hints: higher values are placed earlier when the
// grammar synthesizer orders roles for a target language. Markers override
// the language profile's default case markers for the handful of commands
// whose idiom differs from the generic convention.

func defaultValue(v Value) *Value { return &v }

// DefaultRegistry returns a registry preloaded with every built-in command.
// Plugin code extends the returned registry through Register.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, s := range builtinSchemas() {
		// Builtins are maintained alongside validateRoles; a failure here
		// is a bug in this file.
		if err := r.Register(s); err != nil {
			panic(err)
		}
	}
	return r
}

func builtinSchemas() []*Schema {
	return []*Schema{
		{
			Action:   ActionToggle,
			Category: "dom",
			Primary:  RolePatient,
			Roles: []RoleSpec{
				{
					Role:        RolePatient,
					Description: "class or attribute to toggle",
					Required:    true,
					Shapes:      []ValueKind{KindSelector},
					SVOPosition: 10, SOVPosition: 10,
				},
				{
					Role:        RoleDestination,
					Description: "element to toggle on",
					Shapes:      []ValueKind{KindSelector, KindReference},
					Default:     defaultValue(Reference("me")),
					SVOPosition: 5, SOVPosition: 5,
					Markers: map[string]string{
						"en": "on", "es": "en", "fr": "sur", "de": "auf",
					},
				},
			},
			Errors: []RuntimeErrorDoc{
				{Code: "NO_SUCH_TARGET", Precondition: "destination selector matches at least one element", Recovery: "check the selector against the live DOM"},
			},
		},
		{
			Action:   ActionAdd,
			Category: "dom",
			Primary:  RolePatient,
			Roles: []RoleSpec{
				{
					Role:        RolePatient,
					Description: "class or attribute to add",
					Required:    true,
					Shapes:      []ValueKind{KindSelector},
					SVOPosition: 10, SOVPosition: 10,
				},
				{
					Role:        RoleDestination,
					Description: "element receiving the class",
					Shapes:      []ValueKind{KindSelector, KindReference},
					Default:     defaultValue(Reference("me")),
					SVOPosition: 5, SOVPosition: 5,
					Markers:       map[string]string{"en": "to", "es": "a", "fr": "à", "de": "zu"},
					RenderMarkers: map[string]string{"en": "to"},
				},
			},
		},
		{
			Action:   ActionRemove,
			Category: "dom",
			Primary:  RolePatient,
			Roles: []RoleSpec{
				{
					Role:        RolePatient,
					Description: "class, attribute, or element to remove",
					Required:    true,
					Shapes:      []ValueKind{KindSelector},
					SVOPosition: 10, SOVPosition: 10,
				},
				{
					Role:        RoleSource,
					Description: "element the class is removed from",
					Shapes:      []ValueKind{KindSelector, KindReference},
					Default:     defaultValue(Reference("me")),
					SVOPosition: 5, SOVPosition: 5,
					Markers: map[string]string{"en": "from", "es": "de", "fr": "de", "de": "von"},
				},
			},
		},
		{
			Action:   ActionPut,
			Category: "data",
			Primary:  RolePatient,
			Roles: []RoleSpec{
				{
					Role:        RolePatient,
					Description: "value to place",
					Required:    true,
					Shapes:      []ValueKind{KindLiteral, KindExpression, KindReference},
					SVOPosition: 10, SOVPosition: 10,
				},
				{
					Role:        RoleDestination,
					Description: "where the value lands",
					Required:    true,
					Shapes:      []ValueKind{KindSelector, KindReference, KindPropertyPath},
					SVOPosition: 5, SOVPosition: 5,
					Markers:       map[string]string{"en": "into", "es": "en", "fr": "dans", "de": "in"},
					RenderMarkers: map[string]string{"en": "into"},
				},
			},
			Errors: []RuntimeErrorDoc{
				{Code: "READONLY_TARGET", Precondition: "destination is writable", Recovery: "target a content element or a variable"},
			},
		},
		{
			Action:   ActionSet,
			Category: "data",
			Primary:  RoleDestination,
			Roles: []RoleSpec{
				{
					Role:        RoleDestination,
					Description: "variable or property being assigned",
					Required:    true,
					Shapes:      []ValueKind{KindExpression, KindReference, KindPropertyPath},
					SVOPosition: 10, SOVPosition: 10,
				},
				{
					Role:        RolePatient,
					Description: "value to assign",
					Required:    true,
					Shapes:      []ValueKind{KindLiteral, KindExpression},
					SVOPosition: 5, SOVPosition: 5,
					Markers: map[string]string{"en": "to", "es": "a", "fr": "à"},
				},
			},
		},
		{
			Action:   ActionShow,
			Category: "dom",
			Primary:  RolePatient,
			Roles: []RoleSpec{
				{
					Role:        RolePatient,
					Description: "element to show",
					Shapes:      []ValueKind{KindSelector, KindReference},
					Default:     defaultValue(Reference("me")),
					SVOPosition: 10, SOVPosition: 10,
				},
				{
					Role:        RoleManner,
					Description: "display strategy, e.g. *opacity",
					Shapes:      []ValueKind{KindExpression},
					SVOPosition: 3, SOVPosition: 3,
					Markers: map[string]string{"en": "with"},
				},
			},
		},
		{
			Action:   ActionHide,
			Category: "dom",
			Primary:  RolePatient,
			Roles: []RoleSpec{
				{
					Role:        RolePatient,
					Description: "element to hide",
					Shapes:      []ValueKind{KindSelector, KindReference},
					Default:     defaultValue(Reference("me")),
					SVOPosition: 10, SOVPosition: 10,
				},
				{
					Role:        RoleManner,
					Description: "display strategy",
					Shapes:      []ValueKind{KindExpression},
					SVOPosition: 3, SOVPosition: 3,
					Markers: map[string]string{"en": "with"},
				},
			},
		},
		{
			Action:   ActionOn,
			Category: "event",
			Primary:  RoleEvent,
			HasBody:  true,
			Roles: []RoleSpec{
				{
					Role:        RoleEvent,
					Description: "event name the handler binds to",
					Required:    true,
					Shapes:      []ValueKind{KindLiteral, KindExpression},
					SVOPosition: 10, SOVPosition: 10,
				},
				{
					Role:        RoleSource,
					Description: "element the event is listened on",
					Shapes:      []ValueKind{KindSelector, KindReference},
					SVOPosition: 5, SOVPosition: 5,
					Markers: map[string]string{"en": "from"},
				},
				{
					Role:        RoleCondition,
					Description: "guard filtering event delivery",
					Shapes:      []ValueKind{KindExpression},
					SVOPosition: 3, SOVPosition: 3,
				},
			},
		},
		{
			Action:   ActionTrigger,
			Category: "event",
			Primary:  RoleEvent,
			Roles: []RoleSpec{
				{
					Role:        RoleEvent,
					Description: "event to dispatch",
					Required:    true,
					Shapes:      []ValueKind{KindLiteral, KindExpression},
					SVOPosition: 10, SOVPosition: 10,
				},
				{
					Role:        RoleDestination,
					Description: "element the event is dispatched on",
					Shapes:      []ValueKind{KindSelector, KindReference},
					Default:     defaultValue(Reference("me")),
					SVOPosition: 5, SOVPosition: 5,
					Markers: map[string]string{"en": "on"},
				},
			},
		},
		{
			Action:   ActionSend,
			Category: "event",
			Primary:  RoleEvent,
			Roles: []RoleSpec{
				{
					Role:        RoleEvent,
					Description: "event or message to send",
					Required:    true,
					Shapes:      []ValueKind{KindLiteral, KindExpression},
					SVOPosition: 10, SOVPosition: 10,
				},
				{
					Role:        RoleDestination,
					Description: "recipient element",
					Shapes:      []ValueKind{KindSelector, KindReference},
					Default:     defaultValue(Reference("me")),
					SVOPosition: 5, SOVPosition: 5,
					Markers: map[string]string{"en": "to", "es": "a", "fr": "à"},
				},
			},
		},
		{
			Action:   ActionWait,
			Category: "async",
			Primary:  RoleDuration,
			Roles: []RoleSpec{
				{
					Role:        RoleDuration,
					Description: "time span to wait",
					Shapes:      []ValueKind{KindLiteral},
					SVOPosition: 10, SOVPosition: 10,
				},
				{
					Role:        RoleEvent,
					Description: "event to wait for instead of a duration",
					Shapes:      []ValueKind{KindLiteral, KindExpression},
					SVOPosition: 8, SOVPosition: 8,
					Markers: map[string]string{"en": "for"},
				},
			},
		},
		{
			Action:   ActionFetch,
			Category: "async",
			Primary:  RoleSource,
			Roles: []RoleSpec{
				{
					Role:        RoleSource,
					Description: "URL to fetch",
					Required:    true,
					Shapes:      []ValueKind{KindLiteral, KindExpression},
					SVOPosition: 10, SOVPosition: 10,
				},
				{
					Role:        RoleResponseType,
					Description: "response conversion",
					Shapes:      []ValueKind{KindLiteral},
					Default:     defaultValue(Literal("text")),
					SVOPosition: 5, SOVPosition: 5,
					Markers: map[string]string{"en": "as", "es": "como", "fr": "comme"},
				},
				{
					Role:        RoleMethod,
					Description: "HTTP method override",
					Shapes:      []ValueKind{KindLiteral},
					SVOPosition: 3, SOVPosition: 3,
					Markers: map[string]string{"en": "with"},
				},
			},
			Errors: []RuntimeErrorDoc{
				{Code: "FETCH_FAILED", Precondition: "URL reachable and CORS permits the request", Recovery: "inspect the network panel; add an error handler"},
			},
		},
		{
			Action:   ActionIncrement,
			Category: "data",
			Primary:  RolePatient,
			Roles: []RoleSpec{
				{
					Role:        RolePatient,
					Description: "variable or property to increment",
					Required:    true,
					Shapes:      []ValueKind{KindExpression, KindReference, KindPropertyPath},
					SVOPosition: 10, SOVPosition: 10,
				},
				{
					Role:        RoleQuantity,
					Description: "amount of the change",
					Shapes:      []ValueKind{KindLiteral},
					Default:     defaultValue(Literal("1")),
					SVOPosition: 5, SOVPosition: 5,
					Markers: map[string]string{"en": "by", "es": "por", "fr": "par", "de": "um"},
				},
			},
		},
		{
			Action:   ActionDecrement,
			Category: "data",
			Primary:  RolePatient,
			Roles: []RoleSpec{
				{
					Role:        RolePatient,
					Description: "variable or property to decrement",
					Required:    true,
					Shapes:      []ValueKind{KindExpression, KindReference, KindPropertyPath},
					SVOPosition: 10, SOVPosition: 10,
				},
				{
					Role:        RoleQuantity,
					Description: "amount of the change",
					Shapes:      []ValueKind{KindLiteral},
					Default:     defaultValue(Literal("1")),
					SVOPosition: 5, SOVPosition: 5,
					Markers: map[string]string{"en": "by", "es": "por", "fr": "par", "de": "um"},
				},
			},
		},
		{
			Action:   ActionAppend,
			Category: "data",
			Primary:  RolePatient,
			Roles: []RoleSpec{
				{
					Role:        RolePatient,
					Description: "content to append",
					Required:    true,
					Shapes:      []ValueKind{KindLiteral, KindExpression},
					SVOPosition: 10, SOVPosition: 10,
				},
				{
					Role:        RoleDestination,
					Description: "target collection or element",
					Shapes:      []ValueKind{KindSelector, KindReference, KindPropertyPath},
					Default:     defaultValue(Reference("it")),
					SVOPosition: 5, SOVPosition: 5,
					Markers: map[string]string{"en": "to"},
				},
			},
		},
		{
			Action:   ActionPrepend,
			Category: "data",
			Primary:  RolePatient,
			Roles: []RoleSpec{
				{
					Role:        RolePatient,
					Description: "content to prepend",
					Required:    true,
					Shapes:      []ValueKind{KindLiteral, KindExpression},
					SVOPosition: 10, SOVPosition: 10,
				},
				{
					Role:        RoleDestination,
					Description: "target collection or element",
					Shapes:      []ValueKind{KindSelector, KindReference, KindPropertyPath},
					Default:     defaultValue(Reference("it")),
					SVOPosition: 5, SOVPosition: 5,
					Markers: map[string]string{"en": "to"},
				},
			},
		},
		{
			Action:   ActionLog,
			Category: "debug",
			Primary:  RolePatient,
			Roles: []RoleSpec{
				{
					Role:        RolePatient,
					Description: "value to log",
					Required:    true,
					Shapes:      []ValueKind{KindExpression, KindReference, KindPropertyPath},
					SVOPosition: 10, SOVPosition: 10,
				},
			},
		},
		{
			Action:   ActionGet,
			Category: "data",
			Primary:  RolePatient,
			Roles: []RoleSpec{
				{
					Role:        RolePatient,
					Description: "expression to evaluate into the result slot",
					Required:    true,
					Shapes:      []ValueKind{KindExpression, KindSelector, KindPropertyPath},
					SVOPosition: 10, SOVPosition: 10,
				},
			},
		},
		{
			Action:   ActionTake,
			Category: "dom",
			Primary:  RolePatient,
			Roles: []RoleSpec{
				{
					Role:        RolePatient,
					Description: "class to take",
					Required:    true,
					Shapes:      []ValueKind{KindSelector},
					SVOPosition: 10, SOVPosition: 10,
				},
				{
					Role:        RoleSource,
					Description: "peer group the class is taken from",
					Shapes:      []ValueKind{KindSelector},
					SVOPosition: 5, SOVPosition: 5,
					Markers: map[string]string{"en": "from"},
				},
				{
					Role:        RoleDestination,
					Description: "element that receives the class",
					Shapes:      []ValueKind{KindSelector, KindReference},
					Default:     defaultValue(Reference("me")),
					SVOPosition: 3, SOVPosition: 3,
					Markers: map[string]string{"en": "for"},
				},
			},
		},
		{
			Action:   ActionMake,
			Category: "data",
			Primary:  RolePatient,
			Roles: []RoleSpec{
				{
					Role:        RolePatient,
					Description: "element or object to construct",
					Required:    true,
					Shapes:      []ValueKind{KindExpression, KindSelector},
					SVOPosition: 10, SOVPosition: 10,
				},
			},
		},
		{
			Action:   ActionHalt,
			Category: "control",
			Primary:  RoleEvent,
			Roles: []RoleSpec{
				{
					Role:        RoleEvent,
					Description: "event whose default/bubbling is halted",
					Shapes:      []ValueKind{KindReference, KindLiteral},
					Default:     defaultValue(Reference("event")),
					SVOPosition: 10, SOVPosition: 10,
				},
			},
		},
		{
			Action:   ActionThrow,
			Category: "control",
			Primary:  RolePatient,
			Roles: []RoleSpec{
				{
					Role:        RolePatient,
					Description: "error value to throw",
					Required:    true,
					Shapes:      []ValueKind{KindExpression, KindLiteral},
					SVOPosition: 10, SOVPosition: 10,
				},
			},
		},
		{
			Action:   ActionIf,
			Category: "conditional",
			Primary:  RoleCondition,
			HasBody:  true,
			Roles: []RoleSpec{
				{
					Role:        RoleCondition,
					Description: "boolean guard",
					Required:    true,
					Shapes:      []ValueKind{KindExpression},
					SVOPosition: 10, SOVPosition: 10,
				},
			},
		},
		{
			Action:   ActionUnless,
			Category: "conditional",
			Primary:  RoleCondition,
			HasBody:  true,
			Roles: []RoleSpec{
				{
					Role:        RoleCondition,
					Description: "negated boolean guard",
					Required:    true,
					Shapes:      []ValueKind{KindExpression},
					SVOPosition: 10, SOVPosition: 10,
				},
			},
		},
		{
			Action:   ActionRepeat,
			Category: "loop",
			Primary:  RoleLoopType,
			HasBody:  true,
			Roles: []RoleSpec{
				{
					Role:        RoleLoopType,
					Description: "repeat variant: forever, times, until",
					Shapes:      []ValueKind{KindLiteral},
					Default:     defaultValue(Literal("forever")),
					SVOPosition: 10, SOVPosition: 10,
				},
				{
					Role:        RoleQuantity,
					Description: "iteration count for the times variant",
					Shapes:      []ValueKind{KindLiteral, KindExpression},
					SVOPosition: 5, SOVPosition: 5,
				},
			},
		},
		{
			Action:   ActionFor,
			Category: "iteration",
			Primary:  RolePatient,
			HasBody:  true,
			Roles: []RoleSpec{
				{
					Role:        RolePatient,
					Description: "loop variable",
					Required:    true,
					Shapes:      []ValueKind{KindExpression},
					SVOPosition: 10, SOVPosition: 10,
				},
				{
					Role:        RoleSource,
					Description: "collection iterated over",
					Required:    true,
					Shapes:      []ValueKind{KindExpression, KindSelector},
					SVOPosition: 5, SOVPosition: 5,
					Markers: map[string]string{"en": "in", "es": "en", "fr": "dans", "de": "in"},
				},
			},
		},
		{
			Action:   ActionWhile,
			Category: "loop",
			Primary:  RoleCondition,
			HasBody:  true,
			Roles: []RoleSpec{
				{
					Role:        RoleCondition,
					Description: "loop guard",
					Required:    true,
					Shapes:      []ValueKind{KindExpression},
					SVOPosition: 10, SOVPosition: 10,
				},
			},
		},
		{Action: ActionContinue, Category: "control"},
		{Action: ActionBreak, Category: "control"},
		{
			Action:   ActionGo,
			Category: "navigation",
			Primary:  RoleGoal,
			Roles: []RoleSpec{
				{
					Role:        RoleGoal,
					Description: "navigation target: url, top, bottom, back",
					Required:    true,
					Shapes:      []ValueKind{KindExpression, KindLiteral},
					SVOPosition: 10, SOVPosition: 10,
					Markers: map[string]string{"en": "to"},
				},
			},
		},
		{
			Action:   ActionTransition,
			Category: "dom",
			Primary:  RoleStyle,
			Roles: []RoleSpec{
				{
					Role:        RoleStyle,
					Description: "style property to animate",
					Required:    true,
					Shapes:      []ValueKind{KindExpression},
					SVOPosition: 10, SOVPosition: 10,
				},
				{
					Role:        RoleGoal,
					Description: "final property value",
					Required:    true,
					Shapes:      []ValueKind{KindLiteral, KindExpression},
					SVOPosition: 5, SOVPosition: 5,
					Markers: map[string]string{"en": "to"},
				},
				{
					Role:        RoleDuration,
					Description: "animation duration",
					Shapes:      []ValueKind{KindLiteral},
					SVOPosition: 3, SOVPosition: 3,
					Markers: map[string]string{"en": "over"},
				},
			},
		},
		{
			Action:   ActionClone,
			Category: "dom",
			Primary:  RolePatient,
			Roles: []RoleSpec{
				{
					Role:        RolePatient,
					Description: "element to clone",
					Required:    true,
					Shapes:      []ValueKind{KindSelector, KindReference},
					SVOPosition: 10, SOVPosition: 10,
				},
				{
					Role:        RoleDestination,
					Description: "where the clone is inserted",
					Shapes:      []ValueKind{KindSelector, KindReference},
					SVOPosition: 5, SOVPosition: 5,
					Markers: map[string]string{"en": "into"},
				},
			},
		},
		{
			Action:   ActionFocus,
			Category: "dom",
			Primary:  RolePatient,
			Roles: []RoleSpec{
				{
					Role:        RolePatient,
					Description: "element to focus",
					Shapes:      []ValueKind{KindSelector, KindReference},
					Default:     defaultValue(Reference("me")),
					SVOPosition: 10, SOVPosition: 10,
				},
			},
		},
		{
			Action:   ActionBlur,
			Category: "dom",
			Primary:  RolePatient,
			Roles: []RoleSpec{
				{
					Role:        RolePatient,
					Description: "element to blur",
					Shapes:      []ValueKind{KindSelector, KindReference},
					Default:     defaultValue(Reference("me")),
					SVOPosition: 10, SOVPosition: 10,
				},
			},
		},
		{
			Action:   ActionCall,
			Category: "data",
			Primary:  RolePatient,
			Roles: []RoleSpec{
				{
					Role:        RolePatient,
					Description: "function expression to invoke",
					Required:    true,
					Shapes:      []ValueKind{KindExpression, KindPropertyPath},
					SVOPosition: 10, SOVPosition: 10,
				},
			},
		},
		{
			Action:   ActionReturn,
			Category: "control",
			Primary:  RolePatient,
			Roles: []RoleSpec{
				{
					Role:        RolePatient,
					Description: "value returned to the caller",
					Shapes:      []ValueKind{KindExpression, KindReference},
					SVOPosition: 10, SOVPosition: 10,
				},
			},
		},
		{
			Action:   ActionTell,
			Category: "control",
			Primary:  RoleDestination,
			HasBody:  true,
			Roles: []RoleSpec{
				{
					Role:        RoleDestination,
					Description: "elements the body commands address",
					Required:    true,
					Shapes:      []ValueKind{KindSelector, KindReference},
					SVOPosition: 10, SOVPosition: 10,
				},
			},
		},
		{
			Action:   ActionDefault,
			Category: "data",
			Primary:  RoleDestination,
			Roles: []RoleSpec{
				{
					Role:        RoleDestination,
					Description: "variable being defaulted",
					Required:    true,
					Shapes:      []ValueKind{KindExpression, KindPropertyPath},
					SVOPosition: 10, SOVPosition: 10,
				},
				{
					Role:        RolePatient,
					Description: "fallback value",
					Required:    true,
					Shapes:      []ValueKind{KindLiteral, KindExpression},
					SVOPosition: 5, SOVPosition: 5,
					Markers: map[string]string{"en": "to"},
				},
			},
		},
		{Action: ActionInit, Category: "definition", HasBody: true},
		{
			Action:   ActionBehavior,
			Category: "definition",
			Primary:  RolePatient,
			HasBody:  true,
			Roles: []RoleSpec{
				{
					Role:        RolePatient,
					Description: "behavior name",
					Required:    true,
					Shapes:      []ValueKind{KindExpression},
					SVOPosition: 10, SOVPosition: 10,
				},
			},
		},
		{
			Action:   ActionInstall,
			Category: "definition",
			Primary:  RolePatient,
			Roles: []RoleSpec{
				{
					Role:        RolePatient,
					Description: "behavior to install",
					Required:    true,
					Shapes:      []ValueKind{KindExpression},
					SVOPosition: 10, SOVPosition: 10,
				},
			},
		},
		{
			Action:   ActionMeasure,
			Category: "dom",
			Primary:  RolePatient,
			Roles: []RoleSpec{
				{
					Role:        RolePatient,
					Description: "element to measure",
					Shapes:      []ValueKind{KindSelector, KindReference},
					Default:     defaultValue(Reference("me")),
					SVOPosition: 10, SOVPosition: 10,
				},
				{
					Role:        RoleStyle,
					Description: "dimension or property measured",
					Shapes:      []ValueKind{KindExpression},
					SVOPosition: 5, SOVPosition: 5,
				},
			},
		},
		{
			Action:   ActionSwap,
			Category: "dom",
			Primary:  RoleDestination,
			Roles: []RoleSpec{
				{
					Role:        RoleDestination,
					Description: "element whose content is replaced",
					Required:    true,
					Shapes:      []ValueKind{KindSelector, KindReference},
					SVOPosition: 10, SOVPosition: 10,
				},
				{
					Role:        RolePatient,
					Description: "replacement content",
					Required:    true,
					Shapes:      []ValueKind{KindExpression},
					SVOPosition: 5, SOVPosition: 5,
					Markers: map[string]string{"en": "with"},
				},
				{
					Role:        RoleMethod,
					Description: "swap strategy",
					Shapes:      []ValueKind{KindLiteral},
					Default:     defaultValue(Literal("innerHTML")),
					SVOPosition: 3, SOVPosition: 3,
					Markers: map[string]string{"en": "using"},
				},
			},
		},
		{
			Action:   ActionMorph,
			Category: "dom",
			Primary:  RoleDestination,
			Roles: []RoleSpec{
				{
					Role:        RoleDestination,
					Description: "element to morph",
					Required:    true,
					Shapes:      []ValueKind{KindSelector, KindReference},
					SVOPosition: 10, SOVPosition: 10,
				},
				{
					Role:        RolePatient,
					Description: "target structure",
					Required:    true,
					Shapes:      []ValueKind{KindExpression},
					SVOPosition: 5, SOVPosition: 5,
					Markers: map[string]string{"en": "into"},
				},
			},
		},
	}
}
