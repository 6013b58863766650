// Package studio implements the screen sequencer that takes a photo from
// capture through generation to save, share and checkout.
package studio

// Step is one screen of the studio flow.
type Step string

const (
	StepHome              Step = "HOME"
	StepCommunity         Step = "COMMUNITY"
	StepStudio            Step = "STUDIO"
	StepLogin             Step = "LOGIN"
	StepSignup            Step = "SIGNUP"
	StepUpload            Step = "UPLOAD"
	StepCategorySelect    Step = "CATEGORY_SELECT"
	StepSubcategorySelect Step = "SUBCATEGORY_SELECT"
	StepCustomPrompt      Step = "CUSTOM_PROMPT"
	StepProcessing        Step = "PROCESSING"
	StepResult            Step = "RESULT"
	StepGallery           Step = "GALLERY"
	StepProfile           Step = "PROFILE"
	StepViewProfile       Step = "VIEW_PROFILE"
	StepCheckout          Step = "CHECKOUT"
)

// IsValid reports whether s is a known step.
func (s Step) IsValid() bool {
	_, ok := views[s]

	return ok
}

// Action names a client operation offered on a screen.
type Action string

const (
	ActionNavigate          Action = "navigate"
	ActionBack              Action = "back"
	ActionLogin             Action = "login"
	ActionSignup            Action = "signup"
	ActionUpload            Action = "upload"
	ActionSelectCategory    Action = "select_category"
	ActionSelectSubcategory Action = "select_subcategory"
	ActionSetPrompt         Action = "set_prompt"
	ActionSetStyle          Action = "set_style"
	ActionProcess           Action = "process"
	ActionTransform         Action = "transform"
	ActionEditDraft         Action = "edit_draft"
	ActionRender            Action = "render"
	ActionSave              Action = "save"
	ActionCheckout          Action = "checkout"
	ActionWatchOrder        Action = "watch_order"
	ActionLike              Action = "like"
	ActionEdit              Action = "edit"
	ActionUpdateProfile     Action = "update_profile"
)

// View describes how a client should present a step.
type View struct {
	Step         Step     `json:"step"`
	Title        string   `json:"title"`
	RequiresAuth bool     `json:"requires_auth"`
	Busy         bool     `json:"busy"`
	Messages     []string `json:"messages,omitempty"`
	Actions      []Action `json:"actions"`
}

//nolint:gochecknoglobals
var views = map[Step]View{
	StepHome: {
		Title:   "For The Cos",
		Actions: []Action{ActionNavigate, ActionLogin, ActionSignup},
	},
	StepCommunity: {
		Title:   "Nexus",
		Actions: []Action{ActionNavigate, ActionBack, ActionLike},
	},
	StepStudio: {
		Title:   "Studio",
		Actions: []Action{ActionNavigate, ActionUpload},
	},
	StepLogin: {
		Title:   "Sign In",
		Actions: []Action{ActionLogin, ActionBack},
	},
	StepSignup: {
		Title:   "Create Account",
		Actions: []Action{ActionSignup, ActionBack},
	},
	StepUpload: {
		Title:   "Capture",
		Actions: []Action{ActionUpload, ActionBack},
	},
	StepCategorySelect: {
		Title:   "Choose a Universe",
		Actions: []Action{ActionSelectCategory, ActionBack},
	},
	StepSubcategorySelect: {
		Title:   "Choose a Setting",
		Actions: []Action{ActionSelectSubcategory, ActionSetStyle, ActionProcess, ActionBack},
	},
	StepCustomPrompt: {
		Title:   "Describe Your Scene",
		Actions: []Action{ActionSetPrompt, ActionSetStyle, ActionProcess, ActionBack},
	},
	StepProcessing: {
		Title: "Processing",
		Busy:  true,
		Messages: []string{
			"Mapping your silhouette",
			"Building the world around you",
			"Matching light and shadow",
			"Adding the final polish",
		},
	},
	StepResult: {
		Title:   "Result",
		Actions: []Action{ActionTransform, ActionEditDraft, ActionRender, ActionSave, ActionCheckout, ActionBack},
	},
	StepGallery: {
		Title:        "Gallery",
		RequiresAuth: true,
		Actions:      []Action{ActionEdit, ActionLike, ActionNavigate, ActionBack},
	},
	StepProfile: {
		Title:        "Profile",
		RequiresAuth: true,
		Actions:      []Action{ActionUpdateProfile, ActionNavigate, ActionBack},
	},
	StepViewProfile: {
		Title:   "Creator",
		Actions: []Action{ActionLike, ActionNavigate, ActionBack},
	},
	StepCheckout: {
		Title:        "Checkout",
		RequiresAuth: true,
		Actions:      []Action{ActionWatchOrder, ActionBack},
	},
}

// ViewFor returns the view descriptor registered for the step.
func ViewFor(step Step) View {
	v, ok := views[step]
	if !ok {
		v = views[StepHome]
		step = StepHome
	}
	v.Step = step
	v.Actions = append([]Action(nil), v.Actions...)
	v.Messages = append([]string(nil), v.Messages...)

	return v
}

// parents is the deterministic back-navigation map. Steps that depend on
// sign-in state are resolved in Session.Back.
//
//nolint:gochecknoglobals
var parents = map[Step]Step{
	StepCategorySelect:    StepStudio,
	StepSubcategorySelect: StepCategorySelect,
	StepCustomPrompt:      StepCategorySelect,
	StepResult:            StepSubcategorySelect,
	StepCheckout:          StepResult,
	StepLogin:             StepHome,
	StepSignup:            StepHome,
	StepUpload:            StepStudio,
}
