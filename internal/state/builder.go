package state

// BuilderCategory is one section of the payload build wizard.
type BuilderCategory int

const (
	CategoryGeneral BuilderCategory = iota
	CategoryPersistence
	CategoryImpact
	CategoryExfiltration
)

// Categories lists every wizard section in display order.
var Categories = []BuilderCategory{CategoryGeneral, CategoryPersistence, CategoryImpact, CategoryExfiltration}

func (c BuilderCategory) String() string {
	switch c {
	case CategoryGeneral:
		return "GENERAL"
	case CategoryPersistence:
		return "PERSISTENCE"
	case CategoryImpact:
		return "IMPACT"
	case CategoryExfiltration:
		return "EXFILTRATION"
	default:
		return "UNKNOWN"
	}
}

func (c BuilderCategory) Next() BuilderCategory {
	switch c {
	case CategoryGeneral:
		return CategoryPersistence
	case CategoryPersistence:
		return CategoryImpact
	case CategoryImpact:
		return CategoryExfiltration
	default:
		return CategoryGeneral
	}
}

func (c BuilderCategory) Prev() BuilderCategory {
	switch c {
	case CategoryGeneral:
		return CategoryExfiltration
	case CategoryPersistence:
		return CategoryGeneral
	case CategoryImpact:
		return CategoryPersistence
	default:
		return CategoryImpact
	}
}

// BuilderField is the focused element of the wizard.
type BuilderField int

const (
	FieldCategorySelect BuilderField = iota

	FieldURL
	FieldPort
	FieldEnableDebug

	FieldPersistToggle
	FieldPersistRunControl
	FieldPersistService
	FieldPersistCron

	FieldImpactToggle
	FieldImpactEncrypt
	FieldImpactWipe

	FieldExfilToggle
	FieldExfilHTTP
	FieldExfilDNS

	FieldSubmit
)

var fieldLabels = map[BuilderField]string{
	FieldCategorySelect:    "Category",
	FieldURL:               "Target URL",
	FieldPort:              "Target port",
	FieldEnableDebug:       "Debug build",
	FieldPersistToggle:     "Enable persistence",
	FieldPersistRunControl: "Run-control entry",
	FieldPersistService:    "Service unit",
	FieldPersistCron:       "Cron job",
	FieldImpactToggle:      "Enable impact",
	FieldImpactEncrypt:     "Encrypt files",
	FieldImpactWipe:        "Wipe disk",
	FieldExfilToggle:       "Enable exfiltration",
	FieldExfilHTTP:         "Over HTTP",
	FieldExfilDNS:          "Over DNS",
	FieldSubmit:            "Build",
}

func (f BuilderField) String() string {
	if l, ok := fieldLabels[f]; ok {
		return l
	}
	return "?"
}

// IsText reports whether the field is a free-text input.
func (f BuilderField) IsText() bool {
	return f == FieldURL || f == FieldPort
}

const (
	DefaultTargetURL  = "127.0.0.1"
	DefaultTargetPort = "9999"

	BuildIdle      = "IDLE"
	BuildRunning   = "BUILDING..."
	BuildSucceeded = "SUCCESS"
	BuildFailed    = "FAILED"
)

// BuilderState is the wizard's focus plus every value it collects.
type BuilderState struct {
	ActiveCategory BuilderCategory
	SelectedField  BuilderField

	TargetURL   string
	TargetPort  string
	EnableDebug bool

	EnablePersistence bool
	PersistRunControl bool
	PersistService    bool
	PersistCron       bool

	EnableImpact  bool
	ImpactEncrypt bool
	ImpactWipe    bool

	EnableExfil bool
	ExfilHTTP   bool
	ExfilDNS    bool

	BuildStatusMsg string
}

func NewBuilderState() BuilderState {
	return BuilderState{
		ActiveCategory: CategoryGeneral,
		SelectedField:  FieldCategorySelect,

		TargetURL:   DefaultTargetURL,
		TargetPort:  DefaultTargetPort,
		EnableDebug: true,

		EnablePersistence: true,
		PersistRunControl: true,

		EnableImpact:  true,
		ImpactEncrypt: true,

		EnableExfil: true,
		ExfilHTTP:   true,

		BuildStatusMsg: BuildIdle,
	}
}

// flag returns the boolean behind a toggle field, or nil for non-toggles.
func (b *BuilderState) flag(f BuilderField) *bool {
	switch f {
	case FieldEnableDebug:
		return &b.EnableDebug
	case FieldPersistToggle:
		return &b.EnablePersistence
	case FieldPersistRunControl:
		return &b.PersistRunControl
	case FieldPersistService:
		return &b.PersistService
	case FieldPersistCron:
		return &b.PersistCron
	case FieldImpactToggle:
		return &b.EnableImpact
	case FieldImpactEncrypt:
		return &b.ImpactEncrypt
	case FieldImpactWipe:
		return &b.ImpactWipe
	case FieldExfilToggle:
		return &b.EnableExfil
	case FieldExfilHTTP:
		return &b.ExfilHTTP
	case FieldExfilDNS:
		return &b.ExfilDNS
	default:
		return nil
	}
}

// Flag reports the value of a toggle field. ok is false for non-toggles.
func (b *BuilderState) Flag(f BuilderField) (on, ok bool) {
	p := b.flag(f)
	if p == nil {
		return false, false
	}
	return *p, true
}

// Toggle flips the boolean under focus. It returns false when the focused
// field is not a toggle.
func (b *BuilderState) Toggle() bool {
	p := b.flag(b.SelectedField)
	if p == nil {
		return false
	}
	*p = !*p
	b.normalize()
	return true
}

// ToggleCategory flips the enabling switch of the active category. General
// has no switch and is left alone.
func (b *BuilderState) ToggleCategory() bool {
	p := b.flag(categoryToggle[b.ActiveCategory])
	if p == nil {
		return false
	}
	*p = !*p
	b.normalize()
	return true
}

// CategoryEnabled reports whether the category's gated fields are visible.
func (b *BuilderState) CategoryEnabled(c BuilderCategory) bool {
	p := b.flag(categoryToggle[c])
	return p == nil || *p
}

// FocusedInput returns the text buffer under focus, or nil.
func (b *BuilderState) FocusedInput() *string {
	switch b.SelectedField {
	case FieldURL:
		return &b.TargetURL
	case FieldPort:
		return &b.TargetPort
	default:
		return nil
	}
}

// NextCategory switches to the following section and parks focus on its
// category selector.
func (b *BuilderState) NextCategory() {
	b.ActiveCategory = b.ActiveCategory.Next()
	b.SelectedField = FieldCategorySelect
}

func (b *BuilderState) PrevCategory() {
	b.ActiveCategory = b.ActiveCategory.Prev()
	b.SelectedField = FieldCategorySelect
}
