package state

// fieldStep is one row of a category's field sequence. Gated rows are only
// visible while the category's enabling toggle is on.
type fieldStep struct {
	field BuilderField
	gated bool
}

// builderSteps is the adjacency table of the wizard. Each sequence starts at
// CategorySelect and ends at Submit; navigation walks it circularly and
// skips gated rows of a disabled category.
var builderSteps = map[BuilderCategory][]fieldStep{
	CategoryGeneral: {
		{field: FieldCategorySelect},
		{field: FieldURL},
		{field: FieldPort},
		{field: FieldEnableDebug},
		{field: FieldSubmit},
	},
	CategoryPersistence: {
		{field: FieldCategorySelect},
		{field: FieldPersistToggle},
		{field: FieldPersistRunControl, gated: true},
		{field: FieldPersistService, gated: true},
		{field: FieldPersistCron, gated: true},
		{field: FieldSubmit},
	},
	CategoryImpact: {
		{field: FieldCategorySelect},
		{field: FieldImpactToggle, gated: true},
		{field: FieldImpactEncrypt, gated: true},
		{field: FieldImpactWipe, gated: true},
		{field: FieldSubmit},
	},
	CategoryExfiltration: {
		{field: FieldCategorySelect},
		{field: FieldExfilToggle, gated: true},
		{field: FieldExfilHTTP, gated: true},
		{field: FieldExfilDNS, gated: true},
		{field: FieldSubmit},
	},
}

// categoryToggle names the field holding each category's enabling switch.
var categoryToggle = map[BuilderCategory]BuilderField{
	CategoryPersistence:  FieldPersistToggle,
	CategoryImpact:       FieldImpactToggle,
	CategoryExfiltration: FieldExfilToggle,
}

// VisibleFields returns the fields navigation can land on in the active
// category, in order.
func (b *BuilderState) VisibleFields() []BuilderField {
	return visibleFields(b.ActiveCategory, b.CategoryEnabled(b.ActiveCategory))
}

func visibleFields(c BuilderCategory, enabled bool) []BuilderField {
	steps := builderSteps[c]
	out := make([]BuilderField, 0, len(steps))
	for _, s := range steps {
		if s.gated && !enabled {
			continue
		}
		out = append(out, s.field)
	}
	return out
}

// Reachable reports whether f can hold focus in category c when the
// category toggle is enabled (or not).
func Reachable(c BuilderCategory, f BuilderField, enabled bool) bool {
	for _, v := range visibleFields(c, enabled) {
		if v == f {
			return true
		}
	}
	return false
}

// NextBuilderField is the pure forward step of the adjacency table.
func NextBuilderField(c BuilderCategory, f BuilderField, enabled bool) BuilderField {
	return stepField(c, f, enabled, 1)
}

// PrevBuilderField is the pure backward step of the adjacency table.
func PrevBuilderField(c BuilderCategory, f BuilderField, enabled bool) BuilderField {
	return stepField(c, f, enabled, -1)
}

func stepField(c BuilderCategory, f BuilderField, enabled bool, dir int) BuilderField {
	steps := builderSteps[c]
	at := -1
	for i, s := range steps {
		if s.field == f {
			at = i
			break
		}
	}
	if at < 0 {
		return FieldCategorySelect
	}
	n := len(steps)
	for i := 1; i <= n; i++ {
		s := steps[((at+dir*i)%n+n)%n]
		if s.gated && !enabled {
			continue
		}
		return s.field
	}
	return FieldCategorySelect
}

func (b *BuilderState) NextField() {
	b.SelectedField = NextBuilderField(b.ActiveCategory, b.SelectedField, b.CategoryEnabled(b.ActiveCategory))
}

func (b *BuilderState) PrevField() {
	b.SelectedField = PrevBuilderField(b.ActiveCategory, b.SelectedField, b.CategoryEnabled(b.ActiveCategory))
}

// normalize moves focus off a field that the current toggles have hidden,
// onto the nearest visible field before it.
func (b *BuilderState) normalize() {
	enabled := b.CategoryEnabled(b.ActiveCategory)
	if Reachable(b.ActiveCategory, b.SelectedField, enabled) {
		return
	}
	steps := builderSteps[b.ActiveCategory]
	at := -1
	for i, s := range steps {
		if s.field == b.SelectedField {
			at = i
			break
		}
	}
	for i := at - 1; i >= 0; i-- {
		if !steps[i].gated || enabled {
			b.SelectedField = steps[i].field
			return
		}
	}
	b.SelectedField = FieldCategorySelect
}
