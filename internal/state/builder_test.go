package state

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func walk(b *BuilderState, step func(), n int) []BuilderField {
	out := make([]BuilderField, 0, n)
	for i := 0; i < n; i++ {
		step()
		out = append(out, b.SelectedField)
	}
	return out
}

func TestBuilderCategoryCycle(t *testing.T) {
	c := CategoryGeneral
	for _, want := range []BuilderCategory{CategoryPersistence, CategoryImpact, CategoryExfiltration, CategoryGeneral} {
		c = c.Next()
		require.Equal(t, want, c)
	}
	require.Equal(t, CategoryExfiltration, CategoryGeneral.Prev())
}

func TestBuilderGeneralSequence(t *testing.T) {
	b := NewBuilderState()
	got := walk(&b, b.NextField, 5)
	require.Equal(t, []BuilderField{FieldURL, FieldPort, FieldEnableDebug, FieldSubmit, FieldCategorySelect}, got)

	got = walk(&b, b.PrevField, 2)
	require.Equal(t, []BuilderField{FieldSubmit, FieldEnableDebug}, got)
}

func TestBuilderSkipLaw(t *testing.T) {
	tests := []struct {
		name      string
		category  BuilderCategory
		disable   func(b *BuilderState)
		start     BuilderField
		enabled   []BuilderField
		disabled  []BuilderField
		backFrom  BuilderField
		backToOff BuilderField
	}{
		{
			name:      "persistence",
			category:  CategoryPersistence,
			disable:   func(b *BuilderState) { b.EnablePersistence = false },
			start:     FieldPersistToggle,
			enabled:   []BuilderField{FieldPersistRunControl, FieldPersistService, FieldPersistCron, FieldSubmit},
			disabled:  []BuilderField{FieldSubmit},
			backFrom:  FieldSubmit,
			backToOff: FieldPersistToggle,
		},
		{
			name:      "impact",
			category:  CategoryImpact,
			disable:   func(b *BuilderState) { b.EnableImpact = false },
			start:     FieldCategorySelect,
			enabled:   []BuilderField{FieldImpactToggle, FieldImpactEncrypt, FieldImpactWipe, FieldSubmit},
			disabled:  []BuilderField{FieldSubmit},
			backFrom:  FieldSubmit,
			backToOff: FieldCategorySelect,
		},
		{
			name:      "exfiltration",
			category:  CategoryExfiltration,
			disable:   func(b *BuilderState) { b.EnableExfil = false },
			start:     FieldCategorySelect,
			enabled:   []BuilderField{FieldExfilToggle, FieldExfilHTTP, FieldExfilDNS, FieldSubmit},
			disabled:  []BuilderField{FieldSubmit},
			backFrom:  FieldSubmit,
			backToOff: FieldCategorySelect,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuilderState()
			b.ActiveCategory = tt.category
			b.SelectedField = tt.start
			require.Equal(t, tt.enabled, walk(&b, b.NextField, len(tt.enabled)))

			b.SelectedField = tt.start
			tt.disable(&b)
			require.Equal(t, tt.disabled, walk(&b, b.NextField, len(tt.disabled)))

			b.SelectedField = tt.backFrom
			b.PrevField()
			require.Equal(t, tt.backToOff, b.SelectedField)

			b.NextField()
			require.Equal(t, FieldSubmit, b.SelectedField)
			b.NextField()
			require.Equal(t, FieldCategorySelect, b.SelectedField, "submit must loop to the same category's selector")
			require.Equal(t, tt.category, b.ActiveCategory)
		})
	}
}

func TestBuilderNavigationNeverLandsOnHiddenField(t *testing.T) {
	for _, c := range Categories {
		for _, enabled := range []bool{true, false} {
			f := FieldCategorySelect
			for i := 0; i < 12; i++ {
				f = NextBuilderField(c, f, enabled)
				require.True(t, Reachable(c, f, enabled), "%v enabled=%v forward landed on %v", c, enabled, f)
			}
			f = FieldSubmit
			for i := 0; i < 12; i++ {
				f = PrevBuilderField(c, f, enabled)
				require.True(t, Reachable(c, f, enabled), "%v enabled=%v backward landed on %v", c, enabled, f)
			}
		}
	}
}

func TestBuilderForeignFieldResetsToCategorySelect(t *testing.T) {
	require.Equal(t, FieldCategorySelect, NextBuilderField(CategoryGeneral, FieldImpactWipe, true))
	require.Equal(t, FieldCategorySelect, PrevBuilderField(CategoryImpact, FieldURL, true))
}

func TestBuilderToggleHidesFocusedField(t *testing.T) {
	b := NewBuilderState()
	b.ActiveCategory = CategoryPersistence
	b.SelectedField = FieldPersistService
	require.True(t, b.ToggleCategory())
	require.False(t, b.EnablePersistence)
	require.Equal(t, FieldPersistToggle, b.SelectedField)

	b.ActiveCategory = CategoryImpact
	b.SelectedField = FieldImpactToggle
	require.True(t, b.Toggle())
	require.False(t, b.EnableImpact)
	require.Equal(t, FieldCategorySelect, b.SelectedField)

	require.True(t, b.ToggleCategory())
	require.True(t, b.EnableImpact)
	require.Equal(t, FieldCategorySelect, b.SelectedField)
}

func TestBuilderToggleOnlyFlipsBooleans(t *testing.T) {
	b := NewBuilderState()
	b.SelectedField = FieldEnableDebug
	require.True(t, b.Toggle())
	require.False(t, b.EnableDebug)

	b.SelectedField = FieldURL
	require.False(t, b.Toggle())

	b.ActiveCategory = CategoryGeneral
	require.False(t, b.ToggleCategory(), "general has no enabling switch")
}

func TestBuilderCategorySwitchResetsFocus(t *testing.T) {
	b := NewBuilderState()
	b.SelectedField = FieldPort
	b.NextCategory()
	require.Equal(t, CategoryPersistence, b.ActiveCategory)
	require.Equal(t, FieldCategorySelect, b.SelectedField)
	b.PrevCategory()
	b.PrevCategory()
	require.Equal(t, CategoryExfiltration, b.ActiveCategory)
}
