package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyDeterministic(t *testing.T) {
	week := 5
	a := Key("schedules", 2025, &week, "KC")
	b := Key("schedules", 2025, &week, "KC")

	assert.Equal(t, a, b)
	assert.Equal(t, "schedules:2025:5:KC", a)
}

func TestKeyAbsentFiltersSerializeAsNone(t *testing.T) {
	tests := []struct {
		name     string
		filters  []interface{}
		expected string
	}{
		{"nil int pointer", []interface{}{2025, (*int)(nil), "KC"}, "schedules:2025:none:KC"},
		{"untyped nil", []interface{}{nil}, "schedules:none"},
		{"no filters", nil, "schedules"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Key("schedules", tt.filters...))
		})
	}
}

func TestKeyOmittedFilterDistinctFromValue(t *testing.T) {
	week := 0
	withWeek := Key("schedules", 2025, &week, "KC")
	withoutWeek := Key("schedules", 2025, (*int)(nil), "KC")

	assert.NotEqual(t, withWeek, withoutWeek)
}

func TestKeyEmptyStringDistinctFromAbsent(t *testing.T) {
	empty := Key("injuries", 2025, "")
	absent := Key("injuries", 2025, nil)

	assert.NotEqual(t, empty, absent)
	assert.Equal(t, "injuries:2025:", empty)
	assert.Equal(t, "injuries:2025:none", absent)
}

func TestStaticKeys(t *testing.T) {
	assert.Equal(t, "teams:all", TeamsKey())
	assert.Equal(t, "inventory:all", InventoryKey())
}
