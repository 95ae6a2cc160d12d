package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateDefaults(t *testing.T) {
	p := &Params{}
	p.Validate()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, DefaultLimit, p.Limit)

	p = &Params{Page: 3, Limit: 500}
	p.Validate()
	assert.Equal(t, MaxLimit, p.Limit)
	assert.Equal(t, 200, p.Offset())
}

func TestNewResultFlags(t *testing.T) {
	p := &Params{Page: 1, Limit: 2}
	r := NewResult([]string{"a", "b"}, 5, p)
	assert.False(t, r.IsLastPage)
	assert.False(t, r.IsPreviousPage)

	p = &Params{Page: 3, Limit: 2}
	r = NewResult([]string{"e"}, 5, p)
	assert.True(t, r.IsLastPage)
	assert.True(t, r.IsPreviousPage)
}

func TestEmptyHasNonNilData(t *testing.T) {
	r := Empty[int](Default())
	assert.NotNil(t, r.Data)
	assert.Len(t, r.Data, 0)
	assert.True(t, r.IsLastPage)
	assert.Equal(t, 10, r.Limit)
}

func TestMapKeepsNavigation(t *testing.T) {
	r := NewResult([]int{1, 2}, 4, &Params{Page: 2, Limit: 2})
	m := Map(r, func(i int) string { return string(rune('a' + i)) })
	assert.Equal(t, []string{"b", "c"}, m.Data)
	assert.Equal(t, r.Total, m.Total)
	assert.True(t, m.IsLastPage)
	assert.True(t, m.IsPreviousPage)
}
