package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		id     string
		want   string
		wantOK bool
	}{
		{id: "classic", want: "classic", wantOK: true},
		{id: "modern", want: "modern", wantOK: true},
		{id: " Executive ", want: "executive", wantOK: true},
		{id: "", want: DefaultTemplateID, wantOK: false},
		{id: "does-not-exist", want: DefaultTemplateID, wantOK: false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.id, func(t *testing.T) {
			got, ok := Lookup(tt.id)
			assert.Equal(t, tt.want, got.ID)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestTemplatesReturnsCopy(t *testing.T) {
	list := Templates()
	assert.Len(t, list, 4)
	list[0].ID = "mutated"

	fresh := Templates()
	assert.Equal(t, "classic", fresh[0].ID)
	assert.True(t, fresh[0].Default)
	assert.Equal(t, TierFree, fresh[0].Tier)

	defaults := 0
	for _, tpl := range fresh {
		if tpl.Default {
			defaults++
		}
	}
	assert.Equal(t, 1, defaults)
}
