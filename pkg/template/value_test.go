package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseValueSpec(t *testing.T) {
	tests := []struct {
		body string
		want ValueSpec
	}{
		{body: "second", want: ValueSpec{Name: "second"}},
		{body: "second#", want: ValueSpec{Name: "second", Hex: true}},
		{body: "second_2", want: ValueSpec{Name: "second", Width: 2}},
		{body: "seconds_since_epoch", want: ValueSpec{Name: "seconds_since_epoch"}},
		{body: "seconds_since_epoch_10", want: ValueSpec{Name: "seconds_since_epoch", Width: 10}},
		{body: "second_0", want: ValueSpec{Name: "second_0"}},
		{body: "second_+2", want: ValueSpec{Name: "second_+2"}},
		{body: "_2", want: ValueSpec{Name: "_2"}},
		{body: "second_64", want: ValueSpec{Name: "second", Width: MaxWidth}},
		{body: "second_65", want: ValueSpec{Name: "second_65"}},
		{body: "second_9223372036854775807", want: ValueSpec{Name: "second_9223372036854775807"}},
	}

	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseValueSpec(tt.body))
		})
	}
}

func TestExtractUnitRefs(t *testing.T) {
	refs := ExtractUnitRefs("!(bold)&(alp)/&(hexalp_2)&(alp)&(second#)$(red)")

	assert.Len(t, refs, 3)
	assert.Equal(t, "&(alp)", refs[0].Token)
	assert.Equal(t, ValueSpec{Name: "hexalp", Width: 2}, refs[1].Spec)
	assert.Equal(t, ValueSpec{Name: "second", Hex: true}, refs[2].Spec)

	assert.Nil(t, ExtractUnitRefs("no tokens here"))
}
