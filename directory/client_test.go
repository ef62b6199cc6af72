package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeUPN(t *testing.T) {
	const suffix = "newlywedsfoods.co.th"

	cases := []struct {
		in   string
		want string
	}{
		{"somchai", "somchai@newlywedsfoods.co.th"},
		{"somchai@newlywedsfoods.co.th", "somchai@newlywedsfoods.co.th"},
		{"somchai@NEWLYWEDSFOODS.CO.TH", "somchai@NEWLYWEDSFOODS.CO.TH"},
		{"somchai@gmail.com", "somchai@newlywedsfoods.co.th"},
		{"  somchai ", "somchai@newlywedsfoods.co.th"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizeUPN(tc.in, suffix), "input %q", tc.in)
	}
}

func TestNormalizeUPNBareAndQualifiedAgree(t *testing.T) {
	const suffix = "newlywedsfoods.co.th"
	assert.Equal(t,
		NormalizeUPN("preeda", suffix),
		NormalizeUPN("preeda@newlywedsfoods.co.th", suffix))
}
