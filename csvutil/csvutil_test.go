package csvutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{"plain", "a,b,c", []string{"a", "b", "c"}},
		{"quoted comma", `a,"b,c",d`, []string{"a", "b,c", "d"}},
		{"single field", "hello", []string{"hello"}},
		{"empty line", "", []string{""}},
		{"trailing comma", "a,b,", []string{"a", "b", ""}},
		{"whitespace trimmed", " a , b ,c ", []string{"a", "b", "c"}},
		{"fully quoted field", `"New York, NY",10001`, []string{"New York, NY", "10001"}},
		{"unterminated quote", `a,"b,c`, []string{"a", "b,c"}},
		{"quote mid-field", `a"b,c"d,e`, []string{"ab,cd", "e"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLine(tt.line))
		})
	}
}
