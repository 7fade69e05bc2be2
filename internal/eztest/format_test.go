package eztest

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultFormatter(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"int", 42, "42"},
		{"float", 1.5, "1.5"},
		{"bool", true, "true"},
		{"string", "hello", "hello"},
		{"nil", nil, "<nil>"},
		{"slice", []int{1, 2, 3}, "{1,2,3}"},
		{"empty slice", []int{}, "{}"},
		{"nil slice", []string(nil), "{}"},
		{"array", [2]string{"a", "b"}, "{a,b}"},
		{"nested", [][]int{{1}, {2, 3}}, "{{1},{2,3}}"},
		{"bytes", []byte("hi"), "{104,105}"},
		{"stringer", 1500 * time.Millisecond, "1.5s"},
		{"error", errors.New("boom"), "boom"},
		{"slice of stringers", []time.Duration{time.Second, time.Minute}, "{1s,1m0s}"},
		{"map", map[string]int{"a": 1}, "map[a:1]"},
		{"struct", struct{ X, Y int }{1, 2}, "{1 2}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DefaultFormatter(tt.value))
		})
	}
}

func TestDefaultFormatter_NormalizesStrings(t *testing.T) {
	decomposed := "cafe\u0301"
	composed := "caf\u00e9"

	assert.NotEqual(t, decomposed, composed)
	assert.Equal(t, composed, DefaultFormatter(decomposed))
	assert.Equal(t, "{"+composed+"}", DefaultFormatter([]string{decomposed}))
}

func TestWithFormatter_OnlyAffectsOutput(t *testing.T) {
	cx, buf, _ := newTestContext(WithFormatter(func(any) string { return "?" }))

	assert.True(t, cx.ExpectEqual(1, 1))
	assert.False(t, cx.ExpectEqual(1, 2))
	assert.Equal(t, "  FAILED [2]: expected ?, got ?\n", buf.String())
}

func TestWithFormatter_NilKeepsDefault(t *testing.T) {
	cx, buf, _ := newTestContext(WithFormatter(nil))

	cx.ExpectEqual([]int{1}, []int{2})
	assert.Equal(t, "  FAILED [1]: expected {2}, got {1}\n", buf.String())
}
