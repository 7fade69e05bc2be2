package eztest

import (
	"fmt"
	"reflect"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Formatter renders a value for a FAILED diagnostic line.
// It only affects output, never comparison.
type Formatter func(v any) string

// DefaultFormatter renders slices and arrays, []byte included, as {a,b,c}
// (recursively) and everything else with fmt.Sprint. Strings are
// NFC-normalized so that canonically equivalent text renders the same.
func DefaultFormatter(v any) string {
	var b strings.Builder
	writeValue(&b, v)
	return b.String()
}

func writeValue(b *strings.Builder, v any) {
	if v == nil {
		b.WriteString("<nil>")
		return
	}

	// Types with their own String/Error keep it, including named slices.
	switch x := v.(type) {
	case string:
		b.WriteString(norm.NFC.String(x))
		return
	case fmt.Stringer, error:
		b.WriteString(norm.NFC.String(fmt.Sprint(x)))
		return
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			b.WriteString("{}")
			return
		}
		b.WriteByte('{')
		for i := 0; i < rv.Len(); i++ {
			if i > 0 {
				b.WriteByte(',')
			}
			writeValue(b, rv.Index(i).Interface())
		}
		b.WriteByte('}')
	default:
		b.WriteString(norm.NFC.String(fmt.Sprint(v)))
	}
}
