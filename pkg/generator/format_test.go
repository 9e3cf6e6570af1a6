package generator_test

import (
	"strings"
	"testing"

	"bindgen/pkg/generator"
	"github.com/stretchr/testify/assert"
)

func TestFormatCode(t *testing.T) {
	tests := []struct {
		name   string
		code   string
		indent string
		want   string
	}{
		{
			name:   "strips common leading whitespace and reindents",
			code:   "    if (x) {\n        y();\n    }",
			indent: "\t",
			want:   "\tif (x) {\n\t    y();\n\t}\n",
		},
		{
			name:   "blank lines become bare terminators",
			code:   "  a();\n   \n  b();",
			indent: "  ",
			want:   "  a();\n\n  b();\n",
		},
		{
			name:   "lines with less leading whitespace keep their content",
			code:   "        deep();\nshallow();",
			indent: "",
			want:   "deep();\nshallow();\n",
		},
		{
			name:   "trailing whitespace is dropped",
			code:   "x();   ",
			indent: "",
			want:   "x();\n",
		},
		{
			name:   "leading blank line measures from the first non-blank line",
			code:   "\n  x();\n  y();",
			indent: "",
			want:   "\nx();\ny();\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf strings.Builder
			generator.FormatCode(&buf, tt.code, tt.indent)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestFormatCodeIdempotent(t *testing.T) {
	code := "    if (x) {\n        y();\n\n    }"
	indent := "  "

	var first strings.Builder
	generator.FormatCode(&first, code, indent)

	// strip the added indent back out and reformat
	var stripped []string
	for _, line := range strings.Split(strings.TrimSuffix(first.String(), "\n"), "\n") {
		stripped = append(stripped, strings.TrimPrefix(line, indent))
	}

	var second strings.Builder
	generator.FormatCode(&second, strings.Join(stripped, "\n"), indent)
	assert.Equal(t, first.String(), second.String())
}

func TestNameStyles(t *testing.T) {
	assert.Equal(t, "FooBarBaz", generator.BigCamelStyle.Format("foo_bar_baz"))
	assert.Equal(t, "Foo", generator.BigCamelStyle.Format("foo"))

	assert.Equal(t, "foo_bar", generator.SnakeStyle.Format("FooBar"))
	assert.Equal(t, "widget", generator.SnakeStyle.Format("Widget"))
	assert.Equal(t, "qwidget_item", generator.SnakeStyle.Format("QWidgetItem"))
}
