package tmpl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name    string
		tmpl    string
		data    any
		want    string
		wantErr bool
	}{
		{
			name: "simple substitution",
			tmpl: "hello {{ .Name }}",
			data: map[string]string{"Name": "world"},
			want: "hello world",
		},
		{
			name: "multiple variables",
			tmpl: "title: {{ .Title }}\nconfirmButtonText: {{ .Confirm }}",
			data: map[string]string{
				"Title":   "Delete?",
				"Confirm": "Yes",
			},
			want: "title: Delete?\nconfirmButtonText: Yes",
		},
		{
			name: "struct data",
			tmpl: "{{ .Name }} at {{ .Path }}",
			data: struct {
				Name string
				Path string
			}{Name: "test", Path: "/tmp"},
			want: "test at /tmp",
		},
		{
			name: "no variables",
			tmpl: "static string",
			data: nil,
			want: "static string",
		},
		{
			name:    "missing key errors",
			tmpl:    "{{ .Missing }}",
			data:    map[string]string{"Name": "test"},
			wantErr: true,
		},
		{
			name:    "invalid template syntax",
			tmpl:    "{{ .Name }",
			data:    map[string]string{"Name": "test"},
			wantErr: true,
		},
		{
			name: "empty value is valid",
			tmpl: "prefix{{ .Name }}suffix",
			data: map[string]string{"Name": ""},
			want: "prefixsuffix",
		},
		{
			name: "quote with spaces",
			tmpl: "title: {{ .Title | quote }}",
			data: map[string]string{"Title": "hello world"},
			want: `title: "hello world"`,
		},
		{
			name: "quote with yaml indicators",
			tmpl: "text: {{ .Text | quote }}",
			data: map[string]string{"Text": `key: "value" # not a comment`},
			want: `text: "key: \"value\" # not a comment"`,
		},
		{
			name: "quote with empty string",
			tmpl: "text: {{ .Text | quote }}",
			data: map[string]string{"Text": ""},
			want: `text: ""`,
		},
		{
			name: "quote escapes html for json",
			tmpl: "{{ .HTML | quote }}",
			data: map[string]string{"HTML": "<b>hi</b>"},
			want: `"\u003cb\u003ehi\u003c/b\u003e"`,
		},
		{
			name: "default on empty value",
			tmpl: `{{ .Color | default "#3085d6" }}`,
			data: map[string]string{"Color": ""},
			want: "#3085d6",
		},
		{
			name: "default keeps set value",
			tmpl: `{{ .Color | default "#3085d6" }}`,
			data: map[string]string{"Color": "#d33"},
			want: "#d33",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(tt.tmpl, tt.data)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
