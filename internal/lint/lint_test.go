package lint

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/popwire/pkg/popup"
)

func fields(findings []Finding) []string {
	out := make([]string, 0, len(findings))
	for _, f := range findings {
		out = append(out, f.Rule+":"+f.Field+":"+f.Severity.String())
	}
	return out
}

func TestRun_CleanOptions(t *testing.T) {
	opts := popup.Options{
		Title:            "Are you sure?",
		Icon:             popup.IconWarning,
		ShowCancelButton: popup.Bool(true),
	}

	assert.Empty(t, Run(opts, DefaultRules()))
	assert.Empty(t, Run(popup.New(), DefaultRules()))
}

func TestRules(t *testing.T) {
	tests := []struct {
		name string
		opts popup.Options
		want []string
	}{
		{
			name: "options without select",
			opts: popup.Options{Input: popup.InputText, InputOptions: popup.NewChoices([2]string{"a", "A"})},
			want: []string{"input:inputOptions:warn"},
		},
		{
			name: "select without options",
			opts: popup.Options{Input: popup.InputSelect},
			want: []string{"input:inputOptions:warn"},
		},
		{
			name: "input settings without input",
			opts: popup.Options{InputPlaceholder: "name", InputAttributes: map[string]string{"maxlength": "10"}},
			want: []string{"input:inputAttributes:warn", "input:inputPlaceholder:warn"},
		},
		{
			name: "text and html",
			opts: popup.Options{Text: "T", HTML: "<b>H</b>"},
			want: []string{"content:html:warn"},
		},
		{
			name: "two focus flags",
			opts: popup.Options{FocusConfirm: popup.Bool(true), FocusCancel: popup.Bool(true), ShowCancelButton: popup.Bool(true)},
			want: []string{"focus:focusCancel:warn"},
		},
		{
			name: "focus false is fine",
			opts: popup.Options{FocusConfirm: popup.Bool(true), FocusCancel: popup.Bool(false)},
		},
		{
			name: "current step is an index",
			opts: popup.Options{ProgressSteps: []string{"Account", "Payment", "Done"}, CurrentProgressStep: "1"},
		},
		{
			name: "current step is the first index",
			opts: popup.Options{ProgressSteps: []string{"Account", "Payment"}, CurrentProgressStep: "0"},
		},
		{
			name: "current step past the last index",
			opts: popup.Options{ProgressSteps: []string{"Account", "Payment"}, CurrentProgressStep: "2"},
			want: []string{"progress:currentProgressStep:fail"},
		},
		{
			name: "current step negative",
			opts: popup.Options{ProgressSteps: []string{"Account", "Payment"}, CurrentProgressStep: "-1"},
			want: []string{"progress:currentProgressStep:fail"},
		},
		{
			name: "current step given as a label",
			opts: popup.Options{ProgressSteps: []string{"Account", "Payment", "Done"}, CurrentProgressStep: "Payment"},
			want: []string{"progress:currentProgressStep:fail"},
		},
		{
			name: "current step without steps",
			opts: popup.Options{CurrentProgressStep: "1"},
			want: []string{"progress:currentProgressStep:warn"},
		},
		{
			name: "progress bar without timer",
			opts: popup.Options{TimerProgressBar: popup.Bool(true)},
			want: []string{"timer:timerProgressBar:warn"},
		},
		{
			name: "zero timer",
			opts: popup.Options{Timer: popup.Duration(0)},
			want: []string{"timer:timer:fail"},
		},
		{
			name: "image size without url",
			opts: popup.Options{ImageWidth: popup.Float(100), ImageAlt: "logo"},
			want: []string{"image:imageAlt:warn", "image:imageWidth:warn"},
		},
		{
			name: "grow on toast",
			opts: popup.Options{Toast: popup.Bool(true), Grow: popup.GrowRow, Backdrop: popup.Bool(true)},
			want: []string{"toast:backdrop:warn", "toast:grow:warn"},
		},
		{
			name: "cannot be closed",
			opts: popup.Options{
				ShowConfirmButton: popup.Bool(false),
				AllowOutsideClick: popup.Bool(false),
				AllowEscapeKey:    popup.Bool(false),
			},
			want: []string{"close:showConfirmButton:fail"},
		},
		{
			name: "closed by timer",
			opts: popup.Options{
				ShowConfirmButton: popup.Bool(false),
				AllowOutsideClick: popup.Bool(false),
				AllowEscapeKey:    popup.Bool(false),
				Timer:             popup.Duration(2 * time.Second),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fields(Run(tt.opts, DefaultRules()))
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRun_DoesNotModifyOptions(t *testing.T) {
	opts := popup.Options{
		Text:          "T",
		HTML:          "H",
		Input:         popup.InputText,
		InputOptions:  popup.NewChoices([2]string{"a", "A"}),
		ProgressSteps: []string{"1"},
	}
	before, err := json.Marshal(popup.Project(opts))
	require.NoError(t, err)

	Run(opts, DefaultRules())

	after, err := json.Marshal(popup.Project(opts))
	require.NoError(t, err)
	assert.JSONEq(t, string(before), string(after))
}

func TestSummary(t *testing.T) {
	findings := []Finding{
		{Severity: SeverityWarn},
		{Severity: SeverityFail},
		{Severity: SeverityWarn},
	}

	warned, failed := Summary(findings)
	assert.Equal(t, 2, warned)
	assert.Equal(t, 1, failed)
}

func TestFinding_JSON(t *testing.T) {
	out, err := json.Marshal(Finding{Rule: "timer", Field: "timer", Severity: SeverityFail, Message: "bad"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"rule":"timer","field":"timer","severity":"fail","message":"bad"}`, string(out))
}
