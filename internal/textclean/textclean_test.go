package textclean_test

import (
	"strings"
	"testing"

	"github.com/rohmanhakim/linkscrub/internal/textclean"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func only(id textclean.RuleID) textclean.Profile {
	return textclean.NewProfile("only").WithRule(id, textclean.ModeHotkey)
}

func TestApply_SingleRule(t *testing.T) {
	tests := []struct {
		name    string
		profile textclean.Profile
		input   string
		want    string
	}{
		{"emojis", only(textclean.RuleRemoveEmojis), "ship it 🚀 now ✅", "ship it  now "},
		{
			"custom replacements",
			only(textclean.RuleCustomReplacements).WithReplacements(
				textclean.Replacement{Find: "foo", Replace: "bar"},
				textclean.Replacement{Find: "", Replace: "ignored"},
			),
			"foo food",
			"bar bard",
		},
		{"zero width", only(textclean.RuleRemoveZeroWidth), "a\u200bb\u00adc\ufeff\u2063", "abc"},
		{"dashes", only(textclean.RuleReplaceDashes), "a—b–c", "a, b, c"},
		{
			"dashes custom replacement",
			only(textclean.RuleReplaceDashes).WithDashReplacement(" - "),
			"a—b",
			"a - b",
		},
		{"smart quotes", only(textclean.RuleConvertSmartQuotes), "“hi” ‘yo’", `"hi" 'yo'`},
		{"spaces", only(textclean.RuleNormalizeSpaces), "a   b  c d", "a b c d"},
		{"line breaks", only(textclean.RuleNormalizeLineBreaks), "a\r\nb\rc", "a\nb\nc"},
		{"trailing spaces", only(textclean.RuleRemoveTrailingSpaces), "a  \nb \n", "a\nb\n"},
		{"extra line breaks", only(textclean.RuleRemoveExtraLineBreaks), "a\n\n\n\nb\n\nc", "a\n\nb\n\nc"},
		{"trim lines", only(textclean.RuleTrimLines), "  a \n\tb\t", "a\nb"},
		{
			"url tracking",
			only(textclean.RuleCleanURLTracking),
			"see https://example.com/?utm_source=x ok",
			"see https://example.com/ ok",
		},
		{
			"remove urls",
			only(textclean.RuleRemoveURLs),
			"go https://a.com/x and www.b.com now",
			"go  and  now",
		},
		{"html fragment", only(textclean.RuleRemoveHTMLTags), "<p>Hello <b>world</b></p>", "Hello world"},
		{"html entity", only(textclean.RuleRemoveHTMLTags), "Tom &amp; Jerry", "Tom  Jerry"},
		{"html lone angle", only(textclean.RuleRemoveHTMLTags), "a < b", "a < b"},
		{
			"html keeps query ampersands",
			only(textclean.RuleRemoveHTMLTags),
			"https://x.com/?a=1&copy=2",
			"https://x.com/?a=1&copy=2",
		},
		{
			"html document",
			only(textclean.RuleRemoveHTMLTags),
			"<html><body><p>Hi</p><script>x()</script></body></html>",
			"Hi",
		},
		{
			"punctuation",
			only(textclean.RuleRemoveExtraPunctuation),
			"Wait!!! What?? ok,, a----b",
			"Wait! What? ok, a---b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := textclean.NewCleaner(tt.profile, nil)
			assert.Equal(t, tt.want, c.Apply(tt.input))
		})
	}
}

func TestApply_DefaultProfile(t *testing.T) {
	input := "  “Check” this https://www.youtube.com/watch?v=abc&feature=share&utm_source=x  \r\n\r\n\r\n\r\nDone!!!  "

	c := textclean.NewCleaner(textclean.DefaultProfile(), nil)

	assert.Equal(t, "\"Check\" this https://www.youtube.com/watch?v=abc\n\nDone!", c.Apply(input))
}

func TestApply_NothingEnabledIsIdentity(t *testing.T) {
	input := "  “as is” https://example.com/?utm_source=x  \r\n"

	c := textclean.NewCleaner(textclean.NewProfile("empty"), nil)

	assert.Equal(t, input, c.Apply(input))
}

type upperURLs struct {
	calls int
}

func (u *upperURLs) CleanURLsInText(text string) string {
	u.calls++
	return strings.ToUpper(text)
}

func TestApply_DelegatesURLCleaning(t *testing.T) {
	stub := &upperURLs{}
	c := textclean.NewCleaner(only(textclean.RuleCleanURLTracking), stub)

	assert.Equal(t, "ABC", c.Apply("abc"))
	assert.Equal(t, 1, stub.calls)
}

func TestDefaultProfile(t *testing.T) {
	p := textclean.DefaultProfile()

	assert.Equal(t, "default", p.Name())
	assert.Equal(t, textclean.ModeDisabled, p.Mode(textclean.RuleRemoveEmojis))
	assert.Equal(t, textclean.ModeDisabled, p.Mode(textclean.RuleRemoveURLs))
	assert.Equal(t, textclean.ModeHotkey, p.Mode(textclean.RuleCleanURLTracking))
	assert.Equal(t, ", ", p.DashReplacement())
	assert.Len(t, p.Enabled(), len(textclean.Rules())-2)
}

func TestProfile_ForMode(t *testing.T) {
	p := textclean.DefaultProfile().WithRule(textclean.RuleCleanURLTracking, textclean.ModeAuto)

	auto := p.ForMode(textclean.ModeAuto)
	assert.Equal(t, []textclean.RuleID{textclean.RuleCleanURLTracking}, auto.Enabled())

	hotkey := p.ForMode(textclean.ModeHotkey)
	assert.Equal(t, p.Enabled(), hotkey.Enabled())

	assert.Empty(t, textclean.DefaultProfile().ForMode(textclean.ModeAuto).Enabled())
}

func TestProfile_WithIsCopy(t *testing.T) {
	base := textclean.NewProfile("base")
	next := base.
		WithRule(textclean.RuleTrimLines, textclean.ModeAuto).
		WithReplacements(textclean.Replacement{Find: "a", Replace: "b"}).
		WithDashReplacement("-").
		WithName("next")

	assert.Equal(t, "base", base.Name())
	assert.Equal(t, textclean.ModeDisabled, base.Mode(textclean.RuleTrimLines))
	assert.Empty(t, base.Replacements())
	assert.Equal(t, ", ", base.DashReplacement())

	assert.Equal(t, textclean.ModeAuto, next.Mode(textclean.RuleTrimLines))
	assert.Len(t, next.Replacements(), 1)
	assert.Equal(t, "-", next.DashReplacement())
	assert.Equal(t, "next", next.Name())
}

func TestMode_AppliesOn(t *testing.T) {
	tests := []struct {
		mode    textclean.Mode
		trigger textclean.Mode
		want    bool
	}{
		{textclean.ModeHotkey, textclean.ModeHotkey, true},
		{textclean.ModeAuto, textclean.ModeHotkey, true},
		{textclean.ModeDisabled, textclean.ModeHotkey, false},
		{textclean.ModeHotkey, textclean.ModeAuto, false},
		{textclean.ModeAuto, textclean.ModeAuto, true},
		{textclean.ModeAuto, textclean.ModeDisabled, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode)+"_on_"+string(tt.trigger), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.mode.AppliesOn(tt.trigger))
		})
	}
}

func TestParse(t *testing.T) {
	for _, id := range textclean.Rules() {
		got, ok := textclean.ParseRuleID(string(id))
		require.True(t, ok, id)
		assert.Equal(t, id, got)
	}
	_, ok := textclean.ParseRuleID("remove_formatting")
	assert.False(t, ok)

	m, ok := textclean.ParseMode("auto")
	require.True(t, ok)
	assert.Equal(t, textclean.ModeAuto, m)
	_, ok = textclean.ParseMode("always")
	assert.False(t, ok)
}
