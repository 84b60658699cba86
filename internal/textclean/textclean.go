package textclean

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/rohmanhakim/linkscrub/internal/scrubber"
)

/*
Responsibilities
- Apply the enabled rules of a Profile to plain text, in a fixed order
- Delegate URL tracking removal to the scrubber
- Never fail: every rule maps text to text

Rules that rewrite whole lines (trim, line breaks) run before URL
cleaning, so URL spans seen by the scrubber are already delimited.
*/

// URLCleaner rewrites tracking parameters out of URLs found in text.
type URLCleaner interface {
	CleanURLsInText(text string) string
}

var _ URLCleaner = (*scrubber.Scrubber)(nil)

type Cleaner struct {
	profile Profile
	urls    URLCleaner
}

// NewCleaner binds a profile to a URL cleaner. A nil urls uses the default rule table.
func NewCleaner(profile Profile, urls URLCleaner) *Cleaner {
	if urls == nil {
		urls = scrubber.New(nil, nil)
	}
	return &Cleaner{
		profile: profile,
		urls:    urls,
	}
}

func (c *Cleaner) Profile() Profile {
	return c.profile
}

// Apply runs every enabled rule of the profile over text.
func (c *Cleaner) Apply(text string) string {
	out := text
	for _, id := range ruleOrder {
		if c.profile.Mode(id) == ModeDisabled {
			continue
		}
		out = c.applyRule(id, out)
	}
	return out
}

var (
	multiSpace       = regexp.MustCompile(`  +`)
	trailingSpace    = regexp.MustCompile(` +\n`)
	extraLineBreaks  = regexp.MustCompile(`\n{3,}`)
	anyURL           = regexp.MustCompile(`(?:https?|ftp)://[^\s]+|www\.[^\s]+`)
	repeatedStop     = regexp.MustCompile(`([.!?]){2,}`)
	repeatedPause    = regexp.MustCompile(`([,;:]){2,}`)
	repeatedHyphen   = regexp.MustCompile(`-{3,}`)
	smartQuotes      = strings.NewReplacer("“", `"`, "”", `"`, "‘", "'", "’", "'")
	lineBreakNewline = strings.NewReplacer("\r\n", "\n", "\r", "\n")
)

func (c *Cleaner) applyRule(id RuleID, s string) string {
	switch id {
	case RuleRemoveEmojis:
		return strings.Map(dropRune(isEmoji), s)
	case RuleCustomReplacements:
		for _, r := range c.profile.replacements {
			if r.Find == "" {
				continue
			}
			s = strings.ReplaceAll(s, r.Find, r.Replace)
		}
		return s
	case RuleRemoveZeroWidth:
		return strings.Map(dropRune(isInvisible), s)
	case RuleReplaceDashes:
		return strings.NewReplacer("—", c.profile.dashReplacement, "–", c.profile.dashReplacement).Replace(s)
	case RuleConvertSmartQuotes:
		return smartQuotes.Replace(s)
	case RuleNormalizeSpaces:
		return multiSpace.ReplaceAllString(s, " ")
	case RuleNormalizeLineBreaks:
		return lineBreakNewline.Replace(s)
	case RuleRemoveTrailingSpaces:
		return trailingSpace.ReplaceAllString(s, "\n")
	case RuleRemoveExtraLineBreaks:
		return extraLineBreaks.ReplaceAllString(s, "\n\n")
	case RuleTrimLines:
		lines := strings.Split(s, "\n")
		for i, line := range lines {
			lines[i] = strings.TrimFunc(line, isHorizontalSpace)
		}
		return strings.Join(lines, "\n")
	case RuleCleanURLTracking:
		return c.urls.CleanURLsInText(s)
	case RuleRemoveURLs:
		return anyURL.ReplaceAllString(s, "")
	case RuleRemoveHTMLTags:
		return stripHTML(s)
	case RuleRemoveExtraPunctuation:
		s = repeatedStop.ReplaceAllString(s, "$1")
		s = repeatedPause.ReplaceAllString(s, "$1")
		return repeatedHyphen.ReplaceAllString(s, "---")
	}
	return s
}

func dropRune(drop func(rune) bool) func(rune) rune {
	return func(r rune) rune {
		if drop(r) {
			return -1
		}
		return r
	}
}

func isEmoji(r rune) bool {
	switch {
	case r >= 0x1F000 && r <= 0x1FAFF:
		return true
	case r >= 0x2600 && r <= 0x27BF:
		return true
	case r == 0xFE0F, r == 0x20E3:
		return true
	}
	return false
}

func isInvisible(r rune) bool {
	switch {
	case r >= 0x200B && r <= 0x200D:
		return true
	case r >= 0x2060 && r <= 0x2064:
		return true
	case r >= 0xFE00 && r <= 0xFE0F:
		return true
	case r == 0xFEFF, r == 0x180E, r == 0x034F, r == 0x00AD:
		return true
	}
	return false
}

func isHorizontalSpace(r rune) bool {
	return r == '\t' || unicode.Is(unicode.Zs, r)
}
