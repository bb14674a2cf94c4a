// Package money parses and formats decimal currency amounts and fixed-width
// numeric identifiers (UPC).
package money

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"

	"InventoryManagement/internal/errs"
)

// Locale describes how a currency amount is written for one language/region.
type Locale struct {
	Tag         language.Tag
	Symbol      string
	SymbolAfter bool
	Group       string
	Decimal     string
	Fraction    int32
}

// supported holds the locales a Codec can be built for. The first entry is
// the fallback when nothing matches.
var supported = []Locale{
	{Tag: language.AmericanEnglish, Symbol: "$", Group: ",", Decimal: ".", Fraction: 2},
	{Tag: language.BritishEnglish, Symbol: "£", Group: ",", Decimal: ".", Fraction: 2},
	{Tag: language.MustParse("en-CA"), Symbol: "$", Group: ",", Decimal: ".", Fraction: 2},
	{Tag: language.MustParse("de-DE"), Symbol: "€", SymbolAfter: true, Group: ".", Decimal: ",", Fraction: 2},
	{Tag: language.MustParse("fr-FR"), Symbol: "€", SymbolAfter: true, Group: " ", Decimal: ",", Fraction: 2},
	{Tag: language.Japanese, Symbol: "¥", Group: ",", Decimal: ".", Fraction: 0},
}

var matcher = func() language.Matcher {
	tags := make([]language.Tag, 0, len(supported))
	for _, l := range supported {
		tags = append(tags, l.Tag)
	}
	return language.NewMatcher(tags)
}()

// Codec parses and formats money for a single locale. A Codec is immutable
// and safe for concurrent use.
type Codec struct {
	loc       Locale
	plainRe   *regexp.Regexp
	groupedRe *regexp.Regexp
}

// NewCodec builds a Codec for the closest supported match of a BCP 47 tag
// such as "en-US" or "de". Unknown regions fall back to en-US.
func NewCodec(locale string) (*Codec, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, errs.Validation("unknown locale %q", locale)
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No || idx < 0 || idx >= len(supported) {
		idx = 0
	}
	return NewCodecFor(supported[idx]), nil
}

// NewCodecFor builds a Codec for an explicit Locale.
func NewCodecFor(loc Locale) *Codec {
	g := regexp.QuoteMeta(loc.Group)
	d := regexp.QuoteMeta(loc.Decimal)
	return &Codec{
		loc:       loc,
		plainRe:   regexp.MustCompile(`^[+-]?(\d+(` + d + `\d*)?|` + d + `\d+)$`),
		groupedRe: regexp.MustCompile(`^[+-]?\d{1,3}(` + g + `\d{3})*(` + d + `\d*)?$`),
	}
}

// Default returns an en-US codec.
func Default() *Codec {
	return NewCodecFor(supported[0])
}

// Locale returns the locale the codec formats for.
func (c *Codec) Locale() Locale {
	return c.loc
}

// Parse converts user-entered text into an exact decimal. Empty text is zero.
// Currency format is tried first, then plain digits, then digit-grouped.
func (c *Codec) Parse(text string) (decimal.Decimal, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return decimal.Zero, nil
	}
	if d, ok := c.parseCurrency(s); ok {
		return d, nil
	}
	if d, ok := c.parseNumber(s, c.plainRe); ok {
		return d, nil
	}
	if d, ok := c.parseNumber(s, c.groupedRe); ok {
		return d, nil
	}
	return decimal.Zero, errs.Validation("cannot parse money %q", text)
}

func (c *Codec) parseCurrency(s string) (decimal.Decimal, bool) {
	neg := false
	if rest, ok := strings.CutPrefix(s, "-"); ok {
		neg = true
		s = rest
	}
	var body string
	var ok bool
	if c.loc.SymbolAfter {
		body, ok = strings.CutSuffix(s, c.loc.Symbol)
	} else {
		body, ok = strings.CutPrefix(s, c.loc.Symbol)
	}
	if !ok {
		return decimal.Zero, false
	}
	body = strings.TrimSpace(body)
	if rest, cut := strings.CutPrefix(body, "-"); cut {
		if neg {
			return decimal.Zero, false
		}
		neg = true
		body = rest
	}
	if strings.HasPrefix(body, "+") || strings.HasPrefix(body, "-") {
		return decimal.Zero, false
	}
	d, ok := c.parseNumber(body, c.plainRe)
	if !ok {
		d, ok = c.parseNumber(body, c.groupedRe)
	}
	if !ok {
		return decimal.Zero, false
	}
	if neg {
		d = d.Neg()
	}
	return d, true
}

func (c *Codec) parseNumber(s string, re *regexp.Regexp) (decimal.Decimal, bool) {
	if !re.MatchString(s) {
		return decimal.Zero, false
	}
	if re == c.groupedRe {
		s = strings.ReplaceAll(s, c.loc.Group, "")
	}
	s = strings.Replace(s, c.loc.Decimal, ".", 1)
	if strings.HasSuffix(s, ".") {
		s = strings.TrimSuffix(s, ".")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// Format renders an amount for display: currency symbol, digit grouping and
// the locale's fraction digits. The result is rounded and not meant to be
// parsed back exactly.
func (c *Codec) Format(d decimal.Decimal) string {
	r := d.Round(c.loc.Fraction)
	neg := r.Sign() < 0
	intPart, frac, _ := strings.Cut(r.Abs().StringFixed(c.loc.Fraction), ".")

	var b strings.Builder
	b.WriteString(group(intPart, c.loc.Group))
	if frac != "" {
		b.WriteString(c.loc.Decimal)
		b.WriteString(frac)
	}
	out := b.String()
	if c.loc.SymbolAfter {
		out = out + " " + c.loc.Symbol
	} else {
		out = c.loc.Symbol + out
	}
	if neg {
		out = "-" + out
	}
	return out
}

// FormatPlain renders an amount without symbol or grouping, keeping every
// fractional digit, so that Parse(FormatPlain(d)) equals d.
func (c *Codec) FormatPlain(d decimal.Decimal) string {
	var s string
	if exp := d.Exponent(); exp < 0 {
		s = d.StringFixed(-exp)
	} else {
		s = d.String()
	}
	if c.loc.Decimal != "." {
		s = strings.Replace(s, ".", c.loc.Decimal, 1)
	}
	return s
}

func group(digits, sep string) string {
	if len(digits) <= 3 || sep == "" {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
