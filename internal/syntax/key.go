package syntax

import (
	"math"
	"strconv"
	"strings"
)

// StaticKey returns the statically resolvable key of a member expression,
// object or binding property, class member or parameter property.
//
// A key is static when it is a non-computed name, or a string, number,
// boolean, null, bigint or decimal literal, or a template without
// substitutions. Computed expressions, regular expressions and interpolated
// templates are opaque and report false.
func (t *Tree) StaticKey(id NodeID) (string, bool) {
	switch t.Kind(id) {
	case KindMemberExpression, KindObjectProperty, KindBindingProperty,
		KindMethodDefinition, KindPropertyDefinition:
		n := t.at(id)
		keyNode := n.a
		if n.kind == KindMemberExpression {
			keyNode = n.b
		}

		return t.keyText(keyNode, n.flags&FlagComputed != 0)
	case KindTSParameterProperty:
		leaf := t.Parameter(id)
		if t.Kind(leaf) == KindAssignmentPattern {
			leaf = t.Left(leaf)
		}

		if t.Kind(leaf) != KindBindingIdentifier {
			return "", false
		}

		return t.Text(leaf), true
	default:
		return "", false
	}
}

// ImportedName returns the name an import specifier pulls from its module:
// the imported name for named specifiers and "default" for default ones.
func (t *Tree) ImportedName(id NodeID) (string, bool) {
	switch t.Kind(id) {
	case KindImportSpecifier:
		return t.keyText(t.Imported(id), false)
	case KindImportDefaultSpecifier:
		return "default", true
	default:
		return "", false
	}
}

func (t *Tree) keyText(keyNode NodeID, computed bool) (string, bool) {
	switch t.Kind(keyNode) {
	case KindIdentifierName:
		if computed {
			return "", false
		}

		return t.Text(keyNode), true
	case KindPrivateIdentifier:
		return "#" + t.Text(keyNode), true
	default:
		return t.LiteralKey(keyNode)
	}
}

// LiteralKey converts a literal node into the property key it denotes.
func (t *Tree) LiteralKey(id NodeID) (string, bool) {
	text := t.Text(id)

	switch t.Kind(id) {
	case KindStringLiteral, KindBooleanLiteral:
		return text, true
	case KindNullLiteral:
		return "null", true
	case KindNumericLiteral:
		return NormalizeNumber(text)
	case KindBigIntLiteral:
		return NormalizeNumber(strings.TrimSuffix(text, "n"))
	case KindDecimalLiteral:
		return NormalizeNumber(strings.TrimSuffix(text, "m"))
	case KindTemplateLiteral:
		if len(t.Expressions(id)) > 0 {
			return "", false
		}

		return text, true
	default:
		return "", false
	}
}

// NormalizeNumber renders a numeric literal the way it reads as a property
// key: "1.0" and "0x1" both become "1".
func NormalizeNumber(raw string) (string, bool) {
	raw = strings.ReplaceAll(raw, "_", "")
	if raw == "" {
		return "", false
	}

	lower := strings.ToLower(raw)
	if strings.HasPrefix(lower, "0x") || strings.HasPrefix(lower, "0o") || strings.HasPrefix(lower, "0b") {
		v, err := strconv.ParseUint(lower, 0, 64)
		if err != nil {
			return "", false
		}

		return strconv.FormatUint(v, 10), true
	}

	f, err := strconv.ParseFloat(raw, 64)
	if math.IsInf(f, 0) {
		return "Infinity", true
	}

	if err != nil || math.IsNaN(f) {
		return "", false
	}

	return formatNumber(f), true
}

// formatNumber renders f with the shortest round-tripping digits, switching
// to exponent form outside [1e-7, 1e21) the way JavaScript prints numbers.
func formatNumber(f float64) string {
	if f == 0 {
		return "0"
	}

	sign := ""
	if f < 0 {
		sign, f = "-", -f
	}

	// mantissa digits d1.d2d3... and exponent e, so f = 0.d1d2d3... * 10^n.
	sci := strconv.FormatFloat(f, 'e', -1, 64)
	mant, exp, _ := strings.Cut(sci, "e")
	digits := strings.Replace(mant, ".", "", 1)
	e, _ := strconv.Atoi(exp)
	k, n := len(digits), e+1

	switch {
	case k <= n && n <= 21:
		return sign + digits + strings.Repeat("0", n-k)
	case 0 < n && n <= 21:
		return sign + digits[:n] + "." + digits[n:]
	case -6 < n && n <= 0:
		return sign + "0." + strings.Repeat("0", -n) + digits
	}

	out := digits[:1]
	if k > 1 {
		out += "." + digits[1:]
	}

	if e >= 0 {
		return sign + out + "e+" + strconv.Itoa(e)
	}

	return sign + out + "e" + strconv.Itoa(e)
}
