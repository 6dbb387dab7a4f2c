package lexer

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// --- Numbers ---------------------------------------------------------------

// parseInteger converts the text of an integer literal. For radix other than 10 the
// text starts with a two-character prefix (0x, 0o, 0b).
func parseInteger(text string, radix int) (Integer, error) {
	if radix != 10 {
		text = text[2:]
	}
	n, err := strconv.ParseUint(stripSeparators(text), radix, 64)
	if err != nil {
		return 0, err
	}
	return Integer(n), nil
}

func parseFloat(text string) (Float, error) {
	f, err := strconv.ParseFloat(stripSeparators(text), 64)
	if err != nil {
		return 0, err
	}
	return Float(f), nil
}

// stripSeparators removes '_' digit separators.
func stripSeparators(text string) string {
	if !strings.Contains(text, "_") {
		return text
	}
	return strings.ReplaceAll(text, "_", "")
}

// --- Escapes ---------------------------------------------------------------

// Escape grammar, shared by strings, characters, byte strings and bytes:
//
//	\"  \'  \\  \n  \t  \r  \0
//	\xHH        two hex digits; ASCII only, except in byte literals
//	\u{H…}      1 to 6 hex digits, a Unicode scalar value; not in byte literals
//
// Decoders receive the literal's body without prefix and quotes.

func decodeString(body string) (String, error) {
	var b strings.Builder
	b.Grow(len(body))
	err := decode(body, false, func(r rune) {
		b.WriteRune(r)
	})
	return String(b.String()), err
}

func decodeChar(body string) (Char, error) {
	var runes []rune
	if err := decode(body, false, func(r rune) {
		runes = append(runes, r)
	}); err != nil {
		return 0, err
	}
	if len(runes) != 1 {
		return 0, &escapeError{kind: InvalidToken}
	}
	return Char(runes[0]), nil
}

func decodeByteString(body string) (ByteString, error) {
	bs := make([]byte, 0, len(body))
	err := decode(body, true, func(r rune) {
		bs = append(bs, byte(r))
	})
	return ByteString(bs), err
}

func decodeByte(body string) (Byte, error) {
	bs, err := decodeByteString(body)
	if err != nil {
		return 0, err
	}
	if len(bs) != 1 {
		return 0, &escapeError{kind: InvalidToken}
	}
	return Byte(bs[0]), nil
}

// decode scans body character by character, resolving escapes, and hands every
// resulting character to emit. In byte mode all emitted values fit into a byte.
// Outside of byte mode, bytes which are not valid UTF-8 are an InvalidToken error.
func decode(body string, byteMode bool, emit func(rune)) error {
	for i := 0; i < len(body); {
		c, w := utf8.DecodeRuneInString(body[i:])
		if c == '\\' {
			r, n, err := unescape(body[i+1:], byteMode)
			if err != nil {
				return err
			}
			emit(r)
			i += 1 + n
			continue
		}
		if byteMode && c >= utf8.RuneSelf {
			return &escapeError{kind: InvalidByteEscape, text: body[i : i+w]}
		}
		if c == utf8.RuneError && w == 1 { // malformed UTF-8
			return &escapeError{kind: InvalidToken, text: body[i : i+1]}
		}
		emit(c)
		i += w
	}
	return nil
}

// unescape decodes the escape sequence following a backslash. It returns the
// character and the number of bytes consumed behind the backslash.
func unescape(s string, byteMode bool) (rune, int, error) {
	if s == "" {
		return 0, 0, &escapeError{kind: InvalidEscape, text: `\`}
	}
	c, w := utf8.DecodeRuneInString(s)
	switch c {
	case '"', '\'', '\\':
		return c, w, nil
	case 'n':
		return '\n', w, nil
	case 't':
		return '\t', w, nil
	case 'r':
		return '\r', w, nil
	case '0':
		return 0, w, nil
	case 'x':
		r, n, err := unescapeHex(s[1:], byteMode)
		return r, 1 + n, err
	case 'u':
		if byteMode {
			return 0, 0, &escapeError{kind: InvalidByteEscape, text: `\u`}
		}
		r, n, err := unescapeUnicode(s[1:])
		return r, 1 + n, err
	}
	return 0, 0, &escapeError{kind: InvalidEscape, text: `\` + s[:w]}
}

// unescapeHex decodes the two digits of \xHH. Outside of byte literals the value
// is restricted to ASCII, i.e. the first digit is octal.
func unescapeHex(s string, byteMode bool) (rune, int, error) {
	consumed := `\x`
	var v rune
	for i := 0; i < 2; i++ {
		if i >= len(s) {
			return 0, 0, &escapeError{kind: InvalidEscape, text: consumed}
		}
		c, w := utf8.DecodeRuneInString(s[i:])
		consumed += string(c)
		d, ok := hexValue(c)
		if !ok || (i == 0 && !byteMode && d > 7) || w != 1 {
			return 0, 0, &escapeError{kind: InvalidEscape, text: consumed}
		}
		v = v<<4 | d
	}
	return v, 2, nil
}

// unescapeUnicode decodes the {H…} part of \u{H…}.
func unescapeUnicode(s string) (rune, int, error) {
	consumed := `\u`
	if s == "" || s[0] != '{' {
		if s != "" {
			c, _ := utf8.DecodeRuneInString(s)
			consumed += string(c)
		}
		return 0, 0, &escapeError{kind: InvalidEscape, text: consumed}
	}
	consumed += "{"
	var v rune
	digits := 0
	for i := 1; ; i++ {
		if i >= len(s) {
			return 0, 0, &escapeError{kind: InvalidEscape, text: consumed}
		}
		c, _ := utf8.DecodeRuneInString(s[i:])
		consumed += string(c)
		if c == '}' {
			if digits == 0 || !utf8.ValidRune(v) {
				return 0, 0, &escapeError{kind: InvalidEscape, text: consumed}
			}
			return v, i + 1, nil
		}
		d, ok := hexValue(c)
		if !ok || digits == 6 {
			return 0, 0, &escapeError{kind: InvalidEscape, text: consumed}
		}
		v = v<<4 | d
		digits++
	}
}

func hexValue(c rune) (rune, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
