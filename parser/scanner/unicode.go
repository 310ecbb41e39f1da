package scanner

import "unicode/utf8"

func (s *Scanner) hexDigit() (rune, bool) {
	b, ok := s.PeekByte()
	if !ok {
		return 0, false
	}
	v := digitValue(b)
	if v >= 16 {
		return 0, false
	}
	s.ConsumeByte()
	return rune(v), true
}

// hexDigits reads exactly n hex digits.
func (s *Scanner) hexDigits(n int) (rune, bool) {
	var value rune
	for range n {
		d, ok := s.hexDigit()
		if !ok {
			return 0, false
		}
		value = value<<4 | d
	}
	return value, true
}

// unicodeEscape reads the part of a `\u` escape after the `u`: either four
// hex digits or a braced code point. A high surrogate followed by an escaped
// low surrogate is combined into one code point; a lone surrogate decodes to
// U+FFFD since Go strings hold UTF-8.
func (s *Scanner) unicodeEscape() (rune, bool) {
	if s.AdvanceIfByteEquals('{') {
		return s.codePoint()
	}
	value, ok := s.hexDigits(4)
	if !ok {
		return 0, false
	}
	if isHighSurrogate(value) {
		if low, ok := s.lowSurrogate(); ok {
			return 0x10000 + (value-0xD800)<<10 + (low - 0xDC00), true
		}
	}
	if isSurrogate(value) {
		return utf8.RuneError, true
	}
	return value, true
}

// codePoint reads `X...}` of a `\u{X...}` escape.
func (s *Scanner) codePoint() (rune, bool) {
	var value rune
	digits := 0
	for {
		d, ok := s.hexDigit()
		if !ok {
			break
		}
		value = value<<4 | d
		digits++
		if value > utf8.MaxRune {
			return 0, false
		}
	}
	if digits == 0 || !s.AdvanceIfByteEquals('}') {
		return 0, false
	}
	if isSurrogate(value) {
		return utf8.RuneError, true
	}
	return value, true
}

// lowSurrogate consumes a following `\uDC00`-`\uDFFF` escape, or consumes
// nothing.
func (s *Scanner) lowSurrogate() (rune, bool) {
	checkpoint := s.src.Offset()
	if !s.AdvanceIfByteEquals('\\') || !s.AdvanceIfByteEquals('u') {
		s.src.SetPosition(checkpoint)
		return 0, false
	}
	value, ok := s.hexDigits(4)
	if !ok || value < 0xDC00 || value > 0xDFFF {
		s.src.SetPosition(checkpoint)
		return 0, false
	}
	return value, true
}

func isHighSurrogate(r rune) bool {
	return r >= 0xD800 && r <= 0xDBFF
}

func isSurrogate(r rune) bool {
	return r >= 0xD800 && r <= 0xDFFF
}
