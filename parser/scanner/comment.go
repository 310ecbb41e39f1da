package scanner

func isLineTerminator(chr rune) bool {
	switch chr {
	case '\u000a', '\u000d', '\u2028', '\u2029':
		return true
	}
	return false
}

// skipSingleLineComment skips to the line terminator ending a `//` comment.
// The terminator itself is left for the caller so OnNewLine gets recorded.
func (s *Scanner) skipSingleLineComment() {
	for {
		p, ok := s.PeekRune()
		if !ok || isLineTerminator(p) {
			return
		}
		s.ConsumeRune()
	}
}

// skipMultiLineComment skips the body of a `/* */` comment whose opening has
// already been consumed.
func (s *Scanner) skipMultiLineComment() (hasLineTerminator bool) {
	start := s.Token.Idx0
	for {
		p, ok := s.src.NextRune()
		if !ok {
			s.error(unterminatedMultiLineComment(start, s.src.Offset()))
			return
		}
		if isLineTerminator(p) {
			hasLineTerminator = true
		}
		if p == '*' && s.AdvanceIfByteEquals('/') {
			return
		}
	}
}
