package scanner

func (s *Scanner) skipWhitespace() {
	for {
		b, ok := s.src.PeekByte()
		if !ok || (b != ' ' && b != '\t' && b != 0x0B && b != 0x0C) {
			return
		}
		s.src.pos++
	}
}

func (s *Scanner) handleLineBreak() {
	s.Token.OnNewLine = true

	for {
		b, ok := s.src.PeekByte()
		if !ok || (b != ' ' && b != '\t' && b != '\r' && b != '\n') {
			return
		}
		s.src.pos++
	}
}
