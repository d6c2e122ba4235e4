package uci

func ReaderDone(s *Session) <-chan struct{} {
	return s.readerDone
}
