package core

// Register holds the last text written by a yank, delete or change, plus
// whether that text represents whole lines.
type Register struct {
	Text     string
	Linewise bool
}

// RegisterStore maps register names to their contents. Every yank/delete/
// change writes the unnamed register; the named map exists for future
// named-register support but no key binding selects a name.
type RegisterStore struct {
	unnamed Register
	named   map[rune]Register
}

func NewRegisterStore() *RegisterStore {
	return &RegisterStore{
		named: make(map[rune]Register),
	}
}

// SetUnnamed overwrites the unnamed register.
func (s *RegisterStore) SetUnnamed(text string, linewise bool) {
	s.unnamed = Register{Text: text, Linewise: linewise}
}

// Unnamed returns a copy of the unnamed register. Reading never mutates it.
func (s *RegisterStore) Unnamed() Register {
	return s.unnamed
}

// SetNamed stores a register under a single-character name.
func (s *RegisterStore) SetNamed(name rune, text string, linewise bool) {
	s.named[name] = Register{Text: text, Linewise: linewise}
}

// Named returns the register stored under name, if any.
func (s *RegisterStore) Named(name rune) (Register, bool) {
	reg, ok := s.named[name]
	return reg, ok
}
