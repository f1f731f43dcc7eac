package tacc

// SymbolTable is a single flat scope mapping a declared identifier to its
// declared type name. It lives for the duration of one compilation and is
// never reused. There are no nested scopes: function parameters are
// declared into this same flat mapping.
type SymbolTable struct {
	symbols map[string]string
}

// NewSymbolTable returns an empty SymbolTable.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{symbols: map[string]string{}}
}

// Declare records name as having the given type. It fails if name is
// already declared.
func (t *SymbolTable) Declare(name, typeName string) error {
	if _, exists := t.symbols[name]; exists {
		return newSemanticError("Variable '%s' is already declared", name)
	}
	t.symbols[name] = typeName
	return nil
}

// Lookup returns the declared type of name, or an error if it was never
// declared.
func (t *SymbolTable) Lookup(name string) (string, error) {
	typeName, exists := t.symbols[name]
	if !exists {
		return "", newSemanticError("Variable '%s' is not declared", name)
	}
	return typeName, nil
}
