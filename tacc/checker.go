package tacc

import "strings"

// Checker performs a single top-down semantic pass: it threads one
// SymbolTable through the tree, declaring
// variables, resolving references, and enforcing the language's limited
// int/float promotion rules. It mirrors the traversal shape of the
// teacher's CodeGenerator (a type switch over each node kind) rather than
// the original's per-node virtual checkSemantics/getType methods — Go
// favors one type-switching method on Checker over a method per node type.
type Checker struct {
	symbols *SymbolTable
}

// NewChecker returns a Checker backed by a fresh, empty SymbolTable.
func NewChecker() *Checker {
	return &Checker{symbols: NewSymbolTable()}
}

// Check runs semantic analysis over stmt and everything it contains,
// stopping at the first violation. typeOf below enforces the binary
// operator typing rules.
func (c *Checker) Check(stmt Statement) error {
	return c.checkStatement(stmt)
}

func (c *Checker) checkStatement(stmt Statement) error {
	switch s := stmt.(type) {
	case *Block:
		for _, inner := range s.Statements {
			if err := c.checkStatement(inner); err != nil {
				return err
			}
		}
		return nil

	case *VariableDeclaration:
		if err := c.symbols.Declare(s.Name, s.Type); err != nil {
			return err
		}
		if s.Initializer == nil {
			return nil
		}

		initType, err := c.typeOf(s.Initializer)
		if err != nil {
			return err
		}

		if initType == "int" && s.Type == "float" {
			initType = "float" // promotion
		} else if initType == "float" && s.Type == "int" {
			return newSemanticError("Cannot assign float to int without explicit cast")
		}

		if initType != s.Type {
			return newSemanticError(
				"Type mismatch: Cannot initialize variable of type '%s' with value of type '%s'",
				s.Type, initType)
		}
		return nil

	case *Assignment:
		valueType, err := c.typeOf(s.Value)
		if err != nil {
			return err
		}

		varType, err := c.symbols.Lookup(s.Name)
		if err != nil {
			return err
		}

		if valueType == "int" && varType == "float" {
			valueType = "float" // promotion
		} else if valueType == "float" && varType == "int" {
			return newSemanticError("Cannot assign float to int without explicit cast")
		}

		if varType != valueType {
			return newSemanticError("Type mismatch in assignment: Cannot assign %s to %s", valueType, varType)
		}
		return nil

	case *If:
		conditionType, err := c.typeOf(s.Condition)
		if err != nil {
			return err
		}
		if conditionType != "int" && conditionType != "bool" {
			return newSemanticError("Condition in 'if' statement must be of type int or bool")
		}

		if err := c.checkStatement(s.Then); err != nil {
			return err
		}
		if s.Else != nil {
			return c.checkStatement(s.Else)
		}
		return nil

	case *Return:
		if s.Value == nil {
			return nil
		}
		_, err := c.typeOf(s.Value)
		return err

	case *FunctionDeclaration:
		for _, param := range s.Parameters {
			sep := strings.LastIndex(param, " ")
			if err := c.symbols.Declare(param[sep+1:], param[:sep]); err != nil {
				return err
			}
		}
		for _, inner := range s.Body {
			if err := c.checkStatement(inner); err != nil {
				return err
			}
		}
		return nil
	}

	return nil
}

// typeOf computes the type of an expression, declaring no new bindings
// but resolving Variable references against the symbol table and
// enforcing the binary-operator typing rules.
func (c *Checker) typeOf(expr Expression) (string, error) {
	switch e := expr.(type) {
	case *Literal:
		return e.Type(), nil

	case *Variable:
		return c.symbols.Lookup(e.Name)

	case *Binary:
		leftType, err := c.typeOf(e.Left)
		if err != nil {
			return "", err
		}
		rightType, err := c.typeOf(e.Right)
		if err != nil {
			return "", err
		}

		if e.Op == And || e.Op == Or {
			return "bool", nil
		}

		if (leftType == "int" && rightType == "float") || (leftType == "float" && rightType == "int") {
			return "float", nil
		}

		if leftType != rightType {
			return "", newSemanticError(
				"Type mismatch in binary expression: %s %s %s", leftType, e.Op.Symbol(), rightType)
		}

		// Comparisons of matched operands return that same type rather than
		// bool — preserved for fidelity with the original.
		return leftType, nil
	}

	return "", nil
}
