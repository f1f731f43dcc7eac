package tacc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckerAllowsIntToFloatPromotionAtDeclaration(t *testing.T) {
	checker := NewChecker()
	decl := &VariableDeclaration{Type: "float", Name: "y", Initializer: &Literal{Lexeme: "3"}}
	assert.NoError(t, checker.Check(decl))
}

func TestCheckerRejectsFloatToIntAtDeclaration(t *testing.T) {
	checker := NewChecker()
	decl := &VariableDeclaration{Type: "int", Name: "y", Initializer: &Literal{Lexeme: "3.5"}}

	err := checker.Check(decl)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Cannot assign float to int")
}

func TestCheckerRejectsRedeclaration(t *testing.T) {
	checker := NewChecker()
	block := &Block{Statements: []Statement{
		&VariableDeclaration{Type: "int", Name: "x", Initializer: &Literal{Lexeme: "1"}},
		&VariableDeclaration{Type: "int", Name: "x", Initializer: &Literal{Lexeme: "2"}},
	}}

	err := checker.Check(block)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already declared")
}

func TestCheckerRejectsUndeclaredVariable(t *testing.T) {
	checker := NewChecker()
	assignment := &Assignment{Name: "unbound", Value: &Literal{Lexeme: "1"}}

	err := checker.Check(assignment)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not declared")
}

func TestCheckerComparisonOfMatchedOperandsReturnsOperandType(t *testing.T) {
	// a < b yields type int, not bool, when both operands are int. This
	// is intentionally preserved even though it looks wrong.
	checker := NewChecker()
	binary := &Binary{Left: &Literal{Lexeme: "1"}, Op: LessThan, Right: &Literal{Lexeme: "2"}}

	typeName, err := checker.typeOf(binary)
	require.NoError(t, err)
	assert.Equal(t, "int", typeName)
}

func TestCheckerLogicalOperatorsAlwaysReturnBool(t *testing.T) {
	checker := NewChecker()
	binary := &Binary{Left: &Literal{Lexeme: "1"}, Op: And, Right: &Literal{Lexeme: "2"}}

	typeName, err := checker.typeOf(binary)
	require.NoError(t, err)
	assert.Equal(t, "bool", typeName)
}

func TestCheckerIfConditionAcceptsIntOrBool(t *testing.T) {
	checker := NewChecker()
	ifStmt := &If{
		Condition: &Literal{Lexeme: "1"},
		Then:      &Return{Value: &Literal{Lexeme: "0"}},
	}
	assert.NoError(t, checker.Check(ifStmt))
}

func TestCheckerIfConditionRejectsStringType(t *testing.T) {
	checker := NewChecker()
	ifStmt := &If{
		Condition: &Literal{Lexeme: "\"hi\""},
		Then:      &Return{Value: &Literal{Lexeme: "0"}},
	}

	err := checker.Check(ifStmt)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Condition in 'if' statement")
}
