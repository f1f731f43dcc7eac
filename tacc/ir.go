package tacc

import "strconv"

// Instruction is one line of three-address code: op arg1 arg2 result.
// An empty field denotes an absent operand.
type Instruction struct {
	Op     string
	Arg1   string
	Arg2   string
	Result string
}

// String renders the instruction in the fixed "op arg1 arg2 result"
// layout, single-space separated; absent fields stay empty, which is
// what produces the doubled spaces seen in real output (e.g. "RET t3  ").
func (in Instruction) String() string {
	return in.Op + " " + in.Arg1 + " " + in.Arg2 + " " + in.Result
}

// IRGenerator lowers a checked AST into a flat ordered list of TAC
// instructions, allocating fresh temporaries and labels as it goes.
// Grounded on the single generateStatement/generateExpression traversal
// of original_source/cpp-compiler's IRGenerator, reshaped as a Go type
// switch per ast.go's sealed-interface AST.
type IRGenerator struct {
	instructions []Instruction
	tempCount    int
	labelCount   int
}

// NewIRGenerator returns an IRGenerator with empty counters, ready to
// lower a single compilation unit.
func NewIRGenerator() *IRGenerator {
	return &IRGenerator{}
}

// Generate walks root and returns the TAC program it lowers to. Blocks
// at the top level are flattened directly rather than wrapped in a
// scope, matching IRGenerator::generateCode's special-case for a
// top-level BlockStatement.
func (g *IRGenerator) Generate(root Statement) []Instruction {
	g.instructions = nil

	if block, ok := root.(*Block); ok {
		for _, stmt := range block.Statements {
			g.generateStatement(stmt)
		}
	} else {
		g.generateStatement(root)
	}

	return g.instructions
}

func (g *IRGenerator) emit(op, arg1, arg2, result string) {
	g.instructions = append(g.instructions, Instruction{Op: op, Arg1: arg1, Arg2: arg2, Result: result})
}

func (g *IRGenerator) lastOp() string {
	if len(g.instructions) == 0 {
		return ""
	}
	return g.instructions[len(g.instructions)-1].Op
}

func (g *IRGenerator) newTemp() string {
	name := "t" + strconv.Itoa(g.tempCount)
	g.tempCount++
	return name
}

// newLabelPair allocates the two labels an If statement needs. The
// original always emits the literal strings L1/L2; this keeps that
// output for a single if but uses a running counter across multiple
// ifs so labels stay unique, per the fix the design notes recommend.
func (g *IRGenerator) newLabelPair() (string, string) {
	g.labelCount++
	first := "L" + strconv.Itoa(g.labelCount)
	g.labelCount++
	second := "L" + strconv.Itoa(g.labelCount)
	return first, second
}

func (g *IRGenerator) generateStatement(stmt Statement) {
	switch s := stmt.(type) {
	case *VariableDeclaration:
		if s.Initializer == nil {
			return
		}
		result := g.generateExpression(s.Initializer)
		g.emit("MOV", result, "", s.Name)

	case *Assignment:
		result := g.generateExpression(s.Value)
		g.emit("MOV", result, "", s.Name)

	case *If:
		condition := g.generateExpression(s.Condition)
		elseLabel, endLabel := g.newLabelPair()
		g.emit("IF_FALSE", condition, "", elseLabel)

		g.generateStatement(s.Then)
		g.emit("GOTO", "", "", endLabel)

		g.emit("LABEL", "", "", elseLabel)
		if s.Else != nil {
			g.generateStatement(s.Else)
		}
		g.emit("LABEL", "", "", endLabel)

	case *Block:
		for _, inner := range s.Statements {
			g.generateStatement(inner)
		}

	case *Return:
		if s.Value != nil {
			result := g.generateExpression(s.Value)
			g.emit("RET", result, "", "")
		} else {
			g.emit("RET", "", "", "")
		}

	case *FunctionDeclaration:
		g.emit("LABEL", "", "", s.Name)

		for _, bodyStmt := range s.Body {
			g.generateStatement(bodyStmt)
			if g.lastOp() == "RET" {
				return
			}
		}

		if g.lastOp() != "RET" {
			g.emit("RET", "", "", "")
		}
	}
}

func (g *IRGenerator) generateExpression(expr Expression) string {
	switch e := expr.(type) {
	case *Binary:
		left := g.generateExpression(e.Left)
		right := g.generateExpression(e.Right)
		result := g.newTemp()
		g.emit(e.Op.Symbol(), left, right, result)
		return result

	case *Literal:
		return e.Lexeme

	case *Variable:
		return e.Name
	}

	return ""
}
