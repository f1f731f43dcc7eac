package tacc

import (
	"fmt"
	"os"
	"strings"
)

// Compiler wires the lexer, parser, and IR generator into the single
// read-tokenize-parse-lower-write pipeline described in
// original_source/cpp-compiler's Compiler class. It owns no state across
// calls to Compile.
type Compiler struct {
	lexer  *Lexer
	parser *Parser
	ir     *IRGenerator
}

// NewCompiler returns a Compiler ready to compile one file at a time.
func NewCompiler() *Compiler {
	return &Compiler{
		lexer:  NewLexer(),
		parser: NewParser(),
		ir:     NewIRGenerator(),
	}
}

// Compile reads inputPath, runs it through the full front-end pipeline,
// and writes the resulting TAC listing to outputPath. No output file is
// written if any stage fails — writeOutput only runs once tokenizing,
// parsing, and semantic analysis have all succeeded.
func (c *Compiler) Compile(inputPath, outputPath string) error {
	source, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("could not open input file: %s", inputPath)
	}

	c.lexer.SetSource(string(source))
	tokens, err := c.lexer.Tokenize()
	if err != nil {
		return err
	}

	c.parser.SetTokens(tokens)
	ast, err := c.parser.Parse()
	if err != nil {
		return err
	}

	c.ir = NewIRGenerator()
	instructions := c.ir.Generate(ast)

	return writeInstructions(instructions, outputPath)
}

func writeInstructions(instructions []Instruction, outputPath string) error {
	var sb strings.Builder
	for _, in := range instructions {
		sb.WriteString(in.String())
		sb.WriteString("\n")
	}

	if err := os.WriteFile(outputPath, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("could not open output file: %s", outputPath)
	}
	return nil
}
