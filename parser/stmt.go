package parser

import (
	"go.creack.net/mathi/ast"
	"go.creack.net/mathi/lexer"
)

func parseProgram(p *parser) (ast.Program, error) {
	var prog ast.Program
	for {
		// Empty statements are skipped.
		for p.curToken().Type == lexer.TokStatementEnd {
			p.nextToken()
		}
		if p.curToken().Type == lexer.TokEOF {
			return prog, nil
		}

		stmt, err := parseStmt(p)
		if err != nil {
			return ast.Program{}, err
		}
		if _, err := p.expect(`";" or end of input`, lexer.TokStatementEnd, lexer.TokEOF); err != nil {
			return ast.Program{}, err
		}
		prog.Statements = append(prog.Statements, stmt)
	}
}

func parseStmt(p *parser) (ast.Node, error) {
	return parseExpr(p, bpDefault)
}
