package interpreter

import (
	"fmt"

	"Calcline/internal/ast"
	"Calcline/internal/eval"
	"Calcline/internal/lexer"
	log "Calcline/internal/logger"
	"Calcline/internal/parser"
)

// RunReport captures everything one pipeline run observes: the token
// sequence, the parsed statements, each statement's result in order, and the
// final variable bindings.
type RunReport struct {
	Tokens     []lexer.Token
	Statements []ast.Statement
	Results    []eval.Value
	Env        map[string]eval.Value
}

// Run executes the full pipeline over source with a fresh environment. Any
// lex, parse or evaluation failure aborts the run; there is no partial
// result.
func Run(source string) (*RunReport, error) {
	return RunWith(eval.NewEvaluator(), source)
}

// RunWith executes the pipeline against an existing evaluator, so callers
// like the REPL and server sessions can keep variable state across runs.
func RunWith(e *eval.Evaluator, source string) (*RunReport, error) {
	logDebug("running source: %q", source)

	l := lexer.NewLexer(source)
	tokens, err := l.Tokenize()
	if err != nil {
		logError("tokenize failed: %v", err)
		return nil, err
	}

	p := parser.NewParser(tokens)
	statements, err := p.ParseProgram()
	if err != nil {
		logError("parse failed: %v", err)
		return nil, err
	}

	results := make([]eval.Value, 0, len(statements))
	for _, stmt := range statements {
		result, err := e.EvaluateStatement(stmt)
		if err != nil {
			logError("evaluation failed: %v", err)
			return nil, err
		}
		results = append(results, result)
	}

	return &RunReport{
		Tokens:     tokens,
		Statements: statements,
		Results:    results,
		Env:        e.Env().Snapshot(),
	}, nil
}

// Execute runs source with a fresh environment and returns the final
// statement's value, or an error naming the failing stage.
func Execute(source string) (eval.Value, error) {
	report, err := Run(source)
	if err != nil {
		return eval.Value{}, err
	}
	if len(report.Results) == 0 {
		return eval.Value{}, fmt.Errorf("no statements to execute")
	}
	return report.Results[len(report.Results)-1], nil
}

func logDebug(format string, v ...any) {
	if l := log.Get("interpreter"); l != nil {
		l.Debug(format, v...)
	}
}

func logError(format string, v ...any) {
	if l := log.Get("interpreter"); l != nil {
		l.Error(format, v...)
	}
}
