package interpreter

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"Calcline/internal/eval"
	log "Calcline/internal/logger"
)

// Repl runs the interactive loop. One environment lives for the whole
// session, so variables assigned on earlier lines stay visible. Errors are
// printed and the loop continues; the abort-on-error contract applies to
// batch runs, not interactive ones.
func Repl() {
	logger := log.Get("repl")
	if logger != nil {
		logger.Info("Starting REPL session")
	}

	fmt.Println("Welcome to Calcline")
	fmt.Println("Enter statements like 'x = 1 + 2', or type 'exit' to quit")

	evaluator := eval.NewEvaluator()
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		input := scanner.Text()

		if strings.ToLower(strings.TrimSpace(input)) == "exit" {
			break
		}

		if strings.TrimSpace(input) == "" {
			continue
		}

		report, err := RunWith(evaluator, input)
		if err != nil {
			if logger != nil {
				logger.Error("Command execution failed: %v", err)
			}
			fmt.Printf("Error: %v\n", err)
			continue
		}

		for _, result := range report.Results {
			fmt.Println(result)
		}
	}

	if err := scanner.Err(); err != nil {
		fmt.Printf("Error reading input: %v\n", err)
	}

	if logger != nil {
		logger.Info("REPL session ended")
	}
}
