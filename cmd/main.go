package main

import (
	"fmt"
	"io"
	"os"

	"Calcline/internal/interpreter"
)

// demoProgram runs when no file argument is given and stdin is a terminal.
const demoProgram = `x = 10 + 5 * (3 - 2)
y = x / 2
`

func main() {
	source, err := readSource()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	report, err := interpreter.Run(source)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Print(interpreter.FormatReport(report))
}

func readSource() (string, error) {
	if len(os.Args) > 1 {
		data, err := os.ReadFile(os.Args[1])
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", os.Args[1], err)
		}
		return string(data), nil
	}

	stat, err := os.Stdin.Stat()
	if err == nil && (stat.Mode()&os.ModeCharDevice) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	return demoProgram, nil
}
