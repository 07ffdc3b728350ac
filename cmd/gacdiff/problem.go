package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// parseProblem reads the minimal line format this demo accepts:
//
//	R
//	<d1_1> <d1_2> ... (domain values of variable 1)
//	<d2_1> <d2_2> ... (domain values of variable 2)
//	...
//
// Blank lines and lines starting with '#' are skipped. A variable whose
// line holds exactly one value is pre-instantiated.
func parseProblem(r io.Reader) ([][]int, error) {
	scanner := bufio.NewScanner(r)
	var lines []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("gacdiff: reading problem: %w", err)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("gacdiff: empty problem file")
	}

	r0, err := strconv.Atoi(lines[0])
	if err != nil || r0 <= 0 {
		return nil, fmt.Errorf("gacdiff: first line must be a positive variable count, got %q", lines[0])
	}
	if len(lines)-1 != r0 {
		return nil, fmt.Errorf("gacdiff: declared %d variables but found %d domain lines", r0, len(lines)-1)
	}

	domains := make([][]int, r0)
	for i := 0; i < r0; i++ {
		fields := strings.Fields(lines[i+1])
		if len(fields) == 0 {
			return nil, fmt.Errorf("gacdiff: variable %d has an empty domain line", i)
		}
		values := make([]int, len(fields))
		for j, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("gacdiff: variable %d: %w", i, err)
			}
			values[j] = v
		}
		domains[i] = values
	}
	return domains, nil
}
