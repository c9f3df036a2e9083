package screener

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ReadSymbolFile loads ticker symbols from a plain-text file, one symbol
// per line. Blank lines and surrounding whitespace are ignored; symbols are
// otherwise taken as-is.
func ReadSymbolFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open symbol file: %w", err)
	}
	defer f.Close()

	var symbols []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		symbol := strings.TrimSpace(scanner.Text())
		if symbol == "" {
			continue
		}
		symbols = append(symbols, symbol)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read symbol file: %w", err)
	}
	return symbols, nil
}
