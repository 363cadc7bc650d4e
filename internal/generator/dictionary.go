package generator

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
)

//go:embed dict/words.txt
var defaultDictionary string

// LoadDictionary reads one word per line from path, or the built-in word list when path is empty
func LoadDictionary(path string) ([]string, error) {
	if path == "" {
		return readWords(strings.NewReader(defaultDictionary))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open dictionary: %v", err)
	}
	defer f.Close()

	return readWords(f)
}

func readWords(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if w := strings.TrimSpace(scanner.Text()); w != "" {
			words = append(words, w)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read dictionary: %v", err)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("dictionary is empty")
	}
	return words, nil
}
