package generator

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"logsearch/internal/entity"
	"math/rand"
	"strings"
	"time"
)

// minGap is the smallest number of seconds between two entries
const minGap = 10

// Options describe the log to generate
type Options struct {
	Keywords []string
	Lines    int
	Start    time.Time
	MinWords int
	MaxWords int
	// Delta is the largest gap between consecutive entries, in seconds
	Delta int
}

// Generator writes logs of random dictionary words mixed with keywords.
// The first keyword is the primary one and shows up more often than the others.
type Generator struct {
	rng        *rand.Rand
	dictionary []string
}

func NewGenerator(rng *rand.Rand, dictionary []string) (*Generator, error) {
	if len(dictionary) == 0 {
		return nil, errors.New("dictionary is empty")
	}
	return &Generator{
		rng:        rng,
		dictionary: dictionary,
	}, nil
}

// Generate writes o.Lines entries to w. Timestamps start at o.Start and grow by
// a random gap in [10, o.Delta) seconds per entry.
func (g *Generator) Generate(w io.Writer, o Options) error {
	if len(o.Keywords) == 0 {
		return errors.New("no keywords given")
	}
	if o.MaxWords <= o.MinWords || o.MinWords < 0 {
		return fmt.Errorf("maxwords (%d) must be greater than minwords (%d)", o.MaxWords, o.MinWords)
	}
	if o.Delta <= minGap {
		return fmt.Errorf("delta must be greater than %d seconds", minGap)
	}

	out := bufio.NewWriter(w)
	timestamp := o.Start
	for i := 0; i < o.Lines; i++ {
		line := entity.FormatTimestamp(timestamp) + entity.HeaderDelimiter + strings.Join(g.words(o), " ")
		if _, err := out.WriteString(line + "\n"); err != nil {
			return fmt.Errorf("could not write log: %v", err)
		}
		timestamp = timestamp.Add(time.Duration(minGap+g.rng.Intn(o.Delta-minGap)) * time.Second)
	}

	if err := out.Flush(); err != nil {
		return fmt.Errorf("could not write log: %v", err)
	}
	return nil
}

// words builds the body of one entry. The word limit is drawn anew on every
// step and the primary keyword does not count towards it.
func (g *Generator) words(o Options) []string {
	var words []string
	count := 0
	for count < o.MinWords+g.rng.Intn(o.MaxWords-o.MinWords) {
		if g.rng.Intn(3) == 0 {
			if g.rng.Intn(4) == 0 || len(o.Keywords) == 1 {
				words = append(words, strings.TrimSpace(o.Keywords[0]))
			} else {
				words = append(words, strings.TrimSpace(o.Keywords[1+g.rng.Intn(len(o.Keywords)-1)]))
				count++
			}
		}
		words = append(words, g.dictionary[g.rng.Intn(len(g.dictionary))])
		count++
	}
	return words
}
