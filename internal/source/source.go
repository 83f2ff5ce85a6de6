package source

import (
	"bufio"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strings"
)

// DefaultSampleSize matches how many sample names a session starts with.
const DefaultSampleSize = 20

var sampleNames = []string{
	"Apple", "Banana", "Orange", "Strawberry", "Lettuce", "Cabbage", "Carrot",
	"Pot", "Pan", "Spoon", "Fork", "Knife", "Motherboard", "CPU", "GPU",
	"RAM", "Hard drive", "Mercedes", "BMW", "Audi", "Nintendo", "Sony",
	"Microsoft", "Vodka", "Whiskey", "Beer", "Wine", "Gucci", "Prada",
	"Versace", "Milk chocolate", "Dark chocolate", "White chocolate",
	"Fruit and nut chocolate",
}

// Sample shuffles the built-in name list and returns the first n names.
// A zero seed picks a random one.
func Sample(n int, seed uint64) []string {
	if seed == 0 {
		seed = rand.Uint64()
	}
	names := append([]string(nil), sampleNames...)
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	r.Shuffle(len(names), func(i, j int) { names[i], names[j] = names[j], names[i] })
	if n < 0 || n > len(names) {
		n = len(names)
	}
	return names[:n]
}

// Read returns one name per non-blank line, trimmed.
func Read(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}
	return out, nil
}

// FromFile reads names from path.
func FromFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()
	names, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return names, nil
}

// Load reads path when set and falls back to the shuffled sample list.
func Load(path string, sampleSize int, seed uint64) ([]string, error) {
	if strings.TrimSpace(path) != "" {
		return FromFile(path)
	}
	return Sample(sampleSize, seed), nil
}
