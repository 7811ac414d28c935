package verbal

import (
	_ "embed"
	"fmt"

	"github.com/vovakirdan/tui-humanbench/internal/config"
	"github.com/vovakirdan/tui-humanbench/internal/core"
)

//go:embed words.txt
var builtinWords []byte

// BuiltinWords returns the embedded word list.
func BuiltinWords() []string {
	return config.ParseWordList(builtinWords)
}

// maxComboTries bounds the search for an unseen hyphenated word.
const maxComboTries = 32

// wordSource hands out words that have never been presented.
// The base list is shuffled once; once it runs out, words are generated.
type wordSource struct {
	rng       core.Rand
	base      []string
	pool      []string
	generated int
}

func newWordSource(rng core.Rand, words []string) *wordSource {
	if len(words) == 0 {
		words = BuiltinWords()
	}
	pool := append([]string(nil), words...)
	core.Shuffle(rng, len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	return &wordSource{rng: rng, base: words, pool: pool}
}

// next returns a word for which used reports false.
func (s *wordSource) next(used func(string) bool) string {
	for len(s.pool) > 0 {
		w := s.pool[len(s.pool)-1]
		s.pool = s.pool[:len(s.pool)-1]
		if !used(w) {
			return w
		}
	}

	for range maxComboTries {
		a := s.base[s.rng.Intn(len(s.base))]
		b := s.base[s.rng.Intn(len(s.base))]
		if a == b {
			continue
		}
		if w := a + "-" + b; !used(w) {
			return w
		}
	}

	for {
		s.generated++
		w := fmt.Sprintf("%s-%d", s.base[s.rng.Intn(len(s.base))], s.generated)
		if !used(w) {
			return w
		}
	}
}
