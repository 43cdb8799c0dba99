package chunking

import (
	"strings"
	"unicode/utf8"
)

// defaultSeparators orders split points from most to least semantically
// coherent: paragraph, line, sentence, word, then hard character cuts.
var defaultSeparators = []string{"\n\n", "\n", ". ", " ", ""}

type Splitter struct {
	ChunkSize int
	Overlap   int

	separators []string
}

func NewSplitter(chunkSize, overlap int) *Splitter {
	if chunkSize <= 0 {
		chunkSize = 1000
	}
	if overlap < 0 {
		overlap = 0
	}
	if overlap >= chunkSize {
		overlap = chunkSize / 4
	}
	return &Splitter{
		ChunkSize:  chunkSize,
		Overlap:    overlap,
		separators: defaultSeparators,
	}
}

// Split breaks text into ordered chunks of at most ChunkSize runes with
// roughly Overlap runes shared between neighbours. Splitting prefers the
// earliest separator present in the text and recurses into any piece that is
// still over the bound, so a chunk only exceeds ChunkSize if no separator
// ever matched and a hard cut applied at the limit.
func (s *Splitter) Split(text string) []string {
	raw := s.split(text, s.separators)
	out := make([]string, 0, len(raw))
	for _, chunk := range raw {
		chunk = strings.TrimSpace(chunk)
		if chunk != "" {
			out = append(out, chunk)
		}
	}
	return out
}

func (s *Splitter) split(text string, separators []string) []string {
	if utf8.RuneCountInString(text) <= s.ChunkSize {
		if text == "" {
			return nil
		}
		return []string{text}
	}

	sep := ""
	rest := separators
	for i, candidate := range separators {
		if candidate == "" || strings.Contains(text, candidate) {
			sep = candidate
			rest = separators[i+1:]
			break
		}
	}
	if sep == "" {
		return s.hardCut(text)
	}

	parts := strings.SplitAfter(text, sep)

	var out []string
	var pending []string
	for _, part := range parts {
		if utf8.RuneCountInString(part) <= s.ChunkSize {
			pending = append(pending, part)
			continue
		}
		out = append(out, s.merge(pending)...)
		pending = nil
		out = append(out, s.split(part, rest)...)
	}
	out = append(out, s.merge(pending)...)
	return out
}

// merge joins adjacent small parts into chunks up to ChunkSize, carrying a
// tail of previous parts forward so neighbouring chunks share up to Overlap
// runes of local context.
func (s *Splitter) merge(parts []string) []string {
	var chunks []string
	var window []string
	total := 0

	for _, part := range parts {
		n := utf8.RuneCountInString(part)
		if total+n > s.ChunkSize && total > 0 {
			chunks = append(chunks, strings.Join(window, ""))
			for total > s.Overlap || (total+n > s.ChunkSize && total > 0) {
				total -= utf8.RuneCountInString(window[0])
				window = window[1:]
			}
		}
		window = append(window, part)
		total += n
	}
	if total > 0 {
		chunks = append(chunks, strings.Join(window, ""))
	}
	return chunks
}

func (s *Splitter) hardCut(text string) []string {
	runes := []rune(text)
	step := s.ChunkSize - s.Overlap
	if step <= 0 {
		step = s.ChunkSize
	}

	out := make([]string, 0, len(runes)/step+1)
	for start := 0; start < len(runes); start += step {
		end := start + s.ChunkSize
		if end > len(runes) {
			end = len(runes)
		}
		out = append(out, string(runes[start:end]))
		if end == len(runes) {
			break
		}
	}
	return out
}
