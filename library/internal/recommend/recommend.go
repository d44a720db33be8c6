// Package recommend ranks unborrowed books by content similarity to a
// reader's borrowing history.
//
// Each book becomes a vector of TF-IDF weights over word unigrams and
// bigrams from title, genre, author and description (L2-normalized), followed
// by its standardized rating and page count. The reader profile is the mean
// vector of the books they borrowed; candidates are ranked by cosine
// similarity to it.
package recommend

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/Astemirdum/library-lending/library/internal/model"
)

const (
	// MinPositives is the history size below which nothing is recommended.
	MinPositives = 3
	DefaultTopK  = 3
	MaxTopK      = 50
	maxFeatures  = 5000
)

// Rank returns up to topK candidate ids, most similar first. Ties keep the
// lower id first.
func Rank(positives, candidates []model.Book, topK int) []int {
	out := []int{}
	if len(positives) < MinPositives || len(candidates) == 0 || topK <= 0 {
		return out
	}

	books := make([]model.Book, 0, len(positives)+len(candidates))
	books = append(books, positives...)
	books = append(books, candidates...)
	vectors := featurize(books)

	profile := make([]float64, len(vectors[0]))
	for _, v := range vectors[:len(positives)] {
		for i, x := range v {
			profile[i] += x
		}
	}
	for i := range profile {
		profile[i] /= float64(len(positives))
	}

	type scored struct {
		id    int
		score float64
	}
	scores := make([]scored, len(candidates))
	for i, c := range candidates {
		scores[i] = scored{id: c.ID, score: cosine(vectors[len(positives)+i], profile)}
	}
	sort.SliceStable(scores, func(i, j int) bool {
		if scores[i].score != scores[j].score {
			return scores[i].score > scores[j].score
		}
		return scores[i].id < scores[j].id
	})

	if topK > len(scores) {
		topK = len(scores)
	}
	for _, s := range scores[:topK] {
		out = append(out, s.id)
	}
	return out
}

func featurize(books []model.Book) [][]float64 {
	docs := make([][]string, len(books))
	for i, b := range books {
		docs[i] = terms(b)
	}
	vocab := vocabulary(docs)
	idf := inverseFrequencies(docs, vocab)

	ratings := make([]float64, len(books))
	pages := make([]float64, len(books))
	for i, b := range books {
		if b.Rating != nil {
			ratings[i] = *b.Rating
		}
		if b.PageCount != nil {
			pages[i] = float64(*b.PageCount)
		}
	}
	ratings = standardize(ratings)
	pages = standardize(pages)

	vectors := make([][]float64, len(books))
	for i, doc := range docs {
		v := make([]float64, len(vocab)+2)
		for _, t := range doc {
			if j, ok := vocab[t]; ok {
				v[j]++
			}
		}
		for j := range idf {
			v[j] *= idf[j]
		}
		normalize(v[:len(vocab)])
		v[len(vocab)] = ratings[i]
		v[len(vocab)+1] = pages[i]
		vectors[i] = v
	}
	return vectors
}

// terms yields unigrams and bigrams per field; bigrams never span fields.
func terms(b model.Book) []string {
	var out []string
	for _, field := range []string{b.Title, b.Genre, b.Author, b.Description} {
		words := tokenize(field)
		out = append(out, words...)
		for i := 1; i < len(words); i++ {
			out = append(out, words[i-1]+" "+words[i])
		}
	}
	return out
}

func tokenize(s string) []string {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
	})
	words := fields[:0]
	for _, f := range fields {
		if len([]rune(f)) >= 2 {
			words = append(words, f)
		}
	}
	return words
}

// vocabulary keeps the maxFeatures most frequent terms, ties broken alphabetically.
func vocabulary(docs [][]string) map[string]int {
	freq := map[string]int{}
	for _, doc := range docs {
		for _, t := range doc {
			freq[t]++
		}
	}
	all := make([]string, 0, len(freq))
	for t := range freq {
		all = append(all, t)
	}
	sort.Slice(all, func(i, j int) bool {
		if freq[all[i]] != freq[all[j]] {
			return freq[all[i]] > freq[all[j]]
		}
		return all[i] < all[j]
	})
	if len(all) > maxFeatures {
		all = all[:maxFeatures]
	}
	sort.Strings(all)

	vocab := make(map[string]int, len(all))
	for i, t := range all {
		vocab[t] = i
	}
	return vocab
}

// inverseFrequencies uses the smoothed form ln((1+n)/(1+df)) + 1.
func inverseFrequencies(docs [][]string, vocab map[string]int) []float64 {
	df := make([]float64, len(vocab))
	for _, doc := range docs {
		seen := map[int]bool{}
		for _, t := range doc {
			if j, ok := vocab[t]; ok && !seen[j] {
				seen[j] = true
				df[j]++
			}
		}
	}
	n := float64(len(docs))
	idf := make([]float64, len(vocab))
	for j := range idf {
		idf[j] = math.Log((1+n)/(1+df[j])) + 1
	}
	return idf
}

// standardize returns z-scores with population variance; a constant column maps to zeros.
func standardize(xs []float64) []float64 {
	var mean float64
	for _, x := range xs {
		mean += x
	}
	mean /= float64(len(xs))

	var variance float64
	for _, x := range xs {
		variance += (x - mean) * (x - mean)
	}
	std := math.Sqrt(variance / float64(len(xs)))

	out := make([]float64, len(xs))
	if std == 0 {
		return out
	}
	for i, x := range xs {
		out[i] = (x - mean) / std
	}
	return out
}

func normalize(v []float64) {
	n := norm(v)
	if n == 0 {
		return
	}
	for i := range v {
		v[i] /= n
	}
}

func norm(v []float64) float64 {
	var s float64
	for _, x := range v {
		s += x * x
	}
	return math.Sqrt(s)
}

func cosine(a, b []float64) float64 {
	na, nb := norm(a), norm(b)
	if na == 0 || nb == 0 {
		return 0
	}
	var dot float64
	for i := range a {
		dot += a[i] * b[i]
	}
	return dot / (na * nb)
}
