// Package wallpaper scores a short keyword against a curated image
// catalog and picks a matching background URL.
package wallpaper

import (
	"math/rand"
	"strings"
	"sync"
	"time"
)

var (
	rngMu sync.Mutex
	rng   = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// Pool returns the candidate URL set for a keyword. Entries tying at
// the best score pool their URLs, so ties increase variety rather than
// precision. A best score of zero yields the generic pool.
func Pool(keyword string) []string {
	phrase := strings.ToLower(strings.TrimSpace(keyword))
	var words []string
	for _, w := range strings.Fields(phrase) {
		if len(w) > 2 {
			words = append(words, w)
		}
	}

	best := 0
	var pool []string
	for _, entry := range catalog {
		score := 0
		for _, kw := range entry.Keywords {
			if phrase != "" && strings.Contains(phrase, kw) {
				score += 2
			}
			for _, w := range words {
				if strings.Contains(kw, w) || strings.Contains(w, kw) {
					score++
				}
			}
		}
		if score == 0 {
			continue
		}
		switch {
		case score > best:
			best = score
			pool = append([]string(nil), entry.URLs...)
		case score == best:
			pool = append(pool, entry.URLs...)
		}
	}
	if best == 0 {
		return genericURLs
	}
	return pool
}

// Match picks uniformly at random from the keyword's candidate pool.
func Match(keyword string) string {
	pool := Pool(keyword)
	rngMu.Lock()
	defer rngMu.Unlock()
	return pool[rng.Intn(len(pool))]
}
