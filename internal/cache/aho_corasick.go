// HostDuel - Web Hosting Comparison
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostduel

package cache

import (
	"sort"
	"strings"
)

// AhoCorasick is a case-insensitive multi-pattern matcher. It finds every
// occurrence of every pattern in O(n + m + z) time, where n is the text
// length, m the total pattern length and z the number of matches.
//
// The automaton is built once by NewAhoCorasick and is read-only afterwards,
// so a single value can be shared by concurrent callers.
//
//	ac := cache.NewAhoCorasick("ahrefsbot", "semrushbot", "curl/")
//	ac.Contains("Mozilla/5.0 (compatible; AhrefsBot/7.0)") // true
type AhoCorasick struct {
	root     *acNode
	patterns []string
}

type acNode struct {
	children map[byte]*acNode
	failure  *acNode
	output   []int // indexes into patterns ending here, including via failure links
}

// Match is one occurrence of a pattern in a text.
type Match struct {
	Pattern  string // the pattern as given to NewAhoCorasick
	Index    int    // the pattern's position in the constructor arguments
	Position int    // byte offset of the match in the lowercased text
}

// NewAhoCorasick builds an automaton for patterns. Empty patterns are
// ignored but keep their index.
func NewAhoCorasick(patterns ...string) *AhoCorasick {
	ac := &AhoCorasick{
		root:     &acNode{children: make(map[byte]*acNode)},
		patterns: append([]string(nil), patterns...),
	}
	for i, p := range ac.patterns {
		if p != "" {
			ac.insert(i, strings.ToLower(p))
		}
	}
	ac.link()
	return ac
}

func (ac *AhoCorasick) insert(index int, pattern string) {
	node := ac.root
	for i := 0; i < len(pattern); i++ {
		ch := pattern[i]
		next := node.children[ch]
		if next == nil {
			next = &acNode{children: make(map[byte]*acNode)}
			node.children[ch] = next
		}
		node = next
	}
	node.output = append(node.output, index)
}

// link sets failure links breadth-first and merges the outputs reachable
// through them.
func (ac *AhoCorasick) link() {
	queue := make([]*acNode, 0, len(ac.root.children))
	for _, child := range ac.root.children {
		child.failure = ac.root
		queue = append(queue, child)
	}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for ch, child := range current.children {
			queue = append(queue, child)

			fail := current.failure
			for fail != nil && fail.children[ch] == nil {
				fail = fail.failure
			}
			if fail == nil {
				child.failure = ac.root
				continue
			}
			child.failure = fail.children[ch]
			child.output = append(child.output, child.failure.output...)
		}
	}
}

// step advances the automaton by one byte.
func (ac *AhoCorasick) step(node *acNode, ch byte) *acNode {
	for node != ac.root && node.children[ch] == nil {
		node = node.failure
	}
	if next := node.children[ch]; next != nil {
		return next
	}
	return ac.root
}

// Search returns every match in text, in order of their end position.
func (ac *AhoCorasick) Search(text string) []Match {
	lower := strings.ToLower(text)
	var matches []Match

	node := ac.root
	for i := 0; i < len(lower); i++ {
		node = ac.step(node, lower[i])
		for _, idx := range node.output {
			matches = append(matches, Match{
				Pattern:  ac.patterns[idx],
				Index:    idx,
				Position: i - len(ac.patterns[idx]) + 1,
			})
		}
	}
	return matches
}

// MatchedIndexes returns the distinct indexes of the patterns found in
// text, in ascending order.
func (ac *AhoCorasick) MatchedIndexes(text string) []int {
	seen := make(map[int]struct{})
	for _, m := range ac.Search(text) {
		seen[m.Index] = struct{}{}
	}

	out := make([]int, 0, len(seen))
	for idx := range seen {
		out = append(out, idx)
	}
	sort.Ints(out)
	return out
}

// Contains reports whether any pattern occurs in text.
func (ac *AhoCorasick) Contains(text string) bool {
	lower := strings.ToLower(text)
	node := ac.root
	for i := 0; i < len(lower); i++ {
		node = ac.step(node, lower[i])
		if len(node.output) > 0 {
			return true
		}
	}
	return false
}

// PatternCount returns the number of patterns, including empty ones.
func (ac *AhoCorasick) PatternCount() int {
	return len(ac.patterns)
}
