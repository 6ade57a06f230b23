// HostDuel - Web Hosting Comparison
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostduel

package middleware

import (
	"net/http"

	"github.com/tomtom215/hostduel/internal/cache"
	"github.com/tomtom215/hostduel/internal/logging"
	"github.com/tomtom215/hostduel/internal/metrics"
)

// GoodBots are crawlers that are always let through, even when their
// user agent also contains a blocked token.
var GoodBots = []string{
	"googlebot",
	"bingbot",
	"duckduckbot",
	"slurp",
	"facebot",
	"twitterbot",
	"linkedinbot",
	"whatsapp",
	"telegrambot",
	"applebot",
	"indexnow",
	"yandex",
}

// BadBots are SEO scrapers, AI crawlers and generic HTTP clients.
var BadBots = []string{
	"ahrefsbot",
	"semrushbot",
	"mj12bot",
	"dotbot",
	"blexbot",
	"dataforseobot",
	"petalbot",
	"bytespider",
	"gptbot",
	"ccbot",
	"anthropic-ai",
	"claude-web",
	"scrapy",
	"python-requests",
	"go-http-client",
	"java/",
	"libwww-perl",
	"wget",
	"curl/",
}

// Verdict is the outcome of classifying a user agent.
type Verdict int

const (
	VerdictAllow Verdict = iota
	VerdictGoodBot
	VerdictBlock
)

// BotFilter classifies user agents against the good and bad lists with a
// single case-insensitive Aho-Corasick pass.
type BotFilter struct {
	matcher   *cache.AhoCorasick
	patterns  []string
	goodCount int
}

// NewBotFilter builds a filter from the given lists. Good bots take
// precedence over bad bots.
func NewBotFilter(good, bad []string) *BotFilter {
	patterns := make([]string, 0, len(good)+len(bad))
	patterns = append(patterns, good...)
	patterns = append(patterns, bad...)
	return &BotFilter{
		matcher:   cache.NewAhoCorasick(patterns...),
		patterns:  patterns,
		goodCount: len(good),
	}
}

// DefaultBotFilter uses GoodBots and BadBots.
func DefaultBotFilter() *BotFilter {
	return NewBotFilter(GoodBots, BadBots)
}

// Classify returns the verdict for userAgent and the token that decided
// it, or "" for VerdictAllow.
func (f *BotFilter) Classify(userAgent string) (Verdict, string) {
	if userAgent == "" {
		return VerdictAllow, ""
	}
	matched := f.matcher.MatchedIndexes(userAgent)
	if len(matched) == 0 {
		return VerdictAllow, ""
	}
	// Indexes are sorted and good patterns come first.
	if first := matched[0]; first < f.goodCount {
		return VerdictGoodBot, f.patterns[first]
	}
	return VerdictBlock, f.patterns[matched[0]]
}

// Middleware rejects blocked user agents with 403 "Access Denied".
func (f *BotFilter) Middleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		verdict, token := f.Classify(r.UserAgent())
		if verdict != VerdictBlock {
			next(w, r)
			return
		}

		metrics.RecordBotBlocked(token)
		logging.Ctx(r.Context()).Debug().
			Str("bot", token).
			Str("path", r.URL.Path).
			Msg("Blocked bot request")

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte("Access Denied"))
	}
}
