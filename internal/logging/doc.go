// HostDuel - Web Hosting Comparison
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostduel

// Package logging provides the zerolog-based logger shared by every HostDuel
// component.
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//
//	logging.Info().Int("records", n).Msg("snapshot loaded")
//	logging.Ctx(r.Context()).Warn().Err(err).Msg("click tracking failed")
//
// Components take a zerolog.Logger built with WithComponent so that every
// line carries a "component" field:
//
//	log := logging.WithComponent("indexnow")
//
// # Request Scoping
//
// The HTTP request id middleware stores the request id in the request
// context. Ctx reads it back and adds it as "request_id" so a handler's log
// lines can be matched with the "request_id" returned in API error bodies.
//
// # slog Interop
//
// NewSlogLogger returns a *slog.Logger that writes through zerolog. The
// supervisor tree hands it to sutureslog for service lifecycle events.
//
// Always terminate log chains with .Msg() or .Send(); an unterminated event
// is never written.
package logging
