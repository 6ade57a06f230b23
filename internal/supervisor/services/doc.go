// HostDuel - Web Hosting Comparison
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostduel

/*
Package services adapts HostDuel components to suture.Service.

  - HTTPServerService: ListenAndServe until canceled, then graceful Shutdown.
  - IndexNowService: one-shot sitemap submission. Returns
    suture.ErrDoNotRestart so the supervisor never repeats it.
  - ClicksGCService: periodic value log GC for the click store.

Each service names itself through String() so supervisor logs identify it.
*/
package services
