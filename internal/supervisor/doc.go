// HostDuel - Web Hosting Comparison
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostduel

/*
Package supervisor runs the HostDuel server's long-lived services under a
suture v4 supervisor tree.

# Tree

	hostduel
	├── data-layer
	│   └── clicks-gc (when click tracking is on disk)
	├── jobs-layer
	│   └── indexnow-submit (when INDEXNOW_SUBMIT_ON_START is set)
	└── api-layer
	    └── http-server

Each layer keeps its own failure count, so a failing job backs off without
restarting the HTTP server. Supervisor events are logged through
sutureslog.

# Usage

	tree, err := supervisor.NewSupervisorTree(logger, supervisor.TreeConfig{})
	if err != nil {
	    return err
	}
	tree.AddAPIService(services.NewHTTPServerService(srv, 10*time.Second))
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    return err
	}

See the services subpackage for the service implementations.
*/
package supervisor
