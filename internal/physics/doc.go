// rfplan - RF site-planning engine for low-power wireless mesh deployments
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package physics implements the pure, deterministic RF propagation
kernel: distance, Fresnel-zone radius, Bullington knife-edge
diffraction loss over an effective-Earth terrain profile, Okumura-Hata
empirical path loss, and link clearance/status classification.

# Overview

Every function in this package is a pure function of its arguments —
no I/O, no package state, no randomness. Callers (internal/viewshed,
internal/coverage) supply elevation profiles obtained from
internal/terrain.

# Usage Example

	profile, _ := mgr.GetElevationProfile(ctx, tx, rx, 50)
	result := physics.AnalyzeLink(physics.LinkRequest{
	    Profile:     profile,
	    FrequencyMHz: 915,
	    TxHeightM:   30,
	    RxHeightM:   2,
	})
	if result.Status == physics.LinkBlocked {
	    // ...
	}

# Thread Safety

All functions are safe for concurrent use; there is no shared mutable
state in this package.

# See Also

  - internal/terrain: supplies the elevation profiles consumed here
  - internal/viewshed, internal/coverage: consumers of AnalyzeLink and
    CalculatePathLoss
*/
package physics
