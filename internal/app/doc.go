// Package app wires the generator pipeline together: it configures logging,
// resolves which generation runs to perform (manifests or flags), and drives
// scan and emit for each run.
package app
