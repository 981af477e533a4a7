// Package studio defines the dashboard's domain: the namespace registry,
// demo seed collections, typed reference models, and the column schemas the
// view layer uses to render forms.
//
// The record store itself is schema-less; everything here is convention for
// the boundary, not enforcement inside storage.
package studio

import "github.com/gameforge/studio/internal/recordstore"

// Namespace names, also the persisted storage keys and export document keys.
const (
	NSProjects    = "projects"
	NSAssets      = "assets"
	NSBuilds      = "builds"
	NSTeamMembers = "teamMembers"
	NSEvents      = "events"
	NSKPIs        = "kpis"
	NSScenes      = "scenes"
	NSShaders     = "shaders"
	NSSnippets    = "snippets"
	NSPerfMetrics = "perfMetrics"
)

// ExportFilePrefix names export downloads: <prefix>-data-<ISO-date>.json.
const ExportFilePrefix = "gameforge"

// Namespaces returns the full registry with seed data wired in.
// Builds list most-recent-first, so that namespace prepends.
func Namespaces() []recordstore.Namespace {
	return []recordstore.Namespace{
		{Name: NSProjects, Seed: defaultProjects},
		{Name: NSAssets, Seed: defaultAssets},
		{Name: NSBuilds, Seed: defaultBuilds, Prepend: true},
		{Name: NSTeamMembers, Seed: defaultTeamMembers},
		{Name: NSEvents, Seed: defaultEvents},
		{Name: NSKPIs, Seed: defaultKPIs},
		{Name: NSScenes, Seed: defaultScenes},
		{Name: NSShaders, Seed: defaultShaders},
		{Name: NSSnippets, Seed: defaultSnippets},
		{Name: NSPerfMetrics, Seed: defaultPerfMetrics},
	}
}
