// Typed reference models for each namespace.
//
// Storage stays open-schema; these structs exist so column schemas can be
// derived by reflection for the view layer's form rendering, and so Go
// callers have a documented shape to marshal against.

package studio

// Project is one tracked game project.
type Project struct {
	ID          int64  `json:"id"`
	Name        string `json:"name" jsonschema:"required,description=Project display name"`
	Status      string `json:"status" jsonschema:"description=Active | Beta | Archived"`
	TeamSize    int    `json:"teamSize,omitempty"`
	LastUpdated string `json:"lastUpdated,omitempty" jsonschema:"description=ISO date of last change"`
	Completion  int    `json:"completion,omitempty" jsonschema:"description=Percent complete 0-100"`
	Description string `json:"description,omitempty"`
	RepoURL     string `json:"repoUrl,omitempty"`
}

// Asset is one catalogued game asset. HasFile marks that a blob entry
// exists for this asset's id; the bytes themselves live in the blob store.
type Asset struct {
	ID      int64  `json:"id"`
	Name    string `json:"name" jsonschema:"required"`
	Type    string `json:"type" jsonschema:"description=3D Models | Textures | Audio | Animations | UI Elements"`
	Size    string `json:"size,omitempty" jsonschema:"description=Human-readable size"`
	Author  string `json:"author,omitempty"`
	Color   string `json:"color,omitempty" jsonschema:"description=Accent color hex"`
	HasFile bool   `json:"hasFile,omitempty" jsonschema:"description=True when an uploaded file is attached"`
}

// Build is one CI build entry. Builds list most-recent-first.
type Build struct {
	ID          int64  `json:"id"`
	Project     string `json:"project" jsonschema:"required"`
	Branch      string `json:"branch" jsonschema:"required"`
	Status      string `json:"status" jsonschema:"description=Success | Failed | Running"`
	Duration    string `json:"duration,omitempty"`
	TriggeredBy string `json:"triggeredBy,omitempty"`
	Timestamp   string `json:"timestamp,omitempty"`
}

// TeamMember is one studio member.
type TeamMember struct {
	ID        int64  `json:"id"`
	Name      string `json:"name" jsonschema:"required"`
	Email     string `json:"email" jsonschema:"required"`
	Role      string `json:"role" jsonschema:"description=Admin | Developer | Artist | QA"`
	Status    string `json:"status,omitempty"`
	LastLogin string `json:"lastLogin,omitempty"`
	Color     string `json:"color,omitempty"`
}

// Event is one scheduled live-ops or release event.
type Event struct {
	ID     int64  `json:"id"`
	Name   string `json:"name" jsonschema:"required"`
	Game   string `json:"game,omitempty"`
	Start  string `json:"start" jsonschema:"description=ISO start date"`
	End    string `json:"end" jsonschema:"description=ISO end date"`
	Status string `json:"status,omitempty" jsonschema:"description=Upcoming | Live | Ended"`
	Type   string `json:"type,omitempty" jsonschema:"description=Update | Hotfix | Seasonal"`
}

// KPI is one dashboard headline metric.
type KPI struct {
	ID     int64  `json:"id"`
	Label  string `json:"label" jsonschema:"required"`
	Value  string `json:"value" jsonschema:"required"`
	Trend  string `json:"trend,omitempty" jsonschema:"description=up | down | flat"`
	Change string `json:"change,omitempty"`
}

// Scene is one saved 3D scene.
type Scene struct {
	ID           int64  `json:"id"`
	Name         string `json:"name" jsonschema:"required"`
	Engine       string `json:"engine" jsonschema:"description=Three.js | Babylon.js"`
	Objects      int    `json:"objects,omitempty"`
	LastModified string `json:"lastModified,omitempty"`
	Description  string `json:"description,omitempty"`
}

// Shader is one saved shader preset.
type Shader struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name" jsonschema:"required"`
	Type        string   `json:"type" jsonschema:"description=Fragment | Vertex"`
	Engine      string   `json:"engine" jsonschema:"description=Three.js | Babylon.js"`
	Description string   `json:"description,omitempty"`
	Color1      string   `json:"color1,omitempty"`
	Color2      string   `json:"color2,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// Snippet is one reusable code snippet.
type Snippet struct {
	ID          int64  `json:"id"`
	Title       string `json:"title" jsonschema:"required"`
	Language    string `json:"language,omitempty" jsonschema:"description=javascript | glsl | json"`
	Description string `json:"description,omitempty"`
	Code        string `json:"code" jsonschema:"required"`
}

// PerfMetric is one performance dashboard reading.
type PerfMetric struct {
	ID     int64  `json:"id"`
	Label  string `json:"label" jsonschema:"required"`
	Value  string `json:"value" jsonschema:"required"`
	Unit   string `json:"unit,omitempty"`
	Status string `json:"status,omitempty" jsonschema:"description=good | warn | bad"`
}
