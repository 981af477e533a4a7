// Hard-coded seed collections for demo data and explicit resets.

package studio

import "github.com/gameforge/studio/internal/recordstore"

type rec = recordstore.Record

func defaultProjects() []rec {
	return []rec{
		{"id": 1, "name": "GameForge Studio", "status": "Active", "teamSize": 5, "lastUpdated": "2026-02-15", "completion": 85, "description": "Browser-based game development tooling platform built with React, Three.js, and Babylon.js.", "repoUrl": "https://github.com/EcosystemNetwork/Tooling"},
		{"id": 2, "name": "Three.js Scene Viewer", "status": "Active", "teamSize": 3, "lastUpdated": "2026-02-14", "completion": 100, "description": "Interactive 3D scene playground with multiple geometries, orbit controls, and screenshot capture.", "repoUrl": "https://github.com/EcosystemNetwork/Tooling"},
		{"id": 3, "name": "GLSL Shader Lab", "status": "Active", "teamSize": 2, "lastUpdated": "2026-02-13", "completion": 100, "description": "Live GLSL shader editor with vertex and fragment shader support, presets, and real-time preview.", "repoUrl": "https://github.com/EcosystemNetwork/Tooling"},
		{"id": 4, "name": "Asset Pipeline", "status": "Beta", "teamSize": 3, "lastUpdated": "2026-02-12", "completion": 72, "description": "Upload, organize, and preview game assets including 3D models, textures, audio, and animations.", "repoUrl": "https://github.com/EcosystemNetwork/Tooling"},
		{"id": 5, "name": "Performance Monitor", "status": "Active", "teamSize": 2, "lastUpdated": "2026-02-11", "completion": 90, "description": "Real-time FPS tracking, memory usage monitoring, and WebGL capabilities detection.", "repoUrl": "https://github.com/EcosystemNetwork/Tooling"},
	}
}

func defaultAssets() []rec {
	return []rec{
		{"id": 1, "name": "Default Cube", "type": "3D Models", "size": "0.2 MB", "author": "Three.js", "color": "#1e88e5"},
		{"id": 2, "name": "Grid Texture", "type": "Textures", "size": "0.5 MB", "author": "GameForge", "color": "#ff5252"},
		{"id": 3, "name": "UI Click Sound", "type": "Audio", "size": "0.1 MB", "author": "GameForge", "color": "#00c9a7"},
		{"id": 4, "name": "Orbit Camera Rig", "type": "Animations", "size": "0.3 MB", "author": "Three.js", "color": "#ffab40"},
		{"id": 5, "name": "Button Icon Set", "type": "UI Elements", "size": "0.8 MB", "author": "GameForge", "color": "#42a5f5"},
		{"id": 6, "name": "Ambient Loop", "type": "Audio", "size": "2.4 MB", "author": "GameForge", "color": "#00e676"},
		{"id": 7, "name": "PBR Material Pack", "type": "Textures", "size": "4.6 MB", "author": "Poly Haven", "color": "#8d6e63"},
		{"id": 8, "name": "Character Base Mesh", "type": "3D Models", "size": "8.1 MB", "author": "Sketchfab", "color": "#7c4dff"},
	}
}

func defaultBuilds() []rec {
	return []rec{
		{"id": 1, "project": "GameForge Studio", "branch": "main", "status": "Success", "duration": "2m 35s", "triggeredBy": "CI Bot", "timestamp": "2026-02-15 10:00"},
		{"id": 2, "project": "GameForge Studio", "branch": "feature/shader-lab", "status": "Success", "duration": "2m 18s", "triggeredBy": "CI Bot", "timestamp": "2026-02-14 16:30"},
		{"id": 3, "project": "GameForge Studio", "branch": "feature/scene-viewer", "status": "Success", "duration": "2m 42s", "triggeredBy": "CI Bot", "timestamp": "2026-02-13 11:15"},
		{"id": 4, "project": "GameForge Studio", "branch": "feature/performance", "status": "Success", "duration": "2m 10s", "triggeredBy": "CI Bot", "timestamp": "2026-02-12 09:45"},
		{"id": 5, "project": "Asset Pipeline", "branch": "main", "status": "Success", "duration": "1m 55s", "triggeredBy": "CI Bot", "timestamp": "2026-02-11 14:20"},
		{"id": 6, "project": "GameForge Studio", "branch": "feature/calendar", "status": "Success", "duration": "2m 28s", "triggeredBy": "CI Bot", "timestamp": "2026-02-10 13:00"},
		{"id": 7, "project": "GameForge Studio", "branch": "develop", "status": "Success", "duration": "2m 50s", "triggeredBy": "CI Bot", "timestamp": "2026-02-09 17:30"},
	}
}

func defaultTeamMembers() []rec {
	return []rec{
		{"id": 1, "name": "Project Lead", "email": "lead@gameforge.dev", "role": "Admin", "status": "Active", "lastLogin": "2026-02-15 10:00", "color": "#1e88e5"},
		{"id": 2, "name": "Frontend Developer", "email": "frontend@gameforge.dev", "role": "Developer", "status": "Active", "lastLogin": "2026-02-15 09:30", "color": "#00c9a7"},
		{"id": 3, "name": "3D Artist", "email": "artist@gameforge.dev", "role": "Artist", "status": "Active", "lastLogin": "2026-02-14 16:00", "color": "#ffab40"},
		{"id": 4, "name": "QA Engineer", "email": "qa@gameforge.dev", "role": "QA", "status": "Active", "lastLogin": "2026-02-14 14:45", "color": "#ff5252"},
		{"id": 5, "name": "Backend Developer", "email": "backend@gameforge.dev", "role": "Developer", "status": "Active", "lastLogin": "2026-02-13 11:20", "color": "#7c4dff"},
	}
}

func defaultEvents() []rec {
	return []rec{
		{"id": 1, "name": "GameForge v1.0 Launch", "game": "GameForge Studio", "start": "2026-03-01", "end": "2026-03-01", "status": "Upcoming", "type": "Update"},
		{"id": 2, "name": "Shader Lab Beta Release", "game": "GLSL Shader Lab", "start": "2026-02-15", "end": "2026-02-28", "status": "Live", "type": "Update"},
		{"id": 3, "name": "Asset Pipeline Integration", "game": "Asset Pipeline", "start": "2026-02-20", "end": "2026-03-10", "status": "Upcoming", "type": "Update"},
		{"id": 4, "name": "Three.js v170 Migration", "game": "Three.js Scene Viewer", "start": "2026-02-01", "end": "2026-02-14", "status": "Ended", "type": "Hotfix"},
		{"id": 5, "name": "Performance Dashboard Sprint", "game": "Performance Monitor", "start": "2026-02-10", "end": "2026-02-24", "status": "Live", "type": "Update"},
		{"id": 6, "name": "WebGPU Support Preview", "game": "GameForge Studio", "start": "2026-04-01", "end": "2026-04-30", "status": "Upcoming", "type": "Seasonal"},
		{"id": 7, "name": "Code Snippets Library Expansion", "game": "GameForge Studio", "start": "2026-02-05", "end": "2026-02-12", "status": "Ended", "type": "Update"},
	}
}

func defaultKPIs() []rec {
	return []rec{
		{"id": 1, "label": "Total Projects", "value": "5", "trend": "up", "change": "+2"},
		{"id": 2, "label": "Total Assets", "value": "8", "trend": "up", "change": "+3"},
		{"id": 3, "label": "Build Success Rate", "value": "100%", "trend": "up", "change": "+0%"},
		{"id": 4, "label": "Active Team Members", "value": "5", "trend": "up", "change": "+1"},
		{"id": 5, "label": "Shader Presets", "value": "6", "trend": "up", "change": "+2"},
		{"id": 6, "label": "Code Snippets", "value": "8", "trend": "up", "change": "+3"},
	}
}

func defaultScenes() []rec {
	return []rec{
		{"id": 1, "name": "Geometry Playground", "engine": "Three.js", "objects": 12, "lastModified": "2026-02-14", "description": "Primitive showcase with orbit controls and a ground grid."},
		{"id": 2, "name": "PBR Lighting Test", "engine": "Babylon.js", "objects": 7, "lastModified": "2026-02-12", "description": "Material spheres under three-point lighting."},
		{"id": 3, "name": "Particle Fountain", "engine": "Three.js", "objects": 3, "lastModified": "2026-02-10", "description": "GPU particle emitter with adjustable spread and gravity."},
	}
}

func defaultShaders() []rec {
	return []rec{
		{"id": 1, "name": "Gradient Pulse", "type": "Fragment", "engine": "Three.js", "description": "Two-color gradient animated with a sine pulse.", "color1": "#1e88e5", "color2": "#00c9a7", "tags": []any{"gradient", "animated"}},
		{"id": 2, "name": "Toon Cel Shader", "type": "Fragment", "engine": "Three.js", "description": "Stepped lighting bands for a cartoon look.", "color1": "#ffab40", "color2": "#ff5252", "tags": []any{"toon", "lighting"}},
		{"id": 3, "name": "Vertex Wave", "type": "Vertex", "engine": "Babylon.js", "description": "Displaces vertices along a traveling wave.", "color1": "#42a5f5", "color2": "#7c4dff", "tags": []any{"displacement"}},
		{"id": 4, "name": "Fresnel Rim", "type": "Fragment", "engine": "Babylon.js", "description": "View-angle rim glow for hologram effects.", "color1": "#00e676", "color2": "#1e88e5", "tags": []any{"fresnel", "glow"}},
		{"id": 5, "name": "Checker Dissolve", "type": "Fragment", "engine": "Three.js", "description": "Checkerboard dissolve transition driven by a threshold uniform.", "color1": "#8d6e63", "color2": "#ffab40", "tags": []any{"transition"}},
		{"id": 6, "name": "Normal Visualizer", "type": "Vertex", "engine": "Three.js", "description": "Maps surface normals to RGB for debugging.", "color1": "#ff5252", "color2": "#00c9a7", "tags": []any{"debug"}},
	}
}

func defaultSnippets() []rec {
	return []rec{
		{"id": 1, "title": "Orbit Controls Setup", "language": "javascript", "description": "Attach OrbitControls with sane damping defaults.", "code": "const controls = new OrbitControls(camera, renderer.domElement);\ncontrols.enableDamping = true;\ncontrols.dampingFactor = 0.05;"},
		{"id": 2, "title": "Resize Handler", "language": "javascript", "description": "Keep the renderer and camera in sync with the window.", "code": "window.addEventListener('resize', () => {\n  camera.aspect = innerWidth / innerHeight;\n  camera.updateProjectionMatrix();\n  renderer.setSize(innerWidth, innerHeight);\n});"},
		{"id": 3, "title": "GLTF Loader", "language": "javascript", "description": "Load a glb model and add it to the scene.", "code": "new GLTFLoader().load('model.glb', (gltf) => scene.add(gltf.scene));"},
		{"id": 4, "title": "Basic Fragment Shader", "language": "glsl", "description": "UV gradient starting point for fragment experiments.", "code": "void main() {\n  gl_FragColor = vec4(vUv, 0.5, 1.0);\n}"},
		{"id": 5, "title": "FPS Counter", "language": "javascript", "description": "Frame counter sampled once per second.", "code": "let frames = 0, last = performance.now();\nfunction tick(now) {\n  frames++;\n  if (now - last >= 1000) { fps = frames; frames = 0; last = now; }\n  requestAnimationFrame(tick);\n}"},
		{"id": 6, "title": "Render Loop", "language": "javascript", "description": "Minimal animation loop with damping-aware controls update.", "code": "function animate() {\n  requestAnimationFrame(animate);\n  controls.update();\n  renderer.render(scene, camera);\n}"},
		{"id": 7, "title": "Babylon Scene Bootstrap", "language": "javascript", "description": "Engine, scene, camera, and light in one block.", "code": "const engine = new BABYLON.Engine(canvas, true);\nconst scene = new BABYLON.Scene(engine);\nconst camera = new BABYLON.ArcRotateCamera('cam', 0, 1, 10, BABYLON.Vector3.Zero(), scene);"},
		{"id": 8, "title": "Texture Loader", "language": "javascript", "description": "Load a color texture with sRGB encoding.", "code": "const tex = new THREE.TextureLoader().load('grid.png');\ntex.colorSpace = THREE.SRGBColorSpace;"},
	}
}

func defaultPerfMetrics() []rec {
	return []rec{
		{"id": 1, "label": "FPS Target", "value": "60", "unit": "fps", "status": "good"},
		{"id": 2, "label": "Frame Time", "value": "14.2", "unit": "ms", "status": "good"},
		{"id": 3, "label": "Draw Calls", "value": "128", "unit": "", "status": "good"},
		{"id": 4, "label": "Heap Used", "value": "182", "unit": "MB", "status": "warn"},
		{"id": 5, "label": "Texture Memory", "value": "96", "unit": "MB", "status": "good"},
		{"id": 6, "label": "Triangles", "value": "1.2M", "unit": "", "status": "warn"},
	}
}
