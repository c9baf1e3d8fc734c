package main

import (
	"testing"
)

func TestCreateScene(t *testing.T) {
	tests := []struct {
		name        string
		sceneType   string
		expectError bool
	}{
		// Built-in scenes
		{"room scene", "room", false},
		{"showcase scene", "showcase", false},
		{"interactive scene", "interactive", false},
		{"mirrors scene", "mirrors", false},

		// Scene files (by name)
		{"glass-row file", "glass-row", false},

		// Scene files (by path)
		{"direct YAML path", "scenes/room.yaml", false},

		// Invalid scenes
		{"unknown scene", "nonexistent", true},
		{"invalid YAML path", "scenes/nonexistent.yaml", true},
		{"empty scene name", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scene, err := createScene(tt.sceneType)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for scene type '%s', but got none", tt.sceneType)
				}
				if scene != nil {
					t.Errorf("Expected nil scene for invalid scene type '%s', got %T", tt.sceneType, scene)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error for scene type '%s': %v", tt.sceneType, err)
			}
			if scene == nil {
				t.Fatalf("Expected scene for valid scene type '%s', got nil", tt.sceneType)
			}
			if scene.CameraConfig.Width <= 0 {
				t.Errorf("Scene camera width should be positive, got %d", scene.CameraConfig.Width)
			}
			if scene.RenderConfig.Height <= 0 {
				t.Errorf("Scene render height should be positive, got %d", scene.RenderConfig.Height)
			}
			if len(scene.Shapes) == 0 {
				t.Errorf("Scene '%s' has no shapes", tt.sceneType)
			}
		})
	}
}

func TestApplyOverrides(t *testing.T) {
	s, err := createScene("room")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	applyOverrides(s, 320, 0, 3, 4)

	if s.RenderConfig.Width != 320 || s.RenderConfig.Height != 600 {
		t.Errorf("Expected 320x600, got %dx%d", s.RenderConfig.Width, s.RenderConfig.Height)
	}
	if s.Camera.Config().Width != 320 {
		t.Errorf("Expected camera width 320, got %d", s.Camera.Config().Width)
	}
	if s.RenderConfig.MaxDepth != 3 {
		t.Errorf("Expected depth 3, got %d", s.RenderConfig.MaxDepth)
	}
	if s.RenderConfig.NumWorkers != 4 {
		t.Errorf("Expected 4 workers, got %d", s.RenderConfig.NumWorkers)
	}

	// Negative worker count keeps the scene default
	applyOverrides(s, 0, 0, 0, -1)
	if s.RenderConfig.NumWorkers != 4 || s.RenderConfig.MaxDepth != 3 {
		t.Errorf("Expected zero-valued overrides to be ignored, got %+v", s.RenderConfig)
	}
}
