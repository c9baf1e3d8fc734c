package scene

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestTitleCase(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"glass-room", "Glass Room"},
		{"mirror_hall", "Mirror Hall"},
		{"my-custom-scene", "My Custom Scene"},
		{"simple", "Simple"},
		{"UPPER-case", "Upper Case"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			result := titleCase(tc.input)
			if result != tc.expected {
				t.Errorf("titleCase(%q) = %q, want %q", tc.input, result, tc.expected)
			}
		})
	}
}

func TestParseSceneMetadata(t *testing.T) {
	testCases := []struct {
		name     string
		content  string
		expected SceneInfo
	}{
		{
			name: "complete_metadata.yaml",
			content: `# Scene: Glass Room
# Variant: Dim
# Description: Room with a single glass sphere
# Group: Rooms

name: glass-room`,
			expected: SceneInfo{
				ID:          "yaml:complete_metadata",
				Name:        "Glass Room",
				DisplayName: "Glass Room - Dim",
				Description: "Room with a single glass sphere",
				Group:       "Rooms",
				Type:        "yaml",
				Variant:     "Dim",
			},
		},
		{
			name:    "no_metadata.yaml",
			content: `name: plain`,
			expected: SceneInfo{
				ID:          "yaml:no_metadata",
				Name:        "No Metadata",
				DisplayName: "No Metadata",
				Group:       "Scene Files",
				Type:        "yaml",
			},
		},
	}

	dir := t.TempDir()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, tc.name)
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatalf("Failed to write temp file: %v", err)
			}

			result, err := ParseSceneMetadata(path)
			if err != nil {
				t.Fatalf("ParseSceneMetadata() error: %v", err)
			}

			tc.expected.FilePath = path
			if result != tc.expected {
				t.Errorf("Expected %+v, got %+v", tc.expected, result)
			}
		})
	}
}

func TestListSceneFiles(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"b-scene.yaml": "# Scene: Bravo\nname: b",
		"a-scene.yml":  "# Scene: Alpha\nname: a",
		"ignored.txt":  "not a scene",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}

	scenes, err := ListSceneFiles(dir)
	if err != nil {
		t.Fatalf("ListSceneFiles() error: %v", err)
	}
	if len(scenes) != 2 {
		t.Fatalf("Expected 2 scenes, got %d", len(scenes))
	}
	if scenes[0].Name != "Alpha" || scenes[1].Name != "Bravo" {
		t.Errorf("Expected scenes sorted Alpha, Bravo, got %s, %s", scenes[0].Name, scenes[1].Name)
	}
}

func TestListSceneFiles_MissingDirectory(t *testing.T) {
	scenes, err := ListSceneFiles(filepath.Join(t.TempDir(), "does-not-exist"))
	if err != nil {
		t.Errorf("ListSceneFiles() error: %v", err)
	}
	if scenes == nil || len(scenes) != 0 {
		t.Errorf("Expected empty slice, got %v", scenes)
	}
}

func TestListAllScenes(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "extra.yaml"), []byte("# Group: Extras\nname: extra"), 0o644); err != nil {
		t.Fatalf("Failed to write scene file: %v", err)
	}

	response, err := ListAllScenes(dir)
	if err != nil {
		t.Fatalf("ListAllScenes() error: %v", err)
	}
	if len(response.Groups) != 2 {
		t.Fatalf("Expected 2 groups, got %d", len(response.Groups))
	}
	if response.Groups[0].Name != "Built-in Scenes" {
		t.Errorf("Expected built-in group first, got %q", response.Groups[0].Name)
	}
	if len(response.Groups[0].Scenes) != len(builtinScenes) {
		t.Errorf("Expected %d built-in scenes, got %d", len(builtinScenes), len(response.Groups[0].Scenes))
	}
	if response.Groups[1].Name != "Extras" {
		t.Errorf("Expected Extras group, got %q", response.Groups[1].Name)
	}
}

func TestNewBuiltinScene_Unknown(t *testing.T) {
	_, err := NewBuiltinScene("nope")
	if !errors.Is(err, ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}
}
