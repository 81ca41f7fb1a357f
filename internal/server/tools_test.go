package server

import (
	"testing"
)

func TestGetToolDefinitions(t *testing.T) {
	tools := GetToolDefinitions()

	expectedTools := []string{
		"image_load",
		"image_dimensions",
		"image_sample_color",
		"watermark_apply",
		"watermark_preview",
	}

	if len(tools) != len(expectedTools) {
		t.Errorf("got %d tools, want %d", len(tools), len(expectedTools))
	}

	toolMap := make(map[string]Tool)
	for _, tool := range tools {
		if _, dup := toolMap[tool.Name]; dup {
			t.Errorf("duplicate tool %s", tool.Name)
		}
		toolMap[tool.Name] = tool
	}

	for _, name := range expectedTools {
		if _, ok := toolMap[name]; !ok {
			t.Errorf("Expected tool %s not found", name)
		}
	}
}

func TestToolDefinitions_Structure(t *testing.T) {
	tools := GetToolDefinitions()

	for _, tool := range tools {
		t.Run(tool.Name, func(t *testing.T) {
			if tool.Description == "" {
				t.Error("Tool description is empty")
			}

			if tool.InputSchema["type"] != "object" {
				t.Errorf("InputSchema type: got %v, want 'object'", tool.InputSchema["type"])
			}

			props, ok := tool.InputSchema["properties"].(map[string]interface{})
			if !ok {
				t.Fatal("InputSchema properties should be a map")
			}

			// Every required argument must be described
			required, ok := tool.InputSchema["required"].([]string)
			if !ok {
				t.Fatal("'required' should be a string slice")
			}
			for _, r := range required {
				if _, ok := props[r]; !ok {
					t.Errorf("required argument %s has no schema", r)
				}
			}
		})
	}
}

func TestToolDefinitions_WatermarkArguments(t *testing.T) {
	toolMap := make(map[string]Tool)
	for _, tool := range GetToolDefinitions() {
		toolMap[tool.Name] = tool
	}

	shared := []string{"image", "watermark", "opacity", "mode", "color", "placement", "x", "y"}

	tests := []struct {
		name     string
		has      []string
		lacks    []string
		required []string
	}{
		{"watermark_apply", append([]string{"output", "jpeg_quality"}, shared...), []string{"scale"}, []string{"image", "watermark", "output", "opacity"}},
		{"watermark_preview", append([]string{"scale"}, shared...), []string{"output"}, []string{"image", "watermark", "opacity"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tool, ok := toolMap[tt.name]
			if !ok {
				t.Fatalf("%s tool not found", tt.name)
			}
			props := tool.InputSchema["properties"].(map[string]interface{})
			for _, p := range tt.has {
				if _, ok := props[p]; !ok {
					t.Errorf("missing argument %s", p)
				}
			}
			for _, p := range tt.lacks {
				if _, ok := props[p]; ok {
					t.Errorf("unexpected argument %s", p)
				}
			}

			required := tool.InputSchema["required"].([]string)
			if len(required) != len(tt.required) {
				t.Fatalf("required: got %v, want %v", required, tt.required)
			}
			for i := range required {
				if required[i] != tt.required[i] {
					t.Errorf("required[%d]: got %s, want %s", i, required[i], tt.required[i])
				}
			}
		})
	}
}

func TestToolDefinitions_ModeEnum(t *testing.T) {
	for _, tool := range GetToolDefinitions() {
		if tool.Name != "watermark_apply" {
			continue
		}
		props := tool.InputSchema["properties"].(map[string]interface{})
		mode := props["mode"].(map[string]interface{})
		enum, ok := mode["enum"].([]string)
		if !ok {
			t.Fatal("mode enum should be a string slice")
		}
		want := []string{"alpha", "color", "none"}
		if len(enum) != len(want) {
			t.Fatalf("mode enum: got %v, want %v", enum, want)
		}
		for i := range want {
			if enum[i] != want[i] {
				t.Errorf("mode enum[%d]: got %s, want %s", i, enum[i], want[i])
			}
		}
		return
	}
	t.Fatal("watermark_apply tool not found")
}

func TestHandleToolsList(t *testing.T) {
	s := New()
	req := &MCPRequest{
		JSONRPC: "2.0",
		ID:      "list-1",
	}

	resp := s.handleToolsList(req)

	if resp.ID != "list-1" {
		t.Errorf("ID: got %v, want list-1", resp.ID)
	}
	if resp.Error != nil {
		t.Errorf("Unexpected error: %v", resp.Error)
	}

	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatal("Result should be a map")
	}
	if _, ok := result["tools"].([]Tool); !ok {
		t.Fatal("tools should be a slice of Tool")
	}
}
