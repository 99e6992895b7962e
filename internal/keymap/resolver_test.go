//nolint:goconst // test cases intentionally repeat strings for readability
package keymap

import (
	"slices"
	"testing"
)

func TestResolver_Resolve(t *testing.T) {
	bindings := []Binding{
		{ActionQuit, []string{"ctrl+c"}, "Quit", ContextGlobal},
		{ActionChoiceNext, []string{"right"}, "Next choice", ContextForm},
		{ActionNext, []string{"right", "l"}, "Next photo", ContextLightbox},
		{ActionExit, []string{"esc"}, "Back", ContextLightbox},
	}

	r := NewResolver(bindings)

	tests := []struct {
		context  string
		key      string
		expected Action
	}{
		{ContextForm, "right", ActionChoiceNext},
		{ContextLightbox, "right", ActionNext},
		{ContextLightbox, "l", ActionNext},
		{ContextForm, "l", ""},
		{ContextLightbox, "esc", ActionExit},
		{ContextForm, "ctrl+c", ActionQuit},
		{ContextLightbox, "ctrl+c", ActionQuit},
		{ContextLightbox, "unknown", ""},
		{"other", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.context+"/"+tt.key, func(t *testing.T) {
			result := r.Resolve(tt.context, tt.key)
			if result != tt.expected {
				t.Errorf("Resolve(%q, %q) = %q, want %q", tt.context, tt.key, result, tt.expected)
			}
		})
	}
}

func TestResolver_KeysFor(t *testing.T) {
	r := NewResolver([]Binding{
		{ActionQuit, []string{"q", "ctrl+c"}, "Quit", ContextLightbox},
		{ActionQuit, []string{"ctrl+c"}, "Quit", ContextGlobal},
		{ActionTogglePause, []string{" "}, "Pause", ContextLightbox},
	})

	keys := r.KeysFor(ActionQuit)
	if len(keys) != 2 || !slices.Contains(keys, "q") || !slices.Contains(keys, "ctrl+c") {
		t.Errorf("KeysFor(quit) = %v, want deduplicated [q ctrl+c]", keys)
	}
	if keys := r.KeysFor(Action("unknown")); keys != nil {
		t.Errorf("KeysFor(unknown) = %v, want nil", keys)
	}
}

func TestBindings_NoConflictsWithinContext(t *testing.T) {
	seen := make(map[string]Action)
	for _, b := range Bindings {
		for _, key := range b.Keys {
			id := b.Context + "/" + key
			if prev, ok := seen[id]; ok && prev != b.Action {
				t.Errorf("key %q in %s bound to both %s and %s", key, b.Context, prev, b.Action)
			}
			seen[id] = b.Action
		}
	}
}

func TestBindings_LightboxControls(t *testing.T) {
	r := NewResolver(Bindings)

	tests := []struct {
		key  string
		want Action
	}{
		{" ", ActionTogglePause},
		{"right", ActionNext},
		{"n", ActionNext},
		{"left", ActionPrevious},
		{"p", ActionPrevious},
		{"esc", ActionExit},
		{"x", ActionExit},
		{"q", ActionQuit},
		{"ctrl+c", ActionQuit},
	}
	for _, tt := range tests {
		if got := r.Resolve(ContextLightbox, tt.key); got != tt.want {
			t.Errorf("Resolve(lightbox, %q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestByContext(t *testing.T) {
	form := ByContext(ContextForm)
	if len(form) == 0 {
		t.Fatal("no form bindings")
	}
	for _, b := range form {
		if b.Context != ContextForm {
			t.Errorf("ByContext(form) returned %s binding", b.Context)
		}
	}
	if got := ByContext("missing"); got != nil {
		t.Errorf("ByContext(missing) = %v, want nil", got)
	}
}
