package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchema_Default(t *testing.T) {
	reg := NewRegistry()
	sch, err := reg.SchemaFor("hero")
	assert.NoError(t, err)

	got := sch.Default()

	assert.Equal(t, map[string]any{
		"title":       "",
		"subtitle":    "",
		"description": "",
		"image":       "",
		"primaryCTA":  map[string]any{"text": "", "url": ""},
		"secondaryCTA": map[string]any{
			"text": "",
			"url":  "",
		},
	}, got)
}

func TestSchema_Default_ListsAreEmpty(t *testing.T) {
	reg := NewRegistry()
	sch, err := reg.SchemaFor("projects")
	assert.NoError(t, err)

	got := sch.Default()

	assert.Equal(t, []any{}, got["projects"])
	// fallback literals live in Resolve, not Default
	assert.Equal(t, "", got["title"])
}

func TestSchema_Normalize_StoredValuesWin(t *testing.T) {
	reg := NewRegistry()
	sch, err := reg.SchemaFor("hero")
	assert.NoError(t, err)

	partial := map[string]any{
		"title": "Hi there,",
		"primaryCTA": map[string]any{
			"text": "Browse",
		},
	}

	got := sch.Normalize(partial)

	assert.Equal(t, "Hi there,", got["title"])
	assert.Equal(t, "", got["subtitle"])
	assert.Equal(t, map[string]any{"text": "Browse", "url": ""}, got["primaryCTA"])
	assert.Equal(t, map[string]any{"text": "", "url": ""}, got["secondaryCTA"])

	// input stays untouched
	assert.NotContains(t, partial, "subtitle")
	assert.NotContains(t, partial["primaryCTA"], "url")
}

func TestSchema_Normalize_ListItems(t *testing.T) {
	reg := NewRegistry()
	sch, err := reg.SchemaFor("experience")
	assert.NoError(t, err)

	got := sch.Normalize(map[string]any{
		"experiences": []any{
			map[string]any{"id": float64(42), "company": "Acme"},
		},
	})

	items, ok := got["experiences"].([]any)
	assert.True(t, ok)
	assert.Len(t, items, 1)

	item := items[0].(map[string]any)
	assert.Equal(t, float64(42), item["id"])
	assert.Equal(t, "Acme", item["company"])
	assert.Equal(t, "", item["position"])
	assert.Equal(t, "", item["duration"])
	assert.Equal(t, []any{}, item["description"])
}

func TestSchema_Normalize_NeverFabricatesItemIDs(t *testing.T) {
	reg := NewRegistry()
	sch, err := reg.SchemaFor("projects")
	assert.NoError(t, err)

	got := sch.Normalize(map[string]any{
		"projects": []any{
			map[string]any{"title": "Legacy entry"},
		},
	})

	item := got["projects"].([]any)[0].(map[string]any)
	assert.Nil(t, item["id"])
	assert.Equal(t, "Legacy entry", item["title"])
}

func TestSchema_Resolve_FallbackLiterals(t *testing.T) {
	reg := NewRegistry()
	sch, err := reg.SchemaFor("hero")
	assert.NoError(t, err)

	got := sch.Resolve(map[string]any{})

	assert.Equal(t, "Hello, I'm", got["title"])
	assert.Equal(t, "Haseeb", got["subtitle"])
	assert.Equal(t, "Full Stack Developer", got["description"])
	assert.Equal(t, map[string]any{"text": "View My Work", "url": "#projects"}, got["primaryCTA"])
	assert.Equal(t, map[string]any{"text": "Contact Me", "url": "#contact"}, got["secondaryCTA"])

	// no fallback is declared for the hero image, so it stays empty
	assert.Equal(t, "", got["image"])
}

func TestSchema_Resolve_EmptyStringTriggersFallback(t *testing.T) {
	reg := NewRegistry()
	sch, err := reg.SchemaFor("contact")
	assert.NoError(t, err)

	got := sch.Resolve(map[string]any{
		"title": "",
		"email": "hello@realperson.dev",
	})

	assert.Equal(t, "Get In Touch", got["title"])
	assert.Equal(t, "hello@realperson.dev", got["email"])
	assert.Equal(t, "+1 (234) 567-890", got["phone"])
	assert.Equal(t, "123 Business Street, New York, NY 10001", got["address"])
}

func TestSchema_Resolve_ListsPassThrough(t *testing.T) {
	reg := NewRegistry()
	sch, err := reg.SchemaFor("skills")
	assert.NoError(t, err)

	stored := []any{
		map[string]any{"name": "Go", "level": float64(90), "category": "development"},
	}

	got := sch.Resolve(map[string]any{"skills": stored})

	assert.Equal(t, stored, got["skills"])
	assert.Equal(t, "My Skills", got["title"])
}

func TestSchema_FieldAt(t *testing.T) {
	reg := NewRegistry()
	sch, err := reg.SchemaFor("experience")
	assert.NoError(t, err)

	cases := []struct {
		path string
		ok   bool
		kind Kind
	}{
		{"title", true, KindText},
		{"experiences", true, KindList},
		{"experiences.0", true, KindObject},
		{"experiences.3.company", true, KindText},
		{"experiences.0.description", true, KindList},
		{"experiences.0.description.1", true, KindText},
		{"experiences.x.company", false, 0},
		{"nope", false, 0},
		{"title.deeper", false, 0},
	}

	for _, tc := range cases {
		field, ok := sch.FieldAt(tc.path)
		assert.Equal(t, tc.ok, ok, tc.path)
		if tc.ok {
			assert.Equal(t, tc.kind, field.Kind, tc.path)
		}
	}
}

func TestField_ItemDefault(t *testing.T) {
	reg := NewRegistry()
	sch, err := reg.SchemaFor("projects")
	assert.NoError(t, err)

	list, ok := sch.FieldByName("projects")
	assert.True(t, ok)

	item := list.ItemDefault()

	assert.Equal(t, map[string]any{
		"id":          float64(0),
		"title":       "",
		"description": "",
		"image":       "",
		"tags":        []any{},
		"link":        "",
		"github":      "",
	}, item)
}
