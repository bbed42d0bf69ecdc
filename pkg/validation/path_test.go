package validation

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPath_String(t *testing.T) {
	tests := []struct {
		name string
		path Path
		want string
	}{
		{"empty", nil, ""},
		{"single key", Path{Key("info")}, "/info"},
		{"single index", Path{Index(3)}, "[3]"},
		{"info title", Path{Key("info"), Index(0), Key("title")}, "/info[0]/title"},
		{"components", Path{Key("components"), Index(2), Key("name")}, "/components[2]/name"},
		{"adjacent indices", Path{Key("a"), Index(1), Index(2)}, "/a[1][2]"},
		{"key with slash", Path{Key("paths"), Key("/pets/{id}")}, "/paths//pets/{id}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.path.String())
		})
	}
}

func TestPath_Pointer(t *testing.T) {
	p := NewPath("paths", "/pets/{id}", "get", "parameters", 0, "a~b")
	assert.Equal(t, "/paths/~1pets~1{id}/get/parameters/0/a~0b", p.Pointer())
	assert.Equal(t, "", Path{}.Pointer())
}

func TestPath_AppendDoesNotAlias(t *testing.T) {
	parent := make(Path, 1, 8)
	parent[0] = Key("paths")

	a := parent.Key("a")
	b := parent.Key("b")

	assert.Equal(t, "/paths/a", a.String())
	assert.Equal(t, "/paths/b", b.String())
	assert.Equal(t, "/paths", parent.String())
}

func TestPath_Last(t *testing.T) {
	_, ok := Path{}.Last()
	assert.False(t, ok)

	seg, ok := NewPath("paths", "/pets").Last()
	require.True(t, ok)
	assert.Equal(t, "/pets", seg.Name())
	assert.False(t, seg.IsIndex())
	assert.Equal(t, -1, seg.Int())

	seg, _ = NewPath("servers", 4).Last()
	assert.True(t, seg.IsIndex())
	assert.Equal(t, 4, seg.Int())
	assert.Equal(t, "", seg.Name())
}

func TestNewPath_PanicsOnUnsupportedPart(t *testing.T) {
	assert.Panics(t, func() { NewPath("a", 1.5) })
}

func TestPath_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(NewPath("info", 0, `ti"tle`))
	require.NoError(t, err)
	assert.JSONEq(t, `["info", 0, "ti\"tle"]`, string(data))
}
