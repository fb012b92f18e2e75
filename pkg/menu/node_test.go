package menu

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddChild(t *testing.T) {
	root := NewRoot()

	a, err := root.AddChild("a", Item{URI: URL("/a")})
	require.NoError(t, err)
	_, err = root.AddChild("b", Item{Label: "Bee"})
	require.NoError(t, err)

	assert.Equal(t, "a", a.Label)
	assert.Equal(t, "Bee", root.Child("b").Label)
	assert.Same(t, a, root.Child("a"))
	assert.Nil(t, root.Child("c"))
	assert.True(t, root.HasChildren())
	assert.False(t, a.HasChildren())

	_, err = root.AddChild("a", Item{})
	require.ErrorIs(t, err, ErrDuplicateKey)
	assert.Len(t, root.Children(), 2)
}

func TestDisplayName(t *testing.T) {
	n := &Node{Label: "Label"}
	assert.Equal(t, "Label", n.DisplayName())

	n.Extras.Name = "Name"
	assert.Equal(t, "Name", n.DisplayName())
}

func TestLink(t *testing.T) {
	tests := []struct {
		name    string
		link    Link
		json    string
		zero    bool
		pending bool
	}{
		{"none", Link{}, "null", true, false},
		{"empty url", URL(""), "null", true, false},
		{"pending", Pending(), `""`, false, true},
		{"resolved", URL("/bolt/users"), `"/bolt/users"`, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.link)
			require.NoError(t, err)
			assert.JSONEq(t, tt.json, string(data))
			assert.Equal(t, tt.zero, tt.link.IsZero())
			assert.Equal(t, tt.pending, tt.link.IsPending())
		})
	}

	assert.Equal(t, "/x", URL("/x").String())
	assert.Equal(t, "", Pending().String())
}
