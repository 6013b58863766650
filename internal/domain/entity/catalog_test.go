package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategories_Order(t *testing.T) {
	var ids []string
	for _, c := range Categories() {
		ids = append(ids, c.ID)
	}

	assert.Equal(t, []string{"custom", "nature", "comic", "action", "scifi", "fantasy", "anime"}, ids)
}

func TestCategories_ReturnsCopies(t *testing.T) {
	first := Categories()
	first[1].Subcategories[0].Name = "mutated"
	first[0].Name = "mutated"

	again := Categories()
	assert.Equal(t, "Custom", again[0].Name)
	assert.Equal(t, AutoDetect, again[1].Subcategories[0].Name)
}

func TestFindCategory(t *testing.T) {
	custom, ok := FindCategory("custom")
	require.True(t, ok)
	assert.True(t, custom.IsCustom)
	assert.False(t, custom.HasSubcategories())

	fantasy, ok := FindCategory("fantasy")
	require.True(t, ok)
	assert.True(t, fantasy.HasSubcategories())
	assert.Len(t, fantasy.Subcategories, 11)

	scifi, ok := FindCategory("scifi")
	require.True(t, ok)
	assert.Equal(t, "Science Fiction", scifi.Name)

	_, ok = FindCategory("western")
	assert.False(t, ok)
}

func TestFindSubcategory(t *testing.T) {
	nature, ok := FindCategory("nature")
	require.True(t, ok)

	forest, ok := nature.FindSubcategory("nature-forest")
	require.True(t, ok)
	assert.Equal(t, "Forest", forest.Name)

	_, ok = nature.FindSubcategory("fantasy-forest")
	assert.False(t, ok)

	fantasy, ok := FindCategory("fantasy")
	require.True(t, ok)
	elves, ok := fantasy.FindSubcategory("fantasy-elves")
	require.True(t, ok)
	assert.Equal(t, "Elven Enclaves", elves.Name)
}

func TestCategories_AutoDetectFirst(t *testing.T) {
	for _, c := range Categories() {
		if !c.HasSubcategories() {
			continue
		}
		assert.Equal(t, AutoDetect, c.Subcategories[0].Name, c.ID)
	}
}
