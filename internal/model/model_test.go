package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseProfile(t *testing.T) {
	tests := []struct {
		in   string
		want Profile
		ok   bool
	}{
		{"bunny", ProfileBunny, true},
		{" Doctor ", ProfileDoctor, true},
		{"nurse", "", false},
		{"", "", false},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := ParseProfile(tc.in)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestProfileText(t *testing.T) {
	assert.Equal(t, "Chatting with Friendly Guide", ProfileBunny.ChatTitle())
	assert.Equal(t, "Consulting Medical Professional", ProfileDoctor.ChatTitle())
	assert.Contains(t, ProfileBunny.Greeting(), "friendly guide to women's health")
	assert.Contains(t, ProfileDoctor.Greeting(), "What brings you in today?")
}

func TestCategory(t *testing.T) {
	for _, c := range Categories() {
		assert.True(t, c.Known(), c)
	}
	assert.False(t, Category("Menstrual Health").Known())
	assert.Equal(t, "♥", CategoryBreast.Glyph())
	assert.Equal(t, CategoryPCOS.Glyph(), CategoryPCOD.Glyph())
}

func TestArticleMarkdown(t *testing.T) {
	a := Article{ID: 1, Title: "T", Excerpt: "E", Category: CategoryPCOS}
	md := a.Markdown()
	assert.Contains(t, md, "# T")
	assert.Contains(t, md, "_PCOS_")
	assert.Contains(t, md, "> E")

	a.Body = "More."
	assert.Contains(t, a.Markdown(), "\nMore.\n")
}
