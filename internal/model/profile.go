package model

import "strings"

// Profile is a chatbot persona picked on the selector view.
type Profile string

const (
	ProfileBunny  Profile = "bunny"
	ProfileDoctor Profile = "doctor"
)

// Profiles lists the personas in the order they are offered.
func Profiles() []Profile {
	return []Profile{ProfileBunny, ProfileDoctor}
}

// ParseProfile maps a path segment to a Profile.
func ParseProfile(s string) (Profile, bool) {
	switch Profile(strings.ToLower(strings.TrimSpace(s))) {
	case ProfileBunny:
		return ProfileBunny, true
	case ProfileDoctor:
		return ProfileDoctor, true
	}
	return "", false
}

func (p Profile) Name() string {
	if p == ProfileBunny {
		return "Friendly Guide"
	}
	return "Medical Professional"
}

func (p Profile) Tagline() string {
	if p == ProfileBunny {
		return "For gentle support"
	}
	return "For clinical expertise"
}

// ChatTitle is the header shown on the chat view.
func (p Profile) ChatTitle() string {
	if p == ProfileBunny {
		return "Chatting with Friendly Guide"
	}
	return "Consulting Medical Professional"
}

// Greeting is the opening message of the persona.
func (p Profile) Greeting() string {
	if p == ProfileBunny {
		return "Hi there! I'm your friendly guide to women's health. How can I help you today?"
	}
	return "Hello, I'm your healthcare professional consultant. What brings you in today?"
}

// Avatar is a small ASCII portrait for the selector card.
func (p Profile) Avatar() string {
	if p == ProfileBunny {
		return "(\\(\\\n( -.-)\no_(\")(\")"
	}
	return " .-.\n(o o)\n |+|"
}
