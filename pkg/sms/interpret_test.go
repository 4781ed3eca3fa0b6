package sms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterpret_Location(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		city  string
		state string
	}{
		{"catalog city carries its state", "looking for space in Dallas", "Dallas", "TX"},
		{"two word city", "need a warehouse near san antonio", "San Antonio", "TX"},
		{"spelled out state only", "anywhere in ohio works", "", "OH"},
		{"two letter code", "We ship out of Reno NV", "Reno", "NV"},
		{"explicit state beats implied", "chicago but really anywhere in indiana", "Chicago", "IN"},
		{"no location", "need about 5000 sqft", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mi := Interpret(tt.body)
			assert.Equal(t, tt.city, mi.City)
			assert.Equal(t, tt.state, mi.State)
		})
	}
}

func TestInterpret_Sqft(t *testing.T) {
	tests := []struct {
		name string
		body string
		min  int
		max  int
	}{
		{"with unit", "need 10,000 sqft in Atlanta", 8000, 12000},
		{"sf abbreviation", "about 5000 sf", 4000, 6000},
		{"short k form", "roughly 10k would do", 8000, 12000},
		{"fractional k", "2.5k sqft", 2000, 3000},
		{"explicit range", "8000-12000 sqft", 8000, 12000},
		{"range with to", "8,000 to 12,000 square feet", 8000, 12000},
		{"no size", "somewhere in Phoenix", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mi := Interpret(tt.body)
			assert.Equal(t, tt.min, mi.SqftMin)
			assert.Equal(t, tt.max, mi.SqftMax)
		})
	}
}

func TestInterpret_UseTypeLongestWins(t *testing.T) {
	mi := Interpret("we need cold storage for frozen goods")
	assert.Equal(t, "cold_storage", mi.UseType)

	mi = Interpret("ecommerce fulfillment and shipping")
	assert.Equal(t, "ecommerce_fulfillment", mi.UseType)

	mi = Interpret("just plain storage")
	assert.Equal(t, "storage", mi.UseType)
}

func TestInterpret_Ordinals(t *testing.T) {
	assert.Equal(t, 2, Interpret("tell me about option 2").OrdinalRef)
	assert.Equal(t, 1, Interpret("I like the first one").OrdinalRef)
	assert.Equal(t, 3, Interpret("what about #3").OrdinalRef)
	assert.Equal(t, 0, Interpret("tell me more").OrdinalRef)
}

func TestInterpret_NameAndEmail(t *testing.T) {
	mi := Interpret("Hi, my name is Jordan Reyes, email is Jordan.Reyes@example.com")
	assert.Equal(t, "Jordan", mi.FirstName)
	assert.Equal(t, "Reyes", mi.LastName)
	assert.Equal(t, "jordan.reyes@example.com", mi.Email)

	mi = Interpret("I'm Sam")
	assert.Equal(t, "Sam", mi.FirstName)
	assert.Empty(t, mi.LastName)
}

func TestInterpret_Actions(t *testing.T) {
	assert.True(t, Interpret("can I tour it this week?").WantsTour)
	assert.True(t, Interpret("let's book it").WantsBooking)
	assert.True(t, Interpret("show me the options again").WantsOptions)
	assert.False(t, Interpret("how tall is the ceiling").WantsTour)
}

func TestInterpret_Greeting(t *testing.T) {
	assert.True(t, Interpret("hi").IsGreeting)
	assert.True(t, Interpret("Hello!").IsGreeting)
	assert.False(t, Interpret("hi, need 5000 sqft in Tampa").IsGreeting)
}

func TestInterpret_YesNo(t *testing.T) {
	assert.True(t, Interpret("yes").SaidYes)
	assert.True(t, Interpret("Nope.").SaidNo)
	assert.False(t, Interpret("yes we need docks").SaidYes)
}

func TestInterpret_TopicsAndFeatures(t *testing.T) {
	mi := Interpret("does it have dock doors and what's the clear height?")
	assert.Contains(t, mi.Topics, "dock_doors")
	assert.Contains(t, mi.Topics, "clear_height")

	mi = Interpret("must have sprinklers and a fenced yard")
	assert.Contains(t, mi.Features, "sprinkler")
	assert.Contains(t, mi.Features, "secure_yard")
}

func TestHasSearchData(t *testing.T) {
	assert.True(t, Interpret("5000 sqft in Denver").HasSearchData())
	assert.False(t, Interpret("sounds good").HasSearchData())
}
