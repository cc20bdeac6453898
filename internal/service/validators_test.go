package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUsername(t *testing.T) {
	cases := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{"plain", "vasya", false},
		{"dots and digits", "vasya.pupkin2", false},
		{"allowed punctuation", "user (one) [two]", false},
		{"reserved me", "me", true},
		{"reserved me uppercase", "Me", true},
		{"reserved admin", "admin", true},
		{"reserved subscriptions", "subscriptions", true},
		{"reserved set_password", "set_password", true},
		{"exclamation mark", "vasya!", true},
		{"percent sign", "va%sya", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateUsername(tc.username)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	cases := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{"plain", "user@example.com", false},
		{"dots in local part", "first.last@mail.ru", false},
		{"uppercase letters", "User@Example.com", true},
		{"plus sign", "user+tag@example.com", true},
		{"no domain", "user@", true},
		{"no tld", "user@example", true},
		{"leading dot", ".user@example.com", true},
		{"single letter tld", "user@example.c", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateEmail(tc.email)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateRecipeName(t *testing.T) {
	assert.NoError(t, validateRecipeName("Borscht with beans"))
	assert.Error(t, validateRecipeName("olivier"))
	assert.Error(t, validateRecipeName("Olivier"))
	assert.Error(t, validateRecipeName("kholodnik"))
	assert.Error(t, validateRecipeName("cabbage rolls with filth"))
	assert.Error(t, validateRecipeName("soup!"))
}

func TestValidateRecipeText(t *testing.T) {
	assert.NoError(t, validateRecipeText("Boil the potatoes for 20 minutes"))
	assert.Error(t, validateRecipeText("only a clown cooks like this"))
	assert.Error(t, validateRecipeText("dig a hole first"))
	assert.Error(t, validateRecipeText("use an ostrich egg"))
}

func TestValidateCookingTime(t *testing.T) {
	assert.Error(t, validateCookingTime(0))
	assert.NoError(t, validateCookingTime(1))
	assert.NoError(t, validateCookingTime(90))
	assert.NoError(t, validateCookingTime(32000))
	assert.Error(t, validateCookingTime(32001))
}

func TestDuplicates(t *testing.T) {
	assert.Empty(t, duplicates([]string{"a", "b", "c"}))
	assert.Equal(t, []string{"a"}, duplicates([]string{"a", "b", "a"}))
	assert.Equal(t, []uint{2, 1}, duplicates([]uint{2, 1, 2, 1, 3}))
}

func TestValidateTagsAndIngredients(t *testing.T) {
	assert.NoError(t, validateTagsAndIngredients([]string{"lunch"}, []uint{1, 2}))
	assert.Error(t, validateTagsAndIngredients(nil, []uint{1}))
	assert.Error(t, validateTagsAndIngredients([]string{"lunch"}, nil))
	assert.Error(t, validateTagsAndIngredients([]string{"lunch", "lunch"}, []uint{1}))
	assert.Error(t, validateTagsAndIngredients([]string{"lunch"}, []uint{1, 1}))
}
