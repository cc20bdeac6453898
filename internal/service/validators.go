package service

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	MinCookTime = 1
	MaxCookTime = 32000
)

var (
	notAllowedSymbols = regexp.MustCompile(`[^\w.@+()\-\[\] ]`)
	emailBadSymbols   = regexp.MustCompile(`[^a-z0-9@._]`)
	emailStructure    = regexp.MustCompile(`^[a-z0-9]+[a-z0-9._]*@[a-z0-9]+\.[a-z]{2,}$`)
)

// Names that would collide with user routes or impersonate staff.
var prohibitedUsernames = map[string]struct{}{
	"me":            {},
	"admin":         {},
	"subscriptions": {},
	"set_password":  {},
}

var prohibitedRecipes = map[string]struct{}{
	"olivier":                  {},
	"kholodnik":                {},
	"cabbage rolls with filth": {},
}

var prohibitedWords = []string{"clown", "hole", "ostrich"}

func validateUsername(username string) error {
	if _, ok := prohibitedUsernames[strings.ToLower(username)]; ok {
		return fmt.Errorf("invalid username: %s", username)
	}
	if wrong := notAllowedSymbols.FindAllString(username, -1); len(wrong) > 0 {
		return fmt.Errorf("the username contains prohibited symbols: %s",
			strings.Join(dedupe(wrong), ""))
	}
	return nil
}

func validateEmail(email string) error {
	if wrong := emailBadSymbols.FindAllString(email, -1); len(wrong) > 0 {
		return fmt.Errorf("email contains prohibited symbols: %s",
			strings.Join(dedupe(wrong), ""))
	}
	if !emailStructure.MatchString(email) {
		return fmt.Errorf("enter a valid email")
	}
	return nil
}

func validateRecipeName(name string) error {
	if _, ok := prohibitedRecipes[strings.ToLower(name)]; ok {
		return fmt.Errorf("invalid recipe name: %s", name)
	}
	if wrong := notAllowedSymbols.FindAllString(name, -1); len(wrong) > 0 {
		return fmt.Errorf("the recipe name contains prohibited symbols: %s",
			strings.Join(dedupe(wrong), ""))
	}
	return nil
}

func validateRecipeText(text string) error {
	for _, word := range prohibitedWords {
		if strings.Contains(text, word) {
			return fmt.Errorf("profanity in the description is prohibited")
		}
	}
	return nil
}

func validateCookingTime(minutes int) error {
	if minutes < MinCookTime || minutes > MaxCookTime {
		return fmt.Errorf("cooking time must be between %d and %d",
			MinCookTime, MaxCookTime)
	}
	return nil
}

// duplicates returns the values occurring more than once, in first
// occurrence order.
func duplicates[T comparable](values []T) []T {
	counts := make(map[T]int, len(values))
	for _, v := range values {
		counts[v]++
	}
	var dups []T
	seen := make(map[T]struct{})
	for _, v := range values {
		if counts[v] > 1 {
			if _, ok := seen[v]; !ok {
				seen[v] = struct{}{}
				dups = append(dups, v)
			}
		}
	}
	return dups
}

func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	var out []string
	for _, v := range values {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	return out
}

func validateTagsAndIngredients(tagSlugs []string, ingredientIDs []uint) error {
	if len(ingredientIDs) == 0 {
		return fmt.Errorf("the ingredients field is empty")
	}
	if len(tagSlugs) == 0 {
		return fmt.Errorf("the tags field is empty")
	}
	if dups := duplicates(tagSlugs); len(dups) > 0 {
		return fmt.Errorf("tags %v are not unique", dups)
	}
	if dups := duplicates(ingredientIDs); len(dups) > 0 {
		return fmt.Errorf("ingredients %v are not unique", dups)
	}
	return nil
}
