package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"smart_fridge/internal/logger"
	"smart_fridge/internal/metrics"
	"smart_fridge/internal/models"
	"smart_fridge/internal/repository"
)

const (
	DefaultPreference = "Surprise me with something healthy"

	// FallbackRecipe replaces the answer whenever the text model fails.
	FallbackRecipe = "Sorry, I had trouble thinking of a recipe. Please try again."
	// EmptyRecipe replaces an empty answer.
	EmptyRecipe = "Could not generate a recipe at this time."
)

var ErrEmptyInventory = errors.New("inventory is empty")

// Recipe is the text model's answer plus its markup broken into blocks.
type Recipe struct {
	Text     string        `json:"text"`
	Blocks   []RecipeBlock `json:"blocks"`
	Fallback bool          `json:"fallback"`
}

type RecipeService struct {
	text      TextModel
	inventory Inventory
	events    activityWriter
	metrics   *metrics.Metrics
	guard     busyGuard
}

func NewRecipeService(text TextModel, inventory Inventory, eventRepo repository.EventRepo, m *metrics.Metrics, clock Clock) *RecipeService {
	return &RecipeService{text: text, inventory: inventory, events: newActivityWriter(eventRepo, clock), metrics: m}
}

func (s *RecipeService) WithLogger(l *logger.Logger) *RecipeService {
	if l != nil {
		s.events.log = l
	}
	return s
}

// Busy reports whether a recipe request is in flight.
func (s *RecipeService) Busy() bool { return s.guard.busy() }

// Suggest asks the text model for one recipe built around the inventory.
// Model failures never surface as errors: the answer becomes FallbackRecipe.
// Errors are only ErrBusy and ErrEmptyInventory, both raised before any
// model call.
func (s *RecipeService) Suggest(ctx context.Context, preference string) (Recipe, error) {
	if !s.guard.tryAcquire() {
		s.metrics.ObserveRecipe(metrics.ResultBusy)
		return Recipe{}, ErrBusy
	}
	defer s.guard.release()

	items := s.inventory.Snapshot(ctx)
	if len(items) == 0 {
		return Recipe{}, ErrEmptyInventory
	}

	prompt := BuildRecipePrompt(items, preference)

	var (
		answer string
		err    error
	)
	if s.text == nil {
		err = errors.New("text model is not configured")
	} else {
		answer, err = s.text.GenerateText(ctx, prompt)
	}

	switch {
	case err != nil:
		s.metrics.ObserveRecipe(metrics.ResultFallback)
		s.events.append(ctx, models.EventRecipeFallback, "Recipe generation failed", map[string]any{"error": err.Error()})
		return newRecipe(FallbackRecipe, true), nil
	case strings.TrimSpace(answer) == "":
		s.metrics.ObserveRecipe(metrics.ResultFallback)
		s.events.append(ctx, models.EventRecipeFallback, "Recipe generation returned nothing", nil)
		return newRecipe(EmptyRecipe, true), nil
	}

	s.metrics.ObserveRecipe(metrics.ResultOK)
	s.events.append(ctx, models.EventRecipeGenerated, "Recipe generated", map[string]any{
		"preference": effectivePreference(preference),
		"items":      len(items),
	})
	return newRecipe(answer, false), nil
}

func newRecipe(text string, fallback bool) Recipe {
	return Recipe{Text: text, Blocks: ParseRecipeMarkup(text), Fallback: fallback}
}

func effectivePreference(p string) string {
	if p = strings.TrimSpace(p); p == "" {
		return DefaultPreference
	}
	return p
}

// BuildRecipePrompt lists every item as "- <qty> <unit> <name> (expires: <date>)"
// and asks for a markdown recipe favouring what expires first.
func BuildRecipePrompt(items []models.InventoryItem, preference string) string {
	lines := make([]string, 0, len(items))
	for _, it := range items {
		expires := it.ExpiryDate.String()
		if expires == "" {
			expires = "unknown"
		}
		lines = append(lines, fmt.Sprintf("- %s %s %s (expires: %s)",
			strconv.FormatFloat(it.Quantity, 'f', -1, 64), it.Unit, it.Name, expires))
	}

	var b strings.Builder
	b.WriteString("You are a world-class chef specialized in reducing food waste.\n")
	b.WriteString("Here is the current inventory of the refrigerator:\n")
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "User preferences/request: %q\n\n", effectivePreference(preference))
	b.WriteString("Please suggest one detailed recipe that maximizes the use of ingredients, especially those expiring soon.\n")
	b.WriteString("Format the output in Markdown. Include:\n")
	b.WriteString("1. Recipe Title\n")
	b.WriteString("2. Brief description\n")
	b.WriteString("3. Ingredients list (mark which ones are from the inventory)\n")
	b.WriteString("4. Step-by-step instructions\n")
	b.WriteString("5. A \"Chef's Tip\" for storage or flavor.\n")
	return b.String()
}

