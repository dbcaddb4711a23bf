package handlers

import (
	"errors"
	"net/http"

	"smart_fridge/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errRecipeBusy      = "a recipe is already being generated"
	errRecipeEmpty     = "Your fridge is empty! Add items first."
	errRecipeGenerated = "failed to generate recipe"
)

// RecipeRequest is the optional free-form wish of the user.
type RecipeRequest struct {
	Preference string `json:"preference" example:"something spicy with chicken"`
}

// @Summary      Suggest recipe
// @Description  Builds one recipe around the inventory, favouring items that expire first.
// @Description  A model failure still answers 200 with fallback=true and an apologetic text.
// @Tags         recipes
// @Accept       json
// @Produce      json
// @Param        body  body      RecipeRequest  false  "Preference"
// @Success      200   {object}  service.Recipe
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /api/v1/recipes [post]
// @Security     BearerAuth
func (h *Handler) suggestRecipe(c *gin.Context) {
	var req RecipeRequest
	if !h.bindOptionalJSON(c, &req) {
		return
	}

	recipe, err := h.services.Suggest(c.Request.Context(), req.Preference)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBusy):
			c.JSON(http.StatusConflict, gin.H{"error": errRecipeBusy})
		case errors.Is(err, service.ErrEmptyInventory):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": errRecipeEmpty})
		default:
			h.logAndJSONError(c, http.StatusInternalServerError, errRecipeGenerated, "recipe_failed", err)
		}
		return
	}

	if recipe.Fallback && h.log != nil {
		h.log.Warnw("recipe_fallback", "text", recipe.Text)
	}
	c.JSON(http.StatusOK, recipe)
}
