package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hanintown/townboard/internal/models"
	"github.com/hanintown/townboard/pkg/telemetry"
)

// getCards handles GET /api/cards?category=&tab=. Cards share the region
// encoding with posts: no category returns everything, a main category
// covers all of its sub regions, a full selection matches exactly.
func (r *Router) getCards(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "api.get_cards")
	defer span.End()

	main := c.Query("category")
	tab := c.Query("tab")

	var (
		cards []models.BusinessCard
		err   error
	)
	switch {
	case main == "":
		cards, err = r.cards.ListAll(ctx)
	case tab == "" && !r.table.IsExtraBoard(main):
		cards, err = r.cards.ListByRegions(ctx, r.table.RegionsUnder(main))
	default:
		cards, err = r.cards.ListByRegions(ctx, []string{r.table.Encode(main, tab)})
	}
	if err != nil {
		r.logger.Warn("Card lookup failed", zap.String("category", main), zap.Error(err))
		cards = []models.BusinessCard{}
	}

	c.JSON(http.StatusOK, gin.H{"cards": cards})
}
