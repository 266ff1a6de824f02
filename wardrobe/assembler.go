package wardrobe

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/maya-reeves/wardrobe-api/models"
)

// ItemFinder looks up a user's single best-matching clothing item for a
// main category, restricted to the given subcategories. A nil item with a
// nil error means no item qualified.
type ItemFinder interface {
	FindFirstItem(ctx context.Context, userID uint, mainCategory string, subCategories []string) (*models.Item, error)
}

// Recommendation is the result of assembling an outfit. Slots with no
// qualifying item are nil; Text describes the missing slots and is empty
// when every slot is filled.
type Recommendation struct {
	Top       *models.Item `json:"top"`
	Bottom    *models.Item `json:"bottom"`
	Shoes     *models.Item `json:"shoes"`
	Accessory *models.Item `json:"accessory"`
	Text      string       `json:"recommendationText,omitempty"`
}

// slots in fixed order; the order drives the fallback text.
var slots = []struct {
	mainCategory string
	phrase       string
}{
	{CategoryTops, "a comfortable top"},
	{CategoryBottoms, "suitable bottoms"},
	{CategoryShoes, "appropriate shoes"},
	{CategoryAccessories, "an accessory"},
}

// Assembler selects one eligible item per garment slot for a user.
type Assembler struct {
	finder ItemFinder
}

// NewAssembler creates an Assembler backed by the given ItemFinder.
func NewAssembler(finder ItemFinder) *Assembler {
	return &Assembler{finder: finder}
}

// Assemble fills the four garment slots independently. The lookups are
// read-only and have no ordering dependency, so they run concurrently.
// Missing items are not an error; only a failing finder is.
func (a *Assembler) Assemble(ctx context.Context, userID uint, eligibleSubCategories []string) (*Recommendation, error) {
	found := make([]*models.Item, len(slots))

	g, gctx := errgroup.WithContext(ctx)
	for i, slot := range slots {
		i, slot := i, slot
		g.Go(func() error {
			item, err := a.finder.FindFirstItem(gctx, userID, slot.mainCategory, eligibleSubCategories)
			if err != nil {
				return err
			}
			found[i] = item
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	rec := &Recommendation{
		Top:       found[0],
		Bottom:    found[1],
		Shoes:     found[2],
		Accessory: found[3],
	}
	rec.Text = fallbackText(found)
	return rec, nil
}

// fallbackText builds the human-readable hint for unfilled slots.
func fallbackText(found []*models.Item) string {
	var missing []string
	for i, slot := range slots {
		if found[i] == nil {
			missing = append(missing, slot.phrase)
		}
	}
	if len(missing) == 0 {
		return ""
	}
	return "Recommended to wear " + strings.Join(missing, ", ") + "."
}

// GormItemFinder implements ItemFinder on a GORM connection. Ties are
// broken deterministically: the most recently created item wins.
type GormItemFinder struct {
	DB *gorm.DB
}

// FindFirstItem returns the newest item of the user in mainCategory whose
// subcategory is in subCategories, or nil when none match.
func (f *GormItemFinder) FindFirstItem(ctx context.Context, userID uint, mainCategory string, subCategories []string) (*models.Item, error) {
	var item models.Item
	err := f.DB.WithContext(ctx).
		Where("user_id = ? AND main_category = ? AND sub_category IN ?", userID, mainCategory, subCategories).
		Order("created_at DESC, id DESC").
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}
