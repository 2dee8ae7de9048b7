package foods

import (
	"context"
	"errors"
	"log/slog"

	"github.com/JaimeStill/menu-lab/internal/images"
	"github.com/JaimeStill/menu-lab/internal/menu"
	"github.com/JaimeStill/menu-lab/pkg/docstore"
	"github.com/JaimeStill/menu-lab/pkg/keylock"
	"github.com/JaimeStill/menu-lab/pkg/pagination"
)

type repo struct {
	store      docstore.Store
	images     images.System
	locks      *keylock.Locker
	logger     *slog.Logger
	pagination pagination.Config
}

func New(
	store docstore.Store,
	imgs images.System,
	locks *keylock.Locker,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	return &repo{
		store:      store,
		images:     imgs,
		locks:      locks,
		logger:     logger.With("system", "foods"),
		pagination: pagination,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

func (r *repo) List(ctx context.Context, filters Filters, page pagination.PageRequest) (*pagination.PageResult[Food], error) {
	if filters.RestaurantID == "" {
		return nil, menu.Missing("restaurantId")
	}
	if filters.SectionID == "" {
		return nil, menu.Missing("sectionId")
	}
	page.Normalize(r.pagination)

	collection := menu.FoodsCollection(filters.RestaurantID, filters.SectionID)
	docs, err := r.store.List(ctx, collection)
	if err != nil {
		return nil, menu.Wrap("list food items", collection, err)
	}

	items := make([]Food, 0, len(docs))
	for i := range docs {
		f, err := fromDocument(&docs[i])
		if err != nil {
			return nil, err
		}
		items = append(items, f)
	}

	items = search(items, page.Search)
	order(items, page.Sort)

	result := pagination.Slice(items, page)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, restaurantID, sectionID, id string) (*Food, error) {
	cmd := DeleteCommand{ID: id, RestaurantID: restaurantID, SectionID: sectionID}
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	path := menu.FoodPath(restaurantID, sectionID, id)
	doc, err := r.store.Get(ctx, path)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, menu.Wrap("read food item", path, err)
	}

	f, err := fromDocument(doc)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	release, err := r.locks.Acquire(ctx, menu.SectionLock(cmd.RestaurantID, cmd.SectionID))
	if err != nil {
		return "", err
	}
	defer release()

	fields := cmd.Fields.normalize(cmd.SectionID)
	r.warnImages(fields)

	if err := r.ensureSection(ctx, cmd.RestaurantID, cmd.SectionID, sectionName(cmd.SectionName, fields.FoodType, cmd.SectionID)); err != nil {
		return "", err
	}

	data, err := toDocument(fields)
	if err != nil {
		return "", err
	}

	collection := menu.FoodsCollection(cmd.RestaurantID, cmd.SectionID)
	id, err := docstore.Add(ctx, r.store, collection, data)
	if err != nil {
		return "", menu.Wrap("add food item", collection, err)
	}

	r.logger.Info("food item added", "id", id, "restaurant", cmd.RestaurantID, "section", cmd.SectionID)
	return id, nil
}

func (r *repo) Update(ctx context.Context, cmd UpdateCommand) (images.Report, error) {
	if err := cmd.Validate(); err != nil {
		return images.Report{}, err
	}

	source := cmd.SectionID
	if cmd.Moves() {
		source = cmd.OriginalSectionID
	}

	release, err := r.locks.Acquire(ctx,
		menu.SectionLock(cmd.RestaurantID, source),
		menu.SectionLock(cmd.RestaurantID, cmd.SectionID),
	)
	if err != nil {
		return images.Report{}, err
	}
	defer release()

	previous, err := r.current(ctx, menu.FoodPath(cmd.RestaurantID, source, cmd.ID))
	if err != nil {
		return images.Report{}, err
	}

	// An update that omits images keeps the stored list.
	if cmd.Images == nil && previous != nil {
		cmd.Images = previous.Images
	}

	fields := cmd.Fields.normalize(cmd.SectionID)
	r.warnImages(fields)

	data, err := toDocument(fields)
	if err != nil {
		return images.Report{}, err
	}

	if err := r.ensureSection(ctx, cmd.RestaurantID, cmd.SectionID, sectionName(cmd.SectionName, fields.FoodType, cmd.SectionID)); err != nil {
		return images.Report{}, err
	}

	target := menu.FoodPath(cmd.RestaurantID, cmd.SectionID, cmd.ID)

	if cmd.Moves() {
		r.logger.Info("moving food item", "id", cmd.ID, "from", source, "to", cmd.SectionID)
	}
	if err := r.store.Set(ctx, target, data); err != nil {
		return images.Report{}, menu.Wrap("write food item", target, err)
	}

	if cmd.Moves() {
		original := menu.FoodPath(cmd.RestaurantID, source, cmd.ID)
		if err := r.store.Delete(ctx, original); err != nil {
			return images.Report{}, menu.Wrap("delete food item", original, err)
		}
	}

	report := images.Report{Failures: []images.Failure{}}
	if previous != nil {
		if removed := removedImages(previous.Images, fields.Images); len(removed) > 0 {
			report = r.cleanup(ctx, cmd.RestaurantID, cmd.ID, removed)
		}
	}

	r.logger.Info("food item updated", "id", cmd.ID, "restaurant", cmd.RestaurantID, "section", cmd.SectionID)
	return report, nil
}

func (r *repo) Delete(ctx context.Context, cmd DeleteCommand) (images.Report, error) {
	if err := cmd.Validate(); err != nil {
		return images.Report{}, err
	}

	release, err := r.locks.Acquire(ctx, menu.SectionLock(cmd.RestaurantID, cmd.SectionID))
	if err != nil {
		return images.Report{}, err
	}
	defer release()

	path := menu.FoodPath(cmd.RestaurantID, cmd.SectionID, cmd.ID)
	existing, err := r.current(ctx, path)
	if err != nil {
		return images.Report{}, err
	}

	if err := r.store.Delete(ctx, path); err != nil {
		return images.Report{}, menu.Wrap("delete food item", path, err)
	}

	report := images.Report{Failures: []images.Failure{}}
	if existing != nil && len(existing.Images) > 0 {
		report = r.cleanup(ctx, cmd.RestaurantID, cmd.ID, existing.Images)
	}

	r.logger.Info("food item deleted", "id", cmd.ID, "restaurant", cmd.RestaurantID, "section", cmd.SectionID)
	return report, nil
}

func (r *repo) cleanup(ctx context.Context, restaurantID, id string, urls []string) images.Report {
	report, err := r.images.Cleanup(ctx, restaurantID, urls)
	if err != nil {
		r.logger.Warn("image cleanup incomplete",
			"id", id,
			"restaurant", restaurantID,
			"failed", len(report.Failures),
			"error", err,
		)
	}
	return report
}

// current reads the stored item at path, returning nil when it does not exist.
func (r *repo) current(ctx context.Context, path string) (*Food, error) {
	doc, err := r.store.Get(ctx, path)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, nil
		}
		return nil, menu.Wrap("read food item", path, err)
	}

	f, err := fromDocument(doc)
	if err != nil {
		r.logger.Warn("stored food item is unreadable", "path", path, "error", err)
		return nil, nil
	}
	return &f, nil
}

// ensureSection writes the section document when it does not exist.
// Callers hold the section lock.
func (r *repo) ensureSection(ctx context.Context, restaurantID, sectionID, name string) error {
	path := menu.SectionPath(restaurantID, sectionID)

	_, err := r.store.Get(ctx, path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, docstore.ErrNotFound) {
		return menu.Wrap("read section", path, err)
	}

	if err := r.store.Set(ctx, path, map[string]any{"name": name}); err != nil {
		return menu.Wrap("write section", path, err)
	}

	r.logger.Info("section created", "restaurant", restaurantID, "section", sectionID, "name", name)
	return nil
}

func (r *repo) warnImages(f Fields) {
	if len(f.Images) > menu.ImageWarnThreshold {
		r.logger.Warn("food item exceeds image threshold",
			"name", f.Name,
			"images", len(f.Images),
			"threshold", menu.ImageWarnThreshold,
		)
	}
}

func sectionName(candidates ...string) string {
	for _, c := range candidates {
		if c != "" {
			return c
		}
	}
	return ""
}
