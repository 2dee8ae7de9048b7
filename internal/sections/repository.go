package sections

import (
	"context"
	"errors"
	"log/slog"
	"maps"

	"github.com/JaimeStill/menu-lab/internal/foods"
	"github.com/JaimeStill/menu-lab/internal/images"
	"github.com/JaimeStill/menu-lab/internal/menu"
	"github.com/JaimeStill/menu-lab/pkg/decode"
	"github.com/JaimeStill/menu-lab/pkg/docstore"
	"github.com/JaimeStill/menu-lab/pkg/keylock"
)

const (
	workflowRename = "rename-section"
	workflowDelete = "delete-section"

	stepEnumerate     = "enumerate-items"
	stepCreateSection = "create-section"
	stepCopyItem      = "copy-item"
	stepDeleteItem    = "delete-item"
	stepDeleteSection = "delete-section"
	stepCleanupImages = "cleanup-images"
)

type repo struct {
	store  docstore.Store
	images images.System
	locks  *keylock.Locker
	logger *slog.Logger
}

func New(store docstore.Store, imgs images.System, locks *keylock.Locker, logger *slog.Logger) System {
	return &repo{
		store:  store,
		images: imgs,
		locks:  locks,
		logger: logger.With("system", "sections"),
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger)
}

func (r *repo) List(ctx context.Context, restaurantID string) ([]Section, error) {
	if restaurantID == "" {
		return nil, menu.Missing("restaurantId")
	}

	collection := menu.SectionsCollection(restaurantID)
	docs, err := r.store.List(ctx, collection)
	if err != nil {
		return nil, menu.Wrap("list sections", collection, err)
	}

	sections := make([]Section, 0, len(docs))
	for i := range docs {
		s, err := r.load(ctx, restaurantID, &docs[i])
		if err != nil {
			return nil, err
		}
		sections = append(sections, *s)
	}
	return sections, nil
}

func (r *repo) Find(ctx context.Context, restaurantID, sectionID string) (*Section, error) {
	cmd := DeleteCommand{RestaurantID: restaurantID, SectionID: sectionID}
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	path := menu.SectionPath(restaurantID, sectionID)
	doc, err := r.store.Get(ctx, path)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, menu.Wrap("read section", path, err)
	}
	return r.load(ctx, restaurantID, doc)
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Section, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	key := menu.NormalizeKey(cmd.Name)
	release, err := r.locks.Acquire(ctx, menu.SectionLock(cmd.RestaurantID, key))
	if err != nil {
		return nil, err
	}
	defer release()

	path := menu.SectionPath(cmd.RestaurantID, key)
	if _, err := r.store.Get(ctx, path); err == nil {
		return nil, ErrDuplicate
	} else if !errors.Is(err, docstore.ErrNotFound) {
		return nil, menu.Wrap("read section", path, err)
	}

	if err := r.store.Set(ctx, path, map[string]any{"name": cmd.Name}); err != nil {
		return nil, menu.Wrap("write section", path, err)
	}

	r.logger.Info("section created", "restaurant", cmd.RestaurantID, "section", key, "name", cmd.Name)
	return &Section{ID: key, Name: cmd.Name, Items: []foods.Food{}}, nil
}

func (r *repo) Rename(ctx context.Context, cmd RenameCommand, idempotencyKey string) (*RenameResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	release, err := r.acquire(ctx, cmd.RestaurantID, idempotencyKey, cmd.OldSectionID, cmd.NewSectionID)
	if err != nil {
		return nil, err
	}
	defer release()

	res, replayed, err := idempotent(ctx, r, cmd.RestaurantID, idempotencyKey, workflowRename, cmd,
		func(j *Journal) (RenameResult, error) {
			return r.rename(ctx, j, cmd)
		},
	)
	if err != nil {
		return nil, err
	}
	res.Replayed = replayed
	return &res, nil
}

// rename copies before it deletes, so an interrupted run leaves every item
// present under at least one key.
func (r *repo) rename(ctx context.Context, j *Journal, cmd RenameCommand) (RenameResult, error) {
	result := RenameResult{OperationID: j.ID}
	rid := cmd.RestaurantID

	oldCollection := menu.FoodsCollection(rid, cmd.OldSectionID)
	var items []docstore.Document
	err := j.run(stepEnumerate, oldCollection, "", func() error {
		var err error
		items, err = r.store.List(ctx, oldCollection)
		return menu.Wrap("list food items", oldCollection, err)
	})
	if err != nil {
		return result, err
	}

	newSection := menu.SectionPath(rid, cmd.NewSectionID)
	err = j.run(stepCreateSection, newSection, "", func() error {
		err := r.store.Set(ctx, newSection, map[string]any{"name": cmd.NewSectionName})
		return menu.Wrap("write section", newSection, err)
	})
	if err != nil {
		return result, err
	}

	for _, item := range items {
		target := menu.FoodPath(rid, cmd.NewSectionID, item.ID)
		err := j.run(stepCopyItem, target, item.ID, func() error {
			data := maps.Clone(item.Data)
			data["foodType"] = cmd.NewSectionName
			return menu.Wrap("write food item", target, r.store.Set(ctx, target, data))
		})
		if err != nil {
			return result, err
		}
	}

	// A name-only rename rewrote the items in place; deleting the
	// originals would delete the copies.
	if !cmd.SameKey() {
		for _, item := range items {
			original := menu.FoodPath(rid, cmd.OldSectionID, item.ID)
			err := j.run(stepDeleteItem, original, item.ID, func() error {
				return menu.Wrap("delete food item", original, r.store.Delete(ctx, original))
			})
			if err != nil {
				return result, err
			}
		}

		oldSection := menu.SectionPath(rid, cmd.OldSectionID)
		err = j.run(stepDeleteSection, oldSection, "", func() error {
			return menu.Wrap("delete section", oldSection, r.store.Delete(ctx, oldSection))
		})
		if err != nil {
			return result, err
		}
	}

	result.Moved = len(items)
	j.logger.Info("section renamed",
		"restaurant", rid,
		"from", cmd.OldSectionID,
		"to", cmd.NewSectionID,
		"name", cmd.NewSectionName,
		"items", result.Moved,
	)
	return result, nil
}

func (r *repo) Delete(ctx context.Context, cmd DeleteCommand, idempotencyKey string) (*DeleteResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	release, err := r.acquire(ctx, cmd.RestaurantID, idempotencyKey, cmd.SectionID)
	if err != nil {
		return nil, err
	}
	defer release()

	res, replayed, err := idempotent(ctx, r, cmd.RestaurantID, idempotencyKey, workflowDelete, cmd,
		func(j *Journal) (DeleteResult, error) {
			return r.delete(ctx, j, cmd)
		},
	)
	if err != nil {
		return nil, err
	}
	res.Replayed = replayed
	return &res, nil
}

// delete removes each item after attempting its image cleanup. Image failures
// never abort the workflow.
func (r *repo) delete(ctx context.Context, j *Journal, cmd DeleteCommand) (DeleteResult, error) {
	result := DeleteResult{
		OperationID: j.ID,
		Images:      images.Report{Failures: []images.Failure{}},
	}
	rid := cmd.RestaurantID

	collection := menu.FoodsCollection(rid, cmd.SectionID)
	var items []docstore.Document
	err := j.run(stepEnumerate, collection, "", func() error {
		var err error
		items, err = r.store.List(ctx, collection)
		return menu.Wrap("list food items", collection, err)
	})
	if err != nil {
		return result, err
	}
	j.logger.Info("deleting section items", "restaurant", rid, "section", cmd.SectionID, "items", len(items))

	for _, item := range items {
		if urls := imageURLs(item.Data); len(urls) > 0 {
			report, err := r.images.Cleanup(ctx, rid, urls)
			result.Images.Merge(report)

			step := Step{Name: stepCleanupImages, Target: item.Path, ItemID: item.ID, Status: StepCompleted}
			if err != nil {
				step.Error = err.Error()
				j.logger.Warn("image cleanup incomplete", "item", item.ID, "failed", len(report.Failures), "error", err)
			}
			j.Steps = append(j.Steps, step)
		}

		path := menu.FoodPath(rid, cmd.SectionID, item.ID)
		err := j.run(stepDeleteItem, path, item.ID, func() error {
			return menu.Wrap("delete food item", path, r.store.Delete(ctx, path))
		})
		if err != nil {
			return result, err
		}
		result.Deleted++
	}

	section := menu.SectionPath(rid, cmd.SectionID)
	err = j.run(stepDeleteSection, section, "", func() error {
		return menu.Wrap("delete section", section, r.store.Delete(ctx, section))
	})
	if err != nil {
		return result, err
	}

	j.logger.Info("section deleted",
		"restaurant", rid,
		"section", cmd.SectionID,
		"items", result.Deleted,
		"images_deleted", result.Images.Deleted,
		"images_failed", len(result.Images.Failures),
	)
	return result, nil
}

// acquire locks the given sections and, for keyed requests, the idempotency
// record shared by every section of the restaurant.
func (r *repo) acquire(ctx context.Context, restaurantID, idempotencyKey string, sectionIDs ...string) (func(), error) {
	keys := make([]string, 0, len(sectionIDs)+1)
	for _, id := range sectionIDs {
		keys = append(keys, menu.SectionLock(restaurantID, id))
	}
	if idempotencyKey != "" {
		keys = append(keys, menu.OperationLock(restaurantID, idempotencyKey))
	}
	return r.locks.Acquire(ctx, keys...)
}

func (r *repo) load(ctx context.Context, restaurantID string, doc *docstore.Document) (*Section, error) {
	name, _ := doc.Data["name"].(string)
	section := &Section{ID: doc.ID, Name: name, Items: []foods.Food{}}

	collection := menu.FoodsCollection(restaurantID, doc.ID)
	docs, err := r.store.List(ctx, collection)
	if err != nil {
		return nil, menu.Wrap("list food items", collection, err)
	}

	for i := range docs {
		fields, err := decode.FromMap[foods.Fields](docs[i].Data)
		if err != nil {
			r.logger.Warn("skipping unreadable food item", "path", docs[i].Path, "error", err)
			continue
		}
		if fields.Images == nil {
			fields.Images = []string{}
		}
		section.Items = append(section.Items, foods.Food{ID: docs[i].ID, Fields: fields})
	}
	return section, nil
}

// imageURLs reads the image list from a raw item document. Non-string
// entries are ignored.
func imageURLs(data map[string]any) []string {
	raw, ok := data["images"].([]any)
	if !ok {
		return nil
	}
	urls := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok && s != "" {
			urls = append(urls, s)
		}
	}
	return urls
}
