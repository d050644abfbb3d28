package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/lunarbrew/go-cafe/app/catalog"
	"github.com/lunarbrew/go-cafe/app/repositories"
	"github.com/lunarbrew/go-cafe/app/services"
	"github.com/unrolled/render"
)

const defaultPerPage = 12

type MenuHandler struct {
	render       *render.Render
	categoryRepo repositories.CategoryRepositoryImpl
	itemRepo     repositories.MenuItemRepositoryImpl
	loader       *services.SnapshotLoader
}

func NewMenuHandler(rnd *render.Render, categoryRepo repositories.CategoryRepositoryImpl, itemRepo repositories.MenuItemRepositoryImpl, loader *services.SnapshotLoader) *MenuHandler {
	return &MenuHandler{
		render:       rnd,
		categoryRepo: categoryRepo,
		itemRepo:     itemRepo,
		loader:       loader,
	}
}

// GetMenu serves the public menu. `source=snapshot` reads the published
// static export (how the public site loads); the default queries the
// catalog store live. Both paths run through the same aggregation, so
// their response shapes are identical.
func (h *MenuHandler) GetMenu(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{"success": true}

	var views []catalog.CategoryView

	if r.URL.Query().Get("source") == "snapshot" {
		snapshot, err := h.loader.Load(r.Context())
		if err != nil {
			if errors.Is(err, services.ErrNoSnapshot) {
				h.render.JSON(w, http.StatusServiceUnavailable, map[string]interface{}{
					"success": false,
					"message": "The menu is currently unavailable. Please try again in a few minutes.",
				})
				return
			}
			log.Printf("GetMenu: failed to load snapshot: %v", err)
			h.render.JSON(w, http.StatusInternalServerError, map[string]interface{}{
				"success": false,
				"message": "Something went wrong. Please try again.",
			})
			return
		}

		views = catalog.Build(snapshot.Categories, snapshot.MenuItems)
		response["lastUpdated"] = snapshot.LastUpdated
		response["version"] = snapshot.Version
		response["stale"] = services.Stale(snapshot)
	} else {
		categories, err := h.categoryRepo.GetActive(r.Context())
		if err != nil {
			log.Printf("GetMenu: failed to get categories: %v", err)
			h.render.JSON(w, http.StatusInternalServerError, map[string]interface{}{
				"success": false,
				"message": "Something went wrong. Please try again.",
			})
			return
		}
		items, err := h.itemRepo.GetActive(r.Context())
		if err != nil {
			log.Printf("GetMenu: failed to get menu items: %v", err)
			h.render.JSON(w, http.StatusInternalServerError, map[string]interface{}{
				"success": false,
				"message": "Something went wrong. Please try again.",
			})
			return
		}
		views = catalog.Build(categories, items)
	}

	query := catalog.Query{
		Search:     r.URL.Query().Get("search"),
		CategoryID: r.URL.Query().Get("category"),
	}
	if tags := strings.TrimSpace(r.URL.Query().Get("tags")); tags != "" {
		query.Tags = strings.Split(tags, ",")
	}

	items := catalog.Filter(catalog.Flatten(views), query)

	sortBy := r.URL.Query().Get("sort")
	if sortBy == "" {
		sortBy = catalog.SortByOrder
	}
	items = catalog.Sort(items, sortBy)

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("perPage"))
	if perPage < 1 {
		perPage = defaultPerPage
	}

	response["categories"] = views
	response["items"] = catalog.Paginate(items, page, perPage)
	h.render.JSON(w, http.StatusOK, response)
}
