package routes

import (
	"net/http"
	"path/filepath"

	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	"github.com/lunarbrew/go-cafe/app/configs"
	"github.com/lunarbrew/go-cafe/app/handlers"
	"github.com/lunarbrew/go-cafe/app/handlers/admin"
	"github.com/lunarbrew/go-cafe/app/middlewares"
	"github.com/lunarbrew/go-cafe/app/repositories"
	"github.com/lunarbrew/go-cafe/app/services"
	"github.com/lunarbrew/go-cafe/app/utils/renderer"
	"github.com/lunarbrew/go-cafe/app/utils/sessions"
	"github.com/rs/cors"
	"gorm.io/gorm"
)

func NewRouter(db *gorm.DB, env configs.ENV) (*mux.Router, error) {
	keys, err := configs.LoadSessionKeysFromEnv()
	if err != nil {
		return nil, err
	}

	rnd := renderer.New()
	sessionStore := sessions.NewCookieSessionStore(keys.AuthKey, keys.EncKey)

	categoryRepo := repositories.NewCategoryRepository(db)
	itemRepo := repositories.NewMenuItemRepository(db)
	sizeRepo := repositories.NewSizeRepository(db)
	attributeRepo := repositories.NewAttributeRepository(db)
	accountRepo := repositories.NewAdminAccountRepository(db)

	publisher := services.NewPublishService(
		services.NewCatalogSource(categoryRepo, itemRepo, sizeRepo, attributeRepo),
		env.StaticDir,
		env.BuildCommit,
	)
	loader := services.NewSnapshotLoader(env.SnapshotURL, filepath.Join(env.StaticDir, services.SnapshotFileName))
	mailer := services.NewMailer(services.MailConfig{
		Host:     env.EmailHost,
		Port:     env.EmailPort,
		Username: env.EmailUsername,
		Password: env.EmailPassword,
		From:     env.EmailFrom,
	})

	menuHandler := handlers.NewMenuHandler(rnd, categoryRepo, itemRepo, loader)
	contactHandler := handlers.NewContactHandler(rnd, mailer, env.NotifyEmail)
	reviewHandler := handlers.NewReviewHandler(rnd, mailer, env.NotifyEmail)
	adminHandler := admin.NewAdminHandler(rnd, sessionStore, categoryRepo, itemRepo, sizeRepo, attributeRepo, accountRepo, publisher)

	router := mux.NewRouter()

	router.HandleFunc("/api/menu", menuHandler.GetMenu).Methods("GET")

	// The notify endpoints are called cross-origin from the static site, so
	// they get their own CORS wrapper instead of a router-wide one.
	notifyCors := cors.New(cors.Options{
		AllowedOrigins:       []string{"*"},
		AllowedMethods:       []string{http.MethodPost, http.MethodOptions},
		AllowedHeaders:       []string{"Content-Type"},
		OptionsSuccessStatus: http.StatusOK,
	})
	// No Methods() restriction here: the handlers answer non-POST with a
	// JSON 405 body instead of mux's bare one.
	router.Handle("/api/notify/contact", notifyCors.Handler(http.HandlerFunc(contactHandler.Handle)))
	router.Handle("/api/notify/review", notifyCors.Handler(http.HandlerFunc(reviewHandler.Handle)))

	adminRouter := router.PathPrefix("/api/admin").Subrouter()
	adminRouter.Use(csrf.Protect(keys.AuthKey,
		csrf.Secure(env.APP_ENV == "production"),
		csrf.Path("/"),
	))
	adminRouter.HandleFunc("/csrf-token", adminHandler.CSRFToken).Methods("GET")
	adminRouter.HandleFunc("/login", adminHandler.LoginPost).Methods("POST")

	protected := adminRouter.NewRoute().Subrouter()
	protected.Use(middlewares.AdminAuthMiddleware(sessionStore, accountRepo, rnd))

	protected.HandleFunc("/logout", adminHandler.LogoutPost).Methods("POST")
	protected.HandleFunc("/publish", adminHandler.PublishPost).Methods("POST")

	protected.HandleFunc("/categories", adminHandler.GetCategories).Methods("GET")
	protected.HandleFunc("/categories", adminHandler.AddCategoryPost).Methods("POST")
	protected.HandleFunc("/categories/reorder", adminHandler.ReorderCategoriesPost).Methods("POST")
	protected.HandleFunc("/categories/{id}", adminHandler.EditCategoryPost).Methods("POST")
	protected.HandleFunc("/categories/{id}/delete", adminHandler.DeleteCategoryPost).Methods("POST")
	protected.HandleFunc("/categories/{id}/toggle", adminHandler.ToggleCategoryPost).Methods("POST")

	protected.HandleFunc("/items", adminHandler.GetMenuItems).Methods("GET")
	protected.HandleFunc("/items", adminHandler.AddMenuItemPost).Methods("POST")
	protected.HandleFunc("/categories/{categoryId}/items/reorder", adminHandler.ReorderMenuItemsPost).Methods("POST")
	protected.HandleFunc("/items/{id}", adminHandler.EditMenuItemPost).Methods("POST")
	protected.HandleFunc("/items/{id}/delete", adminHandler.DeleteMenuItemPost).Methods("POST")
	protected.HandleFunc("/items/{id}/toggle", adminHandler.ToggleMenuItemPost).Methods("POST")

	protected.HandleFunc("/sizes", adminHandler.GetSizes).Methods("GET")
	protected.HandleFunc("/sizes", adminHandler.AddSizePost).Methods("POST")
	protected.HandleFunc("/sizes/reorder", adminHandler.ReorderSizesPost).Methods("POST")
	protected.HandleFunc("/sizes/{id}", adminHandler.EditSizePost).Methods("POST")
	protected.HandleFunc("/sizes/{id}/delete", adminHandler.DeleteSizePost).Methods("POST")
	protected.HandleFunc("/sizes/{id}/toggle", adminHandler.ToggleSizePost).Methods("POST")

	protected.HandleFunc("/attributes", adminHandler.GetAttributes).Methods("GET")
	protected.HandleFunc("/attributes", adminHandler.AddAttributePost).Methods("POST")
	protected.HandleFunc("/attributes/reorder", adminHandler.ReorderAttributesPost).Methods("POST")
	protected.HandleFunc("/attributes/{id}", adminHandler.EditAttributePost).Methods("POST")
	protected.HandleFunc("/attributes/{id}/delete", adminHandler.DeleteAttributePost).Methods("POST")
	protected.HandleFunc("/attributes/{id}/toggle", adminHandler.ToggleAttributePost).Methods("POST")

	protected.HandleFunc("/accounts", adminHandler.GetAccounts).Methods("GET")
	protected.HandleFunc("/accounts", adminHandler.AddAccountPost).Methods("POST")
	protected.HandleFunc("/accounts/{id}", adminHandler.EditAccountPost).Methods("POST")
	protected.HandleFunc("/accounts/{id}/delete", adminHandler.DeleteAccountPost).Methods("POST")
	protected.HandleFunc("/accounts/{id}/toggle", adminHandler.ToggleAccountPost).Methods("POST")

	// Serves the published snapshot alongside the rest of the static site.
	router.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir(env.StaticDir))))

	return router, nil
}
