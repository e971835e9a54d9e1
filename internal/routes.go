package internal

import (
	"net/http"

	"acsd/internal/controllers"
	"acsd/internal/providers"
)

func InitRoutes(apiController *controllers.ApiController, authController *controllers.AuthController, pageController *controllers.PageController) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/activities", http.HandlerFunc(apiController.ListActivities))
	routers.Post("/activities", http.HandlerFunc(apiController.AddActivity))
	routers.Get("/activity", http.HandlerFunc(apiController.GetActivity))
	routers.Put("/activity", http.HandlerFunc(apiController.UpdateActivity))
	routers.Delete("/activity", http.HandlerFunc(apiController.DeleteActivity))

	routers.Post("/auth/login", http.HandlerFunc(authController.Login))
	routers.Post("/auth/logout", http.HandlerFunc(authController.Logout))
	routers.Get("/auth/session", http.HandlerFunc(authController.Session))
	routers.Get("/auth/status", http.HandlerFunc(authController.Status))

	routers.Get("/page", http.HandlerFunc(pageController.GetPage))
	routers.Put("/page", http.HandlerFunc(pageController.SavePage))
	routers.Get("/page/revisions", http.HandlerFunc(pageController.PageRevisions))

	return routers
}
