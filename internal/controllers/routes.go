package controllers

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the pizza place endpoints on router
func RegisterRoutes(router gin.IRouter, restaurants RestaurantController, pizzas PizzaController, restaurantPizzas RestaurantPizzaController) {
	router.GET("/", Index)
	router.GET("/health", HealthCheck)

	router.GET("/restaurants", restaurants.GetAllRestaurants)
	router.GET("/restaurants/:id", restaurants.GetRestaurantByID)
	router.DELETE("/restaurants/:id", restaurants.DeleteRestaurant)

	router.GET("/pizzas", pizzas.GetAllPizzas)

	router.POST("/restaurant_pizzas", restaurantPizzas.CreateRestaurantPizza)
	router.GET("/restaurant_pizzas/:id", restaurantPizzas.GetRestaurantPizzaByID)
	router.DELETE("/restaurant_pizzas/:id", restaurantPizzas.DeleteRestaurantPizza)
}
