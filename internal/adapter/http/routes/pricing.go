package routes

import (
	"major_home/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes   = "/quotes"
	PathServices = "/services"
)

func addPricingRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler, serviceHandler *handlers.ServiceHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.CreateQuote)
		quotes.GET("/:id", quoteHandler.GetQuote)
	}

	services := rg.Group(PathServices)
	{
		services.GET("", serviceHandler.ListServices)
		services.GET("/:slug", serviceHandler.GetService)
	}
}
