package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nwfth/forms-go/directory"
	"github.com/nwfth/forms-go/handlers"
	"github.com/nwfth/forms-go/mailer"
	"github.com/nwfth/forms-go/middleware"
	"github.com/nwfth/forms-go/repositories"
	"github.com/nwfth/forms-go/services"
)

func RegisterRoutes(r *gin.Engine) {
	repos := repositories.New()
	svcs := services.New(repos, directory.NewLDAPClient(), mailer.NewSMTPSender())
	h := handlers.New(svcs)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.POST("/login", h.User.Login)
		api.POST("/register", h.User.Register)
		api.POST("/reset-password-request", h.User.RequestPasswordReset)
		api.POST("/reset-password", h.User.ResetPassword)
	}

	forms := api.Group("/forms")
	forms.Use(middleware.JWTAuthMiddleware())
	{
		forms.POST("", h.Form.CreateForm)
		forms.GET("", h.Form.GetAllForms)
		forms.GET("/my-forms", h.Form.GetMyForms)
		forms.GET("/summary", middleware.RequireAdmin(), h.Form.GetSummary)
		forms.POST("/pdf-email", h.Form.EmailPDF)
		forms.GET("/:id", h.Form.GetFormByID)
		forms.PUT("/:id", h.Form.UpdateForm)
		forms.PUT("/:id/status", h.Form.UpdateFormStatus)
		forms.DELETE("/:id", h.Form.DeleteForm)
		forms.GET("/:id/pdf", h.Form.DownloadPDF)
	}
}
