// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"libris/internal/delivery/http/middleware"
	"libris/internal/delivery/http/router/handler"
	"libris/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	BookHandler    *handler.BookHandler
	BorrowHandler  *handler.BorrowHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	bookHandler    *handler.BookHandler
	borrowHandler  *handler.BorrowHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		bookHandler:    params.BookHandler,
		borrowHandler:  params.BorrowHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public landing page counters
	e.GET("/", r.bookHandler.Home)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/refresh", r.userHandler.RefreshToken)
		authGroup.POST("/logout", r.userHandler.Logout, r.authMiddleware.Authenticate)
	}

	// Catalog routes: browsing is public, adding titles is librarian only
	booksGroup := e.Group("/books")
	{
		booksGroup.GET("", r.bookHandler.ListBooks)
		booksGroup.GET("/:id", r.bookHandler.GetBook)
		booksGroup.POST("", r.bookHandler.AddBook,
			r.authMiddleware.Authenticate,
			r.authMiddleware.RequireRole(entity.RoleLibrarian),
		)
	}

	// Loan routes require authentication
	e.POST("/borrow/:bookId", r.borrowHandler.BorrowBook, r.authMiddleware.Authenticate)
	e.POST("/return/:borrowId", r.borrowHandler.ReturnBook, r.authMiddleware.Authenticate)

	// Member dashboard routes
	dashboardGroup := e.Group("/dashboard")
	dashboardGroup.Use(r.authMiddleware.Authenticate)
	{
		dashboardGroup.GET("", r.borrowHandler.Dashboard)
		dashboardGroup.GET("/card", r.borrowHandler.LibraryCard)
	}

	// Librarian dashboard requires authentication and the "librarian" role
	librarianGroup := e.Group("/librarian")
	librarianGroup.Use(r.authMiddleware.Authenticate)
	librarianGroup.Use(r.authMiddleware.RequireRole(entity.RoleLibrarian))
	{
		librarianGroup.GET("", r.bookHandler.LibrarianDashboard)
	}
}
