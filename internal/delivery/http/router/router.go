// Package router contains routing setup for the HTTP delivery. Each
// service binary provides its own registrar; the server only knows the
// Registrar contract.
package router

import (
	"taskhub/internal/delivery/http/middleware"
	"taskhub/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// Registrar installs a service's routes on the echo instance.
type Registrar interface {
	RegisterRoutes(e *echo.Echo)
}

// AuthRouterParams collects the auth service's handlers.
type AuthRouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
}

type authRouter struct {
	authHandler    *handler.AuthHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewAuthRouter is the constructor for the auth service router.
// Fx will inject the required handlers here.
func NewAuthRouter(params AuthRouterParams) Registrar {
	return &authRouter{
		authHandler:    params.AuthHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up the session routes.
func (r *authRouter) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/api/auth")
	{
		authGroup.POST("/signin", r.authHandler.SignIn)
		authGroup.POST("/signup", r.authHandler.SignUp)
		authGroup.POST("/refreshtoken", r.authHandler.RefreshToken)
		authGroup.POST("/signout", r.authHandler.SignOut, r.authMiddleware.Authenticate)
	}
}

// TaskRouterParams collects the task service's handlers.
type TaskRouterParams struct {
	fx.In

	TaskHandler *handler.TaskHandler
}

type taskRouter struct {
	taskHandler *handler.TaskHandler
}

// NewTaskRouter is the constructor for the task service router.
func NewTaskRouter(params TaskRouterParams) Registrar {
	return &taskRouter{taskHandler: params.TaskHandler}
}

// RegisterRoutes sets up the task routes.
func (r *taskRouter) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	taskGroup := e.Group("/api/task")
	{
		taskGroup.GET("/getAllTask", r.taskHandler.GetAllTasks)
		taskGroup.GET("/getTaskById/:id", r.taskHandler.GetTaskByID)
		taskGroup.POST("/addTask", r.taskHandler.AddTask)
		taskGroup.PUT("/updateTask/:id", r.taskHandler.UpdateTask)
		taskGroup.DELETE("/deleteTask/:id", r.taskHandler.DeleteTask)
	}
}

// UserRouterParams collects the user service's handlers.
type UserRouterParams struct {
	fx.In

	UserHandler *handler.UserHandler
}

type userRouter struct {
	userHandler *handler.UserHandler
}

// NewUserRouter is the constructor for the user service router.
func NewUserRouter(params UserRouterParams) Registrar {
	return &userRouter{userHandler: params.UserHandler}
}

// RegisterRoutes sets up the user routes.
func (r *userRouter) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	userGroup := e.Group("/api/user")
	{
		userGroup.GET("/getAllUser", r.userHandler.GetAllUsers)
		userGroup.GET("/getUserById/:id", r.userHandler.GetUserByID)
		userGroup.POST("/addUser", r.userHandler.AddUser)
		userGroup.PUT("/updateUser/:id", r.userHandler.UpdateUser)
		userGroup.DELETE("/deleteUser/:id", r.userHandler.DeleteUser)
	}
}
