package routes

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"

	controller "hackhub/controllers"
	"hackhub/middleware"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB) {
	auth := app.Group("/auth", logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	// Public auth endpoints
	auth.Post("/register", controller.Register)
	auth.Post("/login", controller.Login)
	auth.Post("/refresh", controller.RefreshToken)

	// Google OAuth routes
	auth.Get("/google", controller.GoogleOAuth)
	auth.Get("/google/callback", controller.GoogleOAuthCallback)

	// Protected auth endpoints
	protectedAuth := auth.Group("", middleware.Protected())
	protectedAuth.Post("/logout", controller.Logout)
	protectedAuth.Get("/me", controller.GetCurrentUser)
}

func SetupAPIRoutes(app *fiber.App, db *gorm.DB) {
	ideaController := controller.NewIdeaController(db, log.New(os.Stdout, "IDEA: ", log.LstdFlags))
	requestController := controller.NewTeamRequestController(db, log.New(os.Stdout, "REQUEST: ", log.LstdFlags))
	notificationController := controller.NewNotificationController(db, log.New(os.Stdout, "NOTIFY: ", log.LstdFlags))
	taskController := controller.NewTaskController(db, log.New(os.Stdout, "TASK: ", log.LstdFlags))
	deadlineController := controller.NewDeadlineController(db, log.New(os.Stdout, "DEADLINE: ", log.LstdFlags))
	focusController := controller.NewFocusController(db, log.New(os.Stdout, "FOCUS: ", log.LstdFlags))
	bookmarkController := controller.NewBookmarkController(db, log.New(os.Stdout, "BOOKMARK: ", log.LstdFlags))
	profileController := controller.NewProfileController(db, log.New(os.Stdout, "PROFILE: ", log.LstdFlags))
	mentorController := controller.NewMentorController(log.New(os.Stdout, "MENTOR: ", log.LstdFlags))

	api := app.Group("/", logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	// Idea routes; listing and detail are public
	ideas := api.Group("/ideas")
	ideas.Get("/", ideaController.GetIdeas)
	ideas.Post("/", middleware.Protected(), ideaController.CreateIdea)
	ideas.Get("/:id", ideaController.GetIdea)
	ideas.Put("/:id", middleware.Protected(), ideaController.UpdateIdea)
	ideas.Delete("/:id", middleware.Protected(), ideaController.DeleteIdea)
	ideas.Post("/:id/interest", middleware.Protected(), requestController.CreateInterest)

	// Team request moderation
	teamRequests := api.Group("/team-requests", middleware.Protected())
	teamRequests.Put("/:id", requestController.UpdateTeamRequest)
	teamRequests.Delete("/:id", requestController.DeleteTeamRequest)

	// Notification feed
	api.Get("/notifications", middleware.Protected(), notificationController.GetNotifications)

	// Task routes
	tasks := api.Group("/tasks", middleware.Protected())
	tasks.Get("/", taskController.GetTasks)
	tasks.Post("/", taskController.CreateTask)
	tasks.Put("/:id", taskController.UpdateTask)
	tasks.Delete("/:id", taskController.DeleteTask)

	// Deadline routes
	deadlines := api.Group("/deadlines", middleware.Protected())
	deadlines.Get("/", deadlineController.GetDeadlines)
	deadlines.Post("/", deadlineController.CreateDeadline)
	deadlines.Put("/:id", deadlineController.UpdateDeadline)
	deadlines.Delete("/:id", deadlineController.DeleteDeadline)

	// Focus session routes
	focus := api.Group("/focus-sessions", middleware.Protected())
	focus.Get("/", focusController.GetSessions)
	focus.Post("/", focusController.CreateSession)
	focus.Get("/stats", focusController.GetStats)

	// Bookmark routes
	bookmarks := api.Group("/bookmarks", middleware.Protected())
	bookmarks.Get("/", bookmarkController.GetBookmarks)
	bookmarks.Post("/", bookmarkController.ToggleBookmark)

	// Profile routes
	profile := api.Group("/profile", middleware.Protected())
	profile.Get("/", profileController.GetProfile)
	profile.Put("/", profileController.UpdateProfile)

	// AI bridge
	api.Post("/mentor", mentorController.Chat)
	api.Post("/generate-ideas", mentorController.GenerateIdeas)
}

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	controller.InitGoogleOAuth()

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	SetupAuthRoutes(app, db)
	SetupAPIRoutes(app, db)

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":   "Not Found",
			"message": "The requested resource was not found",
		})
	})
}
